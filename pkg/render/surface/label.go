package surface

import (
	"fmt"
	"strconv"
)

// Axis identifies the scale bar a label belongs to.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Label placement in drawing units.
const (
	// XLabelY is the baseline of horizontal labels.
	XLabelY = 110
	// YLabelX is the anchor column of vertical labels.
	YLabelX = 90
	// YLabelDrop shifts the vertical label anchor past its tick before rotation.
	YLabelDrop = 20
	// YLabelAngle is the rotation of vertical labels in degrees.
	YLabelAngle = -90
)

// LabelKey identifies a label by axis and integer unit offset.
type LabelKey struct {
	Axis   Axis `json:"axis"`
	Offset int  `json:"offset"`
}

// Class returns the CSS class that identifies the label, e.g. "number-x-3".
func (k LabelKey) Class() string {
	return fmt.Sprintf("number-%s-%d", k.Axis, k.Offset)
}

// Rotation rotates an element by Angle degrees around (CX, CY).
type Rotation struct {
	Angle float64 `json:"angle"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
}

// Label is a tick label on the ruler surface.
type Label struct {
	Key    LabelKey  `json:"key"`
	Text   string    `json:"text"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
	Rotate *Rotation `json:"rotate,omitempty"`
}

// newLabel places the label for key on a ruler with k drawing units per unit.
func newLabel(key LabelKey, k float64) Label {
	pos := float64(key.Offset) * k
	l := Label{Key: key, Text: strconv.Itoa(key.Offset)}
	switch key.Axis {
	case AxisY:
		l.X = YLabelX
		l.Y = pos + YLabelDrop
		l.Rotate = &Rotation{Angle: YLabelAngle, CX: YLabelX, CY: pos}
	default:
		l.X = pos
		l.Y = XLabelY
	}
	return l
}
