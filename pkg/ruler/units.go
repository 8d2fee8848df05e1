package ruler

import "math"

// Unit is a measurement unit shown on the ruler.
type Unit string

const (
	Centimeter Unit = "cm"
	Inch       Unit = "inch"
)

// Units lists the allowed measurement units in display order.
var Units = []Unit{Centimeter, Inch}

// Conversion constants.
const (
	CentimetersPerInch = 2.54
	MillimetersPerInch = 25.4

	// Drawing units per length unit. The values only fix the tick spacing of
	// the vector surface; 10 drawing units is always the finest tick.
	DrawingUnitsPerCentimeter = 100
	DrawingUnitsPerInch       = 160
)

// Valid reports whether u is one of [Units].
func (u Unit) Valid() bool {
	return u == Centimeter || u == Inch
}

func (u Unit) String() string { return string(u) }

// Millimeters returns the length of one unit in millimeters.
func (u Unit) Millimeters() float64 {
	if u == Inch {
		return MillimetersPerInch
	}
	return MillimetersPerInch / CentimetersPerInch
}

// DrawingUnits returns the drawing units per length unit.
// Anything other than [Inch] is drawn as centimeters.
func (u Unit) DrawingUnits() float64 {
	if u == Inch {
		return DrawingUnitsPerInch
	}
	return DrawingUnitsPerCentimeter
}

// PixelsPerUnit converts a density in dots per inch to device pixels per unit.
func (u Unit) PixelsPerUnit(ppi float64) float64 {
	if u == Inch {
		return ppi
	}
	return ppi / CentimetersPerInch
}

// NormalizeDPR returns dpr, or 1 when dpr is not a positive finite number.
func NormalizeDPR(dpr float64) float64 {
	if math.IsNaN(dpr) || math.IsInf(dpr, 0) || dpr <= 0 {
		return 1
	}
	return dpr
}

// Viewport is a visible area in device-independent pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale maps pixels to physical length for one configuration.
type Scale struct {
	Unit Unit `json:"unit"`

	// PixelsPerUnit is in device pixels, RealPixelsPerUnit in
	// device-independent pixels.
	PixelsPerUnit     float64 `json:"pixels_per_unit"`
	RealPixelsPerUnit float64 `json:"real_pixels_per_unit"`

	DrawingUnitsPerUnit float64 `json:"drawing_units_per_unit"`
}

// NewScale derives the scale for cfg on a display with the given pixel ratio.
func NewScale(cfg Config, dpr float64) Scale {
	dpr = NormalizeDPR(dpr)
	px := cfg.Unit.PixelsPerUnit(cfg.PPI)
	return Scale{
		Unit:                cfg.Unit,
		PixelsPerUnit:       px,
		RealPixelsPerUnit:   px / dpr,
		DrawingUnitsPerUnit: cfg.Unit.DrawingUnits(),
	}
}

// Extent is the visible part of the ruler.
type Extent struct {
	Width      float64 `json:"width"`       // physical units
	Height     float64 `json:"height"`      // physical units
	ViewWidth  float64 `json:"view_width"`  // drawing units
	ViewHeight float64 `json:"view_height"` // drawing units
}

// Measure returns the physical length and drawing extents visible in vp.
func (s Scale) Measure(vp Viewport) Extent {
	var lw, lh float64
	if s.RealPixelsPerUnit > 0 {
		lw = vp.Width / s.RealPixelsPerUnit
		lh = vp.Height / s.RealPixelsPerUnit
	}
	return Extent{
		Width:      lw,
		Height:     lh,
		ViewWidth:  lw * s.DrawingUnitsPerUnit,
		ViewHeight: lh * s.DrawingUnitsPerUnit,
	}
}

// Ticks returns the number of whole units that are at least partly visible
// on each axis.
func (e Extent) Ticks() (x, y int) {
	return ceilCount(e.Width), ceilCount(e.Height)
}

func ceilCount(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return 0
	}
	return int(math.Ceil(v))
}
