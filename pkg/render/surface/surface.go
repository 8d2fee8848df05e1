package surface

import (
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// ScaleBar is one of the two scale bars of a ruler. Its length is in drawing
// units; the vertical bar is drawn as a horizontal bar mirrored on the
// diagonal, so both only carry a width.
type ScaleBar struct {
	Width float64 `json:"width"`
}

// ViewBox is the visible coordinate range of the surface in drawing units.
type ViewBox struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Ruler is the overlay for one unit.
type Ruler struct {
	Unit   ruler.Unit
	Hidden bool
	ScaleX ScaleBar
	ScaleY ScaleBar

	labels []Label
	index  map[LabelKey]int
}

func newRuler(u ruler.Unit) *Ruler {
	return &Ruler{Unit: u, Hidden: true, index: make(map[LabelKey]int)}
}

// ID returns the element id of the ruler, e.g. "cm-ruler".
func (r *Ruler) ID() string { return string(r.Unit) + "-ruler" }

// Labels returns the labels in creation order.
func (r *Ruler) Labels() []Label {
	out := make([]Label, len(r.labels))
	copy(out, r.labels)
	return out
}

// Label returns the label stored under key.
func (r *Ruler) Label(key LabelKey) (Label, bool) {
	i, ok := r.index[key]
	if !ok {
		return Label{}, false
	}
	return r.labels[i], true
}

// Len returns the number of labels.
func (r *Ruler) Len() int { return len(r.labels) }

// ensure adds l unless a label with the same key exists.
func (r *Ruler) ensure(l Label) bool {
	if _, ok := r.index[l.Key]; ok {
		return false
	}
	r.index[l.Key] = len(r.labels)
	r.labels = append(r.labels, l)
	return true
}

// Surface is the ruled drawing area. The zero value is not usable; create
// one with [New].
type Surface struct {
	ViewBox ViewBox

	// State of the last Render call.
	Config   ruler.Config
	DPR      float64
	Viewport ruler.Viewport
	Scale    ruler.Scale
	Extent   ruler.Extent

	rulers map[ruler.Unit]*Ruler
	active ruler.Unit
}

// New returns a surface with one hidden, empty ruler per unit.
func New() *Surface {
	s := &Surface{rulers: make(map[ruler.Unit]*Ruler, len(ruler.Units)), DPR: 1}
	for _, u := range ruler.Units {
		s.rulers[u] = newRuler(u)
	}
	return s
}

// Ruler returns the ruler for u, or nil for an unknown unit.
func (s *Surface) Ruler(u ruler.Unit) *Ruler { return s.rulers[u] }

// Rulers returns all rulers in [ruler.Units] order.
func (s *Surface) Rulers() []*Ruler {
	out := make([]*Ruler, 0, len(ruler.Units))
	for _, u := range ruler.Units {
		out = append(out, s.rulers[u])
	}
	return out
}

// Active returns the visible ruler, or nil before the first Render.
func (s *Surface) Active() *Ruler {
	if s.active == "" {
		return nil
	}
	return s.rulers[s.active]
}

// Render lays the surface out for vp and cfg on a display with pixel ratio
// dpr and returns the labels it created. cfg is expected to be validated;
// a unit other than inch renders as centimeters.
func (s *Surface) Render(vp ruler.Viewport, cfg ruler.Config, dpr float64) []Label {
	dpr = ruler.NormalizeDPR(dpr)

	unit := ruler.Centimeter
	if cfg.Unit == ruler.Inch {
		unit = ruler.Inch
	}
	active := s.rulers[unit]
	for u, r := range s.rulers {
		r.Hidden = u != unit
	}
	s.active = unit

	scale := ruler.NewScale(ruler.Config{Unit: unit, PPI: cfg.PPI}, dpr)
	extent := scale.Measure(vp)

	s.Config, s.DPR, s.Viewport = cfg, dpr, vp
	s.Scale, s.Extent = scale, extent
	s.ViewBox = ViewBox{Width: extent.ViewWidth, Height: extent.ViewHeight}
	active.ScaleX.Width = extent.ViewWidth
	active.ScaleY.Width = extent.ViewHeight

	var added []Label
	for _, l := range Desired(unit, extent) {
		if active.ensure(l) {
			added = append(added, l)
		}
	}
	return added
}

// Desired returns the labels a ruler of unit u needs to cover extent:
// offsets 1 through ceil(length) on each axis, minus the first vertical
// label on a centimeter ruler.
func Desired(u ruler.Unit, extent ruler.Extent) []Label {
	k := u.DrawingUnits()
	nx, ny := extent.Ticks()

	labels := make([]Label, 0, nx+ny)
	for i := 1; i <= nx; i++ {
		labels = append(labels, newLabel(LabelKey{Axis: AxisX, Offset: i}, k))
	}
	for i := 1; i <= ny; i++ {
		if i == 1 && u != ruler.Inch {
			continue
		}
		labels = append(labels, newLabel(LabelKey{Axis: AxisY, Offset: i}, k))
	}
	return labels
}
