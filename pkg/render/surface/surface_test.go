package surface

import (
	"math"
	"testing"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

func count(labels []Label, axis Axis) int {
	n := 0
	for _, l := range labels {
		if l.Key.Axis == axis {
			n++
		}
	}
	return n
}

func TestRenderCentimeterScenario(t *testing.T) {
	s := New()
	cfg := ruler.Config{Unit: ruler.Centimeter, PPI: 60}
	s.Render(ruler.Viewport{Width: 300, Height: 200}, cfg, 1)

	cm := s.Ruler(ruler.Centimeter)
	if cm.Hidden {
		t.Error("cm ruler should be visible")
	}
	if !s.Ruler(ruler.Inch).Hidden {
		t.Error("inch ruler should be hidden")
	}
	if s.Active() != cm {
		t.Error("Active() should be the cm ruler")
	}

	for i := 1; i <= 13; i++ {
		l, ok := cm.Label(LabelKey{Axis: AxisX, Offset: i})
		if !ok {
			t.Fatalf("missing x label %d", i)
		}
		if l.X != float64(i*100) || l.Y != XLabelY {
			t.Errorf("x label %d at (%v, %v), want (%d, %d)", i, l.X, l.Y, i*100, XLabelY)
		}
		if l.Rotate != nil {
			t.Errorf("x label %d should not be rotated", i)
		}
	}
	if _, ok := cm.Label(LabelKey{Axis: AxisX, Offset: 14}); ok {
		t.Error("unexpected x label 14")
	}
	if _, ok := cm.Label(LabelKey{Axis: AxisY, Offset: 1}); ok {
		t.Error("cm ruler must not label the first vertical centimeter")
	}

	l, ok := cm.Label(LabelKey{Axis: AxisY, Offset: 2})
	if !ok {
		t.Fatal("missing y label 2")
	}
	if l.X != YLabelX || l.Y != 220 {
		t.Errorf("y label 2 at (%v, %v), want (90, 220)", l.X, l.Y)
	}
	if l.Rotate == nil || *l.Rotate != (Rotation{Angle: -90, CX: 90, CY: 200}) {
		t.Errorf("y label 2 rotation = %+v", l.Rotate)
	}
	if l.Text != "2" {
		t.Errorf("y label 2 text = %q", l.Text)
	}

	if math.Abs(s.ViewBox.Width-1270) > 1e-6 {
		t.Errorf("view box width = %v, want 1270", s.ViewBox.Width)
	}
	if cm.ScaleX.Width != s.ViewBox.Width || cm.ScaleY.Width != s.ViewBox.Height {
		t.Errorf("scale bars %v/%v do not match view box %+v", cm.ScaleX.Width, cm.ScaleY.Width, s.ViewBox)
	}
}

func TestRenderInchLabelsFirstVertical(t *testing.T) {
	s := New()
	s.Render(ruler.Viewport{Width: 320, Height: 240}, ruler.Config{Unit: ruler.Inch, PPI: 80}, 1)

	in := s.Ruler(ruler.Inch)
	if in.Hidden || !s.Ruler(ruler.Centimeter).Hidden {
		t.Fatal("inch ruler should be the only visible ruler")
	}
	l, ok := in.Label(LabelKey{Axis: AxisY, Offset: 1})
	if !ok {
		t.Fatal("inch ruler should label the first vertical inch")
	}
	if l.Y != 160+YLabelDrop {
		t.Errorf("y label 1 at y=%v, want %v", l.Y, 160+YLabelDrop)
	}
	// 320/80 = 4 inches wide, 240/80 = 3 inches high.
	if got := count(in.Labels(), AxisX); got != 4 {
		t.Errorf("x labels = %d, want 4", got)
	}
	if got := count(in.Labels(), AxisY); got != 3 {
		t.Errorf("y labels = %d, want 3", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := New()
	vp := ruler.Viewport{Width: 1280, Height: 720}
	cfg := ruler.Config{Unit: ruler.Centimeter, PPI: 96}

	first := s.Render(vp, cfg, 1)
	if len(first) == 0 {
		t.Fatal("first render added no labels")
	}
	n := s.Active().Len()

	if added := s.Render(vp, cfg, 1); len(added) != 0 {
		t.Errorf("second render added %d labels", len(added))
	}
	if s.Active().Len() != n {
		t.Errorf("label count changed from %d to %d", n, s.Active().Len())
	}
}

func TestRenderMonotonic(t *testing.T) {
	s := New()
	cfg := ruler.Config{Unit: ruler.Centimeter, PPI: 60}

	s.Render(ruler.Viewport{Width: 800, Height: 600}, cfg, 1)
	big := s.Active().Labels()

	// Shrinking keeps everything.
	if added := s.Render(ruler.Viewport{Width: 200, Height: 100}, cfg, 1); len(added) != 0 {
		t.Errorf("shrinking added %d labels", len(added))
	}
	if s.Active().Len() != len(big) {
		t.Errorf("shrinking changed label count %d -> %d", len(big), s.Active().Len())
	}

	// Growing only appends.
	added := s.Render(ruler.Viewport{Width: 1600, Height: 1200}, cfg, 1)
	if len(added) == 0 {
		t.Fatal("growing added no labels")
	}
	after := s.Active().Labels()
	for i, l := range big {
		if after[i] != l {
			t.Fatalf("label %d changed: %+v -> %+v", i, l, after[i])
		}
	}
	if len(after) != len(big)+len(added) {
		t.Errorf("len = %d, want %d", len(after), len(big)+len(added))
	}
}

func TestRenderKeepsHiddenRulerLabels(t *testing.T) {
	s := New()
	vp := ruler.Viewport{Width: 500, Height: 500}

	s.Render(vp, ruler.Config{Unit: ruler.Centimeter, PPI: 60}, 1)
	cmCount := s.Ruler(ruler.Centimeter).Len()

	s.Render(vp, ruler.Config{Unit: ruler.Inch, PPI: 60}, 1)
	if got := s.Ruler(ruler.Centimeter).Len(); got != cmCount {
		t.Errorf("switching unit changed cm labels %d -> %d", cmCount, got)
	}

	if added := s.Render(vp, ruler.Config{Unit: ruler.Centimeter, PPI: 60}, 1); len(added) != 0 {
		t.Errorf("switching back added %d labels", len(added))
	}
}

func TestRenderPixelRatio(t *testing.T) {
	a, b := New(), New()
	vp := ruler.Viewport{Width: 400, Height: 300}

	a.Render(vp, ruler.Defaults(1), 1)
	b.Render(vp, ruler.Defaults(2), 2)

	if a.Active().Len() != b.Active().Len() {
		t.Errorf("label counts differ across pixel ratios: %d vs %d", a.Active().Len(), b.Active().Len())
	}
	if math.Abs(a.ViewBox.Width-b.ViewBox.Width) > 1e-9 {
		t.Errorf("view boxes differ: %v vs %v", a.ViewBox, b.ViewBox)
	}
}

func TestDesiredEmptyViewport(t *testing.T) {
	if got := Desired(ruler.Centimeter, ruler.Extent{}); len(got) != 0 {
		t.Errorf("Desired on empty extent = %v", got)
	}
}

func TestLabelClass(t *testing.T) {
	if got := (LabelKey{Axis: AxisY, Offset: 12}).Class(); got != "number-y-12" {
		t.Errorf("Class() = %q", got)
	}
}

func TestRulerID(t *testing.T) {
	s := New()
	if got := s.Ruler(ruler.Inch).ID(); got != "inch-ruler" {
		t.Errorf("ID() = %q", got)
	}
	if s.Active() != nil {
		t.Error("Active() before Render should be nil")
	}
	if s.Ruler("mm") != nil {
		t.Error("unknown unit should have no ruler")
	}
}
