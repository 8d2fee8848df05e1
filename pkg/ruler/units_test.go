package ruler

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestPixelsPerUnit(t *testing.T) {
	if got := Inch.PixelsPerUnit(150); got != 150 {
		t.Errorf("Inch.PixelsPerUnit(150) = %v, want 150", got)
	}
	if got := Centimeter.PixelsPerUnit(254); !approx(got, 100, 1e-9) {
		t.Errorf("Centimeter.PixelsPerUnit(254) = %v, want 100", got)
	}
	if got := Unit("bogus").PixelsPerUnit(254); !approx(got, 100, 1e-9) {
		t.Errorf("unknown unit should convert like cm, got %v", got)
	}
}

func TestDrawingUnits(t *testing.T) {
	if got := Inch.DrawingUnits(); got != 160 {
		t.Errorf("Inch.DrawingUnits() = %v, want 160", got)
	}
	if got := Centimeter.DrawingUnits(); got != 100 {
		t.Errorf("Centimeter.DrawingUnits() = %v, want 100", got)
	}
}

func TestMillimeters(t *testing.T) {
	if got := Inch.Millimeters(); got != 25.4 {
		t.Errorf("Inch.Millimeters() = %v", got)
	}
	if got := Centimeter.Millimeters(); !approx(got, 10, 1e-9) {
		t.Errorf("Centimeter.Millimeters() = %v", got)
	}
}

func TestScaleDividesOutPixelRatio(t *testing.T) {
	s1 := NewScale(Config{Unit: Inch, PPI: 100}, 1)
	s2 := NewScale(Config{Unit: Inch, PPI: 200}, 2)

	if s1.RealPixelsPerUnit != s2.RealPixelsPerUnit {
		t.Errorf("real px/unit differ: %v vs %v", s1.RealPixelsPerUnit, s2.RealPixelsPerUnit)
	}
	if s2.PixelsPerUnit != 200 {
		t.Errorf("device px/unit = %v, want 200", s2.PixelsPerUnit)
	}
}

func TestMeasureCentimeterScenario(t *testing.T) {
	// 60 dpi at ratio 1 on a 300x200 viewport.
	s := NewScale(Config{Unit: Centimeter, PPI: 60}, 1)
	if !approx(s.PixelsPerUnit, 23.622, 0.001) {
		t.Errorf("px/cm = %v, want ~23.6", s.PixelsPerUnit)
	}

	e := s.Measure(Viewport{Width: 300, Height: 200})
	if !approx(e.Width, 12.7, 1e-9) {
		t.Errorf("visible width = %v cm, want 12.7", e.Width)
	}
	if !approx(e.Height, 8.4667, 0.001) {
		t.Errorf("visible height = %v cm, want ~8.47", e.Height)
	}
	if !approx(e.ViewWidth, 1270, 1e-6) {
		t.Errorf("view width = %v, want 1270", e.ViewWidth)
	}

	x, y := e.Ticks()
	if x != 13 || y != 9 {
		t.Errorf("Ticks() = (%d, %d), want (13, 9)", x, y)
	}
}

func TestMeasureSameOnAnyPixelRatio(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 768}
	for _, dpr := range []float64{1, 1.5, 2, 3} {
		e := NewScale(Defaults(dpr), dpr).Measure(vp)
		want := 1024 / (60 / CentimetersPerInch)
		if !approx(e.Width, want, 1e-9) {
			t.Errorf("dpr=%v: width = %v, want %v", dpr, e.Width, want)
		}
	}
}

func TestTicksEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		e     Extent
		wantX int
		wantY int
	}{
		{"exact", Extent{Width: 3, Height: 2}, 3, 2},
		{"partial", Extent{Width: 3.01, Height: 0.2}, 4, 1},
		{"empty", Extent{}, 0, 0},
		{"negative", Extent{Width: -1, Height: math.NaN()}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.e.Ticks()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Ticks() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
