package view

import (
	"math"

	"github.com/matzehuels/screenruler/pkg/ruler"
)

// Slider is the state of the density range control.
type Slider struct {
	Min   float64
	Max   float64
	Value float64
}

// Controls mirrors the interactive controls of the configuration panel.
type Controls struct {
	Slider    Slider
	Number    int // numeric density field, whole dots per inch
	Unit      ruler.Unit
	PanelOpen bool
}

// sync rewrites the controls from a validated configuration.
func (c *Controls) sync(cfg ruler.Config, b ruler.Bounds) {
	c.Slider = Slider{Min: b.Min, Max: b.Max, Value: cfg.PPI}
	c.Number = int(math.Round(cfg.PPI))
	c.Unit = cfg.Unit
}

// Checked reports whether the radio for u is selected.
func (c Controls) Checked(u ruler.Unit) bool { return c.Unit == u }
