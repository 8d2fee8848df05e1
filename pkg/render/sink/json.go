package sink

import (
	"encoding/json"

	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	fragment string
	active   bool
}

// WithJSONFragment records the permalink fragment in the output.
func WithJSONFragment(fragment string) JSONOption {
	return func(r *jsonRenderer) { r.fragment = fragment }
}

// WithJSONActiveOnly drops the hidden ruler from the output.
func WithJSONActiveOnly() JSONOption { return func(r *jsonRenderer) { r.active = true } }

type jsonOutput struct {
	Config   ruler.Config    `json:"config"`
	DPR      float64         `json:"dpr"`
	Viewport ruler.Viewport  `json:"viewport"`
	Scale    ruler.Scale     `json:"scale"`
	Extent   ruler.Extent    `json:"extent"`
	ViewBox  surface.ViewBox `json:"view_box"`
	Fragment string          `json:"fragment,omitempty"`
	Rulers   []jsonRuler     `json:"rulers"`
}

type jsonRuler struct {
	ID     string           `json:"id"`
	Unit   ruler.Unit       `json:"unit"`
	Hidden bool             `json:"hidden"`
	ScaleX surface.ScaleBar `json:"scale_x"`
	ScaleY surface.ScaleBar `json:"scale_y"`
	Labels []surface.Label  `json:"labels"`
}

// RenderJSON serializes the view-model of s.
func RenderJSON(s *surface.Surface, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Config:   s.Config,
		DPR:      s.DPR,
		Viewport: s.Viewport,
		Scale:    s.Scale,
		Extent:   s.Extent,
		ViewBox:  s.ViewBox,
		Fragment: r.fragment,
		Rulers:   []jsonRuler{},
	}
	for _, rl := range s.Rulers() {
		if r.active && rl.Hidden {
			continue
		}
		out.Rulers = append(out.Rulers, jsonRuler{
			ID:     rl.ID(),
			Unit:   rl.Unit,
			Hidden: rl.Hidden,
			ScaleX: rl.ScaleX,
			ScaleY: rl.ScaleY,
			Labels: rl.Labels(),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
