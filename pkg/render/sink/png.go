package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/screenruler/pkg/fonts"
	"github.com/matzehuels/screenruler/pkg/render/surface"
)

// maxRasterSide caps each PNG dimension.
const maxRasterSide = 16384

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale multiplies the device resolution (default 1). A screenshot of
// the ruler at scale 1 matches the display pixel for pixel.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the active ruler at device resolution, that is the
// viewport times the pixel ratio.
//
// Vertical labels are drawn upright: the rasterizer places glyphs in device
// space without the path transform.
func RenderPNG(s *surface.Surface, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	rl := s.Active()
	if rl == nil {
		return nil, fmt.Errorf("surface has not been rendered")
	}
	if !(r.scale > 0) || math.IsInf(r.scale, 0) {
		return nil, fmt.Errorf("invalid scale %v", r.scale)
	}

	w := int(math.Ceil(s.Viewport.Width * s.DPR * r.scale))
	h := int(math.Ceil(s.Viewport.Height * s.DPR * r.scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty viewport %vx%v", s.Viewport.Width, s.Viewport.Height)
	}
	if w > maxRasterSide || h > maxRasterSide {
		return nil, fmt.Errorf("raster %dx%d exceeds %d pixels per side", w, h, maxRasterSide)
	}

	// Device pixels per drawing unit.
	f := s.Scale.PixelsPerUnit / s.Scale.DrawingUnitsPerUnit * r.scale

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)

	for _, t := range ticksAlong(rl.Unit, rl.ScaleX.Width) {
		dc.DrawRectangle(t.Pos*f, 0, tickWidth*f, t.Length*f)
	}
	for _, t := range ticksAlong(rl.Unit, rl.ScaleY.Width) {
		dc.DrawRectangle(0, t.Pos*f, t.Length*f, tickWidth*f)
	}
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("fill ticks: %w", err)
	}

	source, err := text.NewFontSource(fonts.RegularTTF())
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	defer source.Close()
	dc.SetFont(source.Face(40 * f))
	for _, l := range rl.Labels() {
		if l.Rotate != nil {
			dc.DrawStringAnchored(l.Text, l.X*f, l.Rotate.CY*f, 0.5, 0.5)
			continue
		}
		dc.DrawStringAnchored(l.Text, l.X*f, l.Y*f, 0.5, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
