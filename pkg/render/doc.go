// Package render groups the ruler drawing packages.
//
// # Overview
//
// Rendering is split in two stages:
//
//   - [surface] lays the rulers out for a viewport: the view box, the scale
//     bar extents and the numeric labels. Labels are only ever added, so an
//     interactive host can patch the difference.
//   - [sink] serializes a rendered surface to SVG, HTML, JSON, PNG or PDF.
//
//	s := surface.New()
//	s.Render(ruler.Viewport{Width: 1280, Height: 800}, cfg, 2)
//	svg := sink.RenderSVG(s)
//	pdf, err := sink.RenderPDF(s)
//
// Callers normally reach both through a [view.Controller], which owns the
// surface and re-renders it whenever the configuration or viewport changes.
//
// [surface]: github.com/matzehuels/screenruler/pkg/render/surface
// [sink]: github.com/matzehuels/screenruler/pkg/render/sink
// [view.Controller]: github.com/matzehuels/screenruler/pkg/view#Controller
package render
