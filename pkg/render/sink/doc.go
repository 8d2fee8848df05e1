// Package sink writes a rendered ruler surface to output formats.
//
// # Formats
//
//   - SVG: both rulers, the inactive one carrying the "hidden" class. Ticks
//     come from a one-unit pattern tile; labels are text elements with the
//     "number number-<axis>-<offset>" classes.
//   - HTML: a standalone page embedding the SVG, with a permalink to the
//     configuration fragment.
//   - JSON: the view-model (configuration, scale, view box, rulers, labels).
//   - PNG: the active ruler rasterized at device resolution.
//   - PDF: the active ruler at true physical size, for checking the
//     calibration against paper.
//
// # Usage
//
//	s := surface.New()
//	s.Render(vp, cfg, dpr)
//	svg := sink.RenderSVG(s, sink.WithPixelSize())
//	png, err := sink.RenderPNG(s)
//
// [Render] dispatches by format name and reports to the
// [observability.SinkHooks].
//
// [observability.SinkHooks]: github.com/matzehuels/screenruler/pkg/observability.SinkHooks
package sink
