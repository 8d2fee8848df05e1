package sink

import (
	"context"
	"time"

	"github.com/matzehuels/screenruler/pkg/errors"
	"github.com/matzehuels/screenruler/pkg/observability"
	"github.com/matzehuels/screenruler/pkg/render/surface"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []string{FormatSVG, FormatHTML, FormatJSON, FormatPNG, FormatPDF}

// Options bundles per-format options for [Render].
type Options struct {
	SVG  []SVGOption
	HTML []HTMLOption
	JSON []JSONOption
	PNG  []PNGOption
	PDF  []PDFOption
}

// Render produces s in format and reports the render to the sink hooks.
// Failures carry the RENDER_FAILED code; an unknown format INVALID_FORMAT.
func Render(ctx context.Context, s *surface.Surface, format string, opts Options) ([]byte, error) {
	if err := errors.ValidateFormat(format, Formats...); err != nil {
		return nil, err
	}
	if s.Active() == nil {
		return nil, errors.New(errors.ErrCodeRenderFailed, "surface has not been rendered")
	}

	hooks := observability.Sink()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = RenderSVG(s, opts.SVG...)
	case FormatHTML:
		data, err = RenderHTML(s, opts.HTML...)
	case FormatJSON:
		data, err = RenderJSON(s, opts.JSON...)
	case FormatPNG:
		data, err = RenderPNG(s, opts.PNG...)
	case FormatPDF:
		data, err = RenderPDF(s, opts.PDF...)
	}
	if err != nil {
		err = errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}

	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	return data, err
}
