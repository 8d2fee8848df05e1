package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/screenruler/pkg/fonts"
	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// Stylesheet is the CSS shared by the SVG and HTML sinks.
const Stylesheet = `
    .ruler.hidden { display: none; }
    .scaleX, .scaleY { stroke: none; }
    .number { font-size: 40px; text-anchor: middle; fill: #000; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pixelSize    bool
	embedFont    bool
	withoutStyle bool
}

// WithPixelSize sets the width and height attributes to the viewport size so
// the document opens at its calibrated size instead of scaling to fit.
func WithPixelSize() SVGOption { return func(r *svgRenderer) { r.pixelSize = true } }

// WithEmbeddedFont inlines the label font as a data URI.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithoutStyles omits the <style> element; the host document supplies it.
func WithoutStyles() SVGOption { return func(r *svgRenderer) { r.withoutStyle = true } }

// RenderSVG renders both rulers of s. The inactive ruler is emitted with the
// hidden class so toggling the unit is a class change.
func RenderSVG(s *surface.Surface, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	vb := s.ViewBox
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="ruler" viewBox="0 0 %s %s"`, num(vb.Width), num(vb.Height))
	if r.pixelSize {
		fmt.Fprintf(&buf, ` width="%s" height="%s"`, num(s.Viewport.Width), num(s.Viewport.Height))
	}
	buf.WriteString(">\n")

	if !r.withoutStyle {
		renderStyle(&buf, r.embedFont)
	}
	renderPatterns(&buf)
	for _, rl := range s.Rulers() {
		renderRuler(&buf, rl)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderStyle(buf *bytes.Buffer, embedFont bool) {
	buf.WriteString("  <style>")
	if embedFont {
		fmt.Fprintf(buf, "\n    @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	fmt.Fprintf(buf, "%s\n    .number { font-family: %s; }\n  </style>\n", Stylesheet, fonts.FallbackFontFamily)
}

// renderPatterns writes one tick tile per unit, one unit wide.
func renderPatterns(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	for _, u := range ruler.Units {
		fmt.Fprintf(buf, `    <pattern id="%s" patternUnits="userSpaceOnUse" width="%s" height="%d">`+"\n",
			patternID(u), num(u.DrawingUnits()), barHeight)
		for _, t := range unitTicks(u) {
			fmt.Fprintf(buf, `      <rect x="%s" y="0" width="%d" height="%s"/>`+"\n", num(t.Pos), tickWidth, num(t.Length))
		}
		buf.WriteString("    </pattern>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderRuler(buf *bytes.Buffer, rl *surface.Ruler) {
	class := "ruler"
	if rl.Hidden {
		class += " hidden"
	}
	fill := "url(#" + patternID(rl.Unit) + ")"

	fmt.Fprintf(buf, `  <g id="%s" class="%s">`+"\n", rl.ID(), class)
	fmt.Fprintf(buf, `    <rect class="scaleX" x="0" y="0" width="%s" height="%d" fill="%s"/>`+"\n",
		num(rl.ScaleX.Width), barHeight, fill)
	fmt.Fprintf(buf, `    <rect class="scaleY" x="0" y="0" width="%s" height="%d" fill="%s" transform="matrix(0 1 1 0 0 0)"/>`+"\n",
		num(rl.ScaleY.Width), barHeight, fill)
	for _, l := range rl.Labels() {
		renderLabel(buf, l)
	}
	buf.WriteString("  </g>\n")
}

func renderLabel(buf *bytes.Buffer, l surface.Label) {
	fmt.Fprintf(buf, `    <text class="number %s" x="%s" y="%s"`, l.Key.Class(), num(l.X), num(l.Y))
	if l.Rotate != nil {
		fmt.Fprintf(buf, ` transform="rotate(%s, %s, %s)"`, num(l.Rotate.Angle), num(l.Rotate.CX), num(l.Rotate.CY))
	}
	fmt.Fprintf(buf, ">%s</text>\n", l.Text)
}

func patternID(u ruler.Unit) string { return string(u) + "-ticks" }
