package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/matzehuels/screenruler/pkg/fonts"
	"github.com/matzehuels/screenruler/pkg/render/surface"
)

const ptPerMillimeter = 72 / 25.4

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	title   string
	creator string
}

// WithPDFTitle sets the document title metadata.
func WithPDFTitle(title string) PDFOption { return func(r *pdfRenderer) { r.title = title } }

// WithPDFCreator sets the creator metadata, e.g. the program version.
func WithPDFCreator(creator string) PDFOption {
	return func(r *pdfRenderer) { r.creator = creator }
}

// RenderPDF draws the active ruler on a page of its true physical size. The
// printed ruler should line up with the on-screen one when the density is
// calibrated.
func RenderPDF(s *surface.Surface, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{title: "Screen ruler"}
	for _, opt := range opts {
		opt(&r)
	}
	rl := s.Active()
	if rl == nil {
		return nil, fmt.Errorf("surface has not been rendered")
	}

	// Millimeters per drawing unit.
	mm := rl.Unit.Millimeters() / rl.Unit.DrawingUnits()
	width, height := rl.ScaleX.Width*mm, rl.ScaleY.Width*mm
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("empty ruler %vx%v mm", width, height)
	}

	family := canvas.NewFontFamily(fonts.FontFamily)
	if err := family.LoadFont(fonts.RegularTTF(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := family.Face(40*mm*ptPerMillimeter, color.Black, canvas.FontRegular, canvas.FontNormal)

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	writer.SetInfo(r.title, fmt.Sprintf("%s ruler", rl.Unit), "", "", r.creator)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(color.Black)

	for _, t := range ticksAlong(rl.Unit, rl.ScaleX.Width) {
		ctx.DrawPath(t.Pos*mm, 0, canvas.Rectangle(tickWidth*mm, t.Length*mm))
	}
	for _, t := range ticksAlong(rl.Unit, rl.ScaleY.Width) {
		ctx.DrawPath(0, t.Pos*mm, canvas.Rectangle(t.Length*mm, tickWidth*mm))
	}

	for _, l := range rl.Labels() {
		line := canvas.NewTextLine(face, l.Text, canvas.Center)
		if l.Rotate == nil {
			ctx.DrawText(l.X*mm, l.Y*mm, line)
			continue
		}
		// CartesianIV mirrors the y axis, which flips the rotation sense.
		ctx.Push()
		ctx.ComposeView(canvas.Identity.RotateAbout(-l.Rotate.Angle, l.Rotate.CX*mm, l.Rotate.CY*mm))
		ctx.DrawText(l.X*mm, l.Y*mm, line)
		ctx.Pop()
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
