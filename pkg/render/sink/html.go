package sink

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

const pageCSS = `
    html, body { margin: 0; padding: 0; overflow: hidden; background: #fff; }
    #ruler { position: fixed; top: 0; left: 0; width: 100vw; height: 100vh; }
    #config { position: fixed; right: 1em; bottom: 1em; font: 14px sans-serif; }`

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title    string
	fragment string
	svgOpts  []SVGOption
}

// WithTitle sets the document title (default "Screen ruler").
func WithTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

// WithFragment sets the permalink fragment, without the leading "#".
func WithFragment(fragment string) HTMLOption {
	return func(r *htmlRenderer) { r.fragment = fragment }
}

// WithHTMLSVGOptions passes options through to the embedded SVG.
func WithHTMLSVGOptions(opts ...SVGOption) HTMLOption {
	return func(r *htmlRenderer) { r.svgOpts = opts }
}

// RenderHTML renders a standalone page that shows the ruler full screen and
// links back to its configuration.
func RenderHTML(s *surface.Surface, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "Screen ruler"}
	for _, opt := range opts {
		opt(&r)
	}

	body := element(atom.Body)
	svgOpts := append([]SVGOption{WithoutStyles()}, r.svgOpts...)
	svg, err := html.ParseFragment(bytes.NewReader(RenderSVG(s, svgOpts...)), body)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	summary := fmt.Sprintf("%s ppi, %s ", ruler.FormatPPI(s.Config.PPI), s.Scale.Unit)
	nav := element(atom.Nav, attr("id", "config"))
	nav.AppendChild(textNode(summary))
	link := element(atom.A, attr("id", "permalink"), attr("href", "#"+r.fragment))
	link.AppendChild(textNode("permalink"))
	nav.AppendChild(link)

	body.AppendChild(nav)
	for _, n := range svg {
		body.AppendChild(n)
	}

	style := element(atom.Style)
	style.AppendChild(textNode(pageCSS + Stylesheet + "\n  "))
	title := element(atom.Title)
	title.AppendChild(textNode(r.title))

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")))
	head.AppendChild(title)
	head.AppendChild(style)

	root := element(atom.Html, attr("lang", "en"))
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute { return html.Attribute{Key: key, Val: val} }

func textNode(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }
