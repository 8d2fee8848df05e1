//go:build js && wasm

// Command screenruler-wasm drives the ruler page in a browser. It renders
// the ruler into the document body and routes the configuration controls
// through the same view controller the CLI uses.
package main

import (
	"strings"
	"syscall/js"
	"time"

	"github.com/matzehuels/screenruler/pkg/render/sink"
	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
	"github.com/matzehuels/screenruler/pkg/view"
)

const svgNS = "http://www.w3.org/2000/svg"

const panelHTML = `<button id="configBtn" type="button">ppi</button>
<form id="config" class="hidden">
  <input id="densitySlider" type="range" step="1">
  <input id="densityInput" type="number" step="1">
  <label><input type="radio" name="unit" value="cm"> cm</label>
  <label><input type="radio" name="unit" value="inch"> inch</label>
</form>`

const panelCSS = `
html, body { margin: 0; height: 100%; overflow: hidden; }
#ruler { position: fixed; inset: 0; width: 100%; height: 100%; }
#configBtn { position: fixed; right: 1em; bottom: 1em; }
#config { position: fixed; right: 1em; bottom: 3em; background: #fff; padding: .5em; }
#config.hidden { display: none; }`

// hashLocation keeps the fragment in window.location.
type hashLocation struct {
	loc js.Value
}

func (l hashLocation) Fragment() string {
	return strings.TrimPrefix(l.loc.Get("hash").String(), "#")
}

// Replace swaps the URL without adding a history entry.
func (l hashLocation) Replace(fragment string) {
	l.loc.Call("replace", fragment)
}

// timeoutScheduler runs callbacks with window.setTimeout.
type timeoutScheduler struct {
	window js.Value
}

func (s timeoutScheduler) AfterFunc(d time.Duration, f func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		f()
		cb.Release()
		return nil
	})
	s.window.Call("setTimeout", cb, d.Milliseconds())
}

type page struct {
	window js.Value
	doc    js.Value
	ctrl   *view.Controller
}

func main() {
	window := js.Global()
	p := &page{window: window, doc: window.Get("document")}

	p.ctrl = view.NewController(hashLocation{loc: window.Get("location")},
		view.WithDevicePixelRatio(window.Get("devicePixelRatio").Float()),
		view.WithViewport(p.viewport()),
		view.WithScrollCorrection(timeoutScheduler{window: window}, func() {
			window.Call("scrollTo", 0, 1)
		}))
	p.ctrl.Load()

	p.mount()
	p.listen()
	p.update()

	select {}
}

// viewport is the layout viewport without scrollbars.
func (p *page) viewport() ruler.Viewport {
	root := p.doc.Get("documentElement")
	return ruler.Viewport{
		Width:  root.Get("clientWidth").Float(),
		Height: root.Get("clientHeight").Float(),
	}
}

// mount writes the stylesheet, the controls and the full SVG once. Later
// renders only patch it.
func (p *page) mount() {
	head := p.doc.Get("head")
	style := p.doc.Call("createElement", "style")
	style.Set("textContent", panelCSS+"\n"+sink.Stylesheet)
	head.Call("appendChild", style)

	body := p.doc.Get("body")
	body.Set("innerHTML", string(sink.RenderSVG(p.ctrl.Surface(), sink.WithoutStyles()))+panelHTML)
}

func (p *page) byID(id string) js.Value {
	return p.doc.Call("getElementById", id)
}

func (p *page) listen() {
	on := func(target js.Value, event string, fn func(js.Value)) {
		target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
			fn(args[0].Get("target"))
			return nil
		}))
	}

	slider := p.byID("densitySlider")
	on(slider, "input", func(el js.Value) { p.dispatch(view.SliderInput(el.Get("value").String())) })
	on(slider, "change", func(el js.Value) { p.dispatch(view.SliderChange(el.Get("value").String())) })
	on(p.byID("densityInput"), "change", func(el js.Value) { p.dispatch(view.DensityChange(el.Get("value").String())) })

	radios := p.doc.Call("querySelectorAll", `input[name="unit"]`)
	for i := 0; i < radios.Length(); i++ {
		on(radios.Index(i), "change", func(el js.Value) { p.dispatch(view.UnitChange(el.Get("value").String())) })
	}

	on(p.byID("configBtn"), "click", func(js.Value) { p.dispatch(view.ToggleConfig()) })
	on(p.window, "resize", func(js.Value) {
		vp := p.viewport()
		p.dispatch(view.Resize(vp.Width, vp.Height))
	})
}

func (p *page) dispatch(e view.Event) {
	if err := p.ctrl.Dispatch(e); err != nil {
		p.window.Get("console").Call("error", err.Error())
		return
	}
	p.update()
}

// update copies the controller state into the DOM.
func (p *page) update() {
	s := p.ctrl.Surface()
	svg := p.byID("ruler")
	svg.Call("setAttribute", "viewBox", "0 0 "+ruler.FormatPPI(s.ViewBox.Width)+" "+ruler.FormatPPI(s.ViewBox.Height))

	for _, rl := range s.Rulers() {
		g := p.byID(rl.ID())
		g.Get("classList").Call("toggle", "hidden", rl.Hidden)
		g.Call("querySelector", "rect.scaleX").Call("setAttribute", "width", ruler.FormatPPI(rl.ScaleX.Width))
		g.Call("querySelector", "rect.scaleY").Call("setAttribute", "width", ruler.FormatPPI(rl.ScaleY.Width))
	}
	if rl := s.Active(); rl != nil {
		g := p.byID(rl.ID())
		// Added is not reset by events that skip rendering.
		for _, l := range p.ctrl.Added() {
			if g.Call("querySelector", "."+l.Key.Class()).IsNull() {
				g.Call("appendChild", p.label(l))
			}
		}
	}

	ctl := p.ctrl.Controls()
	slider := p.byID("densitySlider")
	slider.Set("min", ctl.Slider.Min)
	slider.Set("max", ctl.Slider.Max)
	slider.Set("value", ctl.Slider.Value)
	p.byID("densityInput").Set("value", ctl.Number)

	radios := p.doc.Call("querySelectorAll", `input[name="unit"]`)
	for i := 0; i < radios.Length(); i++ {
		r := radios.Index(i)
		r.Set("checked", ctl.Checked(ruler.Unit(r.Get("value").String())))
	}
	p.byID("config").Get("classList").Call("toggle", "hidden", !ctl.PanelOpen)
}

func (p *page) label(l surface.Label) js.Value {
	el := p.doc.Call("createElementNS", svgNS, "text")
	el.Call("setAttribute", "class", "number "+l.Key.Class())
	el.Call("setAttribute", "x", ruler.FormatPPI(l.X))
	el.Call("setAttribute", "y", ruler.FormatPPI(l.Y))
	if r := l.Rotate; r != nil {
		el.Call("setAttribute", "transform", "rotate("+ruler.FormatPPI(r.Angle)+", "+
			ruler.FormatPPI(r.CX)+", "+ruler.FormatPPI(r.CY)+")")
	}
	el.Set("textContent", l.Text)
	return el
}
