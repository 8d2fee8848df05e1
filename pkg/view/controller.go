package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/screenruler/pkg/observability"
	"github.com/matzehuels/screenruler/pkg/render/surface"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// Option configures a [Controller].
type Option func(*Controller)

// WithDevicePixelRatio sets the display's pixel ratio (default 1).
func WithDevicePixelRatio(dpr float64) Option {
	return func(c *Controller) { c.dpr = ruler.NormalizeDPR(dpr) }
}

// WithViewport sets the initial viewport in device-independent pixels.
func WithViewport(vp ruler.Viewport) Option {
	return func(c *Controller) { c.viewport = vp }
}

// WithScrollCorrection schedules scroll on s after every resize. Without it
// resizes only re-render.
func WithScrollCorrection(s Scheduler, scroll func()) Option {
	return func(c *Controller) { c.scheduler, c.scroll = s, scroll }
}

// WithHooks overrides the globally registered view hooks.
func WithHooks(h observability.ViewHooks) Option {
	return func(c *Controller) {
		if h != nil {
			c.hooks = h
		}
	}
}

// Controller is the ruler view. It is not safe for concurrent use.
type Controller struct {
	cfg       ruler.Config
	validator *ruler.Validator
	controls  Controls
	surface   *surface.Surface
	location  Location
	viewport  ruler.Viewport
	dpr       float64

	scheduler Scheduler
	scroll    func()
	hooks     observability.ViewHooks

	lastAdded []surface.Label
}

// NewController returns a controller persisting to loc. The configuration
// starts at the defaults for the pixel ratio; call [Controller.Load] to
// apply the fragment held by loc.
func NewController(loc Location, opts ...Option) *Controller {
	if loc == nil {
		loc = NewMemoryLocation("")
	}
	c := &Controller{
		location: loc,
		dpr:      1,
		surface:  surface.New(),
		hooks:    observability.View(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.validator = ruler.NewValidator(c.dpr)
	c.cfg = c.validator.Defaults()
	c.controls.sync(c.cfg, c.validator.Bounds())
	return c
}

// Load applies the location's fragment and renders without writing the
// fragment back. An empty fragment opens the configuration panel so a
// first-time visitor sees the calibration controls.
func (c *Controller) Load() {
	frag := c.location.Fragment()
	ruler.ApplyFragment(&c.cfg, frag)
	c.update(false)
	if strings.TrimPrefix(frag, "#") == "" {
		c.controls.PanelOpen = true
	}
}

// Dispatch routes e through the dispatch table and runs the update
// pipeline. Events without a table entry are rejected and change nothing.
func (c *Controller) Dispatch(e Event) error {
	in, ok := dispatchTable[eventKey{e.Control, e.Kind}]
	if !ok {
		return fmt.Errorf("view: no handler for %s %s", e.Control, e.Kind)
	}
	if in.run != nil {
		in.run(c, e)
		return nil
	}
	in.mutate(&c.cfg, e.Value)
	c.update(in.persist)
	return nil
}

// update runs validate -> persist -> sync -> render.
func (c *Controller) update(persist bool) {
	before := c.cfg
	c.validator.Validate(&c.cfg)
	c.hooks.OnValidated(before, c.cfg)

	if persist {
		frag := ruler.EncodeFragment(c.cfg, c.validator.Defaults())
		c.location.Replace("#" + frag)
		c.hooks.OnPersisted(frag)
	}

	c.controls.sync(c.cfg, c.validator.Bounds())
	c.render()
}

func (c *Controller) render() {
	start := time.Now()
	c.lastAdded = c.surface.Render(c.viewport, c.cfg, c.dpr)
	c.hooks.OnRendered(c.cfg.Unit, len(c.lastAdded), c.surface.Active().Len(), time.Since(start))
}

func (c *Controller) togglePanel(Event) {
	c.controls.PanelOpen = !c.controls.PanelOpen
}

func (c *Controller) resize(e Event) {
	c.viewport = e.Viewport
	c.render()
	if c.scheduler != nil && c.scroll != nil {
		c.scheduler.AfterFunc(ScrollCorrectionDelay, c.scroll)
	}
}

// Config returns the current, validated configuration.
func (c *Controller) Config() ruler.Config { return c.cfg }

// Defaults returns the immutable default configuration.
func (c *Controller) Defaults() ruler.Config { return c.validator.Defaults() }

// Bounds returns the accepted density range.
func (c *Controller) Bounds() ruler.Bounds { return c.validator.Bounds() }

// Controls returns the state of the interactive controls.
func (c *Controller) Controls() Controls { return c.controls }

// Surface returns the rendered surface. Sinks read it; callers must not
// render it themselves.
func (c *Controller) Surface() *surface.Surface { return c.surface }

// Viewport returns the current viewport.
func (c *Controller) Viewport() ruler.Viewport { return c.viewport }

// DevicePixelRatio returns the display's pixel ratio.
func (c *Controller) DevicePixelRatio() float64 { return c.dpr }

// Added returns the labels created by the most recent render.
func (c *Controller) Added() []surface.Label { return c.lastAdded }

// Fragment returns the fragment that encodes the current configuration,
// without the leading "#".
func (c *Controller) Fragment() string {
	return ruler.EncodeFragment(c.cfg, c.validator.Defaults())
}
