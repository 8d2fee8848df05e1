// Package pkg provides the libraries behind screenruler, a centimeter and
// inch ruler drawn at true physical size on a screen.
//
// # Overview
//
// A ruler is only correct if the density of the display is known. The user
// supplies it (in dots per inch at the display's device pixel ratio) by
// holding a real ruler against the screen and adjusting until the marks
// match. The configuration is kept in a URL fragment such as
// "#ppi=110&unit=inch" so a calibration survives reloads and can be shared.
//
// # Architecture
//
//	URL fragment / controls
//	         ↓
//	    [ruler] (parse, validate, scale)
//	         ↓
//	    [view] (event dispatch, persistence, control state)
//	         ↓
//	    [render/surface] (view box, scale bars, labels)
//	         ↓
//	    [render/sink] (SVG, HTML, JSON, PNG, PDF)
//
// # Quick Start
//
//	loc := view.NewMemoryLocation("#ppi=110&unit=inch")
//	ctrl := view.NewController(loc,
//	    view.WithDevicePixelRatio(2),
//	    view.WithViewport(ruler.Viewport{Width: 1280, Height: 800}))
//	ctrl.Load()
//
//	svg := sink.RenderSVG(ctrl.Surface())
//
// # Main Packages
//
// [ruler] - Units, configuration, validation against density bounds that
// scale with the device pixel ratio, and the fragment codec.
//
// [view] - The controller every host drives: it maps control events to
// configuration changes, persists committed values to the location and
// keeps the controls in sync.
//
// [render/surface] - Layout of the two rulers. Labels are cached per unit
// and only added, never removed.
//
// [render/sink] - Output formats.
//
// ## Infrastructure
//
// [cache] - File cache for rendered PNG and PDF artifacts.
//
// [errors] - Structured error codes shared by the CLI and the sinks.
//
// [observability] - Hooks for logging view and sink events.
//
// [fonts] - The embedded label font.
//
// [buildinfo] - Version information set at build time.
//
// [ruler]: github.com/matzehuels/screenruler/pkg/ruler
// [view]: github.com/matzehuels/screenruler/pkg/view
// [render/surface]: github.com/matzehuels/screenruler/pkg/render/surface
// [render/sink]: github.com/matzehuels/screenruler/pkg/render/sink
// [cache]: github.com/matzehuels/screenruler/pkg/cache
// [errors]: github.com/matzehuels/screenruler/pkg/errors
// [observability]: github.com/matzehuels/screenruler/pkg/observability
// [fonts]: github.com/matzehuels/screenruler/pkg/fonts
// [buildinfo]: github.com/matzehuels/screenruler/pkg/buildinfo
package pkg
