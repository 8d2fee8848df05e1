// Package ruler holds the configuration model of the on-screen ruler and the
// arithmetic that maps screen pixels to physical length.
//
// # Configuration
//
// A [Config] pairs a measurement [Unit] (centimeters or inches) with a pixel
// density in dots per inch, already scaled by the device pixel ratio. The
// valid density range depends on that ratio, so defaults and bounds are
// derived from it:
//
//	v := ruler.NewValidator(2.0)       // Retina-class display
//	cfg := v.Defaults()                // {Unit: cm, PPI: 120}
//	cfg.PPI = ruler.ParsePPI("9000")
//	v.Validate(&cfg)                   // cfg.PPI == 400
//
// Validation never fails: out-of-range densities are clamped, NaN falls back
// to the default, and unknown units fall back to centimeters.
//
// # Unit Conversion
//
// [NewScale] derives pixels per unit and drawing units per unit for a
// configuration, and [Scale.Measure] turns a viewport size into the visible
// physical length and the matching drawing-unit extents.
//
// # Fragment Persistence
//
// [EncodeFragment] serializes only the fields that differ from the defaults,
// and [ApplyFragment] applies the recognized keys of a URL fragment:
//
//	frag := ruler.EncodeFragment(cfg, v.Defaults()) // "ppi=150&unit=inch"
//	ruler.ApplyFragment(&cfg, "#unit=inch&ppi=150")
package ruler
