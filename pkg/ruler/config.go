package ruler

import (
	"math"
	"strconv"
	"strings"
)

// Density limits and defaults in dots per inch at a pixel ratio of 1.
const (
	MinPPI     = 50
	MaxPPI     = 200
	DefaultPPI = 60

	DefaultUnit = Centimeter
)

// Config is the ruler configuration.
type Config struct {
	Unit Unit    `json:"unit"`
	PPI  float64 `json:"ppi"`
}

// Bounds is the closed density range accepted by the validator.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Clamp limits v to b. NaN is returned unchanged.
func (b Bounds) Clamp(v float64) float64 {
	switch {
	case v < b.Min:
		return b.Min
	case v > b.Max:
		return b.Max
	}
	return v
}

// BoundsFor returns the density bounds for a device pixel ratio.
func BoundsFor(dpr float64) Bounds {
	dpr = NormalizeDPR(dpr)
	return Bounds{Min: MinPPI * dpr, Max: MaxPPI * dpr}
}

// Defaults returns the initial configuration for a device pixel ratio.
func Defaults(dpr float64) Config {
	return Config{Unit: DefaultUnit, PPI: DefaultPPI * NormalizeDPR(dpr)}
}

// Validator normalizes configurations against a fixed snapshot of defaults.
// The zero value is not usable; create one with [NewValidator].
type Validator struct {
	defaults Config
	bounds   Bounds
}

// NewValidator returns a validator for a display with the given pixel ratio.
func NewValidator(dpr float64) *Validator {
	return &Validator{defaults: Defaults(dpr), bounds: BoundsFor(dpr)}
}

// Defaults returns a copy of the default configuration.
func (v *Validator) Defaults() Config { return v.defaults }

// Bounds returns the accepted density range.
func (v *Validator) Bounds() Bounds { return v.bounds }

// Validate normalizes c in place: the density is clamped into the bounds
// (NaN resets to the default) and unknown units reset to the default unit.
// It reports whether anything changed.
func (v *Validator) Validate(c *Config) bool {
	before := *c
	if math.IsNaN(c.PPI) {
		c.PPI = v.defaults.PPI
	} else {
		c.PPI = v.bounds.Clamp(c.PPI)
	}
	if !c.Unit.Valid() {
		c.Unit = v.defaults.Unit
	}
	return before.Unit != c.Unit || before.PPI != c.PPI
}

// ParsePPI converts user text to a density. Blank input reads as 0 and
// anything else that is not a number reads as NaN, so [Validator.Validate]
// clamps the former to the minimum and resets the latter to the default.
// Unsigned "0x", "0o" and "0b" integer literals are accepted as the browser's
// number coercion accepts them; a sign in front of a prefix is not.
func ParsePPI(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		if strings.ContainsRune(s, '_') {
			return math.NaN()
		}
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat returns ±Inf with a range error for huge values.
		if math.IsInf(f, 0) {
			return f
		}
		return math.NaN()
	}
	return f
}

// ParseUnit converts user text to a unit without validating it. The text is
// kept as is, so " inch" is not a unit and validates to the default.
func ParseUnit(s string) Unit {
	return Unit(s)
}

// FormatPPI formats a density with the shortest exact representation.
func FormatPPI(ppi float64) string {
	return strconv.FormatFloat(ppi, 'f', -1, 64)
}
