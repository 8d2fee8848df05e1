package ruler

import (
	"net/url"
	"strings"
)

// Fragment keys.
const (
	KeyPPI  = "ppi"
	KeyUnit = "unit"
)

// Param is one decoded key/value pair of a URL fragment.
type Param struct {
	Key   string
	Value string
}

// EncodeFragment serializes the fields of c that differ from defaults as a
// "key=value" list joined by "&", without the leading "#". Keys are written
// in a fixed order (ppi, then unit). A configuration equal to the defaults
// encodes to the empty string.
func EncodeFragment(c, defaults Config) string {
	var parts []string
	if c.PPI != defaults.PPI {
		parts = append(parts, encodeComponent(KeyPPI)+"="+encodeComponent(FormatPPI(c.PPI)))
	}
	if c.Unit != defaults.Unit {
		parts = append(parts, encodeComponent(KeyUnit)+"="+encodeComponent(string(c.Unit)))
	}
	return strings.Join(parts, "&")
}

// ParseFragment splits a URL fragment into decoded pairs. A leading "#" is
// optional. Pairs without "=" or with invalid percent-escapes are dropped;
// a pair with more than one "=" keeps the text up to the second one.
func ParseFragment(fragment string) []Param {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return nil
	}
	var params []Param
	for _, raw := range strings.Split(fragment, "&") {
		fields := strings.Split(raw, "=")
		if len(fields) < 2 {
			continue
		}
		key, err := url.PathUnescape(fields[0])
		if err != nil {
			continue
		}
		value, err := url.PathUnescape(fields[1])
		if err != nil {
			continue
		}
		params = append(params, Param{Key: key, Value: value})
	}
	return params
}

// ApplyFragment applies the recognized keys of fragment to c and returns the
// keys it applied, in fragment order. Values are applied raw; run the result
// through [Validator.Validate] afterwards. Unknown keys are ignored, and a
// later occurrence of a key overrides an earlier one.
func ApplyFragment(c *Config, fragment string) []string {
	var applied []string
	for _, p := range ParseFragment(fragment) {
		switch p.Key {
		case KeyPPI:
			c.PPI = ParsePPI(p.Value)
		case KeyUnit:
			c.Unit = ParseUnit(p.Value)
		default:
			continue
		}
		applied = append(applied, p.Key)
	}
	return applied
}

// encodeComponent percent-encodes s the way browsers encode URI components:
// spaces become %20 rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
