// Package fonts provides the font used for tick labels.
//
// The raster and PDF sinks need actual glyph outlines, so the Go Regular
// typeface from golang.org/x/image is bundled into the binary. SVG output can
// reference it by family name or embed it as a data URI.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

// RegularTTF returns the TTF font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the TTF font data as a base64 string.
// The result is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// FontFamily is the CSS font-family name for the bundled font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers without the bundled font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`
