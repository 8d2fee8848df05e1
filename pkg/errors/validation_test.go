package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	allowed := []string{"svg", "html", "json", "png", "pdf"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"pdf", "pdf", false},

		{"empty", "", true},
		{"unknown", "gif", true},
		{"case sensitive", "SVG", true},
		{"padded", " svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateFormatListsSupported(t *testing.T) {
	err := ValidateFormat("gif", "svg", "png")
	if !strings.Contains(UserMessage(err), "svg, png") {
		t.Errorf("message %q should list supported formats", UserMessage(err))
	}
}

func TestValidateUnit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"cm", "cm", false},
		{"inch", "inch", false},

		{"empty", "", true},
		{"plural", "inches", true},
		{"mm", "mm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUnit(tt.input, "cm", "inch")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidUnit) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidUnit)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "ruler.svg", false},
		{"valid nested", "out/ruler.png", false},
		{"valid absolute", "/tmp/ruler.pdf", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "ruler\x00.svg", true},
		{"newline", "ruler\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 300, false},
		{"fractional", 1.5, false},
		{"at limit", 16384, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"infinite", math.Inf(1), true},
		{"over limit", 16385, true},
		{"huge", 1e12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.input, 16384)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidUnit,
		ErrCodeInvalidPath,
		ErrCodeRenderFailed,
		ErrCodeIO,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
