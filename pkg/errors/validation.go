package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// ValidateFormat checks that format is one of the allowed output formats.
// Matching is case-sensitive; callers normalize first.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unknown format %q (supported: %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateUnit checks that unit is one of the allowed units.
//
// The ruler itself resets an unknown unit to its default; this is for
// command-line flags, where a typo should be reported rather than ignored.
func ValidateUnit(unit string, allowed ...string) error {
	if !slices.Contains(allowed, unit) {
		return New(ErrCodeInvalidUnit, "unknown unit %q (supported: %s)", unit, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateOutputPath validates a file path given for rendered output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateDimension checks that a named measurement, such as a viewport
// width or a pixel ratio, is a finite positive number no larger than limit.
func ValidateDimension(name string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", name, v)
	}
	if v > limit {
		return New(ErrCodeInvalidInput, "%s must be at most %v, got %v", name, limit, v)
	}
	return nil
}
