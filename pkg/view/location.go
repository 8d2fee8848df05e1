package view

import (
	"strings"
	"time"
)

// Location holds the URL fragment the configuration is persisted to.
type Location interface {
	// Fragment returns the current fragment, with or without a leading "#".
	Fragment() string
	// Replace sets the fragment without adding a history entry.
	Replace(fragment string)
}

// MemoryLocation is an in-memory [Location]. It records how often the
// fragment was replaced so callers can tell a load from a write.
type MemoryLocation struct {
	fragment string
	replaced int
}

// NewMemoryLocation returns a location holding fragment.
func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: strings.TrimPrefix(fragment, "#")}
}

// Fragment returns the fragment without the leading "#".
func (l *MemoryLocation) Fragment() string { return l.fragment }

// Replace implements [Location].
func (l *MemoryLocation) Replace(fragment string) {
	l.fragment = strings.TrimPrefix(fragment, "#")
	l.replaced++
}

// Replacements returns how many times Replace was called.
func (l *MemoryLocation) Replacements() int { return l.replaced }

// String returns the fragment with its leading "#", or "" when empty.
func (l *MemoryLocation) String() string {
	if l.fragment == "" {
		return ""
	}
	return "#" + l.fragment
}

// Scheduler runs a one-shot callback after a delay. Callbacks are
// fire-and-forget and may be dropped.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// ScrollCorrectionDelay is how long after a resize the scroll position is
// nudged to hide collapsing mobile browser chrome.
const ScrollCorrectionDelay = 500 * time.Millisecond
