// Package view implements the ruler view controller.
//
// A [Controller] owns the authoritative [ruler.Config], the immutable
// defaults, the ruler [surface.Surface] and the state of the interactive
// controls. Every input arrives as an [Event] and is routed through a
// dispatch table to a configuration intent, followed by a fixed pipeline:
//
//	mutate -> validate -> (maybe) persist -> sync controls -> render
//
// The controls are a view of the configuration, never a source of truth:
// after every change [Controls] are rewritten from the validated values.
//
// Persistence goes through a [Location], which replaces the URL fragment
// without adding a history entry. [MemoryLocation] backs the CLI and tests;
// the browser build implements Location on window.location.
//
// The controller is single-threaded: all events run to completion
// synchronously, and callers must not dispatch concurrently.
package view
