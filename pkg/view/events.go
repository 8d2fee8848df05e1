package view

import (
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// ControlID names an interactive control.
type ControlID string

const (
	ControlDensitySlider ControlID = "densitySlider"
	ControlDensityInput  ControlID = "densityInput"
	ControlUnit          ControlID = "unit"
	ControlConfigButton  ControlID = "configBtn"
	ControlWindow        ControlID = "window"
)

// EventKind names what happened to a control.
type EventKind string

const (
	// EventInput fires continuously while a control is being dragged.
	EventInput EventKind = "input"
	// EventChange fires when a control value is committed.
	EventChange EventKind = "change"
	EventClick  EventKind = "click"
	EventResize EventKind = "resize"
)

// Event is one input event. Value carries the control's raw text value;
// Viewport is only read for resize events.
type Event struct {
	Control  ControlID
	Kind     EventKind
	Value    string
	Viewport ruler.Viewport
}

// SliderInput is the density slider being dragged to v.
func SliderInput(v string) Event {
	return Event{Control: ControlDensitySlider, Kind: EventInput, Value: v}
}

// SliderChange is the density slider released at v.
func SliderChange(v string) Event {
	return Event{Control: ControlDensitySlider, Kind: EventChange, Value: v}
}

// DensityChange is a committed entry in the numeric density field.
func DensityChange(v string) Event {
	return Event{Control: ControlDensityInput, Kind: EventChange, Value: v}
}

// UnitChange is a unit radio being selected.
func UnitChange(u string) Event {
	return Event{Control: ControlUnit, Kind: EventChange, Value: u}
}

// ToggleConfig is a click on the configuration panel button.
func ToggleConfig() Event {
	return Event{Control: ControlConfigButton, Kind: EventClick}
}

// Resize is the window resizing to w x h device-independent pixels.
func Resize(w, h float64) Event {
	return Event{Control: ControlWindow, Kind: EventResize, Viewport: ruler.Viewport{Width: w, Height: h}}
}

type eventKey struct {
	control ControlID
	kind    EventKind
}

// intent is a dispatch table entry. mutate edits the configuration; a nil
// mutate means the event does not touch the configuration and run handles
// it instead.
type intent struct {
	mutate  func(cfg *ruler.Config, value string)
	persist bool
	run     func(c *Controller, e Event)
}

func setPPI(cfg *ruler.Config, v string)  { cfg.PPI = ruler.ParsePPI(v) }
func setUnit(cfg *ruler.Config, v string) { cfg.Unit = ruler.ParseUnit(v) }

// dispatchTable maps control events to intents. Dragging the slider updates
// the view without persisting; committed values are persisted.
var dispatchTable = map[eventKey]intent{
	{ControlDensitySlider, EventInput}:  {mutate: setPPI, persist: false},
	{ControlDensitySlider, EventChange}: {mutate: setPPI, persist: true},
	{ControlDensityInput, EventChange}:  {mutate: setPPI, persist: true},
	{ControlUnit, EventChange}:          {mutate: setUnit, persist: true},
	{ControlConfigButton, EventClick}:   {run: (*Controller).togglePanel},
	{ControlWindow, EventResize}:        {run: (*Controller).resize},
}
