// UI events and the parameter transition function
package core

import "fmt"

// EventKind identifies the control that produced an event.
type EventKind int

const (
	EventBrightness EventKind = iota
	EventContrast
	EventGaussian
	EventMedian
	EventBilateral
	EventBalanceB
	EventBalanceG
	EventBalanceR
	EventSharpen
	EventEqualize
	EventEdges
	EventSideBySide
	EventReset
)

var eventNames = map[EventKind]string{
	EventBrightness: "brightness",
	EventContrast:   "contrast",
	EventGaussian:   "gaussian_blur",
	EventMedian:     "median_blur",
	EventBilateral:  "bilateral_diameter",
	EventBalanceB:   "blue_balance",
	EventBalanceG:   "green_balance",
	EventBalanceR:   "red_balance",
	EventSharpen:    "sharpen",
	EventEqualize:   "histogram_equalization",
	EventEdges:      "edge_detection",
	EventSideBySide: "side_by_side",
	EventReset:      "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// IsToggle reports whether the event comes from a checkbox.
func (k EventKind) IsToggle() bool {
	switch k {
	case EventSharpen, EventEqualize, EventEdges, EventSideBySide:
		return true
	}
	return false
}

// Event is a single widget interaction. Value carries the raw slider
// position for slider events; On carries the checkbox state for toggles.
type Event struct {
	Kind  EventKind
	Value int
	On    bool
}

// SliderEvent builds an event for a slider moved to position v.
func SliderEvent(kind EventKind, v int) Event {
	return Event{Kind: kind, Value: v}
}

// ToggleEvent builds an event for a checkbox set to on.
func ToggleEvent(kind EventKind, on bool) Event {
	return Event{Kind: kind, On: on}
}

// ResetEvent returns every parameter to neutral.
func ResetEvent() Event {
	return Event{Kind: EventReset}
}

// Position returns the slider position that displays p's value for kind.
// Toggle and reset kinds have no slider and report 0.
func (p Params) Position(kind EventKind) int {
	switch kind {
	case EventBrightness:
		return SliderFromOffset(p.Brightness)
	case EventContrast:
		return SliderFromOffset(p.Contrast)
	case EventGaussian:
		return p.GaussianRadius
	case EventMedian:
		return p.MedianRadius
	case EventBilateral:
		return p.BilateralDiameter
	case EventBalanceB:
		return SliderFromOffset(p.BalanceB)
	case EventBalanceG:
		return SliderFromOffset(p.BalanceG)
	case EventBalanceR:
		return SliderFromOffset(p.BalanceR)
	}
	return 0
}

// Checked reports the checkbox state of a toggle kind.
func (p Params) Checked(kind EventKind) bool {
	switch kind {
	case EventSharpen:
		return p.Sharpen
	case EventEqualize:
		return p.Equalize
	case EventEdges:
		return p.Edges
	case EventSideBySide:
		return p.SideBySide
	}
	return false
}

// Update applies ev to p and returns the new parameter set. Only the field
// owned by the event's control changes; Reset returns Neutral.
func Update(p Params, ev Event) Params {
	switch ev.Kind {
	case EventBrightness:
		p.Brightness = OffsetFromSlider(ev.Value)
	case EventContrast:
		p.Contrast = OffsetFromSlider(ev.Value)
	case EventGaussian:
		p.GaussianRadius = clamp(ev.Value, RadiusMin, RadiusMax)
	case EventMedian:
		p.MedianRadius = clamp(ev.Value, RadiusMin, RadiusMax)
	case EventBilateral:
		p.BilateralDiameter = clamp(ev.Value, RadiusMin, RadiusMax)
	case EventBalanceB:
		p.BalanceB = OffsetFromSlider(ev.Value)
	case EventBalanceG:
		p.BalanceG = OffsetFromSlider(ev.Value)
	case EventBalanceR:
		p.BalanceR = OffsetFromSlider(ev.Value)
	case EventSharpen:
		p.Sharpen = ev.On
	case EventEqualize:
		p.Equalize = ev.On
	case EventEdges:
		p.Edges = ev.On
	case EventSideBySide:
		p.SideBySide = ev.On
	case EventReset:
		return Neutral()
	}
	return p
}
