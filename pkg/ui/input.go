package ui

import "github.com/itohio/senselog/pkg/hal"

// Event is the outcome of one button poll.
type Event int

const (
	None Event = iota
	CyclePress
	SelectPress
	// Back is a select press while the cycle button is held.
	Back
)

// Input turns active-low button levels into press events. A press is a
// released to pressed transition seen between two polls.
type Input struct {
	buttons hal.Buttons
	pressed [2]bool
}

// NewInput creates an Input assuming both buttons start released.
func NewInput(buttons hal.Buttons) *Input {
	return &Input{buttons: buttons}
}

// Poll samples both lines and reports at most one event. Select takes
// precedence over cycle when both go down in the same poll.
func (in *Input) Poll() Event {
	cycle := !in.buttons.Level(hal.Cycle)
	sel := !in.buttons.Level(hal.Select)

	cycleEdge := cycle && !in.pressed[hal.Cycle]
	selectEdge := sel && !in.pressed[hal.Select]
	in.pressed[hal.Cycle] = cycle
	in.pressed[hal.Select] = sel

	switch {
	case selectEdge && cycle:
		return Back
	case selectEdge:
		return SelectPress
	case cycleEdge:
		return CyclePress
	default:
		return None
	}
}

// Reset treats both buttons as held, so a button still down after a session
// ends is not taken as a new press.
func (in *Input) Reset() {
	in.pressed = [2]bool{true, true}
}
