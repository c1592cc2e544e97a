package ui

import "github.com/itohio/senselog/pkg/sensor"

// Mode is a top level menu entry.
type Mode int

const (
	RealTime Mode = iota
	Save
	ShowSaved
)

// Modes lists every mode in menu order.
var Modes = [...]Mode{RealTime, Save, ShowSaved}

func (m Mode) String() string {
	switch m {
	case RealTime:
		return "Real-Time"
	case Save:
		return "Save"
	case ShowSaved:
		return "Show Saved"
	default:
		return "Unknown"
	}
}

// Next returns the mode following m, wrapping around.
func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(Modes))
}

// State is the operator's current selection.
type State struct {
	Mode   Mode
	Option sensor.Channel
}

// Level is the menu the cycle button currently moves through.
type Level int

const (
	LevelModes Level = iota
	LevelOptions
	LevelCode
)

func (l Level) String() string {
	switch l {
	case LevelModes:
		return "modes"
	case LevelOptions:
		return "options"
	case LevelCode:
		return "code"
	default:
		return "unknown"
	}
}

func modeItems() []string {
	items := make([]string, len(Modes))
	for i, m := range Modes {
		items[i] = m.String()
	}
	return items
}

func optionItems() []string {
	items := make([]string, len(sensor.Channels))
	for i, c := range sensor.Channels {
		items[i] = c.String()
	}
	return items
}
