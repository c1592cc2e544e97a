// Package hal declares the collaborators the appliance logic talks to. Board
// code, the desktop simulator and tests each provide their own implementations.
package hal

import (
	"io"

	"github.com/itohio/senselog/pkg/sensor"
)

// Button identifies one of the two front panel buttons.
type Button int

const (
	Cycle Button = iota
	Select
)

func (b Button) String() string {
	switch b {
	case Cycle:
		return "cycle"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// Sensors returns the most recent raw reading of a channel: temperature in
// tenths of a degree Celsius, light in lux (0-4000), potentiometer as a
// 12-bit count (0-4095). Read blocks until a value is available.
type Sensors interface {
	Read(c sensor.Channel) (int, error)
}

// Display is the graphics panel.
type Display interface {
	// Graph clears the panel and draws the samples as a connected line with a title.
	Graph(samples []int, title string)
	// Menu clears the panel and draws a titled list with a cursor marker.
	Menu(title string, items []string, cursor int)
	// Message clears the panel and draws a title and one line of text.
	Message(title, text string)
}

// Bargraph drives the 16 LED bargraph. Only bits set in enable are updated.
type Bargraph interface {
	SetMask(mask, enable uint16)
}

// Digit drives the single 7-segment digit.
type Digit interface {
	SetDigit(c byte, blink bool)
}

// Storage is byte-addressed non-volatile memory. Access is synchronous.
type Storage interface {
	io.ReaderAt
	io.WriterAt
}

// Clock provides blocking waits and a monotonic millisecond counter.
type Clock interface {
	NowMs() uint32
	WaitMs(n uint32)
	WaitUs(n uint32)
}

// Buttons reads the button lines. Lines are active-low: false means pressed.
type Buttons interface {
	Level(b Button) bool
}

// Pin is a digital output, the speaker line.
type Pin interface {
	High()
	Low()
}

// Board bundles every collaborator.
type Board struct {
	Sensors  Sensors
	Display  Display
	Bargraph Bargraph
	Digit    Digit
	Storage  Storage
	Clock    Clock
	Buttons  Buttons
	Speaker  Pin
}
