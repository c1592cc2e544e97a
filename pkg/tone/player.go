package tone

import (
	"time"

	"github.com/itohio/senselog/pkg/hal"
)

// Player plays songs by toggling a pin.
type Player struct {
	pin   hal.Pin
	clock hal.Clock
}

// NewPlayer creates a player on pin timed by clock.
func NewPlayer(pin hal.Pin, clock hal.Clock) *Player {
	return &Player{pin: pin, clock: clock}
}

// Play parses and plays song. It blocks until the song is over.
func (p *Player) Play(song string) {
	for _, s := range Parse(song) {
		p.PlayStep(s)
	}
}

// PlayStep plays one step followed by its pause.
func (p *Player) PlayStep(s Step) {
	if s.Rest() {
		p.clock.WaitMs(uint32(s.Duration / time.Millisecond))
	} else {
		half := uint32(s.HalfPeriod / time.Microsecond)
		total := uint32(s.Duration / time.Microsecond)
		for t := uint32(0); t < total; t += 2 * half {
			p.pin.High()
			p.clock.WaitUs(half)
			p.pin.Low()
			p.clock.WaitUs(half)
		}
	}
	if s.Pause > 0 {
		p.clock.WaitMs(uint32(s.Pause / time.Millisecond))
	}
}
