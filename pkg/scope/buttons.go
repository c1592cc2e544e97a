package scope

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/senselog/pkg/hal"
)

var _ hal.Buttons = (*Buttons)(nil)

// Buttons emulates the two momentary buttons. A click holds the line low for
// the hold time, long enough for the slowest poll to see it.
type Buttons struct {
	hold    time.Duration
	pressed [2]atomic.Bool
}

// NewButtons creates released buttons.
func NewButtons(hold time.Duration) *Buttons {
	return &Buttons{hold: hold}
}

// Level reports the line level: false while pressed.
func (b *Buttons) Level(btn hal.Button) bool {
	return !b.pressed[btn].Load()
}

// Press holds the given buttons together.
func (b *Buttons) Press(btns ...hal.Button) {
	for _, btn := range btns {
		b.pressed[btn].Store(true)
	}
	time.AfterFunc(b.hold, func() {
		for _, btn := range btns {
			b.pressed[btn].Store(false)
		}
	})
}

// Panel creates the clickable front panel buttons.
func (b *Buttons) Panel() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButton("Cycle", func() { b.Press(hal.Cycle) }),
		widget.NewButton("Select", func() { b.Press(hal.Select) }),
		widget.NewButton("Back", func() { b.Press(hal.Cycle, hal.Select) }),
	)
}
