package scope

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/senselog/pkg/hal"
)

var _ hal.Digit = (*Digit)(nil)

var (
	segmentBright = color.RGBA{R: 255, G: 60, B: 30, A: 255}
	segmentDim    = color.RGBA{R: 120, G: 30, B: 15, A: 255}
)

// Digit is a widget emulating the single 7-segment digit. A blinking digit is
// shown dimmed.
type Digit struct {
	widget.BaseWidget

	mu    sync.RWMutex
	char  byte
	blink bool
}

// NewDigit creates a blank digit.
func NewDigit() *Digit {
	d := &Digit{char: ' '}
	d.ExtendBaseWidget(d)
	return d
}

// Value returns the character shown and whether it blinks.
func (d *Digit) Value() (byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.char, d.blink
}

func (d *Digit) SetDigit(c byte, blink bool) {
	d.mu.Lock()
	d.char, d.blink = c, blink
	d.mu.Unlock()

	fyne.Do(d.Refresh)
}

// CreateRenderer creates the widget renderer.
func (d *Digit) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(" ", segmentBright)
	text.TextSize = 48
	text.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	text.Alignment = fyne.TextAlignCenter
	return &digitRenderer{digit: d, text: text}
}

type digitRenderer struct {
	digit *Digit
	text  *canvas.Text
}

func (r *digitRenderer) MinSize() fyne.Size {
	return r.text.MinSize()
}

func (r *digitRenderer) Layout(size fyne.Size) {
	r.text.Resize(size)
}

func (r *digitRenderer) Refresh() {
	c, blink := r.digit.Value()
	r.text.Text = string(rune(c))
	r.text.Color = segmentBright
	if blink {
		r.text.Color = segmentDim
	}
	r.text.Refresh()
}

func (r *digitRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}

func (r *digitRenderer) Destroy() {}
