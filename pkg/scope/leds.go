package scope

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/senselog/pkg/hal"
)

var _ hal.Bargraph = (*LEDs)(nil)

const ledCount = 16

var (
	ledOn  = color.RGBA{R: 255, G: 40, B: 20, A: 255}
	ledOff = color.RGBA{R: 50, G: 15, B: 10, A: 255}
)

// LEDs is a widget emulating the 16 LED bargraph: the low byte on the top
// row, the high byte on the bottom row, bit 0 leftmost.
type LEDs struct {
	widget.BaseWidget

	mu   sync.RWMutex
	mask uint16
}

// NewLEDs creates a bargraph with every LED off.
func NewLEDs() *LEDs {
	l := &LEDs{}
	l.ExtendBaseWidget(l)
	return l
}

// Mask returns the LED state.
func (l *LEDs) Mask() uint16 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mask
}

func (l *LEDs) SetMask(mask, enable uint16) {
	l.mu.Lock()
	l.mask = l.mask&^enable | mask&enable
	l.mu.Unlock()

	fyne.Do(l.Refresh)
}

// CreateRenderer creates the widget renderer.
func (l *LEDs) CreateRenderer() fyne.WidgetRenderer {
	r := &ledsRenderer{leds: l}
	for i := range r.lamps {
		r.lamps[i] = canvas.NewCircle(ledOff)
		r.objects = append(r.objects, r.lamps[i])
	}
	return r
}

type ledsRenderer struct {
	leds    *LEDs
	lamps   [ledCount]*canvas.Circle
	objects []fyne.CanvasObject
}

func (r *ledsRenderer) MinSize() fyne.Size {
	return fyne.NewSize(8*20, 2*20)
}

func (r *ledsRenderer) Layout(size fyne.Size) {
	cell := fyne.NewSize(size.Width/8, size.Height/2)
	d := min(cell.Width, cell.Height) * 0.8
	for i, lamp := range r.lamps {
		col, row := i%8, i/8
		lamp.Resize(fyne.NewSize(d, d))
		lamp.Move(fyne.NewPos(
			float32(col)*cell.Width+(cell.Width-d)/2,
			float32(row)*cell.Height+(cell.Height-d)/2,
		))
	}
}

func (r *ledsRenderer) Refresh() {
	mask := r.leds.Mask()
	for i, lamp := range r.lamps {
		c := ledOff
		if mask&(1<<i) != 0 {
			c = ledOn
		}
		lamp.FillColor = c
		lamp.Refresh()
	}
}

func (r *ledsRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *ledsRenderer) Destroy() {}
