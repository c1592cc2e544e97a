// Package scope provides fyne widgets that stand in for the appliance front
// panel in the desktop simulator: the graphics panel, the LED bargraph, the
// 7-segment digit and the two buttons.
package scope

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/senselog/pkg/hal"
)

var _ hal.Display = (*OLED)(nil)

// Pixel is the on-screen size of one panel pixel at minimum widget size.
const Pixel = 4

var (
	oledBackground = color.RGBA{R: 5, G: 5, B: 10, A: 255}
	oledInk        = color.RGBA{R: 120, G: 200, B: 255, A: 255}
)

// OLED is a widget emulating the monochrome graphics panel. It is safe to
// draw on from any goroutine.
type OLED struct {
	widget.BaseWidget

	width, height int

	mu    sync.RWMutex
	frame hal.Frame
}

// NewOLED creates a panel of width x height pixels.
func NewOLED(width, height int) *OLED {
	o := &OLED{width: width, height: height}
	o.ExtendBaseWidget(o)
	return o
}

// Frame returns the screen currently shown.
func (o *OLED) Frame() hal.Frame {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.frame
}

func (o *OLED) Graph(samples []int, title string) {
	o.show(hal.Frame{Kind: "graph", Title: title, Samples: append([]int(nil), samples...)})
}

func (o *OLED) Menu(title string, items []string, cursor int) {
	o.show(hal.Frame{Kind: "menu", Title: title, Items: append([]string(nil), items...), Cursor: cursor})
}

func (o *OLED) Message(title, text string) {
	o.show(hal.Frame{Kind: "message", Title: title, Text: text})
}

func (o *OLED) show(f hal.Frame) {
	o.mu.Lock()
	o.frame = f
	o.mu.Unlock()

	// Refresh must run on the main thread
	fyne.Do(o.Refresh)
}

// CreateRenderer creates the widget renderer.
func (o *OLED) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(oledBackground)
	return &oledRenderer{
		oled:       o,
		background: background,
		objects:    []fyne.CanvasObject{background},
	}
}
