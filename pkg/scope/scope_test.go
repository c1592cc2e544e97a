package scope

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_Segment(t *testing.T) {
	tests := []struct {
		name  string
		scale Scale
		seg   window.Segment
		p1    fyne.Position
		p2    fyne.Position
	}{
		{
			name:  "unit scale",
			scale: Scale{X: 1, Y: 1},
			seg:   window.Segment{X0: 88, Y0: 10, X1: 96, Y1: 20},
			p1:    fyne.NewPos(88, 10),
			p2:    fyne.NewPos(96, 20),
		},
		{
			name:  "pixel scale",
			scale: Scale{X: Pixel, Y: Pixel},
			seg:   window.Segment{X0: 88, Y0: 10, X1: 96, Y1: 20},
			p1:    fyne.NewPos(352, 40),
			p2:    fyne.NewPos(384, 80),
		},
		{
			name:  "anisotropic",
			scale: Scale{X: 2, Y: 0.5},
			seg:   window.Segment{X0: 0, Y0: 64, X1: 8, Y1: 0},
			p1:    fyne.NewPos(0, 32),
			p2:    fyne.NewPos(16, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := tt.scale.Segment(tt.seg)
			assert.Equal(t, tt.p1, p1)
			assert.Equal(t, tt.p2, p2)
		})
	}
}

func TestOLED_KeepsLastFrame(t *testing.T) {
	test.NewTempApp(t)
	o := NewOLED(96, 64)

	samples := []int{10, 20, 30}
	o.Graph(samples, "Light")
	samples[0] = 99
	assert.Equal(t, hal.Frame{Kind: "graph", Title: "Light", Samples: []int{10, 20, 30}}, o.Frame())

	o.Menu("Mode", []string{"Real-Time", "Save"}, 1)
	assert.Equal(t, hal.Frame{Kind: "menu", Title: "Mode", Items: []string{"Real-Time", "Save"}, Cursor: 1}, o.Frame())

	o.Message("Saving", "3/90")
	assert.Equal(t, hal.Frame{Kind: "message", Title: "Saving", Text: "3/90"}, o.Frame())
}

func TestOLED_RendersGraphSegments(t *testing.T) {
	test.NewTempApp(t)
	o := NewOLED(96, 64)
	o.Resize(fyne.NewSize(96*Pixel, 64*Pixel))
	r := test.WidgetRenderer(o)

	o.Graph([]int{10, 20, 30, 40}, "Temperature")
	r.Refresh()

	// background, title and three segments
	assert.Len(t, r.Objects(), 5)
	assert.Equal(t, fyne.NewSize(96*Pixel, 64*Pixel), r.MinSize())
}

func TestLEDs_SetMask(t *testing.T) {
	test.NewTempApp(t)
	l := NewLEDs()
	r := test.WidgetRenderer(l).(*ledsRenderer)

	l.SetMask(0x0103, 0xFFFF)
	l.SetMask(0x0000, 0x0001)
	r.Refresh()

	assert.Equal(t, uint16(0x0102), l.Mask())
	assert.Equal(t, ledOff, r.lamps[0].FillColor)
	assert.Equal(t, ledOn, r.lamps[1].FillColor)
	assert.Equal(t, ledOn, r.lamps[8].FillColor)
	assert.Equal(t, ledOff, r.lamps[15].FillColor)
}

func TestDigit_SetDigit(t *testing.T) {
	test.NewTempApp(t)
	d := NewDigit()
	r := test.WidgetRenderer(d).(*digitRenderer)

	d.SetDigit('4', true)
	r.Refresh()
	assert.Equal(t, "4", r.text.Text)
	assert.Equal(t, segmentDim, r.text.Color)

	d.SetDigit('4', false)
	r.Refresh()
	assert.Equal(t, segmentBright, r.text.Color)

	c, blink := d.Value()
	assert.Equal(t, byte('4'), c)
	assert.False(t, blink)
}

func TestButtons_Press(t *testing.T) {
	b := NewButtons(20 * time.Millisecond)
	assert.True(t, b.Level(hal.Cycle))
	assert.True(t, b.Level(hal.Select))

	b.Press(hal.Cycle, hal.Select)
	assert.False(t, b.Level(hal.Cycle))
	assert.False(t, b.Level(hal.Select))

	require.Eventually(t, func() bool {
		return b.Level(hal.Cycle) && b.Level(hal.Select)
	}, time.Second, 5*time.Millisecond)
}
