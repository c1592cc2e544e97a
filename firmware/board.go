//go:build tinygo

package main

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/shiftregister"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/tm1637"
	"tinygo.org/x/drivers/tmp102"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/sensor"
	"github.com/itohio/senselog/pkg/window"
)

var (
	_ hal.Sensors  = (*sensors)(nil)
	_ hal.Display  = (*oled)(nil)
	_ hal.Bargraph = (*bargraph)(nil)
	_ hal.Digit    = (*digit)(nil)
	_ hal.Buttons  = (*buttons)(nil)
	_ hal.Storage  = (*at24cx.Device)(nil)
	_ hal.Pin      = machine.Pin(0)
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

var errChannel = errors.New("unknown channel")

// sensors reads the TMP102, the BH1750 and the trimpot ADC.
type sensors struct {
	temp  tmp102.Device
	light bh1750.Device
	pot   machine.ADC
}

func (s *sensors) Read(c sensor.Channel) (int, error) {
	switch c {
	case sensor.Temperature:
		milli, err := s.temp.ReadTemperature()
		if err != nil {
			return 0, err
		}
		return int(milli / 100), nil
	case sensor.Light:
		return int(s.light.Illuminance() / 1000), nil
	case sensor.Potentiometer:
		// Get scales to 16 bits
		return int(s.pot.Get() >> 4), nil
	default:
		return 0, errChannel
	}
}

// oled draws on the SSD1306 panel. Graph coordinates use the logical
// width and height, the panel may be larger.
type oled struct {
	dev           *ssd1306.Device
	width, height int
}

func (o *oled) Graph(samples []int, title string) {
	o.dev.ClearBuffer()
	o.title(title)
	for _, s := range window.Segments(samples, o.width, o.height) {
		tinydraw.Line(o.dev, int16(s.X0), int16(s.Y0), int16(s.X1), int16(s.Y1), white)
	}
	o.flush()
}

func (o *oled) Menu(title string, items []string, cursor int) {
	o.dev.ClearBuffer()
	o.title(title)
	for i, item := range items {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, 0, int16(20+10*i), marker+item, white)
	}
	o.flush()
}

func (o *oled) Message(title, text string) {
	o.dev.ClearBuffer()
	o.title(title)
	tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, 0, 32, text, white)
	o.flush()
}

func (o *oled) flush() {
	if err := o.dev.Display(); err != nil {
		println("display:", err.Error())
	}
}

func (o *oled) title(s string) {
	tinyfont.WriteLine(o.dev, &proggy.TinySZ8pt7b, 0, 8, s, white)
}

// bargraph shifts the LED state into two chained 74HC595.
type bargraph struct {
	dev   *shiftregister.Device
	state uint16
}

func (b *bargraph) SetMask(mask, enable uint16) {
	b.state = b.state&^enable | mask&enable
	b.dev.WriteMask(uint32(b.state))
}

type digit struct {
	dev *tm1637.Device
}

func (d *digit) SetDigit(c byte, blink bool) {
	if blink {
		d.dev.Brightness(DIGIT_DIM)
	} else {
		d.dev.Brightness(DIGIT_BRIGHT)
	}
	d.dev.DisplayChr(c, 0)
}

type buttons [2]machine.Pin

func (b *buttons) Level(btn hal.Button) bool {
	return b[btn].Get()
}
