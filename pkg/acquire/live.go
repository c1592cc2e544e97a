package acquire

import (
	"context"
	"fmt"

	"github.com/itohio/senselog/pkg/bargraph"
	"github.com/itohio/senselog/pkg/sensor"
	"github.com/itohio/senselog/pkg/window"
)

// Live samples channel c into win and redraws the graph every sampling
// interval until the cycle button is pressed. Temperature and light views
// also drive the bargraph; the temperature view sounds the alert song while
// the coarse temperature is above the threshold.
func (a *Acquirer) Live(ctx context.Context, c sensor.Channel, win *window.Window) error {
	height := a.cfg.Display.Height

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !a.released() {
			return nil
		}

		raw, err := a.board.Sensors.Read(c)
		if err != nil {
			return fmt.Errorf("live %v: %w", c, err)
		}
		win.Push(sensor.Normalize(c, raw, height))
		a.board.Display.Graph(win.Samples(), c.String())

		switch c {
		case sensor.Temperature:
			light, err := a.board.Sensors.Read(sensor.Light)
			if err != nil {
				return fmt.Errorf("live %v: %w", sensor.Light, err)
			}
			a.showBargraph(raw, light)
			if sensor.Coarse(sensor.Temperature, raw) > a.cfg.Sampling.AlertThreshold {
				a.alert.Play(a.cfg.Sampling.AlertSong)
			}
		case sensor.Light:
			temp, err := a.board.Sensors.Read(sensor.Temperature)
			if err != nil {
				return fmt.Errorf("live %v: %w", sensor.Temperature, err)
			}
			a.showBargraph(temp, raw)
		case sensor.Potentiometer:
			// no bargraph
		}

		a.waitMs(a.cfg.Sampling.Interval)
	}
}

func (a *Acquirer) showBargraph(temp, light int) {
	mask := bargraph.Encode(sensor.Coarse(sensor.Temperature, temp), sensor.Coarse(sensor.Light, light))
	a.board.Bargraph.SetMask(mask, bargraph.Enable)
}
