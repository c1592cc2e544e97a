package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/scope"
	"github.com/itohio/senselog/pkg/sensor"
	"github.com/itohio/senselog/pkg/tone"
	"github.com/itohio/senselog/pkg/ui"
)

func init() {
	simCmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the appliance on a simulated front panel",
		RunE:  func(cmd *cobra.Command, args []string) error { return runSim() },
	}
	rootCmd.AddCommand(simCmd)
}

// speaker counts the edges of the alert tone.
type speaker struct {
	rises int
}

func (s *speaker) High() { s.rises++ }
func (s *speaker) Low()  {}

func simSensors(clock hal.Clock, sim config.SimConfig) *hal.MockSensors {
	waves := map[sensor.Channel]config.WaveConfig{
		sensor.Temperature:   sim.Temperature,
		sensor.Light:         sim.Light,
		sensor.Potentiometer: sim.Trimpot,
	}
	sensors := hal.NewMockSensors(clock)
	for c, w := range waves {
		sensors.Wave(c, w.Base, w.Amplitude, w.Period)
	}
	return sensors
}

func runSim() error {
	image, err := openImage(cfg.Storage.Path, cfg.Storage.Size)
	if err != nil {
		return err
	}
	defer image.Close()

	application := app.NewWithID("io.itohio.senselog")
	window := application.NewWindow("Sensor Logger")

	oled := scope.NewOLED(cfg.Display.Width, cfg.Display.Height)
	leds := scope.NewLEDs()
	digit := scope.NewDigit()
	buttons := scope.NewButtons(pressHold(cfg))

	clock := hal.NewRealClock()
	board := hal.Board{
		Sensors:  simSensors(clock, cfg.Sim),
		Display:  oled,
		Bargraph: leds,
		Digit:    digit,
		Storage:  image,
		Clock:    clock,
		Buttons:  buttons,
		Speaker:  &speaker{},
	}

	window.SetContent(container.NewBorder(
		container.NewBorder(nil, nil, nil, digit, leds),
		buttons.Panel(),
		nil,
		nil,
		oled,
	))
	window.Resize(fyne.NewSize(float32(cfg.Display.Width*scope.Pixel+120), float32(cfg.Display.Height*scope.Pixel+140)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	machine := ui.New(cfg, board)
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("[sim] running", zap.String("image", cfg.Storage.Path))
		err := machine.Run(ctx)
		if err == nil || ctx.Err() != nil {
			return
		}
		logger.Error("[sim] appliance stopped", zap.Error(err))
		fyne.Do(func() {
			dialog.ShowError(fmt.Errorf("appliance stopped: %w", err), window)
		})
	}()

	window.SetOnClosed(cancel)
	window.ShowAndRun()

	cancel()
	<-done
	logger.Info("[sim] stopped", zap.Stringer("mode", machine.State().Mode))
	return nil
}

// pressHold is how long a simulated click holds its line. Live polls the
// buttons only between samples and an alert song blocks a sample, so the
// press outlasts one sample period plus a full alert.
func pressHold(cfg *config.Config) time.Duration {
	alert := tone.Length(tone.Parse(cfg.Sampling.AlertSong))
	return alert + cfg.Sampling.Interval + cfg.Sampling.PollInterval
}
