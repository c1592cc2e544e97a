package acquire

import (
	"context"
	"fmt"
	"time"

	"github.com/itohio/senselog/pkg/record"
	"github.com/itohio/senselog/pkg/sensor"
)

// MaxCode is the largest duration code the prompt offers.
const MaxCode = 9

// CodeWait converts a duration code 0..9 into the wait between captured
// samples. Codes outside the range are clamped.
func CodeWait(code int, step time.Duration) time.Duration {
	return time.Duration(max(0, min(code, MaxCode))) * step
}

// Capture records a full run: every slot, from slot 0, holds one normalized
// sample of all three channels. The run waits CodeWait(code) after every
// sample and never wraps. It returns the number of slots written.
func (a *Acquirer) Capture(ctx context.Context, code int) (int, error) {
	wait := CodeWait(code, a.cfg.Capture.CodeStep)
	height := a.cfg.Display.Height
	slots := a.store.Capacity()

	for n := 0; n < slots; n++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		var vals [len(sensor.Channels)]int
		for _, c := range sensor.Channels {
			raw, err := a.board.Sensors.Read(c)
			if err != nil {
				return n, fmt.Errorf("capture slot %d: %v: %w", n, c, err)
			}
			vals[c] = sensor.Normalize(c, raw, height)
		}

		rec := record.Encode(record.Triple{
			Temperature:   vals[sensor.Temperature],
			Light:         vals[sensor.Light],
			Potentiometer: vals[sensor.Potentiometer],
		})
		if err := a.store.Write(n, rec); err != nil {
			return n, fmt.Errorf("capture: %w", err)
		}

		a.board.Display.Message("Saving", fmt.Sprintf("%d/%d", n+1, slots))
		a.waitMs(wait)
	}

	return slots, nil
}
