package tone

import "time"

// MaxSampleRate is the highest rate with a whole nanosecond sample period.
const MaxSampleRate = int(time.Second)

// Render synthesizes steps as a square wave of 16-bit PCM samples at
// sampleRate, full scale at amplitude. The output follows Player timing:
// whole periods until the duration is reached, then the pause.
// Rates outside (0, MaxSampleRate] render nothing.
func Render(steps []Step, sampleRate int, amplitude int16) []int16 {
	if sampleRate <= 0 || sampleRate > MaxSampleRate {
		return nil
	}
	var out []int16
	perSample := time.Second / time.Duration(sampleRate)

	emit := func(d time.Duration, level int16) {
		for n := d / perSample; n > 0; n-- {
			out = append(out, level)
		}
	}

	for _, s := range steps {
		if s.Rest() {
			emit(s.Duration, 0)
		} else {
			for t := time.Duration(0); t < s.Duration; t += 2 * s.HalfPeriod {
				emit(s.HalfPeriod, amplitude)
				emit(s.HalfPeriod, -amplitude)
			}
		}
		emit(s.Pause, 0)
	}
	return out
}
