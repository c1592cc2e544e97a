// Package tone plays short songs written as note/duration/pause groups on a
// square-wave speaker line.
//
// A song is a sequence of three character groups: a note letter (A-G for the
// lower octave, a-g for the upper), a duration digit (n*200ms, 400ms for a
// non-digit) and a pause symbol ('+' 0ms, ',' 5ms, '.' 20ms, '_' 30ms, 5ms
// for anything else). Unknown letters are rests.
package tone

import "time"

// halfPeriods holds the half period of every note letter, A4 = 440Hz.
var halfPeriods = map[byte]time.Duration{
	'A': 1136 * time.Microsecond, // 440 Hz
	'B': 1012 * time.Microsecond, // 494 Hz
	'C': 1911 * time.Microsecond, // 262 Hz
	'D': 1703 * time.Microsecond, // 294 Hz
	'E': 1517 * time.Microsecond, // 330 Hz
	'F': 1432 * time.Microsecond, // 349 Hz
	'G': 1275 * time.Microsecond, // 392 Hz
	'a': 568 * time.Microsecond,  // 880 Hz
	'b': 506 * time.Microsecond,  // 988 Hz
	'c': 956 * time.Microsecond,  // 523 Hz
	'd': 851 * time.Microsecond,  // 587 Hz
	'e': 758 * time.Microsecond,  // 659 Hz
	'f': 716 * time.Microsecond,  // 698 Hz
	'g': 638 * time.Microsecond,  // 784 Hz
}

const (
	durationUnit    = 200 * time.Millisecond
	defaultDuration = 400 * time.Millisecond
	defaultPause    = 5 * time.Millisecond
)

// Step is one parsed note.
type Step struct {
	Note       byte
	HalfPeriod time.Duration // 0 for a rest
	Duration   time.Duration
	Pause      time.Duration
}

// Rest reports whether the step is silent.
func (s Step) Rest() bool {
	return s.HalfPeriod == 0
}

// HalfPeriod returns the half period of a note letter, 0 for unknown letters.
func HalfPeriod(note byte) time.Duration {
	return halfPeriods[note]
}

// Duration decodes a duration symbol.
func Duration(sym byte) time.Duration {
	if sym < '0' || sym > '9' {
		return defaultDuration
	}
	return time.Duration(sym-'0') * durationUnit
}

// Pause decodes a pause symbol.
func Pause(sym byte) time.Duration {
	switch sym {
	case '+':
		return 0
	case ',':
		return 5 * time.Millisecond
	case '.':
		return 20 * time.Millisecond
	case '_':
		return 30 * time.Millisecond
	default:
		return defaultPause
	}
}

// Parse splits a song into steps. Parsing stops at the end of the string; a
// trailing group without a duration symbol is dropped, one without a pause
// symbol becomes a final step with no pause.
func Parse(song string) []Step {
	var steps []Step
	for i := 0; i < len(song); i += 3 {
		if i+1 >= len(song) {
			break
		}
		s := Step{
			Note:       song[i],
			HalfPeriod: HalfPeriod(song[i]),
			Duration:   Duration(song[i+1]),
		}
		if i+2 < len(song) {
			s.Pause = Pause(song[i+2])
		}
		steps = append(steps, s)
	}
	return steps
}

// Length returns how long steps take to play, pauses included.
func Length(steps []Step) time.Duration {
	var d time.Duration
	for _, s := range steps {
		d += s.Duration + s.Pause
	}
	return d
}
