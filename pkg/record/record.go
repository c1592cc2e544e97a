// Package record packs sample triples into fixed-width text records and lays
// them out in non-volatile storage.
package record

import (
	"fmt"
	"strconv"

	"github.com/itohio/senselog/pkg/sensor"
)

// Size is the length of one encoded record in bytes.
const Size = 11

// Record is one encoded triple: 3 digits temperature, 4 digits light,
// 4 digits potentiometer, zero padded, no separators.
type Record [Size]byte

// Triple is one sample of every channel.
type Triple struct {
	Temperature   int
	Light         int
	Potentiometer int
}

// Get returns the value of channel c.
func (t Triple) Get(c sensor.Channel) int {
	switch c {
	case sensor.Temperature:
		return t.Temperature
	case sensor.Light:
		return t.Light
	case sensor.Potentiometer:
		return t.Potentiometer
	}
	return 0
}

// Field locates a channel inside a record.
type Field struct {
	Offset int
	Width  int
}

var fields = [...]Field{
	sensor.Temperature:   {Offset: 0, Width: 3},
	sensor.Light:         {Offset: 3, Width: 4},
	sensor.Potentiometer: {Offset: 7, Width: 4},
}

// FieldOf returns the offset/width of channel c.
func FieldOf(c sensor.Channel) Field {
	return fields[c]
}

// Max returns the largest value the field can hold.
func (f Field) Max() int {
	m := 1
	for range f.Width {
		m *= 10
	}
	return m - 1
}

// Encode formats t into a record. Values that do not fit their field
// saturate to all nines, negative values to zero.
func Encode(t Triple) Record {
	var r Record
	for _, c := range sensor.Channels {
		f := fields[c]
		v := max(0, min(t.Get(c), f.Max()))
		putDigits(r[f.Offset:f.Offset+f.Width], v)
	}
	return r
}

// Decode parses every field of r at full width.
func Decode(r Record) (Triple, error) {
	var vals [len(sensor.Channels)]int
	for _, c := range sensor.Channels {
		f := fields[c]
		v, err := parseDigits(r[f.Offset : f.Offset+f.Width])
		if err != nil {
			return Triple{}, fmt.Errorf("%v field %q: %w", c, r[f.Offset:f.Offset+f.Width], err)
		}
		vals[c] = v
	}
	return Triple{
		Temperature:   vals[sensor.Temperature],
		Light:         vals[sensor.Light],
		Potentiometer: vals[sensor.Potentiometer],
	}, nil
}

// ReplayValue extracts channel c for playback. Only the last two characters
// of the field are parsed, matching how stored runs have always been
// replayed: "0456" on the light field replays as 56.
func ReplayValue(r Record, c sensor.Channel) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("channel %d: %w", c, ErrMalformed)
	}
	f := fields[c]
	field := r[f.Offset : f.Offset+f.Width]
	v, err := parseDigits(field[len(field)-2:])
	if err != nil {
		return 0, fmt.Errorf("%v field %q: %w", c, field, err)
	}
	return v, nil
}

// Parse converts an 11 character string into a record.
func Parse(s string) (Record, error) {
	var r Record
	if len(s) != Size {
		return r, fmt.Errorf("length %d, want %d: %w", len(s), Size, ErrMalformed)
	}
	copy(r[:], s)
	if _, err := Decode(r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (r Record) String() string {
	return string(r[:])
}

func putDigits(dst []byte, v int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}
}

func parseDigits(b []byte) (int, error) {
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrMalformed
		}
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, ErrMalformed
	}
	return v, nil
}
