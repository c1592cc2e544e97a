package record

import (
	"testing"

	"github.com/itohio/senselog/pkg/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		triple Triple
		want   string
	}{
		{name: "zeros", triple: Triple{}, want: "00000000000"},
		{name: "padded", triple: Triple{Temperature: 12, Light: 456, Potentiometer: 7}, want: "01204560007"},
		{name: "full width", triple: Triple{Temperature: 999, Light: 9999, Potentiometer: 9999}, want: "99999999999"},
		{name: "overflow saturates", triple: Triple{Temperature: 1000, Light: 12345, Potentiometer: 4095}, want: "99999994095"},
		{name: "negative saturates to zero", triple: Triple{Temperature: -5, Light: 10, Potentiometer: 20}, want: "00000100020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.triple)
			assert.Equal(t, tt.want, got.String())
			assert.Len(t, got.String(), Size)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	triples := []Triple{
		{Temperature: 0, Light: 0, Potentiometer: 0},
		{Temperature: 999, Light: 4000, Potentiometer: 4095},
		{Temperature: 32, Light: 31, Potentiometer: 53},
		{Temperature: 123, Light: 9999, Potentiometer: 1},
	}

	for _, want := range triples {
		got, err := Decode(Encode(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecode_Malformed(t *testing.T) {
	var r Record
	copy(r[:], "12a04560789")

	_, err := Decode(r)
	assert.ErrorIs(t, err, ErrMalformed)

	for i := range r {
		r[i] = 0xFF // erased EEPROM
	}
	_, err = Decode(r)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReplayValue_KeepsLastTwoDigits(t *testing.T) {
	r := Encode(Triple{Temperature: 123, Light: 456, Potentiometer: 789})
	require.Equal(t, "12304560789", r.String())

	tests := []struct {
		channel sensor.Channel
		want    int
	}{
		{channel: sensor.Temperature, want: 23},
		{channel: sensor.Light, want: 56},
		{channel: sensor.Potentiometer, want: 89},
	}

	for _, tt := range tests {
		t.Run(tt.channel.String(), func(t *testing.T) {
			got, err := ReplayValue(r, tt.channel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplayValue_NormalizedSamplesAreExact(t *testing.T) {
	r := Encode(Triple{Temperature: 63, Light: 10, Potentiometer: 53})
	for _, c := range sensor.Channels {
		got, err := ReplayValue(r, c)
		require.NoError(t, err)
		assert.Equal(t, Triple{Temperature: 63, Light: 10, Potentiometer: 53}.Get(c), got)
	}
}

func TestReplayValue_Invalid(t *testing.T) {
	var r Record
	copy(r[:], "123045607x9")

	_, err := ReplayValue(r, sensor.Potentiometer)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ReplayValue(r, sensor.Channel(7))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, Field{Offset: 0, Width: 3}, FieldOf(sensor.Temperature))
	assert.Equal(t, Field{Offset: 3, Width: 4}, FieldOf(sensor.Light))
	assert.Equal(t, Field{Offset: 7, Width: 4}, FieldOf(sensor.Potentiometer))
	assert.Equal(t, 999, FieldOf(sensor.Temperature).Max())
	assert.Equal(t, 9999, FieldOf(sensor.Light).Max())
}

func TestParse(t *testing.T) {
	r, err := Parse("02504000123")
	require.NoError(t, err)
	assert.Equal(t, "02504000123", r.String())

	_, err = Parse("0250400012")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Parse("025-4000123")
	assert.ErrorIs(t, err, ErrMalformed)
}
