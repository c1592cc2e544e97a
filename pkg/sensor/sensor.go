package sensor

// Channel selects one of the three measured quantities.
type Channel int

const (
	Temperature Channel = iota
	Light
	Potentiometer
)

// Channels lists every channel in menu order.
var Channels = [...]Channel{Temperature, Light, Potentiometer}

// Raw input ranges of the sensors.
const (
	MaxLight         = 4000 // lux
	MaxPotentiometer = 4095 // 12-bit ADC
)

// Graph rows used by the light and potentiometer normalizations.
const (
	rowLow  = 10
	rowSpan = 43
)

func (c Channel) String() string {
	switch c {
	case Temperature:
		return "Temperature"
	case Light:
		return "Light"
	case Potentiometer:
		return "Trimpot"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	return c >= Temperature && c <= Potentiometer
}

// Next returns the channel following c in menu order, wrapping around.
func (c Channel) Next() Channel {
	return Channel((int(c) + 1) % len(Channels))
}

// Normalize maps a raw reading of channel c to a graph row offset in [0, height).
// Temperature is given in tenths of a degree Celsius, light in lux and the
// potentiometer as a 12-bit ADC count.
func Normalize(c Channel, raw int, height int) int {
	var v int
	switch c {
	case Temperature:
		// 15..35 °C spans rows 1..63
		t := float32(raw) / 10
		v = int((t-15)/20*62 + 1)
	case Light:
		v = rowLow + raw*rowSpan/MaxLight
	case Potentiometer:
		v = rowLow + raw*rowSpan/MaxPotentiometer
	}
	return clamp(v, 0, height-1)
}

// Coarse returns the pre-divided magnitude of a raw reading that drives the
// bargraph and the temperature alert: whole units divided by five. Whole
// units are degrees Celsius for temperature and hundreds of counts for light
// and the potentiometer.
func Coarse(c Channel, raw int) int {
	switch c {
	case Temperature:
		return raw / 10 / 5
	case Light, Potentiometer:
		return raw / 100 / 5
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
