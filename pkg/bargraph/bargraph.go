// Package bargraph encodes two magnitudes as a 16 LED thermometer display.
package bargraph

// Enable updates every LED.
const Enable uint16 = 0xFFFF

// Side encodes magnitude m on one 8 LED side using a thermometer code:
//
//	m < 0      0x00
//	0..3       low nibble 2^(m+1)-1
//	4          low nibble saturated, 0x0F
//	5..7       low nibble saturated, high nibble 2^(m-4+1)-1
//	m > 7      0xFF
func Side(m int) uint8 {
	switch {
	case m < 0:
		return 0x00
	case m <= 3:
		return thermometer(m)
	case m == 4:
		return 0x0F
	case m <= 7:
		return 0x0F | thermometer(m-4)<<4
	default:
		return 0xFF
	}
}

// Encode combines magnitude a (low byte) and b (high byte) into one mask.
func Encode(a, b int) uint16 {
	return uint16(Side(b))<<8 | uint16(Side(a))
}

// thermometer sets the low k+1 bits of a nibble.
func thermometer(k int) uint8 {
	return uint8(1<<(k+1)-1) & 0x0F
}
