//go:build tinygo

package main

import "machine"

const (
	// I2C bus shared by the panel, the sensors and the EEPROM
	PIN_SDA = machine.SDA_PIN
	PIN_SCL = machine.SCL_PIN

	// Front panel buttons, active low with pull-ups
	PIN_CYCLE  = machine.D1
	PIN_SELECT = machine.D2

	// Alert speaker, driven directly
	PIN_SPEAKER = machine.D3

	// Trimpot wiper
	PIN_TRIMPOT = machine.A0

	// TM1637 7-segment digit
	PIN_DIGIT_CLK = machine.D6
	PIN_DIGIT_DIO = machine.D7

	// 74HC595 pair driving the 16 LED bargraph
	PIN_BAR_LATCH = machine.D8
	PIN_BAR_CLOCK = machine.D9
	PIN_BAR_DATA  = machine.D10

	// ADC configuration
	ADC_REFERENCE_MV = 3300
	ADC_RESOLUTION   = 12

	// AT24C32: 4 KiB, 32 byte pages
	EEPROM_SIZE      = 4096
	EEPROM_PAGE_SIZE = 32

	// OLED panel
	OLED_ADDRESS = 0x3C
	OLED_WIDTH   = 128
	OLED_HEIGHT  = 64

	// TM1637 brightness levels, a blinking digit is shown dimmed
	DIGIT_BRIGHT = 7
	DIGIT_DIM    = 1

	UART_BAUD_RATE = 115200
)
