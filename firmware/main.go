//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"context"
	"machine"

	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/shiftregister"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/tm1637"
	"tinygo.org/x/drivers/tmp102"

	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/hal"
	"github.com/itohio/senselog/pkg/link"
	"github.com/itohio/senselog/pkg/ui"
)

var (
	uart = machine.Serial

	// Serial buffer for reading command lines
	serialBuffer [8]byte
	serialPos    int
)

func main() {
	cfg := config.Default()

	uart.Configure(machine.UARTConfig{BaudRate: UART_BAUD_RATE})

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{SDA: PIN_SDA, SCL: PIN_SCL, Frequency: 400 * machine.KHz}); err != nil {
		halt("i2c", err)
	}

	display := ssd1306.NewI2C(bus)
	display.Configure(ssd1306.Config{
		Width:    OLED_WIDTH,
		Height:   OLED_HEIGHT,
		Address:  OLED_ADDRESS,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearDisplay()

	temp := tmp102.New(bus)
	temp.Configure(tmp102.Config{})

	light := bh1750.New(bus)
	light.Configure()

	PIN_TRIMPOT.Configure(machine.PinConfig{Mode: machine.PinInput})
	pot := machine.ADC{Pin: PIN_TRIMPOT}
	pot.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: ADC_RESOLUTION,
	})

	eeprom := at24cx.New(bus)
	eeprom.Configure(at24cx.Config{PageSize: EEPROM_PAGE_SIZE, EndRAMAddress: EEPROM_SIZE})

	seg := tm1637.New(PIN_DIGIT_CLK, PIN_DIGIT_DIO, DIGIT_BRIGHT)
	seg.Configure()
	seg.ClearDisplay()

	bar := shiftregister.New(shiftregister.SIXTEEN_BITS, PIN_BAR_LATCH, PIN_BAR_CLOCK, PIN_BAR_DATA)
	bar.Configure()
	bar.WriteMask(0)

	PIN_CYCLE.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_SELECT.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_SPEAKER.Low()

	board := hal.Board{
		Sensors:  &sensors{temp: temp, light: light, pot: pot},
		Display:  &oled{dev: display, width: cfg.Display.Width, height: cfg.Display.Height},
		Bargraph: &bargraph{dev: bar},
		Digit:    &digit{dev: &seg},
		Storage:  &eeprom,
		Clock:    hal.NewRealClock(),
		Buttons:  &buttons{PIN_CYCLE, PIN_SELECT},
		Speaker:  PIN_SPEAKER,
	}

	m := ui.New(cfg, board)
	m.Idle = func() { processSerial(m) }

	err := m.Run(context.Background())
	halt("stopped", err)
}

// processSerial answers dump requests between menu polls.
func processSerial(m *ui.Machine) {
	for uart.Buffered() > 0 {
		data, err := uart.ReadByte()
		if err != nil {
			break
		}

		if data == '\n' || data == '\r' {
			if string(serialBuffer[:serialPos]) == link.DumpCommand {
				if err := link.WriteDump(uart, m.Acquirer().Store()); err != nil {
					println("dump:", err.Error())
				}
			}
			serialPos = 0
			continue
		}

		if serialPos < len(serialBuffer) {
			serialBuffer[serialPos] = data
			serialPos++
		}
	}
}

// halt reports a fatal error forever.
func halt(what string, err error) {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.High()
	clock := hal.NewRealClock()
	for {
		println(what+":", err.Error())
		clock.WaitMs(1000)
	}
}
