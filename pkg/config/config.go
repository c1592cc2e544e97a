package config

import (
	"time"
)

// Config represents the application configuration.
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Display  DisplayConfig  `yaml:"display"`
	Sampling SamplingConfig `yaml:"sampling"`
	Capture  CaptureConfig  `yaml:"capture"`
	Storage  StorageConfig  `yaml:"storage"`
	Sim      SimConfig      `yaml:"sim"`
}

// SerialConfig contains the serial port used to dump stored runs.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// DisplayConfig contains the graph panel geometry in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SamplingConfig contains live view and menu timing.
type SamplingConfig struct {
	Interval       time.Duration `yaml:"interval"`        // Delay between live samples
	PollInterval   time.Duration `yaml:"poll_interval"`   // Menu button poll cadence
	Debounce       time.Duration `yaml:"debounce"`        // Wait after a cycle press
	AlertThreshold int           `yaml:"alert_threshold"` // Coarse temperature above which the alert sounds
	AlertSong      string        `yaml:"alert_song"`
}

// CaptureConfig contains the stored run layout and pacing.
type CaptureConfig struct {
	Slots      int           `yaml:"slots"`
	BaseOffset int64         `yaml:"base_offset"`
	CodeStep   time.Duration `yaml:"code_step"` // Wait per unit of the selected duration code
}

// StorageConfig contains the host-side EEPROM image location.
type StorageConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// SimConfig shapes the generated sensor readings of the simulator.
type SimConfig struct {
	Temperature WaveConfig `yaml:"temperature"`
	Light       WaveConfig `yaml:"light"`
	Trimpot     WaveConfig `yaml:"trimpot"`
}

// WaveConfig is a sine wave around Base.
type WaveConfig struct {
	Base      int           `yaml:"base"`
	Amplitude int           `yaml:"amplitude"`
	Period    time.Duration `yaml:"period"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "/dev/ttyACM0",
			BaudRate: 115200,
		},
		Display: DisplayConfig{
			Width:  96,
			Height: 64,
		},
		Sampling: SamplingConfig{
			Interval:       200 * time.Millisecond,
			PollInterval:   50 * time.Millisecond,
			Debounce:       2 * time.Second,
			AlertThreshold: 6,
			AlertSong:      "C2.C2.C2.",
		},
		Capture: CaptureConfig{
			Slots:      90,
			BaseOffset: 0,
			CodeStep:   time.Second,
		},
		Storage: StorageConfig{
			Path: "senselog.eeprom",
			Size: 4096, // AT24C32
		},
		Sim: SimConfig{
			Temperature: WaveConfig{Base: 260, Amplitude: 100, Period: 20 * time.Second},
			Light:       WaveConfig{Base: 2000, Amplitude: 1500, Period: 7 * time.Second},
			Trimpot:     WaveConfig{Base: 2048, Amplitude: 2000, Period: 11 * time.Second},
		},
	}
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}

	if c.Display.Width == 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height == 0 {
		c.Display.Height = def.Display.Height
	}

	if c.Sampling.Interval == 0 {
		c.Sampling.Interval = def.Sampling.Interval
	}
	if c.Sampling.PollInterval == 0 {
		c.Sampling.PollInterval = def.Sampling.PollInterval
	}
	if c.Sampling.Debounce == 0 {
		c.Sampling.Debounce = def.Sampling.Debounce
	}

	if c.Capture.Slots == 0 {
		c.Capture.Slots = def.Capture.Slots
	}
	if c.Capture.CodeStep == 0 {
		c.Capture.CodeStep = def.Capture.CodeStep
	}

	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	if c.Storage.Size == 0 {
		c.Storage.Size = def.Storage.Size
	}

	if c.Sim.Temperature.Period == 0 {
		c.Sim.Temperature = def.Sim.Temperature
	}
	if c.Sim.Light.Period == 0 {
		c.Sim.Light = def.Sim.Light
	}
	if c.Sim.Trimpot.Period == 0 {
		c.Sim.Trimpot = def.Sim.Trimpot
	}
}
