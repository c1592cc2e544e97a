package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, 96, cfg.Display.Width)
	assert.Equal(t, 64, cfg.Display.Height)
	assert.Equal(t, 200*time.Millisecond, cfg.Sampling.Interval)
	assert.Equal(t, 2*time.Second, cfg.Sampling.Debounce)
	assert.Equal(t, 6, cfg.Sampling.AlertThreshold)
	assert.Equal(t, 90, cfg.Capture.Slots)
	assert.Equal(t, time.Second, cfg.Capture.CodeStep)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyUSB1"
  baud_rate: 9600

display:
  width: 128
  height: 64

sampling:
  interval: 100ms
  poll_interval: 20ms
  debounce: 1s
  alert_threshold: 7
  alert_song: "a1,b1,"

capture:
  slots: 45
  base_offset: 512
  code_step: 500ms

storage:
  path: "/tmp/board.eeprom"
  size: 8192

sim:
  temperature:
    base: 300
    amplitude: 20
    period: 5s
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "/dev/ttyUSB1", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.BaudRate)
	assert.Equal(t, 128, cfg.Display.Width)
	assert.Equal(t, 100*time.Millisecond, cfg.Sampling.Interval)
	assert.Equal(t, 20*time.Millisecond, cfg.Sampling.PollInterval)
	assert.Equal(t, time.Second, cfg.Sampling.Debounce)
	assert.Equal(t, 7, cfg.Sampling.AlertThreshold)
	assert.Equal(t, "a1,b1,", cfg.Sampling.AlertSong)
	assert.Equal(t, 45, cfg.Capture.Slots)
	assert.Equal(t, int64(512), cfg.Capture.BaseOffset)
	assert.Equal(t, 500*time.Millisecond, cfg.Capture.CodeStep)
	assert.Equal(t, "/tmp/board.eeprom", cfg.Storage.Path)
	assert.Equal(t, 8192, cfg.Storage.Size)
	assert.Equal(t, 300, cfg.Sim.Temperature.Base)
	assert.Equal(t, 5*time.Second, cfg.Sim.Temperature.Period)
	assert.Equal(t, Default().Sim.Light, cfg.Sim.Light) // default
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyUSB0"
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Should use defaults for missing fields
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)                 // default
	assert.Equal(t, 200*time.Millisecond, cfg.Sampling.Interval) // default
	assert.Equal(t, 90, cfg.Capture.Slots)                       // default
	assert.Equal(t, Default().Sampling.AlertSong, cfg.Sampling.AlertSong)
}

func TestLoad_AlertThresholdZero(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want int
	}{
		{"explicit zero", "sampling:\n  alert_threshold: 0\n", 0},
		{"omitted", "sampling:\n  interval: 100ms\n", 6},
		{"explicit", "sampling:\n  alert_threshold: 3\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Sampling.AlertThreshold)
		})
	}
}

func TestLoad_StorageTooSmall(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("storage:\n  size: 512\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB0"
	cfg.Capture.CodeStep = 250 * time.Millisecond

	tmpfile, err := os.CreateTemp("", "test_save_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	err = cfg.Save(tmpfile.Name())
	require.NoError(t, err)

	// Load it back and verify
	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", loaded.Serial.Port)
	assert.Equal(t, 250*time.Millisecond, loaded.Capture.CodeStep)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero slots", mutate: func(c *Config) { c.Capture.Slots = 0 }, wantErr: true},
		{name: "negative offset", mutate: func(c *Config) { c.Capture.BaseOffset = -1 }, wantErr: true},
		{name: "run past end of storage", mutate: func(c *Config) { c.Capture.BaseOffset = 4000 }, wantErr: true},
		{name: "run ends exactly at storage end", mutate: func(c *Config) { c.Capture.BaseOffset = 4096 - 990 }},
		{name: "tiny display", mutate: func(c *Config) { c.Display.Height = 4 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
