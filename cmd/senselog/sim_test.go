package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/senselog/pkg/config"
	"github.com/itohio/senselog/pkg/tone"
)

func TestPressHold(t *testing.T) {
	tests := []struct {
		name string
		song string
	}{
		{"default alert", config.Default().Sampling.AlertSong},
		{"long alert", "C4.D4.E4."},
		{"no alert", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			c.Sampling.AlertSong = tt.song
			alert := tone.Length(tone.Parse(tt.song))

			hold := pressHold(c)
			assert.Greater(t, hold, alert+c.Sampling.Interval, "outlasts an alert and one sample")
			assert.GreaterOrEqual(t, hold, c.Sampling.Interval+c.Sampling.PollInterval)
		})
	}

	assert.Greater(t, pressHold(config.Default()), time.Second)
}
