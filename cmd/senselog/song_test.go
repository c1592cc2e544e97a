package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youpy/go-wav"
	"go.uber.org/zap"

	"github.com/itohio/senselog/pkg/tone"
)

func TestWriteWav_RoundTrip(t *testing.T) {
	logger = zap.NewNop()

	tests := []struct {
		name string
		song string
		rate int
	}{
		{"single note", "A1+", 8000},
		{"with rest", "C1,x1,E1.", 22050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "song.wav")
			steps := tone.Parse(tt.song)
			require.NoError(t, writeWav(path, steps, tt.rate))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			r := wav.NewReader(f)
			format, err := r.Format()
			require.NoError(t, err)
			assert.Equal(t, uint16(1), format.NumChannels)
			assert.Equal(t, uint32(tt.rate), format.SampleRate)
			assert.Equal(t, uint16(16), format.BitsPerSample)

			var got []int
			for {
				samples, err := r.ReadSamples(256)
				if err == io.EOF || len(samples) == 0 {
					break
				}
				require.NoError(t, err)
				for _, s := range samples {
					got = append(got, r.IntValue(s, 0))
				}
			}

			want := tone.Render(steps, tt.rate, wavAmplitude)
			require.Len(t, got, len(want))
			for i := range want {
				if int(want[i]) != got[i] {
					t.Fatalf("sample %d: got %d, want %d", i, got[i], want[i])
				}
			}
			assert.Contains(t, got, -wavAmplitude)
		})
	}
}

func TestRunSong_RejectsSampleRate(t *testing.T) {
	logger = zap.NewNop()
	songWav = filepath.Join(t.TempDir(), "bad.wav")
	defer func() { songWav, songSampleRate = "", 44100 }()

	for _, rate := range []int{0, -1, 2_000_000_000} {
		songSampleRate = rate
		assert.Error(t, runSong("A1+"), "rate %d", rate)
	}
	_, err := os.Stat(songWav)
	assert.True(t, os.IsNotExist(err), "no file is created for a bad rate")
}
