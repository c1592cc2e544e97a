package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/youpy/go-wav"
	"go.uber.org/zap"

	"github.com/itohio/senselog/pkg/tone"
)

const wavAmplitude = 8000

var (
	songWav        string
	songSampleRate int
)

func init() {
	songCmd := &cobra.Command{
		Use:   "song [notes]",
		Short: "Show the steps of a song, optionally rendering it to a WAV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			song := cfg.Sampling.AlertSong
			if len(args) > 0 {
				song = args[0]
			}
			return runSong(song)
		},
	}
	songCmd.Flags().StringVarP(&songWav, "wav", "w", "", "Write the song to a WAV file")
	songCmd.Flags().IntVarP(&songSampleRate, "sample-rate", "r", 44100, "WAV sample rate in Hz")
	rootCmd.AddCommand(songCmd)
}

func runSong(song string) error {
	if songWav != "" && (songSampleRate <= 0 || songSampleRate > tone.MaxSampleRate) {
		return fmt.Errorf("sample rate %d Hz out of range 1..%d", songSampleRate, tone.MaxSampleRate)
	}
	steps := tone.Parse(song)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "note\thalf period\tduration\tpause")
	for _, s := range steps {
		fmt.Fprintf(tw, "%c\t%v\t%v\t%v\n", s.Note, s.HalfPeriod, s.Duration, s.Pause)
	}
	fmt.Fprintf(tw, "total\t\t%v\t\n", tone.Length(steps))
	if err := tw.Flush(); err != nil {
		return err
	}

	if songWav == "" {
		return nil
	}
	return writeWav(songWav, steps, songSampleRate)
}

func writeWav(path string, steps []tone.Step, sampleRate int) error {
	pcm := tone.Render(steps, sampleRate, wavAmplitude)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	samples := make([]wav.Sample, len(pcm))
	for i, v := range pcm {
		samples[i].Values[0] = int(v)
	}

	w := wav.NewWriter(f, uint32(len(samples)), 1, uint32(sampleRate), 16)
	if err := w.WriteSamples(samples); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("[song] wav written", zap.String("path", path), zap.Int("samples", len(samples)))
	return nil
}
