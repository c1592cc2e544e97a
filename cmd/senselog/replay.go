package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/itohio/senselog/pkg/record"
	"github.com/itohio/senselog/pkg/sensor"
)

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay [image]",
		Short: "Print the stored run of an image file as the appliance replays it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Storage.Path
			if len(args) > 0 {
				path = args[0]
			}
			return runReplay(path)
		},
	}
	rootCmd.AddCommand(replayCmd)
}

func runReplay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	// read only, writes are never issued
	store := record.NewStore(readOnly{f}, cfg.Capture.BaseOffset, cfg.Capture.Slots)
	return printReplay(os.Stdout, store)
}

// printReplay writes one row per slot with the values the appliance shows
// when replaying it. Unreadable fields print as "-".
func printReplay(w io.Writer, store *record.Store) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "slot\trecord")
	for _, c := range sensor.Channels {
		fmt.Fprintf(tw, "\t%v", c)
	}
	fmt.Fprintln(tw)

	for slot := 0; slot < store.Capacity(); slot++ {
		rec, err := store.Read(slot)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%q", slot, rec.String())
		for _, c := range sensor.Channels {
			v, err := record.ReplayValue(rec, c)
			if err != nil {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%d", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

type readOnly struct {
	*os.File
}

func (readOnly) WriteAt(p []byte, off int64) (int, error) {
	return 0, fmt.Errorf("image opened read only")
}
