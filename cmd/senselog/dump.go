package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/itohio/senselog/pkg/link"
)

var (
	dumpPort string
	dumpOut  string
)

func init() {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Read the stored run from the appliance into an image file",
		RunE:  func(cmd *cobra.Command, args []string) error { return runDump() },
	}
	dumpCmd.Flags().StringVarP(&dumpPort, "port", "p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
	dumpCmd.Flags().StringVarP(&dumpOut, "out", "o", "", "Image file, defaults to the configured storage path")
	rootCmd.AddCommand(dumpCmd)

	portsCmd := &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := link.Ports()
			if err != nil {
				return err
			}
			for _, p := range ports {
				cmd.Println(p.Name)
			}
			return nil
		},
	}
	rootCmd.AddCommand(portsCmd)
}

func runDump() error {
	port := cfg.Serial.Port
	if dumpPort != "" {
		port = dumpPort
	}
	out := cfg.Storage.Path
	if dumpOut != "" {
		out = dumpOut
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dev := link.New(port, cfg.Serial.BaudRate, logger)
	if err := dev.Connect(); err != nil {
		return err
	}
	defer dev.Close()

	entries, err := dev.Dump(ctx)
	if err != nil {
		return err
	}

	image, err := openImage(out, cfg.Storage.Size)
	if err != nil {
		return err
	}
	defer image.Close()

	if err := link.Restore(imageStore(image), entries); err != nil {
		return err
	}
	logger.Info("[dump] image written", zap.String("path", out), zap.Int("slots", len(entries)))
	return nil
}
