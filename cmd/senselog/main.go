// Command senselog is the desktop companion of the sensor logger: a front
// panel simulator and tools for stored runs and alert songs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itohio/senselog/pkg/config"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               "senselog",
	Short:             "Sensor logger simulator and host tools",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "senselog.yaml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			logger.Info("[config] saved", zap.String("path", configPath))
			return nil
		},
	}
	rootCmd.AddCommand(configCmd)
}

func setup() error {
	var err error
	logger, err = newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("[config] loaded", zap.String("path", configPath))
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		zc.Level.SetLevel(zapcore.DebugLevel)
	}
	return zc.Build()
}

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
