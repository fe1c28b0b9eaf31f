// Package cli implements the metroplan command line tool.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jusunglee/metro-go/internal/config"
	"github.com/jusunglee/metro-go/internal/logger"
	"github.com/jusunglee/metro-go/pkg/metro"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	stations   string
	configFile string
	logLevel   string

	cfg config.AppConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "metroplan",
		Short:        "Plan metro trips: shortest route, fare and travel time",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.stations, "stations", "", "Station table: .csv, .yaml or .pb (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")

	cmd.AddCommand(
		routeCmd(opts),
		stationsCmd(opts),
		linesCmd(opts),
		snapshotCmd(opts),
	)
	return cmd
}

// setup resolves configuration from file, environment and flags, in
// increasing precedence
func (o *options) setup(stderr io.Writer) error {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		return err
	}
	if o.stations != "" {
		cfg.Data.StationsFile = o.stations
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	} else if os.Getenv(config.EnvLogLevel) == "" {
		// keep command output clean unless asked
		cfg.Log.Level = "warn"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: stderr})
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.log = log
	return nil
}

func (o *options) client() (*metro.LocalClient, error) {
	return metro.NewLocal(metro.Config{
		StationsFile: o.cfg.Data.StationsFile,
		Logger:       o.log,
	})
}
