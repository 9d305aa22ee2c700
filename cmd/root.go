// Package cmd implements the diari CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/diarijajan/diari/internal/cli"
	"github.com/diarijajan/diari/internal/config"
	"github.com/diarijajan/diari/internal/model"
	"github.com/diarijajan/diari/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagDataFile string
	flagTimezone string
	flagStrict   bool
	flagVerbose  bool
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "diari",
	Short: "Daily snack expense diary",
	Long:  "Browse small daily expenses grouped by day, with per-day and overall totals.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	RunE:         runTUI,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataFile, "data", "f", "", "Seed file (.json, .yaml); empty uses the built-in dataset")
	rootCmd.PersistentFlags().StringVar(&flagTimezone, "tz", "", "IANA timezone used to bucket entries by day")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject negative costs when adding entries")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress and log output")
}

func setupLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	if flagQuiet {
		w = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// settings is the effective configuration once flags are applied on top of
// the config file.
type settings struct {
	cfg      config.Config
	seedPath string
	agg      pipeline.Aggregator
	format   cli.Formatter
}

func loadSettings() (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}
	applyFlags(&cfg)

	loc, err := cfg.Location()
	if err != nil {
		return settings{}, err
	}

	s := settings{
		cfg:      cfg,
		seedPath: cfg.General.DataFile,
		agg: pipeline.Aggregator{
			Location:      loc,
			StrictAmounts: cfg.General.StrictAmounts,
		},
		format: cli.Formatter{
			CurrencyPrefix: cfg.Display.CurrencyPrefix,
			ShowYear:       cfg.Display.ShowYear,
		},
	}
	slog.Debug("settings resolved",
		"config", config.Path(),
		"config_exists", config.Exists(),
		"data", s.seedPath,
		"tz", loc.String(),
		"strict", cfg.General.StrictAmounts)
	return s, nil
}

// applyFlags overrides config values with any flags given on the command line.
func applyFlags(cfg *config.Config) {
	if flagDataFile != "" {
		cfg.General.DataFile = flagDataFile
	}
	if flagTimezone != "" {
		cfg.General.Timezone = flagTimezone
	}
	if flagStrict {
		cfg.General.StrictAmounts = true
	}
}

// loadCollection is the shared seed loading path used by the plain commands.
func loadCollection(s settings) (model.Collection, error) {
	c, err := pipeline.Load(s.seedPath)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		source := s.seedPath
		if source == "" {
			source = "built-in dataset"
		}
		fmt.Fprintf(os.Stderr, "  Loaded %s entries from %s\n",
			cli.FormatNumber(int64(len(c))), source)
	}
	return c, nil
}
