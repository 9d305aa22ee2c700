package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diarijajan/diari/internal/config"
	"github.com/diarijajan/diari/internal/pipeline"
	"github.com/diarijajan/diari/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the existing config so the wizard edits in place
	cfg, _ := config.Load()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Seed file").
				Description("JSON or YAML file with entries. Leave empty for the built-in dataset.").
				Validate(validateSeedPath).
				Value(&cfg.General.DataFile),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name such as Asia/Jakarta. Leave empty for local time.").
				Validate(validateTimezone).
				Value(&cfg.General.Timezone),
			huh.NewConfirm().
				Title("Reject negative costs?").
				Value(&cfg.General.StrictAmounts),
		).Title("Data"),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency prefix").
				Value(&cfg.Display.CurrencyPrefix),
			huh.NewConfirm().
				Title("Show the year in day headers?").
				Value(&cfg.Display.ShowYear),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		).Title("Display"),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	cfg.General.DataFile = strings.TrimSpace(cfg.General.DataFile)
	cfg.General.Timezone = strings.TrimSpace(cfg.General.Timezone)
	if strings.TrimSpace(cfg.Display.CurrencyPrefix) == "" {
		cfg.Display.CurrencyPrefix = config.DefaultConfig().Display.CurrencyPrefix
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `diari setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validateSeedPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := pipeline.LoadFile(s); err != nil {
		return err
	}
	return nil
}

func validateTimezone(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}
