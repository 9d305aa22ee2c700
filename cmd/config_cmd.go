package cmd

import (
	"fmt"

	"github.com/diarijajan/diari/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	cfg := s.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataFile != "" {
		fmt.Printf("    Data file:      %s\n", cfg.General.DataFile)
	} else {
		fmt.Println("    Data file:      built-in dataset")
	}
	fmt.Printf("    Timezone:       %s\n", s.agg.Location.String())
	fmt.Printf("    Strict amounts: %v\n", cfg.General.StrictAmounts)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency prefix: %s\n", cfg.Display.CurrencyPrefix)
	fmt.Printf("    Show year:       %v\n", cfg.Display.ShowYear)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `diari setup` to reconfigure.")
	return nil
}
