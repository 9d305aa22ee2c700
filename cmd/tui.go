package cmd

import (
	"fmt"
	"log/slog"

	"github.com/diarijajan/diari/internal/tui"
	"github.com/diarijajan/diari/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive expense screen",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor so the themed backgrounds produce ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		SeedPath:   s.seedPath,
		Aggregator: s.agg,
		Formatter:  s.format,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if a, ok := final.(tui.App); ok {
		slog.Debug("screen closed", "entries", len(a.Collection()))
	}
	return nil
}
