package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/diarijajan/diari/internal/cli"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagName string
	flagCost string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an entry and print the resulting collection as JSON",
	Long: "Append one entry stamped with the current time and print the whole " +
		"collection as JSON on stdout. Nothing is written to disk.",
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagName, "name", "", "Entry name")
	addCmd.Flags().StringVar(&flagCost, "cost", "", "Entry cost, e.g. 15.000 or 2500,5")
	_ = addCmd.MarkFlagRequired("cost")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	cost, err := cli.ParseAmount(flagCost)
	if err != nil {
		return fmt.Errorf("parsing --cost %q: %w", flagCost, err)
	}

	next, err := s.agg.Append(c, flagName, cost, time.Now())
	if err != nil {
		return err
	}
	added := next[len(next)-1]
	slog.Debug("entry appended", "id", added.ID, "name", added.Name, "cost", added.Cost.String())

	// Costs are JSON numbers, matching the seed files
	decimal.MarshalJSONWithoutQuotes = true
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(next); err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}
	return nil
}
