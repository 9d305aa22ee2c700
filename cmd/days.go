package cmd

import (
	"fmt"

	"github.com/diarijajan/diari/internal/cli"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Expenses grouped by day",
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	summary, err := s.agg.Summarize(c)
	if err != nil {
		return err
	}
	if len(summary.Groups) == 0 {
		fmt.Println("\n  Belum ada pengeluaran.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DIARI JAJAN"))
	fmt.Println()

	for _, g := range summary.Groups {
		rows := make([][]string, 0, len(g.Records))
		for _, r := range g.Records {
			ts, err := s.agg.ParseCreatedAt(r)
			if err != nil {
				return err
			}
			rows = append(rows, []string{cli.FormatTimeLabel(ts), r.Name, s.format.Currency(r.Cost)})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:  s.format.DayHeader(g.Date),
			Rows:   rows,
			Footer: []string{"", "Total", s.format.Currency(g.Subtotal)},
		}))
		fmt.Println()
	}

	fmt.Println("  " + cli.RenderSubtitle("Pengeluaran Bulan ini", s.format.Currency(summary.Total)))
	fmt.Println()
	return nil
}
