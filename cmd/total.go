package cmd

import (
	"fmt"

	"github.com/diarijajan/diari/internal/cli"

	"github.com/spf13/cobra"
)

var flagRaw bool

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Grand total of all expenses",
	RunE:  runTotal,
}

func init() {
	totalCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the bare decimal amount")
	rootCmd.AddCommand(totalCmd)
}

func runTotal(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	total := s.agg.Total(c)
	if flagRaw {
		fmt.Println(total.String())
		return nil
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderSubtitle("Pengeluaran Bulan ini", s.format.Currency(total)))
	fmt.Printf("  %s entries\n\n", cli.FormatNumber(int64(len(c))))
	return nil
}
