package commands

import (
	"github.com/dyluth/braille/internal/printer"
	"github.com/dyluth/braille/internal/report"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List every supported symbol and its braille cell",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	_, engine, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	if err := report.FormatChart(printer.Writer(), engine.Alphabet(), engine.Chart()); err != nil {
		return printer.Error("failed to print table", err.Error(), nil)
	}
	return nil
}
