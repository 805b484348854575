package commands

import (
	"strings"

	"github.com/dyluth/braille/internal/config"
	"github.com/dyluth/braille/internal/printer"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect MESSAGE...",
	Short: "Report whether a message is braille or English",
	Long: `Report which notation a message is written in.

Prints "braille" when the message is valid braille cell notation (translate
would decode it to English), and "english" otherwise (translate would encode
it to braille). An empty message is zero cells and counts as braille.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	_, engine, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	message := strings.Join(args, " ")
	if engine.IsBraille(message) {
		printer.Println(config.DirectionBraille)
	} else {
		printer.Println(config.DirectionEnglish)
	}
	return nil
}
