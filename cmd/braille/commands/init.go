package commands

import (
	"github.com/dyluth/braille/internal/printer"
	"github.com/dyluth/braille/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default braille.yml",
	Long: `Write a default braille.yml configuration file.

Creates:
  • braille.yml - Alphabet and translate defaults

Use --force to overwrite an existing braille.yml.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing braille.yml")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to write braille.yml into")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for existing files (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(initDir); err != nil {
			return printer.Error(
				"project already initialized",
				err.Error(),
				[]string{"Use 'braille init --force' to reinitialize (this will overwrite existing configuration)"},
			)
		}
	}

	if err := scaffold.Initialize(initDir, forceInit); err != nil {
		return printer.ErrorWithContext(
			"initialization failed",
			err.Error(),
			map[string]string{"Directory": initDir},
			nil,
		)
	}

	scaffold.PrintSuccess()
	return nil
}
