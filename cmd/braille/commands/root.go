package commands

import (
	"fmt"
	"log"

	"github.com/dyluth/braille/internal/config"
	"github.com/dyluth/braille/internal/printer"
	"github.com/dyluth/braille/pkg/braille"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "braille",
	Short: "Braille - translate between six-dot braille cells and English text",
	Long: `Braille translates messages between English text and six-dot braille
cell notation, where every cell is written as six characters (by default
"O" for a raised dot and "." for a flat dot).

Letters, digits (including decimal numbers) and common punctuation are
supported. The direction is detected automatically unless forced.`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return run(rootCmd)
}

// run executes cmd and prints any error the commands did not already print
// through the printer package (flag and argument errors from Cobra included)
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !printer.Reported(err) {
		printer.Error(err.Error(), "", []string{"Run 'braille --help' for usage"})
	}
	return err
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to braille.yml (defaults are used when the default file does not exist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}

func debugf(format string, a ...any) {
	if verbose {
		log.Printf("[DEBUG] "+format, a...)
	}
}

// loadEngine reads the configuration and builds the engine it describes.
// Defaults are only used when --config was not given and braille.yml is absent.
func loadEngine(cmd *cobra.Command) (*config.BrailleConfig, *braille.Engine, error) {
	load := config.Load
	if !cmd.Flags().Changed("config") && configPath == config.DefaultPath {
		load = config.LoadOrDefault
	}

	cfg, err := load(configPath)
	if err != nil {
		return nil, nil, printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": configPath},
			[]string{
				fmt.Sprintf("Fix %s by hand", configPath),
				"Run 'braille init --force' to write a fresh default configuration",
			},
		)
	}

	alphabet := cfg.Alphabet.Braille()
	debugf("Using alphabet raised=%q flat=%q from %s", alphabet.Raised, alphabet.Flat, configPath)

	if alphabet == braille.DefaultAlphabet {
		return cfg, braille.Default(), nil
	}

	engine, err := braille.New(braille.WithAlphabet(alphabet))
	if err != nil {
		return nil, nil, printer.Error("failed to build translation tables", err.Error(), nil)
	}
	return cfg, engine, nil
}
