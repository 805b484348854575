package commands

import (
	"bytes"
	"testing"

	"github.com/dyluth/braille/internal/printer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of cmd and its children to its default so
// runs of the shared rootCmd do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the CLI with args and returns what it printed.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	printer.SetOutput(&out, &errOut)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		printer.SetOutput(nil, nil)
		color.NoColor = noColor
		resetFlags(rootCmd)
		rootCmd.SetIn(nil)
	})

	resetFlags(rootCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	// A nil slice would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := run(rootCmd)
	return out.String(), errOut.String(), err
}
