package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dyluth/braille/internal/config"
	"github.com/dyluth/braille/internal/printer"
	"github.com/dyluth/braille/internal/report"
	"github.com/dyluth/braille/pkg/braille"
	"github.com/spf13/cobra"
)

var (
	translateTo     string
	translateOutput string
	translateFile   string
)

var translateCmd = &cobra.Command{
	Use:   "translate [MESSAGE...]",
	Short: "Translate a message between English and braille",
	Long: `Translate a message between English text and braille cell notation.

All arguments are joined with single spaces into one message. A message made
only of known six-character cells is decoded to English; anything else is
encoded to braille.

Output Formats:
  default - One translation per line
  jsonl   - Line-delimited JSON, one record per message

Examples:
  # Encode text
  braille translate Hello world

  # Decode cells
  braille translate .....OO.OO..O..O..O.O.O.O.O.O.O..OO.

  # Translate every line of a file as a separate message
  braille translate --file messages.txt --output=jsonl

  # Force the direction
  braille translate --to braille O.....`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "Direction: auto, braille or english (default from config)")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "Output format: default or jsonl (default from config)")
	translateCmd.Flags().StringVarP(&translateFile, "file", "f", "", "Read one message per line from a file ('-' for stdin)")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, engine, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	direction := translateTo
	if direction == "" {
		direction = cfg.Translate.Direction
	}
	switch direction {
	case config.DirectionAuto, config.DirectionBraille, config.DirectionEnglish:
	default:
		return printer.Error(
			"invalid direction",
			fmt.Sprintf("Unknown direction: %s", direction),
			[]string{"Valid directions: auto, braille, english"},
		)
	}

	output := translateOutput
	if output == "" {
		output = cfg.Translate.Output
	}
	outputFormat, err := report.ParseOutputFormat(output)
	if err != nil {
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", output),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	messages, err := collectMessages(cmd, args)
	if err != nil {
		return err
	}
	debugf("Translating %d message(s), direction=%s output=%s", len(messages), direction, outputFormat)

	var results []report.Result
	failed := 0
	for _, message := range messages {
		d := resolveDirection(engine, direction, message)
		translated, err := engine.TranslateTo(d, message)
		debugf("Translated %q to %s: err=%v", message, d, err)

		if outputFormat == report.OutputFormatJSONL {
			result := report.NewResult(d, message, translated, err)
			if result.Failed() {
				failed++
			}
			results = append(results, result)
			continue
		}

		if err != nil {
			return translationError(err)
		}
		if d == braille.ToBraille {
			printer.Cells(translated)
		} else {
			printer.Println(translated)
		}
	}

	if outputFormat == report.OutputFormatJSONL {
		if err := report.FormatJSONL(printer.Writer(), results); err != nil {
			return printer.Error("failed to write results", err.Error(), nil)
		}
		if failed > 0 {
			return printer.Error(
				fmt.Sprintf("%d of %d messages failed to translate", failed, len(results)),
				"The error and error_kind fields of the failed records describe each failure.",
				nil,
			)
		}
	}

	return nil
}

// resolveDirection applies the configured direction to one message.
func resolveDirection(engine *braille.Engine, direction, message string) braille.Direction {
	switch direction {
	case config.DirectionBraille:
		return braille.ToBraille
	case config.DirectionEnglish:
		return braille.ToText
	default:
		return engine.Detect(message)
	}
}

// collectMessages returns the messages to translate: every line of --file,
// or all arguments joined into a single message.
func collectMessages(cmd *cobra.Command, args []string) ([]string, error) {
	if translateFile == "" {
		if len(args) == 0 {
			return nil, printer.Error(
				"no message to translate",
				"translate needs a message as arguments or a file of messages.",
				[]string{
					"Pass the message as arguments: braille translate Hello world",
					"Read messages from a file: braille translate --file messages.txt",
				},
			)
		}
		return []string{strings.Join(args, " ")}, nil
	}

	if len(args) > 0 {
		return nil, printer.Error(
			"conflicting input",
			"A message cannot be given as arguments together with --file.",
			[]string{"Remove either the arguments or the --file flag"},
		)
	}

	var r io.Reader
	if translateFile == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(translateFile)
		if err != nil {
			return nil, printer.ErrorWithContext(
				"cannot read messages",
				err.Error(),
				map[string]string{"File": translateFile},
				nil,
			)
		}
		defer f.Close()
		r = f
	}

	messages, err := readMessages(r)
	if err != nil {
		return nil, printer.ErrorWithContext(
			"cannot read messages",
			err.Error(),
			map[string]string{"File": translateFile},
			[]string{fmt.Sprintf("Split messages longer than %d bytes over several lines", maxMessageSize)},
		)
	}
	return messages, nil
}

// maxMessageSize is the longest line accepted by --file, terminator included.
const maxMessageSize = 4 * 1024 * 1024

// readMessages splits r into lines, dropping line terminators.
func readMessages(r io.Reader) ([]string, error) {
	var messages []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	for scanner.Scan() {
		messages = append(messages, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

// translationError prints a translation failure with its position and
// returns a short error for Cobra.
func translationError(err error) error {
	var (
		symbolErr  *braille.UnsupportedSymbolError
		capitalErr *braille.MalformedCapitalError
		numberErr  *braille.MalformedNumberError
		cellErr    *braille.UnknownCellError
	)

	switch {
	case errors.As(err, &symbolErr):
		return printer.ErrorWithContext(
			"unsupported symbol",
			fmt.Sprintf("%q cannot be written in braille.", symbolErr.Char),
			map[string]string{"Position": strconv.Itoa(symbolErr.Pos)},
			[]string{"Only letters, digits, spaces and . , ? ! : ; - / < > ( ) are supported"},
		)
	case errors.As(err, &capitalErr):
		return printer.ErrorWithContext(
			"malformed capital sign",
			capitalErr.Reason+".",
			map[string]string{"Cell": strconv.Itoa(capitalErr.Pos)},
			[]string{"A capital sign must be directly followed by a letter cell"},
		)
	case errors.As(err, &numberErr):
		return printer.ErrorWithContext(
			"malformed number sign",
			numberErr.Reason+".",
			map[string]string{"Cell": strconv.Itoa(numberErr.Pos)},
			[]string{"A number sign must be directly followed by a digit cell"},
		)
	case errors.As(err, &cellErr):
		return printer.ErrorWithContext(
			"unknown cell",
			fmt.Sprintf("%q is not a known braille cell here.", string(cellErr.Cell)),
			map[string]string{"Cell": strconv.Itoa(cellErr.Pos)},
			[]string{"Run 'braille table' to list every known cell"},
		)
	}

	return printer.Error("translation failed", err.Error(), nil)
}
