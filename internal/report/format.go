// Package report renders translation results and symbol charts for the CLI.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dyluth/braille/pkg/braille"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
)

// OutputFormat selects how results are written
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = "default"
	OutputFormatJSONL   OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output value
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL:
		return OutputFormat(s), nil
	}
	return "", fmt.Errorf("unknown output format: %s", s)
}

// Result is the outcome of translating one message.
type Result struct {
	ID        string `json:"id"`        // UUID - unique identifier for this translation
	Direction string `json:"direction"` // "braille" or "english": the language of Output
	Input     string `json:"input"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"` // unsupported_symbol, malformed_capital, malformed_number, unknown_cell
}

// NewResult records a translation. A non-nil err leaves Output empty.
func NewResult(direction braille.Direction, input, output string, err error) Result {
	r := Result{
		ID:        uuid.NewString(),
		Direction: direction.String(),
		Input:     input,
		Output:    output,
	}
	if err != nil {
		r.Output = ""
		r.Error = err.Error()
		r.ErrorKind = ErrorKind(err)
	}
	return r
}

// Failed reports whether the translation failed
func (r Result) Failed() bool {
	return r.Error != ""
}

// ErrorKind names the kind of a translation error, or "" when err is not one.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, braille.ErrUnsupportedSymbol):
		return "unsupported_symbol"
	case errors.Is(err, braille.ErrMalformedCapital):
		return "malformed_capital"
	case errors.Is(err, braille.ErrMalformedNumber):
		return "malformed_number"
	case errors.Is(err, braille.ErrUnknownCell):
		return "unknown_cell"
	}
	return ""
}

// FormatJSONL writes results as line-delimited JSON (JSONL) to the provided writer.
// Each result is written as a single JSON object on its own line.
func FormatJSONL(w io.Writer, results []Result) error {
	for _, result := range results {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// FormatChart writes every engine symbol as a table with columns
// NAMESPACE, SYMBOL, DOTS, CELL and NOTE.
func FormatChart(w io.Writer, alphabet braille.Alphabet, entries []braille.Entry) error {
	table := tablewriter.NewWriter(w)
	table.Header("NAMESPACE", "SYMBOL", "DOTS", "CELL", "NOTE")

	for _, e := range entries {
		row := []string{
			e.Namespace.String(),
			formatSymbol(e.Symbol),
			formatDots(alphabet, e.Cell),
			string(e.Cell),
			formatNote(e),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add chart row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	countMsg := "symbol"
	if len(entries) != 1 {
		countMsg = "symbols"
	}
	_, err := fmt.Fprintf(w, "\n%d %s\n", len(entries), countMsg)
	return err
}

// formatSymbol makes whitespace symbols visible in the chart.
func formatSymbol(symbol string) string {
	if symbol == " " {
		return "space"
	}
	return symbol
}

// formatDots lists the raised dots of a cell in ascending order, e.g. "1-2-4".
// The blank cell is shown as "-".
func formatDots(alphabet braille.Alphabet, cell braille.Cell) string {
	dots := alphabet.Dots(cell)
	if len(dots) == 0 {
		return "-"
	}

	parts := make([]string, len(dots))
	for i, d := range dots {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "-")
}

func formatNote(e braille.Entry) string {
	switch {
	case e.EncodeOnly:
		return "encode only"
	case e.Namespace == braille.NamespaceDigit:
		return "after number sign"
	}
	return ""
}
