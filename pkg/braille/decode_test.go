package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cellCapital = ".....O"
	cellNumber  = ".O.OOO"
	cellDecimal = ".O...O"
	cellSpace   = "......"
	cellA       = "O....."
	cellB       = "O.O..."
)

func TestDecode(t *testing.T) {
	tb, err := buildTables(DefaultAlphabet, standardPatterns())
	require.NoError(t, err)

	tests := []struct {
		name  string
		cells string
		want  string
	}{
		{"empty", "", ""},
		{"letters are lowercase", cellA + cellB, "ab"},
		{"capital covers one letter", ".....OO.....O.O...OO....", "Abc"},
		{"hello world", ".....OO.OO..O..O..O.O.O.O.O.O.O..OO........OOO.OO..OO.O.OOO.O.O.O.OO.O..", "Hello world"},
		{"mixed", ".....OO.....O.O...OO...........O.OOOO.....O.O...OO..........OO..OO.....OOO.OOOO..OOO", "Abc 123 xYz"},
		{"decimal inside run", ".O.OOOOO.....O...OO.....OO.O..", "3.14"},
		{"consecutive decimals", cellNumber + cellA + cellDecimal + cellDecimal + cellB, "1..2"},
		{"run ends at letter cell", cellNumber + cellA + "O...O.", "1k"},
		{"digit cells after space are letters", cellNumber + cellA + cellSpace + cellA, "1 a"},
		{"punctuation", "O.OO...OO.....OOO.", "hi!"},
		{"shared cell reads as letter", cellSpace + "O..OO.", " o"},
		{"space only", cellSpace + cellSpace, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tb.decode(tt.cells)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_MalformedCapital(t *testing.T) {
	tb, err := buildTables(DefaultAlphabet, standardPatterns())
	require.NoError(t, err)

	tests := []struct {
		name  string
		cells string
		pos   int
	}{
		{"lone capital at end", cellA + cellCapital, 1},
		{"capital then space", cellCapital + cellSpace, 0},
		{"capital then number", cellCapital + cellNumber + cellA, 0},
		{"double capital", cellCapital + cellCapital + cellA, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tb.decode(tt.cells)
			assert.Empty(t, got)
			require.ErrorIs(t, err, ErrMalformedCapital)

			var capErr *MalformedCapitalError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, tt.pos, capErr.Pos)
		})
	}
}

func TestDecode_MalformedNumber(t *testing.T) {
	tb, err := buildTables(DefaultAlphabet, standardPatterns())
	require.NoError(t, err)

	tests := []struct {
		name   string
		cells  string
		pos    int
		reason string
	}{
		{"lone number at end", cellA + cellNumber, 1, "no cell after number sign"},
		{"number then decimal", cellNumber + cellDecimal + cellA, 0, "decimal sign directly after number sign"},
		{"number then space", cellNumber + cellSpace, 0, "not followed by a digit"},
		{"number then non-digit letter", cellNumber + "O...O.", 0, "not followed by a digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tb.decode(tt.cells)
			assert.Empty(t, got)
			require.ErrorIs(t, err, ErrMalformedNumber)

			var numErr *MalformedNumberError
			require.ErrorAs(t, err, &numErr)
			assert.Equal(t, tt.pos, numErr.Pos)
			assert.Contains(t, numErr.Reason, tt.reason)
		})
	}
}

func TestDecode_UnknownCell(t *testing.T) {
	tb, err := buildTables(DefaultAlphabet, standardPatterns())
	require.NoError(t, err)

	tests := []struct {
		name  string
		cells string
		pos   int
		cell  Cell
	}{
		{"cell in no table", cellA + "OOOOOO", 1, "OOOOOO"},
		{"decimal outside run", cellA + cellDecimal, 1, cellDecimal},
		{"foreign characters", "xxxxxx", 0, "xxxxxx"},
		{"trailing partial cell", cellA + "O.", 1, "O."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tb.decode(tt.cells)
			assert.Empty(t, got)
			require.ErrorIs(t, err, ErrUnknownCell)

			var cellErr *UnknownCellError
			require.ErrorAs(t, err, &cellErr)
			assert.Equal(t, tt.pos, cellErr.Pos)
			assert.Equal(t, tt.cell, cellErr.Cell)
		})
	}
}
