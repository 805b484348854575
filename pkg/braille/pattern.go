package braille

import (
	"fmt"
)

// CellWidth is the number of dot positions, and therefore characters, in one cell.
const CellWidth = 6

// Cell is one braille character rendered over an Alphabet, e.g. "O.O...".
type Cell string

// Alphabet defines the two characters used to render raised and flat dots.
type Alphabet struct {
	Raised byte
	Flat   byte
}

// DefaultAlphabet renders raised dots as 'O' and flat dots as '.'.
var DefaultAlphabet = Alphabet{Raised: 'O', Flat: '.'}

// Validate checks that both characters are printable ASCII and distinct.
func (a Alphabet) Validate() error {
	if !printable(a.Raised) || !printable(a.Flat) {
		return fmt.Errorf("%w: raised %q and flat %q must be printable ASCII", ErrInvalidAlphabet, a.Raised, a.Flat)
	}
	if a.Raised == a.Flat {
		return fmt.Errorf("%w: raised and flat are both %q", ErrInvalidAlphabet, a.Raised)
	}
	return nil
}

func printable(c byte) bool {
	return c > ' ' && c < 0x7f
}

// ExpandPattern converts a compact dot pattern into a Cell.
//
// The decimal digits of pattern name the raised positions; their order does
// not matter and repeats are harmless, so 124, 421 and 1124 all expand to
// the same cell. A zero digit contributes no position, which makes 0 the
// blank cell. Digits 7-9 and negative patterns are rejected.
func (a Alphabet) ExpandPattern(pattern int) (Cell, error) {
	if pattern < 0 {
		return "", fmt.Errorf("%w: negative pattern %d", ErrInvalidPattern, pattern)
	}

	var raised [CellWidth]bool
	for rest := pattern; rest > 0; rest /= 10 {
		position := rest % 10
		if position == 0 {
			continue
		}
		if position > CellWidth {
			return "", fmt.Errorf("%w: dot %d in pattern %d is outside 1-%d", ErrInvalidPattern, position, pattern, CellWidth)
		}
		raised[position-1] = true
	}

	cell := make([]byte, CellWidth)
	for i, on := range raised {
		if on {
			cell[i] = a.Raised
		} else {
			cell[i] = a.Flat
		}
	}
	return Cell(cell), nil
}

// Dots returns the raised positions of c in ascending order. Characters
// other than a.Raised count as flat.
func (a Alphabet) Dots(c Cell) []int {
	var dots []int
	for i := 0; i < len(c); i++ {
		if c[i] == a.Raised {
			dots = append(dots, i+1)
		}
	}
	return dots
}

// ExpandPattern expands pattern over DefaultAlphabet.
func ExpandPattern(pattern int) (Cell, error) {
	return DefaultAlphabet.ExpandPattern(pattern)
}
