package braille

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every translation error matches exactly one of them with errors.Is.
var (
	ErrUnsupportedSymbol = errors.New("unsupported symbol")
	ErrMalformedCapital  = errors.New("malformed capital")
	ErrMalformedNumber   = errors.New("malformed number")
	ErrUnknownCell       = errors.New("unknown cell")
)

// Construction errors returned by New.
var (
	ErrInvalidPattern  = errors.New("invalid dot pattern")
	ErrCellCollision   = errors.New("cell collision")
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// UnsupportedSymbolError is returned when text contains a character outside
// the letters, digits and punctuation the engine knows.
type UnsupportedSymbolError struct {
	Char rune
	Pos  int // character index in the input
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("unsupported symbol %q at position %d", e.Char, e.Pos)
}

func (e *UnsupportedSymbolError) Is(target error) bool {
	return target == ErrUnsupportedSymbol
}

// MalformedCapitalError is returned when a capital-follow cell is the last
// cell or is not followed by a letter.
type MalformedCapitalError struct {
	Pos    int // cell index of the modifier
	Reason string
}

func (e *MalformedCapitalError) Error() string {
	return fmt.Sprintf("malformed capital at cell %d: %s", e.Pos, e.Reason)
}

func (e *MalformedCapitalError) Is(target error) bool {
	return target == ErrMalformedCapital
}

// MalformedNumberError is returned when a number-follow cell is the last cell,
// is not followed by a digit, or is directly followed by a decimal-follow cell.
type MalformedNumberError struct {
	Pos    int // cell index of the modifier
	Reason string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number at cell %d: %s", e.Pos, e.Reason)
}

func (e *MalformedNumberError) Is(target error) bool {
	return target == ErrMalformedNumber
}

// UnknownCellError is returned for a chunk that no table can decode at its position.
type UnknownCellError struct {
	Pos  int // cell index
	Cell Cell
}

func (e *UnknownCellError) Error() string {
	return fmt.Sprintf("unknown cell %q at cell %d", string(e.Cell), e.Pos)
}

func (e *UnknownCellError) Is(target error) bool {
	return target == ErrUnknownCell
}
