package braille

import (
	"strings"
	"unicode"
)

// decode converts cell notation to plain text.
func (t *tables) decode(message string) (string, error) {
	if rem := len(message) % CellWidth; rem != 0 {
		start := len(message) - rem
		return "", &UnknownCellError{Pos: start / CellWidth, Cell: Cell(message[start:])}
	}

	cells := make([]Cell, 0, len(message)/CellWidth)
	for i := 0; i < len(message); i += CellWidth {
		cells = append(cells, Cell(message[i:i+CellWidth]))
	}

	var b strings.Builder
	b.Grow(len(cells))

	for pos := 0; pos < len(cells); {
		cell := cells[pos]
		switch t.classifyCell(cell, false) {
		case KindSpace:
			b.WriteByte(' ')
			pos++

		case KindLetter:
			b.WriteRune(unicode.ToLower(t.letterOf[cell]))
			pos++

		case KindCapital:
			if pos+1 >= len(cells) {
				return "", &MalformedCapitalError{Pos: pos, Reason: "no cell after capital sign"}
			}
			if t.classifyCell(cells[pos+1], false) != KindLetter {
				return "", &MalformedCapitalError{Pos: pos, Reason: "capital sign not followed by a letter"}
			}
			b.WriteRune(t.letterOf[cells[pos+1]])
			pos += 2

		case KindNumber:
			n, err := t.decodeRun(cells, pos, &b)
			if err != nil {
				return "", err
			}
			pos += n

		case KindPunctuation:
			b.WriteRune(t.punctuationOf[cell])
			pos++

		case KindDigit, KindDecimal, KindUnknown:
			return "", &UnknownCellError{Pos: pos, Cell: cell}
		}
	}

	return b.String(), nil
}

// decodeRun decodes the numeric run opened by the number-follow cell at pos
// and returns the number of cells consumed, the modifier included.
func (t *tables) decodeRun(cells []Cell, pos int, b *strings.Builder) (int, error) {
	if pos+1 >= len(cells) {
		return 0, &MalformedNumberError{Pos: pos, Reason: "no cell after number sign"}
	}
	switch t.classifyCell(cells[pos+1], true) {
	case KindDigit:
	case KindDecimal:
		return 0, &MalformedNumberError{Pos: pos, Reason: "decimal sign directly after number sign"}
	default:
		return 0, &MalformedNumberError{Pos: pos, Reason: "number sign not followed by a digit"}
	}

	end := pos + 1
	for ; end < len(cells); end++ {
		switch t.classifyCell(cells[end], true) {
		case KindDigit:
			b.WriteRune(t.digitOf[cells[end]])
		case KindDecimal:
			b.WriteByte('.')
		default:
			return end - pos, nil
		}
	}
	return end - pos, nil
}
