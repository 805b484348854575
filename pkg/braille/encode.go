package braille

import (
	"strings"
	"unicode"
)

// encode converts plain text to cell notation.
//
// An uppercase letter is preceded by a capital-follow cell that covers that
// letter only. A digit opens a numeric run: one number-follow cell, then a
// cell for every digit and embedded '.' up to the first other character.
func (t *tables) encode(message string) (string, error) {
	runes := []rune(message)

	var b strings.Builder
	b.Grow(len(runes) * CellWidth)

	for pos := 0; pos < len(runes); {
		r := runes[pos]
		switch t.classifyRune(r, false) {
		case KindLetter:
			if unicode.IsUpper(r) {
				b.WriteString(string(t.modifiers[CapitalFollow]))
			}
			b.WriteString(string(t.letters[unicode.ToUpper(r)]))
			pos++

		case KindDigit:
			b.WriteString(string(t.modifiers[NumberFollow]))
			pos = t.encodeRun(runes, pos, &b)

		case KindPunctuation, KindSpace:
			b.WriteString(string(t.punctuation[r]))
			pos++

		default:
			return "", &UnsupportedSymbolError{Char: r, Pos: pos}
		}
	}

	return b.String(), nil
}

// encodeRun writes the numeric run starting at pos and returns the index of
// the first character after it.
func (t *tables) encodeRun(runes []rune, pos int, b *strings.Builder) int {
	for ; pos < len(runes); pos++ {
		switch t.classifyRune(runes[pos], true) {
		case KindDigit:
			b.WriteString(string(t.digits[runes[pos]]))
		case KindDecimal:
			b.WriteString(string(t.modifiers[DecimalFollow]))
		default:
			return pos
		}
	}
	return pos
}
