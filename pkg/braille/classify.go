package braille

import "unicode"

// Kind is the role a single cell or character plays during translation.
type Kind int

const (
	KindUnknown Kind = iota
	KindLetter
	KindDigit
	KindCapital
	KindNumber
	KindDecimal
	KindPunctuation
	KindSpace
)

func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindDigit:
		return "digit"
	case KindCapital:
		return "capital"
	case KindNumber:
		return "number"
	case KindDecimal:
		return "decimal"
	case KindPunctuation:
		return "punctuation"
	case KindSpace:
		return "space"
	default:
		return "unknown"
	}
}

// isBraille reports whether s is a whole number of cells, each of which
// belongs to the charset. The empty string is zero cells and qualifies.
func (t *tables) isBraille(s string) bool {
	if len(s)%CellWidth != 0 {
		return false
	}
	for i := 0; i < len(s); i += CellWidth {
		if _, ok := t.charset[Cell(s[i:i+CellWidth])]; !ok {
			return false
		}
	}
	return true
}

// classifyCell tags a cell. Inside a numeric run digit and decimal cells
// take precedence over the letters they share a cell with.
func (t *tables) classifyCell(cell Cell, inNumberRun bool) Kind {
	if inNumberRun {
		if _, ok := t.digitOf[cell]; ok {
			return KindDigit
		}
		if t.modifierOf[cell] == DecimalFollow {
			return KindDecimal
		}
	}

	if cell == t.space {
		return KindSpace
	}
	if _, ok := t.letterOf[cell]; ok {
		return KindLetter
	}
	if m, ok := t.modifierOf[cell]; ok {
		switch m {
		case CapitalFollow:
			return KindCapital
		case NumberFollow:
			return KindNumber
		case DecimalFollow:
			return KindDecimal
		}
	}
	if _, ok := t.punctuationOf[cell]; ok {
		return KindPunctuation
	}
	return KindUnknown
}

// classifyRune tags a character of plain text. Inside a numeric run '.'
// is a decimal point rather than a full stop.
func (t *tables) classifyRune(r rune, inNumberRun bool) Kind {
	if inNumberRun && r == '.' {
		return KindDecimal
	}
	if r > unicode.MaxASCII {
		return KindUnknown
	}
	if _, ok := t.letters[unicode.ToUpper(r)]; ok {
		return KindLetter
	}
	if _, ok := t.digits[r]; ok {
		return KindDigit
	}
	if r == ' ' {
		return KindSpace
	}
	if _, ok := t.punctuation[r]; ok {
		return KindPunctuation
	}
	return KindUnknown
}
