package braille

// Namespace identifies one of the four disjoint symbol tables.
type Namespace int

const (
	NamespaceLetter Namespace = iota
	NamespaceDigit
	NamespaceModifier
	NamespacePunctuation
)

func (n Namespace) String() string {
	switch n {
	case NamespaceLetter:
		return "letter"
	case NamespaceDigit:
		return "digit"
	case NamespaceModifier:
		return "modifier"
	case NamespacePunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Modifier names a reserved cell that changes how the following cell(s) are read.
type Modifier string

const (
	// CapitalFollow marks the single next letter as uppercase.
	CapitalFollow Modifier = "CAPITAL_FOLLOW"

	// NumberFollow opens a numeric run covering every following digit and decimal cell.
	NumberFollow Modifier = "NUMBER_FOLLOW"

	// DecimalFollow is a decimal point inside a numeric run.
	DecimalFollow Modifier = "DECIMAL_FOLLOW"
)

// patternSet holds the dot patterns every Engine is built from.
type patternSet struct {
	letters     map[rune]int
	digits      map[rune]int
	modifiers   map[Modifier]int
	punctuation map[rune]int
}

var letterPatterns = map[rune]int{
	'A': 1, 'B': 13, 'C': 12, 'D': 124, 'E': 14,
	'F': 123, 'G': 1234, 'H': 134, 'I': 23, 'J': 234,
	'K': 15, 'L': 135, 'M': 125, 'N': 1245, 'O': 145,
	'P': 1235, 'Q': 12345, 'R': 1345, 'S': 235, 'T': 2345,
	'U': 156, 'V': 1356, 'W': 2346, 'X': 1256, 'Y': 12456,
	'Z': 1456,
}

// Digits reuse the cells of A through J; a number-follow cell selects them.
var digitPatterns = map[rune]int{
	'1': letterPatterns['A'],
	'2': letterPatterns['B'],
	'3': letterPatterns['C'],
	'4': letterPatterns['D'],
	'5': letterPatterns['E'],
	'6': letterPatterns['F'],
	'7': letterPatterns['G'],
	'8': letterPatterns['H'],
	'9': letterPatterns['I'],
	'0': letterPatterns['J'],
}

var modifierPatterns = map[Modifier]int{
	CapitalFollow: 6,
	DecimalFollow: 26,
	NumberFollow:  2456,
}

var punctuationPatterns = map[rune]int{
	'.': 346,
	',': 3,
	'?': 356,
	'!': 345,
	':': 34,
	';': 35,
	'-': 56,
	'/': 25,
	'<': 236,
	'>': 145,
	'(': 136,
	')': 245,
	' ': 0,
}

func standardPatterns() patternSet {
	return patternSet{
		letters:     letterPatterns,
		digits:      digitPatterns,
		modifiers:   modifierPatterns,
		punctuation: punctuationPatterns,
	}
}
