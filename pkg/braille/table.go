package braille

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// tables holds every forward and reverse lookup an Engine needs.
// It is fully built by buildTables and never written to afterwards.
type tables struct {
	alphabet Alphabet
	patterns patternSet

	letters     map[rune]Cell
	digits      map[rune]Cell
	modifiers   map[Modifier]Cell
	punctuation map[rune]Cell

	letterOf      map[Cell]rune
	digitOf       map[Cell]rune
	modifierOf    map[Cell]Modifier
	punctuationOf map[Cell]rune

	// encodeOnly lists symbols whose cell decodes as a different symbol.
	encodeOnly map[symbolRef]bool

	charset map[Cell]struct{}
	space   Cell
}

type symbolRef struct {
	ns     Namespace
	symbol string
}

type overloadRule int

const (
	// ruleNumberRun reads the shared cell as the shadowed symbol inside a
	// numeric run and as the winner everywhere else.
	ruleNumberRun overloadRule = iota

	// ruleEncodeOnly always decodes the shared cell as the winner. The
	// shadowed symbol can still be encoded but gets no reverse slot.
	ruleEncodeOnly
)

// overload declares that a symbol may share its cell with a symbol from
// another namespace. Any cross-namespace collision not listed here is
// rejected when the tables are built.
type overload struct {
	shadowed Namespace
	symbol   string // empty matches every symbol in shadowed
	winner   Namespace
	rule     overloadRule
}

var overloads = []overload{
	// 1-9 and 0 are written with the cells of a-j.
	{shadowed: NamespaceDigit, winner: NamespaceLetter, rule: ruleNumberRun},
	// '>' and 'o' are both dots 1-4-5; the letter is far more common.
	{shadowed: NamespacePunctuation, symbol: ">", winner: NamespaceLetter, rule: ruleEncodeOnly},
}

func buildTables(alphabet Alphabet, set patternSet) (*tables, error) {
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}

	t := &tables{alphabet: alphabet, patterns: set, encodeOnly: map[symbolRef]bool{}}
	var err error

	if t.letters, err = buildTable(alphabet, set.letters); err != nil {
		return nil, fmt.Errorf("letter table: %w", err)
	}
	if t.digits, err = buildTable(alphabet, set.digits); err != nil {
		return nil, fmt.Errorf("digit table: %w", err)
	}
	if t.modifiers, err = buildTable(alphabet, set.modifiers); err != nil {
		return nil, fmt.Errorf("modifier table: %w", err)
	}
	if t.punctuation, err = buildTable(alphabet, set.punctuation); err != nil {
		return nil, fmt.Errorf("punctuation table: %w", err)
	}

	if t.letterOf, err = invert(NamespaceLetter, t.letters); err != nil {
		return nil, err
	}
	if t.digitOf, err = invert(NamespaceDigit, t.digits); err != nil {
		return nil, err
	}
	if t.modifierOf, err = invert(NamespaceModifier, t.modifiers); err != nil {
		return nil, err
	}
	if t.punctuationOf, err = invert(NamespacePunctuation, t.punctuation); err != nil {
		return nil, err
	}

	for _, m := range []Modifier{CapitalFollow, NumberFollow, DecimalFollow} {
		if _, ok := t.modifiers[m]; !ok {
			return nil, fmt.Errorf("%w: modifier %s has no pattern", ErrInvalidPattern, m)
		}
	}
	space, ok := t.punctuation[' ']
	if !ok {
		return nil, fmt.Errorf("%w: space has no pattern", ErrInvalidPattern)
	}
	t.space = space

	if err := t.resolveOverloads(); err != nil {
		return nil, err
	}

	t.charset = make(map[Cell]struct{})
	for _, cells := range [][]Cell{
		slices.Collect(maps.Values(t.letters)),
		slices.Collect(maps.Values(t.digits)),
		slices.Collect(maps.Values(t.modifiers)),
		slices.Collect(maps.Values(t.punctuation)),
	} {
		for _, c := range cells {
			t.charset[c] = struct{}{}
		}
	}

	return t, nil
}

// buildTable expands every pattern in specs.
func buildTable[K cmp.Ordered](alphabet Alphabet, specs map[K]int) (map[K]Cell, error) {
	table := make(map[K]Cell, len(specs))
	for symbol, pattern := range specs {
		cell, err := alphabet.ExpandPattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", symbolName(symbol), err)
		}
		table[symbol] = cell
	}
	return table, nil
}

// invert builds the reverse lookup of a forward table, which must be injective.
func invert[K cmp.Ordered](ns Namespace, table map[K]Cell) (map[Cell]K, error) {
	reverse := make(map[Cell]K, len(table))
	for _, symbol := range slices.Sorted(maps.Keys(table)) {
		cell := table[symbol]
		if other, exists := reverse[cell]; exists {
			return nil, fmt.Errorf("%w: %s symbols %q and %q both expand to %s",
				ErrCellCollision, ns, symbolName(other), symbolName(symbol), cell)
		}
		reverse[cell] = symbol
	}
	return reverse, nil
}

func symbolName[K cmp.Ordered](symbol K) string {
	switch s := any(symbol).(type) {
	case rune:
		return string(s)
	case Modifier:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}

// resolveOverloads checks every cell shared across namespaces against the
// declared overloads and removes reverse slots of encode-only symbols.
func (t *tables) resolveOverloads() error {
	owners := make(map[Cell][]symbolRef)
	addOwners(owners, NamespaceLetter, t.letters)
	addOwners(owners, NamespaceDigit, t.digits)
	addOwners(owners, NamespaceModifier, t.modifiers)
	addOwners(owners, NamespacePunctuation, t.punctuation)

	for _, cell := range slices.Sorted(maps.Keys(owners)) {
		refs := owners[cell]
		for i := 0; i < len(refs); i++ {
			for j := i + 1; j < len(refs); j++ {
				ov, shadowed, ok := findOverload(refs[i], refs[j])
				if !ok {
					return fmt.Errorf("%w: %s %q and %s %q both expand to %s",
						ErrCellCollision, refs[i].ns, refs[i].symbol, refs[j].ns, refs[j].symbol, cell)
				}
				if ov.rule == ruleEncodeOnly {
					t.encodeOnly[shadowed] = true
					t.dropReverse(shadowed.ns, cell)
				}
			}
		}
	}
	return nil
}

func addOwners[K cmp.Ordered](owners map[Cell][]symbolRef, ns Namespace, table map[K]Cell) {
	for _, symbol := range slices.Sorted(maps.Keys(table)) {
		cell := table[symbol]
		owners[cell] = append(owners[cell], symbolRef{ns: ns, symbol: symbolName(symbol)})
	}
}

func findOverload(a, b symbolRef) (overload, symbolRef, bool) {
	for _, ov := range overloads {
		for _, pair := range [][2]symbolRef{{a, b}, {b, a}} {
			shadowed, winner := pair[0], pair[1]
			if shadowed.ns != ov.shadowed || winner.ns != ov.winner {
				continue
			}
			if ov.symbol != "" && ov.symbol != shadowed.symbol {
				continue
			}
			return ov, shadowed, true
		}
	}
	return overload{}, symbolRef{}, false
}

func (t *tables) dropReverse(ns Namespace, cell Cell) {
	switch ns {
	case NamespaceLetter:
		delete(t.letterOf, cell)
	case NamespaceDigit:
		delete(t.digitOf, cell)
	case NamespaceModifier:
		delete(t.modifierOf, cell)
	case NamespacePunctuation:
		delete(t.punctuationOf, cell)
	}
}

// Entry describes one symbol of the engine's tables.
type Entry struct {
	Namespace Namespace
	Symbol    string
	Pattern   int
	Cell      Cell
	// EncodeOnly is set when the cell decodes as a different symbol.
	EncodeOnly bool
}

func (t *tables) chart() []Entry {
	var entries []Entry
	entries = appendEntries(entries, t, NamespaceLetter, t.patterns.letters, t.letters)
	entries = appendEntries(entries, t, NamespaceDigit, t.patterns.digits, t.digits)
	entries = appendEntries(entries, t, NamespaceModifier, t.patterns.modifiers, t.modifiers)
	entries = appendEntries(entries, t, NamespacePunctuation, t.patterns.punctuation, t.punctuation)
	return entries
}

func appendEntries[K cmp.Ordered](entries []Entry, t *tables, ns Namespace, patterns map[K]int, cells map[K]Cell) []Entry {
	for _, symbol := range slices.Sorted(maps.Keys(cells)) {
		name := symbolName(symbol)
		entries = append(entries, Entry{
			Namespace:  ns,
			Symbol:     name,
			Pattern:    patterns[symbol],
			Cell:       cells[symbol],
			EncodeOnly: t.encodeOnly[symbolRef{ns: ns, symbol: name}],
		})
	}
	return entries
}
