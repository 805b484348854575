// Package braille transliterates between six-dot braille cell notation and
// Latin text.
//
// A cell is written as six characters over a two-symbol alphabet, one
// character per dot position 1 through 6. With the default alphabet a raised
// dot is "O" and a flat dot is ".", so the letter "a" (dot 1) is "O.....".
//
// The engine covers upper and lowercase letters, digits (including
// multi-digit runs with embedded decimal points) and a fixed punctuation set.
// Three modifier cells change how the following cells are read:
//
//   - capital follows: the next letter is uppercase (one letter only)
//   - number follows: the cells up to the next non-digit are a numeric run
//   - decimal follows: a decimal point inside a numeric run
//
// Tables are built once when an Engine is constructed and are never mutated
// afterwards, so a single Engine may be shared by any number of goroutines.
//
// Basic usage:
//
//	engine := braille.Default()
//	cells, err := engine.EnglishToBraille("Hello 42")
//	text, err := engine.BrailleToEnglish(cells)
//	out, err := engine.Translate(message) // direction is auto-detected
//
// All failures are typed (see UnsupportedSymbolError, MalformedCapitalError,
// MalformedNumberError and UnknownCellError) and match their kind sentinel
// with errors.Is.
package braille
