package braille

import "sync"

// Direction is the way a message is translated.
type Direction int

const (
	// ToBraille translates plain text into cell notation.
	ToBraille Direction = iota
	// ToText translates cell notation into plain text.
	ToText
)

func (d Direction) String() string {
	if d == ToText {
		return "english"
	}
	return "braille"
}

// Engine translates between cell notation and text. Its tables are built by
// New and are read-only afterwards, so an Engine is safe for concurrent use.
type Engine struct {
	t *tables
}

type options struct {
	alphabet Alphabet
}

// Option configures an Engine.
type Option func(*options)

// WithAlphabet renders cells with the given raised and flat characters.
func WithAlphabet(a Alphabet) Option {
	return func(o *options) {
		o.alphabet = a
	}
}

// New builds an Engine. It fails only when an option produces invalid tables.
func New(opts ...Option) (*Engine, error) {
	o := options{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := buildTables(o.alphabet, standardPatterns())
	if err != nil {
		return nil, err
	}
	return &Engine{t: t}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return MustNew()
})

// Default returns a process-wide Engine using DefaultAlphabet.
func Default() *Engine {
	return defaultEngine()
}

// Alphabet returns the characters the engine renders cells with.
func (e *Engine) Alphabet() Alphabet {
	return e.t.alphabet
}

// IsBraille reports whether message is valid cell notation: its length is a
// multiple of CellWidth and every cell is known. The empty message is valid
// and translates to the empty string in either direction.
func (e *Engine) IsBraille(message string) bool {
	return e.t.isBraille(message)
}

// Detect returns the direction Translate would use for message.
func (e *Engine) Detect(message string) Direction {
	if e.t.isBraille(message) {
		return ToText
	}
	return ToBraille
}

// Translate decodes message when it is cell notation and encodes it otherwise.
func (e *Engine) Translate(message string) (string, error) {
	if e.Detect(message) == ToText {
		return e.t.decode(message)
	}
	return e.t.encode(message)
}

// TranslateTo translates message in the given direction without detection.
func (e *Engine) TranslateTo(d Direction, message string) (string, error) {
	if d == ToText {
		return e.t.decode(message)
	}
	return e.t.encode(message)
}

// EnglishToBraille encodes text as cell notation.
func (e *Engine) EnglishToBraille(text string) (string, error) {
	return e.t.encode(text)
}

// BrailleToEnglish decodes cell notation into text.
func (e *Engine) BrailleToEnglish(cells string) (string, error) {
	return e.t.decode(cells)
}

// Chart lists every symbol with its pattern and cell, grouped by namespace.
func (e *Engine) Chart() []Entry {
	return e.t.chart()
}
