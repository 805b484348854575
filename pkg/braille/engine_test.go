package braille

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Translate(t *testing.T) {
	engine := MustNew()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"text to cells", "Abc", ".....OO.....O.O...OO...."},
		{"cells to text", ".....OO.....O.O...OO....", "Abc"},
		{"empty message", "", ""},
		{"text of cell width is encoded", "abcdef", "O.....O.O...OO....OO.O..O..O..OOO..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Translate(tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_TranslateMisdetectionFallsBackToEncoding(t *testing.T) {
	engine := MustNew()

	// Not a whole number of cells, so it is encoded as text.
	got, err := engine.Translate("O....")
	require.NoError(t, err)
	assert.Equal(t, ".....OO..OO...OO.O..OO.O..OO.O..OO.O", got)

	_, err = engine.Translate("OOOOO#")
	assert.ErrorIs(t, err, ErrUnsupportedSymbol)
}

func TestEngine_Detect(t *testing.T) {
	engine := MustNew()

	assert.Equal(t, ToText, engine.Detect(".....OO....."))
	assert.Equal(t, ToText, engine.Detect(""))
	assert.Equal(t, ToBraille, engine.Detect("hello"))
	assert.Equal(t, "english", ToText.String())
	assert.Equal(t, "braille", ToBraille.String())
}

func TestEngine_TranslateTo(t *testing.T) {
	engine := MustNew()

	// "O....." is valid cell notation, but forcing ToBraille encodes it as text.
	got, err := engine.TranslateTo(ToBraille, "O.....")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, ".....O"+"O..OO."))

	got, err = engine.TranslateTo(ToText, "O.....")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestEngine_RoundTrip(t *testing.T) {
	engine := MustNew()

	messages := []string{
		"",
		"Hello world",
		"Abc 123 xYz",
		"3.14",
		"The year 2024 had 366 days.",
		"Is it 42? Yes!",
		"pi is 3.14159 (roughly)",
		"a, b; c: d - e/f < g",
		"ALL CAPS",
		"1.",
		"  double  spaced  ",
	}

	for _, msg := range messages {
		t.Run(msg, func(t *testing.T) {
			cells, err := engine.EnglishToBraille(msg)
			require.NoError(t, err)
			assert.True(t, engine.IsBraille(cells))

			text, err := engine.BrailleToEnglish(cells)
			require.NoError(t, err)
			assert.Equal(t, msg, text)
		})
	}
}

func TestEngine_GreaterThanDecodesAsLetter(t *testing.T) {
	engine := MustNew()

	cells, err := engine.EnglishToBraille("a > b")
	require.NoError(t, err)

	text, err := engine.BrailleToEnglish(cells)
	require.NoError(t, err)
	assert.Equal(t, "a o b", text)
}

func TestEngine_IsBrailleEmptyString(t *testing.T) {
	engine := MustNew()

	assert.True(t, engine.IsBraille(""))
	got, err := engine.BrailleToEnglish("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	got, err = engine.EnglishToBraille("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestEngine_WithAlphabet(t *testing.T) {
	engine, err := New(WithAlphabet(Alphabet{Raised: '1', Flat: '0'}))
	require.NoError(t, err)
	assert.Equal(t, Alphabet{Raised: '1', Flat: '0'}, engine.Alphabet())

	cells, err := engine.EnglishToBraille("Go 7")
	require.NoError(t, err)
	assert.Equal(t, "000001"+"111100"+"100110"+"000000"+"010111"+"111100", cells)
	assert.False(t, engine.IsBraille(strings.ReplaceAll(strings.ReplaceAll(cells, "1", "O"), "0", ".")))

	text, err := engine.Translate(cells)
	require.NoError(t, err)
	assert.Equal(t, "Go 7", text)
}

func TestNew_InvalidAlphabet(t *testing.T) {
	engine, err := New(WithAlphabet(Alphabet{Raised: 'x', Flat: 'x'}))
	assert.Nil(t, engine)
	assert.ErrorIs(t, err, ErrInvalidAlphabet)

	assert.Panics(t, func() {
		MustNew(WithAlphabet(Alphabet{Raised: 'x', Flat: 'x'}))
	})
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, DefaultAlphabet, Default().Alphabet())
}

func TestEngine_ErrorsAreTyped(t *testing.T) {
	engine := MustNew()

	_, err := engine.Translate(cellA + cellCapital)
	var capErr *MalformedCapitalError
	assert.True(t, errors.As(err, &capErr))
	assert.False(t, errors.Is(err, ErrMalformedNumber))
	assert.EqualError(t, err, "malformed capital at cell 1: no cell after capital sign")

	_, err = engine.Translate(cellNumber + cellDecimal)
	assert.ErrorIs(t, err, ErrMalformedNumber)

	_, err = engine.BrailleToEnglish("OOOOOO")
	assert.EqualError(t, err, `unknown cell "OOOOOO" at cell 0`)

	_, err = engine.EnglishToBraille("a~")
	assert.EqualError(t, err, `unsupported symbol '~' at position 1`)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := MustNew()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cells, err := engine.EnglishToBraille("Sum 12.5 and 7!")
				if err != nil {
					errs <- err
					return
				}
				text, err := engine.Translate(cells)
				if err != nil {
					errs <- err
					return
				}
				if text != "Sum 12.5 and 7!" {
					errs <- errors.New("round trip mismatch: " + text)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
