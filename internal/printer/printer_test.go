package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		SetOutput(nil, nil)
		color.NoColor = noColor
	})
	return &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Equal(t, "Test Error\n\nThis is a test error\n", errOut.String())
	})

	t.Run("single suggestion is printed without numbering", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "\nTry this fix\n")
		assert.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("multiple suggestions are numbered", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "Either:\n  1. First option\n  2. Second option\n")
	})
}

func TestErrorWithContext(t *testing.T) {
	_, errOut := capture(t)
	context := map[string]string{
		"Position": "3",
		"Cell":     "OOOOOO",
	}
	err := ErrorWithContext("Test Error", "Explanation", context, []string{})
	require.Error(t, err)
	require.Equal(t, "Test Error", err.Error())
	assert.Contains(t, errOut.String(), "  Cell: OOOOOO\n  Position: 3\n")
}

func TestOutputHelpers(t *testing.T) {
	out, errOut := capture(t)

	Success("done\n")
	Info("plain %d\n", 1)
	Cells("O.....")
	Println("line")
	Warning("careful\n")

	assert.Equal(t, "✓ done\nplain 1\nO.....\nline\n", out.String())
	assert.Equal(t, "⚠️  careful\n", errOut.String())
}

func TestReported(t *testing.T) {
	capture(t)

	assert.True(t, Reported(Error("shown", "", nil)))
	assert.True(t, Reported(fmt.Errorf("wrapped: %w", ErrorWithContext("shown", "", nil, nil))))
	assert.False(t, Reported(errors.New("plain")))
	assert.False(t, Reported(nil))
}
