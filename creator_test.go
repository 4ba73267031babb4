// creator_test.go
package seaflow

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnit_IgnoresMatchedText(t *testing.T) {
	c := Unit(42)

	v, emit, err := c.Create("whatever", 7)
	require.NoError(t, err)
	require.True(t, emit)
	require.Equal(t, 42, v)

	v, emit, err = c.Create("", 0)
	require.NoError(t, err)
	require.True(t, emit)
	require.Equal(t, 42, v)
}

func TestParser_SuccessAndFailure(t *testing.T) {
	c := Parser(func(text string) (int64, error) {
		return strconv.ParseInt(text, 10, 64)
	})

	v, emit, err := c.Create("123", 0)
	require.NoError(t, err)
	require.True(t, emit)
	require.Equal(t, int64(123), v)

	_, _, err = c.Create("abc", 5)
	require.Error(t, err)
	// The raw constructor error comes back; the engine is what wraps it
	// into *FieldParseError with the span start.
	var fp *FieldParseError
	require.False(t, errors.As(err, &fp))
}

func TestSkip_NeverEmits(t *testing.T) {
	c := Skip[string]()

	v, emit, err := c.Create("  \t", 3)
	require.NoError(t, err)
	require.False(t, emit)
	require.Equal(t, "", v)
}
