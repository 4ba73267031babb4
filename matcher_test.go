// matcher_test.go
package seaflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T, pattern string, isRegex bool) Matcher {
	t.Helper()
	m, err := CompileMatcher(pattern, isRegex)
	require.NoError(t, err)
	return m
}

func TestLiteralMatcher_PrefixOnly(t *testing.T) {
	m := mustMatcher(t, "let", false)

	n, ok := m.Match("let x = 1")
	require.True(t, ok)
	require.Equal(t, 3, n)

	_, ok = m.Match(" let")
	require.False(t, ok)
	_, ok = m.Match("le")
	require.False(t, ok)
}

func TestLiteralMatcher_MetacharactersArePlainBytes(t *testing.T) {
	// Literals never pass through the regex engine, so every
	// metacharacter is an exact byte.
	for _, pat := range []string{"+", ".", "*", "(", ")", "[", "]", `\`, `a+b`, `\d`} {
		m := mustMatcher(t, pat, false)

		n, ok := m.Match(pat + "rest")
		require.True(t, ok, "pattern %q", pat)
		require.Equal(t, len(pat), n, "pattern %q", pat)
	}

	// "." matches only a dot, not any character.
	m := mustMatcher(t, ".", false)
	_, ok := m.Match("x")
	require.False(t, ok)
}

func TestRegexMatcher_AnchoredAtStart(t *testing.T) {
	// The compiler forces start-anchoring: a digit run mid-input must
	// not be found.
	m := mustMatcher(t, `\d+`, true)

	n, ok := m.Match("42abc")
	require.True(t, ok)
	require.Equal(t, 2, n)

	_, ok = m.Match("abc42")
	require.False(t, ok)
}

func TestRegexMatcher_AuthorAnchorNotDoubled(t *testing.T) {
	m := mustMatcher(t, `^\d+`, true)

	n, ok := m.Match("7x")
	require.True(t, ok)
	require.Equal(t, 1, n)

	_, ok = m.Match("x7")
	require.False(t, ok)
}

func TestRegexMatcher_AlternationFullyAnchored(t *testing.T) {
	// "a|b" must compile as ^(?:a|b); a bare "^a|b" would leave the
	// second branch unanchored.
	m := mustMatcher(t, `a|b`, true)

	_, ok := m.Match("xb")
	require.False(t, ok)

	n, ok := m.Match("b")
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestRegexMatcher_MultilineAnchorPastStartRejected(t *testing.T) {
	// (?m) lets ^ match after a newline; only a match beginning at
	// offset 0 of the probed substring counts.
	m := mustMatcher(t, `(?m)^b+`, true)

	_, ok := m.Match("a\nbb")
	require.False(t, ok)

	n, ok := m.Match("bb\na")
	require.True(t, ok)
	require.Equal(t, 2, n)
}

func TestRegexMatcher_MultiByteLengthInBytes(t *testing.T) {
	m := mustMatcher(t, `\p{Greek}+`, true)

	n, ok := m.Match("λμx")
	require.True(t, ok)
	require.Equal(t, 4, n) // two 2-byte runes, not 2
}

func TestCompileMatcher_InvalidRegex(t *testing.T) {
	_, err := CompileMatcher(`[a-`, true)
	var ip *InvalidPatternError
	require.ErrorAs(t, err, &ip)
	require.Equal(t, `[a-`, ip.Pattern)
	require.NotNil(t, ip.Err)
}
