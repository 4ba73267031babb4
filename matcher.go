// matcher.go: pattern compilation and the matching capability.
package seaflow

import (
	"regexp"
	"strings"
)

// Matcher reports whether a pattern matches at the start of the remaining
// input. Implementations must be stateless after construction so a
// compiled Ruleset can be shared across concurrently running Lexers.
//
// Match returns the consumed length in bytes and true on a match at offset
// 0 of remaining, or (0, false) otherwise. The engine treats a zero-length
// match as a non-match to guarantee forward progress.
type Matcher interface {
	Match(remaining string) (n int, ok bool)
}

// literalMatcher matches its pattern as an exact byte prefix. The pattern
// never goes through the regex engine, so metacharacters ('+', '.', '(',
// backslash, ...) are plain bytes with no escaping step to get wrong.
type literalMatcher string

func (m literalMatcher) Match(remaining string) (int, bool) {
	if strings.HasPrefix(remaining, string(m)) {
		return len(m), true
	}
	return 0, false
}

// regexMatcher matches a compiled expression anchored to the start of the
// probed substring.
type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Match(remaining string) (int, bool) {
	loc := m.re.FindStringIndex(remaining)
	// A (?m) pattern can let ^ match past offset 0; only offset 0 counts.
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return loc[1], true
}

// CompileMatcher turns a raw (pattern, isRegex) pair into an executable
// Matcher. This is the single fallible setup step of the whole engine: an
// unparsable regular expression yields *InvalidPatternError, and nothing
// else about construction can fail.
//
// Regex patterns are forced to match only at the start of whatever
// substring they are probed against: a pattern without a leading "^" is
// compiled as "^(?:pattern)" (the non-capturing group keeps alternations
// like "a|b" fully anchored), and a pattern the author already anchored is
// compiled verbatim.
func CompileMatcher(pattern string, isRegex bool) (Matcher, error) {
	if !isRegex {
		return literalMatcher(pattern), nil
	}
	p := pattern
	if !strings.HasPrefix(p, "^") {
		p = "^(?:" + p + ")"
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return regexMatcher{re: re}, nil
}
