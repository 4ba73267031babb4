// errors.go: structured lexing errors and caret-snippet rendering.
//
// Three error kinds cover the whole system:
//
//   - *InvalidPatternError: a rule's pattern text failed to compile. This
//     can only happen while building a Ruleset; a successfully constructed
//     engine can never surface it during scanning.
//   - *UnexpectedCharError: no skip or token rule matched at the cursor.
//   - *FieldParseError: a matched rule's value constructor failed.
//
// Both runtime kinds are fatal for the scan: the Lexer holds on to the
// first error and every later call reports it again.
//
// WrapErrorWithSource turns a runtime error into a readable caret snippet
// (numbered lines, one line of context either side, caret under the
// offending column) by mapping the byte offset back onto the source text.
package seaflow

import (
	"fmt"
	"strings"
)

// InvalidPatternError reports a pattern that failed to compile. It is
// returned by CompileMatcher and NewRuleset and never occurs at scan time.
type InvalidPatternError struct {
	Pattern string // the offending pattern text as authored
	Err     error  // underlying cause
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// UnexpectedCharError reports input that no rule of any kind matched.
// Position is the byte offset of Char in the input.
type UnexpectedCharError struct {
	Position int
	Char     rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character at byte %d: %q", e.Position, e.Char)
}

// FieldParseError reports a Parser creator that failed on matched text.
// Position is where the matched span began, not where the cursor ended up.
type FieldParseError struct {
	Position int
	Err      error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("cannot parse token at byte %d: %v", e.Position, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the provided source. It recognizes *UnexpectedCharError and
// *FieldParseError and leaves every other error untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("stdin", a
// file path) included in the header line.
func WrapErrorWithName(err error, srcName, src string) error {
	switch e := err.(type) {
	case *UnexpectedCharError:
		return fmt.Errorf("%s", snippetAt(src, srcName, e.Position, e.Error()))
	case *FieldParseError:
		return fmt.Errorf("%s", snippetAt(src, srcName, e.Position, e.Error()))
	default:
		return err
	}
}

// lineColAt maps a byte offset to 1-based line and column. Offsets past the
// end of src are clamped onto the final line.
func lineColAt(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// snippetAt builds a plain-text snippet with a header and a caret under the
// given byte offset. It shows at most one previous and one next line.
func snippetAt(src, name string, offset int, msg string) string {
	line, col := lineColAt(src, offset)
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "LEX ERROR in %s at %d:%d: %s\n\n", name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "LEX ERROR at %d:%d: %s\n\n", line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
