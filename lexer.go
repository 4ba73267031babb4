// lexer.go: the scanning engine.
//
// A Lexer walks one input string with a byte cursor, driven by a compiled
// Ruleset. Each production step runs the skip phase to exhaustion, then
// probes the token rules in declared order; the first rule whose matcher
// succeeds wins. That is a priority rule, not longest-match: a short
// literal declared earlier always pre-empts a longer regex match declared
// later. Ambiguity between rules is resolved by their authored order and
// nothing else.
//
// All runtime errors are fatal for the scan. After the first error every
// call reports it again; there is no resynchronization.
package seaflow

import "unicode/utf8"

// Lexer scans a single input string into tokens. It owns its cursor and
// must not be used from multiple goroutines; construct one Lexer per input
// and share the Ruleset instead.
type Lexer[T any] struct {
	rules *Ruleset[T]
	input string
	pos   int
	err   error // first runtime error; sticky
}

// NewLexer creates a lexer over input using the given compiled table.
func NewLexer[T any](rules *Ruleset[T], input string) *Lexer[T] {
	return &Lexer[T]{rules: rules, input: input}
}

// Pos returns the current cursor position in bytes.
func (l *Lexer[T]) Pos() int { return l.pos }

// skipPhase advances the cursor past every skip match. After a skip
// matcher consumes input the whole skip list is retried from the top, so
// distinct skip rules (a comment rule, then a whitespace rule) chain in
// any order.
func (l *Lexer[T]) skipPhase() {
	for l.pos < len(l.input) {
		skipped := false
		for _, m := range l.rules.skips {
			if n, ok := m.Match(l.input[l.pos:]); ok && n > 0 {
				l.pos += n
				skipped = true
				break
			}
		}
		if !skipped {
			return
		}
	}
}

// Next produces the next token. It returns (nil, nil) once the input is
// exhausted, or the first runtime error encountered; after an error the
// lexer is stuck and every further call returns the same error.
func (l *Lexer[T]) Next() (*TokenInfo[T], error) {
	if l.err != nil {
		return nil, l.err
	}
	for {
		l.skipPhase()
		if l.pos >= len(l.input) {
			return nil, nil
		}

		matched := false
		for _, rule := range l.rules.rules {
			n, ok := rule.Match.Match(l.input[l.pos:])
			if !ok || n == 0 {
				continue
			}
			matched = true
			start := l.pos
			end := start + n
			text := l.input[start:end]
			l.pos = end

			value, emit, err := rule.Create.Create(text, start)
			if err != nil {
				l.err = &FieldParseError{Position: start, Err: err}
				return nil, l.err
			}
			if !emit {
				// Per-rule skip: consumed, nothing produced. Back to
				// the skip phase without returning to the caller.
				break
			}
			return &TokenInfo[T]{Kind: value, Text: text, Start: start, End: end}, nil
		}
		if !matched {
			ch, _ := utf8.DecodeRuneInString(l.input[l.pos:])
			l.err = &UnexpectedCharError{Position: l.pos, Char: ch}
			return nil, l.err
		}
	}
}

// Collect pulls tokens until exhaustion or the first error, returning the
// complete ordered token list or the single error encountered. The batch
// form discards tokens collected before an error; callers needing partial
// results must pull with Next directly.
func (l *Lexer[T]) Collect() ([]TokenInfo[T], error) {
	var tokens []TokenInfo[T]
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, *tok)
	}
}

// Lex is the one-shot batch entry point: scan input against rules and
// return every token or the first error.
func Lex[T any](rules *Ruleset[T], input string) ([]TokenInfo[T], error) {
	return NewLexer(rules, input).Collect()
}
