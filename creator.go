// creator.go: the token-construction capability.
package seaflow

// Creator turns matched text into a token value, suppresses emission, or
// fails. Create receives the matched substring and the absolute byte
// offset where the match began; it returns the constructed value, whether
// a token should be emitted at all, and any constructor failure. The
// engine wraps a failure into *FieldParseError carrying the span start, so
// implementations report only the cause.
//
// Three implementations cover the common cases: Unit, Parser and Skip.
type Creator[T any] interface {
	Create(text string, start int) (value T, emit bool, err error)
}

type unitCreator[T any] struct {
	value T
}

func (c unitCreator[T]) Create(string, int) (T, bool, error) {
	return c.value, true, nil
}

// Unit returns a Creator that always yields the given fixed value,
// ignoring the matched text. Used for keywords, operators, punctuation.
func Unit[T any](value T) Creator[T] {
	return unitCreator[T]{value: value}
}

type parserCreator[T any] struct {
	fn func(text string) (T, error)
}

func (c parserCreator[T]) Create(text string, _ int) (T, bool, error) {
	v, err := c.fn(text)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

// Parser returns a Creator that builds the token value by running fn over
// the matched text. A failure from fn halts the scan; the engine reports
// it as a *FieldParseError positioned at the start of the matched span.
func Parser[T any](fn func(text string) (T, error)) Creator[T] {
	return parserCreator[T]{fn: fn}
}

type skipCreator[T any] struct{}

func (skipCreator[T]) Create(string, int) (T, bool, error) {
	var zero T
	return zero, false, nil
}

// Skip returns a Creator that consumes the match without emitting a token.
// A rule with a Skip creator behaves exactly like a global skip pattern,
// just expressed at a specific spot in the token-rule priority order.
func Skip[T any]() Creator[T] {
	return skipCreator[T]{}
}
