// token.go: the positioned, classified result record.
package seaflow

import "fmt"

// TokenInfo is a token together with the half-open byte span [Start, End)
// it occupies in the input. Offsets are counted in bytes of the UTF-8
// input, so multi-byte characters contribute their full encoded length.
//
// Invariant: End-Start == len(Text), and successive tokens produced by one
// Lexer have non-decreasing, non-overlapping spans.
type TokenInfo[T any] struct {
	Kind  T      // classified token value
	Text  string // matched substring
	Start int    // inclusive
	End   int    // exclusive
}

// Len returns the span length in bytes.
func (t TokenInfo[T]) Len() int { return t.End - t.Start }

func (t TokenInfo[T]) String() string {
	return fmt.Sprintf("%v %q @%d..%d", t.Kind, t.Text, t.Start, t.End)
}
