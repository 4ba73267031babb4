// rules.go: the declarative rule table and its compiled form.
package seaflow

import "errors"

// RuleSpec describes one token rule: a pattern, how to interpret it, and
// how to build a token from what it matches. The position of a RuleSpec in
// its sequence is its priority: earlier rules pre-empt later ones whenever
// both match, regardless of match length.
type RuleSpec[T any] struct {
	Pattern string
	IsRegex bool
	Create  Creator[T]
}

// SkipSpec describes one skip pattern (whitespace, comments). Skip
// patterns form their own ordered sequence and are applied to exhaustion
// before any token rule at every cursor position.
type SkipSpec struct {
	Pattern string
	IsRegex bool
}

// Rule pairs a compiled matcher with its creator. Exposed so callers with
// a custom Matcher strategy can assemble a Ruleset directly via
// NewRulesetFromCompiled.
type Rule[T any] struct {
	Match  Matcher
	Create Creator[T]
}

// Ruleset is a compiled rule table: ordered token rules plus ordered skip
// matchers. It is immutable after construction and may be shared across
// any number of concurrently running Lexers.
type Ruleset[T any] struct {
	rules []Rule[T]
	skips []Matcher
}

var errMatchesEmpty = errors.New("pattern matches the empty string; a zero-length match would stall the scan")

// NewRuleset compiles ordered token and skip specifications into a
// Ruleset. The declared order of both sequences is preserved exactly; it
// is the engine's only disambiguation mechanism.
//
// Compilation is the single point of failure: an unparsable regular
// expression, or a pattern (skip or token) that matches the empty string,
// yields *InvalidPatternError. Rejecting empty-matching patterns up front
// guarantees the scan always makes forward progress.
func NewRuleset[T any](rules []RuleSpec[T], skips []SkipSpec) (*Ruleset[T], error) {
	rs := &Ruleset[T]{
		rules: make([]Rule[T], 0, len(rules)),
		skips: make([]Matcher, 0, len(skips)),
	}
	for _, spec := range rules {
		m, err := CompileMatcher(spec.Pattern, spec.IsRegex)
		if err != nil {
			return nil, err
		}
		if err := rejectEmptyMatch(m, spec.Pattern); err != nil {
			return nil, err
		}
		create := spec.Create
		if create == nil {
			create = Skip[T]()
		}
		rs.rules = append(rs.rules, Rule[T]{Match: m, Create: create})
	}
	for _, spec := range skips {
		m, err := CompileMatcher(spec.Pattern, spec.IsRegex)
		if err != nil {
			return nil, err
		}
		if err := rejectEmptyMatch(m, spec.Pattern); err != nil {
			return nil, err
		}
		rs.skips = append(rs.skips, m)
	}
	return rs, nil
}

// NewRulesetFromCompiled assembles a Ruleset from already-compiled
// matchers, for callers plugging in their own Matcher strategy. The
// zero-length policy still applies.
func NewRulesetFromCompiled[T any](rules []Rule[T], skips []Matcher) (*Ruleset[T], error) {
	for _, r := range rules {
		if err := rejectEmptyMatch(r.Match, ""); err != nil {
			return nil, err
		}
	}
	for _, m := range skips {
		if err := rejectEmptyMatch(m, ""); err != nil {
			return nil, err
		}
	}
	return &Ruleset[T]{rules: rules, skips: skips}, nil
}

func rejectEmptyMatch(m Matcher, pattern string) error {
	if _, ok := m.Match(""); ok {
		return &InvalidPatternError{Pattern: pattern, Err: errMatchesEmpty}
	}
	return nil
}
