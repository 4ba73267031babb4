// Package ruleconf loads seaflow rule tables from configuration files.
//
// The engine itself does not care how its ordered rule table was built;
// this package is one producer among many, for authors who want the table
// as data on disk rather than in code. A rule file is YAML:
//
//	skip:
//	  - pattern: '\s+'
//	    regex: true
//	rules:
//	  - kind: Number
//	    pattern: '\d+'
//	    regex: true
//	    parse: int
//	  - kind: Plus
//	    pattern: '+'
//
// Rule order in the file is the engine's priority order. A literal
// pattern (regex omitted or false) is matched byte-for-byte, so
// metacharacters need no escaping. The optional parse field (int, float,
// or text) attaches a fallible value parser to the rule; without it the
// token carries just its kind.
package ruleconf

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/caydenlund/seaflow"
)

// Token is the vocabulary config-defined tables lex into: a kind named by
// the rule file, plus an optional parsed value (int64, float64 or string).
type Token struct {
	Kind  string
	Value any
}

func (t Token) String() string {
	if t.Value == nil {
		return t.Kind
	}
	return fmt.Sprintf("%s(%v)", t.Kind, t.Value)
}

// Rule is one entry of the rules list.
type Rule struct {
	Kind    string `mapstructure:"kind"`
	Pattern string `mapstructure:"pattern"`
	Regex   bool   `mapstructure:"regex"`
	Parse   string `mapstructure:"parse"` // "", "text", "int" or "float"
	Skip    bool   `mapstructure:"skip"`  // consume without emitting
}

// Skip is one entry of the skip list.
type Skip struct {
	Pattern string `mapstructure:"pattern"`
	Regex   bool   `mapstructure:"regex"`
}

// File is a parsed rule file, still plain data: order as authored, nothing
// compiled yet.
type File struct {
	Skip  []Skip `mapstructure:"skip"`
	Rules []Rule `mapstructure:"rules"`
}

// Load reads rules.yaml from the given directory.
func Load(dir string) (*File, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("rules")
	v.SetConfigType("yaml")
	return read(v)
}

// LoadFile reads a rule file by full path.
func LoadFile(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return read(v)
}

func read(v *viper.Viper) (*File, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i, r := range f.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("rule %d: pattern must not be empty", i)
		}
		if r.Kind == "" && !r.Skip {
			return fmt.Errorf("rule %d (pattern %q): kind is required unless skip is set", i, r.Pattern)
		}
		switch r.Parse {
		case "", "text", "int", "float":
		default:
			return fmt.Errorf("rule %d (%s): unknown parse mode %q", i, r.Kind, r.Parse)
		}
	}
	for i, s := range f.Skip {
		if s.Pattern == "" {
			return fmt.Errorf("skip %d: pattern must not be empty", i)
		}
	}
	return nil
}

// Ruleset compiles the file into the engine's shared table, preserving the
// authored order of both lists.
func (f *File) Ruleset() (*seaflow.Ruleset[Token], error) {
	rules := make([]seaflow.RuleSpec[Token], 0, len(f.Rules))
	for _, r := range f.Rules {
		rules = append(rules, seaflow.RuleSpec[Token]{
			Pattern: r.Pattern,
			IsRegex: r.Regex,
			Create:  creatorFor(r),
		})
	}
	skips := make([]seaflow.SkipSpec, 0, len(f.Skip))
	for _, s := range f.Skip {
		skips = append(skips, seaflow.SkipSpec{Pattern: s.Pattern, IsRegex: s.Regex})
	}
	return seaflow.NewRuleset(rules, skips)
}

func creatorFor(r Rule) seaflow.Creator[Token] {
	if r.Skip {
		return seaflow.Skip[Token]()
	}
	kind := r.Kind
	switch r.Parse {
	case "int":
		return seaflow.Parser(func(text string) (Token, error) {
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: kind, Value: v}, nil
		})
	case "float":
		return seaflow.Parser(func(text string) (Token, error) {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: kind, Value: v}, nil
		})
	case "text":
		return seaflow.Parser(func(text string) (Token, error) {
			return Token{Kind: kind, Value: text}, nil
		})
	default:
		return seaflow.Unit(Token{Kind: kind})
	}
}
