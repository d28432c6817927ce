// Package assembly defines the merge rules applied when two archives being
// combined into one launcher carry a file at the same path. Rules apply in
// list order; the built-in defaults may be prepended to user-supplied rules.
package assembly

import (
	"strings"

	"github.com/jarcraft/jarcraft/pkg/validate"
)

// Rule resolves a file-path conflict during archive assembly. It is a closed
// set: Append, AppendPattern, Exclude, ExcludePattern.
type Rule interface {
	rule()
	String() string
}

// Append concatenates conflicting files at an exact path.
type Append struct{ Path string }

// AppendPattern concatenates conflicting files at paths matching a pattern.
type AppendPattern struct{ Pattern string }

// Exclude drops files at an exact path.
type Exclude struct{ Path string }

// ExcludePattern drops files at paths matching a pattern.
type ExcludePattern struct{ Pattern string }

func (Append) rule()         {}
func (AppendPattern) rule()  {}
func (Exclude) rule()        {}
func (ExcludePattern) rule() {}

func (r Append) String() string         { return "append:" + r.Path }
func (r AppendPattern) String() string  { return "append-pattern:" + r.Pattern }
func (r Exclude) String() string        { return "exclude:" + r.Path }
func (r ExcludePattern) String() string { return "exclude-pattern:" + r.Pattern }

// MarshalYAML renders rules in their source syntax.
func (r Append) MarshalYAML() (any, error)         { return r.String(), nil }
func (r AppendPattern) MarshalYAML() (any, error)  { return r.String(), nil }
func (r Exclude) MarshalYAML() (any, error)        { return r.String(), nil }
func (r ExcludePattern) MarshalYAML() (any, error) { return r.String(), nil }

// DefaultRules is the built-in sequence applied ahead of user rules: service
// loader registries and reference configs concatenate, signature files drop.
var DefaultRules = []Rule{
	AppendPattern{Pattern: `META-INF/services/.*`},
	Append{Path: "reference.conf"},
	ExcludePattern{Pattern: `META-INF/.*\.[sS][fF]`},
	ExcludePattern{Pattern: `META-INF/.*\.[dD][sS][aA]`},
	ExcludePattern{Pattern: `META-INF/.*\.[rR][sS][aA]`},
}

// ParseRule parses a "name:value" rule string. The name must be one of
// append, append-pattern, exclude, exclude-pattern.
func ParseRule(input string) validate.Result[Rule] {
	name, value, found := strings.Cut(input, ":")
	if !found {
		return validate.Fail[Rule](validate.Errorf(validate.MalformedRule,
			"malformed assembly rule %q: expected name:value", input))
	}
	switch name {
	case "append":
		return validate.Ok[Rule](Append{Path: value})
	case "append-pattern":
		return validate.Ok[Rule](AppendPattern{Pattern: value})
	case "exclude":
		return validate.Ok[Rule](Exclude{Path: value})
	case "exclude-pattern":
		return validate.Ok[Rule](ExcludePattern{Pattern: value})
	default:
		return validate.Fail[Rule](validate.Errorf(validate.MalformedRule,
			"unknown assembly rule name %q in %q", name, input))
	}
}

// WithDefaults prepends the built-in default sequence to user rules,
// preserving the user rules' relative order.
func WithDefaults(rules []Rule) []Rule {
	out := make([]Rule, 0, len(DefaultRules)+len(rules))
	out = append(out, DefaultRules...)
	out = append(out, rules...)
	return out
}
