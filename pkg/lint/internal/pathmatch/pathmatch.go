// Package pathmatch compiles object/property exception specs into predicates
// over member-access chains.
package pathmatch

import "github.com/leapstack-labs/fplint/pkg/jsast"

// Exception names an object and/or property exempted from a rule.
// Either field may be empty; an exception with both empty never matches.
type Exception struct {
	Object   string `mapstructure:"object" json:"object,omitempty" yaml:"object,omitempty"`
	Property string `mapstructure:"property" json:"property,omitempty" yaml:"property,omitempty"`
}

// Matcher tests a single MemberExpression.
type Matcher func(member *jsast.Node) bool

// Compile builds the matchers for one exception.
//
// A property yields two alternatives: dot access by identifier and bracket
// access by string literal. An object anchors every alternative to an
// identifier receiver of that name. Object alone matches any property.
func Compile(ex Exception) []Matcher {
	if ex.Object == "" && ex.Property == "" {
		return nil
	}

	var matchers []Matcher
	if ex.Property != "" {
		matchers = []Matcher{
			propertyIdentifier(ex.Property),
			propertyLiteral(ex.Property),
		}
	} else {
		matchers = []Matcher{func(*jsast.Node) bool { return true }}
	}

	if ex.Object == "" {
		return matchers
	}
	for i, m := range matchers {
		matchers[i] = anchored(ex.Object, m)
	}
	return matchers
}

// CompileAll compiles a list of exceptions into one flat matcher set.
func CompileAll(exceptions []Exception) []Matcher {
	var out []Matcher
	for _, ex := range exceptions {
		out = append(out, Compile(ex)...)
	}
	return out
}

// ReceiverMatcher matches member access on the implicit receiver (this.x).
func ReceiverMatcher() Matcher {
	return func(member *jsast.Node) bool {
		return member.Object.Is(jsast.KindThisExpression)
	}
}

// IsExempted reports whether node is a member access matched by any matcher,
// either directly or through a prefix of its chain: a.b.c is exempted when
// a.b.c or a.b matches.
func IsExempted(matchers []Matcher, node *jsast.Node) bool {
	for node.Is(jsast.KindMemberExpression) {
		for _, m := range matchers {
			if m(node) {
				return true
			}
		}
		node = node.Object
	}
	return false
}

func propertyIdentifier(name string) Matcher {
	return func(member *jsast.Node) bool {
		return member.Property.IsIdentifier(name)
	}
}

func propertyLiteral(value string) Matcher {
	return func(member *jsast.Node) bool {
		return member.Property.IsStringLiteral(value)
	}
}

func anchored(object string, m Matcher) Matcher {
	return func(member *jsast.Node) bool {
		return member.Object.IsIdentifier(object) && m(member)
	}
}
