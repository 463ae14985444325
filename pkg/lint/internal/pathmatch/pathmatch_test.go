package pathmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/pathmatch"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		ex   pathmatch.Exception
		want int
	}{
		{"empty", pathmatch.Exception{}, 0},
		{"property only", pathmatch.Exception{Property: "bar"}, 2},
		{"object and property", pathmatch.Exception{Object: "foo", Property: "bar"}, 2},
		{"object only", pathmatch.Exception{Object: "foo"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, pathmatch.Compile(tt.ex), tt.want)
		})
	}
}

func TestIsExempted(t *testing.T) {
	fooBar := pathmatch.Compile(pathmatch.Exception{Object: "foo", Property: "bar"})

	tests := []struct {
		name     string
		matchers []pathmatch.Matcher
		node     *jsast.Node
		want     bool
	}{
		{
			name:     "exact object and property",
			matchers: fooBar,
			node:     jsast.Path("foo", "bar"),
			want:     true,
		},
		{
			name:     "other object",
			matchers: fooBar,
			node:     jsast.Path("baz", "bar"),
			want:     false,
		},
		{
			name:     "nested chain below exempted prefix",
			matchers: fooBar,
			node:     jsast.Path("foo", "bar", "baz"),
			want:     true,
		},
		{
			name:     "bracket access with string literal",
			matchers: fooBar,
			node:     jsast.Index(jsast.Ident("foo"), jsast.Str("bar")),
			want:     true,
		},
		{
			name:     "bracket access with other literal",
			matchers: fooBar,
			node:     jsast.Index(jsast.Ident("foo"), jsast.Str("qux")),
			want:     false,
		},
		{
			name:     "bracket access with numeric literal",
			matchers: pathmatch.Compile(pathmatch.Exception{Object: "foo", Property: "1"}),
			node:     jsast.Index(jsast.Ident("foo"), jsast.Num("1")),
			want:     false,
		},
		{
			name:     "property deeper than object anchor",
			matchers: fooBar,
			node:     jsast.Path("x", "foo", "bar"),
			want:     false,
		},
		{
			name:     "not a member expression",
			matchers: fooBar,
			node:     jsast.Ident("foo"),
			want:     false,
		},
		{
			name:     "nil node",
			matchers: fooBar,
			node:     nil,
			want:     false,
		},
		{
			name:     "no matchers",
			matchers: nil,
			node:     jsast.Path("foo", "bar"),
			want:     false,
		},
		{
			name:     "property only matches any receiver",
			matchers: pathmatch.Compile(pathmatch.Exception{Property: "current"}),
			node:     jsast.Path("ref", "current"),
			want:     true,
		},
		{
			name:     "object only matches any property",
			matchers: pathmatch.Compile(pathmatch.Exception{Object: "state"}),
			node:     jsast.Path("state", "anything", "deep"),
			want:     true,
		},
		{
			name:     "empty exception never matches",
			matchers: pathmatch.Compile(pathmatch.Exception{}),
			node:     jsast.Path("foo", "bar"),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathmatch.IsExempted(tt.matchers, tt.node))
		})
	}
}

func TestCompileAll(t *testing.T) {
	matchers := pathmatch.CompileAll([]pathmatch.Exception{
		{Object: "module", Property: "exports"},
		{Property: "prototype"},
		{},
	})
	assert.Len(t, matchers, 4)
	assert.True(t, pathmatch.IsExempted(matchers, jsast.Path("Foo", "prototype", "bar")))
	assert.False(t, pathmatch.IsExempted(matchers, jsast.Path("module", "id")))
}

func TestReceiverMatcher(t *testing.T) {
	matchers := []pathmatch.Matcher{pathmatch.ReceiverMatcher()}

	assert.True(t, pathmatch.IsExempted(matchers, jsast.Member(jsast.This(), "x")))
	assert.True(t, pathmatch.IsExempted(matchers, jsast.Member(jsast.Member(jsast.This(), "x"), "y")))
	assert.False(t, pathmatch.IsExempted(matchers, jsast.Path("self", "x")))
}
