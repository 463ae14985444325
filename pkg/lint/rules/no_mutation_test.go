package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	reassignment = "Unallowed reassignment"
	exportHint   = "Unallowed reassignment. You may want to activate the `commonjs` option for this rule"
)

func TestNoMutation(t *testing.T) {
	commonjs := map[string]any{"commonjs": true}
	fooBar := map[string]any{
		"exceptions": []any{map[string]any{"object": "foo", "property": "bar"}},
	}

	tests := []ruleCase{
		{name: "declaration", src: "const a = 1;", want: nil},
		{name: "plain assignment", src: "a = 1;", want: []string{reassignment}},
		{name: "compound assignment", src: "a += 1;", want: []string{reassignment}},
		{name: "member assignment", src: "a.b = 1;", want: []string{reassignment}},
		{name: "postfix increment", src: "x++;", want: []string{"Unallowed use of `++` operator"}},
		{name: "prefix decrement", src: "--x;", want: []string{"Unallowed use of `--` operator"}},
		{
			name:    "update ignores commonjs",
			src:     "exports.count++;",
			options: []map[string]any{commonjs},
			want:    []string{"Unallowed use of `++` operator"},
		},
		{name: "loop counter", src: "for (const i = 0; i < 1; i++) {}", want: []string{"Unallowed use of `++` operator"}},
		{name: "exports without option", src: "exports.foo = 1;", want: []string{exportHint}},
		{name: "module.exports without option", src: "module.exports = {};", want: []string{exportHint}},
		{name: "nested module.exports without option", src: "module.exports.a.b = 1;", want: []string{exportHint}},
		{name: "exports with option", src: "exports.foo = 1;", options: []map[string]any{commonjs}},
		{name: "bare exports with option", src: "exports = {};", options: []map[string]any{commonjs}},
		{name: "module.exports with option", src: "module.exports = {};", options: []map[string]any{commonjs}},
		{name: "nested module.exports with option", src: "module.exports.a.b = 1;", options: []map[string]any{commonjs}},
		{
			name:    "commonjs does not cover other objects",
			src:     "module.foo = 1;",
			options: []map[string]any{commonjs},
			want:    []string{reassignment},
		},
		{name: "exception matches", src: "foo.bar = 1;", options: []map[string]any{fooBar}},
		{name: "exception other object", src: "baz.bar = 1;", options: []map[string]any{fooBar}, want: []string{reassignment}},
		{name: "exception prefix", src: "foo.bar.baz = 1;", options: []map[string]any{fooBar}},
		{name: "exception string key", src: `foo["bar"] = 1;`, options: []map[string]any{fooBar}},
		{
			name:    "exception string key does not match numeric index",
			src:     "foo[1] = 2;",
			options: []map[string]any{{"exceptions": []any{map[string]any{"object": "foo", "property": "1"}}}},
			want:    []string{reassignment},
		},
		{name: "exception other property", src: "foo.qux = 1;", options: []map[string]any{fooBar}, want: []string{reassignment}},
		{name: "exception never covers identifiers", src: "foo = 1;", options: []map[string]any{fooBar}, want: []string{reassignment}},
		{
			name: "property only exception",
			src:  "a.bar = 1; b.bar = 2;",
			options: []map[string]any{{
				"exceptions": []any{map[string]any{"property": "bar"}},
			}},
		},
		{
			name: "object only exception",
			src:  "state.x = 1; other.x = 2;",
			options: []map[string]any{{
				"exceptions": []any{map[string]any{"object": "state"}},
			}},
			want: []string{reassignment},
		},
		{
			name: "empty exception matches nothing",
			src:  "a.b = 1;",
			options: []map[string]any{{
				"exceptions": []any{map[string]any{}},
			}},
			want: []string{reassignment},
		},
		{name: "this without option", src: "this.x = 1;", want: []string{reassignment}},
		{name: "this with allowThis", src: "this.x = 1; this.a.b = 2;", options: []map[string]any{{"allowThis": true}}},
		{
			name:    "allowThis does not cover other receivers",
			src:     "self.x = 1;",
			options: []map[string]any{{"allowThis": true}},
			want:    []string{reassignment},
		},
		{
			name:    "only the first options record is read",
			src:     "exports.foo = 1;",
			options: []map[string]any{{}, commonjs},
			want:    []string{exportHint},
		},
	}

	runCases(t, "fp/no-mutation", tests)
}

func TestNoMutationPositions(t *testing.T) {
	diags := runRule(t, "const a = 1;\n  a = 2;", "fp/no-mutation")
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Equal(t, 3, diags[0].Pos.Column)
	assert.Equal(t, "https://github.com/jfmengels/eslint-plugin-fp/tree/master/docs/rules/no-mutation.md", diags[0].DocumentationURL)
}

func TestNoMutatingAssign(t *testing.T) {
	const msg = "Unallowed use of mutating `Object.assign`"

	tests := []ruleCase{
		{name: "variable target", src: "Object.assign(a, b);", want: []string{msg}},
		{name: "object literal target", src: "Object.assign({}, a, b);"},
		{name: "object literal with fields", src: "const c = Object.assign({x: 1}, a);"},
		{name: "no arguments", src: "Object.assign();", want: []string{msg}},
		{name: "computed string access", src: `Object["assign"](a, b);`, want: []string{msg}},
		{name: "other receiver", src: "foo.assign(a, b);"},
		{name: "other method", src: "Object.keys(a);"},
		{name: "call result target", src: "Object.assign(make(), a);", want: []string{msg}},
	}

	runCases(t, "fp/no-mutating-assign", tests)
}
