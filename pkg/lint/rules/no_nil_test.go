package rules_test

import "testing"

const (
	nilValue      = "Unallowed use of `null` or `undefined`"
	uninitialized = "Variable must be initialized, so that it doesn't evaluate to `undefined`"
	bareReturn    = "Return statement must return an explicit value, so that it doesn't evaluate to `undefined`"
	missingReturn = "Function must end with a return statement, so that it doesn't return `undefined`"
)

func TestNoNil(t *testing.T) {
	allowCtors := map[string]any{"allowConstructors": true}
	allowSwitch := map[string]any{"allowSwitchDefault": true}

	switchBody := `function f(x) {
  switch (x) {
    case 1: return 1;
    default: return 2;
  }
}`

	tests := []ruleCase{
		// Values
		{name: "null initializer", src: "const a = null;", want: []string{nilValue}},
		{name: "undefined assignment", src: "x = undefined;", want: []string{nilValue}},
		{name: "null argument", src: "f(null);", want: []string{nilValue}},
		{name: "null fallback", src: "const y = x || null;", want: []string{nilValue}},
		{name: "equality with null", src: "if (x == null) {}"},
		{name: "strict inequality with undefined", src: "if (x !== undefined) {}"},
		{name: "null on the left", src: "if (null === x) {}"},
		{name: "relational comparison", src: "if (x > null) {}", want: []string{nilValue}},
		{name: "typeof check", src: `if (typeof x === "undefined") {}`},
		{name: "other literals", src: `const a = 0, b = "", c = false;`},

		// Declarations
		{name: "uninitialized", src: "let x;", want: []string{uninitialized}},
		{name: "one of two uninitialized", src: "let x = 1, y;", want: []string{uninitialized}},
		{name: "let initialized with null", src: "let x = null;", want: []string{nilValue}},
		{name: "for of binding", src: "for (const x of xs) { f(x); }", want: []string{uninitialized}},

		// Returns
		{name: "returns null", src: "function f() { return null; }", want: []string{nilValue}},
		{name: "returns value", src: "function f() { return 1; }"},
		{name: "bare return", src: "function f() { return; }", want: []string{bareReturn}},
		{name: "missing return", src: "function f() { g(); }", want: []string{missingReturn}},
		{name: "empty function", src: "const f = function () {};", want: []string{missingReturn}},
		{name: "return only in branch", src: "function f(x) { if (x) { return 1; } }", want: []string{missingReturn}},
		{name: "expression arrow", src: "const f = () => 1;"},
		{name: "block arrow", src: "const f = () => { g(); };", want: []string{missingReturn}},
		{name: "block arrow with return", src: "const f = () => { return g(); };"},
		{name: "method", src: "const o = { m() { g(); } };", want: []string{missingReturn}},

		// Constructors
		{name: "constructor without option", src: "class A { constructor() { g(); } }", want: []string{missingReturn}},
		{name: "constructor with option", src: "class A { constructor() { g(); } }", options: []map[string]any{allowCtors}},
		{
			name:    "constructor option as string",
			src:     "class A { constructor() { g(); } }",
			options: []map[string]any{{"allowConstructors": "true"}},
		},
		{
			name:    "constructor option in any record",
			src:     "class A { constructor() { g(); } }",
			options: []map[string]any{{}, allowCtors},
		},
		{
			name:    "constructor option does not cover methods",
			src:     "class A { run() { g(); } }",
			options: []map[string]any{allowCtors},
			want:    []string{missingReturn},
		},

		// Switch default
		{name: "switch default without option", src: switchBody, want: []string{missingReturn}},
		{name: "switch default with option", src: switchBody, options: []map[string]any{allowSwitch}},
		{
			name: "switch default in nested block",
			src: `function f(x) {
  switch (x) {
    case 1: return 1;
    default: { g(); return 2; }
  }
}`,
			options: []map[string]any{allowSwitch},
		},
		{
			name: "default case not last",
			src: `function f(x) {
  switch (x) {
    default: return 2;
    case 1: return 1;
  }
}`,
			options: []map[string]any{allowSwitch},
			want:    []string{missingReturn},
		},
		{
			name: "switch is not the only statement",
			src: `function f(x) {
  g();
  switch (x) {
    default: return 2;
  }
}`,
			options: []map[string]any{allowSwitch},
			want:    []string{missingReturn},
		},
		{
			name: "default case without value",
			src: `function f(x) {
  switch (x) {
    default: g();
  }
}`,
			options: []map[string]any{allowSwitch},
			want:    []string{missingReturn},
		},
	}

	runCases(t, "fp/no-nil", tests)
}
