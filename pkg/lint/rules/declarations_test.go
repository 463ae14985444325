package rules_test

import "testing"

const classMessage = "Unallowed use of `class`. Use functions instead"

func TestNoClass(t *testing.T) {
	allow := map[string]any{"allowExtendingReactComponent": true}

	tests := []ruleCase{
		{name: "declaration", src: "class Foo {}", want: []string{classMessage}},
		{name: "expression", src: "const A = class {};", want: []string{classMessage}},
		{name: "component without option", src: "class Foo extends Component {}", want: []string{classMessage}},
		{name: "component with option", src: "class Foo extends Component {}", options: []map[string]any{allow}},
		{name: "lowercase component", src: "class Foo extends component {}", options: []map[string]any{allow}},
		{name: "namespaced component", src: "class Foo extends React.Component {}", options: []map[string]any{allow}},
		{name: "component expression", src: "const A = class extends Preact.Component {};", options: []map[string]any{allow}},
		{name: "option in later record", src: "class Foo extends Component {}", options: []map[string]any{{}, allow}},
		{name: "other base", src: "class Foo extends Bar {}", options: []map[string]any{allow}, want: []string{classMessage}},
		{name: "no base", src: "class Foo {}", options: []map[string]any{allow}, want: []string{classMessage}},
		{
			name:    "computed component access",
			src:     `class Foo extends React["Component"] {}`,
			options: []map[string]any{allow},
			want:    []string{classMessage},
		},
		{name: "functions", src: "function foo() { return 1; }"},
	}

	runCases(t, "fp/no-class", tests)
}

func TestNoThis(t *testing.T) {
	const msg = "Unallowed use of `this`"

	tests := []ruleCase{
		{name: "member access", src: "this.x;", want: []string{msg}},
		{name: "returned", src: "function f() { return this; }", want: []string{msg}},
		{name: "twice", src: "const a = this.x + this.y;", want: []string{msg, msg}},
		{name: "inside class", src: "class A { m() { return this.v; } }", want: []string{msg}},
		{name: "plain object", src: "const o = { x: 1 };"},
	}

	runCases(t, "fp/no-this", tests)
}

func TestNoLet(t *testing.T) {
	const msg = "Unallowed use of `let`. Use `const` instead"

	tests := []ruleCase{
		{name: "let", src: "let a = 1;", want: []string{msg}},
		{name: "multiple declarators", src: "let a = 1, b = 2;", want: []string{msg}},
		{name: "loop initializer", src: "for (let i = 0; i < 1; i += 1) {}", want: []string{msg}},
		{name: "for of binding", src: "for (let x of xs) { f(x); }", want: []string{msg}},
		{name: "for in binding", src: "for (let k in o) { f(k); }", want: []string{msg}},
		{name: "for of const", src: "for (const x of xs) { f(x); }"},
		{name: "const", src: "const a = 1;"},
		{name: "var", src: "var a = 1;"},
	}

	runCases(t, "fp/no-let", tests)
}

func TestNoVar(t *testing.T) {
	const msg = "Unexpected var, use let or const instead"

	tests := []ruleCase{
		{name: "var", src: "var a = 1;", want: []string{msg}},
		{name: "nested var", src: "function f() { var a = 1; return a; }", want: []string{msg}},
		{name: "for of binding", src: "for (var x of xs) { f(x); }", want: []string{msg}},
		{name: "for in binding", src: "for (var k in o) { f(k); }", want: []string{msg}},
		{name: "for of let", src: "for (let x of xs) { f(x); }"},
		{name: "let", src: "let a;"},
		{name: "const", src: "const a = 1;"},
	}

	runCases(t, "no-var", tests)
}
