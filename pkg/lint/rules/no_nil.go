package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/shape"
)

func init() {
	lint.Register(NoNil)
}

// NoNil forbids null, undefined, and the constructs that evaluate to undefined.
var NoNil = lint.RuleDef{
	ID:          "fp/no-nil",
	Name:        "nil",
	Group:       "fp",
	Description: "Forbid the use of `null` and `undefined`.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactMedium,
	ConfigKeys:  []string{"allowConstructors", "allowSwitchDefault"},
	NodeKinds: []jsast.Kind{
		jsast.KindLiteral,
		jsast.KindIdentifier,
		jsast.KindVariableDeclarator,
		jsast.KindReturnStatement,
		jsast.KindFunctionDeclaration,
		jsast.KindFunctionExpression,
		jsast.KindArrowFunctionExpression,
	},
	Create: createNoNil,

	Rationale: `Absent values spread silently: a function without a return, an
uninitialized variable or an explicit null all flow into later code as undefined
and fail far from their origin. Every expression should produce a real value.`,

	BadExample: `let user;
function log(x) {
  console.log(x);
}
return null;`,

	GoodExample: `const user = load();
function log(x) {
  console.log(x);
  return x;
}
if (x === null) { /* comparisons are allowed */ }`,

	Fix: "Initialize every variable, return a value from every function, and use null or undefined only in equality checks. Class constructors can be allowed with `allowConstructors`, and single-switch bodies whose default case returns with `allowSwitchDefault`.",
}

const (
	msgNilValue        = "Unallowed use of `null` or `undefined`"
	msgUninitialized   = "Variable must be initialized, so that it doesn't evaluate to `undefined`"
	msgBareReturn      = "Return statement must return an explicit value, so that it doesn't evaluate to `undefined`"
	msgMissingReturn   = "Function must end with a return statement, so that it doesn't return `undefined`"
	optAllowCtors      = "allowConstructors"
	optAllowSwitchDflt = "allowSwitchDefault"
)

func createNoNil(ctx *lint.Context) lint.Visitor {
	allowCtors := lint.AnyEnabled(ctx.Options(), optAllowCtors)
	allowSwitchDefault := lint.AnyEnabled(ctx.Options(), optAllowSwitchDflt)

	outsideComparison := func(node *jsast.Node) {
		if !shape.IsComparisonOperand(node) {
			ctx.Report(node, msgNilValue)
		}
	}

	checkFunction := func(node *jsast.Node) {
		if !shape.HasBlockBody(node) || shape.EndsWithReturn(node.Body.Statements) {
			return
		}
		if allowCtors && shape.IsConstructorFunction(node) {
			return
		}
		if allowSwitchDefault && shape.IsSwitchDefaultReturn(node) {
			return
		}
		ctx.Report(node, msgMissingReturn)
	}

	return lint.Visitor{
		jsast.KindLiteral: func(node *jsast.Node) {
			if node.IsNullLiteral() {
				outsideComparison(node)
			}
		},
		jsast.KindIdentifier: func(node *jsast.Node) {
			if shape.IsUndefined(node) {
				outsideComparison(node)
			}
		},
		jsast.KindVariableDeclarator: func(node *jsast.Node) {
			if node.Init == nil {
				ctx.Report(node, msgUninitialized)
			}
		},
		jsast.KindReturnStatement: func(node *jsast.Node) {
			if node.Argument == nil {
				ctx.Report(node, msgBareReturn)
			}
		},
		jsast.KindFunctionDeclaration:     checkFunction,
		jsast.KindFunctionExpression:      checkFunction,
		jsast.KindArrowFunctionExpression: checkFunction,
	}
}
