package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/shape"
)

func init() {
	lint.Register(NoUnusedExpression)
}

// NoUnusedExpression requires every expression statement to have an effect.
var NoUnusedExpression = lint.RuleDef{
	ID:          "fp/no-unused-expression",
	Name:        "unused-expression",
	Group:       "fp",
	Description: "Enforce that an expression gets used.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactMedium,
	ConfigKeys:  []string{"allowUseStrict", "allowConsole"},
	NodeKinds:   []jsast.Kind{jsast.KindExpressionStatement, jsast.KindSequenceExpression},
	Create:      createNoUnusedExpression,

	Rationale: `A pure function call whose result is dropped does nothing; if the call
does something, it is a side effect hidden behind an innocent-looking statement.
Either way the statement deserves attention.`,

	BadExample: `save(user);
a, b;`,

	GoodExample: `const saved = save(user);
export default saved;`,

	Fix: "Use the value of the expression. `allowConsole` permits console calls and `allowUseStrict` permits the \"use strict\" directive.",
}

const msgUnusedExpression = "Unused expression"

type unusedExpressionOptions struct {
	AllowUseStrict bool `mapstructure:"allowUseStrict"`
	AllowConsole   bool `mapstructure:"allowConsole"`
}

func createNoUnusedExpression(ctx *lint.Context) lint.Visitor {
	opts := lint.FirstOptions[unusedExpressionOptions](ctx)

	return lint.Visitor{
		jsast.KindExpressionStatement: func(node *jsast.Node) {
			expr := node.Expr
			switch {
			case opts.AllowConsole && shape.IsConsoleCall(expr):
			case shape.HasSideEffect(expr):
			case opts.AllowUseStrict && shape.IsUseStrict(expr):
			case shape.IsSuperCall(expr):
			default:
				ctx.Report(node, msgUnusedExpression)
			}
		},
		jsast.KindSequenceExpression: func(node *jsast.Node) {
			// Statement-level sequences are reported through the statement.
			if !node.Parent.Is(jsast.KindExpressionStatement) {
				ctx.Report(node, msgUnusedExpression)
			}
		},
	}
}
