package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/shape"
)

func init() {
	lint.Register(NoMutatingAssign)
}

// NoMutatingAssign forbids Object.assign calls that write into an existing object.
var NoMutatingAssign = lint.RuleDef{
	ID:          "fp/no-mutating-assign",
	Name:        "mutating-assign",
	Group:       "fp",
	Description: "Forbid the use of `Object.assign()` with a variable as first argument.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactHigh,
	NodeKinds:   []jsast.Kind{jsast.KindCallExpression},
	Create:      createNoMutatingAssign,

	Rationale: `Object.assign writes into its first argument. Unless that argument is a
fresh object literal, the call mutates a value someone else may hold.`,

	BadExample:  `Object.assign(config, overrides);`,
	GoodExample: `const merged = Object.assign({}, config, overrides);`,
	Fix:         "Pass an object literal as the first argument, or use object spread.",
}

func createNoMutatingAssign(ctx *lint.Context) lint.Visitor {
	return lint.Visitor{
		jsast.KindCallExpression: func(node *jsast.Node) {
			if !shape.IsObjectAssignCall(node) {
				return
			}
			if len(node.Arguments) > 0 && node.Arguments[0].Is(jsast.KindObjectExpression) {
				return
			}
			ctx.Report(node, "Unallowed use of mutating `Object.assign`")
		},
	}
}
