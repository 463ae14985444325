package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

func init() {
	lint.Register(NoLet)
	lint.Register(NoVar)
}

// NoLet forbids mutable let bindings.
var NoLet = lint.RuleDef{
	ID:          "fp/no-let",
	Name:        "let",
	Group:       "fp",
	Description: "Forbid the use of `let`.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactMedium,
	NodeKinds:   []jsast.Kind{jsast.KindVariableDeclaration},
	Create:      declarationRule(jsast.VariantLet, "Unallowed use of `let`. Use `const` instead"),

	Rationale:   `A let binding announces that its value will change. Const bindings keep every name tied to one value.`,
	BadExample:  `let total = 0;`,
	GoodExample: `const total = items.reduce((sum, item) => sum + item.price, 0);`,
}

// NoVar forbids var declarations. It is the core companion of fp/no-let used by
// the recommended preset.
var NoVar = lint.RuleDef{
	ID:          "no-var",
	Name:        "var",
	Group:       "core",
	Description: "Require `let` or `const` instead of `var`.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactLow,
	NodeKinds:   []jsast.Kind{jsast.KindVariableDeclaration},
	Create:      declarationRule(jsast.VariantVar, "Unexpected var, use let or const instead"),
	DocURL:      "https://eslint.org/docs/latest/rules/no-var",

	Rationale:   `var is function-scoped and hoisted, so a name can be read before it is assigned.`,
	BadExample:  `var total = 0;`,
	GoodExample: `const total = 0;`,
}

// declarationRule reports variable declarations of the given variant.
func declarationRule(variant, message string) lint.CreateFunc {
	return func(ctx *lint.Context) lint.Visitor {
		return lint.Visitor{
			jsast.KindVariableDeclaration: func(node *jsast.Node) {
				if node.Variant == variant {
					ctx.Report(node, message)
				}
			},
		}
	}
}
