package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/shape"
)

func init() {
	lint.Register(NoClass)
}

// NoClass forbids class declarations and expressions.
var NoClass = lint.RuleDef{
	ID:          "fp/no-class",
	Name:        "class",
	Group:       "fp",
	Description: "Forbid the use of `class`.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactMedium,
	ConfigKeys:  []string{"allowExtendingReactComponent"},
	NodeKinds:   []jsast.Kind{jsast.KindClassDeclaration, jsast.KindClassExpression},
	Create:      createNoClass,

	Rationale: `Classes bundle state with behaviour and invite mutation through this.
Plain functions and data compose more easily.`,

	BadExample: `class Counter {
  increment() { this.count++; }
}`,

	GoodExample: `const increment = counter => ({...counter, count: counter.count + 1});`,

	Fix: "Replace the class with functions over plain objects. React class components can be allowed with `allowExtendingReactComponent`.",
}

const msgClass = "Unallowed use of `class`. Use functions instead"

func createNoClass(ctx *lint.Context) lint.Visitor {
	allowComponents := lint.AnyEnabled(ctx.Options(), "allowExtendingReactComponent")

	report := func(node *jsast.Node) {
		if allowComponents && shape.ExtendsComponent(node) {
			return
		}
		ctx.Report(node, msgClass)
	}

	return lint.Visitor{
		jsast.KindClassDeclaration: report,
		jsast.KindClassExpression:  report,
	}
}
