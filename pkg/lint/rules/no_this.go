package rules

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

func init() {
	lint.Register(NoThis)
}

// NoThis forbids the implicit receiver.
var NoThis = lint.RuleDef{
	ID:          "fp/no-this",
	Name:        "this",
	Group:       "fp",
	Description: "Forbid the use of `this`.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactMedium,
	NodeKinds:   []jsast.Kind{jsast.KindThisExpression},
	Create:      createNoThis,

	Rationale: `The value of this depends on how a function is called rather than where
it is defined. Passing data explicitly as arguments removes that ambiguity.`,

	BadExample:  `function fullName() { return this.first + " " + this.last; }`,
	GoodExample: `const fullName = person => person.first + " " + person.last;`,
}

func createNoThis(ctx *lint.Context) lint.Visitor {
	return lint.Visitor{
		jsast.KindThisExpression: func(node *jsast.Node) {
			ctx.Report(node, "Unallowed use of `this`")
		},
	}
}
