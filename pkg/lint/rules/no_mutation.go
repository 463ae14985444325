package rules

import (
	"fmt"

	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/pathmatch"
	"github.com/leapstack-labs/fplint/pkg/lint/internal/shape"
)

func init() {
	lint.Register(NoMutation)
}

// NoMutation forbids reassignment and the ++/-- operators.
var NoMutation = lint.RuleDef{
	ID:          "fp/no-mutation",
	Name:        "mutation",
	Group:       "fp",
	Description: "Forbid the use of mutating operators.",
	Severity:    core.SeverityError,
	Impact:      lint.ImpactHigh,
	ConfigKeys:  []string{"commonjs", "allowThis", "exceptions"},
	NodeKinds:   []jsast.Kind{jsast.KindAssignmentExpression, jsast.KindUpdateExpression},
	Create:      createNoMutation,

	Rationale: `Reassigning variables and properties makes the value of a name depend on
when it is read. Code that only creates new values is easier to reason about and
safe to share between callers.`,

	BadExample: `let count = 0;
count += 1;
user.name = "Ada";
i++;`,

	GoodExample: `const count = 0;
const next = count + 1;
const renamed = {...user, name: "Ada"};`,

	Fix: "Build a new value instead of modifying the existing one. Allow CommonJS exports with `commonjs`, receivers with `allowThis`, or specific paths with `exceptions`.",
}

const (
	msgReassignment = "Unallowed reassignment"
	msgCommonJSHint = ". You may want to activate the `commonjs` option for this rule"
)

type mutationOptions struct {
	CommonJS   bool                  `mapstructure:"commonjs"`
	AllowThis  bool                  `mapstructure:"allowThis"`
	Exceptions []pathmatch.Exception `mapstructure:"exceptions"`
}

func createNoMutation(ctx *lint.Context) lint.Visitor {
	opts := lint.FirstOptions[mutationOptions](ctx)

	exceptions := pathmatch.CompileAll(opts.Exceptions)
	if opts.AllowThis {
		exceptions = append(exceptions, pathmatch.ReceiverMatcher())
	}

	return lint.Visitor{
		jsast.KindAssignmentExpression: func(node *jsast.Node) {
			isExport := shape.IsCommonJSExport(node.Left)
			if isExport && opts.CommonJS {
				return
			}
			if pathmatch.IsExempted(exceptions, node.Left) {
				return
			}
			msg := msgReassignment
			if isExport {
				msg += msgCommonJSHint
			}
			ctx.Report(node, msg)
		},
		jsast.KindUpdateExpression: func(node *jsast.Node) {
			ctx.Report(node, fmt.Sprintf("Unallowed use of `%s` operator", node.Operator))
		},
	}
}
