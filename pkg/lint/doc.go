// Package lint provides the rule framework for linting JavaScript syntax trees.
//
// # Architecture
//
// The lint package is the contract layer between hosts and rules:
//
//  1. Root package (pkg/lint/): rule contracts, the global registry, configuration,
//     presets, and the Analyzer that dispatches nodes to rule visitors
//  2. Rules (pkg/lint/rules/): the rule implementations, registered from init()
//  3. Internal helpers (pkg/lint/internal/): the exception path matcher and the
//     structural node predicates shared by rules
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/fplint/pkg/lint/rules"
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetRuleByID("fp/no-mutation")
//	fpRules := lint.GetRulesByGroup("fp")
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and options:
//
//	config := lint.NewConfig()
//	if err := config.ApplyPreset(lint.PresetRecommended); err != nil {
//		return err
//	}
//	config.Disable("fp/no-this")
//	config.SetSeverity("fp/no-let", core.SeverityWarning)
//	config.SetRuleOptions("fp/no-mutation", map[string]any{"commonjs": true})
//
// # Creating Custom Rules
//
// A rule is a RuleDef whose Create function returns a Visitor keyed by node kind:
//
//	var NoEval = lint.RuleDef{
//		ID:        "custom/no-eval",
//		Name:      "eval",
//		Group:     "custom",
//		Severity:  core.SeverityError,
//		NodeKinds: []jsast.Kind{jsast.KindCallExpression},
//		Create: func(ctx *lint.Context) lint.Visitor {
//			return lint.Visitor{
//				jsast.KindCallExpression: func(n *jsast.Node) {
//					if n.Callee.IsIdentifier("eval") {
//						ctx.Report(n, "Unallowed use of `eval`")
//					}
//				},
//			}
//		},
//	}
//
//	func init() {
//		lint.Register(NoEval)
//	}
package lint
