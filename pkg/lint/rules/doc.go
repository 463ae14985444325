// Package rules provides the functional-style lint rules.
//
// Rules follow eslint-plugin-fp naming and are grouped as:
//   - fp: the functional discipline (fp/no-mutation, fp/no-nil, fp/no-class...)
//   - core: companion rules referenced by presets (no-var)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/fplint/pkg/lint/rules"
package rules
