package rules

// All rules are registered via init() functions in their respective files.
// This file exists to document what importing the package registers.
//
// fp rules:
//   - fp/no-class: Forbid class declarations and expressions
//   - fp/no-let: Forbid let bindings
//   - fp/no-mutating-assign: Forbid Object.assign into an existing object
//   - fp/no-mutation: Forbid reassignment and ++/--
//   - fp/no-nil: Forbid null, undefined and implicit undefined
//   - fp/no-this: Forbid this
//   - fp/no-unused-expression: Forbid expression statements without effect
//
// core rules:
//   - no-var: Forbid var declarations
