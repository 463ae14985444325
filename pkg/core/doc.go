// Package core defines the shared language of the fplint system.
//
// This package contains:
//   - Severity levels and their parsing
//   - Rule metadata DTOs (RuleInfo)
//   - Configuration types shared by the CLI and the lint engine (LintConfig)
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
