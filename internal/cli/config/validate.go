package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

// Validate checks the loaded configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	if len(c.Include) == 0 {
		errs = append(errs, errors.New("include must list at least one pattern"))
	}
	for _, pattern := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}

	if c.Lint != nil {
		errs = append(errs, validateLint(c.Lint)...)
	}
	return errors.Join(errs...)
}

func validateLint(lc *LintConfig) []error {
	var errs []error
	if lc.Preset != "" {
		if _, ok := lint.Preset(lc.Preset); !ok {
			errs = append(errs, fmt.Errorf("unknown preset %q (available: %v)", lc.Preset, lint.PresetNames()))
		}
	}
	for id, level := range lc.Severity {
		if core.IsOff(level) {
			continue
		}
		if _, ok := core.ParseSeverity(level); !ok {
			errs = append(errs, fmt.Errorf("lint.severity.%s: unknown severity %q", id, level))
		}
	}
	for id, raw := range lc.Rules {
		if raw != nil && core.NormalizeRuleOptions(raw) == nil {
			errs = append(errs, fmt.Errorf("lint.rules.%s: options must be a map or a list of maps", id))
		}
	}
	return errs
}
