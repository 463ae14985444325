package lint

import (
	"fmt"

	"github.com/leapstack-labs/fplint/pkg/core"
)

// Config controls which rules are enabled, their severity, and their options.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// RuleOptions holds the option records passed to each rule
	RuleOptions map[string]core.RuleOptions

	// EnabledRules restricts analysis to these IDs when non-nil (set by presets)
	EnabledRules map[string]bool
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		RuleOptions:       make(map[string]core.RuleOptions),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if c.DisabledRules[ruleID] {
		return true
	}
	return c.EnabledRules != nil && !c.EnabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the option records configured for a rule.
func (c *Config) GetRuleOptions(ruleID string) core.RuleOptions {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Enable re-enables a rule, including one left out by a preset.
func (c *Config) Enable(ruleID string) *Config {
	delete(c.DisabledRules, ruleID)
	if c.EnabledRules != nil {
		c.EnabledRules[ruleID] = true
	}
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets the option records for a rule.
func (c *Config) SetRuleOptions(ruleID string, options ...map[string]any) *Config {
	c.RuleOptions[ruleID] = core.RuleOptions(options)
	return c
}

// ApplyPreset restricts the config to the preset's rules at the preset's levels.
func (c *Config) ApplyPreset(name string) error {
	levels, ok := Preset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}

	c.EnabledRules = make(map[string]bool, len(levels))
	for id, level := range levels {
		if err := c.setLevel(id, level); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return nil
}

// setLevel applies an ESLint-style level string ("error", "warn", "off"...).
func (c *Config) setLevel(ruleID, level string) error {
	if core.IsOff(level) {
		c.Disable(ruleID)
		return nil
	}
	sev, ok := core.ParseSeverity(level)
	if !ok {
		return fmt.Errorf("invalid severity %q for rule %s", level, ruleID)
	}
	c.Enable(ruleID)
	c.SetSeverity(ruleID, sev)
	return nil
}

// ConfigFromLintConfig builds a Config from loaded settings. The preset is
// applied first, then disabled rules, severity overrides and rule options.
func ConfigFromLintConfig(lc core.LintConfig) (*Config, error) {
	cfg := NewConfig()
	if lc.Preset != "" {
		if err := cfg.ApplyPreset(lc.Preset); err != nil {
			return nil, err
		}
	}

	for id, level := range lc.Severity {
		if err := cfg.setLevel(id, level); err != nil {
			return nil, err
		}
	}
	for _, id := range lc.Disabled {
		cfg.Disable(id)
	}
	for id, raw := range lc.Rules {
		cfg.RuleOptions[id] = core.NormalizeRuleOptions(raw)
	}
	return cfg, nil
}
