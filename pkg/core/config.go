package core

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Preset names a static rule bundle applied before overrides, e.g. "recommended".
	Preset string `koanf:"preset"`

	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint, off)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options. A value is either a single option
	// record or a list of records, mirroring ESLint's rule option arrays.
	Rules map[string]any `koanf:"rules"`
}

// RuleOptions is the ordered sequence of option records passed to one rule.
type RuleOptions []map[string]any

// NormalizeRuleOptions converts a raw configuration value into option records.
// Non-map entries are dropped; a nil or unsupported value yields nil.
func NormalizeRuleOptions(raw any) RuleOptions {
	switch v := raw.(type) {
	case nil:
		return nil
	case RuleOptions:
		return v
	case map[string]any:
		return RuleOptions{v}
	case []map[string]any:
		return RuleOptions(v)
	case []any:
		opts := make(RuleOptions, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				opts = append(opts, m)
			}
		}
		return opts
	default:
		return nil
	}
}
