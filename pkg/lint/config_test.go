package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

func TestConfig_Defaults(t *testing.T) {
	config := lint.NewConfig()
	assert.False(t, config.IsDisabled("fp/no-this"))
	assert.Equal(t, core.SeverityInfo, config.GetSeverity("fp/no-this", core.SeverityInfo))
	assert.Nil(t, config.GetRuleOptions("fp/no-this"))

	var nilConfig *lint.Config
	assert.False(t, nilConfig.IsDisabled("fp/no-this"))
	assert.Equal(t, core.SeverityHint, nilConfig.GetSeverity("fp/no-this", core.SeverityHint))
	assert.Nil(t, nilConfig.GetRuleOptions("fp/no-this"))
}

func TestConfig_ApplyPreset(t *testing.T) {
	config := lint.NewConfig()
	require.NoError(t, config.ApplyPreset(lint.PresetRecommended))

	assert.False(t, config.IsDisabled("fp/no-mutation"))
	assert.False(t, config.IsDisabled("no-var"))
	assert.True(t, config.IsDisabled("fp/no-nil"), "rules outside the preset are off")
	assert.Equal(t, core.SeverityError, config.GetSeverity("fp/no-let", core.SeverityWarning))

	config.Enable("fp/no-nil")
	assert.False(t, config.IsDisabled("fp/no-nil"))

	assert.Error(t, lint.NewConfig().ApplyPreset("strict"))
}

func TestConfigFromLintConfig(t *testing.T) {
	lc := core.LintConfig{
		Preset:   lint.PresetRecommended,
		Disabled: []string{"fp/no-this"},
		Severity: map[string]string{
			"fp/no-let": "warn",
			"no-var":    "off",
			"fp/no-nil": "info",
		},
		Rules: map[string]any{
			"fp/no-mutation": map[string]any{"commonjs": true},
			"fp/no-nil":      []any{map[string]any{"allowConstructors": true}, "ignored"},
		},
	}

	config, err := lint.ConfigFromLintConfig(lc)
	require.NoError(t, err)

	assert.True(t, config.IsDisabled("fp/no-this"))
	assert.True(t, config.IsDisabled("no-var"))
	assert.False(t, config.IsDisabled("fp/no-nil"), "a severity level enables a rule left out by the preset")
	assert.Equal(t, core.SeverityInfo, config.GetSeverity("fp/no-nil", core.SeverityError))
	assert.Equal(t, core.SeverityWarning, config.GetSeverity("fp/no-let", core.SeverityError))

	require.Len(t, config.GetRuleOptions("fp/no-mutation"), 1)
	assert.Equal(t, true, config.GetRuleOptions("fp/no-mutation")[0]["commonjs"])
	assert.Len(t, config.GetRuleOptions("fp/no-nil"), 1)
}

func TestConfigFromLintConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		lc   core.LintConfig
	}{
		{"unknown preset", core.LintConfig{Preset: "strict"}},
		{"bad severity", core.LintConfig{Severity: map[string]string{"fp/no-let": "loud"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lint.ConfigFromLintConfig(tt.lc)
			assert.Error(t, err)
		})
	}
}

func TestPreset(t *testing.T) {
	levels, ok := lint.Preset(lint.PresetRecommended)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"no-var":                "error",
		"fp/no-let":             "error",
		"fp/no-mutating-assign": "error",
		"fp/no-mutation":        "error",
		"fp/no-this":            "error",
	}, levels)

	// Callers get a copy; the static table is unaffected.
	levels["fp/no-this"] = "off"
	again, _ := lint.Preset(lint.PresetRecommended)
	assert.Equal(t, "error", again["fp/no-this"])

	all, ok := lint.Preset(lint.PresetAll)
	require.True(t, ok)
	assert.Len(t, all, 8)

	_, ok = lint.Preset("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"all", "recommended"}, lint.PresetNames())
}
