package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fplint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultInclude, cfg.Include)
	assert.Equal(t, DefaultExclude, cfg.Exclude)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultPreset, cfg.Lint.Preset)
	assert.Positive(t, cfg.EffectiveJobs())
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, `include:
  - "src/**/*.js"
jobs: 3
output: json
lint:
  preset: all
  disabled:
    - fp/no-this
  severity:
    fp/no-let: warn
  rules:
    fp/no-mutation:
      commonjs: true
      exceptions:
        - object: state
    fp/no-nil:
      - {}
      - allowConstructors: true
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.js"}, cfg.Include)
	assert.Equal(t, 3, cfg.EffectiveJobs())
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, path, GetConfigFileUsed())

	lc := cfg.LintSettings()
	assert.Equal(t, "all", lc.Preset)
	assert.Equal(t, []string{"fp/no-this"}, lc.Disabled)
	assert.Equal(t, "warn", lc.Severity["fp/no-let"])

	mutation, ok := lc.Rules["fp/no-mutation"].(map[string]any)
	require.True(t, ok, "map options stay a map, got %T", lc.Rules["fp/no-mutation"])
	assert.Equal(t, true, mutation["commonjs"])
	assert.Len(t, mutation["exceptions"], 1)

	nilOpts, isList := lc.Rules["fp/no-nil"].([]any)
	require.True(t, isList, "list options stay a list, got %T", lc.Rules["fp/no-nil"])
	assert.Len(t, nilOpts, 2)
}

func TestLoadConfig_SearchesUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	writeConfig(t, root, "output: markdown\n")
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)

	// Compare resolved paths; TempDir may sit behind a symlink.
	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "output: markdown\nlint:\n  preset: all\n")
	t.Setenv("FPLINT_OUTPUT", "text")
	t.Setenv("FPLINT_PRESET", "all")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")
	flags.String("preset", "", "preset")
	require.NoError(t, flags.Set("output", "json"))
	require.NoError(t, flags.Set("preset", "recommended"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat, "flag value should override config file and env var")
	assert.Equal(t, "recommended", cfg.Lint.Preset)
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "output: markdown\njobs: 2\n")
	t.Setenv("FPLINT_OUTPUT", "text")
	t.Setenv("FPLINT_JOBS", "5")
	t.Setenv("FPLINT_PRESET", "all")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat, "env var should override config file")
	assert.Equal(t, 5, cfg.Jobs)
	assert.Equal(t, "all", cfg.Lint.Preset)
}

func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, t.TempDir(), "output: markdown\n")
	t.Setenv("FPLINT_OUTPUT", "text")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "output format")

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat, "env var should be used when flag is not set")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:      "unknown output",
			mutate:    func(c *Config) { c.OutputFormat = "xml" },
			errSubstr: "unknown output format",
		},
		{
			name:      "negative jobs",
			mutate:    func(c *Config) { c.Jobs = -1 },
			errSubstr: "jobs must not be negative",
		},
		{
			name:      "empty include",
			mutate:    func(c *Config) { c.Include = nil },
			errSubstr: "include must list",
		},
		{
			name:      "bad glob",
			mutate:    func(c *Config) { c.Exclude = []string{"src/[a-"} },
			errSubstr: "invalid glob pattern",
		},
		{
			name:      "unknown preset",
			mutate:    func(c *Config) { c.Lint.Preset = "strict" },
			errSubstr: "unknown preset",
		},
		{
			name:      "unknown severity",
			mutate:    func(c *Config) { c.Lint.Severity = map[string]string{"fp/no-let": "fatal"} },
			errSubstr: "lint.severity.fp/no-let",
		},
		{
			name:   "off severity",
			mutate: func(c *Config) { c.Lint.Severity = map[string]string{"fp/no-let": "off"} },
		},
		{
			name:      "scalar rule options",
			mutate:    func(c *Config) { c.Lint.Rules = map[string]any{"fp/no-nil": true} },
			errSubstr: "options must be a map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestGetLogger_Fallback(t *testing.T) {
	assert.NotNil(t, GetLogger(t.Context()))
}
