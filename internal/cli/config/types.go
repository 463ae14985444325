// Package config loads fplint settings from defaults, fplint.yaml, FPLINT_
// environment variables and command-line flags.
//
// Lint rule settings use the shared core.LintConfig type, re-exported here
// as an alias so CLI code does not need to import pkg/core.
package config

import (
	"runtime"

	"github.com/leapstack-labs/fplint/pkg/core"
)

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Include      []string    `koanf:"include"`
	Exclude      []string    `koanf:"exclude"`
	Jobs         int         `koanf:"jobs"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	DocsURL      string      `koanf:"docs_url"`
	Lint         *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // TTY=text, otherwise markdown
	DefaultPreset = "recommended"
	EnvPrefix     = "FPLINT_"
)

// ConfigFileNames are searched, in order, in each directory.
var ConfigFileNames = []string{"fplint.yaml", "fplint.yml"}

// DefaultInclude matches the source files fplint understands.
var DefaultInclude = []string{"**/*.{js,jsx,mjs,cjs,ts,tsx,mts,cts}"}

// DefaultExclude skips dependency and build output directories.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/*.min.js",
}

// EffectiveJobs returns the worker count, defaulting to the CPU count.
func (c *Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}

// LintSettings returns the lint section, never nil.
func (c *Config) LintSettings() LintConfig {
	if c == nil || c.Lint == nil {
		return LintConfig{Preset: DefaultPreset}
	}
	return *c.Lint
}

// Default returns the configuration used when nothing was loaded.
func Default() *Config {
	return &Config{
		Include:      append([]string(nil), DefaultInclude...),
		Exclude:      append([]string(nil), DefaultExclude...),
		OutputFormat: DefaultOutput,
		Lint:         &LintConfig{Preset: DefaultPreset},
	}
}
