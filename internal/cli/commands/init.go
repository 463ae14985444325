package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/fplint/internal/cli/config"
	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an fplint.yaml configuration file",
		Long: `Create an fplint.yaml configuration file with the default source
patterns, the selected preset and an example rule option.

The preset comes from the global --preset flag and defaults to "recommended".`,
		Example: `  # Initialize in current directory
  fplint init

  # Enable every rule
  fplint init --preset all

  # Initialize in another directory, overwriting an existing file
  fplint init web --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cctx := NewCommandContext(cmd, "")
			return runInit(cctx.Renderer, dir, cctx.Cfg.LintSettings().Preset, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// initFile is the layout written by init. Field order is the file order.
type initFile struct {
	Include []string       `yaml:"include"`
	Exclude []string       `yaml:"exclude"`
	Lint    initLintConfig `yaml:"lint"`
}

type initLintConfig struct {
	Preset   string                    `yaml:"preset"`
	Disabled []string                  `yaml:"disabled"`
	Severity map[string]string         `yaml:"severity"`
	Rules    map[string]map[string]any `yaml:"rules"`
}

const initHeader = `# fplint configuration
# Severity levels: error, warning, info, hint, off
`

func runInit(r *output.Renderer, dir, preset string, force bool) error {
	if preset == "" {
		preset = config.DefaultPreset
	}
	if _, ok := lint.Preset(preset); !ok {
		return fmt.Errorf("unknown preset %q", preset)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}

	data, err := renderInitFile(preset)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.StatusLine(configPath, "success", "preset "+preset)
	r.Println("")
	r.Success("fplint initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust include and exclude patterns in " + config.ConfigFileNames[0])
	r.Println("  2. Run 'fplint rules' to see the available rules")
	r.Println("  3. Run 'fplint lint' to check your sources")

	return nil
}

func renderInitFile(preset string) ([]byte, error) {
	file := initFile{
		Include: config.DefaultInclude,
		Exclude: config.DefaultExclude,
		Lint: initLintConfig{
			Preset:   preset,
			Disabled: []string{},
			Severity: map[string]string{},
			Rules: map[string]map[string]any{
				"fp/no-mutation": {"commonjs": true},
			},
		},
	}

	var buf bytes.Buffer
	buf.WriteString(initHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}
