package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fplint/internal/cli/commands"
	"github.com/leapstack-labs/fplint/internal/cli/config"
	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/internal/cli/testutil"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)
	t.Cleanup(lint.ResetDocsBaseURL)

	cmd := NewRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"lint", "rules", "presets", "init", "version", "completion"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "output", "verbose", "preset", "jobs", "docs-url"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCommand_Version(t *testing.T) {
	t.Chdir(t.TempDir())
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fplint v"+Version)
}

func TestRootCommand_LintWithConfigFile(t *testing.T) {
	root := testutil.SetupTestProject(t)
	testutil.WriteFile(t, root, "fplint.yaml", `lint:
  preset: all
  disabled:
    - fp/no-nil
    - fp/no-unused-expression
  rules:
    fp/no-class:
      allowExtendingReactComponent: true
`)
	t.Chdir(root)

	stdout, _, err := execute(t, "lint", "-o", "json")
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 3, result.Summary.FilesAnalyzed)
	assert.Equal(t, 5, result.Summary.TotalIssues)
	for _, f := range result.Files {
		for _, d := range f.Diagnostics {
			assert.NotEqual(t, "fp/no-class", d.RuleID, "React.Component is allowed by the rule options")
		}
	}
}

func TestRootCommand_PresetFlag(t *testing.T) {
	root := testutil.SetupTestProject(t)
	t.Chdir(root)

	stdout, _, err := execute(t, "lint", "--preset", "all", "-o", "json", filepath.Join("src", "component.tsx"))
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	var rules []string
	for _, d := range result.Files[0].Diagnostics {
		rules = append(rules, d.RuleID)
	}
	assert.Contains(t, rules, "fp/no-class")
	assert.Contains(t, rules, "fp/no-this")
}

func TestRootCommand_DocsURL(t *testing.T) {
	root := testutil.SetupTestProject(t)
	t.Chdir(root)

	stdout, _, err := execute(t, "lint", "--docs-url", "https://docs.example.com/rules", "-o", "json", filepath.Join("src", "component.tsx"))
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.NotEmpty(t, result.Files)
	assert.Equal(t, "https://docs.example.com/rules/no-this.md", result.Files[0].Diagnostics[0].DocURL)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "fplint.yaml", "output: fancy\n")
	t.Chdir(root)

	_, _, err := execute(t, "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestRootCommand_VerboseLogsConfigFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "fplint.yaml", "jobs: 2\n")
	t.Chdir(root)

	_, stderr, err := execute(t, "-v", "presets", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using config file")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"lint issues", commands.ErrLintIssues, ExitIssues},
		{"unparsable files", fmt.Errorf("%w: 1 of 3", commands.ErrLintFailed), ExitError},
		{"configuration", errors.New("invalid configuration"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRootCommand_ParseFailureIsNotAnIssue(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "broken.js", "const = ;\n")
	t.Chdir(root)

	_, _, err := execute(t, "lint", "-o", "json")
	require.ErrorIs(t, err, commands.ErrLintFailed)
	assert.Equal(t, ExitError, exitCode(err))
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fplint")
}
