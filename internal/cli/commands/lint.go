package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/fplint/internal/cli/config"
	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/pkg/lint"
	_ "github.com/leapstack-labs/fplint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/fplint/pkg/parser"
)

// ErrLintIssues is returned when diagnostics at or above the threshold remain.
var ErrLintIssues = errors.New("lint issues found")

// ErrLintFailed is returned when some files could not be read or parsed.
// It takes precedence over ErrLintIssues.
var ErrLintFailed = errors.New("files could not be linted")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Watch    bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint JavaScript and TypeScript sources",
		Long: `Analyze source files for violations of functional programming style.

Directories are searched with the include and exclude patterns from
fplint.yaml. Rules, severities and options come from the configured preset
and the lint section of the config file; flags override both.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the current directory
  fplint lint

  # Lint specific paths
  fplint lint src lib/util.js

  # Run every rule instead of the recommended preset
  fplint lint --preset all

  # Only run the mutation rules
  fplint lint --rule fp/no-mutation,fp/no-mutating-assign

  # Output as JSON
  fplint lint --format json

  # Re-lint on save
  fplint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch files and re-lint on change")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("rule", completeRuleIDs)
	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleIDs)

	return cmd
}

func completeRuleIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, r := range lint.GetAllRules() {
		ids = append(ids, r.ID())
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	runner := &lintRunner{
		analyzer: lint.NewAnalyzer(lintCfg, lint.WithLogger(cmdCtx.Logger)),
		parser:   parser.New(),
		jobs:     cfg.EffectiveJobs(),
		logger:   cmdCtx.Logger,
	}
	files := FileSet{Include: cfg.Include, Exclude: cfg.Exclude}

	paths, err := files.Discover(opts.Paths)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("discovered files", "count", len(paths))

	results, err := runner.run(cmd.Context(), paths)
	if err != nil {
		return err
	}
	hasIssues := renderLintResults(r, filterBySeverity(results, threshold), len(paths))
	failed := countFailed(results)

	if opts.Watch {
		return watchAndLint(cmd.Context(), opts.Paths, files, func(changed []string) {
			results, err := runner.run(cmd.Context(), changed)
			if err != nil {
				r.Error(err.Error())
				return
			}
			renderLintResults(r, filterBySeverity(results, threshold), len(changed))
		}, cmdCtx.Logger)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLintFailed, failed, len(paths))
	}
	if hasIssues {
		return ErrLintIssues
	}
	return nil
}

func countFailed(results []lintFileResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// buildLintConfig layers CLI flags over the configured preset, severities,
// disabled rules and rule options.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg, err := lint.ConfigFromLintConfig(cfg.LintSettings())
	if err != nil {
		return nil, fmt.Errorf("invalid lint configuration: %w", err)
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// --rule replaces the enabled set
	if len(opts.Rules) > 0 {
		only := make(map[string]bool, len(opts.Rules))
		for _, id := range opts.Rules {
			id = strings.TrimSpace(id)
			if _, ok := lint.GetRuleByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			only[id] = true
			delete(lintCfg.DisabledRules, id)
		}
		lintCfg.EnabledRules = only
	}

	return lintCfg, nil
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Err         error
}

// lintRunner lints files concurrently with a shared analyzer.
type lintRunner struct {
	analyzer *lint.Analyzer
	parser   *parser.Parser
	jobs     int
	logger   *slog.Logger
}

// run lints files with at most r.jobs workers. Results keep the order of
// files. Per-file read and parse failures are recorded in the result; only
// cancellation aborts the run.
func (r *lintRunner) run(ctx context.Context, files []string) ([]lintFileResult, error) {
	results := make([]lintFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.jobs, 1))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.lintFile(gctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *lintRunner) lintFile(ctx context.Context, path string) lintFileResult {
	res := lintFileResult{Path: path}

	source, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read file: %w", err)
		return res
	}

	program, err := r.parser.Parse(ctx, source, parser.LanguageForPath(path))
	if err != nil {
		r.logger.Debug("skipping file", "path", path, "error", err)
		res.Err = err
		return res
	}

	res.Diagnostics = r.analyzer.Analyze(program)
	return res
}

func filterBySeverity(results []lintFileResult, threshold lint.Severity) []lintFileResult {
	filtered := make([]lintFileResult, 0, len(results))
	for _, res := range results {
		var diags []lint.Diagnostic
		for _, d := range res.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 || res.Err != nil {
			filtered = append(filtered, lintFileResult{Path: res.Path, Diagnostics: diags, Err: res.Err})
		}
	}
	return filtered
}

func summarize(results []lintFileResult, filesAnalyzed int) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed:   filesAnalyzed,
		FilesWithIssues: len(results),
	}
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				summary.Errors++
			case lint.SeverityWarning:
				summary.Warnings++
			case lint.SeverityInfo:
				summary.Info++
			case lint.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints results and reports whether any issue remains.
func renderLintResults(r *output.Renderer, results []lintFileResult, filesAnalyzed int) bool {
	summary := summarize(results, filesAnalyzed)

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   []output.LintFileResult{},
		}
		for _, res := range results {
			fileResult := output.LintFileResult{
				Path:        res.Path,
				Diagnostics: []output.LintDiagnostic{},
			}
			if res.Err != nil {
				fileResult.Error = res.Err.Error()
			}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:    d.RuleID,
					Severity:  d.Severity.String(),
					Message:   d.Message,
					Line:      d.Pos.Line,
					Column:    d.Pos.Column,
					EndLine:   d.EndPos.Line,
					EndColumn: d.EndPos.Column,
					DocURL:    d.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return len(results) > 0
	}

	if len(results) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", filesAnalyzed))
		return false
	}

	styles := r.Styles()
	for _, res := range results {
		r.Println(styles.FilePath.Render(res.Path))
		if res.Err != nil {
			r.Printf("  %s  %s\n", styles.Error.Render("error  "), res.Err.Error())
		}
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityLabel(styles, d.Severity),
				styles.Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d of %d files\n", strings.Join(parts, ", "), summary.FilesWithIssues, summary.FilesAnalyzed)

	return true
}

func severityLabel(styles *output.Styles, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return styles.Error.Render("error  ")
	case lint.SeverityWarning:
		return styles.Warning.Render("warning")
	case lint.SeverityInfo:
		return styles.Info.Render("info   ")
	case lint.SeverityHint:
		return styles.Muted.Render("hint   ")
	default:
		return styles.Muted.Render("unknown")
	}
}
