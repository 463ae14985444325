package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/lint"
	_ "github.com/leapstack-labs/fplint/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group: "fp" for the functional programming rules
and "core" for companion rules. Use --verbose to include rationale, or pass
a rule ID to see examples, options and fix guidance.`,
		Example: `  # List all rules
  fplint rules

  # Show details for a specific rule
  fplint rules fp/no-mutation

  # List rules in the fp group
  fplint rules --group fp

  # Output as JSON
  fplint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// groupTitles names the built-in groups; other groups are title-cased.
var groupTitles = map[string]string{
	"fp":   "Functional Programming",
	"core": "Core",
}

func groupTitle(group string) string {
	if title, ok := groupTitles[group]; ok {
		return title
	}
	return cases.Title(language.English).String(group)
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rules := lint.AllRules()
	if opts.Group != "" {
		filtered := rules[:0]
		for _, rule := range rules {
			if rule.Group == opts.Group {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesTable(r, rules, opts.Verbose, true)
	default:
		return listRulesTable(r, rules, opts.Verbose, false)
	}
}

// recommendedLevels returns the recommended preset's levels by rule ID.
func recommendedLevels() map[string]string {
	levels, _ := lint.Preset(lint.PresetRecommended)
	return levels
}

// listRulesTable prints one table per group.
func listRulesTable(r *output.Renderer, rules []core.RuleInfo, verbose, markdown bool) error {
	styles := r.Styles()
	recommended := recommendedLevels()

	if markdown {
		r.Println("# Lint Rules")
	} else {
		r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
	}
	r.Println("")

	for _, group := range groupRules(rules) {
		if markdown {
			r.Println("## " + groupTitle(group.name))
		} else {
			r.Println(styles.Header2.Render(groupTitle(group.name)))
		}
		r.Println("")

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		header := table.Row{"Rule", "Severity", "Recommended", "Options", "Description"}
		if verbose {
			header = append(header, "Rationale")
		}
		t.AppendHeader(header)

		for _, rule := range group.rules {
			row := table.Row{
				rule.ID,
				rule.DefaultSeverity.String(),
				recommended[rule.ID],
				strings.Join(rule.ConfigKeys, ", "),
				rule.Description,
			}
			if verbose {
				row = append(row, oneLine(rule.Rationale))
			}
			t.AppendRow(row)
		}

		if markdown {
			r.Println(t.RenderMarkdown())
		} else {
			r.Println(t.Render())
		}
		r.Println("")
	}

	if !markdown {
		r.Println(styles.Muted.Render("Use 'fplint rules <rule-id>' for detailed documentation"))
	}
	return nil
}

type ruleGroup struct {
	name  string
	rules []core.RuleInfo
}

// groupRules groups rules, keeping first-seen group order. Rules arrive
// sorted by ID, so "fp/..." precedes the unprefixed core rules.
func groupRules(rules []core.RuleInfo) []ruleGroup {
	var groups []ruleGroup
	index := make(map[string]int)
	for _, rule := range rules {
		i, ok := index[rule.Group]
		if !ok {
			i = len(groups)
			index[rule.Group] = i
			groups = append(groups, ruleGroup{name: rule.Group})
		}
		groups[i].rules = append(groups[i].rules, rule)
	}
	return groups
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count struct {
		ByGroup map[string]int `json:"by_group"`
		Total   int            `json:"total"`
	} `json:"count"`
}

func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	out := RulesJSONOutput{Rules: rules}
	out.Count.ByGroup = make(map[string]int)
	for _, rule := range rules {
		out.Count.ByGroup[rule.Group]++
	}
	out.Count.Total = len(rules)
	return r.JSON(out)
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rule, ok := lint.GetRuleByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &info)
	default:
		return showRuleText(r, &info)
	}
}

func showRuleText(r *output.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), severityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()))
	if level, ok := recommendedLevels()[rule.ID]; ok {
		r.Printf("  %s: %s\n", styles.Bold.Render("Recommended"), level)
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + oneLine(rule.Rationale))
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Error.Render("  " + line))
		}
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}
	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}
	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}
	if rule.DocURL != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), rule.DocURL)
	}
	return nil
}

func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.DefaultSeverity.String())
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```js")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```js")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}
	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}
	if len(rule.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
		r.Println("")
	}
	if rule.DocURL != "" {
		r.Printf("[Documentation](%s)\n", rule.DocURL)
	}
	return nil
}

func severityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
