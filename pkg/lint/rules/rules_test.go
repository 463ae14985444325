package rules_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/lint"
	_ "github.com/leapstack-labs/fplint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/fplint/pkg/parser"
)

// ruleCase is the shared table row for single-rule tests.
type ruleCase struct {
	name    string
	src     string
	options []map[string]any
	want    []string // expected messages in source order
}

// runRule parses src and runs only ruleID over it.
func runRule(t *testing.T, src string, ruleID string, options ...map[string]any) []lint.Diagnostic {
	t.Helper()
	program, err := parser.ParseString(src)
	require.NoError(t, err, "source: %s", src)

	rule, ok := lint.GetRuleByID(ruleID)
	require.True(t, ok, "rule %s not registered", ruleID)

	config := lint.NewConfig()
	if len(options) > 0 {
		config.SetRuleOptions(ruleID, options...)
	}
	return lint.NewAnalyzer(config, lint.WithRules(rule)).Analyze(program)
}

// messages returns nil when there are no diagnostics so that allow-side
// rows can leave want unset.
func messages(diags []lint.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

func runCases(t *testing.T, ruleID string, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, ruleID, tt.options...)
			assert.Equal(t, tt.want, messages(diags), "source: %s", tt.src)
			for _, d := range diags {
				assert.Equal(t, ruleID, d.RuleID)
				assert.True(t, d.Pos.IsValid(), "diagnostic without position")
			}
		})
	}
}

func TestCleanSourceHasNoMessages(t *testing.T) {
	diags := runRule(t, "const a = 1;", "fp/no-let")
	assert.Nil(t, messages(diags))
}

func TestRegistry(t *testing.T) {
	want := []string{
		"fp/no-class",
		"fp/no-let",
		"fp/no-mutating-assign",
		"fp/no-mutation",
		"fp/no-nil",
		"fp/no-this",
		"fp/no-unused-expression",
		"no-var",
	}

	var got []string
	for _, r := range lint.GetAllRules() {
		got = append(got, r.ID())
	}
	assert.Equal(t, want, got)
	assert.Len(t, lint.GetRulesByGroup("fp"), 7)
	assert.Len(t, lint.GetRulesByGroup("core"), 1)
}

func TestRuleMetadata(t *testing.T) {
	for _, info := range lint.AllRules() {
		t.Run(info.ID, func(t *testing.T) {
			assert.NotEmpty(t, info.Name)
			assert.NotEmpty(t, info.Group)
			assert.NotEmpty(t, info.Description)
			assert.NotEmpty(t, info.NodeKinds)
			assert.NotEmpty(t, info.Rationale)
			assert.NotEmpty(t, info.BadExample)
			assert.NotEmpty(t, info.GoodExample)
		})
	}
}

func TestVisitorsMatchNodeKinds(t *testing.T) {
	for _, rule := range lint.GetAllRules() {
		t.Run(rule.ID(), func(t *testing.T) {
			ctx := lint.NewContext(rule, rule.DefaultSeverity(), nil, nil, nil)
			visitor := rule.Create(ctx)

			var got []string
			for kind := range visitor {
				got = append(got, string(kind))
			}
			var want []string
			for _, kind := range rule.NodeKinds() {
				want = append(want, string(kind))
			}
			sort.Strings(got)
			sort.Strings(want)
			assert.Equal(t, want, got)
		})
	}
}

func TestPresetsReferenceRegisteredRules(t *testing.T) {
	for _, name := range lint.PresetNames() {
		levels, ok := lint.Preset(name)
		require.True(t, ok)
		for id := range levels {
			_, ok := lint.GetRuleByID(id)
			assert.True(t, ok, "preset %s references unknown rule %s", name, id)
		}
	}

	all, _ := lint.Preset(lint.PresetAll)
	assert.Len(t, all, lint.Count(), "the all preset covers every rule")
}

func TestRecommendedPreset(t *testing.T) {
	src := `var a = 1;
let b = 2;
b++;
Object.assign(a, {});
this.x;
const c = null;`

	program, err := parser.ParseString(src)
	require.NoError(t, err)

	config := lint.NewConfig()
	require.NoError(t, config.ApplyPreset(lint.PresetRecommended))
	diags := lint.NewAnalyzer(config).Analyze(program)

	var ids []string
	for _, d := range diags {
		ids = append(ids, d.RuleID)
		assert.Equal(t, core.SeverityError, d.Severity)
	}
	assert.Equal(t, []string{
		"no-var",
		"fp/no-let",
		"fp/no-mutation",
		"fp/no-mutating-assign",
		"fp/no-this",
	}, ids)
}

func TestLetNullReportsEachRuleIndependently(t *testing.T) {
	program, err := parser.ParseString("let x = null;\nlet y;")
	require.NoError(t, err)

	config := lint.NewConfig()
	require.NoError(t, config.ApplyPreset(lint.PresetAll))
	diags := lint.NewAnalyzer(config).Analyze(program)

	type finding struct {
		line int
		rule string
	}
	var got []finding
	for _, d := range diags {
		got = append(got, finding{d.Pos.Line, d.RuleID})
	}
	assert.ElementsMatch(t, []finding{
		{1, "fp/no-let"},
		{1, "fp/no-nil"},
		{2, "fp/no-let"},
		{2, "fp/no-nil"},
	}, got)
}

func TestAnalysisIsIdempotent(t *testing.T) {
	src := `
let counter = 0;
function bump(n) {
  counter += n;
  if (n == null) { return; }
  this.total++;
}
class Store extends React.Component {}
foo(), bar();
exports.bump = bump;
`
	program, err := parser.ParseString(src)
	require.NoError(t, err)

	config := lint.NewConfig()
	config.SetRuleOptions("fp/no-class", map[string]any{"allowExtendingReactComponent": true})
	analyzer := lint.NewAnalyzer(config)
	nodes := jsast.Count(program)

	first := analyzer.Analyze(program)
	second := analyzer.Analyze(program)
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	assert.Equal(t, nodes, jsast.Count(program), "analysis must not modify the tree")
	for _, d := range first {
		assert.NotEqual(t, "fp/no-class", d.RuleID)
	}
}
