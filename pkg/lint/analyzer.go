package lint

import (
	"log/slog"
	"sort"

	"github.com/leapstack-labs/fplint/pkg/jsast"
)

// Analyzer runs lint rules against a parsed tree.
// An Analyzer holds no per-tree state; Analyze may be called concurrently.
type Analyzer struct {
	config *Config
	logger *slog.Logger
	rules  []Rule // nil means every registered rule
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for debug tracing and option warnings.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithRules restricts the analyzer to the given rules instead of the registry.
func WithRules(rules ...Rule) AnalyzerOption {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, opts ...AnalyzerOption) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{config: config}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	return a
}

// EnabledRules returns the rules that will run, sorted by ID.
func (a *Analyzer) EnabledRules() []Rule {
	rules := a.rules
	if rules == nil {
		rules = GetAllRules()
	} else {
		rules = append([]Rule(nil), rules...)
		sortRules(rules)
	}

	enabled := rules[:0:0]
	for _, rule := range rules {
		if !a.config.IsDisabled(rule.ID()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// Analyze runs every enabled rule over root in a single depth-first walk and
// returns the diagnostics sorted by position.
func (a *Analyzer) Analyze(root *jsast.Node) []Diagnostic {
	if root == nil {
		return nil
	}

	var diagnostics []Diagnostic
	sink := func(d Diagnostic) {
		diagnostics = append(diagnostics, d)
	}

	handlers := make(map[jsast.Kind][]func(*jsast.Node))
	for _, rule := range a.EnabledRules() {
		severity := a.config.GetSeverity(rule.ID(), rule.DefaultSeverity())
		ctx := NewContext(rule, severity, a.config.GetRuleOptions(rule.ID()), a.logger, sink)
		for kind, fn := range rule.Create(ctx) {
			if fn != nil {
				handlers[kind] = append(handlers[kind], fn)
			}
		}
	}
	if len(handlers) == 0 {
		return nil
	}

	jsast.Walk(root, func(node *jsast.Node) bool {
		for _, fn := range handlers[node.Kind] {
			fn(node)
		}
		return true
	})

	SortDiagnostics(diagnostics)
	a.logger.Debug("analysis complete", "diagnostics", len(diagnostics))
	return diagnostics
}

// SortDiagnostics orders diagnostics by position, then rule ID.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		pi, pj := diags[i].Pos, diags[j].Pos
		if pi != pj {
			return pi.Before(pj)
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
