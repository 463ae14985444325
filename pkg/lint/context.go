package lint

import (
	"log/slog"

	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
)

// Context is handed to a rule's Create function. It carries the rule's options
// for this run and turns reports into diagnostics.
type Context struct {
	rule     Rule
	severity core.Severity
	options  core.RuleOptions
	logger   *slog.Logger
	sink     func(Diagnostic)
}

// NewContext creates a Context for rule. Reported diagnostics are passed to sink.
// A nil logger discards log output.
func NewContext(rule Rule, severity core.Severity, options core.RuleOptions, logger *slog.Logger, sink func(Diagnostic)) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{
		rule:     rule,
		severity: severity,
		options:  options,
		logger:   logger.With("rule", rule.ID()),
		sink:     sink,
	}
}

// RuleID returns the ID of the rule this context belongs to.
func (c *Context) RuleID() string {
	return c.rule.ID()
}

// Severity returns the effective severity for this run.
func (c *Context) Severity() core.Severity {
	return c.severity
}

// Options returns the ordered option records configured for the rule.
func (c *Context) Options() core.RuleOptions {
	return c.options
}

// FirstOption returns the first option record, or nil when none is configured.
func (c *Context) FirstOption() map[string]any {
	if len(c.options) == 0 {
		return nil
	}
	return c.options[0]
}

// Logger returns a logger tagged with the rule ID.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Report records a violation at node.
func (c *Context) Report(node *jsast.Node, message string) {
	if c.sink == nil {
		return
	}
	d := Diagnostic{
		RuleID:           c.rule.ID(),
		Severity:         c.severity,
		Message:          message,
		Node:             node,
		DocumentationURL: c.rule.DocURL(),
		ImpactScore:      c.rule.Impact().Int(),
	}
	if node != nil {
		d.Pos = node.Pos
		d.EndPos = node.End
	}
	c.sink(d)
}
