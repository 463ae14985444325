package lint

import (
	"github.com/leapstack-labs/fplint/pkg/core"
	"github.com/leapstack-labs/fplint/pkg/jsast"
	"github.com/leapstack-labs/fplint/pkg/token"
)

// Severity is re-exported so rule packages need not import core for it.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity converts a severity name such as "warn" or "error".
func ParseSeverity(s string) (Severity, bool) {
	return core.ParseSeverity(s)
}

// RuleInfo is re-exported from core for tooling.
type RuleInfo = core.RuleInfo

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless between files: Create is called once per analyzed tree
// and everything it needs comes through the Context.
type RuleDef struct {
	ID          string        // Unique identifier and config key, e.g. "fp/no-mutation"
	Name        string        // Short name, e.g. "mutation"
	Group       string        // Category, e.g. "fp" or "core"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Impact      ImpactLevel   // Weight used for diagnostics; zero means ImpactMedium
	ConfigKeys  []string      // Option keys this rule reads
	NodeKinds   []jsast.Kind  // Node kinds the rule visits
	Create      CreateFunc    // Builds the per-tree visitor
	DocURL      string        // Overrides the generated documentation URL

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CreateFunc builds a visitor for one analysis run.
type CreateFunc func(ctx *Context) Visitor

// Visitor maps node kinds to callbacks. The analyzer invokes each callback for
// every node of that kind, in source order.
type Visitor map[jsast.Kind]func(node *jsast.Node)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string         `json:"rule_id"`
	Severity core.Severity  `json:"severity"`
	Message  string         `json:"message"`
	Pos      token.Position `json:"pos"`
	EndPos   token.Position `json:"end_pos"`
	Node     *jsast.Node    `json:"-"`

	// Remediation metadata
	DocumentationURL string `json:"documentation_url,omitempty"`
	ImpactScore      int    `json:"impact_score"` // 0-100
}

// =============================================================================
// Rule Interface
// =============================================================================

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g. "fp/no-mutation"
	ID() string

	// Name returns the short name, e.g. "mutation"
	Name() string

	// Group returns the category, e.g. "fp"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// Impact returns the impact level attached to diagnostics
	Impact() ImpactLevel

	// ConfigKeys returns option keys this rule accepts
	ConfigKeys() []string

	// NodeKinds returns the node kinds this rule visits
	NodeKinds() []jsast.Kind

	// DocURL returns the documentation URL for this rule
	DocURL() string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)

	// Create builds the visitor for one analysis run.
	Create(ctx *Context) Visitor
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	kinds := make([]string, 0, len(r.NodeKinds()))
	for _, k := range r.NodeKinds() {
		kinds = append(kinds, string(k))
	}
	return core.RuleInfo{
		ID:              r.ID(),
		Name:            r.Name(),
		Group:           r.Group(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
		ConfigKeys:      r.ConfigKeys(),
		NodeKinds:       kinds,
		Rationale:       r.Rationale(),
		BadExample:      r.BadExample(),
		GoodExample:     r.GoodExample(),
		Fix:             r.Fix(),
		DocURL:          r.DocURL(),
	}
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement Rule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement the Rule interface.
func WrapRuleDef(def RuleDef) Rule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) NodeKinds() []jsast.Kind        { return w.def.NodeKinds }

func (w *wrappedRuleDef) Impact() ImpactLevel {
	if w.def.Impact == 0 {
		return ImpactMedium
	}
	return w.def.Impact
}

func (w *wrappedRuleDef) DocURL() string {
	if w.def.DocURL != "" {
		return w.def.DocURL
	}
	return BuildDocURL(w.def.ID)
}

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

func (w *wrappedRuleDef) Create(ctx *Context) Visitor {
	if w.def.Create == nil {
		return nil
	}
	return w.def.Create(ctx)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
