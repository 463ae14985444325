package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/fplint/pkg/lint"
	_ "github.com/leapstack-labs/fplint/pkg/lint/rules" // register rules
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"fp":   "Rules that keep code free of mutation, classes, `this` and absent values.",
	"core": "Companion rules that the functional style depends on.",
}

// generateRuleDocs writes an index page and one page per rule.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAllRules()
	if err := generateRulesIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		name := ruleFileName(rule.ID())
		w := NewMarkdownWriter()
		w.Frontmatter(rule.ID(), cleanDescription(rule.Description()))
		w.GeneratedMarker()
		writeRuleDoc(w, rule)
		if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

// ruleFileName matches the page names used by lint.BuildDocURL.
func ruleFileName(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	return strings.ToLower(id) + ".md"
}

func generateRulesIndex(outDir string, rules []lint.Rule) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Functional programming lint rules for fplint")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("fplint ships **%d rules**.", len(rules)))

	w.Header(2, "Presets")
	var presetRows [][]string
	for _, name := range lint.PresetNames() {
		levels, _ := lint.Preset(name)
		ids := make([]string, 0, len(levels))
		for id := range levels {
			ids = append(ids, InlineCode(id))
		}
		sort.Strings(ids)
		presetRows = append(presetRows, []string{InlineCode(name), strings.Join(ids, ", ")})
	}
	w.Table([]string{"Preset", "Rules"}, presetRows)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are configured in `fplint.yaml`:")
	w.CodeBlock("yaml", `lint:
  preset: recommended
  disabled:
    - fp/no-this
  severity:
    fp/no-let: warn        # error, warning, info, hint, off
  rules:
    fp/no-mutation:
      commonjs: true
      exceptions:
        - object: foo
          property: bar`)

	grouped := make(map[string][]lint.Rule)
	var groups []string
	for _, r := range rules {
		if _, ok := grouped[r.Group()]; !ok {
			groups = append(groups, r.Group())
		}
		grouped[r.Group()] = append(grouped[r.Group()], r)
	}

	for _, group := range groups {
		w.Header(2, InlineCode(group))
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}
		var rows [][]string
		for _, r := range grouped[group] {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](%s)", InlineCode(r.ID()), ruleFileName(r.ID())),
				InlineCode(r.DefaultSeverity().String()),
				cleanDescription(r.Description()),
			})
		}
		w.Table([]string{"Rule", "Severity", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.Rule) {
	w.Header(1, fmt.Sprintf("%s - %s", rule.ID(), rule.Name()))

	w.Line(fmt.Sprintf("**Group:** %s | **Severity:** %s", InlineCode(rule.Group()), InlineCode(rule.DefaultSeverity().String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description()))

	if rationale := rule.Rationale(); rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rationale))
	}
	if badExample := rule.BadExample(); badExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("js", badExample)
	}
	if goodExample := rule.GoodExample(); goodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("js", goodExample)
	}
	if fix := rule.Fix(); fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(strings.TrimSpace(fix))
	}
	if configKeys := rule.ConfigKeys(); len(configKeys) > 0 {
		w.Header(2, "Options")
		items := make([]string, 0, len(configKeys))
		for _, key := range configKeys {
			items = append(items, InlineCode(key))
		}
		w.BulletList(items)
	}
}
