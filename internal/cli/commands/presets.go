package commands

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fplint/internal/cli/output"
	"github.com/leapstack-labs/fplint/pkg/lint"
)

// NewPresetsCommand creates the presets command.
func NewPresetsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List rule presets",
		Long: `List the built-in rule presets and the level each assigns to its rules.

Select a preset with the lint.preset config key, FPLINT_PRESET or --preset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPresets(NewCommandContext(cmd, format).Renderer)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// PresetJSON is one preset in JSON output.
type PresetJSON struct {
	Name  string            `json:"name"`
	Rules map[string]string `json:"rules"`
}

func listPresets(r *output.Renderer) error {
	var presets []PresetJSON
	for _, name := range lint.PresetNames() {
		levels, _ := lint.Preset(name)
		presets = append(presets, PresetJSON{Name: name, Rules: levels})
	}

	mode := r.EffectiveMode()
	if mode == output.ModeJSON {
		return r.JSON(presets)
	}

	for _, p := range presets {
		ids := make([]string, 0, len(p.Rules))
		for id := range p.Rules {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Rule", "Level"})
		for _, id := range ids {
			t.AppendRow(table.Row{id, p.Rules[id]})
		}

		if mode == output.ModeMarkdown {
			r.Println("## " + p.Name)
			r.Println("")
			r.Println(t.RenderMarkdown())
		} else {
			r.Println(r.Styles().Header2.Render(p.Name))
			r.Println(t.Render())
		}
		r.Println("")
	}
	return nil
}
