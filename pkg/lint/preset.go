package lint

import "sort"

// PresetEntry assigns a severity level to one rule.
type PresetEntry struct {
	RuleID string
	Level  string
}

// Preset names.
const (
	PresetRecommended = "recommended"
	PresetAll         = "all"
)

var recommendedPreset = [...]PresetEntry{
	{"no-var", "error"},
	{"fp/no-let", "error"},
	{"fp/no-mutating-assign", "error"},
	{"fp/no-mutation", "error"},
	{"fp/no-this", "error"},
}

var allPreset = [...]PresetEntry{
	{"no-var", "error"},
	{"fp/no-class", "error"},
	{"fp/no-let", "error"},
	{"fp/no-mutating-assign", "error"},
	{"fp/no-mutation", "error"},
	{"fp/no-nil", "error"},
	{"fp/no-this", "error"},
	{"fp/no-unused-expression", "error"},
}

// Preset returns a copy of the named preset's rule levels.
func Preset(name string) (map[string]string, bool) {
	var entries []PresetEntry
	switch name {
	case PresetRecommended:
		entries = recommendedPreset[:]
	case PresetAll:
		entries = allPreset[:]
	default:
		return nil, false
	}

	levels := make(map[string]string, len(entries))
	for _, e := range entries {
		levels[e.RuleID] = e.Level
	}
	return levels, true
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := []string{PresetRecommended, PresetAll}
	sort.Strings(names)
	return names
}
