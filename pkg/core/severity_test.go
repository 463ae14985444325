package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"ERROR", SeverityError, true},
		{"warning", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{"info", SeverityInfo, true},
		{" hint ", SeverityHint, true},
		{"bogus", SeverityWarning, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestIsOff(t *testing.T) {
	assert.True(t, IsOff("off"))
	assert.True(t, IsOff("0"))
	assert.False(t, IsOff("error"))
}

func TestSeverityMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Severity{"s": SeverityInfo})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"info"}`, string(data))
}

func TestSeverityUnmarshalJSON(t *testing.T) {
	var got struct{ S Severity }
	require.NoError(t, json.Unmarshal([]byte(`{"S":"warn"}`), &got))
	assert.Equal(t, SeverityWarning, got.S)

	assert.Error(t, json.Unmarshal([]byte(`{"S":"loud"}`), &got))
}

func TestNormalizeRuleOptions(t *testing.T) {
	single := map[string]any{"commonjs": true}
	assert.Equal(t, RuleOptions{single}, NormalizeRuleOptions(single))

	list := []any{single, "ignored", map[string]any{"allowThis": true}}
	got := NormalizeRuleOptions(list)
	require.Len(t, got, 2)
	assert.Equal(t, true, got[1]["allowThis"])

	assert.Nil(t, NormalizeRuleOptions(nil))
	assert.Nil(t, NormalizeRuleOptions(42))
}
