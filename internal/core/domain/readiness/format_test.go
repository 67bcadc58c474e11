package readiness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	return Aggregate([]NamedResult{
		named(CheckEnvironment, Pass("all required variables set", true)),
		named(CheckDatabase, Fail("connection refused", true)),
		named(CheckRealtime, Warning("subscription timed out after 5s", false)),
	}, fixedTime)
}

func TestFormat_Decode(t *testing.T) {
	tests := []struct {
		input       string
		expected    Format
		expectError bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f Format
			err := f.Decode(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestFormatText(t *testing.T) {
	out := FormatTextReport(sampleReport())

	assert.Contains(t, out, "DEMO READINESS REPORT")
	assert.Contains(t, out, "2026-10-19T09:30:00Z")
	assert.Contains(t, out, "✅ environment_variables: all required variables set")
	assert.Contains(t, out, "❌ database_connection [CRITICAL]: connection refused")
	assert.Contains(t, out, "⚠️ realtime: subscription timed out after 5s")
	assert.Contains(t, out, "Critical issues:")
	assert.Contains(t, out, "NOT READY")
	assert.Contains(t, out, "Fallbacks unavailable")
}

func TestFormatText_Ready(t *testing.T) {
	report := Aggregate([]NamedResult{
		named(CheckDatabase, Pass("ok", true)),
		named(CheckFileSystem, Pass("ok", true)),
	}, fixedTime)

	out := FormatTextReport(report)

	assert.Contains(t, out, "READY FOR DEMO")
	assert.Contains(t, out, "Fallbacks available")
	assert.NotContains(t, out, "Critical issues:")
	assert.NotContains(t, out, "Warnings:")
}

func TestRender_JSON(t *testing.T) {
	out, err := Render(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "failed", decoded["overall"])
	assert.Equal(t, false, decoded["readyForDemo"])
	checks, ok := decoded["checks"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, checks, 3)
}

func TestRender_YAML(t *testing.T) {
	out, err := Render(sampleReport(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "failed", decoded["overall"])
	assert.Equal(t, false, decoded["readyForDemo"])
}

func TestRender_DefaultsToText(t *testing.T) {
	out, err := Render(sampleReport(), Format("unknown"))
	require.NoError(t, err)
	assert.Contains(t, out, "DEMO READINESS REPORT")
}
