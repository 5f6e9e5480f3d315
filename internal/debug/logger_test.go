package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_JSON(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "debug", Format: "json", Output: &buf}))
	assert.True(t, Enabled())

	Debug("collected column", "rows", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "collected column", record["msg"])
	assert.Equal(t, float64(3), record["rows"])
}

func TestSetup_LevelFilters(t *testing.T) {
	t.Cleanup(func() { Init(false) })

	var buf bytes.Buffer
	require.NoError(t, Setup(Options{Level: "warn", Output: &buf}))
	assert.False(t, Enabled())

	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetup_RejectsUnknownFormat(t *testing.T) {
	err := Setup(Options{Format: "xml"})
	require.Error(t, err)
}

func TestInit_Disabled(t *testing.T) {
	Init(false)
	assert.False(t, Enabled())
	assert.NotNil(t, Logger())

	With("k", "v").Error("dropped")
}
