package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: false, Writer: &buf})
	require.NoError(t, err)
	defer closeFn()

	Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestInit_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelWarn, Writer: &buf})
	require.NoError(t, err)
	defer closeFn()

	Info("quiet")
	Warn("grow failed", "width", 16)
	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "width=16")
}

func TestInit_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memctl.log")
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelDebug, JSON: true, File: path})
	require.NoError(t, err)

	Debug("bench", "n", 3)
	require.NoError(t, closeFn())
	L = discard()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "bench", rec["msg"])
	assert.Equal(t, float64(3), rec["n"])
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}
