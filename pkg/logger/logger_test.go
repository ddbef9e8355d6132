package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestJSONOutputAndLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Writer: &buf, Level: "info", JSON: true})
	t.Cleanup(func() { Setup(Options{}) })

	Debug("hidden %d", 1)
	Info("loaded %d listings", 3)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "loaded 3 listings", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	Setup(Options{Writer: &buf, JSON: true})
	t.Cleanup(func() { Setup(Options{}) })

	With("component", "browse").Info("ready")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "browse", entry["component"])
}
