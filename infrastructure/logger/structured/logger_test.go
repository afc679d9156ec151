package structured

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFormatIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})

	logger.Warn("Source ingestion failed", map[string]interface{}{
		"source": "movies",
		"items":  0,
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Source ingestion failed", line["msg"])
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "movies", line["source"])
	assert.Equal(t, float64(0), line["items"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "warn", Format: "text", Output: &buf})

	logger.Debug("hidden debug", nil)
	logger.Info("hidden info", map[string]interface{}{"k": "v"})
	logger.Error("visible error", map[string]interface{}{"code": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible error")
	assert.Contains(t, out, "code=1")
}

func TestLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Level: "chatty", Output: &buf})

	logger.Debug("debug line", nil)
	logger.Info("info line", nil)

	assert.False(t, strings.Contains(buf.String(), "debug line"))
	assert.True(t, strings.Contains(buf.String(), "info line"))
}
