package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DevUsesText(t *testing.T) {
	var buf bytes.Buffer
	log := New("dev", &buf)

	log.Debug("dbg", "a", 1)
	log.Info("inf", "b", 2)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=inf")
	assert.Contains(t, out, "b=2")
}

func TestNew_ProdUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("prod", &buf)

	log.Debug("hidden")
	log.With("request_id", "123").Warn("slow request", "latency_ms", 900)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "slow request", entry["msg"])
	assert.Equal(t, "123", entry["request_id"])
	assert.EqualValues(t, 900, entry["latency_ms"])
}
