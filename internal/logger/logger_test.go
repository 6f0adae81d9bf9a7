package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{JSON: true}, &buf)
	require.NoError(t, err)

	log.Infow("written", FieldFile, "math.pyi", FieldCount, 3)
	log.Debugw("hidden")
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug is below the default level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "written", rec["msg"])
	assert.Equal(t, "math.pyi", rec[FieldFile])
	assert.Equal(t, float64(3), rec[FieldCount])
}

func TestNewConsoleLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Level: "DEBUG"}, &buf)
	require.NoError(t, err)

	Component(log, "batch").Debugw("converting", FieldFile, "os.pyi")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, "converting")
	assert.Contains(t, out, "os.pyi")
	assert.Contains(t, out, "batch")
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { Nop().Infow("ignored") })
}
