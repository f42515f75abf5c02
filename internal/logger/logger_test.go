package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(4, &buf, nil)

	l.Info("Session: skipped")
	l.Warn("Session: kept", "username", "alice")

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.Contains(t, out, "Session: kept")
	assert.Contains(t, out, "username=alice")
	assert.NoError(t, l.Close())
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfgenie.log")
	l := New(0, path)

	l.Info("Runner: merge finished", "files", 2)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Runner: merge finished")
	assert.Contains(t, string(data), "files=2")
}
