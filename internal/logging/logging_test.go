package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatsTabSeparatedLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)

	l.With("cycle", "c1").Warn("cannot open date picker", "err", "busy")

	line := strings.TrimSuffix(buf.String(), "\n")
	parts := strings.Split(line, "\t")
	require.Len(t, parts, 6, line)
	assert.Equal(t, "WARN", parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, "cannot open date picker", parts[3])
	assert.Equal(t, "cycle=c1", parts[4])
	assert.Equal(t, "err=busy", parts[5])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelWarn)
	l := New(&buf, lv)

	l.Debug("hidden")
	l.Info("hidden")
	assert.Empty(t, buf.String())

	lv.Set(slog.LevelDebug)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pickdate.log")
	l, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)
	l.Info("hello", "k", 1)
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello\tk=1")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"", slog.LevelWarn, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.err {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, tt.want, got)
	}
}
