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
	"github.com/tidwall/gjson"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unknown log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "warn", "text")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("subject failed", "case", "C", "subject", "benchX")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `level=WARN msg="subject failed" case=C subject=benchX`)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, "debug", "json")
		require.NoError(t, err)

		logger.Debug("running subject", "iterations", 3)
		line := strings.TrimSpace(buf.String())
		assert.Equal(t, "running subject", gjson.Get(line, "msg").String())
		assert.Equal(t, int64(3), gjson.Get(line, "iterations").Int())
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "info", "xml")
		assert.ErrorContains(t, err, `unknown log format "xml"`)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", "text")
		assert.Error(t, err)
	})
}

func TestSetup_TeesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "bench.log")
	var buf bytes.Buffer
	logger, closeFn, err := Setup(Options{Writer: &buf, Level: "info", Format: "text", File: path})
	require.NoError(t, err)

	logger.With("case", "C").Info("case started")
	slog.Debug("not recorded")
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), `msg="case started" case=C`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Equal(t, "case started", gjson.Get(line, "msg").String())
	assert.Equal(t, "C", gjson.Get(line, "case").String())
	assert.NotContains(t, string(data), "not recorded")
}

func TestSetup_Errors(t *testing.T) {
	_, _, err := Setup(Options{Level: "loud"})
	assert.Error(t, err)

	_, _, err = Setup(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.ErrorContains(t, err, "failed to open log file")
}
