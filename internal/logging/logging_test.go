package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestInitWriter(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	logger := InitWriter(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	slog.Info("column moved", "column", "age")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "column moved")
	assert.Contains(t, out, "column=age")
	assert.Same(t, Logger, logger)
}
