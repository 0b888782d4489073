package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietLoggerDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("regenerated", "generation", 1)
	l.Info("exported")
	assert.Empty(t, buf.String())

	l.Warn("careful")
	assert.Contains(t, buf.String(), "careful")
}

func TestVerboseLoggerKeepsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debug("regenerated", "generation", 1)
	assert.Contains(t, buf.String(), "generation=1")
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestInstall(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { Install(prev) })

	var buf bytes.Buffer
	Install(New(&buf, true))
	slog.Debug("through default")
	assert.Contains(t, buf.String(), "through default")
}
