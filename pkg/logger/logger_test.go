package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Good(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Info("loaded quotes", "count", 8)
	log.Debug("menu choice", "choice", "1")

	assert.Contains(t, buf.String(), "level=INFO msg=\"loaded quotes\" count=8")
	assert.NotContains(t, buf.String(), "menu choice")

	buf.Reset()
	log = New(&buf, true)
	log.Debug("menu choice", "choice", "1")
	assert.Contains(t, buf.String(), "level=DEBUG msg=\"menu choice\" choice=1")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, New(&buf, true).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, New(&buf, false).Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, New(&buf, false).Enabled(context.Background(), slog.LevelInfo))
}
