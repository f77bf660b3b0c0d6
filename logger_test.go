package tilescan

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithLayout(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scoped := l.WithLayout(Layout{Dim: 4, TileSize: 8, NumTiles: 2})
	scoped.LogScan(context.Background(), 2, nil)

	out := buf.String()
	assert.Contains(t, out, "scan completed")
	assert.Contains(t, out, "dim=4")
	assert.Contains(t, out, "tile_size=8")
	assert.Contains(t, out, "num_tiles=2")
}

func TestLoggerLogScanError(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogScan(context.Background(), 1, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "scan failed")
	assert.Contains(t, out, "tiles_done=1")
}

func TestNoopLogger(t *testing.T) {
	// Must not panic and must not write anywhere visible.
	NoopLogger().LogScan(context.Background(), 0, nil)
}
