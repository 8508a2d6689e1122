package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ranks/internal/arena"
	"ranks/internal/config"
	"ranks/internal/telemetry"
)

func TestRunWritesResult(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	err := makeapp().Run([]string{"ranks", "run", "--ticks", "120", "--log", "error", "--out", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var res struct {
		Ticks     int      `json:"ticks"`
		Survivors []string `json:"survivors"`
		Events    []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, 120, res.Ticks)
	assert.Equal(t, []string{"square"}, res.Survivors)
	assert.NotEmpty(t, res.Events)
}

func TestRunRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("tanks: []\n"), 0644))
	err := makeapp().Run([]string{"ranks", "run", "--config", cfg, "--out", filepath.Join(dir, "out.json")})
	assert.Error(t, err)
}

func TestRouteCommand(t *testing.T) {
	assert.NoError(t, makeapp().Run([]string{"ranks", "route", "--log", "error"}))
}

func TestRouteCommandWithNotes(t *testing.T) {
	cfg := filepath.Join("..", "..", "assets", "arena.yaml")
	assert.NoError(t, makeapp().Run([]string{"ranks", "route", "--config", cfg, "--log", "error"}))
}

func TestFeedReportsStoppedRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "info", "ranks")
	require.NoError(t, err)
	w, err := arena.Build(config.Default(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	frames := make(chan arena.Frame)
	err = feed(ctx, w, 0, 0, frames, logger)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, open := <-frames
	assert.False(t, open)
	assert.Contains(t, buf.String(), "simulation stopped")
}

func TestFeedDeliversFrames(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "info", "ranks")
	require.NoError(t, err)
	w, err := arena.Build(config.Default(), nil, nil)
	require.NoError(t, err)

	frames := make(chan arena.Frame, 8)
	require.NoError(t, feed(context.Background(), w, 3, 0, frames, logger))
	var ticks []int
	for f := range frames {
		ticks = append(ticks, f.Tick)
	}
	assert.Equal(t, []int{1, 2, 3}, ticks)
	assert.Empty(t, buf.String())
}
