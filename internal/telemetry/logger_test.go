package telemetry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "ranks")
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "tank", "square")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "tank=square")
	assert.Contains(t, out, "ranks")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, err := NewLogger(nil, "loud", "")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing happens")
}
