package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keybroker/config"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&config.Config{LoggerMode: config.LoggerMode{Level: "debug"}}, &buf)
	require.NoError(t, err)

	l.With("user_id", "u1").Warn("pool exhausted", "unused", 0, "dangling")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pool exhausted", line["msg"])
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "u1", line["user_id"])
	assert.Equal(t, float64(0), line["unused"])
	assert.Equal(t, "(MISSING)", line["dangling"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(&config.Config{LoggerMode: config.LoggerMode{Level: "error"}}, &buf)
	require.NoError(t, err)

	l.Info("hidden")
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.Errorf("storage failure: %v", "boom")
	assert.Contains(t, buf.String(), "storage failure: boom")
}

func TestLogger_BadLevel(t *testing.T) {
	_, err := NewLogger(&config.Config{LoggerMode: config.LoggerMode{Level: "loud"}})
	assert.Error(t, err)
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger
	assert.NotPanics(t, func() {
		l.With("k", "v").Error("nothing happens")
		l.Errorf("nothing %s", "happens")
	})
}
