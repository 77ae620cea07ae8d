package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zapcore.InfoLevel)
	log.Debug("hidden")
	log.Info("shown", zap.String("file", "a.ks"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `{"file": "a.ks"}`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestConfigNew(t *testing.T) {
	var buf bytes.Buffer
	conf := Config{Format: "json", Level: zapcore.DebugLevel}
	log, err := conf.New(&buf)
	require.NoError(t, err)
	log.Debug("event", zap.Int("n", 3))
	assert.Contains(t, buf.String(), `"msg":"event"`)
	assert.Contains(t, buf.String(), `"n":3`)

	conf.Format = "xml"
	_, err = conf.New(&buf)
	assert.EqualError(t, err, `unknown log format "xml"`)

	def := NewConfig()
	assert.Equal(t, zapcore.WarnLevel, def.Level)
	_, err = def.New(&buf)
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}
