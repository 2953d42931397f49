package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"vitrine/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "vitrine"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("warn", false))
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "listingID", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "vitrine", entry["service"])
	assert.Equal(t, "abc", entry["listingID"])
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("verbose")
	assert.Error(t, err)

	level, err := parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", level.String())
}
