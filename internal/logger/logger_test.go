package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleOnly(t *testing.T) {
	l, err := New(Config{Level: "debug", Console: true})
	require.NoError(t, err)
	defer l.Close()

	assert.NotNil(t, l.GetZerolog())
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "careerintel.log")

	l, err := New(Config{Level: "info", File: path})
	require.NoError(t, err)

	zl := l.GetZerolog()
	zl.Info().Str("tool", "validate").Msg("Tool registered")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Tool registered")
}

func TestNew_RedactionAppliesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careerintel.log")

	l, err := New(Config{Level: "info", File: path, Redaction: true})
	require.NoError(t, err)

	zl := l.GetZerolog()
	zl.Info().Str("header", "Bearer leaked-token-value").Msg("request")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "leaked-token-value")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "nonsense", Console: true})
	require.NoError(t, err)
	defer l.Close()

	assert.Equal(t, "info", l.GetZerolog().GetLevel().String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.Console)
	assert.True(t, cfg.Redaction)
}
