package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointConfigAway(t *testing.T) {
	t.Helper()
	t.Setenv("PRIMATA_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	pointConfigAway(t)

	rt, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", rt.Endpoint)
	assert.Equal(t, 10000, rt.TimeoutMs)
	assert.Equal(t, 1, rt.MaxRetries)
	assert.Equal(t, 7, rt.Span)
	assert.Equal(t, 8, rt.FirstHour)
	assert.Equal(t, 23, rt.LastHour)
	assert.False(t, rt.LogCalls)
}

func TestLoad_EnvOverrides(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("PRIMATA_API_ENDPOINT", "https://api.example.com/")
	t.Setenv("PRIMATA_API_TOKEN", "tok-abc")
	t.Setenv("PRIMATA_API_TIMEOUT_MS", "2500")
	t.Setenv("PRIMATA_WINDOW_SPAN", "14")
	t.Setenv("PRIMATA_GRID_FIRST_HOUR", "6")
	t.Setenv("PRIMATA_LOG_CALLS", "true")

	rt, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", rt.Endpoint, "trailing slash is trimmed")
	assert.Equal(t, "tok-abc", rt.Token)
	assert.Equal(t, 2500, rt.TimeoutMs)
	assert.Equal(t, 14, rt.Span)
	assert.Equal(t, 6, rt.FirstHour)
	assert.True(t, rt.LogCalls)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "console.env")
	require.NoError(t, os.WriteFile(file, []byte("API_ENDPOINT=https://clinic.example.com\nGRID_LAST_HOUR=20\n"), 0o600))
	t.Setenv("PRIMATA_CONFIG_FILE", file)

	rt, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://clinic.example.com", rt.Endpoint)
	assert.Equal(t, 20, rt.LastHour)
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("PRIMATA_API_TIMEOUT_MS", "-5")
	t.Setenv("PRIMATA_WINDOW_SPAN", "0")
	t.Setenv("PRIMATA_GRID_FIRST_HOUR", "30")
	t.Setenv("PRIMATA_GRID_LAST_HOUR", "2")

	rt, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 10000, rt.TimeoutMs)
	assert.Equal(t, 7, rt.Span)
	assert.Equal(t, 8, rt.FirstHour)
	assert.Equal(t, 23, rt.LastHour)
}
