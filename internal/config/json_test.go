package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be written as strings like "30s".
	jsonBody := `{
		"app": {
			"version": "1.2.3",
			"log_level": "debug"
		},
		"api": {
			"base_url": "https://ranges.example.com",
			"request_timeout": "10s",
			"user_agent": "custom-agent/1.0",
			"padding": true,
			"retries": 2
		},
		"server": {
			"address": "localhost:8443",
			"request_timeout": "30s",
			"self_tls": true
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	assert.Equal(t, "https://ranges.example.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "custom-agent/1.0", cfg.API.UserAgent)
	assert.True(t, cfg.API.Padding)
	assert.Equal(t, 2, cfg.API.Retries)

	assert.Equal(t, "localhost:8443", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.SelfTLS)

	// The parsed file never re-points at another file.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{"api": {"base_url": "https://ranges.example.com"}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://ranges.example.com", cfg.API.BaseURL)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// A bare number is interpreted as nanoseconds, matching time.Duration.
	jsonBody := `{"api": {"request_timeout": 5000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{"api": {"request_timeout": "soon"}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	_, err := parseJSON(p)

	// Assert
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Minute)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
