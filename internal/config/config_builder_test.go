package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{API: API{BaseURL: "https://ranges.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "https://ranges.example.com", cfg.API.BaseURL)
}

// TestBuild_EarlierSourceWins verifies the merge precedence: a field set by
// an earlier config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "https://first.example.com"}},
		&StructuredConfig{API: API{BaseURL: "https://second.example.com", Retries: 4}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", cfg.API.BaseURL)
	assert.Equal(t, 4, cfg.API.Retries)
}

// ── withOverrides ─────────────────────────────────────────────────────────────

// TestWithOverrides_ReturnsBuilder verifies the fluent interface.
func TestWithOverrides_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withOverrides(nil))
}

// TestWithOverrides_NilIsNoOp verifies that nil overrides append nothing.
func TestWithOverrides_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.withOverrides(nil)
	assert.Empty(t, b.configs)
}

// TestWithOverrides_AppendsConfig verifies that overrides become the first
// (highest-priority) source.
func TestWithOverrides_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withOverrides(&StructuredConfig{App: App{Version: "cli-version"}})

	require.Len(t, b.configs, 1)
	assert.Equal(t, "cli-version", b.configs[0].App.Version)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("API_BASE_URL", "https://env.example.com")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "https://env.example.com", b.configs[0].API.BaseURL)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.API.BaseURL = "https://json.example.com"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "https://json.example.com", b.configs[1].API.BaseURL)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that when multiple configs carry a
// JSONFilePath, the earliest (highest-priority) one wins.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first-wins"
	firstPath := writeTempJSONConfig(t, first)

	second := StructuredJSONConfig{}
	second.App.Version = "second-loses"
	secondPath := writeTempJSONConfig(t, second)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: firstPath},
		&StructuredConfig{JSONFilePath: secondPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first-wins", b.configs[2].App.Version)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_AppendsBuiltins verifies that defaults are appended and
// carry the production base URL.
func TestWithDefaults_AppendsBuiltins(t *testing.T) {
	b := newConfigBuilder()
	b.withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://api.pwnedpasswords.com", b.configs[0].API.BaseURL)
	assert.Equal(t, "dev", b.configs[0].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_DefaultsOnly verifies the full pipeline with no
// overrides, env, or file input.
func TestGetStructuredConfig_DefaultsOnly(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.pwnedpasswords.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

// TestGetStructuredConfig_OverridesBeatEnv verifies the documented priority
// between CLI overrides and environment variables.
func TestGetStructuredConfig_OverridesBeatEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := GetStructuredConfig(&StructuredConfig{
		API: API{BaseURL: "https://flag.example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", cfg.API.BaseURL)
}

// TestGetStructuredConfig_EnvBeatsJSON verifies that env values win over the
// JSON file referenced by CONFIG.
func TestGetStructuredConfig_EnvBeatsJSON(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.API.BaseURL = "https://json.example.com"
	payload.API.Retries = 7
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	// fields the env does not set still come from the file
	assert.Equal(t, 7, cfg.API.Retries)
}

// TestGetStructuredConfig_JSONBeatsDefaults verifies that file values win
// over built-in defaults.
func TestGetStructuredConfig_JSONBeatsDefaults(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.API.BaseURL = "https://json.example.com"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetStructuredConfig(&StructuredConfig{JSONFilePath: path})
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com", cfg.API.BaseURL)
	// defaults still fill what the file leaves unset
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
}
