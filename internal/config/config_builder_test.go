package config

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
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

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// replace earlier values while zero fields keep them.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{LoginPath: "/first", LogFile: "first.log"}},
		&StructuredConfig{App: App{LoginPath: "/second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/second", cfg.App.LoginPath)
	assert.Equal(t, "first.log", cfg.App.LogFile)
}

func TestBuild_DefaultsAreLowestPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{HTTPAddress: "http://other/api"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://other/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLoginPath, cfg.App.LoginPath)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_LOGIN_PATH": "/env-login"})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env-login", b.configs[0].App.LoginPath)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_PrependsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LoginPath = "/json-login"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json-login", b.configs[0].App.LoginPath)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LoginPath = "/json-login"
	payload.App.LogFile = "json.log"
	payload.Storage.DB.DSN = "json.db"
	payload.Adapter.HTTPAddress = "http://json/api"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CONFIG":          path,
		"STORAGE_DB_DSN":  "env.db",
		"ADAPTER_ADDRESS": "http://env/api",
	})

	cfg, err := loadStructuredConfig([]string{"-a", "http://flags/api"})

	require.NoError(t, err)
	assert.Equal(t, "http://flags/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/json-login", cfg.App.LoginPath)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestLoadStructuredConfig_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := loadStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}
