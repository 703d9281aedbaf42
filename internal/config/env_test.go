// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOGIN_PATH": "/auth/login",
		"APP_LOG_FILE":   "/var/log/enquete.log",

		"ADAPTER_ADDRESS":         "http://api.local:5050/api",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DSN": "/tmp/enquete.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "/auth/login", cfg.App.LoginPath)
	assert.Equal(t, "/var/log/enquete.log", cfg.App.LogFile)
	assert.Equal(t, "http://api.local:5050/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/enquete.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_OnlyStorageDB(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "local.db",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.App.LoginPath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "1500ms", 1500 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

var knownEnvVars = []string{
	"CONFIG",
	"APP_LOGIN_PATH",
	"APP_LOG_FILE",
	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
	"STORAGE_DB_DSN",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
