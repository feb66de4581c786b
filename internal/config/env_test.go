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
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"RESOLVER_ENV_PREFIX":      "MYCONF",
		"RESOLVER_DOTENV_DIR":      "/etc/appconf",
		"RESOLVER_REMOTE_BASE_URL": "https://config.example.com",
		"RESOLVER_REMOTE_TOKEN":    "secret-token",
		"RESOLVER_REMOTE_TIMEOUT":  "5s",
		"RESOLVER_CACHE_TTL":       "5m",
		"RESOLVER_CACHE_SIZE":      "128",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "MYCONF", cfg.Resolver.EnvPrefix)
	assert.Equal(t, "/etc/appconf", cfg.Resolver.DotEnvDir)
	assert.Equal(t, "https://config.example.com", cfg.Resolver.RemoteBaseURL)
	assert.Equal(t, "secret-token", cfg.Resolver.RemoteToken)
	assert.Equal(t, 5*time.Second, cfg.Resolver.RemoteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Resolver.CacheTTL)
	assert.Equal(t, 128, cfg.Resolver.CacheSize)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"RESOLVER_DOTENV_DIR": "/etc/appconf",
		"SERVER_ADDRESS":      "0.0.0.0:9000",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/etc/appconf", cfg.Resolver.DotEnvDir)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Resolver.EnvPrefix)
	assert.Empty(t, cfg.Resolver.RemoteBaseURL)
	assert.Zero(t, cfg.Resolver.CacheTTL)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"RESOLVER_CACHE_TTL": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"1h", time.Hour},
		{"90s", 90 * time.Second},
		{"1h30m", time.Hour + 30*time.Minute},
		{"500ms", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setEnvVars(t, map[string]string{"RESOLVER_CACHE_TTL": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Resolver.CacheTTL)
		})
	}
}

// knownEnvVars lists every env var the config package reads, so tests can
// start from a clean slate regardless of the outer environment.
var knownEnvVars = []string{
	"CONFIG",
	"RESOLVER_ENV_PREFIX",
	"RESOLVER_DOTENV_DIR",
	"RESOLVER_REMOTE_BASE_URL",
	"RESOLVER_REMOTE_TOKEN",
	"RESOLVER_REMOTE_TIMEOUT",
	"RESOLVER_CACHE_TTL",
	"RESOLVER_CACHE_SIZE",
	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}
