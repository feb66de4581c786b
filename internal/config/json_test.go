package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"resolver": map[string]any{
			"env_prefix":      "MYCONF",
			"dotenv_dir":      "/etc/appconf",
			"remote_base_url": "https://config.example.com",
			"remote_token":    "secret-token",
			"remote_timeout":  "5s",
			"cache_ttl":       "5m",
			"cache_size":      128,
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "MYCONF", cfg.Resolver.EnvPrefix)
	assert.Equal(t, "/etc/appconf", cfg.Resolver.DotEnvDir)
	assert.Equal(t, "https://config.example.com", cfg.Resolver.RemoteBaseURL)
	assert.Equal(t, "secret-token", cfg.Resolver.RemoteToken)
	assert.Equal(t, 5*time.Second, cfg.Resolver.RemoteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Resolver.CacheTTL)
	assert.Equal(t, 128, cfg.Resolver.CacheSize)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	// the JSON path must not leak back into the merged config
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("/no/such/file.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"resolver": map[string]any{"cache_ttl": "forever"},
	})

	cfg, err := parseJSON(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"resolver": map[string]any{"dotenv_dir": "/etc/appconf"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/appconf", cfg.Resolver.DotEnvDir)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Resolver.CacheTTL)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"duration string", `"1h30m"`, time.Hour + 30*time.Minute},
		{"seconds string", `"45s"`, 45 * time.Second},
		{"nanoseconds number", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
