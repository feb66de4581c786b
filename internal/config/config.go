// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level bootstrap configuration for the
// configuration-resolution service itself. It is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Resolver holds the settings of the resolution engine: the env var
	// prefix, dotenv directory, remote service endpoint, and cache limits.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// Server holds network address and timeout settings for the HTTP
	// server that exposes resolved configurations.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Resolver holds the settings consumed by the resolution engine.
type Resolver struct {
	// EnvPrefix is the prefix of the app-scoped and generic environment
	// variable sources: <EnvPrefix>_<APPID>_<KEY> and <EnvPrefix>_<KEY>.
	// Env: RESOLVER_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX"`

	// DotEnvDir is the directory holding the root .env file and the
	// per-application .env.<appid> files.
	// Env: RESOLVER_DOTENV_DIR
	DotEnvDir string `env:"DOTENV_DIR"`

	// RemoteBaseURL is the generic remote configuration service endpoint,
	// used for every app scope that has no app-specific endpoint configured.
	// When empty the remote source is unavailable.
	// Env: RESOLVER_REMOTE_BASE_URL
	RemoteBaseURL string `env:"REMOTE_BASE_URL"`

	// RemoteToken is the bearer credential sent with remote service
	// requests. Optional.
	// Env: RESOLVER_REMOTE_TOKEN
	RemoteToken string `env:"REMOTE_TOKEN"`

	// RemoteTimeout bounds a single remote service read (e.g. "5s").
	// A read exceeding it is treated as a failed source, not a failed
	// resolution.
	// Env: RESOLVER_REMOTE_TIMEOUT
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT"`

	// CacheTTL is how long a resolved configuration stays fresh before the
	// next read re-resolves it (e.g. "5m").
	// Env: RESOLVER_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`

	// CacheSize caps the number of app scopes held in the resolution cache.
	// Env: RESOLVER_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
