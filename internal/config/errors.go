package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidResolverConfigs indicates invalid resolution engine settings
	// (for example, a negative timeout, TTL, or cache size).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
