// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Resolver.RemoteTimeout < 0 || cfg.Resolver.CacheTTL < 0 {
		return ErrInvalidResolverConfigs
	}

	if cfg.Resolver.CacheSize < 0 {
		return ErrInvalidResolverConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
