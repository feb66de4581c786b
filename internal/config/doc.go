// Package config provides configuration loading, merging, and validation
// facilities for the service itself.
//
// This is the service's own bootstrap configuration (listen address, env
// prefix, remote endpoint, cache limits) — not the app-scoped configuration
// the service resolves for its callers; that lives in internal/resolver.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
