// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"

	"github.com/MKhiriev/go-scope-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// SourceReader reads one configuration source for an app scope.
//
// Implementations must keep Available cheap and free of I/O that can fail;
// Read may perform I/O and return an error, which the orchestrator isolates
// from the other sources of the same resolution.
type SourceReader interface {
	// Variant identifies which of the six source kinds this reader is.
	// The variant determines the reader's merge priority.
	Variant() models.SourceVariant

	// Available reports whether the source can contribute anything for the
	// given app id (required env vars present, file exists, endpoint
	// configured). Unavailable sources are skipped, not read.
	Available(appID string) bool

	// Read returns the source's raw key-value tree for the app id. Keys keep
	// the source's native spelling; normalization happens at lookup time.
	// The returned mapping must be safe for the caller to retain.
	Read(ctx context.Context, appID string) (models.ConfigMap, error)
}

// CredentialStore supplies the endpoint and credential set the remote
// source reader needs for an app scope. It is provided by the embedding
// application; this package ships [StaticCredentialStore] for the common
// case of a fixed table.
type CredentialStore interface {
	// Lookup returns the endpoint for appID, preferring app-specific
	// credentials and falling back to generic ones. The second return is
	// false when neither exists, which makes the remote source unavailable
	// for that app id.
	Lookup(appID string) (RemoteEndpoint, bool)
}

// Provider is the public contract of the resolution orchestrator, consumed
// by transport handlers and other thin adapters.
type Provider interface {
	// GetAppConfiguration returns the merged configuration for the app id,
	// serving a cached snapshot when one exists.
	GetAppConfiguration(ctx context.Context, appID string) (*models.ResolvedConfiguration, error)

	// GetConfigurationValue resolves the full configuration and looks up a
	// single key under any of its spellings. The boolean is false on a miss;
	// a miss is not an error.
	GetConfigurationValue(ctx context.Context, appID string, key string) (any, bool, error)

	// RefreshConfiguration re-runs resolution regardless of cache state. The
	// previous cached snapshot survives a failed refresh.
	RefreshConfiguration(ctx context.Context, appID string) (*models.ResolvedConfiguration, error)

	// InvalidateConfiguration drops the cached snapshot for the app id, if
	// any, so the next read resolves from scratch.
	InvalidateConfiguration(appID string)
}
