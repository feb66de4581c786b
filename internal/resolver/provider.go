// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-scope-config/internal/config"
	"github.com/MKhiriev/go-scope-config/internal/logger"
	"github.com/MKhiriev/go-scope-config/models"
)

const defaultEnvPrefix = "APPCONF"

// AppScopedProvider orchestrates resolution: it gathers the six sources for
// an app id, reads the available ones concurrently, merges them by
// priority, caches the result, and answers key lookups against it.
//
// Concurrent resolutions of different app ids are fully independent. For
// one app id at most one resolution is in flight at a time: concurrent
// callers join the in-flight attempt and all observe the same snapshot.
type AppScopedProvider struct {
	prefix    string
	dotenvDir string
	remote    SourceReader

	cache *Cache
	group singleflight.Group

	// environ snapshots the process environment once per resolution attempt
	// so a single merge never observes the environment mid-change.
	environ func() (map[string]string, error)
	now     func() time.Time

	logger *logger.Logger
}

// NewAppScopedProvider builds the orchestrator from the resolver settings
// and an externally supplied credential store for the remote service.
// A nil credential store simply leaves the remote source unavailable.
func NewAppScopedProvider(cfg config.Resolver, creds CredentialStore, log *logger.Logger) *AppScopedProvider {
	if log == nil {
		log = logger.Nop()
	}

	prefix := cfg.EnvPrefix
	if prefix == "" {
		prefix = defaultEnvPrefix
	}

	dotenvDir := cfg.DotEnvDir
	if dotenvDir == "" {
		dotenvDir = "."
	}

	return &AppScopedProvider{
		prefix:    prefix,
		dotenvDir: dotenvDir,
		remote:    newRemoteSource(creds, cfg.RemoteTimeout),
		cache:     NewCache(cfg.CacheSize, cfg.CacheTTL),
		environ:   SnapshotEnviron,
		now:       time.Now,
		logger:    log,
	}
}

// GetAppConfiguration returns the merged configuration for the app id,
// serving the cached snapshot when one is present and fresh. On a cache
// miss the full resolution runs once, shared with any concurrent caller of
// the same app id.
func (p *AppScopedProvider) GetAppConfiguration(ctx context.Context, appID string) (*models.ResolvedConfiguration, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	if cfg, ok := p.cache.Get(appID); ok {
		return cfg, nil
	}

	v, err, _ := p.group.Do(appID, func() (any, error) {
		// a concurrent caller may have finished resolving between our cache
		// miss and joining the flight
		if cfg, ok := p.cache.Get(appID); ok {
			return cfg, nil
		}
		return p.resolveAndStore(ctx, appID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.ResolvedConfiguration), nil
}

// GetConfigurationValue resolves the full configuration for the app id and
// looks key up under any of its spellings. The boolean is false on a miss;
// misses are not errors.
func (p *AppScopedProvider) GetConfigurationValue(ctx context.Context, appID string, key string) (any, bool, error) {
	cfg, err := p.GetAppConfiguration(ctx, appID)
	if err != nil {
		return nil, false, err
	}

	value, ok := Lookup(cfg.Values, key)
	return value, ok, nil
}

// RefreshConfiguration forces a re-resolution regardless of cache state.
// The cache entry is replaced only after the new resolution completes; a
// failed refresh leaves the previous snapshot in place and is reported as
// [ErrRefreshFailed].
func (p *AppScopedProvider) RefreshConfiguration(ctx context.Context, appID string) (*models.ResolvedConfiguration, error) {
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	v, err, _ := p.group.Do(appID, func() (any, error) {
		return p.resolveAndStore(ctx, appID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w for app %q: %w", ErrRefreshFailed, appID, err)
	}
	return v.(*models.ResolvedConfiguration), nil
}

// InvalidateConfiguration drops the cached snapshot for the app id so the
// next read resolves from scratch.
func (p *AppScopedProvider) InvalidateConfiguration(appID string) {
	p.cache.Invalidate(appID)
}

func (p *AppScopedProvider) resolveAndStore(ctx context.Context, appID string) (*models.ResolvedConfiguration, error) {
	cfg, err := p.resolve(ctx, appID)
	if err != nil {
		return nil, err
	}

	p.cache.Put(cfg)
	return cfg, nil
}

// resolve performs one full resolution attempt: snapshot the environment,
// read every available source concurrently with failures isolated, then
// merge. Nothing is cached here; the caller stores the result only when
// resolve succeeds.
func (p *AppScopedProvider) resolve(ctx context.Context, appID string) (*models.ResolvedConfiguration, error) {
	env, err := p.environ()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFatalEnvironment, err)
	}

	sources := p.sources(env)
	layers := make([]*Layer, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		if src == nil || !src.Available(appID) {
			continue
		}

		g.Go(func() error {
			values, err := src.Read(gctx, appID)
			if err != nil {
				// the process environment is the guaranteed floor: losing it
				// aborts the attempt; every other source degrades to
				// contributing nothing
				if src.Variant() == models.SourceProcessEnv {
					return fmt.Errorf("%w: %w", ErrFatalEnvironment, err)
				}

				readErr := &SourceReadError{Variant: src.Variant(), AppID: appID, Err: err}
				p.logger.Warn().
					Err(readErr).
					Str("source", src.Variant().String()).
					Str("app_id", appID).
					Msg("configuration source read failed")
				return nil
			}

			layers[i] = &Layer{Variant: src.Variant(), Values: values}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a cancelled attempt must not produce a snapshot
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settled := make([]Layer, 0, len(layers))
	for _, layer := range layers {
		if layer != nil {
			settled = append(settled, *layer)
		}
	}

	resolved := &models.ResolvedConfiguration{
		AppID:      appID,
		Values:     Merge(settled),
		Provenance: provenance(settled),
		ResolvedAt: p.now(),
	}

	p.logger.Debug().
		Str("app_id", appID).
		Int("sources", len(settled)).
		Int("keys", len(resolved.Values)).
		Msg("configuration resolved")

	return resolved, nil
}

// sources lists the six variants for one resolution attempt. The env-backed
// readers wrap the attempt's snapshot; the dotenv and remote readers derive
// everything from the app id.
func (p *AppScopedProvider) sources(env map[string]string) []SourceReader {
	return []SourceReader{
		&processEnvSource{env: env},
		newRootDotEnvSource(p.dotenvDir),
		newAppDotEnvSource(p.dotenvDir),
		&genericEnvVarsSource{prefix: p.prefix, env: env},
		&appEnvVarsSource{prefix: p.prefix, env: env},
		p.remote,
	}
}

// provenance records, for every top-level key, which source variant
// contributed the winning value: layers are visited in ascending priority
// and later writers overwrite earlier ones.
func provenance(layers []Layer) map[string]models.SourceVariant {
	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	sortLayers(sorted)

	out := map[string]models.SourceVariant{}
	for _, layer := range sorted {
		for key := range layer.Values {
			out[key] = layer.Variant
		}
	}
	return out
}

// validateAppID rejects the caller error cases before any source is
// touched: an empty id and ids that could escape the dotenv directory or
// produce ambiguous env var spellings.
func validateAppID(appID string) error {
	if appID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAppID)
	}

	for _, r := range appID {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAppID, appID)
		}
	}

	if strings.Contains(appID, "..") || strings.HasPrefix(appID, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidAppID, appID)
	}

	return nil
}
