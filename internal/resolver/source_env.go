// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"os"
	"strings"

	"github.com/MKhiriev/go-scope-config/models"
)

// SnapshotEnviron captures the current process environment as an immutable
// flat map. The orchestrator takes one snapshot per resolution attempt and
// hands the same snapshot to all three environment-backed sources, so a
// single resolution never observes the environment mid-change.
func SnapshotEnviron() (map[string]string, error) {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		snapshot[name] = value
	}
	return snapshot, nil
}

// envAppID is the spelling of an app id inside an environment variable
// name: uppercased, with separators folded to underscores.
func envAppID(appID string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		switch r {
		case '.', '-':
			return '_'
		default:
			return r
		}
	}, appID))
}

// processEnvSource exposes the whole environment snapshot. It is the
// guaranteed-available floor of every resolution and the only source whose
// read failure is fatal.
type processEnvSource struct {
	env map[string]string
}

func (s *processEnvSource) Variant() models.SourceVariant { return models.SourceProcessEnv }

func (s *processEnvSource) Available(string) bool { return true }

func (s *processEnvSource) Read(_ context.Context, _ string) (models.ConfigMap, error) {
	return coerceMapping(s.env), nil
}

// appEnvVarsSource reads variables named PREFIX_<APPID>_<KEY>, returning
// them with the leading prefix and app id stripped.
type appEnvVarsSource struct {
	prefix string
	env    map[string]string
}

func (s *appEnvVarsSource) Variant() models.SourceVariant { return models.SourceAppEnvVars }

func (s *appEnvVarsSource) keyPrefix(appID string) string {
	return s.prefix + "_" + envAppID(appID) + "_"
}

func (s *appEnvVarsSource) Available(appID string) bool {
	want := s.keyPrefix(appID)
	for name := range s.env {
		if strings.HasPrefix(name, want) && len(name) > len(want) {
			return true
		}
	}
	return false
}

func (s *appEnvVarsSource) Read(_ context.Context, appID string) (models.ConfigMap, error) {
	want := s.keyPrefix(appID)
	out := models.ConfigMap{}
	for name, value := range s.env {
		if strings.HasPrefix(name, want) && len(name) > len(want) {
			out[name[len(want):]] = coerceValue(value)
		}
	}
	return out, nil
}

// genericEnvVarsSource reads variables named PREFIX_<KEY>. Variables that
// are app-specific spellings for the requested app id belong to the
// app-scoped source and are excluded here; other app ids cannot be told
// apart from plain keys and pass through.
type genericEnvVarsSource struct {
	prefix string
	env    map[string]string
}

func (s *genericEnvVarsSource) Variant() models.SourceVariant { return models.SourceGenericEnvVars }

func (s *genericEnvVarsSource) matches(name, appID string) (key string, ok bool) {
	want := s.prefix + "_"
	if !strings.HasPrefix(name, want) || len(name) <= len(want) {
		return "", false
	}
	if strings.HasPrefix(name, want+envAppID(appID)+"_") {
		return "", false
	}
	return name[len(want):], true
}

func (s *genericEnvVarsSource) Available(appID string) bool {
	for name := range s.env {
		if _, ok := s.matches(name, appID); ok {
			return true
		}
	}
	return false
}

func (s *genericEnvVarsSource) Read(_ context.Context, appID string) (models.ConfigMap, error) {
	out := models.ConfigMap{}
	for name, value := range s.env {
		if key, ok := s.matches(name, appID); ok {
			out[key] = coerceValue(value)
		}
	}
	return out, nil
}
