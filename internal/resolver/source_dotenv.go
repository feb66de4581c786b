// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-scope-config/models"
)

// dotenvSource reads one key=value file via godotenv, which tolerates blank
// lines and # comments. The two dotenv variants differ only in how they
// derive the file path from the app id.
type dotenvSource struct {
	variant models.SourceVariant
	path    func(appID string) string
}

// newRootDotEnvSource reads the shared .env file at the configuration root
// directory. The same file applies to every app scope.
func newRootDotEnvSource(dir string) *dotenvSource {
	return &dotenvSource{
		variant: models.SourceRootDotEnv,
		path: func(string) string {
			return filepath.Join(dir, ".env")
		},
	}
}

// newAppDotEnvSource reads the per-application .env.<appid> file from the
// configuration root directory.
func newAppDotEnvSource(dir string) *dotenvSource {
	return &dotenvSource{
		variant: models.SourceAppDotEnv,
		path: func(appID string) string {
			return filepath.Join(dir, ".env."+appID)
		},
	}
}

func (s *dotenvSource) Variant() models.SourceVariant { return s.variant }

func (s *dotenvSource) Available(appID string) bool {
	info, err := os.Stat(s.path(appID))
	return err == nil && info.Mode().IsRegular()
}

func (s *dotenvSource) Read(_ context.Context, appID string) (models.ConfigMap, error) {
	values, err := godotenv.Read(s.path(appID))
	if err != nil {
		return nil, fmt.Errorf("reading dotenv file %s: %w", s.path(appID), err)
	}
	return coerceMapping(values), nil
}
