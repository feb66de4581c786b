// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-scope-config/models"
)

// RemoteEndpoint describes how to reach the remote configuration service on
// behalf of one app scope.
type RemoteEndpoint struct {
	// BaseURL is the service root, e.g. "https://config.internal:8443".
	BaseURL string

	// Token is an optional bearer credential attached to every request.
	Token string
}

// StaticCredentialStore is a fixed credential table: per-app endpoints with
// an optional generic fallback shared by every app scope.
type StaticCredentialStore struct {
	Apps    map[string]RemoteEndpoint
	Generic *RemoteEndpoint
}

func (s *StaticCredentialStore) Lookup(appID string) (RemoteEndpoint, bool) {
	if ep, ok := s.Apps[appID]; ok && ep.BaseURL != "" {
		return ep, true
	}
	if s.Generic != nil && s.Generic.BaseURL != "" {
		return *s.Generic, true
	}
	return RemoteEndpoint{}, false
}

// remoteSource fetches configuration from the remote service over HTTP.
// It is the highest-priority source: when reachable it overrides every
// local one. Any network, auth, or parse failure is returned as an error
// for the orchestrator to isolate — it never takes the resolution down.
type remoteSource struct {
	creds   CredentialStore
	client  *resty.Client
	timeout time.Duration
}

func newRemoteSource(creds CredentialStore, timeout time.Duration) *remoteSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &remoteSource{
		creds:   creds,
		client:  resty.New().SetTimeout(timeout),
		timeout: timeout,
	}
}

func (s *remoteSource) Variant() models.SourceVariant { return models.SourceRemoteService }

func (s *remoteSource) Available(appID string) bool {
	if s.creds == nil {
		return false
	}
	_, ok := s.creds.Lookup(appID)
	return ok
}

func (s *remoteSource) Read(ctx context.Context, appID string) (models.ConfigMap, error) {
	endpoint, ok := s.creds.Lookup(appID)
	if !ok {
		return nil, fmt.Errorf("no remote endpoint configured for app %q", appID)
	}

	req := s.client.R().SetContext(ctx)
	if endpoint.Token != "" {
		req.SetAuthToken(endpoint.Token)
	}

	resp, err := req.Get(strings.TrimRight(endpoint.BaseURL, "/") + "/api/config/" + appID)
	if err != nil {
		return nil, fmt.Errorf("remote config request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote config request: unexpected status %s", resp.Status())
	}

	var values models.ConfigMap
	if err := json.Unmarshal(resp.Body(), &values); err != nil {
		return nil, fmt.Errorf("remote config decode: %w", err)
	}
	return values, nil
}
