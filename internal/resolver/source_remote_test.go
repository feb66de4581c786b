// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-scope-config/models"
)

// ── StaticCredentialStore ────────────────────────────────────────────────────

// TestStaticCredentialStore_AppSpecificPreferred verifies the lookup order:
// app-specific credentials first, generic fallback second.
func TestStaticCredentialStore_AppSpecificPreferred(t *testing.T) {
	store := &StaticCredentialStore{
		Apps: map[string]RemoteEndpoint{
			"admin": {BaseURL: "https://admin-config", Token: "admin-token"},
		},
		Generic: &RemoteEndpoint{BaseURL: "https://generic-config"},
	}

	ep, ok := store.Lookup("admin")
	require.True(t, ok)
	assert.Equal(t, "https://admin-config", ep.BaseURL)

	ep, ok = store.Lookup("client")
	require.True(t, ok)
	assert.Equal(t, "https://generic-config", ep.BaseURL)
}

// TestStaticCredentialStore_NothingConfigured verifies that an empty store
// reports no endpoint for any app id.
func TestStaticCredentialStore_NothingConfigured(t *testing.T) {
	store := &StaticCredentialStore{}

	_, ok := store.Lookup("admin")
	assert.False(t, ok)
}

// ── remoteSource ─────────────────────────────────────────────────────────────

// TestRemoteSource_Availability verifies that availability mirrors the
// credential store contents.
func TestRemoteSource_Availability(t *testing.T) {
	src := newRemoteSource(&StaticCredentialStore{
		Apps: map[string]RemoteEndpoint{"admin": {BaseURL: "https://config"}},
	}, time.Second)

	assert.True(t, src.Available("admin"))
	assert.False(t, src.Available("ghost"))
	assert.Equal(t, models.SourceRemoteService, src.Variant())
}

// TestRemoteSource_NilCredentialStore verifies that a missing credential
// store leaves the source unavailable rather than panicking.
func TestRemoteSource_NilCredentialStore(t *testing.T) {
	src := newRemoteSource(nil, time.Second)

	assert.False(t, src.Available("admin"))
}

// TestRemoteSource_ReadSuccess verifies the happy path: GET to the app's
// config path, bearer token attached, JSON object decoded as-is.
func TestRemoteSource_ReadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/config/admin", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"api.url": "remote-value", "limits": {"max": 10}}`))
	}))
	defer srv.Close()

	src := newRemoteSource(&StaticCredentialStore{
		Generic: &RemoteEndpoint{BaseURL: srv.URL, Token: "secret"},
	}, time.Second)

	values, err := src.Read(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "remote-value", values["api.url"])
	assert.Equal(t, models.ConfigMap{"max": 10.0}, values["limits"])
}

// TestRemoteSource_ReadErrorStatus verifies that a non-2xx response is a
// read failure carrying the status.
func TestRemoteSource_ReadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := newRemoteSource(&StaticCredentialStore{
		Generic: &RemoteEndpoint{BaseURL: srv.URL},
	}, time.Second)

	_, err := src.Read(context.Background(), "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

// TestRemoteSource_ReadMalformedBody verifies that a non-object JSON body
// is a read failure, not an empty mapping.
func TestRemoteSource_ReadMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["not", "an", "object"]`))
	}))
	defer srv.Close()

	src := newRemoteSource(&StaticCredentialStore{
		Generic: &RemoteEndpoint{BaseURL: srv.URL},
	}, time.Second)

	_, err := src.Read(context.Background(), "admin")
	require.Error(t, err)
}

// TestRemoteSource_ReadTimeout verifies that a slow remote service turns
// into a read failure once the configured timeout elapses.
func TestRemoteSource_ReadTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block) // unblock the handler before Close waits on it

	src := newRemoteSource(&StaticCredentialStore{
		Generic: &RemoteEndpoint{BaseURL: srv.URL},
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := src.Read(context.Background(), "admin")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

// TestRemoteSource_ReadRespectsContext verifies that cancelling the calling
// context aborts the in-flight request.
func TestRemoteSource_ReadRespectsContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block) // unblock the handler before Close waits on it

	src := newRemoteSource(&StaticCredentialStore{
		Generic: &RemoteEndpoint{BaseURL: srv.URL},
	}, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := src.Read(ctx, "admin")
	require.Error(t, err)
}
