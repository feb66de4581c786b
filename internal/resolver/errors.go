// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scope-config/models"
)

var (
	// ErrInvalidAppID is returned when the caller passes an empty or
	// malformed app id. No source is touched in that case.
	ErrInvalidAppID = errors.New("invalid app id")

	// ErrFatalEnvironment is returned when the process environment — the
	// guaranteed-available floor source — cannot be read. This is the only
	// source failure that aborts a resolution.
	ErrFatalEnvironment = errors.New("process environment unreadable")

	// ErrRefreshFailed is returned by RefreshConfiguration when the forced
	// re-resolution fails. The previously cached configuration, if any,
	// remains valid.
	ErrRefreshFailed = errors.New("configuration refresh failed")
)

// SourceReadError records the failure of a single available source during
// one resolution attempt. It never aborts the resolution; the orchestrator
// collects these for diagnostics and the failing source simply contributes
// no keys.
type SourceReadError struct {
	Variant models.SourceVariant
	AppID   string
	Err     error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("source %s failed for app %q: %v", e.Variant, e.AppID, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
