package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scope-config/internal/resolver"
)

// errorStatuses is checked in order: a refresh failure may wrap a fatal
// environment error, and the refresh mapping is the one callers should see.
var errorStatuses = []struct {
	target error
	status int
}{
	{resolver.ErrInvalidAppID, http.StatusBadRequest},
	{resolver.ErrRefreshFailed, http.StatusBadGateway},
	{resolver.ErrFatalEnvironment, http.StatusInternalServerError},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{context.Canceled, http.StatusRequestTimeout},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.target) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}
