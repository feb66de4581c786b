package http

import (
	"github.com/MKhiriev/go-scope-config/internal/logger"
	"github.com/MKhiriev/go-scope-config/internal/resolver"
)

type Handler struct {
	provider resolver.Provider

	logger *logger.Logger
}

func NewHandler(provider resolver.Provider, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}
