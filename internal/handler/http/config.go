package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-scope-config/internal/logger"
	"github.com/MKhiriev/go-scope-config/internal/utils"
	"github.com/MKhiriev/go-scope-config/models"
)

func (h *Handler) getAppConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	appID := chi.URLParam(r, "appID")

	resolved, err := h.provider.GetAppConfiguration(ctx, appID)
	if err != nil {
		log.Error().Err(err).Str("app_id", appID).Msg("error resolving app configuration")
		writeFailure(w, err)
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{
		Success:   true,
		Data:      resolved.Values,
		Timestamp: resolved.ResolvedAt.UnixMilli(),
	}, http.StatusOK)
}

func (h *Handler) getConfigurationValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	appID := chi.URLParam(r, "appID")

	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, "missing `key` query parameter", http.StatusBadRequest)
		return
	}

	value, found, err := h.provider.GetConfigurationValue(ctx, appID, key)
	if err != nil {
		log.Error().Err(err).Str("app_id", appID).Str("key", key).Msg("error looking up configuration value")
		writeFailure(w, err)
		return
	}
	if !found {
		writeError(w, "key not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{
		Success:   true,
		Data:      value,
		Timestamp: time.Now().UnixMilli(),
	}, http.StatusOK)
}

func (h *Handler) refreshConfiguration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	appID := chi.URLParam(r, "appID")

	resolved, err := h.provider.RefreshConfiguration(ctx, appID)
	if err != nil {
		log.Error().Err(err).Str("app_id", appID).Msg("error refreshing app configuration")
		writeFailure(w, err)
		return
	}

	utils.WriteJSON(w, models.ConfigResponse{
		Success:   true,
		Data:      resolved.Values,
		Timestamp: resolved.ResolvedAt.UnixMilli(),
	}, http.StatusOK)
}

func (h *Handler) invalidateConfiguration(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")

	h.provider.InvalidateConfiguration(appID)

	utils.WriteJSON(w, models.ConfigResponse{
		Success:   true,
		Timestamp: time.Now().UnixMilli(),
	}, http.StatusOK)
}

func writeFailure(w http.ResponseWriter, err error) {
	writeError(w, err.Error(), statusFromError(err))
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ConfigResponse{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UnixMilli(),
	}, statusCode)
}
