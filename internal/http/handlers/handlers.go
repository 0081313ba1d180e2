package handlers

import (
	"log/slog"
	"net/http"
)

// ReadinessFunc lists the settings still missing before the service can serve fixtures.
type ReadinessFunc func() []string

// Handler serves the health and readiness endpoints and the catch-all 404.
type Handler struct {
	logger    *slog.Logger
	readiness ReadinessFunc
}

// NewHandler constructs a Handler. A nil readiness func reports ready.
func NewHandler(logger *slog.Logger, readiness ReadinessFunc) *Handler {
	return &Handler{logger: logger, readiness: readiness}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether upstream credentials are configured.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	var missing []string
	if h.readiness != nil {
		missing = h.readiness()
	}
	if len(missing) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, map[string]any{
		"status":  "not ready",
		"missing": missing,
	}, h.logger)
}

// NotFound answers any unregistered path.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}
