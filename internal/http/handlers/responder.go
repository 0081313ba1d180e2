package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainfixtures "github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/http/middleware"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFixtures always emits a fixtures array, empty when there is an error.
func writeFixtures(w http.ResponseWriter, r *http.Request, status int, resp domainfixtures.Response, logger *slog.Logger) {
	if resp.Fixtures == nil {
		resp.Fixtures = []domainfixtures.Fixture{}
	}
	if resp.Error != "" {
		resp.RequestID = requestID(r)
	}
	writeJSON(w, status, resp, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if reqID := middleware.RequestIDFromContext(r.Context()); reqID != "" {
		return reqID
	}
	return r.Header.Get("X-Request-ID")
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
