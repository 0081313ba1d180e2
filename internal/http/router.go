package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/picks-fixtures-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. A nil admin handler leaves
// /admin/fixtures unregistered.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	if admin != nil {
		mux.HandleFunc("/admin/fixtures", admin.Fixtures)
	}
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
