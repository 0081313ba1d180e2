package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainfixtures "github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/http/requestutil"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/timeutil"
)

const headerUserID = "X-User-ID"

// FixtureService is the aggregator behind the admin fixtures endpoint.
type FixtureService interface {
	GetFixtures(ctx context.Context, sport domainfixtures.Sport, date string) ([]domainfixtures.Fixture, error)
}

// AdminHandler exposes the admin-only fixtures lookup used by the pick-authoring UI.
type AdminHandler struct {
	svc     FixtureService
	token   string
	userIDs map[string]struct{}
	logger  *slog.Logger
	now     func() time.Time
}

// NewAdminHandler constructs an AdminHandler. Callers need the token and an
// X-User-ID from userIDs; an empty token or list rejects every request.
func NewAdminHandler(svc FixtureService, token string, userIDs []string, logger *slog.Logger) *AdminHandler {
	allowed := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id = strings.TrimSpace(id); id != "" {
			allowed[id] = struct{}{}
		}
	}
	return &AdminHandler{
		svc:     svc,
		token:   token,
		userIDs: allowed,
		logger:  logger,
		now:     time.Now,
	}
}

// Fixtures returns fixtures for ?sport= (default soccer) and ?date= (default today, UTC).
// Aggregator failures are reported as 200 with an empty list and an error message.
func (h *AdminHandler) Fixtures(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if status, ok := h.authorize(r); !ok {
		logging.Warn(logger, "admin fixtures rejected",
			slog.Int(logging.FieldStatusCode, status),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, status, http.StatusText(status), logger)
		return
	}

	query := r.URL.Query()
	sport, err := domainfixtures.ParseSport(query.Get("sport"))
	if err != nil {
		logging.Warn(logger, "admin fixtures unsupported sport", slog.String(logging.FieldSport, query.Get("sport")))
		writeFixtures(w, r, http.StatusOK, domainfixtures.ErrorResponse(errorMessage(err)), logger)
		return
	}
	date := strings.TrimSpace(query.Get("date"))
	if date == "" {
		date = timeutil.TodayUTC(h.now())
	} else if !timeutil.IsDate(date) {
		writeFixtures(w, r, http.StatusBadRequest, domainfixtures.ErrorResponse("invalid date format (expected YYYY-MM-DD)"), logger)
		return
	}

	if h.svc == nil {
		writeFixtures(w, r, http.StatusOK, domainfixtures.ErrorResponse(errorMessage(providers.ErrProviderUnavailable)), logger)
		return
	}

	fixtures, err := h.svc.GetFixtures(r.Context(), sport, date)
	if err != nil {
		logging.Warn(logger, "admin fixtures failed",
			slog.String(logging.FieldSport, string(sport)),
			slog.String(logging.FieldDate, date),
			slog.Any("error", err),
		)
		writeFixtures(w, r, http.StatusOK, domainfixtures.ErrorResponse(errorMessage(err)), logger)
		return
	}

	logging.Info(logger, "admin fixtures served",
		slog.String(logging.FieldSport, string(sport)),
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(fixtures)),
	)
	writeFixtures(w, r, http.StatusOK, domainfixtures.NewResponse(fixtures), logger)
}

func (h *AdminHandler) authorize(r *http.Request) (int, bool) {
	token, ok := requestutil.BearerToken(r)
	if h.token == "" || !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
		return http.StatusUnauthorized, false
	}
	if _, ok := h.userIDs[strings.TrimSpace(r.Header.Get(headerUserID))]; !ok {
		return http.StatusForbidden, false
	}
	return http.StatusOK, true
}

// errorMessage keeps upstream detail (URLs carrying API keys, response bodies) out of responses.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, providers.ErrNotConfigured):
		return "fixture provider not configured"
	case errors.Is(err, domainfixtures.ErrUnsupportedSport):
		return "unsupported sport"
	case errors.Is(err, context.DeadlineExceeded):
		return "fixture provider timed out"
	case errors.Is(err, providers.ErrFetchFailed):
		return "failed to fetch fixtures"
	default:
		return "fixtures unavailable"
	}
}
