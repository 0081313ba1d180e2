package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	appfixtures "github.com/preston-bernstein/picks-fixtures-service/internal/app/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
	httpserver "github.com/preston-bernstein/picks-fixtures-service/internal/http"
	"github.com/preston-bernstein/picks-fixtures-service/internal/http/handlers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/http/middleware"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
	"github.com/preston-bernstein/picks-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers/oddsapi"
	"github.com/preston-bernstein/picks-fixtures-service/internal/ranking"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	cacheCloser   io.Closer
}

// New constructs a server wired to the real upstream providers.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProviders(cfg, logger, nil, nil, nil)
}

// newServerWithProviders lets tests inject providers and a recorder; nil values
// fall back to the configured clients and telemetry.
func newServerWithProviders(cfg config.Config, logger *slog.Logger, schedule providers.ScheduleProvider, odds providers.OddsProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if schedule == nil {
		schedule = factory.schedule(cfg)
	} else {
		schedule = factory.wrapSchedule(schedule)
	}
	if odds == nil {
		odds = factory.odds(cfg)
	} else {
		odds = factory.wrapOdds(odds)
	}

	oddsCache, cacheCloser := buildCache(cfg, logger)
	svc := appfixtures.NewService(appfixtures.Config{
		Schedule: schedule,
		Odds:     odds,
		Cache:    oddsCache,
		Ranker:   ranking.New(cfg.Leagues.TopLeagueIDs),
		Feeds:    oddsapi.NewFeeds(cfg.Leagues.SoccerFeeds, cfg.Leagues.SportFeeds),
		Timeout:  cfg.UpstreamTimeout,
		Logger:   logger,
		Metrics:  recorder,
	})

	if missing := missingCredentials(cfg); len(missing) > 0 {
		logger.Warn("upstream credentials missing", slog.Any("missing", missing))
	}
	if cfg.Admin.Token == "" {
		logger.Warn("ADMIN_TOKEN not set, /admin/fixtures will reject every request")
	}
	if len(cfg.Admin.UserIDs) == 0 {
		logger.Warn("ADMIN_USER_IDS not set, /admin/fixtures will reject every request")
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    buildHTTPServer(cfg, svc, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		cacheCloser:   cacheCloser,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, svc *appfixtures.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(logger, func() []string { return missingCredentials(cfg) })
	admin := handlers.NewAdminHandler(svc, cfg.Admin.Token, cfg.Admin.UserIDs, logger)
	router := httpserver.NewRouter(handler, admin)

	wrapped := middleware.LoggingMiddleware(logger, recorder, router)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}
	if s.cacheCloser != nil {
		if err := s.cacheCloser.Close(); err != nil {
			logging.Warn(s.logger, "cache close failed", "error", err)
		}
	}
	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}
	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
