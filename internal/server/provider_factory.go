package server

import (
	"log/slog"

	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
	"github.com/preston-bernstein/picks-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers/apifootball"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers/oddsapi"
)

const (
	scheduleProviderName = "apifootball"
	oddsProviderName     = "oddsapi"
)

// providerFactory assembles the upstream clients with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) schedule(cfg config.Config) providers.ScheduleProvider {
	client := apifootball.NewClient(apifootball.Config{
		BaseURL: cfg.APIFootball.BaseURL,
		APIKey:  cfg.APIFootball.APIKey,
		Timeout: cfg.UpstreamTimeout,
	})
	return f.wrapSchedule(client)
}

func (f providerFactory) odds(cfg config.Config) providers.OddsProvider {
	client := oddsapi.NewClient(oddsapi.Config{
		BaseURL: cfg.OddsAPI.BaseURL,
		APIKey:  cfg.OddsAPI.APIKey,
		Regions: cfg.OddsAPI.Regions,
		Timeout: cfg.UpstreamTimeout,
	})
	return f.wrapOdds(client)
}

func (f providerFactory) wrapSchedule(p providers.ScheduleProvider) providers.ScheduleProvider {
	return providers.NewInstrumentedScheduleProvider(p, f.logger, f.metrics, providerName(p, scheduleProviderName))
}

func (f providerFactory) wrapOdds(p providers.OddsProvider) providers.OddsProvider {
	return providers.NewInstrumentedOddsProvider(p, f.logger, f.metrics, providerName(p, oddsProviderName))
}

type namedProvider interface {
	Name() string
}

// providerName prefers the provider's own name so metrics and logs match its errors.
func providerName(p any, fallback string) string {
	if named, ok := p.(namedProvider); ok && named.Name() != "" {
		return named.Name()
	}
	return fallback
}

// missingCredentials lists the upstream keys that are not configured.
func missingCredentials(cfg config.Config) []string {
	var missing []string
	if cfg.APIFootball.APIKey == "" {
		missing = append(missing, "API_FOOTBALL_KEY")
	}
	if cfg.OddsAPI.APIKey == "" {
		missing = append(missing, "ODDS_API_KEY")
	}
	return missing
}
