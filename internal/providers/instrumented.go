package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
	"github.com/preston-bernstein/picks-fixtures-service/internal/metrics"
)

// instrumentedSchedule wraps a ScheduleProvider with metrics and failure logging.
// It never retries; a failed call is reported to the caller as-is.
type instrumentedSchedule struct {
	inner        ScheduleProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
}

// NewInstrumentedScheduleProvider wraps inner with per-call metrics and logging.
func NewInstrumentedScheduleProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) ScheduleProvider {
	if providerName == "" {
		providerName = "schedule"
	}
	return &instrumentedSchedule{inner: inner, logger: logger, metrics: recorder, providerName: providerName}
}

func (p *instrumentedSchedule) FetchSchedule(ctx context.Context, date string) ([]ScheduledFixture, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	out, err := p.inner.FetchSchedule(ctx, date)
	observe(ctx, p.logger, p.metrics, p.providerName, start, err, slog.String(logging.FieldDate, date))
	return out, err
}

// instrumentedOdds wraps an OddsProvider with metrics and failure logging.
type instrumentedOdds struct {
	inner        OddsProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
}

// NewInstrumentedOddsProvider wraps inner with per-call metrics and logging.
func NewInstrumentedOddsProvider(inner OddsProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) OddsProvider {
	if providerName == "" {
		providerName = "odds"
	}
	return &instrumentedOdds{inner: inner, logger: logger, metrics: recorder, providerName: providerName}
}

func (p *instrumentedOdds) FetchEvents(ctx context.Context, feedKey string) ([]OddsEvent, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	out, err := p.inner.FetchEvents(ctx, feedKey)
	observe(ctx, p.logger, p.metrics, p.providerName, start, err, slog.String(logging.FieldFeed, feedKey))
	return out, err
}

func observe(ctx context.Context, logger *slog.Logger, recorder *metrics.Recorder, provider string, start time.Time, err error, attrs ...any) {
	// A missing credential never reaches the network, so it is not an attempt.
	if errors.Is(err, ErrNotConfigured) {
		logWithProvider(ctx, logger, slog.LevelWarn, provider, "provider not configured", append(attrs, slog.Any("error", err))...)
		return
	}
	duration := time.Since(start)
	recorder.RecordProviderAttempt(provider, duration, err)
	if rl, ok := AsRateLimitError(err); ok {
		recorder.RecordRateLimit(provider, rl.RetryAfter)
		if rl.Remaining != "" {
			attrs = append(attrs, slog.String(logging.FieldQuotaRemaining, rl.Remaining))
		}
	}
	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, provider, "provider fetch failed", append(attrs, slog.Any("error", err))...)
		return
	}
	logWithProvider(ctx, logger, slog.LevelDebug, provider, "provider fetch complete", attrs...)
}
