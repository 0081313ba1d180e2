// Package fixtures aggregates upstream schedules and odds into ranked fixtures.
package fixtures

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/picks-fixtures-service/internal/cache"
	domainfixtures "github.com/preston-bernstein/picks-fixtures-service/internal/domain/fixtures"
	"github.com/preston-bernstein/picks-fixtures-service/internal/logging"
	"github.com/preston-bernstein/picks-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers/oddsapi"
	"github.com/preston-bernstein/picks-fixtures-service/internal/ranking"
	"github.com/preston-bernstein/picks-fixtures-service/internal/timeutil"
)

// DefaultUpstreamTimeout bounds each upstream call when none is configured.
const DefaultUpstreamTimeout = 10 * time.Second

const cacheKeyPrefix = "oddsapi:"

// Config carries the collaborators of a Service.
type Config struct {
	Schedule providers.ScheduleProvider
	Odds     providers.OddsProvider
	Cache    *cache.Cache
	Ranker   *ranking.Ranker
	Feeds    oddsapi.Feeds
	Timeout  time.Duration
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Now      func() time.Time
}

// Service answers fixture lookups for a sport and date.
type Service struct {
	schedule providers.ScheduleProvider
	odds     providers.OddsProvider
	cache    *cache.Cache
	ranker   *ranking.Ranker
	feeds    oddsapi.Feeds
	timeout  time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// feedResult is the settled outcome of one odds feed.
type feedResult struct {
	Feed   string
	Events []providers.OddsEvent
	Err    error
}

// NewService constructs a Service, filling in defaults for anything left unset.
func NewService(cfg Config) *Service {
	s := &Service{
		schedule: cfg.Schedule,
		odds:     cfg.Odds,
		cache:    cfg.Cache,
		ranker:   cfg.Ranker,
		feeds:    cfg.Feeds,
		timeout:  cfg.Timeout,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		now:      cfg.Now,
	}
	if s.cache == nil {
		s.cache = cache.New(nil, cache.DefaultTTL)
	}
	if s.ranker == nil {
		s.ranker = ranking.New(nil)
	}
	if s.feeds.Sports == nil {
		s.feeds = oddsapi.NewFeeds(s.feeds.Soccer, nil)
	}
	if s.timeout <= 0 {
		s.timeout = DefaultUpstreamTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// GetFixtures returns the fixtures for sport on date.
//
// Soccer fixtures come from the schedule provider, ranked and enriched with
// head-to-head odds where a feed event matches. A schedule failure fails the
// call; odds failures only drop the affected feed. Every other sport is read
// from its single odds feed, whose failure is returned.
func (s *Service) GetFixtures(ctx context.Context, sport domainfixtures.Sport, date string) ([]domainfixtures.Fixture, error) {
	if sport.UsesSchedule() {
		return s.soccerFixtures(ctx, timeutil.DateOrToday(date, s.now()))
	}
	feed, ok := s.feeds.ForSport(sport)
	if !ok {
		return nil, domainfixtures.ErrUnsupportedSport
	}
	return s.feedFixtures(ctx, feed)
}

func (s *Service) soccerFixtures(ctx context.Context, date string) ([]domainfixtures.Fixture, error) {
	var schedule []providers.ScheduledFixture
	results := make([]feedResult, len(s.feeds.Soccer))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := s.fetchSchedule(gctx, date)
		if err != nil {
			return err
		}
		schedule = out
		return nil
	})
	for i, feed := range s.feeds.Soccer {
		g.Go(func() error {
			results[i] = s.loadFeed(gctx, feed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := s.indexSelections(ctx, results)
	ranking.Sort(s.ranker, schedule, leagueInfo)

	out := make([]domainfixtures.Fixture, 0, len(schedule))
	matched := 0
	for _, f := range schedule {
		var selections []domainfixtures.Selection
		if key, ok := matchKey(f.HomeTeam, f.AwayTeam); ok {
			if selections, ok = index[key]; ok {
				matched++
			}
		}
		out = append(out, fromSchedule(f).WithSelections(selections))
	}
	logging.Debug(logging.FromContext(ctx, s.logger), "soccer fixtures assembled",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(out)),
		slog.Int(logging.FieldMatched, matched),
	)
	return out, nil
}

func (s *Service) feedFixtures(ctx context.Context, feed string) ([]domainfixtures.Fixture, error) {
	res := s.loadFeed(ctx, feed)
	if res.Err != nil {
		return nil, res.Err
	}
	out := make([]domainfixtures.Fixture, 0, len(res.Events))
	for _, e := range res.Events {
		out = append(out, fromEvent(e))
	}
	return out, nil
}

func (s *Service) fetchSchedule(ctx context.Context, date string) ([]providers.ScheduledFixture, error) {
	if s.schedule == nil {
		return nil, providers.ErrProviderUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.schedule.FetchSchedule(ctx, date)
}

// loadFeed serves a feed from cache when fresh and otherwise fetches it once,
// refreshing the cache on success. It never panics or returns a bare error.
func (s *Service) loadFeed(ctx context.Context, feed string) feedResult {
	key := cacheKeyPrefix + feed
	var events []providers.OddsEvent
	if s.cache.GetJSON(ctx, key, &events) {
		s.metrics.RecordCacheLookup(feed, true)
		return feedResult{Feed: feed, Events: events}
	}
	s.metrics.RecordCacheLookup(feed, false)

	if s.odds == nil {
		return feedResult{Feed: feed, Err: providers.ErrProviderUnavailable}
	}
	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	events, err := s.odds.FetchEvents(fetchCtx, feed)
	if err != nil {
		return feedResult{Feed: feed, Err: err}
	}
	if events == nil {
		events = []providers.OddsEvent{}
	}
	s.cache.SetJSON(ctx, key, events)
	return feedResult{Feed: feed, Events: events}
}

// indexSelections merges feed results in configured order; the first event
// seen for a fixture key wins.
func (s *Service) indexSelections(ctx context.Context, results []feedResult) map[string][]domainfixtures.Selection {
	index := make(map[string][]domainfixtures.Selection)
	logger := logging.FromContext(ctx, s.logger)
	for _, res := range results {
		if res.Err != nil {
			logging.Warn(logger, "odds feed skipped",
				slog.String(logging.FieldFeed, res.Feed),
				slog.Any("error", res.Err),
			)
			continue
		}
		for _, e := range res.Events {
			key, ok := matchKey(e.HomeTeam, e.AwayTeam)
			if !ok {
				continue
			}
			if _, seen := index[key]; !seen {
				index[key] = e.Selections
			}
		}
	}
	return index
}
