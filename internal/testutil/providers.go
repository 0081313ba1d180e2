package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
)

// ScheduleStub returns canned fixtures or an error and counts calls.
type ScheduleStub struct {
	Fixtures []providers.ScheduledFixture
	Err      error

	calls    atomic.Int32
	mu       sync.Mutex
	lastDate string
}

func (s *ScheduleStub) FetchSchedule(ctx context.Context, date string) ([]providers.ScheduledFixture, error) {
	_ = ctx
	s.calls.Add(1)
	s.mu.Lock()
	s.lastDate = date
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]providers.ScheduledFixture, len(s.Fixtures))
	copy(out, s.Fixtures)
	return out, nil
}

// Calls returns how many times FetchSchedule ran.
func (s *ScheduleStub) Calls() int {
	return int(s.calls.Load())
}

// LastDate returns the date of the most recent call.
func (s *ScheduleStub) LastDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDate
}

// OddsStub serves canned events per feed and counts calls per feed.
// Feeds without events or an error return an empty list.
type OddsStub struct {
	Events map[string][]providers.OddsEvent
	Errs   map[string]error

	mu    sync.Mutex
	calls map[string]int
}

func (s *OddsStub) FetchEvents(ctx context.Context, feedKey string) ([]providers.OddsEvent, error) {
	_ = ctx
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[feedKey]++
	s.mu.Unlock()
	if err, ok := s.Errs[feedKey]; ok && err != nil {
		return nil, err
	}
	return s.Events[feedKey], nil
}

// FeedCalls returns how many times feedKey was fetched.
func (s *OddsStub) FeedCalls(feedKey string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[feedKey]
}

// TotalCalls returns the number of fetches across all feeds.
func (s *OddsStub) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// BlockingOdds waits for the context to end, mimicking a hung upstream.
type BlockingOdds struct{}

func (BlockingOdds) FetchEvents(ctx context.Context, feedKey string) ([]providers.OddsEvent, error) {
	_ = feedKey
	<-ctx.Done()
	return nil, providers.FetchFailed("blocking", ctx.Err())
}

// UnavailableSchedule returns ErrProviderUnavailable.
type UnavailableSchedule struct{}

func (UnavailableSchedule) FetchSchedule(ctx context.Context, date string) ([]providers.ScheduledFixture, error) {
	return nil, providers.ErrProviderUnavailable
}

// BlockingSchedule waits for the context to end, mimicking a hung upstream.
type BlockingSchedule struct{}

func (BlockingSchedule) FetchSchedule(ctx context.Context, date string) ([]providers.ScheduledFixture, error) {
	_ = date
	<-ctx.Done()
	return nil, providers.FetchFailed("blocking", ctx.Err())
}
