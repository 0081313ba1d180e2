package server

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/picks-fixtures-service/internal/config"
	"github.com/preston-bernstein/picks-fixtures-service/internal/metrics"
	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
)

func TestProviderFactoryBuildsInstrumentedClients(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	cfg := config.Config{}

	schedule := factory.schedule(cfg)
	odds := factory.odds(cfg)
	if schedule == nil || odds == nil {
		t.Fatalf("expected providers")
	}

	// Without keys the clients refuse before touching the network.
	if _, err := schedule.FetchSchedule(context.Background(), "2024-05-04"); !errors.Is(err, providers.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := odds.FetchEvents(context.Background(), "soccer_epl"); !errors.Is(err, providers.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if rec.ProviderCalls(scheduleProviderName) != 0 || rec.ProviderCalls(oddsProviderName) != 0 {
		t.Fatalf("missing credentials must not count as attempts")
	}
}

func TestMissingCredentials(t *testing.T) {
	cases := []struct {
		name     string
		cfg      config.Config
		expected []string
	}{
		{"none", config.Config{}, []string{"API_FOOTBALL_KEY", "ODDS_API_KEY"}},
		{"schedule only", config.Config{APIFootball: config.APIFootballConfig{APIKey: "a"}}, []string{"ODDS_API_KEY"}},
		{"both", config.Config{
			APIFootball: config.APIFootballConfig{APIKey: "a"},
			OddsAPI:     config.OddsAPIConfig{APIKey: "b"},
		}, nil},
	}
	for _, c := range cases {
		got := missingCredentials(c.cfg)
		if len(got) != len(c.expected) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.expected, got)
		}
		for i := range got {
			if got[i] != c.expected[i] {
				t.Fatalf("%s: expected %v, got %v", c.name, c.expected, got)
			}
		}
	}
}

type namedStub struct{ name string }

func (n namedStub) Name() string { return n.name }

func TestProviderNamePrefersClientName(t *testing.T) {
	cases := []struct {
		p        any
		expected string
	}{
		{namedStub{name: "custom"}, "custom"},
		{namedStub{}, "fallback"},
		{struct{}{}, "fallback"},
	}
	for _, c := range cases {
		if got := providerName(c.p, "fallback"); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestProviderFactoryNamesMatchClients(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	cfg := config.Config{
		APIFootball: config.APIFootballConfig{APIKey: "k", BaseURL: "http://127.0.0.1:0"},
		OddsAPI:     config.OddsAPIConfig{APIKey: "k", BaseURL: "http://127.0.0.1:0"},
	}

	_, _ = factory.schedule(cfg).FetchSchedule(context.Background(), "2024-05-04")
	_, _ = factory.odds(cfg).FetchEvents(context.Background(), "soccer_epl")

	if rec.ProviderErrors(scheduleProviderName) != 1 || rec.ProviderErrors(oddsProviderName) != 1 {
		t.Fatalf("expected failed attempts under client names, got schedule=%d odds=%d",
			rec.ProviderErrors(scheduleProviderName), rec.ProviderErrors(oddsProviderName))
	}
}
