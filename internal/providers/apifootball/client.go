package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
	"github.com/preston-bernstein/picks-fixtures-service/internal/timeutil"
)

// Config controls how the API-Football client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches daily fixtures from API-Football.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient providers.HTTPDoer
	now        func() time.Time
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		apiKey:     cfg.APIKey,
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient, timeout),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchSchedule retrieves every fixture on date in the provider's order.
// Without an API key it fails immediately with providers.ErrNotConfigured.
func (c *Client) FetchSchedule(ctx context.Context, date string) ([]providers.ScheduledFixture, error) {
	if c.apiKey == "" {
		return nil, providers.NotConfigured(providerName, apiKeySetting)
	}

	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, providers.FetchFailed(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.FetchFailed(providerName, err)
	}
	defer resp.Body.Close()

	if err := providers.CheckResponse(providerName, resp); err != nil {
		return nil, providers.FetchFailed(providerName, err)
	}

	var payload fixturesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, providers.FetchFailed(providerName, fmt.Errorf("decode fixtures: %w", err))
	}
	if payload.hasErrors() {
		return nil, providers.FetchFailed(providerName, fmt.Errorf("api errors: %s", payload.Errors))
	}

	return mapFixtures(payload.Response), nil
}

func (c *Client) buildRequest(ctx context.Context, date string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fixtures", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("date", timeutil.DateOrToday(date, c.now()))
	req.URL.RawQuery = q.Encode()
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
