package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/preston-bernstein/picks-fixtures-service/internal/providers"
)

// Config controls how the odds client reaches The Odds API.
type Config struct {
	BaseURL    string
	APIKey     string
	Regions    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches events with head-to-head odds for a single feed.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	httpClient providers.HTTPDoer
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	regions := cfg.Regions
	if regions == "" {
		regions = defaultRegions
	}
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		apiKey:     cfg.APIKey,
		regions:    regions,
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient, timeout),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchEvents returns the events of feedKey in provider order. Without an API
// key it fails immediately with providers.ErrNotConfigured.
func (c *Client) FetchEvents(ctx context.Context, feedKey string) ([]providers.OddsEvent, error) {
	if c.apiKey == "" {
		return nil, providers.NotConfigured(providerName, apiKeySetting)
	}
	if feedKey == "" {
		return nil, providers.FetchFailed(providerName, fmt.Errorf("feed key is required"))
	}

	req, err := c.buildRequest(ctx, feedKey)
	if err != nil {
		return nil, providers.FetchFailed(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.FetchFailed(providerName, err)
	}
	defer resp.Body.Close()

	if err := providers.CheckResponse(providerName, resp); err != nil {
		if rl, ok := providers.AsRateLimitError(err); ok {
			rl.Remaining = resp.Header.Get(headerRequestsRemaining)
		}
		return nil, providers.FetchFailed(providerName, err)
	}

	var payload []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, providers.FetchFailed(providerName, fmt.Errorf("decode %s: %w", feedKey, err))
	}
	return mapEvents(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, feedKey string) (*http.Request, error) {
	endpoint := c.baseURL + "/v4/sports/" + url.PathEscape(feedKey) + "/odds"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.regions)
	q.Set("markets", marketHeadToHead)
	q.Set("oddsFormat", oddsFormat)
	q.Set("dateFormat", dateFormat)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	return req, nil
}
