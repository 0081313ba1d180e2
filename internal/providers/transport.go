package providers

import (
	"io"
	"net/http"
	"strings"
	"time"
)

const errorBodyLimit = 512

// HTTPDoer is the subset of *http.Client the provider clients need.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResolveHTTPClient returns client, or a default client bounded by timeout.
func ResolveHTTPClient(client *http.Client, timeout time.Duration) HTTPDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

// NormalizeBaseURL applies a default and trims any trailing slash.
func NormalizeBaseURL(raw, defaultURL string) string {
	if raw == "" {
		raw = defaultURL
	}
	return strings.TrimSuffix(raw, "/")
}

// CheckResponse turns a non-2xx response into a RateLimitError or StatusError.
// The body is read (up to a small limit) only on failure; the caller still owns closing it.
func CheckResponse(provider string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(body))
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    msg,
		}
	}
	return &StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: msg}
}
