package providers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotConfigured means a required credential is absent; no network call was made.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrFetchFailed wraps transport errors, timeouts and non-success responses.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrProviderUnavailable is returned by wrappers with no inner provider.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// NotConfigured reports a missing credential for provider.
func NotConfigured(provider, setting string) error {
	return fmt.Errorf("%s: %w: %s missing", provider, ErrNotConfigured, setting)
}

// FetchFailed wraps err so callers can match ErrFetchFailed and the cause.
func FetchFailed(provider string, err error) error {
	return fmt.Errorf("%s: %w: %w", provider, ErrFetchFailed, err)
}

// StatusError captures a non-success HTTP response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s responded with %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s responded with %d: %s", e.Provider, e.StatusCode, e.Body)
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// ParseRetryAfter reads a Retry-After header given in seconds. Anything else yields zero.
func ParseRetryAfter(raw string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
