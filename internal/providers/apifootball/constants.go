package apifootball

import "time"

const (
	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHTTPTimeout = 10 * time.Second
	apiKeyHeader       = "x-apisports-key"
	apiKeySetting      = "API_FOOTBALL_KEY"
)
