package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService        = "service"
	FieldVersion        = "version"
	FieldProvider       = "provider"
	FieldFeed           = "feed"
	FieldSport          = "sport"
	FieldCacheKey       = "cache_key"
	FieldRequestID      = "request_id"
	FieldPath           = "path"
	FieldMethod         = "method"
	FieldStatusCode     = "status_code"
	FieldDate           = "date"
	FieldCount          = "count"
	FieldMatched        = "matched"
	FieldDurationMS     = "duration_ms"
	FieldQuotaRemaining = "quota_remaining"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
