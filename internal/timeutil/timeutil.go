package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsDate reports whether value is a well-formed YYYY-MM-DD calendar date.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// TodayUTC returns the UTC calendar date of now.
func TodayUTC(now time.Time) string {
	return FormatDate(now.UTC())
}

// DateOrToday keeps a valid date and otherwise falls back to today in UTC.
func DateOrToday(value string, now time.Time) string {
	if value != "" && IsDate(value) {
		return value
	}
	return TodayUTC(now)
}
