package utils

import (
	"regexp"
	"strings"
	"time"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// fallback layouts accepted besides YYYY-MM-DD and RFC3339
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"January 2006",
	"2 January 2006",
}

// ParseDateInput accepts a plain YYYY-MM-DD date (interpreted in local
// time), an RFC3339 timestamp, or one of a few admin-UI layouts.
func ParseDateInput(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	if dateOnlyPattern.MatchString(trimmed) {
		t, err := time.ParseInLocation("2006-01-02", trimmed, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// IsDateTodayOrFuture compares calendar days in local time; the
// time-of-day portion is ignored. Unparseable input is rejected.
func IsDateTodayOrFuture(value string) bool {
	selected, ok := ParseDateInput(value)
	if !ok {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	day := time.Date(selected.Year(), selected.Month(), selected.Day(), 0, 0, 0, 0, time.Local)
	return !day.Before(today)
}

// IsInstantNowOrFuture validates an RFC3339 timestamp against the
// current instant (not the calendar day).
func IsInstantNowOrFuture(value string) bool {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return !t.Before(time.Now())
}

