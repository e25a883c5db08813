package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsDateTodayOrFuture(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	require.True(t, IsDateTodayOrFuture(today))
	require.True(t, IsDateTodayOrFuture(tomorrow))
	require.False(t, IsDateTodayOrFuture(yesterday))

	// Time-of-day is ignored: an RFC3339 stamp earlier today still counts.
	startOfToday := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 1, 0, time.Local)
	require.True(t, IsDateTodayOrFuture(startOfToday.Format(time.RFC3339)))

	// Admin UI month labels parse too.
	nextYear := time.Now().AddDate(1, 0, 0).Format("January 2006")
	require.True(t, IsDateTodayOrFuture(nextYear))

	require.False(t, IsDateTodayOrFuture(""))
	require.False(t, IsDateTodayOrFuture("not a date"))
}

func TestIsInstantNowOrFuture(t *testing.T) {
	require.True(t, IsInstantNowOrFuture(time.Now().Add(time.Hour).Format(time.RFC3339)))
	require.False(t, IsInstantNowOrFuture(time.Now().Add(-time.Hour).Format(time.RFC3339)))

	// Only full RFC3339 timestamps are accepted for event instants.
	require.False(t, IsInstantNowOrFuture("2030-01-02"))
	require.False(t, IsInstantNowOrFuture("soon"))
}

func TestParseDateInputLayouts(t *testing.T) {
	parsed, ok := ParseDateInput("2026-03-28")
	require.True(t, ok)
	require.Equal(t, 2026, parsed.Year())
	require.Equal(t, time.March, parsed.Month())
	require.Equal(t, 28, parsed.Day())

	_, ok = ParseDateInput("  2026-03-28T10:00:00+01:00  ")
	require.True(t, ok)

	_, ok = ParseDateInput("28/03/2026")
	require.False(t, ok)
}
