package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCalendar(t *testing.T, instant time.Time) *Calendar {
	t.Helper()
	c, err := New("Asia/Kuala_Lumpur", WithClock(func() time.Time { return instant }))
	require.NoError(t, err)
	return c
}

func TestToday_UsesMalaysianCivilDay(t *testing.T) {
	// 17:30 UTC on the 15th is 01:30 on the 16th in Kuala Lumpur
	c := fixedCalendar(t, time.Date(2025, 10, 15, 17, 30, 0, 0, time.UTC))

	assert.Equal(t, "2025-10-16", FormatDate(c.Today()))
}

func TestIsFuture(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 10, 15, 17, 30, 0, 0, time.UTC))

	today, _ := ParseDate("2025-10-16")
	tomorrow, _ := ParseDate("2025-10-17")
	yesterday, _ := ParseDate("2025-10-15")

	assert.False(t, c.IsFuture(today))
	assert.False(t, c.IsFuture(yesterday))
	assert.True(t, c.IsFuture(tomorrow))
}

func TestIsFuturePeriod(t *testing.T) {
	c := fixedCalendar(t, time.Date(2025, 10, 31, 18, 0, 0, 0, time.UTC)) // 2025-11-01 in KL

	assert.False(t, c.IsFuturePeriod(2025, 10))
	assert.False(t, c.IsFuturePeriod(2025, 11))
	assert.True(t, c.IsFuturePeriod(2025, 12))
	assert.True(t, c.IsFuturePeriod(2026, 1))
	assert.False(t, c.IsFuturePeriod(2024, 12))
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2024, 2)
	assert.Equal(t, "2024-02-01", FormatDate(from))
	assert.Equal(t, "2024-02-29", FormatDate(to))

	from, to = MonthRange(2025, 12)
	assert.Equal(t, "2025-12-01", FormatDate(from))
	assert.Equal(t, "2025-12-31", FormatDate(to))
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons")
	assert.Error(t, err)
}
