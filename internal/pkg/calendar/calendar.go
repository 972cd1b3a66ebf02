// Package calendar answers "what day is it" for the business's civil calendar.
//
// Calendar dates are carried as time.Time values at midnight UTC, which is how
// pgx scans DATE columns, so dates read from the database and dates produced
// here compare directly.
package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DateLayout = "2006-01-02"

type Calendar struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Calendar)

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) {
		c.now = now
	}
}

func New(timezone string, opts ...Option) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	c := &Calendar{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New for fixed, known-good timezones.
func MustNew(timezone string, opts ...Option) *Calendar {
	c, err := New(timezone, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the calendar's timezone.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current civil date.
func (c *Calendar) Today() time.Time {
	return Date(c.Now())
}

// IsFuture reports whether date is strictly after today.
func (c *Calendar) IsFuture(date time.Time) bool {
	return Date(date).After(c.Today())
}

// IsFuturePeriod reports whether (year, month) starts after the current month.
func (c *Calendar) IsFuturePeriod(year, month int) bool {
	today := c.Today()
	current := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).After(current)
}

// Date truncates t to its calendar day, keeping t's own year/month/day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthRange returns the first and last day of the month, both inclusive.
func MonthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
