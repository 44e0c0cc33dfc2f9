package model

import (
	"fmt"
	"strings"
	"time"
)

// MonthKey identifies one billing month. Index is zero-based (January = 0),
// which is how fee records have always been stored.
type MonthKey struct {
	Year  int
	Index int
}

// MonthOf returns the billing month containing the given time.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Index: int(t.Month()) - 1}
}

// MonthOfDate returns the billing month containing the given date.
func MonthOfDate(d Date) MonthKey {
	return MonthOf(d.Time())
}

// ParseMonth parses a YYYY-MM string into a month key.
func ParseMonth(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return MonthKey{}, fmt.Errorf("failed to parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Anchor returns the first day of the month as a calendar date. Month
// ordering comparisons use these anchors.
func (m MonthKey) Anchor() time.Time {
	return time.Date(m.Year, time.Month(m.Index+1), 1, 0, 0, 0, 0, time.UTC)
}

// Before reports whether m precedes other.
func (m MonthKey) Before(other MonthKey) bool {
	return m.Anchor().Before(other.Anchor())
}

// Contains reports whether the given date falls inside this month.
func (m MonthKey) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return d.Year() == m.Year && int(d.Month())-1 == m.Index
}

// AddMonths returns the month n months after m (negative n steps back).
// time.Date normalizes out-of-range months, so year boundaries just work.
func (m MonthKey) AddMonths(n int) MonthKey {
	return MonthOf(m.Anchor().AddDate(0, n, 0))
}

// String renders the month as "January 2006".
func (m MonthKey) String() string {
	return m.Anchor().Format("January 2006")
}

// Short renders the month as "Jan".
func (m MonthKey) Short() string {
	return m.Anchor().Format("Jan")
}
