package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates, matching the backup files.
const DateFormat = "2006-01-02"

// Date is a calendar date with day precision. It marshals as YYYY-MM-DD and
// treats null or empty values as absent, so backups written by older versions
// still parse.
type Date struct {
	t time.Time
}

// NewDate creates a date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as a time.Time anchored at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports calendar-day equality.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.t.Year()
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateFormat)
}

// MarshalJSON encodes the date as "YYYY-MM-DD", or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", null, or the empty string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
