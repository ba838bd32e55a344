package schedule

import (
	"fmt"
	"strings"
	"time"
)

// dayLayout is the wire format for dates, matching the persisted schema.
const dayLayout = "2006-01-02"

// Day is a calendar date with no time-of-day component. Two tasks touching the
// same date compare equal regardless of any clock time carried by their
// source strings.
type Day struct {
	t time.Time
}

// NewDay builds a Day from its calendar parts. Out-of-range parts normalize
// the way time.Date does (Jan 32 becomes Feb 1), which is what the grid
// walker relies on when it steps across month boundaries.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates a point in time to its calendar date.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// ParseDay decodes a stored date string. Anything after the date portion
// (an RFC 3339 clock time, for instance) is ignored.
func ParseDay(value string) (Day, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > len(dayLayout) {
		trimmed = trimmed[:len(dayLayout)]
	}
	parsed, err := time.Parse(dayLayout, trimmed)
	if err != nil {
		return Day{}, fmt.Errorf("schedule: parse date %q: %w", value, err)
	}
	return DayOf(parsed), nil
}

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Year returns the calendar year.
func (d Day) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Day) Month() time.Month { return d.t.Month() }

// DayOfMonth returns the day number within the month.
func (d Day) DayOfMonth() int { return d.t.Day() }

// Weekday returns the day of week.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Next returns the following calendar day.
func (d Day) Next() Day { return d.AddDays(1) }

// Before reports whether d falls before other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

// After reports whether d falls after other.
func (d Day) After(other Day) bool { return d.t.After(other.t) }

// Equal reports whether both values name the same calendar date.
func (d Day) Equal(other Day) bool { return d.t.Equal(other.t) }

// String renders the wire format (yyyy-mm-dd). Sorting these strings sorts
// chronologically, which the report generator depends on.
func (d Day) String() string { return d.t.Format(dayLayout) }

// Display renders the dd/mm/yyyy form used everywhere the user sees a date.
func (d Day) Display() string { return d.t.Format("02/01/2006") }

// MarshalJSON encodes the day as its wire string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes the wire string, tolerating trailing time-of-day.
func (d *Day) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseDay(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
