// Package types implements special types for the expense tracker.
package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a calendar month in a specific location. Its underlying time is
// the first instant of the month, local midnight of day 1 in that location.
type Month time.Time

// NewMonth returns a new Month in the given location.
func NewMonth(year int, month time.Month, loc *time.Location) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" string into the Month it represents in the
// given location.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in the YYYY-MM format that
// MarshalJSON emits. The location of the parsed month is UTC.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value, time.UTC)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// FirstInstant returns the first instant of the month.
func (m Month) FirstInstant() time.Time {
	return time.Time(m)
}

// NextMonth returns the following month, rolling over December into January
// of the next year.
func (m Month) NextMonth() Month {
	return m.AddDate(0, 1)
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// ContainsInstant reports whether the time instant falls into the half-open
// window [first instant of the month, first instant of the next month).
//
// The boundaries are instants, so the comparison is absolute. Comparing year
// and month numbers without converting into the window's location first is
// off by up to a day near month boundaries.
func (m Month) ContainsInstant(t time.Time) bool {
	start := time.Time(m)
	return !t.Before(start) && t.Before(start.AddDate(0, 1, 0))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}
