// Package dates handles the YYYY-MM-DD calendar dates used across the API.
//
// Dates travel as fixed-width, zero-padded strings, so lexicographic order
// equals chronological order and callers compare them with < and <=.
package dates

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// Layout is the calendar date layout used in records and query parameters.
const Layout = "2006-01-02"

var yyyymmdd = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the UTC calendar date of now.
func Today(now time.Time) string {
	return now.UTC().Format(Layout)
}

// IsYYYYMMDD reports whether s has the YYYY-MM-DD shape. Calendar validity
// is not checked: 2024-13-99 passes.
func IsYYYYMMDD(s string) bool {
	return yyyymmdd.MatchString(s)
}

// Parse reads s as a calendar date at midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the number of days from one date to another, rounded
// up. It is negative when to is before from.
func DaysBetween(from, to string) (int, error) {
	f, err := Parse(from)
	if err != nil {
		return 0, err
	}
	t, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(t.Sub(f).Hours() / 24)), nil
}
