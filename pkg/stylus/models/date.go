// Package models defines the canonical portfolio data structures.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the canonical ISO-8601 string form of a Date.
const DateFormat = "2006-01-02"

// dateLayouts are the header formats accepted on read, in match order.
// Covers ISO dates plus the formats Excel commonly renders date cells in.
var dateLayouts = []string{
	DateFormat,
	"2006-1-2",
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"2006/01/02",
}

// Date represents a calendar date with day granularity, no time of day
// and no time zone. The zero value is the zero time's date.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.Time().Date()
	return d
}

// Time returns the canonical time.Time for the date (midnight UTC).
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.Time().Before(x.Time()) }

// After reports whether d is after x.
func (d Date) After(x Date) bool { return d.Time().After(x.Time()) }

// String formats the date in its canonical ISO-8601 form.
func (d Date) String() string { return d.Time().Format(DateFormat) }

// ParseDate parses a date from any of the accepted header layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q, want format %q", s, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}
