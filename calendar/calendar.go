// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides exact conversion between the proleptic
// Gregorian and Julian calendars and the computation of Julian Day Numbers
// for dates in either calendar.
//
// Years use astronomical numbering: year 0 exists (it is 1 BC) and
// negative years continue the calendar into the past, eg. year -43 is
// 44 BC. All arithmetic uses floor division and is exact for years in
// the range MinYear to MaxYear; the Calendar methods report
// ErrYearOutOfRange for years outside of it, the package level
// functions do not check and overflow silently. Months and days are not
// range checked, values outside of the usual ranges carry over
// arithmetically, eg. month 13 of 1999 is January 2000.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Calendar identifies one of the supported calendars. The zero value,
// Unspecified, is used to request the default calendar and any value
// other than Gregorian or Julian is unsupported.
type Calendar int

const (
	Unspecified Calendar = iota
	Gregorian
	Julian
)

const (
	// GregorianURI identifies the proleptic Gregorian calendar.
	GregorianURI = "http://www.wikidata.org/entity/Q1985727"
	// JulianURI identifies the proleptic Julian calendar.
	JulianURI = "http://www.wikidata.org/entity/Q1985786"
)

// ErrUnsupportedCalendar is returned, wrapped, by all operations that
// are called with a calendar other than Gregorian or Julian.
var ErrUnsupportedCalendar = errors.New("unsupported calendar")

const (
	// MinYear is the earliest year supported by the Calendar methods.
	MinYear int64 = -100_000_000_000_000
	// MaxYear is the latest year supported by the Calendar methods.
	MaxYear int64 = 100_000_000_000_000

	// maxJulianDay bounds the Julian Day Numbers accepted by
	// FromJulianDay, it covers every date from MinYear to MaxYear.
	maxJulianDay int64 = 36_600_000_000_000_000
)

// ErrYearOutOfRange is returned, wrapped, for years outside of MinYear
// to MaxYear and for Julian Day Numbers that correspond to them.
var ErrYearOutOfRange = errors.New("year out of range")

// YearInRange returns true if year lies within MinYear to MaxYear.
func YearInRange(year int64) bool {
	return year >= MinYear && year <= MaxYear
}

func unsupported(c Calendar) error {
	return fmt.Errorf("%v: %w", c, ErrUnsupportedCalendar)
}

// Supported returns true for Gregorian and Julian.
func (c Calendar) Supported() bool {
	return c == Gregorian || c == Julian
}

// String implements fmt.Stringer.
func (c Calendar) String() string {
	switch c {
	case Unspecified:
		return "Unspecified"
	case Gregorian:
		return "Gregorian"
	case Julian:
		return "Julian"
	}
	return "Calendar(" + strconv.Itoa(int(c)) + ")"
}

// URI returns the external identifier for the calendar.
func (c Calendar) URI() (string, error) {
	switch c {
	case Gregorian:
		return GregorianURI, nil
	case Julian:
		return JulianURI, nil
	}
	return "", unsupported(c)
}

// FromURI returns the calendar identified by uri.
func FromURI(uri string) (Calendar, error) {
	switch uri {
	case GregorianURI:
		return Gregorian, nil
	case JulianURI:
		return Julian, nil
	}
	return Unspecified, fmt.Errorf("%q: %w", uri, ErrUnsupportedCalendar)
}

// Parse parses a calendar name, case insensitively, or a calendar URI.
func Parse(val string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "gregorian":
		return Gregorian, nil
	case "julian":
		return Julian, nil
	}
	return FromURI(val)
}

// Set implements flag.Value.
func (c *Calendar) Set(val string) error {
	n, err := Parse(val)
	if err != nil {
		return err
	}
	*c = n
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Calendar) UnmarshalYAML(value *yaml.Node) error {
	return c.Set(value.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (c Calendar) MarshalYAML() (any, error) {
	return c.String(), nil
}

// JulianDay returns the Julian Day Number of the date d in calendar c.
func (c Calendar) JulianDay(d Date) (int64, error) {
	if c.Supported() && !YearInRange(d.Year) {
		return 0, fmt.Errorf("%v: %w", d.Year, ErrYearOutOfRange)
	}
	switch c {
	case Gregorian:
		return GregorianToJulianDay(d), nil
	case Julian:
		return JulianToJulianDay(d), nil
	}
	return 0, unsupported(c)
}

// FromJulianDay returns the date in calendar c for the Julian Day Number jdn.
func (c Calendar) FromJulianDay(jdn int64) (Date, error) {
	if c.Supported() && (jdn < -maxJulianDay || jdn > maxJulianDay) {
		return Date{}, fmt.Errorf("julian day %v: %w", jdn, ErrYearOutOfRange)
	}
	switch c {
	case Gregorian:
		return JulianDayToGregorian(jdn), nil
	case Julian:
		return JulianDayToJulian(jdn), nil
	}
	return Date{}, unsupported(c)
}

// IsLeap returns true if year is a leap year in calendar c. Unsupported
// calendars have no leap years.
func (c Calendar) IsLeap(year int64) bool {
	switch c {
	case Gregorian:
		return IsGregorianLeap(year)
	case Julian:
		return IsJulianLeap(year)
	}
	return false
}

// DaysInMonth returns the number of days in the given month and year
// for calendar c.
func (c Calendar) DaysInMonth(year int64, month int) (int, error) {
	if !c.Supported() {
		return 0, unsupported(c)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d", month)
	}
	if c.IsLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonth[month-1], nil
}

// Convert returns the date in calendar to that refers to the same day as
// the date d in calendar from.
func Convert(d Date, from, to Calendar) (Date, error) {
	jdn, err := from.JulianDay(d)
	if err != nil {
		return Date{}, err
	}
	return to.FromJulianDay(jdn)
}
