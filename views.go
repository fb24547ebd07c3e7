// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timevalue

import (
	"fmt"

	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/precision"
	"cloudeng.io/timevalue/textformat"
)

// IsValid returns true if the year of the TimeValue is known.
func (tv TimeValue) IsValid() bool {
	return tv.known
}

// Err returns nil for a valid TimeValue in a supported calendar, an error
// wrapping ErrInvalidInput if the year is unknown, one wrapping
// calendar.ErrUnsupportedCalendar if the calendar is not supported and
// one wrapping calendar.ErrYearOutOfRange if the year lies outside of
// calendar.MinYear to calendar.MaxYear.
func (tv TimeValue) Err() error {
	if !tv.known {
		return fmt.Errorf("unknown year: %w", ErrInvalidInput)
	}
	if !tv.calendar.Supported() {
		_, err := tv.calendar.URI()
		return err
	}
	if !calendar.YearInRange(tv.year) {
		return fmt.Errorf("%v: %w", tv.year, calendar.ErrYearOutOfRange)
	}
	return nil
}

// convertible returns true if the year is known and can be converted
// between calendars.
func (tv TimeValue) convertible() bool {
	return tv.known && calendar.YearInRange(tv.year)
}

// Year returns the year and true if it is known.
func (tv TimeValue) Year() (int64, bool) {
	return tv.year, tv.known
}

// Month returns the month, 1 unless otherwise specified.
func (tv TimeValue) Month() int {
	return tv.month
}

// Day returns the day of the month, 1 unless otherwise specified.
func (tv TimeValue) Day() int {
	return tv.day
}

// Hour returns the hour, 0 unless otherwise specified.
func (tv TimeValue) Hour() int {
	return tv.hour
}

// Minute returns the minute, 0 unless otherwise specified.
func (tv TimeValue) Minute() int {
	return tv.minute
}

// Second returns the second, 0 unless otherwise specified.
func (tv TimeValue) Second() int {
	return tv.second
}

// UTCOffset always returns "+00:00".
func (tv TimeValue) UTCOffset() string {
	return UTCOffset
}

// Precision returns the precision, precision.Day unless otherwise specified.
func (tv TimeValue) Precision() precision.Precision {
	return tv.precision
}

// PrecisionText returns the display text for the precision.
func (tv TimeValue) PrecisionText() string {
	return tv.textFormatter().PrecisionText(tv.precision)
}

// Before always returns 0.
func (tv TimeValue) Before() int {
	return 0
}

// After always returns 0.
func (tv TimeValue) After() int {
	return 0
}

// Calendar returns the calendar that the date is expressed in.
func (tv TimeValue) Calendar() calendar.Calendar {
	return tv.calendar
}

// CalendarText returns the name of the calendar.
func (tv TimeValue) CalendarText() string {
	return tv.calendar.String()
}

// CalendarURI returns the URI of the calendar and true, or false if
// the calendar is not supported.
func (tv TimeValue) CalendarURI() (string, bool) {
	uri, err := tv.calendar.URI()
	return uri, err == nil
}

func (tv TimeValue) textFormatter() TextFormatter {
	if tv.formatter == nil {
		return textformat.English
	}
	return tv.formatter
}

func (tv TimeValue) date() calendar.Date {
	return calendar.Date{Year: tv.year, Month: tv.month, Day: tv.day}
}

// Gregorian returns the date in the Gregorian calendar. It returns
// false if the year is unknown or out of range or the calendar is not
// supported.
func (tv TimeValue) Gregorian() (calendar.Date, bool) {
	if !tv.convertible() {
		return calendar.Date{}, false
	}
	switch tv.calendar {
	case calendar.Gregorian:
		return tv.date(), true
	case calendar.Julian:
		return calendar.JulianToGregorian(tv.date()), true
	}
	return calendar.Date{}, false
}

// Julian returns the date in the Julian calendar. It returns false if
// the year is unknown or out of range or the calendar is not supported.
func (tv TimeValue) Julian() (calendar.Date, bool) {
	if !tv.convertible() {
		return calendar.Date{}, false
	}
	switch tv.calendar {
	case calendar.Julian:
		return tv.date(), true
	case calendar.Gregorian:
		return calendar.GregorianToJulian(tv.date()), true
	}
	return calendar.Date{}, false
}

// JulianDay returns the Julian Day Number of the date. It returns false
// if the year is unknown or out of range or the calendar is not supported.
func (tv TimeValue) JulianDay() (int64, bool) {
	if !tv.convertible() {
		return 0, false
	}
	jdn, err := tv.calendar.JulianDay(tv.date())
	return jdn, err == nil
}

// Text returns the display text for the date in its own calendar, or
// an empty string if the year is unknown or out of range.
func (tv TimeValue) Text() string {
	if !tv.convertible() {
		return ""
	}
	return tv.textFormatter().DateText(tv.precision, tv.year, tv.month, tv.day)
}

func (tv TimeValue) dateText(d calendar.Date, ok bool) string {
	if !ok {
		return ""
	}
	return tv.textFormatter().DateText(tv.precision, d.Year, d.Month, d.Day)
}

// GregorianText returns the display text for the Gregorian date, or an
// empty string if there is none.
func (tv TimeValue) GregorianText() string {
	return tv.dateText(tv.Gregorian())
}

// JulianText returns the display text for the Julian date, or an
// empty string if there is none.
func (tv TimeValue) JulianText() string {
	return tv.dateText(tv.Julian())
}

// Compare compares two time values by their Julian Day Number and then
// their time of day, regardless of the calendars they are expressed in.
// It returns -1, 0 or +1 and true, or false if either has no Julian Day
// Number. Precision is ignored.
func (tv TimeValue) Compare(other TimeValue) (int, bool) {
	a, ok := tv.JulianDay()
	if !ok {
		return 0, false
	}
	b, ok := other.JulianDay()
	if !ok {
		return 0, false
	}
	for _, d := range []int64{
		a - b,
		int64(tv.hour - other.hour),
		int64(tv.minute - other.minute),
		int64(tv.second - other.second),
	} {
		switch {
		case d < 0:
			return -1, true
		case d > 0:
			return 1, true
		}
	}
	return 0, true
}

// String implements fmt.Stringer, it returns the ISO-8601 form or
// "<invalid>".
func (tv TimeValue) String() string {
	if iso, ok := tv.ISO8601(); ok {
		return iso
	}
	return "<invalid>"
}
