// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timevalue

import (
	"fmt"
	"regexp"
	"strings"

	"cloudeng.io/timevalue/calendar"
)

var (
	timeOfDayRe = regexp.MustCompile(`([0-9])T[0-9:.]*(Z|[+-][0-9:]+)?$`)
	isoYearRe   = regexp.MustCompile(`^([+-]?)0*([0-9]+)`)
)

// NormalizeISO8601 rewrites an ISO-8601 style timestamp, eg.
// +00000001985-01-01T00:00:00Z, into the form accepted by the default
// parser, eg. 1985-01-01. A time of day that follows a date is removed,
// as are leading zeros from the year (at least one digit is retained)
// and any leading '+'. Text that matches neither form is returned
// unchanged.
func NormalizeISO8601(iso string) string {
	s := timeOfDayRe.ReplaceAllString(iso, "${1}")
	s = isoYearRe.ReplaceAllString(s, "${1}${2}")
	return strings.TrimPrefix(s, "+")
}

// NewFromISO8601 returns a TimeValue for an ISO-8601 style timestamp as
// normalized by NormalizeISO8601. The time of day is ignored. The
// precision is usually specified using WithPrecision since it cannot be
// determined from the timestamp. Malformed timestamps result in an
// invalid TimeValue.
func NewFromISO8601(iso string, opts ...Option) TimeValue {
	return New(NormalizeISO8601(iso), opts...)
}

// ParseISO8601 is like NewFromISO8601 but also returns any parse error.
func ParseISO8601(iso string, opts ...Option) (TimeValue, error) {
	return Parse(NormalizeISO8601(iso), opts...)
}

func formatISO8601(d calendar.Date, hour, minute, second int) string {
	sign, year := '+', d.Year
	if year < 0 {
		sign, year = '-', -year
	}
	return fmt.Sprintf("%c%011d-%02d-%02dT%02d:%02d:%02dZ",
		sign, year, d.Month, d.Day, hour, minute, second)
}

// ISO8601 returns the Gregorian date and time of day in the form
// [+-]YYYYYYYYYYY-MM-DDTHH:MM:SSZ, with the year zero padded to 11 digits,
// and true. It returns false if there is no Gregorian date.
func (tv TimeValue) ISO8601() (string, bool) {
	g, ok := tv.Gregorian()
	if !ok {
		return "", false
	}
	return formatISO8601(g, tv.hour, tv.minute, tv.second), true
}
