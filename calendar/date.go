// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"regexp"
	"strconv"
)

// Date represents a year, month and day in a proleptic calendar. The
// calendar is implied by context.
type Date struct {
	Year  int64
	Month int
	Day   int
}

// NewDate returns a Date for the given year, month and day.
func NewDate(year int64, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

var dateRe = regexp.MustCompile(`^([+-]?[0-9]+)-([0-9]{1,2})-([0-9]{1,2})$`)

// ParseDate parses a date in the form [+-]Y-M-D as produced by Date.String.
func ParseDate(val string) (Date, error) {
	m := dateRe.FindStringSubmatch(val)
	if m == nil {
		return Date{}, fmt.Errorf("invalid date %q, expected format '[-]YYYY-MM-DD'", val)
	}
	year, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %s: %w", m[1], err)
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return Date{Year: year, Month: month, Day: day}, nil
}
