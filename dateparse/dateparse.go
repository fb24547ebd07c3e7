// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dateparse provides a parser for textual dates of varying
// precision, from "5 billion years BCE" to "15 June 1985".
//
// The supported forms are:
//
//	[+-]YYYY, [+-]YYYY-MM, [+-]YYYY-MM-DD
//	June 1985, 15 June 1985, June 15, 1985
//	1980s
//	13th century, 2nd millennium
//	10,000 years, 300 million years, 5 billion years
//
// Any of these, other than those with an explicit sign, may be followed
// by an era marker (BC, BCE, AD or CE, AD may also precede the year) and
// all may be followed by a calendar name, Gregorian or Julian, optionally
// in parentheses. Matching is case insensitive.
//
// Years are returned using astronomical numbering, as used by the
// calendar package: signed years are taken as written, so -5 is year -5,
// whereas N BC is year 1-N, so 1 BC is year 0 and 44 BC is year -43.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/precision"
)

// ErrSyntax is returned, wrapped, for text that is not a recognised date.
var ErrSyntax = errors.New("unrecognised date")

// Result represents the fields of a parsed date. Month and Day are zero
// when not specified by the text and Calendar is calendar.Unspecified
// unless a calendar name was given.
type Result struct {
	Year      int64
	Month     int
	Day       int
	Precision precision.Precision
	Calendar  calendar.Calendar
}

var (
	calendarRe  = regexp.MustCompile(`(?i)^(.*?)\s*\(?\s*\b(gregorian|julian)\s*\)?$`)
	eraSuffixRe = regexp.MustCompile(`(?i)^(.*?)\s*\b(b\.?c\.?e?\.?|c\.?e\.?|a\.?d\.?)$`)
	eraPrefixRe = regexp.MustCompile(`(?i)^a\.?d\.?\s+(.*)$`)

	numericRe    = regexp.MustCompile(`^([+-]?)([0-9]+)(?:-([0-9]{1,2})(?:-([0-9]{1,2}))?)?$`)
	dayMonthRe   = regexp.MustCompile(`(?i)^([0-9]{1,2})\.?\s+([a-z]+)\.?,?\s+([0-9]+)$`)
	monthDayRe   = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+([0-9]{1,2}),?\s+([0-9]+)$`)
	monthYearRe  = regexp.MustCompile(`(?i)^([a-z]+)\.?,?\s+([0-9]+)$`)
	decadeRe     = regexp.MustCompile(`(?i)^([0-9]*0)'?s$`)
	centuryRe    = regexp.MustCompile(`(?i)^([0-9]+)(?:st|nd|rd|th|\.)?\s+(century|millennium)$`)
	yearsRe      = regexp.MustCompile(`(?i)^([0-9][0-9,]*)\s+(?:(thousand|million|billion)\s+)?years?$`)
	fieldParsers = []func(string) (Result, bool, error){
		parseNumeric,
		parseNamedMonth,
		parseDecade,
		parseCentury,
		parseYears,
	}
)

// Parse parses text as per the package documentation.
func Parse(text string) (Result, error) {
	body := strings.TrimSpace(text)
	cal := calendar.Unspecified
	if m := calendarRe.FindStringSubmatch(body); m != nil {
		cal, _ = calendar.Parse(m[2])
		body = m[1]
	}
	era := 0
	if m := eraSuffixRe.FindStringSubmatch(body); m != nil {
		era = 1
		if strings.HasPrefix(strings.ToLower(m[2]), "b") {
			era = -1
		}
		body = m[1]
	} else if m := eraPrefixRe.FindStringSubmatch(body); m != nil {
		era = 1
		body = m[1]
	}
	if len(body) == 0 {
		return Result{}, fmt.Errorf("%q: %w", text, ErrSyntax)
	}
	if era != 0 && (body[0] == '-' || body[0] == '+') {
		return Result{}, fmt.Errorf("%q: signed year with an era: %w", text, ErrSyntax)
	}
	for _, fn := range fieldParsers {
		r, ok, err := fn(body)
		if err != nil {
			return Result{}, fmt.Errorf("%q: %v: %w", text, err, ErrSyntax)
		}
		if !ok {
			continue
		}
		if era != 0 && r.Year == 0 {
			return Result{}, fmt.Errorf("%q: there is no year 0 BC or AD: %w", text, ErrSyntax)
		}
		if era < 0 {
			r.Year = 1 - r.Year
		}
		r.Calendar = cal
		return r, nil
	}
	return Result{}, fmt.Errorf("%q: %w", text, ErrSyntax)
}

func parseYear(val string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(val, ",", ""), 10, 64)
}

func parseNumeric(val string) (Result, bool, error) {
	m := numericRe.FindStringSubmatch(val)
	if m == nil {
		return Result{}, false, nil
	}
	year, err := parseYear(m[1] + m[2])
	if err != nil {
		return Result{}, false, err
	}
	r := Result{Year: year, Precision: precision.Year}
	if len(m[3]) > 0 {
		r.Month, _ = strconv.Atoi(m[3])
		r.Precision = precision.Month
	}
	if len(m[4]) > 0 {
		r.Day, _ = strconv.Atoi(m[4])
		r.Precision = precision.Day
	}
	return r, true, nil
}

func parseMonth(val string) (int, error) {
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	m, err := datetime.ParseMonth(val)
	if err != nil {
		return 0, err
	}
	return int(m), nil
}

func parseNamedMonth(val string) (Result, bool, error) {
	var day, month, year string
	if m := dayMonthRe.FindStringSubmatch(val); m != nil {
		day, month, year = m[1], m[2], m[3]
	} else if m := monthDayRe.FindStringSubmatch(val); m != nil {
		month, day, year = m[1], m[2], m[3]
	} else if m := monthYearRe.FindStringSubmatch(val); m != nil {
		month, year = m[1], m[2]
	} else {
		return Result{}, false, nil
	}
	r := Result{Precision: precision.Month}
	var err error
	if r.Month, err = parseMonth(month); err != nil {
		return Result{}, false, err
	}
	if r.Year, err = parseYear(year); err != nil {
		return Result{}, false, err
	}
	if len(day) > 0 {
		r.Day, _ = strconv.Atoi(day)
		r.Precision = precision.Day
	}
	return r, true, nil
}

func parseDecade(val string) (Result, bool, error) {
	m := decadeRe.FindStringSubmatch(val)
	if m == nil {
		return Result{}, false, nil
	}
	year, err := parseYear(m[1])
	if err != nil {
		return Result{}, false, err
	}
	return Result{Year: year, Precision: precision.Year10}, true, nil
}

// parseCentury returns the last year of the named century or millennium,
// eg. 1300 for the 13th century.
func parseCentury(val string) (Result, bool, error) {
	m := centuryRe.FindStringSubmatch(val)
	if m == nil {
		return Result{}, false, nil
	}
	n, err := parseYear(m[1])
	if err != nil {
		return Result{}, false, err
	}
	if n == 0 {
		return Result{}, false, fmt.Errorf("no zeroth %s", strings.ToLower(m[2]))
	}
	if strings.EqualFold(m[2], "century") {
		return Result{Year: n * 100, Precision: precision.Year100}, true, nil
	}
	return Result{Year: n * 1000, Precision: precision.Kiloyear}, true, nil
}

var multipliers = map[string]int64{
	"":         1,
	"thousand": 1000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
}

func parseYears(val string) (Result, bool, error) {
	m := yearsRe.FindStringSubmatch(val)
	if m == nil {
		return Result{}, false, nil
	}
	n, err := parseYear(m[1])
	if err != nil {
		return Result{}, false, err
	}
	year := n * multipliers[strings.ToLower(m[2])]
	if n != 0 && year/n != multipliers[strings.ToLower(m[2])] {
		return Result{}, false, fmt.Errorf("year out of range: %s", val)
	}
	return Result{Year: year, Precision: PrecisionForYears(year)}, true, nil
}

// PrecisionForYears returns the coarsest precision, no finer than
// precision.Year, of which years is a whole multiple.
func PrecisionForYears(years int64) precision.Precision {
	if years < 0 {
		years = -years
	}
	for p := precision.Gigayear; p < precision.Year; p++ {
		if n := p.Years(); years >= n && years%n == 0 {
			return p
		}
	}
	return precision.Year
}
