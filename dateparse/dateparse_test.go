// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dateparse_test

import (
	"errors"
	"testing"

	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/dateparse"
	"cloudeng.io/timevalue/precision"
)

func TestParse(t *testing.T) {
	type R = dateparse.Result
	for _, tc := range []struct {
		input  string
		result R
	}{
		{"1985", R{Year: 1985, Precision: precision.Year}},
		{"+1985-01-01", R{Year: 1985, Month: 1, Day: 1, Precision: precision.Day}},
		{"1985-6", R{Year: 1985, Month: 6, Precision: precision.Month}},
		{"-100-06-15", R{Year: -100, Month: 6, Day: 15, Precision: precision.Day}},
		{"-5", R{Year: -5, Precision: precision.Year}},
		{"0", R{Year: 0, Precision: precision.Year}},
		{"  2016-02-29  ", R{Year: 2016, Month: 2, Day: 29, Precision: precision.Day}},
		{"June 1985", R{Year: 1985, Month: 6, Precision: precision.Month}},
		{"jun 1985", R{Year: 1985, Month: 6, Precision: precision.Month}},
		{"15 June 1985", R{Year: 1985, Month: 6, Day: 15, Precision: precision.Day}},
		{"June 15, 1985", R{Year: 1985, Month: 6, Day: 15, Precision: precision.Day}},
		{"Sept. 1, 1752", R{Year: 1752, Month: 9, Day: 1, Precision: precision.Day}},
		{"100 BC", R{Year: -99, Precision: precision.Year}},
		{"100 B.C.E.", R{Year: -99, Precision: precision.Year}},
		{"AD 100", R{Year: 100, Precision: precision.Year}},
		{"100 CE", R{Year: 100, Precision: precision.Year}},
		{"1 BC", R{Year: 0, Precision: precision.Year}},
		{"15 March 44 BC", R{Year: -43, Month: 3, Day: 15, Precision: precision.Day}},
		{"1980s", R{Year: 1980, Precision: precision.Year10}},
		{"1200s", R{Year: 1200, Precision: precision.Year10}},
		{"1980s BCE", R{Year: -1979, Precision: precision.Year10}},
		{"13th century", R{Year: 1300, Precision: precision.Year100}},
		{"1st century BC", R{Year: -99, Precision: precision.Year100}},
		{"2nd millennium", R{Year: 2000, Precision: precision.Kiloyear}},
		{"10,000 years", R{Year: 10_000, Precision: precision.Kiloyear10}},
		{"300 million years", R{Year: 300_000_000, Precision: precision.Megayear100}},
		{"250 million years BCE", R{Year: -249_999_999, Precision: precision.Megayear10}},
		{"5 billion years", R{Year: 5_000_000_000, Precision: precision.Gigayear}},
		{"1500 Julian", R{Year: 1500, Precision: precision.Year, Calendar: calendar.Julian}},
		{"15 June 1500 (julian)", R{Year: 1500, Month: 6, Day: 15, Precision: precision.Day, Calendar: calendar.Julian}},
		{"1582-10-15 Gregorian", R{Year: 1582, Month: 10, Day: 15, Precision: precision.Day, Calendar: calendar.Gregorian}},
	} {
		r, err := dateparse.Parse(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := r, tc.result; got != want {
			t.Errorf("%v: got %+v, want %+v", tc.input, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []string{
		"",
		"   ",
		"julian",
		"BC",
		"yesterday",
		"-100 BC",
		"0 BC",
		"0 AD",
		"1985/06/15",
		"15 Smarch 1985",
		"0th century",
		"99999999999999999999",
		"1985-06-15T10:00:00Z",
	} {
		_, err := dateparse.Parse(tc)
		if err == nil {
			t.Errorf("%q: expected an error", tc)
			continue
		}
		if !errors.Is(err, dateparse.ErrSyntax) {
			t.Errorf("%q: unexpected error: %v", tc, err)
		}
	}
}

func TestPrecisionForYears(t *testing.T) {
	for _, tc := range []struct {
		years int64
		p     precision.Precision
	}{
		{0, precision.Year},
		{1985, precision.Year},
		{1900, precision.Year100},
		{-2000, precision.Kiloyear},
		{40_000, precision.Kiloyear10},
		{3_000_000, precision.Megayear},
		{13_000_000_000, precision.Gigayear},
	} {
		if got, want := dateparse.PrecisionForYears(tc.years), tc.p; got != want {
			t.Errorf("%v: got %v, want %v", tc.years, got, want)
		}
	}
}
