// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthInit(leap bool, month int) int {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthInit(false, i+1)
		daysInMonthLeap[i] = daysInMonthInit(true, i+1)
	}
}

// IsGregorianLeap returns true if year is a leap year in the proleptic
// Gregorian calendar.
func IsGregorianLeap(year int64) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// IsJulianLeap returns true if year is a leap year in the proleptic
// Julian calendar.
func IsJulianLeap(year int64) bool {
	return year%4 == 0
}

// floorDiv returns the quotient of a and b rounded towards negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
