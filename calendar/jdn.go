// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// The conversions below count months from March so that the leap day
// falls at the end of the year. See E.G. Richards, "Mapping Time" and
// Fliegel & Van Flandern (1968); floor division makes them exact for
// negative years too.

// marchYear returns the year offset by 4800 and the month counted from
// March (0) to February (11). Months outside of 1-12 carry into the year.
func marchYear(d Date) (y, m int64) {
	a := floorDiv(14-int64(d.Month), 12)
	return d.Year + 4800 - a, int64(d.Month) + 12*a - 3
}

// GregorianToJulianDay returns the Julian Day Number for the proleptic
// Gregorian date d.
func GregorianToJulianDay(d Date) int64 {
	y, m := marchYear(d)
	return int64(d.Day) + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// JulianToJulianDay returns the Julian Day Number for the proleptic
// Julian date d.
func JulianToJulianDay(d Date) int64 {
	y, m := marchYear(d)
	return int64(d.Day) + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
}

// fromMarchDays converts a day offset e within a March based year into a
// month and day, returning the month and day and any carry into the
// following calendar year.
func fromMarchDays(e int64) (month, day int, carry int64) {
	m := floorDiv(5*e+2, 153)
	carry = floorDiv(m, 10)
	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*carry)
	return
}

// JulianDayToGregorian returns the proleptic Gregorian date for the
// Julian Day Number jdn.
func JulianDayToGregorian(jdn int64) Date {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	month, day, carry := fromMarchDays(e)
	return Date{Year: 100*b + d - 4800 + carry, Month: month, Day: day}
}

// JulianDayToJulian returns the proleptic Julian date for the Julian Day
// Number jdn.
func JulianDayToJulian(jdn int64) Date {
	c := jdn + 32082
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	month, day, carry := fromMarchDays(e)
	return Date{Year: d - 4800 + carry, Month: month, Day: day}
}

// GregorianToJulian returns the proleptic Julian date for the same day as
// the proleptic Gregorian date d.
func GregorianToJulian(d Date) Date {
	return JulianDayToJulian(GregorianToJulianDay(d))
}

// JulianToGregorian returns the proleptic Gregorian date for the same day
// as the proleptic Julian date d.
func JulianToGregorian(d Date) Date {
	return JulianDayToGregorian(JulianToJulianDay(d))
}
