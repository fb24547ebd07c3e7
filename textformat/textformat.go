// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package textformat renders dates of varying precision as English text,
// eg. "15 June 1985", "1980s", "13th century" or "300 million years BCE".
// The output is accepted by cloudeng.io/timevalue/dateparse when the
// English language is used.
package textformat

import (
	"strconv"
	"time"

	"cloudeng.io/timevalue/precision"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type options struct {
	lang language.Tag
}

// Option represents an option to New.
type Option func(o *options)

// WithLanguage sets the language used for grouping the digits of large
// numbers of years. The default is language.English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// Formatter renders dates and precisions as text.
type Formatter struct {
	printer *message.Printer
}

// New returns a new Formatter.
func New(opts ...Option) *Formatter {
	o := options{lang: language.English}
	for _, fn := range opts {
		fn(&o)
	}
	return &Formatter{printer: message.NewPrinter(o.lang)}
}

// English is a Formatter that uses language.English.
var English = New()

func monthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return time.Month(month).String()
}

func ordinal(n int64) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.FormatInt(n, 10) + suffix
}

// roundTo rounds n to the nearest multiple of unit, n must not be negative.
func roundTo(n, unit int64) int64 {
	return (n + unit/2) / unit * unit
}

// span returns the 1-based index of the unit long span that contains year n,
// eg. the 13th century for 1201-1300, n must be positive.
func span(n, unit int64) int64 {
	return (n + unit - 1) / unit
}

// DateText returns the text for the specified year, month and day
// displayed at the given precision. Years are astronomically numbered and
// those of 0 and earlier are displayed with a BCE suffix, eg. year 0 is
// 1 BCE and year -43 is 44 BCE. Precisions finer than precision.Day are
// displayed as days and those that are not defined are displayed as years.
func (f *Formatter) DateText(p precision.Precision, year int64, month, day int) string {
	abs, era := year, ""
	if year <= 0 {
		abs, era = 1-year, " BCE"
	}
	var text string
	switch {
	case p >= precision.Day:
		text = strconv.Itoa(day) + " " + monthName(month) + " " + strconv.FormatInt(abs, 10)
	case p == precision.Month:
		text = monthName(month) + " " + strconv.FormatInt(abs, 10)
	case p == precision.Year10:
		text = strconv.FormatInt(abs-abs%10, 10) + "s"
	case p == precision.Year100:
		text = ordinal(span(abs, 100)) + " century"
	case p == precision.Kiloyear:
		text = ordinal(span(abs, 1000)) + " millennium"
	case p == precision.Kiloyear10, p == precision.Kiloyear100:
		text = f.printer.Sprintf("%v years", roundTo(abs, p.Years()))
	case p >= precision.Megayear100 && p <= precision.Megayear:
		text = f.printer.Sprintf("%v million years", roundTo(abs, p.Years())/1_000_000)
	case p == precision.Gigayear:
		text = f.printer.Sprintf("%v billion years", roundTo(abs, p.Years())/1_000_000_000)
	default:
		text = strconv.FormatInt(abs, 10)
	}
	return text + era
}

var precisionText = []string{
	"billion years",
	"hundred million years",
	"ten million years",
	"million years",
	"hundred thousand years",
	"ten thousand years",
	"millennium",
	"century",
	"decade",
	"year",
	"month",
	"day",
	"hour",
	"minute",
	"second",
}

// PrecisionText returns a description of the precision, eg. "century".
func (f *Formatter) PrecisionText(p precision.Precision) string {
	if !p.Valid() {
		return p.String()
	}
	return precisionText[p]
}
