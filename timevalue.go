// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package timevalue provides an immutable representation of a single point
// in time with an explicit precision, from billions of years down to
// seconds, in either the proleptic Gregorian or Julian calendar.
//
// A TimeValue is created from text, an ISO-8601 style timestamp or from
// Components and is read-only thereafter. All derived views (the date in
// either calendar, the Julian Day Number, ISO-8601 and display text) are
// computed on demand. A TimeValue whose year could not be determined is
// invalid and all of its views report that no value is available rather
// than failing, so callers should check IsValid or the boolean results
// returned by the views.
//
//	tv := timevalue.New("15 June 1500", timevalue.WithCalendar(calendar.Julian))
//	if g, ok := tv.Gregorian(); ok {
//		fmt.Println(g) // 1500-06-25
//	}
package timevalue

import (
	"errors"
	"fmt"

	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/dateparse"
	"cloudeng.io/timevalue/precision"
	"cloudeng.io/timevalue/textformat"
)

// ErrInvalidInput is returned, wrapped, when text cannot be parsed into a
// time value or when a time value has no known year.
var ErrInvalidInput = errors.New("invalid time value")

// UTCOffset is the only supported offset from UTC.
const UTCOffset = "+00:00"

// Components represents the fields from which a TimeValue is created.
// A nil Year means that the year is unknown, a nil Month or Day defaults
// to 1, a nil Precision defaults to precision.Day and calendar.Unspecified
// defaults to calendar.Gregorian. Values are stored as given and are not
// range checked, so an explicit month or day of 0 is retained.
type Components struct {
	Year      *int64
	Month     *int
	Day       *int
	Hour      int
	Minute    int
	Second    int
	Precision *precision.Precision
	Calendar  calendar.Calendar
}

// Ptr returns a pointer to v, it is convenient for creating Components.
func Ptr[T any](v T) *T {
	return &v
}

// Parser is the interface implemented by parsers of textual dates.
type Parser interface {
	Parse(text string) (Components, error)
}

// TextFormatter is the interface implemented by renderers of dates
// as display text.
type TextFormatter interface {
	DateText(p precision.Precision, year int64, month, day int) string
	PrecisionText(p precision.Precision) string
}

type grammarParser struct{}

func (grammarParser) Parse(text string) (Components, error) {
	r, err := dateparse.Parse(text)
	if err != nil {
		return Components{}, err
	}
	c := Components{
		Year:      &r.Year,
		Precision: &r.Precision,
		Calendar:  r.Calendar,
	}
	if r.Month != 0 {
		c.Month = &r.Month
	}
	if r.Day != 0 {
		c.Day = &r.Day
	}
	return c, nil
}

// DefaultParser is the Parser used unless WithParser is specified, it
// accepts the text described in cloudeng.io/timevalue/dateparse.
var DefaultParser Parser = grammarParser{}

// options holds the configuration used to create a TimeValue. The
// defaults are: the precision and calendar of the parsed text or
// Components, else precision.Day and calendar.Gregorian; DefaultParser;
// textformat.English.
type options struct {
	precision    precision.Precision
	hasPrecision bool
	calendar     calendar.Calendar
	parser       Parser
	formatter    TextFormatter
}

// Option represents an option for creating a TimeValue.
type Option func(o *options)

// WithPrecision overrides the precision provided by the parsed text or
// Components. The precision is not validated.
func WithPrecision(p precision.Precision) Option {
	return func(o *options) {
		o.precision = p
		o.hasPrecision = true
	}
}

// WithCalendar overrides the calendar provided by the parsed text or
// Components. calendar.Unspecified leaves the calendar unchanged.
func WithCalendar(c calendar.Calendar) Option {
	return func(o *options) {
		o.calendar = c
	}
}

// WithParser sets the Parser used for text, the default is DefaultParser.
func WithParser(p Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// WithFormatter sets the TextFormatter used for display text, the
// default is textformat.English.
func WithFormatter(f TextFormatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

func newOptions(opts []Option) options {
	o := options{
		parser:    DefaultParser,
		formatter: textformat.English,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// TimeValue represents a point in time with a precision and calendar.
// The zero value is an invalid TimeValue. TimeValue is immutable and
// safe for concurrent use.
type TimeValue struct {
	year      int64
	known     bool
	month     int
	day       int
	hour      int
	minute    int
	second    int
	precision precision.Precision
	calendar  calendar.Calendar
	formatter TextFormatter
}

// New returns a TimeValue for the supplied text. If the text cannot be
// parsed the returned TimeValue is invalid, use Parse to obtain the error.
func New(text string, opts ...Option) TimeValue {
	tv, _ := Parse(text, opts...)
	return tv
}

// Parse is like New but also returns an error that wraps ErrInvalidInput
// and the parser's error if the text cannot be parsed.
func Parse(text string, opts ...Option) (TimeValue, error) {
	o := newOptions(opts)
	c, err := o.parser.Parse(text)
	if err != nil {
		return newTimeValue(Components{}, o), fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return newTimeValue(c, o), nil
}

// NewFromComponents returns a TimeValue for the supplied Components. The
// Components are copied and subsequent changes to them have no effect.
func NewFromComponents(c Components, opts ...Option) TimeValue {
	return newTimeValue(c, newOptions(opts))
}

func newTimeValue(c Components, o options) TimeValue {
	tv := TimeValue{
		month:     1,
		day:       1,
		hour:      c.Hour,
		minute:    c.Minute,
		second:    c.Second,
		precision: precision.Day,
		calendar:  calendar.Gregorian,
		formatter: o.formatter,
	}
	if c.Year != nil {
		tv.year, tv.known = *c.Year, true
	}
	if c.Month != nil {
		tv.month = *c.Month
	}
	if c.Day != nil {
		tv.day = *c.Day
	}
	if c.Precision != nil {
		tv.precision = *c.Precision
	}
	if o.hasPrecision {
		tv.precision = o.precision
	}
	if c.Calendar != calendar.Unspecified {
		tv.calendar = c.Calendar
	}
	if o.calendar != calendar.Unspecified {
		tv.calendar = o.calendar
	}
	if tv.formatter == nil {
		tv.formatter = textformat.English
	}
	return tv
}

// Components returns the fields of the TimeValue.
func (tv TimeValue) Components() Components {
	c := Components{
		Month:     Ptr(tv.month),
		Day:       Ptr(tv.day),
		Hour:      tv.hour,
		Minute:    tv.minute,
		Second:    tv.second,
		Precision: Ptr(tv.precision),
		Calendar:  tv.calendar,
	}
	if tv.known {
		c.Year = Ptr(tv.year)
	}
	return c
}
