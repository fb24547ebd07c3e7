// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package timevalue

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/precision"
)

// wireValue is the JSON representation of a time value as used by
// Wikibase, the time is expressed in the calendar named by CalendarModel.
type wireValue struct {
	Time          string `json:"time"`
	Timezone      int    `json:"timezone"`
	Before        int    `json:"before"`
	After         int    `json:"after"`
	Precision     int    `json:"precision"`
	CalendarModel string `json:"calendarmodel"`
}

var wireTimeRe = regexp.MustCompile(`^([+-])([0-9]+)-([0-9]{2})-([0-9]{2})T([0-9]{2}):([0-9]{2}):([0-9]{2})Z$`)

// MarshalJSON implements json.Marshaler. Invalid time values and those
// with unsupported calendars cannot be marshaled.
func (tv TimeValue) MarshalJSON() ([]byte, error) {
	if err := tv.Err(); err != nil {
		return nil, err
	}
	uri, _ := tv.calendar.URI()
	return json.Marshal(wireValue{
		Time:          formatISO8601(tv.date(), tv.hour, tv.minute, tv.second),
		Before:        tv.Before(),
		After:         tv.After(),
		Precision:     int(tv.precision),
		CalendarModel: uri,
	})
}

// UnmarshalJSON implements json.Unmarshaler. A month or day of 00, as
// used by Wikibase for values coarser than a day, is treated as 1.
func (tv *TimeValue) UnmarshalJSON(data []byte) error {
	var wv wireValue
	if err := json.Unmarshal(data, &wv); err != nil {
		return err
	}
	m := wireTimeRe.FindStringSubmatch(wv.Time)
	if m == nil {
		return fmt.Errorf("malformed time %q: %w", wv.Time, ErrInvalidInput)
	}
	if wv.Timezone != 0 {
		return fmt.Errorf("unsupported timezone offset %v: %w", wv.Timezone, ErrInvalidInput)
	}
	cal, err := calendar.FromURI(wv.CalendarModel)
	if err != nil {
		return err
	}
	year, err := strconv.ParseInt(m[1]+m[2], 10, 64)
	if err != nil {
		return fmt.Errorf("malformed year %q: %w", m[2], ErrInvalidInput)
	}
	fields := make([]int, 5)
	for i := range fields {
		fields[i], _ = strconv.Atoi(m[i+3])
	}
	*tv = NewFromComponents(Components{
		Year:      &year,
		Month:     unlessZero(fields[0]),
		Day:       unlessZero(fields[1]),
		Hour:      fields[2],
		Minute:    fields[3],
		Second:    fields[4],
		Precision: Ptr(precision.Precision(wv.Precision)),
		Calendar:  cal,
	})
	return nil
}

// unlessZero returns nil for 0, Wikibase's representation of an absent
// month or day.
func unlessZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
