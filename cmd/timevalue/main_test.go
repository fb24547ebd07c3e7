// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cloudeng.io/timevalue"
	"cloudeng.io/timevalue/calendar"
	"gopkg.in/yaml.v3"
)

func decodeReports(t *testing.T, out *bytes.Buffer) []report {
	t.Helper()
	var reports []report
	if err := yaml.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("failed to decode %q: %v", out.String(), err)
	}
	return reports
}

func TestShow(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	fv := &valueFlags{Calendar: "julian", Language: "en"}
	if err := show(ctx, out, fv, []string{"15 June 1500", "1980s"}); err != nil {
		t.Fatal(err)
	}
	reports := decodeReports(t, out)
	if got, want := len(reports), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	r := reports[0]
	if !r.Valid || r.Calendar != "Julian" || r.CalendarURI != calendar.JulianURI {
		t.Errorf("unexpected report: %+v", r)
	}
	if got, want := r.Gregorian, "1500-06-25"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Julian, "1500-06-15"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.GregorianText, "25 June 1500"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if r.JulianDay == nil || *r.JulianDay != 2269099 {
		t.Errorf("unexpected julian day: %v", r.JulianDay)
	}
	if got, want := reports[1].Text, "1980s"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := reports[1].Precision, "Year10"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestShowErrors(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	fv := &valueFlags{}
	err := show(ctx, out, fv, []string{"1985", "not a date"})
	if !errors.Is(err, timevalue.ErrInvalidInput) {
		t.Fatalf("unexpected error: %v", err)
	}
	reports := decodeReports(t, out)
	if got, want := len(reports), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !reports[0].Valid || len(reports[0].Error) > 0 {
		t.Errorf("unexpected report: %+v", reports[0])
	}
	if reports[1].Valid || len(reports[1].Error) == 0 || len(reports[1].ISO8601) > 0 {
		t.Errorf("unexpected report: %+v", reports[1])
	}

	for _, fv := range []*valueFlags{
		{Precision: "Fortnight"},
		{Calendar: "hebrew"},
		{Language: "!!"},
		{CommonFlags: CommonFlags{Format: "xml"}},
	} {
		if err := show(ctx, &bytes.Buffer{}, fv, []string{"1985"}); err == nil {
			t.Errorf("%+v: expected an error", fv)
		}
	}
}

func TestISO(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	fv := &valueFlags{Precision: "Year"}
	fv.Format = "json"
	if err := iso(ctx, out, fv, []string{"+00000001985-01-01T00:00:00Z"}); err != nil {
		t.Fatal(err)
	}
	var reports []struct {
		Input   string          `json:"input"`
		Text    string          `json:"text"`
		ISO8601 string          `json:"iso8601"`
		Value   json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatal(err)
	}
	if got, want := len(reports), 1; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := reports[0].Text, "1985"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := reports[0].ISO8601, "+00000001985-01-01T00:00:00Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var tv timevalue.TimeValue
	if err := json.Unmarshal(reports[0].Value, &tv); err != nil {
		t.Fatal(err)
	}
	if y, _ := tv.Year(); y != 1985 {
		t.Errorf("got %v, want 1985", y)
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	fv := &convertFlags{From: "julian", To: "gregorian"}
	if err := convert(ctx, out, fv, []string{"1582-10-04", "-4712-01-01"}); err != nil {
		t.Fatal(err)
	}
	var results []conversion
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		result string
		jdn    int64
	}{
		{"1582-10-14", 2299160},
		{"-4713-11-24", 0},
	} {
		if got, want := results[i].Result, tc.result; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if results[i].JulianDay == nil || *results[i].JulianDay != tc.jdn {
			t.Errorf("%v: unexpected julian day: %v", i, results[i].JulianDay)
		}
	}

	out.Reset()
	fv = &convertFlags{From: "gregorian", To: "julian"}
	err := convert(ctx, out, fv, []string{"2000-01-01", "June 1985"})
	if err == nil || !strings.Contains(err.Error(), "June 1985") {
		t.Errorf("unexpected error: %v", err)
	}
	results = nil
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if got, want := results[0].Result, "1999-12-19"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(results[1].Error) == 0 {
		t.Errorf("expected an error for %v", results[1].Input)
	}

	fv = &convertFlags{From: "hebrew", To: "julian"}
	if err := convert(ctx, &bytes.Buffer{}, fv, []string{"2000-01-01"}); !errors.Is(err, calendar.ErrUnsupportedCalendar) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	if err := batch(ctx, out, &batchFlags{}, filepath.Join("testdata", "batch.yaml")); err != nil {
		t.Fatal(err)
	}
	reports := decodeReports(t, out)
	if got, want := len(reports), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, tc := range []struct {
		calendar, precision, text, gregorian string
	}{
		{"Julian", "Day", "15 June 1500", "1500-06-25"},
		{"Gregorian", "Year", "1985", "1985-01-01"},
		{"Julian", "Year100", "13th century", "1300-01-08"},
	} {
		r := reports[i]
		if got, want := r.Calendar, tc.calendar; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.Precision, tc.precision; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.Text, tc.text; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := r.Gregorian, tc.gregorian; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestBatchErrors(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		file, msg string
	}{
		{"invalid.yaml", "only one of text or iso8601"},
		{"unknown-field.yaml", "era"},
		{"missing.yaml", "missing.yaml"},
	} {
		err := batch(ctx, &bytes.Buffer{}, &batchFlags{}, filepath.Join("testdata", tc.file))
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("%v: unexpected error: %v", tc.file, err)
		}
	}
}
