// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/timevalue"
	"gopkg.in/yaml.v3"
)

// report contains all of the representations of a single time value.
type report struct {
	Input         string           `yaml:"input" json:"input"`
	Valid         bool             `yaml:"valid" json:"valid"`
	Error         string           `yaml:"error,omitempty" json:"error,omitempty"`
	Calendar      string           `yaml:"calendar" json:"calendar"`
	CalendarURI   string           `yaml:"calendar_uri,omitempty" json:"calendar_uri,omitempty"`
	Precision     string           `yaml:"precision" json:"precision"`
	PrecisionText string           `yaml:"precision_text" json:"precision_text"`
	Gregorian     string           `yaml:"gregorian,omitempty" json:"gregorian,omitempty"`
	Julian        string           `yaml:"julian,omitempty" json:"julian,omitempty"`
	JulianDay     *int64           `yaml:"julian_day,omitempty" json:"julian_day,omitempty"`
	ISO8601       string           `yaml:"iso8601,omitempty" json:"iso8601,omitempty"`
	Text          string           `yaml:"text,omitempty" json:"text,omitempty"`
	GregorianText string           `yaml:"gregorian_text,omitempty" json:"gregorian_text,omitempty"`
	JulianText    string           `yaml:"julian_text,omitempty" json:"julian_text,omitempty"`
	Value         *json.RawMessage `yaml:"-" json:"value,omitempty"`
}

func newReport(input string, tv timevalue.TimeValue, err error) report {
	r := report{
		Input:         input,
		Valid:         tv.IsValid(),
		Calendar:      tv.CalendarText(),
		Precision:     tv.Precision().String(),
		PrecisionText: tv.PrecisionText(),
		Text:          tv.Text(),
		GregorianText: tv.GregorianText(),
		JulianText:    tv.JulianText(),
	}
	if err == nil {
		err = tv.Err()
	}
	if err != nil {
		r.Error = err.Error()
	}
	r.CalendarURI, _ = tv.CalendarURI()
	if g, ok := tv.Gregorian(); ok {
		r.Gregorian = g.String()
	}
	if j, ok := tv.Julian(); ok {
		r.Julian = j.String()
	}
	if jdn, ok := tv.JulianDay(); ok {
		r.JulianDay = &jdn
	}
	r.ISO8601, _ = tv.ISO8601()
	if buf, err := json.Marshal(tv); err == nil {
		raw := json.RawMessage(buf)
		r.Value = &raw
	}
	return r
}

// writeOutput writes v to out as either YAML or JSON.
func writeOutput(out io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// reportAll creates a report for each of the inputs using parse and
// returns all of the parse errors encountered.
func reportAll(ctx context.Context, inputs []string, parse func(string) (timevalue.TimeValue, error)) ([]report, error) {
	logger := ctxlog.Logger(ctx)
	reports := make([]report, 0, len(inputs))
	errs := &errors.M{}
	for _, input := range inputs {
		tv, err := parse(input)
		if err != nil {
			logger.Warn("failed to parse date", "input", input, "error", err)
			errs.Append(err)
		} else {
			logger.Debug("parsed date", "input", input, "value", tv.String())
		}
		reports = append(reports, newReport(input, tv, err))
	}
	return reports, errs.Err()
}

func runReports(ctx context.Context, out io.Writer, fv *valueFlags, args []string, parse func(string, ...timevalue.Option) (timevalue.TimeValue, error)) error {
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	d, err := fv.defaults()
	if err != nil {
		return err
	}
	opts, err := d.options()
	if err != nil {
		return err
	}
	reports, parseErr := reportAll(ctx, args, func(input string) (timevalue.TimeValue, error) {
		return parse(input, opts...)
	})
	if err := writeOutput(out, fv.Format, reports); err != nil {
		return err
	}
	return parseErr
}

func show(ctx context.Context, out io.Writer, fv *valueFlags, args []string) error {
	return runReports(ctx, out, fv, args, timevalue.Parse)
}

func iso(ctx context.Context, out io.Writer, fv *valueFlags, args []string) error {
	return runReports(ctx, out, fv, args, timevalue.ParseISO8601)
}
