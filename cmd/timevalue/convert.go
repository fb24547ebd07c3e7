// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/timevalue/calendar"
)

type conversion struct {
	Input     string `yaml:"input" json:"input"`
	From      string `yaml:"from" json:"from"`
	To        string `yaml:"to" json:"to"`
	Result    string `yaml:"result,omitempty" json:"result,omitempty"`
	JulianDay *int64 `yaml:"julian_day,omitempty" json:"julian_day,omitempty"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

func convertDate(input string, from, to calendar.Calendar) (conversion, error) {
	c := conversion{Input: input, From: from.String(), To: to.String()}
	d, err := calendar.ParseDate(input)
	if err != nil {
		c.Error = err.Error()
		return c, err
	}
	jdn, err := from.JulianDay(d)
	if err != nil {
		c.Error = err.Error()
		return c, err
	}
	r, err := to.FromJulianDay(jdn)
	if err != nil {
		c.Error = err.Error()
		return c, err
	}
	c.Result = r.String()
	c.JulianDay = &jdn
	return c, nil
}

func convert(ctx context.Context, out io.Writer, fv *convertFlags, args []string) error {
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	from, err := calendar.Parse(fv.From)
	if err != nil {
		return err
	}
	to, err := calendar.Parse(fv.To)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	results := make([]conversion, 0, len(args))
	for _, arg := range args {
		c, err := convertDate(arg, from, to)
		if err != nil {
			logger.Warn("failed to convert date", "input", arg, "from", from, "to", to, "error", err)
			errs.Append(err)
		}
		results = append(results, c)
	}
	if err := writeOutput(out, fv.Format, results); err != nil {
		return err
	}
	return errs.Err()
}
