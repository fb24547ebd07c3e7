// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/timevalue"
	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/precision"
)

// batchEntry is a single date in a batch configuration file, exactly one
// of Text or ISO8601 must be specified. Precision and Calendar override
// the configured defaults.
type batchEntry struct {
	Text      string               `yaml:"text"`
	ISO8601   string               `yaml:"iso8601"`
	Precision *precision.Precision `yaml:"precision"`
	Calendar  calendar.Calendar    `yaml:"calendar"`
}

// batchConfig represents a batch configuration file, for example:
//
//	defaults:
//	  calendar: julian
//	  language: en
//	entries:
//	  - text: 15 June 1500
//	  - iso8601: +00000001985-01-01T00:00:00Z
//	    precision: Year
//	    calendar: gregorian
type batchConfig struct {
	Defaults defaults     `yaml:"defaults"`
	Entries  []batchEntry `yaml:"entries"`
}

func (e batchEntry) input() (string, error) {
	switch {
	case len(e.Text) > 0 && len(e.ISO8601) > 0:
		return "", fmt.Errorf("only one of text or iso8601 may be specified: %q, %q", e.Text, e.ISO8601)
	case len(e.Text) > 0:
		return e.Text, nil
	case len(e.ISO8601) > 0:
		return e.ISO8601, nil
	}
	return "", fmt.Errorf("one of text or iso8601 must be specified")
}

func (e batchEntry) parse(common []timevalue.Option) (timevalue.TimeValue, error) {
	opts := append([]timevalue.Option{}, common...)
	if e.Precision != nil {
		opts = append(opts, timevalue.WithPrecision(*e.Precision))
	}
	opts = append(opts, timevalue.WithCalendar(e.Calendar))
	if len(e.ISO8601) > 0 {
		return timevalue.ParseISO8601(e.ISO8601, opts...)
	}
	return timevalue.Parse(e.Text, opts...)
}

func loadBatchConfig(ctx context.Context, filename string) (batchConfig, error) {
	var cfg batchConfig
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return cfg, err
	}
	for i, e := range cfg.Entries {
		if _, err := e.input(); err != nil {
			return cfg, fmt.Errorf("%v: entry %v: %w", filename, i, err)
		}
	}
	return cfg, nil
}

func batch(ctx context.Context, out io.Writer, fv *batchFlags, filename string) error {
	ctx, closer, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := loadBatchConfig(ctx, filename)
	if err != nil {
		return err
	}
	opts, err := cfg.Defaults.options()
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	logger.Info("processing batch", "file", filename, "entries", len(cfg.Entries))
	errs := &errors.M{}
	reports := make([]report, 0, len(cfg.Entries))
	for i, e := range cfg.Entries {
		input, _ := e.input()
		tv, err := e.parse(opts)
		if err != nil {
			logger.Warn("failed to parse date", "entry", i, "input", input, "error", err)
			errs.Append(fmt.Errorf("entry %v: %w", i, err))
		}
		reports = append(reports, newReport(input, tv, err))
	}
	if err := writeOutput(out, fv.Format, reports); err != nil {
		return err
	}
	return errs.Err()
}
