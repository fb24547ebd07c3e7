// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/timevalue"
	"cloudeng.io/timevalue/calendar"
	"cloudeng.io/timevalue/precision"
	"cloudeng.io/timevalue/textformat"
	"golang.org/x/text/language"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,yaml,'output format: yaml or json'"`
}

type valueFlags struct {
	CommonFlags
	Precision string `subcmd:"precision,,'override the precision of all dates, either by name (eg. Year100) or code (eg. 7)'"`
	Calendar  string `subcmd:"calendar,,'override the calendar of all dates: gregorian or julian'"`
	Language  string `subcmd:"lang,en,'language used to format display text'"`
}

type convertFlags struct {
	CommonFlags
	From string `subcmd:"from,gregorian,'calendar to convert from: gregorian or julian'"`
	To   string `subcmd:"to,julian,'calendar to convert to: gregorian or julian'"`
}

type batchFlags struct {
	CommonFlags
}

// withLogger returns a context containing the logger configured by the
// logging flags and a function that closes the logger.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

// defaults represents the settings applied to every date, they may be
// specified on the command line or in a batch configuration file.
type defaults struct {
	Precision *precision.Precision `yaml:"precision"`
	Calendar  calendar.Calendar    `yaml:"calendar"`
	Language  string               `yaml:"language"`
}

func (vf *valueFlags) defaults() (defaults, error) {
	d := defaults{Language: vf.Language}
	if len(vf.Precision) > 0 {
		p, err := precision.Parse(vf.Precision)
		if err != nil {
			return d, err
		}
		d.Precision = &p
	}
	if len(vf.Calendar) > 0 {
		c, err := calendar.Parse(vf.Calendar)
		if err != nil {
			return d, err
		}
		d.Calendar = c
	}
	return d, nil
}

func (d defaults) options() ([]timevalue.Option, error) {
	opts := []timevalue.Option{timevalue.WithCalendar(d.Calendar)}
	if d.Precision != nil {
		opts = append(opts, timevalue.WithPrecision(*d.Precision))
	}
	if len(d.Language) > 0 {
		tag, err := language.Parse(d.Language)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", d.Language, err)
		}
		opts = append(opts, timevalue.WithFormatter(textformat.New(textformat.WithLanguage(tag))))
	}
	return opts, nil
}
