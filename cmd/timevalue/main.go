// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command timevalue parses, converts and displays dates of varying
// precision in the proleptic Gregorian and Julian calendars.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: timevalue
summary: parse, convert and display dates of varying precision in the Gregorian and Julian calendars
commands:
  - name: show
    summary: parse dates such as '15 June 1500', '1980s' or '5 billion years BCE' and display all of their representations
    arguments:
      - <date>
      - ...
  - name: iso
    summary: parse ISO-8601 style timestamps such as '+00000001985-01-01T00:00:00Z' and display all of their representations
    arguments:
      - <timestamp>
      - ...
  - name: convert
    summary: convert [-]YYYY-MM-DD dates between the Gregorian and Julian calendars
    arguments:
      - <date>
      - ...
  - name: batch
    summary: display all of the representations of the dates listed in a YAML configuration file
    arguments:
      - <config.yaml>
`

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("show").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return show(ctx, os.Stdout, values.(*valueFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&valueFlags{}))
	cmdSet.Set("iso").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return iso(ctx, os.Stdout, values.(*valueFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&valueFlags{}))
	cmdSet.Set("convert").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return convert(ctx, os.Stdout, values.(*convertFlags), args)
		},
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("batch").MustRunnerAndFlags(
		func(ctx context.Context, values any, args []string) error {
			return batch(ctx, os.Stdout, values.(*batchFlags), args[0])
		},
		subcmd.MustRegisteredFlagSet(&batchFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
