// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package precision_test

import (
	"testing"

	"cloudeng.io/timevalue/precision"
	"gopkg.in/yaml.v3"
)

func TestOrdering(t *testing.T) {
	all := precision.All()
	if got, want := len(all), 15; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, p := range all {
		if got, want := int(p), i; got != want {
			t.Errorf("%v: got %v, want %v", p, got, want)
		}
		if !p.Valid() {
			t.Errorf("%v: should be valid", p)
		}
	}
	for _, tc := range []struct {
		p    precision.Precision
		code int
	}{
		{precision.Gigayear, 0},
		{precision.Megayear100, 1},
		{precision.Megayear10, 2},
		{precision.Megayear, 3},
		{precision.Kiloyear100, 4},
		{precision.Kiloyear10, 5},
		{precision.Kiloyear, 6},
		{precision.Year100, 7},
		{precision.Year10, 8},
		{precision.Year, 9},
		{precision.Month, 10},
		{precision.Day, 11},
		{precision.Hour, 12},
		{precision.Minute, 13},
		{precision.Second, 14},
	} {
		if got, want := int(tc.p), tc.code; got != want {
			t.Errorf("%v: got %v, want %v", tc.p, got, want)
		}
	}
	for _, p := range []precision.Precision{-1, 15, 99} {
		if p.Valid() {
			t.Errorf("%v: should not be valid", p)
		}
	}
}

func TestYears(t *testing.T) {
	for _, tc := range []struct {
		p     precision.Precision
		years int64
	}{
		{precision.Gigayear, 1_000_000_000},
		{precision.Megayear100, 100_000_000},
		{precision.Megayear, 1_000_000},
		{precision.Kiloyear10, 10_000},
		{precision.Kiloyear, 1000},
		{precision.Year100, 100},
		{precision.Year10, 10},
		{precision.Year, 1},
		{precision.Second, 1},
		{precision.Precision(42), 1},
	} {
		if got, want := tc.p.Years(), tc.years; got != want {
			t.Errorf("%v: got %v, want %v", tc.p, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		input string
		p     precision.Precision
	}{
		{"Day", precision.Day},
		{"day", precision.Day},
		{" YEAR100 ", precision.Year100},
		{"11", precision.Day},
		{"0", precision.Gigayear},
		{"20", precision.Precision(20)},
	} {
		p, err := precision.Parse(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := p, tc.p; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
	for _, tc := range []string{"", "fortnight", "1.5"} {
		if _, err := precision.Parse(tc); err == nil {
			t.Errorf("%v: expected an error", tc)
		}
	}

	if got, want := precision.Precision(20).String(), "Precision(20)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYAML(t *testing.T) {
	var cfg struct {
		A precision.Precision `yaml:"a"`
		B precision.Precision `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: month\nb: 7\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.A, precision.Month; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.B, precision.Year100; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "a: Month\nb: Year100\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
