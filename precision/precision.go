// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package precision provides the ordered scale of granularities at which
// a point in time may be asserted to be known, from billions of years
// down to seconds.
package precision

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Precision is the granularity of a time value. Lower values are coarser.
// Values outside of Gigayear..Second are accepted and passed through
// unchanged.
type Precision int

const (
	Gigayear    Precision = iota // billions of years
	Megayear100                  // hundreds of millions of years
	Megayear10                   // tens of millions of years
	Megayear                     // millions of years
	Kiloyear100                  // hundreds of thousands of years
	Kiloyear10                   // tens of thousands of years
	Kiloyear                     // millennia
	Year100                      // centuries
	Year10                       // decades
	Year
	Month
	Day
	Hour
	Minute
	Second
)

var names = []string{
	"Gigayear",
	"Megayear100",
	"Megayear10",
	"Megayear",
	"Kiloyear100",
	"Kiloyear10",
	"Kiloyear",
	"Year100",
	"Year10",
	"Year",
	"Month",
	"Day",
	"Hour",
	"Minute",
	"Second",
}

// All returns all of the defined precisions, coarsest first.
func All() []Precision {
	all := make([]Precision, len(names))
	for i := range names {
		all[i] = Precision(i)
	}
	return all
}

// Valid returns true if p is one of the defined precisions.
func (p Precision) Valid() bool {
	return p >= Gigayear && p <= Second
}

// String implements fmt.Stringer.
func (p Precision) String() string {
	if p.Valid() {
		return names[p]
	}
	return "Precision(" + strconv.Itoa(int(p)) + ")"
}

// Years returns the number of years spanned by a single unit of p for
// precisions coarser than Year, and 1 for Year and all finer precisions.
func (p Precision) Years() int64 {
	if p >= Year || p < Gigayear {
		return 1
	}
	n := int64(1)
	for i := p; i < Year; i++ {
		n *= 10
	}
	return n
}

// Parse parses a precision specified either by name (case insensitive) or
// by its integer code. Integer codes outside of the defined range are
// accepted.
func Parse(val string) (Precision, error) {
	val = strings.TrimSpace(val)
	for i, n := range names {
		if strings.EqualFold(n, val) {
			return Precision(i), nil
		}
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid precision: %q", val)
	}
	return Precision(n), nil
}

// Set implements flag.Value.
func (p *Precision) Set(val string) error {
	n, err := Parse(val)
	if err != nil {
		return err
	}
	*p = n
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Precision) UnmarshalYAML(value *yaml.Node) error {
	return p.Set(value.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (p Precision) MarshalYAML() (any, error) {
	return p.String(), nil
}
