// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package decitime implements the Decimal Solar Calendar (DSC): a calendar
// engine that derives a deterministic leap-year pattern for an arbitrary
// orbital period and uses that pattern to convert between calendar dates
// and an absolute, monotonically increasing day count.
//
// The derivation proceeds in two steps. Approximate expands the fractional
// part of the orbital period as a continued fraction and selects the best
// rational approximation leapUnits/cycleYears whose denominator does not
// exceed a configured bound. BuildLeapCycle then distributes those leap
// days as evenly as possible across the cycle. The resulting LeapCycle is
// immutable and may be shared freely across goroutines; Calendar uses it
// to provide an exact bijection between (year, day of year) pairs and
// absolute day numbers.
//
// All arithmetic that claims exactness is performed over math/big rationals
// rather than floating point.
package decitime

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ErrInvalidPeriod indicates an orbital period that is not a positive,
// finite number of days.
var ErrInvalidPeriod = errors.New("invalid orbital period")

// OrbitalPeriod is the length of one orbit expressed in Astrocycles (local
// days), held as an exact rational. The zero value is invalid; create one
// via Parse, NewOrbitalPeriod or OrbitalPeriodFromFloat.
type OrbitalPeriod struct {
	days *big.Rat
}

// NewOrbitalPeriod returns an OrbitalPeriod for the supplied number of
// days, which must be positive. The value is copied.
func NewOrbitalPeriod(days *big.Rat) (OrbitalPeriod, error) {
	if days == nil || days.Sign() <= 0 {
		return OrbitalPeriod{}, ErrInvalidPeriod
	}
	return OrbitalPeriod{days: new(big.Rat).Set(days)}, nil
}

// OrbitalPeriodFromFloat returns an OrbitalPeriod for the supplied float64.
// The float is interpreted via its shortest decimal representation, so
// 365.2422 means exactly 3652422/10000 rather than the nearest binary
// float.
func OrbitalPeriodFromFloat(days float64) (OrbitalPeriod, error) {
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return OrbitalPeriod{}, fmt.Errorf("non-finite value: %w", ErrInvalidPeriod)
	}
	var p OrbitalPeriod
	if err := p.Parse(strconv.FormatFloat(days, 'f', -1, 64)); err != nil {
		return OrbitalPeriod{}, err
	}
	return p, nil
}

// Parse parses a positive decimal (or rational, eg. '1461/4') number of
// days, eg. '365.2422'.
func (p *OrbitalPeriod) Parse(val string) error {
	r, ok := new(big.Rat).SetString(val)
	if !ok {
		return fmt.Errorf("invalid days %q: %w", val, ErrInvalidPeriod)
	}
	if r.Sign() <= 0 {
		return fmt.Errorf("days must be positive: %v: %w", val, ErrInvalidPeriod)
	}
	p.days = r
	return nil
}

// IsZero returns true for the invalid zero value.
func (p OrbitalPeriod) IsZero() bool {
	return p.days == nil
}

// Days returns a copy of the period as an exact rational number of days.
func (p OrbitalPeriod) Days() *big.Rat {
	if p.days == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.days)
}

// BaseYearLength returns the whole number of days in a common year, ie.
// floor of the period.
func (p OrbitalPeriod) BaseYearLength() int {
	if p.days == nil {
		return 0
	}
	q := new(big.Int).Quo(p.days.Num(), p.days.Denom())
	return int(q.Int64())
}

// frac returns the fractional part of the period, in [0, 1).
func (p OrbitalPeriod) frac() *big.Rat {
	f := new(big.Rat).SetInt64(int64(p.BaseYearLength()))
	return f.Sub(p.days, f)
}

// String returns the canonical rational form of the period, eg.
// '1826211/5000' for 365.2422. It is stable and suitable for use as a
// cache key.
func (p OrbitalPeriod) String() string {
	if p.days == nil {
		return "0"
	}
	return p.days.RatString()
}
