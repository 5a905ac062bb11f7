// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package clock converts instants into decimal time: an absolute day
// number paired with the elapsed fraction of that day. The fraction is an
// exact rational in [0, 1); instants before the planet's epoch land on
// negative days with the fraction still measured forwards, so -1.5 days
// is day -2 at fraction 0.5.
package clock

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/decitime"
	"cloudeng.io/decitime/planet"
)

// Timestamp pairs an absolute day with the elapsed fraction of that day.
type Timestamp struct {
	Day  decitime.AbsoluteDay
	Frac *big.Rat // in [0, 1)
}

// Converter turns instants into Timestamps for a planet profile.
type Converter struct {
	secondsPerAC *big.Rat
	epochSeconds *big.Rat
	cal          decitime.Calendar
}

// NewConverter returns a Converter for the supplied profile. The profile
// is validated and its calendar derived once, up front.
func NewConverter(p planet.Profile) (*Converter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cal, err := p.Calendar()
	if err != nil {
		return nil, err
	}
	return &Converter{
		secondsPerAC: p.SecondsPerAC.Rat(),
		epochSeconds: new(big.Rat).SetInt64(p.EpochOffsetSeconds),
		cal:          cal,
	}, nil
}

// Calendar returns the calendar the converter renders dates against.
func (c *Converter) Calendar() decitime.Calendar {
	return c.cal
}

// SecondsPerAC returns the exact length of the profile's day in SI
// seconds.
func (c *Converter) SecondsPerAC() *big.Rat {
	return new(big.Rat).Set(c.secondsPerAC)
}

// ratFloor returns floor(r) as an integer; big.Int.DivMod is Euclidean so
// negative values floor correctly.
func ratFloor(r *big.Rat) *big.Int {
	q := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), new(big.Int))
	return q
}

// FromElapsedSeconds converts SI seconds since the planet's Time Zero
// into a Timestamp.
func (c *Converter) FromElapsedSeconds(sec *big.Rat) Timestamp {
	ac := new(big.Rat).Quo(sec, c.secondsPerAC)
	day := ratFloor(ac)
	frac := ac.Sub(ac, new(big.Rat).SetInt(day))
	return Timestamp{Day: decitime.AbsoluteDay(day.Int64()), Frac: frac}
}

// FromUnixNanos converts a Unix time in nanoseconds into a Timestamp.
// Nanoseconds are exact in the rational domain; no precision is lost
// before the division by the day length.
func (c *Converter) FromUnixNanos(ns int64) Timestamp {
	elapsed := big.NewRat(ns, int64(time.Second))
	elapsed.Sub(elapsed, c.epochSeconds)
	return c.FromElapsedSeconds(elapsed)
}

// FromTime converts a time.Time into a Timestamp.
func (c *Converter) FromTime(t time.Time) Timestamp {
	return c.FromUnixNanos(t.UnixNano())
}

// Now returns the current decimal time.
func (c *Converter) Now() Timestamp {
	return c.FromTime(time.Now())
}

// Composite returns the megacycle (0-99), kilocycle (0-9) and cycle (0-9)
// digits of the day fraction, truncated.
func (ts Timestamp) Composite() (mc, kc, cc int) {
	t := new(big.Rat).Mul(ts.Frac, big.NewRat(10000, 1))
	n := int(ratFloor(t).Int64())
	return n / 100, (n % 100) / 10, n % 10
}

// Fraction renders the day fraction to the given number of decimal
// places, rounding half away from zero.
func (ts Timestamp) Fraction(places int) string {
	return ts.Frac.FloatString(places)
}

// Percent renders the day fraction as a percentage (0-100) to the given
// number of decimal places.
func (ts Timestamp) Percent(places int) string {
	p := new(big.Rat).Mul(ts.Frac, big.NewRat(100, 1))
	return p.FloatString(places)
}

// Format renders ts against cal using a limited directive set:
//
//	%Y  solar cycle (year)
//	%j  day of year (001..)
//	%A  day fraction to 6 places
//	%M  megacycle (00-99)
//	%K  kilocycle (0-9)
//	%C  cycle (0-9)
//	%p  percent of day to 2 places
func Format(format string, cal decitime.Calendar, ts Timestamp) string {
	d := cal.FromAbsoluteDay(ts.Day)
	mc, kc, cc := ts.Composite()
	return strings.NewReplacer(
		"%Y", strconv.FormatInt(d.Year, 10),
		"%j", fmt.Sprintf("%03d", d.Day),
		"%A", ts.Fraction(6),
		"%M", fmt.Sprintf("%02d", mc),
		"%K", strconv.Itoa(kc),
		"%C", strconv.Itoa(cc),
		"%p", ts.Percent(2),
	).Replace(format)
}

// ISO renders ts as an ISO-like 'YYYY-DDD 0.FFFFFF AC' string.
func ISO(cal decitime.Calendar, ts Timestamp, places int) string {
	return fmt.Sprintf("%v %s AC", cal.FromAbsoluteDay(ts.Day), ts.Fraction(places))
}
