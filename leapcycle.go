// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime

import (
	"fmt"
	"math/big"
	"strings"

	"cloudeng.io/algo/container/bitmap"
)

// LeapCycle is the smallest repeating block of years over which a leap
// pattern exactly repeats: cycleYears years, of which leapUnits receive an
// extra day on top of baseYearLength. The year offsets receiving the extra
// day are fixed at construction and the value is immutable thereafter; it
// may be read concurrently without synchronization.
type LeapCycle struct {
	baseYearLength int
	cycleYears     int
	leapUnits      int
	offsets        bitmap.T
}

// BuildLeapCycle distributes approx.LeapUnits leap years as evenly as
// possible across approx.CycleYears year slots using an error accumulator
// (Bresenham style): walking the years of a cycle, a year becomes a leap
// year whenever the accumulated fraction crosses a whole day. For 1/4 this
// reproduces 'every 4th year'; for denser fractions it spreads the leap
// years with minimal local clustering.
//
// The boundary approximation CycleYears/CycleYears (reduced to 1/1) means
// every year carries the extra day and is folded into baseYearLength+1
// with no leap years.
func BuildLeapCycle(baseYearLength int, approx RationalApproximation) (LeapCycle, error) {
	if baseYearLength < 1 {
		return LeapCycle{}, fmt.Errorf("base year length %d: %w", baseYearLength, ErrInvalidPeriod)
	}
	l, c := approx.LeapUnits, approx.CycleYears
	if c < 1 || l < 0 || l > c {
		return LeapCycle{}, fmt.Errorf("approximation %v: %w", approx, ErrInvalidPeriod)
	}
	if l == c {
		baseYearLength++
		l, c = 0, 1
	}
	lc := LeapCycle{baseYearLength: baseYearLength, cycleYears: c, leapUnits: l}
	if l > 0 {
		lc.offsets = bitmap.New(c)
		acc := 0
		for i := 0; i < c; i++ {
			acc += l
			if acc >= c {
				lc.offsets.Set(i)
				acc -= c
			}
		}
	}
	// The distribution must account for every leap day exactly once and
	// agree with the closed form used for date arithmetic.
	total := 0
	for i := 0; i < c; i++ {
		leap := lc.IsLeapOffset(i)
		if leap != (lc.leapsBefore(i+1)-lc.leapsBefore(i) == 1) {
			return LeapCycle{}, fmt.Errorf("leap distribution for %v is inconsistent at year offset %d", approx, i)
		}
		total += lc.baseYearLength
		if leap {
			total++
		}
	}
	if total != lc.DaysPerCycle() {
		return LeapCycle{}, fmt.Errorf("leap cycle for %v totals %d days, want %d", approx, total, lc.DaysPerCycle())
	}
	return lc, nil
}

// BaseYearLength returns the number of days in a common year.
func (lc LeapCycle) BaseYearLength() int {
	return lc.baseYearLength
}

// CycleYears returns the number of years in one cycle.
func (lc LeapCycle) CycleYears() int {
	return lc.cycleYears
}

// LeapUnits returns the number of leap days added over one cycle.
func (lc LeapCycle) LeapUnits() int {
	return lc.leapUnits
}

// DaysPerCycle returns the total number of days in one cycle.
func (lc LeapCycle) DaysPerCycle() int {
	return lc.cycleYears*lc.baseYearLength + lc.leapUnits
}

// IsLeapOffset returns true if the year at the given 0-based offset within
// a cycle is a leap year.
func (lc LeapCycle) IsLeapOffset(offset int) bool {
	return lc.offsets.IsSet(offset)
}

// LeapYearOffsets returns the 0-based year offsets within one cycle that
// receive an extra day, in increasing order.
func (lc LeapCycle) LeapYearOffsets() []int {
	if lc.leapUnits == 0 {
		return nil
	}
	out := make([]int, 0, lc.leapUnits)
	for i := range lc.offsets.AllSet(0, lc.cycleYears) {
		out = append(out, i)
	}
	return out
}

// leapsBefore returns the number of leap years among the first n year
// offsets of a cycle. It is the closed form of the accumulator used by
// BuildLeapCycle: floor(n*leapUnits/cycleYears).
func (lc LeapCycle) leapsBefore(n int) int {
	return n * lc.leapUnits / lc.cycleYears
}

// AverageYearLength returns the exact mean year length over one cycle,
// baseYearLength + leapUnits/cycleYears days.
func (lc LeapCycle) AverageYearLength() *big.Rat {
	r := big.NewRat(int64(lc.leapUnits), int64(lc.cycleYears))
	return r.Add(r, new(big.Rat).SetInt64(int64(lc.baseYearLength)))
}

// String returns a summary such as '365+31/128 days, leap years at 3, 7, ...'.
func (lc LeapCycle) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%d+%d/%d days", lc.baseYearLength, lc.leapUnits, lc.cycleYears)
	if lc.leapUnits > 0 {
		out.WriteString(", leap years at ")
		for i, o := range lc.LeapYearOffsets() {
			if i > 0 {
				out.WriteString(", ")
			}
			fmt.Fprintf(&out, "%d", o)
		}
	}
	return out.String()
}
