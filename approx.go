// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidPrecisionBound indicates a maximum cycle length of less
	// than one year.
	ErrInvalidPrecisionBound = errors.New("invalid precision bound")
	// ErrNonConvergent indicates that the continued fraction expansion
	// failed to terminate within maxConvergentSteps.
	ErrNonConvergent = errors.New("non-convergent approximation")
)

// RationalApproximation represents an average year length of
// baseYearLength + LeapUnits/CycleYears days, ie. LeapUnits extra days
// spread over a repeating cycle of CycleYears years. The fraction is
// always in lowest terms with 0 <= LeapUnits <= CycleYears; the boundary
// LeapUnits == CycleYears (a fractional part that rounded up to a whole
// day at a coarse precision bound) is folded into the base year length by
// BuildLeapCycle.
type RationalApproximation struct {
	LeapUnits  int
	CycleYears int
}

func (ra RationalApproximation) String() string {
	return fmt.Sprintf("%d/%d", ra.LeapUnits, ra.CycleYears)
}

// Rat returns LeapUnits/CycleYears as an exact rational.
func (ra RationalApproximation) Rat() *big.Rat {
	return big.NewRat(int64(ra.LeapUnits), int64(ra.CycleYears))
}

// maxConvergentSteps bounds the continued fraction expansion. Every step
// at least doubles the denominator every two iterations, so any bound
// representable as an int is reached well before this.
const maxConvergentSteps = 64

// Approximate selects the best rational approximation of the fractional
// part of period with a denominator of at most maxCycleYears, using the
// standard continued fraction convergents. Successive convergents are
// provably the best approximations for their denominator size, so the
// last convergent within the bound is returned; this is the same principle
// that underlies the familiar 1/4 and 97/400 leap schemes, generalized to
// arbitrary periods.
//
// An integer period yields 0/1: no leap years are ever needed.
func Approximate(period OrbitalPeriod, maxCycleYears int) (RationalApproximation, error) {
	if maxCycleYears < 1 {
		return RationalApproximation{}, fmt.Errorf("max cycle years %d: %w", maxCycleYears, ErrInvalidPrecisionBound)
	}
	if period.IsZero() || period.days.Sign() <= 0 {
		return RationalApproximation{}, ErrInvalidPeriod
	}
	f := period.frac()
	if f.Sign() == 0 {
		return RationalApproximation{LeapUnits: 0, CycleYears: 1}, nil
	}
	// Convergents h/k of f via the Euclidean algorithm on num/den with
	// the usual recurrence h(n) = a(n)h(n-1) + h(n-2), likewise for k.
	num := new(big.Int).Set(f.Num())
	den := new(big.Int).Set(f.Denom())
	h1, h2 := big.NewInt(1), big.NewInt(0)
	k1, k2 := big.NewInt(0), big.NewInt(1)
	limit := big.NewInt(int64(maxCycleYears))
	best := RationalApproximation{LeapUnits: 0, CycleYears: 1}
	for step := 0; step < maxConvergentSteps; step++ {
		a, rem := new(big.Int).QuoRem(num, den, new(big.Int))
		h := new(big.Int).Mul(a, h1)
		h.Add(h, h2)
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k2)
		if k.Cmp(limit) > 0 {
			return best, nil
		}
		// Each new convergent strictly reduces |f - h/k|, so the last
		// one within the bound is the best, including at the exact
		// boundary k == maxCycleYears.
		best = RationalApproximation{LeapUnits: int(h.Int64()), CycleYears: int(k.Int64())}
		if rem.Sign() == 0 {
			// The expansion terminated: f is exactly h/k.
			return best, nil
		}
		h2, h1 = h1, h
		k2, k1 = k1, k
		num, den = den, rem
	}
	return RationalApproximation{}, fmt.Errorf("no convergent within %d steps for %v: %w", maxConvergentSteps, period, ErrNonConvergent)
}
