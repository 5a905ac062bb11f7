// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"cloudeng.io/decitime"
)

func mustPeriod(t *testing.T, val string) decitime.OrbitalPeriod {
	t.Helper()
	var p decitime.OrbitalPeriod
	if err := p.Parse(val); err != nil {
		t.Fatalf("%v: %v", val, err)
	}
	return p
}

func TestApproximate(t *testing.T) {
	for _, tc := range []struct {
		period        string
		maxCycleYears int
		leaps, years  int
	}{
		// The canonical tropical year: the best cycle within 400 years
		// is 31 leap days over 128 years, not the Gregorian 97/400.
		{"365.2422", 400, 31, 128},
		{"365.2422", 128, 31, 128},
		{"365.2422", 127, 8, 33},
		{"365.2422", 4, 1, 4},
		{"365.2422", 1, 0, 1},
		// Julian year: the expansion terminates exactly.
		{"365.25", 4, 1, 4},
		{"365.25", 400, 1, 4},
		// Integer periods need no leap years at all.
		{"687", 400, 0, 1},
		{"1461/4", 4, 1, 4},
		// A fractional part close to a whole day folds to 1/1 at a
		// coarse bound.
		{"365.9", 1, 1, 1},
	} {
		ra, err := decitime.Approximate(mustPeriod(t, tc.period), tc.maxCycleYears)
		if err != nil {
			t.Errorf("%v/%v: %v", tc.period, tc.maxCycleYears, err)
			continue
		}
		if got, want := ra, (decitime.RationalApproximation{LeapUnits: tc.leaps, CycleYears: tc.years}); got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.period, tc.maxCycleYears, got, want)
		}
	}
}

func TestApproximateBound(t *testing.T) {
	// The selected denominator never exceeds the bound and the
	// approximation error never exceeds that of the naive truncation.
	period := mustPeriod(t, "668.5921")
	for _, bound := range []int{1, 2, 10, 100, 400, 1000} {
		ra, err := decitime.Approximate(period, bound)
		if err != nil {
			t.Fatalf("bound %v: %v", bound, err)
		}
		if ra.CycleYears < 1 || ra.CycleYears > bound {
			t.Errorf("bound %v: cycle years %v out of range", bound, ra.CycleYears)
		}
		if ra.LeapUnits < 0 || ra.LeapUnits > ra.CycleYears {
			t.Errorf("bound %v: %v not in [0, 1]", bound, ra)
		}
		// Continued fraction theory: the error of a convergent is below
		// 1/cycleYears.
		frac := new(big.Rat).Sub(period.Days(), new(big.Rat).SetInt64(int64(period.BaseYearLength())))
		diff := new(big.Rat).Sub(frac, ra.Rat())
		if diff.Abs(diff).Cmp(big.NewRat(1, int64(ra.CycleYears))) > 0 {
			t.Errorf("bound %v: error %v exceeds 1/%v", bound, diff, ra.CycleYears)
		}
	}
}

func TestApproximateErrors(t *testing.T) {
	period := mustPeriod(t, "365.2422")
	if _, err := decitime.Approximate(period, 0); !errors.Is(err, decitime.ErrInvalidPrecisionBound) {
		t.Errorf("got %v, want %v", err, decitime.ErrInvalidPrecisionBound)
	}
	if _, err := decitime.Approximate(decitime.OrbitalPeriod{}, 400); !errors.Is(err, decitime.ErrInvalidPeriod) {
		t.Errorf("got %v, want %v", err, decitime.ErrInvalidPeriod)
	}
}

func TestOrbitalPeriod(t *testing.T) {
	p, err := decitime.OrbitalPeriodFromFloat(365.2422)
	if err != nil {
		t.Fatal(err)
	}
	// The float is interpreted as its decimal rendering, exactly.
	if got, want := p.String(), "1826211/5000"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.BaseYearLength(), 365; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, -365.25} {
		if _, err := decitime.OrbitalPeriodFromFloat(val); !errors.Is(err, decitime.ErrInvalidPeriod) {
			t.Errorf("%v: got %v, want %v", val, err, decitime.ErrInvalidPeriod)
		}
	}
	for _, val := range []string{"", "x", "0", "-1.5", "1/0"} {
		var p decitime.OrbitalPeriod
		if err := p.Parse(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}
