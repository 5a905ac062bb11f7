// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime

import "sync"

type cycleKey struct {
	period        string
	maxCycleYears int
}

var (
	derivedMu sync.Mutex
	derived   = map[cycleKey]LeapCycle{} // GUARDED_BY(derivedMu)
)

// DeriveLeapCycle approximates the fractional part of period and builds
// the leap cycle for it, memoizing the result. Profiles are few and
// conversions many, so repeated derivations for the same period and bound
// return the cached cycle; the key space is bounded by the number of
// distinct planet profiles in use and entries are never evicted.
func DeriveLeapCycle(period OrbitalPeriod, maxCycleYears int) (LeapCycle, error) {
	if period.IsZero() {
		return LeapCycle{}, ErrInvalidPeriod
	}
	key := cycleKey{period.String(), maxCycleYears}
	derivedMu.Lock()
	cycle, ok := derived[key]
	derivedMu.Unlock()
	if ok {
		return cycle, nil
	}
	approx, err := Approximate(period, maxCycleYears)
	if err != nil {
		return LeapCycle{}, err
	}
	cycle, err = BuildLeapCycle(period.BaseYearLength(), approx)
	if err != nil {
		return LeapCycle{}, err
	}
	derivedMu.Lock()
	derived[key] = cycle
	derivedMu.Unlock()
	return cycle, nil
}
