// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime_test

import (
	"sync"
	"testing"

	"cloudeng.io/decitime"
)

func TestDeriveLeapCycle(t *testing.T) {
	period := mustPeriod(t, "365.2422")
	lc, err := decitime.DeriveLeapCycle(period, 400)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := lc.LeapUnits(), 31; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := lc.CycleYears(), 128; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The same period at a different bound is a distinct derivation.
	lc4, err := decitime.DeriveLeapCycle(period, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := lc4.CycleYears(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := decitime.DeriveLeapCycle(decitime.OrbitalPeriod{}, 400); err == nil {
		t.Errorf("expected an error for the zero period")
	}
}

func TestDeriveLeapCycleConcurrent(t *testing.T) {
	period := mustPeriod(t, "668.5921")
	var wg sync.WaitGroup
	results := make([]decitime.LeapCycle, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lc, err := decitime.DeriveLeapCycle(period, 400)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = lc
		}()
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if results[i].String() != results[0].String() {
			t.Errorf("derivation %v differs: %v vs %v", i, results[i], results[0])
		}
	}
}
