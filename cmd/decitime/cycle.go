// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/big"

	"cloudeng.io/decitime"
	"cloudeng.io/decitime/units"
)

type cycleFlags struct {
	Period        string `subcmd:"period,365.2422,orbital period in local days"`
	MaxCycleYears int    `subcmd:"max-cycle-years,400,longest acceptable leap cycle in years"`
}

func cycle(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*cycleFlags)
	var period decitime.OrbitalPeriod
	if err := period.Parse(fl.Period); err != nil {
		return err
	}
	approx, err := decitime.Approximate(period, fl.MaxCycleYears)
	if err != nil {
		return err
	}
	lc, err := decitime.DeriveLeapCycle(period, fl.MaxCycleYears)
	if err != nil {
		return err
	}
	errPerYear := new(big.Rat).Sub(lc.AverageYearLength(), period.Days())
	fmt.Printf("orbital period:      %v days\n", units.FormatRat(period.Days()))
	fmt.Printf("approximation:       %v leap days per cycle\n", approx)
	fmt.Printf("average year length: %v days\n", units.FormatRat(lc.AverageYearLength()))
	fmt.Printf("error per year:      %v days\n", units.FormatRat(errPerYear))
	fmt.Printf("cycle:               %v\n", lc)
	return nil
}
