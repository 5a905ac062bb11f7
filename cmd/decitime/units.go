// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"cloudeng.io/decitime/units"
)

type unitsFlags struct {
	ProfileFlags
}

func unitsTable(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*unitsFlags)
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	spa := p.SecondsPerAC.Rat()
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "symbol\tname\tfraction of AC\tseconds on %v\n", p.Name)
	for _, u := range units.Table {
		fmt.Fprintf(tw, "%v\t%v\t10^-%d\t%v\n", u.Symbol, u.Name, u.Exp, units.FormatRat(u.Seconds(spa)))
	}
	return tw.Flush()
}
