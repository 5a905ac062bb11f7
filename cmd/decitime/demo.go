// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/decitime"
	"cloudeng.io/decitime/clock"
	"cloudeng.io/decitime/gregorian"
)

type demoFlags struct {
	ProfileFlags
}

// gregorianAnchor aligns DSC year 2000, day 1 with Gregorian 2000-01-01
// so that year numbers stay roughly in step for the demo output.
func gregorianAnchor(cal decitime.Calendar) (gregorian.Mapping, error) {
	return gregorian.NewMappingAt(cal,
		decitime.Date{Year: 2000, Day: 1},
		datetime.NewCalendarDate(2000, datetime.Month(time.January), 1))
}

func demo(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*demoFlags)
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	conv, err := clock.NewConverter(p)
	if err != nil {
		return err
	}
	cal := conv.Calendar()

	fmt.Printf("profile: %v\n", p.Name)
	fmt.Printf("cycle:   %v\n", cal.Cycle())
	fmt.Println()

	ts := conv.Now()
	d := cal.FromAbsoluteDay(ts.Day)
	month, dom, err := cal.MonthDay(d)
	if err != nil {
		return err
	}
	mc, kc, cc := ts.Composite()
	fmt.Printf("now:     %v\n", clock.ISO(cal, ts, 6))
	fmt.Printf("date:    year %v, %v day %02d (day %03d of year)\n", d.Year, month, dom, d.Day)
	fmt.Printf("time:    MC%02d kC%d C%d (%v%% of the day elapsed)\n", mc, kc, cc, ts.Percent(2))
	fmt.Println()

	m, err := gregorianAnchor(cal)
	if err != nil {
		return err
	}
	today := m.FromTime(time.Now().UTC())
	cd, err := m.ToGregorian(today)
	if err != nil {
		return err
	}
	fmt.Printf("mapping: DSC %v is Gregorian %04d-%02d-%02d\n", today, cd.Year(), int(cd.Month()), cd.Day())
	return nil
}
