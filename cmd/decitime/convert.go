// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/decitime"
	"cloudeng.io/errors"
)

type convertFlags struct {
	ProfileFlags
}

func dateToDay(_ context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	if len(args) == 0 {
		return fmt.Errorf("no dates specified")
	}
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	cal, err := p.Calendar()
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		var d decitime.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		day, err := cal.ToAbsoluteDay(d)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%v: day %v\n", d, day)
	}
	return errs.Err()
}

func dayToDate(_ context.Context, values interface{}, args []string) error {
	fl := values.(*convertFlags)
	if len(args) == 0 {
		return fmt.Errorf("no day numbers specified")
	}
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	cal, err := p.Calendar()
	if err != nil {
		return err
	}
	errs := errors.M{}
	for _, arg := range args {
		day, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			errs.Append(fmt.Errorf("invalid day number %q: %w", arg, err))
			continue
		}
		d := cal.FromAbsoluteDay(decitime.AbsoluteDay(day))
		month, dom, err := cal.MonthDay(d)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("day %v: %v (%v-%v-%02d)\n", day, d, d.Year, month, dom)
	}
	return errs.Err()
}
