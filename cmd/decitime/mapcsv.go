// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

type mapFlags struct {
	ProfileFlags
	Year   int    `subcmd:"year,2026,Gregorian year to map"`
	Output string `subcmd:"output,,'output file; defaults to stdout'"`
}

func mapYear(_ context.Context, values interface{}, _ []string) error {
	fl := values.(*mapFlags)
	p, err := profileFromFlags(fl.ProfileFlags)
	if err != nil {
		return err
	}
	cal, err := p.Calendar()
	if err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if len(fl.Output) > 0 {
		f, err := os.Create(fl.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	m, err := gregorianAnchor(cal)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	if err := w.Write([]string{"gregorian_date", "dsc_year", "dsc_day_of_year", "dsc_month", "dsc_day", "dsc_formatted"}); err != nil {
		return err
	}
	start := time.Date(fl.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for t := start; t.Year() == fl.Year; t = t.AddDate(0, 0, 1) {
		d := m.FromTime(t)
		month, dom, err := cal.MonthDay(d)
		if err != nil {
			return err
		}
		rec := []string{
			t.Format(time.DateOnly),
			strconv.FormatInt(d.Year, 10),
			strconv.Itoa(d.Day),
			strconv.Itoa(int(month)),
			strconv.Itoa(dom),
			fmt.Sprintf("%04d-%v-%02d", d.Year, month, dom),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
