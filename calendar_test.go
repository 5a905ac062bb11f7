// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime_test

import (
	"errors"
	"testing"

	"cloudeng.io/decitime"
)

func earthCalendar(t *testing.T) decitime.Calendar {
	t.Helper()
	lc, err := decitime.DeriveLeapCycle(mustPeriod(t, "365.2422"), 400)
	if err != nil {
		t.Fatal(err)
	}
	return decitime.NewCalendar(lc, 0)
}

func TestCalendarRoundTrip(t *testing.T) {
	cal := earthCalendar(t)
	// Dates to days and back, spanning several cycles either side of
	// year 0.
	for year := int64(-300); year <= 300; year++ {
		for _, day := range []int{1, 2, 100, cal.YearLength(year) - 1, cal.YearLength(year)} {
			d := decitime.Date{Year: year, Day: day}
			ad, err := cal.ToAbsoluteDay(d)
			if err != nil {
				t.Fatalf("%v: %v", d, err)
			}
			if got := cal.FromAbsoluteDay(ad); got != d {
				t.Fatalf("day %v: got %v, want %v", ad, got, d)
			}
		}
	}
	// Days to dates and back over a contiguous run crossing the epoch
	// and a cycle boundary.
	for ad := decitime.AbsoluteDay(-50000); ad <= 50000; ad += 37 {
		d := cal.FromAbsoluteDay(ad)
		got, err := cal.ToAbsoluteDay(d)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if got != ad {
			t.Fatalf("%v: got %v, want %v", d, got, ad)
		}
	}
}

func TestCalendarSequential(t *testing.T) {
	cal := earthCalendar(t)
	// The closed form must agree with simply counting days year by year.
	ad, err := cal.ToAbsoluteDay(decitime.Date{Year: -130, Day: 1})
	if err != nil {
		t.Fatal(err)
	}
	for year := int64(-130); year <= 130; year++ {
		got, err := cal.ToAbsoluteDay(decitime.Date{Year: year, Day: 1})
		if err != nil {
			t.Fatal(err)
		}
		if got != ad {
			t.Fatalf("year %v: got %v, want %v", year, got, ad)
		}
		ad += decitime.AbsoluteDay(cal.YearLength(year))
	}
}

func TestCalendarEpoch(t *testing.T) {
	lc, err := decitime.DeriveLeapCycle(mustPeriod(t, "365.25"), 4)
	if err != nil {
		t.Fatal(err)
	}
	cal := decitime.NewCalendar(lc, 1000)
	ad, err := cal.ToAbsoluteDay(decitime.Date{Year: 0, Day: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ad, decitime.AbsoluteDay(1000); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Year -1 is at offset 3 of its cycle and so is a leap year.
	if got, want := cal.FromAbsoluteDay(999), (decitime.Date{Year: -1, Day: 366}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarLeapYears(t *testing.T) {
	cal := earthCalendar(t)
	leaps := 0
	for year := int64(0); year < 128; year++ {
		if cal.IsLeap(year) {
			leaps++
			if got, want := cal.YearLength(year), 366; got != want {
				t.Errorf("year %v: got %v, want %v", year, got, want)
			}
		}
	}
	if got, want := leaps, 31; got != want {
		t.Errorf("got %v leap years, want %v", got, want)
	}
	// Negative years follow the same repeating pattern.
	for year := int64(-128); year < 0; year++ {
		if got, want := cal.IsLeap(year), cal.IsLeap(year+128); got != want {
			t.Errorf("year %v: got %v, want %v", year, got, want)
		}
	}
}

func TestCalendarDayOfYearRange(t *testing.T) {
	cal := earthCalendar(t)
	for _, d := range []decitime.Date{
		{Year: 0, Day: 0},
		{Year: 0, Day: -1},
		{Year: 0, Day: 366}, // year 0 is not a leap year
		{Year: 4, Day: 367}, // year 4 is
	} {
		if _, err := cal.ToAbsoluteDay(d); !errors.Is(err, decitime.ErrDayOfYearOutOfRange) {
			t.Errorf("%v: got %v, want %v", d, err, decitime.ErrDayOfYearOutOfRange)
		}
	}
	if _, err := cal.ToAbsoluteDay(decitime.Date{Year: 4, Day: 366}); err != nil {
		t.Errorf("leap day: %v", err)
	}
}

func TestDateParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want decitime.Date
	}{
		{"2026-166", decitime.Date{Year: 2026, Day: 166}},
		{"0000-001", decitime.Date{Year: 0, Day: 1}},
		{"-0004-365", decitime.Date{Year: -4, Day: 365}},
	} {
		var d decitime.Date
		if err := d.Parse(tc.val); err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if d != tc.want {
			t.Errorf("%q: got %v, want %v", tc.val, d, tc.want)
		}
		var back decitime.Date
		if err := back.Parse(d.String()); err != nil || back != d {
			t.Errorf("%v: round trip got %v, %v", d, back, err)
		}
	}
	for _, val := range []string{"", "2026", "2026-0", "2026-abc", "x-166", "2026-"} {
		var d decitime.Date
		if err := d.Parse(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}
