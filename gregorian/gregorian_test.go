// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/decitime"
	"cloudeng.io/decitime/gregorian"
	"cloudeng.io/decitime/planet"
)

func earthMapping(t *testing.T) gregorian.Mapping {
	t.Helper()
	cal, err := planet.Earth.Calendar()
	if err != nil {
		t.Fatal(err)
	}
	m, err := gregorian.NewMappingAt(cal,
		decitime.Date{Year: 2000, Day: 1},
		datetime.NewCalendarDate(2000, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMappingAlignment(t *testing.T) {
	m := earthMapping(t)
	for _, tc := range []struct {
		gregorian datetime.CalendarDate
		want      decitime.Date
	}{
		{datetime.NewCalendarDate(2000, 1, 1), decitime.Date{Year: 2000, Day: 1}},
		{datetime.NewCalendarDate(2000, 6, 14), decitime.Date{Year: 2000, Day: 166}},
		// Gregorian 2000 has 366 days but DSC year 2000 has 365, so the
		// two new years drift apart immediately.
		{datetime.NewCalendarDate(2000, 12, 31), decitime.Date{Year: 2001, Day: 1}},
		{datetime.NewCalendarDate(1999, 12, 31), decitime.Date{Year: 1999, Day: 365}},
	} {
		if got := m.FromGregorian(tc.gregorian); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.gregorian, got, tc.want)
		}
	}
}

func TestMappingRoundTrip(t *testing.T) {
	m := earthMapping(t)
	start := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100*366; i += 13 {
		tt := start.AddDate(0, 0, i)
		cd := datetime.NewCalendarDate(tt.Year(), datetime.Month(tt.Month()), tt.Day())
		d := m.FromGregorian(cd)
		back, err := m.ToGregorian(d)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if back != cd {
			t.Fatalf("%v: got %v, want %v", cd, back, d)
		}
	}
}

func TestMappingFromTime(t *testing.T) {
	m := earthMapping(t)
	// Any instant within a Gregorian day maps to the same DSC date.
	want := decitime.Date{Year: 2000, Day: 1}
	for _, tt := range []time.Time{
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 1, 23, 59, 59, 0, time.UTC),
	} {
		if got := m.FromTime(tt); got != want {
			t.Errorf("%v: got %v, want %v", tt, got, want)
		}
	}
}

func TestMappingEpochConvention(t *testing.T) {
	cal, err := planet.Earth.Calendar()
	if err != nil {
		t.Fatal(err)
	}
	m := gregorian.NewMapping(cal, datetime.NewCalendarDate(1970, 1, 1))
	got := m.FromGregorian(datetime.NewCalendarDate(1970, 1, 1))
	if want := (decitime.Date{Year: 0, Day: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMappingInvalidDate(t *testing.T) {
	m := earthMapping(t)
	if _, err := m.ToGregorian(decitime.Date{Year: 2000, Day: 400}); err == nil {
		t.Errorf("expected an error")
	}
}
