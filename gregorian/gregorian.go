// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian maps between the Gregorian calendar and a DSC
// calendar. The mapping is by absolute day arithmetic rather than by
// matching year numbers, so it remains a total bijection even though the
// two calendars' leap patterns diverge.
package gregorian

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/decitime"
)

const secondsPerDay = 86400

// Mapping aligns a DSC calendar with the Gregorian calendar by fixing a
// single correspondence between a Gregorian date and a DSC date; every
// other day follows by counting.
type Mapping struct {
	cal   decitime.Calendar
	epoch time.Time // UTC midnight of the Gregorian date of DSC year 0, day 1
}

func midnight(cd datetime.CalendarDate) time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC)
}

// NewMapping returns a Mapping that aligns DSC year 0, day 1 with the
// supplied Gregorian date.
func NewMapping(cal decitime.Calendar, epoch datetime.CalendarDate) Mapping {
	return Mapping{cal: cal, epoch: midnight(epoch)}
}

// NewMappingAt returns a Mapping that aligns the supplied DSC date with
// the supplied Gregorian date, eg. DSC 2000-001 with 2000-01-01 to keep
// year numbering roughly in step.
func NewMappingAt(cal decitime.Calendar, d decitime.Date, cd datetime.CalendarDate) (Mapping, error) {
	ad, err := cal.ToAbsoluteDay(d)
	if err != nil {
		return Mapping{}, err
	}
	base, err := cal.ToAbsoluteDay(decitime.Date{Year: 0, Day: 1})
	if err != nil {
		return Mapping{}, err
	}
	epoch := midnight(cd).AddDate(0, 0, -int(ad-base))
	return Mapping{cal: cal, epoch: epoch}, nil
}

// base returns the AbsoluteDay aligned with the mapping's Gregorian
// epoch. Day 1 of any year is always valid, so this cannot fail.
func (m Mapping) base() decitime.AbsoluteDay {
	ad, err := m.cal.ToAbsoluteDay(decitime.Date{Year: 0, Day: 1})
	if err != nil {
		panic("unreachable")
	}
	return ad
}

// FromTime returns the DSC date containing the UTC instant t.
func (m Mapping) FromTime(t time.Time) decitime.Date {
	days := floorDiv(t.Unix()-m.epoch.Unix(), secondsPerDay)
	return m.cal.FromAbsoluteDay(m.base() + decitime.AbsoluteDay(days))
}

// FromGregorian returns the DSC date for the supplied Gregorian date.
func (m Mapping) FromGregorian(cd datetime.CalendarDate) decitime.Date {
	return m.FromTime(midnight(cd))
}

// ToGregorian returns the Gregorian date for the supplied DSC date. It is
// the exact inverse of FromGregorian.
func (m Mapping) ToGregorian(d decitime.Date) (datetime.CalendarDate, error) {
	ad, err := m.cal.ToAbsoluteDay(d)
	if err != nil {
		return datetime.CalendarDate(0), err
	}
	t := m.epoch.AddDate(0, 0, int(ad-m.base()))
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day()), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
