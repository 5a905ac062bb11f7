// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// AbsoluteDay is a single monotonically increasing day count, independent
// of any calendar year/day-of-year representation. It is the only
// representation safe for arithmetic across year boundaries.
type AbsoluteDay int64

// ErrDayOfYearOutOfRange indicates a day of year outside [1, yearLength].
var ErrDayOfYearOutOfRange = errors.New("day of year out of range")

// Date identifies a day within a calendar year as a year number and a
// 1-based day of year. Years may be negative.
type Date struct {
	Year int64
	Day  int
}

// String returns the date in 'YYYY-DDD' form, eg. '2026-166', with a
// leading '-' for negative years.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%03d", -d.Year, d.Day)
	}
	return fmt.Sprintf("%04d-%03d", d.Year, d.Day)
}

// Parse parses a date in the form produced by String, ie. 'YYYY-DDD' with
// an optional leading '-' for negative years. Whether the day of year is
// valid for the year depends on a Calendar and is checked by
// Calendar.ToAbsoluteDay.
func (d *Date) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected 'YYYY-DDD'")
	}
	v, neg := strings.CutPrefix(val, "-")
	yr, dy, ok := strings.Cut(v, "-")
	if !ok {
		return fmt.Errorf("invalid date %q, expected 'YYYY-DDD'", val)
	}
	year, err := strconv.ParseInt(yr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid year %q: %v", yr, err)
	}
	day, err := strconv.Atoi(dy)
	if err != nil || day < 1 {
		return fmt.Errorf("invalid day of year: %s", dy)
	}
	if neg {
		year = -year
	}
	d.Year, d.Day = year, day
	return nil
}

// Calendar converts between Dates and AbsoluteDays for a fixed LeapCycle
// and epoch. It is an immutable value; all operations are pure and safe
// for concurrent use.
type Calendar struct {
	cycle LeapCycle
	epoch AbsoluteDay
}

// NewCalendar returns a Calendar for the given cycle with epoch as the
// AbsoluteDay of year 0, day 1.
func NewCalendar(cycle LeapCycle, epoch AbsoluteDay) Calendar {
	return Calendar{cycle: cycle, epoch: epoch}
}

// Cycle returns the calendar's leap cycle.
func (c Calendar) Cycle() LeapCycle {
	return c.cycle
}

// Epoch returns the AbsoluteDay of year 0, day 1.
func (c Calendar) Epoch() AbsoluteDay {
	return c.epoch
}

// yearOffset returns the 0-based offset of year within its cycle, using a
// floored modulus so that negative years resolve correctly.
func (c Calendar) yearOffset(year int64) int {
	cy := int64(c.cycle.cycleYears)
	m := year % cy
	if m < 0 {
		m += cy
	}
	return int(m)
}

// IsLeap returns true if year receives an extra day.
func (c Calendar) IsLeap(year int64) bool {
	return c.cycle.IsLeapOffset(c.yearOffset(year))
}

// YearLength returns the number of days in year.
func (c Calendar) YearLength(year int64) int {
	if c.IsLeap(year) {
		return c.cycle.baseYearLength + 1
	}
	return c.cycle.baseYearLength
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// daysBefore returns the number of days preceding the year at the given
// 0-based offset within a cycle.
func (c Calendar) daysBefore(offset int) int {
	return offset*c.cycle.baseYearLength + c.cycle.leapsBefore(offset)
}

// ToAbsoluteDay returns the AbsoluteDay for the supplied date. The day of
// year must lie in [1, YearLength(year)]; the conversion is closed form
// and its cost is independent of the magnitude of the year.
func (c Calendar) ToAbsoluteDay(d Date) (AbsoluteDay, error) {
	if n := c.YearLength(d.Year); d.Day < 1 || d.Day > n {
		return 0, fmt.Errorf("day %d of year %d, have 1-%d: %w", d.Day, d.Year, n, ErrDayOfYearOutOfRange)
	}
	cy := int64(c.cycle.cycleYears)
	ci := floorDiv(d.Year, cy)
	offset := int(d.Year - ci*cy)
	days := ci*int64(c.cycle.DaysPerCycle()) + int64(c.daysBefore(offset)) + int64(d.Day-1)
	return AbsoluteDay(days) + c.epoch, nil
}

// FromAbsoluteDay returns the date containing the supplied absolute day.
// It is the exact inverse of ToAbsoluteDay for every day value.
func (c Calendar) FromAbsoluteDay(day AbsoluteDay) Date {
	rel := int64(day - c.epoch)
	dpc := int64(c.cycle.DaysPerCycle())
	ci := floorDiv(rel, dpc)
	r := int(rel - ci*dpc)
	// Last year offset whose first day is at or before r.
	offset := sort.Search(c.cycle.cycleYears, func(y int) bool {
		return c.daysBefore(y+1) > r
	})
	return Date{
		Year: ci*int64(c.cycle.cycleYears) + int64(offset),
		Day:  r - c.daysBefore(offset) + 1,
	}
}
