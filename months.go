// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package decitime

import (
	"errors"
	"fmt"
)

// MonthsPerYear is the number of months in a DSC year. A base year of 365
// days divides into the alternating 36/37 day months of the canonical
// Earth calendar; other base lengths spread their days so that no two
// months differ by more than a day.
const MonthsPerYear = 10

// Month is a DSC month, 1 through 10.
type Month int

func (m Month) String() string {
	return fmt.Sprintf("M%02d", int(m))
}

var (
	// ErrMonthOutOfRange indicates a month outside 1-10.
	ErrMonthOutOfRange = errors.New("month out of range")
	// ErrDayOfMonthOutOfRange indicates a day outside the month's length.
	ErrDayOfMonthOutOfRange = errors.New("day of month out of range")
)

// MonthLengths returns the lengths of the ten months of year. The base
// year days are distributed with the same accumulator scheme as leap
// years, which for a 365 day base yields 36, 37, 36, ..., 37. A leap day
// extends the final month.
func (c Calendar) MonthLengths(year int64) []int {
	q, rem := c.cycle.baseYearLength/MonthsPerYear, c.cycle.baseYearLength%MonthsPerYear
	lengths := make([]int, MonthsPerYear)
	acc := 0
	for i := range lengths {
		lengths[i] = q
		acc += rem
		if acc >= MonthsPerYear {
			lengths[i]++
			acc -= MonthsPerYear
		}
	}
	if c.IsLeap(year) {
		lengths[MonthsPerYear-1]++
	}
	return lengths
}

// MonthDay returns the month and 1-based day of month for the supplied
// date.
func (c Calendar) MonthDay(d Date) (Month, int, error) {
	if n := c.YearLength(d.Year); d.Day < 1 || d.Day > n {
		return 0, 0, fmt.Errorf("day %d of year %d, have 1-%d: %w", d.Day, d.Year, n, ErrDayOfYearOutOfRange)
	}
	day := d.Day
	for i, n := range c.MonthLengths(d.Year) {
		if day <= n {
			return Month(i + 1), day, nil
		}
		day -= n
	}
	panic("unreachable")
}

// DateOf returns the Date for the supplied year, month and 1-based day of
// month.
func (c Calendar) DateOf(year int64, month Month, day int) (Date, error) {
	if month < 1 || month > MonthsPerYear {
		return Date{}, fmt.Errorf("month %d, have 1-%d: %w", month, MonthsPerYear, ErrMonthOutOfRange)
	}
	lengths := c.MonthLengths(year)
	if day < 1 || day > lengths[month-1] {
		return Date{}, fmt.Errorf("day %d of %v year %d, have 1-%d: %w", day, month, year, lengths[month-1], ErrDayOfMonthOutOfRange)
	}
	doy := day
	for i := 0; i < int(month)-1; i++ {
		doy += lengths[i]
	}
	return Date{Year: year, Day: doy}, nil
}
