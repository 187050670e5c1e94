// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "cloudeng.io/calendars/temporal"

const (
	symmetryDaysInQuarter = 91
	symmetryDaysInYear    = 364
	symmetryLeapWeek      = 7
	// The leap rule repeats every 293 years which contain 52 leap weeks.
	symmetryCycleYears = 293
	symmetryCycleDays  = symmetryCycleYears*symmetryDaysInYear + 52*symmetryLeapWeek
	// The number of days from 0001-01-01 to 1970-01-01.
	daysToEpoch = 719162
)

// symmetryRules implements the Symmetry010 and Symmetry454 calendars.
// Every year starts on a Monday and consists of four identical quarters
// of 13 weeks, leap years append a week to December.
type symmetryRules struct {
	quarter [3]int // lengths of the months in each quarter.
}

var (
	symmetry010Rules = symmetryRules{quarter: [3]int{30, 31, 30}}
	symmetry454Rules = symmetryRules{quarter: [3]int{28, 35, 28}}
)

func isSymmetryLeap(year int64) bool {
	return temporal.FloorMod(52*year+146, symmetryCycleYears) < 52
}

// symmetryYearStart returns the number of days from 0001-01-01 to the
// first day of year.
func symmetryYearStart(year int64) int64 {
	return (year-1)*symmetryDaysInYear + symmetryLeapWeek*temporal.FloorDiv(52*(year-1)+146, symmetryCycleYears)
}

func (symmetryRules) isLeapYear(year int64) bool {
	return isSymmetryLeap(year)
}

func (r symmetryRules) lengthOfYear(year int64) int {
	if r.isLeapYear(year) {
		return symmetryDaysInYear + symmetryLeapWeek
	}
	return symmetryDaysInYear
}

func (r symmetryRules) lengthOfMonth(year int64, month int) int {
	days := r.quarter[(month-1)%3]
	if month == 12 && r.isLeapYear(year) {
		days += symmetryLeapWeek
	}
	return days
}

func (r symmetryRules) maxDayOfMonth(year int64, month int) int {
	return r.lengthOfMonth(year, month)
}

func (r symmetryRules) daysBeforeMonth(month int) int {
	days := (month - 1) / 3 * symmetryDaysInQuarter
	for i := 0; i < (month-1)%3; i++ {
		days += r.quarter[i]
	}
	return days
}

func (r symmetryRules) toEpochDay(year int64, month, day int) int64 {
	return symmetryYearStart(year) + int64(r.daysBeforeMonth(month)+day-1) - daysToEpoch
}

func (r symmetryRules) fromEpochDay(epochDay int64) (int64, int, int) {
	z := epochDay + daysToEpoch
	year := 1 + temporal.FloorDiv(symmetryCycleYears*z, symmetryCycleDays)
	start := symmetryYearStart(year)
	for z < start {
		year--
		start = symmetryYearStart(year)
	}
	for z >= start+int64(r.lengthOfYear(year)) {
		year++
		start = symmetryYearStart(year)
	}
	doy := int(z - start)
	quarter := min(doy/symmetryDaysInQuarter, 3)
	doy -= quarter * symmetryDaysInQuarter
	month := quarter*3 + 1
	for i := 0; i < 2 && doy >= r.quarter[i]; i++ {
		doy -= r.quarter[i]
		month++
	}
	return year, month, doy + 1
}

func (r symmetryRules) invalidDay(year int64, month, day int) error {
	if month == 12 {
		return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
			"Invalid Leap Week as '%d' is not a leap year", year)
	}
	return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
		"Invalid date: %d/%d/%d", year, month, day)
}
