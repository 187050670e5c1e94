// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "cloudeng.io/calendars/temporal"

const (
	// IslamicEpochDay is the epoch day of 1 Muharram 1 AH, which is
	// 16th July 622 in the Julian calendar.
	IslamicEpochDay   = -492148
	islamicDaysInYear = 354
)

// islamicRules implements the tabular (arithmetic) Islamic calendar with
// a 30 year cycle of leap years. Odd numbered months have 30 days, even
// numbered months 29 and the last month gains a day in leap years.
type islamicRules struct {
	pattern LeapYearPattern
}

func (r islamicRules) cycleDays() int64 {
	return CycleYears*islamicDaysInYear + int64(r.pattern.LeapYearsInCycle())
}

// yearStart returns the number of days from the Islamic epoch to the
// first day of year.
func (r islamicRules) yearStart(year int64) int64 {
	cycles := temporal.FloorDiv(year-1, CycleYears)
	rem := temporal.FloorMod(year-1, CycleYears)
	return cycles*r.cycleDays() + rem*islamicDaysInYear + int64(r.pattern.leapYearsBefore(int(rem)))
}

func (r islamicRules) isLeapYear(year int64) bool {
	return r.pattern.IsLeapYear(year)
}

func (r islamicRules) lengthOfYear(year int64) int {
	if r.isLeapYear(year) {
		return islamicDaysInYear + 1
	}
	return islamicDaysInYear
}

func (r islamicRules) lengthOfMonth(year int64, month int) int {
	if month == 12 && r.isLeapYear(year) {
		return 30
	}
	return 30 - (month+1)%2
}

func (r islamicRules) maxDayOfMonth(year int64, month int) int {
	return r.lengthOfMonth(year, month)
}

func islamicDaysBeforeMonth(month int) int {
	return 29*(month-1) + month/2
}

func (r islamicRules) toEpochDay(year int64, month, day int) int64 {
	return IslamicEpochDay + r.yearStart(year) + int64(islamicDaysBeforeMonth(month)+day-1)
}

func (r islamicRules) fromEpochDay(epochDay int64) (int64, int, int) {
	z := epochDay - IslamicEpochDay
	year := temporal.FloorDiv(z*CycleYears, r.cycleDays()) + 1
	start := r.yearStart(year)
	for z < start {
		year--
		start = r.yearStart(year)
	}
	for z >= start+int64(r.lengthOfYear(year)) {
		year++
		start = r.yearStart(year)
	}
	doy := int(z - start)
	month := 1
	for month < 12 && doy >= islamicDaysBeforeMonth(month+1) {
		month++
	}
	return year, month, doy - islamicDaysBeforeMonth(month) + 1
}

func (r islamicRules) invalidDay(year int64, month, day int) error {
	if month == 12 {
		return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
			"Invalid date 'Dhu al-Hijjah %d' as '%d' is not a leap year", day, year)
	}
	return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
		"Invalid date: %d/%d/%d", year, month, day)
}
