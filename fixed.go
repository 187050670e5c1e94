// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "cloudeng.io/calendars/temporal"

const (
	fixedMonthsInYear  = 13
	fixedDaysInMonth   = 28
	fixedWeeksInMonth  = 4
	fixedLeapMonth     = 6
	fixedLongDay       = 29
	fixedLeapDayOfYear = fixedLeapMonth*fixedDaysInMonth + 1
)

// fixedRules implements the International Fixed calendar: thirteen
// months of four weeks each with Leap Day following June 28th in leap
// years and Year Day following December 28th. Neither special day
// belongs to a week. Years start on the same day as Gregorian years.
type fixedRules struct{}

func (fixedRules) isLeapYear(year int64) bool {
	return isGregorianLeap(year)
}

func (r fixedRules) lengthOfYear(year int64) int {
	if r.isLeapYear(year) {
		return 366
	}
	return 365
}

func (r fixedRules) lengthOfMonth(year int64, month int) int {
	if month == fixedMonthsInYear || (month == fixedLeapMonth && r.isLeapYear(year)) {
		return fixedLongDay
	}
	return fixedDaysInMonth
}

func (r fixedRules) maxDayOfMonth(year int64, month int) int {
	return r.lengthOfMonth(year, month)
}

func (r fixedRules) toEpochDay(year int64, month, day int) int64 {
	doy := int64((month-1)*fixedDaysInMonth + day)
	if month > fixedLeapMonth && r.isLeapYear(year) {
		doy++
	}
	return gregorianToEpochDay(year, 1, 1) + doy - 1
}

func (r fixedRules) fromEpochDay(epochDay int64) (int64, int, int) {
	year, _, _ := gregorianFromEpochDay(epochDay)
	doy := int(epochDay - gregorianToEpochDay(year, 1, 1) + 1)
	if r.isLeapYear(year) {
		if doy == fixedLeapDayOfYear {
			return year, fixedLeapMonth, fixedLongDay
		}
		if doy > fixedLeapDayOfYear {
			doy--
		}
	}
	if doy == fixedMonthsInYear*fixedDaysInMonth+1 {
		return year, fixedMonthsInYear, fixedLongDay
	}
	return year, (doy-1)/fixedDaysInMonth + 1, (doy-1)%fixedDaysInMonth + 1
}

func (r fixedRules) invalidDay(year int64, month, day int) error {
	if month == fixedLeapMonth {
		return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
			"Invalid Leap Day as '%d' is not a leap year", year)
	}
	return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
		"Invalid date: %d/%d/%d", year, month, day)
}

// isSpecialDay returns true for Leap Day and Year Day.
func (fixedRules) isSpecialDay(_ int64, _, day int) bool {
	return day == fixedLongDay
}

func (fixedRules) weekInMonth(day int) int {
	return (day-1)/7 + 1
}

func (fixedRules) dayInWeek(day int) int {
	return (day-1)%7 + 1
}
