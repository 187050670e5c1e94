// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"strings"
	"time"

	"cloudeng.io/calendars/temporal"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(leap bool, month int) int {
	switch month {
	case 2:
		if leap {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(false, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(true, i+1)
	}
}

// isGregorianLeap returns true if the given year is a leap year
// under the Gregorian rule.
func isGregorianLeap(year int64) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func monthLength(leap bool, month int) int {
	if leap {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// marchBasedDayOfYear returns the day of a year that starts on March 1st,
// for the month and day, counting from zero.
func marchBasedDayOfYear(month, day int) int64 {
	mp := int64(month + 9)
	if month > 2 {
		mp = int64(month - 3)
	}
	return (153*mp+2)/5 + int64(day) - 1
}

// monthDayFromMarchBased is the inverse of marchBasedDayOfYear, it
// also returns the number of years (0 or 1) to add to the year
// that the March based year started in.
func monthDayFromMarchBased(doy int64) (carry int64, month, day int) {
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		return 0, int(mp + 3), day
	}
	return 1, int(mp - 9), day
}

// gregorianToEpochDay converts a proleptic Gregorian date to an epoch
// day using 400 year eras of 146097 days that start on March 1st.
func gregorianToEpochDay(year int64, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := temporal.FloorDiv(year, 400)
	yoe := year - era*400
	doe := yoe*365 + yoe/4 - yoe/100 + marchBasedDayOfYear(month, day)
	return era*146097 + doe - 719468
}

func gregorianFromEpochDay(epochDay int64) (int64, int, int) {
	z := epochDay + 719468
	era := temporal.FloorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	carry, month, day := monthDayFromMarchBased(doy)
	return yoe + era*400 + carry, month, day
}

var monthNames = func() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = strings.ToUpper(time.Month(i + 1).String())
	}
	return names
}()

// gregorianDayError returns the error for a day of month that exceeds
// the length of a Julian or Gregorian month.
func gregorianDayError(year int64, month, day int) error {
	if month == 2 && day == 29 {
		return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
			"Invalid date 'February 29' as '%d' is not a leap year", year)
	}
	return temporal.NewFieldError(temporal.DayOfMonth, int64(day),
		"Invalid date '%s %d'", monthNames[month-1], day)
}

type isoRules struct{}

func (isoRules) isLeapYear(year int64) bool {
	return isGregorianLeap(year)
}

func (r isoRules) lengthOfYear(year int64) int {
	if r.isLeapYear(year) {
		return 366
	}
	return 365
}

func (r isoRules) lengthOfMonth(year int64, month int) int {
	return monthLength(r.isLeapYear(year), month)
}

func (r isoRules) maxDayOfMonth(year int64, month int) int {
	return r.lengthOfMonth(year, month)
}

func (isoRules) toEpochDay(year int64, month, day int) int64 {
	return gregorianToEpochDay(year, month, day)
}

func (isoRules) fromEpochDay(epochDay int64) (int64, int, int) {
	return gregorianFromEpochDay(epochDay)
}

func (isoRules) invalidDay(year int64, month, day int) error {
	return gregorianDayError(year, month, day)
}
