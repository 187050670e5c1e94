// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "cloudeng.io/calendars/temporal"

func isJulianLeap(year int64) bool {
	return year%4 == 0
}

// julianToEpochDay converts a proleptic Julian date to an epoch day
// using 4 year eras of 1461 days that start on March 1st.
func julianToEpochDay(year int64, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := temporal.FloorDiv(year, 4)
	yoe := year - era*4
	doe := yoe*365 + marchBasedDayOfYear(month, day)
	return era*1461 + doe - 719470
}

func julianFromEpochDay(epochDay int64) (int64, int, int) {
	z := epochDay + 719470
	era := temporal.FloorDiv(z, 1461)
	doe := z - era*1461
	yoe := (doe - doe/1460) / 365
	doy := doe - 365*yoe
	carry, month, day := monthDayFromMarchBased(doy)
	return yoe + era*4 + carry, month, day
}

type julianRules struct{}

func (julianRules) isLeapYear(year int64) bool {
	return isJulianLeap(year)
}

func (r julianRules) lengthOfYear(year int64) int {
	if r.isLeapYear(year) {
		return 366
	}
	return 365
}

func (r julianRules) lengthOfMonth(year int64, month int) int {
	return monthLength(r.isLeapYear(year), month)
}

func (r julianRules) maxDayOfMonth(year int64, month int) int {
	return r.lengthOfMonth(year, month)
}

func (julianRules) toEpochDay(year int64, month, day int) int64 {
	return julianToEpochDay(year, month, day)
}

func (julianRules) fromEpochDay(epochDay int64) (int64, int, int) {
	return julianFromEpochDay(epochDay)
}

func (julianRules) invalidDay(year int64, month, day int) error {
	return gregorianDayError(year, month, day)
}
