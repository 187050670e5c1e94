// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

const (
	// CutoverYear is the year in which Britain and its colonies moved
	// from the Julian to the Gregorian calendar.
	CutoverYear = 1752
	// CutoverMonth is the month in which the change occurred.
	CutoverMonth = 9
	// CutoverDays is the number of days omitted from the calendar,
	// Wednesday 2nd September 1752 was followed by Thursday 14th.
	CutoverDays = 11
)

// CutoverEpochDay is the epoch day of the first Gregorian date,
// 14th September 1752.
var CutoverEpochDay = gregorianToEpochDay(CutoverYear, CutoverMonth, 3+CutoverDays)

type cutoverRules struct{}

func (cutoverRules) isLeapYear(year int64) bool {
	if year < CutoverYear {
		return isJulianLeap(year)
	}
	return isGregorianLeap(year)
}

func (r cutoverRules) lengthOfYear(year int64) int {
	switch {
	case year == CutoverYear:
		return 366 - CutoverDays
	case r.isLeapYear(year):
		return 366
	}
	return 365
}

func (r cutoverRules) lengthOfMonth(year int64, month int) int {
	if year == CutoverYear && month == CutoverMonth {
		return 30 - CutoverDays
	}
	return r.maxDayOfMonth(year, month)
}

// maxDayOfMonth returns 30 for the cutover month since day values
// within the gap are accepted.
func (r cutoverRules) maxDayOfMonth(year int64, month int) int {
	return monthLength(r.isLeapYear(year), month)
}

// toEpochDay interprets dates in the cutover year that precede the
// cutover as Julian dates, this maps days 3 to 13 of September 1752
// to the 14th to 24th.
func (cutoverRules) toEpochDay(year int64, month, day int) int64 {
	switch {
	case year < CutoverYear:
		return julianToEpochDay(year, month, day)
	case year > CutoverYear:
		return gregorianToEpochDay(year, month, day)
	}
	if ed := gregorianToEpochDay(year, month, day); ed >= CutoverEpochDay {
		return ed
	}
	return julianToEpochDay(year, month, day)
}

func (cutoverRules) fromEpochDay(epochDay int64) (int64, int, int) {
	if epochDay >= CutoverEpochDay {
		return gregorianFromEpochDay(epochDay)
	}
	return julianFromEpochDay(epochDay)
}

func (cutoverRules) invalidDay(year int64, month, day int) error {
	return gregorianDayError(year, month, day)
}

// positionInMonth returns the ordinal position of day within its
// month, which differs from day only after the cutover.
func (cutoverRules) positionInMonth(year int64, month, day int) int {
	if year == CutoverYear && month == CutoverMonth && day >= 3+CutoverDays {
		return day - CutoverDays
	}
	return day
}
