// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"cmp"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/calendars/temporal"
)

// Date is a date in a specific chronology. Dates are immutable,
// comparable values; all operations that modify a date return a new one.
// Two dates are == only if they have the same chronology and represent
// the same day, use IsEqual to compare dates across chronologies.
type Date struct {
	chrono   Chronology
	year     int32
	month    uint8
	day      uint8
	epochDay int64
}

// IsZero returns true for the zero value, which is not a valid date.
func (d Date) IsZero() bool {
	return d.chrono.IsZero()
}

// Chronology returns the chronology of the date.
func (d Date) Chronology() Chronology {
	return d.chrono
}

// Year returns the proleptic year.
func (d Date) Year() int64 {
	return int64(d.year)
}

// Month returns the month of the year, starting at 1.
func (d Date) Month() int {
	return int(d.month)
}

// Day returns the day of the month, starting at 1.
func (d Date) Day() int {
	return int(d.day)
}

// EpochDay returns the number of days since 1970-01-01 in the ISO calendar.
func (d Date) EpochDay() int64 {
	return d.epochDay
}

// Era returns the era of the date.
func (d Date) Era() Era {
	if d.IsZero() {
		return nil
	}
	return d.chrono.info().eras.forYear(d.Year())
}

// YearOfEra returns the year within the date's era.
func (d Date) YearOfEra() int64 {
	return d.chrono.info().eras.yearOfEra(d.Year())
}

// ProlepticMonth returns the number of months since month 1 of year 0.
func (d Date) ProlepticMonth() int64 {
	return d.Year()*int64(d.chrono.MonthsInYear()) + int64(d.month) - 1
}

// IsLeapYear returns true if the date is in a leap year.
func (d Date) IsLeapYear() bool {
	return d.chrono.IsLeapYear(d.Year())
}

// LengthOfMonth returns the number of days in the date's month.
func (d Date) LengthOfMonth() int {
	if d.IsZero() {
		return 0
	}
	return d.chrono.rules().lengthOfMonth(d.Year(), d.Month())
}

// LengthOfYear returns the number of days in the date's year.
func (d Date) LengthOfYear() int {
	if d.IsZero() {
		return 0
	}
	return d.chrono.rules().lengthOfYear(d.Year())
}

// DayOfYear returns the day of the year, starting at 1.
func (d Date) DayOfYear() int {
	if d.IsZero() {
		return 0
	}
	return int(d.epochDay-d.chrono.rules().toEpochDay(d.Year(), 1, 1)) + 1
}

// IsSpecialDay returns true for days that do not belong to any week,
// namely the Leap Day and Year Day of the International Fixed calendar.
func (d Date) IsSpecialDay() bool {
	mw, ok := d.chrono.rules().(monthWeeks)
	return ok && mw.isSpecialDay(d.Year(), d.Month(), d.Day())
}

// DayOfWeek returns the day of the week from 1 (Monday) to 7 (Sunday),
// for calendars whose weeks are aligned to the month, the first day of
// every month is day 1. Special days return 0.
func (d Date) DayOfWeek() int {
	if mw, ok := d.chrono.rules().(monthWeeks); ok {
		if mw.isSpecialDay(d.Year(), d.Month(), d.Day()) {
			return 0
		}
		return mw.dayInWeek(d.Day())
	}
	return int(temporal.FloorMod(d.epochDay+3, 7)) + 1
}

// positionInMonth returns the ordinal of the day within its month.
func (d Date) positionInMonth() int {
	if dp, ok := d.chrono.rules().(dayPositions); ok {
		return dp.positionInMonth(d.Year(), d.Month(), d.Day())
	}
	return d.Day()
}

// Civil returns the ISO date that represents the same day.
func (d Date) Civil() civil.Date {
	y, m, day := gregorianFromEpochDay(d.epochDay)
	return civil.Date{Year: int(y), Month: time.Month(m), Day: day}
}

// WithChronology returns the date in chrono that represents the same day.
func (d Date) WithChronology(chrono Chronology) (Date, error) {
	return chrono.DateFrom(d)
}

// Compare returns -1, 0 or +1 according to whether d is before, the same
// as or after other. Dates representing the same day in different
// chronologies are ordered by chronology identifier.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.epochDay, other.epochDay); c != 0 {
		return c
	}
	return cmp.Compare(d.chrono.ID(), other.chrono.ID())
}

// IsEqual returns true if d and other represent the same day regardless
// of chronology.
func (d Date) IsEqual(other Date) bool {
	return d.epochDay == other.epochDay
}

// Before returns true if d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.epochDay < other.epochDay
}

// After returns true if d is later than other.
func (d Date) After(other Date) bool {
	return d.epochDay > other.epochDay
}

// String returns the date as "<Name> <Era> <YearOfEra>-<MM>-<DD>", eg.
// "BritishCutover AD 2012-06-23". The International Fixed and Symmetry
// calendars use '/' as a separator, eg. "Ifc CE 2012/06/23".
func (d Date) String() string {
	if d.IsZero() {
		return "Date(none)"
	}
	sep := d.chrono.info().separator
	return fmt.Sprintf("%s %v %d%c%02d%c%02d", d.chrono.Name(), d.Era(), d.YearOfEra(), sep, d.month, sep, d.day)
}
