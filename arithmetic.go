// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"

	"cloudeng.io/calendars/temporal"
)

func overflow(err error) error {
	return fmt.Errorf("%w: %v", temporal.ErrOverflow, err)
}

// Plus returns the date with amount of unit added. Days and weeks are
// added to the epoch day, months and year based units change the month
// and year with the day of month clamped to the last valid day of the
// resulting month. Consequently, for these units, Minus is not always
// the inverse of Plus, e.g. adding a month to January 31st and then
// subtracting one yields January 28th or 29th in the ISO calendar.
func (d Date) Plus(amount int64, unit temporal.Unit) (Date, error) {
	if err := d.chrono.check(); err != nil {
		return Date{}, err
	}
	switch unit {
	case temporal.Days:
		return d.plusDays(amount)
	case temporal.Weeks:
		days, err := temporal.MultiplyExact(amount, 7)
		if err != nil {
			return Date{}, err
		}
		return d.plusDays(days)
	case temporal.Months:
		return d.plusMonths(amount)
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		n, _ := unit.YearMultiple()
		years, err := temporal.MultiplyExact(amount, n)
		if err != nil {
			return Date{}, err
		}
		return d.plusYears(years)
	case temporal.Eras:
		era, err := temporal.AddExact(int64(d.Era().Value()), amount)
		if err != nil {
			return Date{}, err
		}
		return d.With(temporal.Era, era)
	}
	return Date{}, temporal.UnsupportedUnit(unit)
}

// Minus returns the date with amount of unit subtracted.
func (d Date) Minus(amount int64, unit temporal.Unit) (Date, error) {
	neg, err := temporal.NegateExact(amount)
	if err != nil {
		return Date{}, err
	}
	return d.Plus(neg, unit)
}

func (d Date) plusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := temporal.AddExact(d.epochDay, days)
	if err != nil {
		return Date{}, err
	}
	if err := d.chrono.epochDayRange().Check(temporal.EpochDay, ed); err != nil {
		return Date{}, overflow(err)
	}
	return d.chrono.newDate(ed), nil
}

func (d Date) plusMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	pm, err := temporal.AddExact(d.ProlepticMonth(), months)
	if err != nil {
		return Date{}, err
	}
	mpy := int64(d.chrono.MonthsInYear())
	year := temporal.FloorDiv(pm, mpy)
	if err := d.chrono.yearRange().Check(temporal.Year, year); err != nil {
		return Date{}, overflow(err)
	}
	return d.chrono.resolvePrevious(year, int(temporal.FloorMod(pm, mpy))+1, d.Day())
}

func (d Date) plusYears(years int64) (Date, error) {
	if years == 0 {
		return d, nil
	}
	year, err := temporal.AddExact(d.Year(), years)
	if err != nil {
		return Date{}, err
	}
	if err := d.chrono.yearRange().Check(temporal.Year, year); err != nil {
		return Date{}, overflow(err)
	}
	return d.chrono.resolvePrevious(year, d.Month(), d.Day())
}

// PlusPeriod returns the date with the period added, the months and
// years of the period are added first followed by the days.
func (d Date) PlusPeriod(p Period) (Date, error) {
	if p.IsZero() {
		return d, nil
	}
	if p.chrono != d.chrono {
		return Date{}, fmt.Errorf("%w: period of %v added to date of %v", temporal.ErrChronologyMismatch, p.chrono, d.chrono)
	}
	months, err := p.TotalMonths()
	if err != nil {
		return Date{}, err
	}
	date, err := d.plusMonths(months)
	if err != nil {
		return Date{}, err
	}
	return date.plusDays(p.days)
}

// MinusPeriod returns the date with the period subtracted.
func (d Date) MinusPeriod(p Period) (Date, error) {
	neg, err := p.Negated()
	if err != nil {
		return Date{}, err
	}
	return d.PlusPeriod(neg)
}

// in returns end converted to the chronology of d.
func (d Date) in(end Date) (Date, error) {
	if err := d.chrono.check(); err != nil {
		return Date{}, err
	}
	if end.chrono == d.chrono {
		return end, nil
	}
	return d.chrono.DateFrom(end)
}

func (d Date) monthsUntil(end Date) int64 {
	packed1 := d.ProlepticMonth()*256 + int64(d.day)
	packed2 := end.ProlepticMonth()*256 + int64(end.day)
	return (packed2 - packed1) / 256
}

// Until returns the number of whole units between d and end. The result
// is negative if end is before d. The end date is converted to the
// chronology of d if required.
func (d Date) Until(end Date, unit temporal.Unit) (int64, error) {
	end, err := d.in(end)
	if err != nil {
		return 0, err
	}
	switch unit {
	case temporal.Days:
		return end.epochDay - d.epochDay, nil
	case temporal.Weeks:
		return (end.epochDay - d.epochDay) / 7, nil
	case temporal.Months:
		return d.monthsUntil(end), nil
	case temporal.Years, temporal.Decades, temporal.Centuries, temporal.Millennia:
		n, _ := unit.YearMultiple()
		return d.monthsUntil(end) / (int64(d.chrono.MonthsInYear()) * n), nil
	case temporal.Eras:
		return int64(end.Era().Value() - d.Era().Value()), nil
	}
	return 0, temporal.UnsupportedUnit(unit)
}

// UntilPeriod returns the period between d and end as years, months and
// days such that d.PlusPeriod(p) == end. The end date is converted to
// the chronology of d if required.
func (d Date) UntilPeriod(end Date) (Period, error) {
	end, err := d.in(end)
	if err != nil {
		return Period{}, err
	}
	totalMonths := end.ProlepticMonth() - d.ProlepticMonth()
	days := end.Day() - d.Day()
	switch {
	case totalMonths > 0 && days < 0:
		totalMonths--
	case totalMonths < 0 && days > 0:
		totalMonths++
	}
	mid, err := d.plusMonths(totalMonths)
	if err != nil {
		return Period{}, err
	}
	mpy := int64(d.chrono.MonthsInYear())
	return d.chrono.Period(totalMonths/mpy, totalMonths%mpy, end.epochDay-mid.epochDay), nil
}
