// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"cloudeng.io/calendars/temporal"
)

// aligned returns the aligned day of week in month and year and the
// aligned week of month and year.
func (d Date) aligned() (dowInMonth, dowInYear, weekOfMonth, weekOfYear int) {
	if mw, ok := d.chrono.rules().(monthWeeks); ok {
		if mw.isSpecialDay(d.Year(), d.Month(), d.Day()) {
			return 0, 0, 0, 0
		}
		dow, wom := mw.dayInWeek(d.Day()), mw.weekInMonth(d.Day())
		return dow, dow, wom, (d.Month()-1)*fixedWeeksInMonth + wom
	}
	pos, doy := d.positionInMonth(), d.DayOfYear()
	return (pos-1)%7 + 1, (doy-1)%7 + 1, (pos-1)/7 + 1, (doy-1)/7 + 1
}

// GetLong returns the value of a date field. Special days that are not
// part of any week, such as Year Day in the International Fixed
// calendar, return 0 for the day of week and aligned fields.
func (d Date) GetLong(field temporal.Field) (int64, error) {
	if err := d.chrono.check(); err != nil {
		return 0, err
	}
	switch field {
	case temporal.DayOfWeek:
		return int64(d.DayOfWeek()), nil
	case temporal.AlignedDayOfWeekInMonth:
		v, _, _, _ := d.aligned()
		return int64(v), nil
	case temporal.AlignedDayOfWeekInYear:
		_, v, _, _ := d.aligned()
		return int64(v), nil
	case temporal.DayOfMonth:
		return int64(d.day), nil
	case temporal.DayOfYear:
		return int64(d.DayOfYear()), nil
	case temporal.EpochDay:
		return d.epochDay, nil
	case temporal.AlignedWeekOfMonth:
		_, _, v, _ := d.aligned()
		return int64(v), nil
	case temporal.AlignedWeekOfYear:
		_, _, _, v := d.aligned()
		return int64(v), nil
	case temporal.MonthOfYear:
		return int64(d.month), nil
	case temporal.ProlepticMonth:
		return d.ProlepticMonth(), nil
	case temporal.YearOfEra:
		return d.YearOfEra(), nil
	case temporal.Year:
		return d.Year(), nil
	case temporal.Era:
		return int64(d.Era().Value()), nil
	}
	return 0, temporal.UnsupportedField(field)
}

// Get is like GetLong but for use with fields whose values always fit
// in an int, i.e. all except EpochDay and ProlepticMonth.
func (d Date) Get(field temporal.Field) (int, error) {
	v, err := d.GetLong(field)
	if err != nil {
		return 0, err
	}
	r, err := d.Range(field)
	if err != nil {
		return 0, err
	}
	return r.CheckInt(field, v)
}

// Range returns the range of valid values for the field for this date,
// for example the range of DayOfMonth is 1 to 29 for June in a leap year
// of the International Fixed calendar.
func (d Date) Range(field temporal.Field) (temporal.ValueRange, error) {
	cr, err := d.chrono.Range(field)
	if err != nil {
		return temporal.ValueRange{}, err
	}
	r := d.chrono.rules()
	if mw, ok := r.(monthWeeks); ok {
		special := mw.isSpecialDay(d.Year(), d.Month(), d.Day())
		switch field {
		case temporal.DayOfWeek, temporal.AlignedDayOfWeekInMonth, temporal.AlignedDayOfWeekInYear:
			if special {
				return temporal.Range(0, 0), nil
			}
			return temporal.Range(1, 7), nil
		case temporal.AlignedWeekOfMonth:
			if special {
				return temporal.Range(0, 0), nil
			}
			return temporal.Range(1, fixedWeeksInMonth), nil
		case temporal.AlignedWeekOfYear:
			if special {
				return temporal.Range(0, 0), nil
			}
			return temporal.Range(1, fixedWeeksInMonth*fixedMonthsInYear), nil
		}
	}
	switch field {
	case temporal.DayOfMonth:
		return temporal.Range(1, int64(r.maxDayOfMonth(d.Year(), d.Month()))), nil
	case temporal.DayOfYear:
		return temporal.Range(1, int64(d.LengthOfYear())), nil
	case temporal.AlignedWeekOfMonth:
		return temporal.Range(1, int64((d.LengthOfMonth()-1)/7+1)), nil
	case temporal.AlignedWeekOfYear:
		return temporal.Range(1, int64((d.LengthOfYear()-1)/7+1)), nil
	case temporal.YearOfEra:
		info := d.chrono.info()
		if d.Year() < 1 {
			return temporal.Range(1, 1-info.minYear), nil
		}
		return temporal.Range(1, info.maxYear), nil
	}
	return cr, nil
}

// resolvePrevious returns the date for year, month and day, with day
// clamped to the last valid day of the month.
func (c Chronology) resolvePrevious(year int64, month, day int) (Date, error) {
	if err := c.checkYearMonth(year, month); err != nil {
		return Date{}, err
	}
	return c.Date(year, month, min(day, c.rules().maxDayOfMonth(year, month)))
}

// With returns a copy of the date with the field set to value.
// The day of month is clamped to the last valid day when changing the
// month or year, as is the day of year when changing the year.
// The aligned week fields move the date by whole weeks, except for the
// International Fixed calendar whose weeks are fixed within each month.
func (d Date) With(field temporal.Field, value int64) (Date, error) {
	cr, err := d.chrono.Range(field)
	if err != nil {
		return Date{}, err
	}
	if err := cr.Check(field, value); err != nil {
		return Date{}, err
	}
	current, err := d.GetLong(field)
	if err != nil {
		return Date{}, err
	}
	if current == value {
		return d, nil
	}
	year, month, day := d.Year(), d.Month(), d.Day()
	switch field {
	case temporal.DayOfWeek, temporal.AlignedDayOfWeekInMonth, temporal.AlignedDayOfWeekInYear,
		temporal.AlignedWeekOfMonth, temporal.AlignedWeekOfYear:
		dr, _ := d.Range(field)
		if err := dr.Check(field, value); err != nil {
			return Date{}, err
		}
		if mw, ok := d.chrono.rules().(monthWeeks); ok {
			return d.withMonthWeeks(mw, field, int(value))
		}
		if field == temporal.AlignedWeekOfMonth || field == temporal.AlignedWeekOfYear {
			return d.Plus(value-current, temporal.Weeks)
		}
		return d.Plus(value-current, temporal.Days)
	case temporal.DayOfMonth:
		return d.chrono.resolvePrevious(year, month, int(value))
	case temporal.DayOfYear:
		return d.chrono.DateYearDay(year, min(int(value), d.LengthOfYear()))
	case temporal.EpochDay:
		return d.chrono.DateEpochDay(value)
	case temporal.MonthOfYear:
		return d.chrono.resolvePrevious(year, int(value), day)
	case temporal.ProlepticMonth:
		return d.Plus(value-current, temporal.Months)
	case temporal.YearOfEra:
		dr, _ := d.Range(field)
		if err := dr.Check(field, value); err != nil {
			return Date{}, err
		}
		if year < 1 {
			return d.chrono.resolvePrevious(1-value, month, day)
		}
		return d.chrono.resolvePrevious(value, month, day)
	case temporal.Year:
		return d.chrono.resolvePrevious(value, month, day)
	case temporal.Era:
		return d.chrono.resolvePrevious(1-year, month, day)
	}
	return Date{}, temporal.UnsupportedField(field)
}

// withMonthWeeks sets the day of week or aligned week for calendars
// whose weeks are fixed within each month.
func (d Date) withMonthWeeks(mw monthWeeks, field temporal.Field, value int) (Date, error) {
	month, day := d.Month(), d.Day()
	dow, wom := mw.dayInWeek(day), mw.weekInMonth(day)
	switch field {
	case temporal.AlignedWeekOfMonth:
		day = (value-1)*7 + dow
	case temporal.AlignedWeekOfYear:
		month = (value-1)/fixedWeeksInMonth + 1
		day = ((value-1)%fixedWeeksInMonth)*7 + dow
	default:
		day = (wom-1)*7 + value
	}
	return d.chrono.Date(d.Year(), month, day)
}
