// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"

	"cloudeng.io/calendars/temporal"
	"cloudeng.io/errors"
)

type resolver struct {
	chrono    Chronology
	style     temporal.ResolverStyle
	fields    temporal.FieldMap
	conflicts *errors.M
}

// ResolveDate creates a date from a set of fields. The fields are used
// in the following order of preference:
//
//	EpochDay
//	Year, MonthOfYear, DayOfMonth
//	Year, MonthOfYear, AlignedWeekOfMonth, AlignedDayOfWeekInMonth
//	Year, MonthOfYear, AlignedWeekOfMonth, DayOfWeek
//	Year, DayOfYear
//	Year, AlignedWeekOfYear, AlignedDayOfWeekInYear
//	Year, AlignedWeekOfYear, DayOfWeek
//
// where ProlepticMonth may be used in place of Year and MonthOfYear, and
// YearOfEra, with or without Era, in place of Year. Any date fields that
// are not used to create the date are checked against it and all
// conflicts are reported as a single error. If there are insufficient
// fields to create a date, false and a nil error are returned. The
// supplied map is not modified.
func (c Chronology) ResolveDate(fields temporal.FieldMap, style temporal.ResolverStyle) (Date, bool, error) {
	if err := c.check(); err != nil {
		return Date{}, false, err
	}
	r := &resolver{chrono: c, style: style, fields: fields.Clone(), conflicts: &errors.M{}}
	date, ok, err := r.resolve()
	if err != nil || !ok {
		return Date{}, false, err
	}
	if err := r.crossCheck(date); err != nil {
		return Date{}, false, err
	}
	return date, true, nil
}

func (r *resolver) resolve() (Date, bool, error) {
	if ed, ok := r.fields.Remove(temporal.EpochDay); ok {
		d, err := r.chrono.DateEpochDay(ed)
		return d, err == nil, err
	}
	if err := r.resolveProlepticMonth(); err != nil {
		return Date{}, false, err
	}
	if err := r.resolveYearOfEra(); err != nil {
		return Date{}, false, err
	}
	if err := r.conflicts.Err(); err != nil {
		return Date{}, false, err
	}
	f := r.fields
	if !f.Has(temporal.Year) {
		return Date{}, false, nil
	}
	var (
		d   Date
		err error
	)
	switch {
	case f.Has(temporal.MonthOfYear, temporal.DayOfMonth):
		d, err = r.resolveYMD()
	case f.Has(temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.AlignedDayOfWeekInMonth):
		d, err = r.resolveYMAA()
	case f.Has(temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.DayOfWeek):
		d, err = r.resolveYMAD()
	case f.Has(temporal.DayOfYear):
		d, err = r.resolveYD()
	case f.Has(temporal.AlignedWeekOfYear, temporal.AlignedDayOfWeekInYear):
		d, err = r.resolveYAA()
	case f.Has(temporal.AlignedWeekOfYear, temporal.DayOfWeek):
		d, err = r.resolveYAD()
	default:
		return Date{}, false, nil
	}
	if err != nil {
		return Date{}, false, err
	}
	return d, true, nil
}

// add records a derived field value, values that differ from those
// already present are recorded as conflicts.
func (r *resolver) add(field temporal.Field, value int64) {
	if old, ok := r.fields[field]; ok && old != value {
		r.conflicts.Append(fmt.Errorf("%w: %v %d differs from %v %d", temporal.ErrConflict, field, old, field, value))
		return
	}
	r.fields[field] = value
}

func (r *resolver) check(field temporal.Field, value int64) (int64, error) {
	cr, err := r.chrono.Range(field)
	if err != nil {
		return 0, err
	}
	return value, cr.Check(field, value)
}

func (r *resolver) remove(field temporal.Field) (int64, error) {
	v, _ := r.fields.Remove(field)
	return r.check(field, v)
}

// removeLenient removes a field and returns its value less one.
func (r *resolver) removeLenient(field temporal.Field) (int64, error) {
	v, _ := r.fields.Remove(field)
	return temporal.SubtractExact(v, 1)
}

func (r *resolver) resolveProlepticMonth() error {
	pm, ok := r.fields.Remove(temporal.ProlepticMonth)
	if !ok {
		return nil
	}
	if r.style != temporal.Lenient {
		if _, err := r.check(temporal.ProlepticMonth, pm); err != nil {
			return err
		}
	}
	mpy := int64(r.chrono.MonthsInYear())
	r.add(temporal.MonthOfYear, temporal.FloorMod(pm, mpy)+1)
	r.add(temporal.Year, temporal.FloorDiv(pm, mpy))
	return nil
}

func (r *resolver) resolveYearOfEra() error {
	yoe, ok := r.fields.Remove(temporal.YearOfEra)
	if !ok {
		if era, ok := r.fields[temporal.Era]; ok {
			_, err := r.check(temporal.Era, era)
			return err
		}
		return nil
	}
	if r.style != temporal.Lenient {
		if _, err := r.check(temporal.YearOfEra, yoe); err != nil {
			return err
		}
	}
	eras := r.chrono.info().eras
	if eraValue, ok := r.fields.Remove(temporal.Era); ok {
		era, err := r.chrono.EraOf(int(eraValue))
		if err != nil {
			return err
		}
		return r.addProlepticYear(era, yoe)
	}
	if year, ok := r.fields[temporal.Year]; ok {
		if _, err := r.check(temporal.Year, year); err != nil {
			return err
		}
		return r.addProlepticYear(eras.forYear(year), yoe)
	}
	if r.style == temporal.Strict {
		// The era is not assumed when strict.
		r.fields[temporal.YearOfEra] = yoe
		return nil
	}
	all := eras.eras()
	return r.addProlepticYear(all[len(all)-1], yoe)
}

func (r *resolver) addProlepticYear(era Era, yoe int64) error {
	if r.style == temporal.Lenient {
		r.add(temporal.Year, r.chrono.info().eras.prolepticYear(era, yoe))
		return nil
	}
	year, err := r.chrono.ProlepticYear(era, yoe)
	if err != nil {
		return err
	}
	r.add(temporal.Year, year)
	return nil
}

func (r *resolver) year() (int64, error) {
	return r.remove(temporal.Year)
}

func (r *resolver) resolveYMD() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if r.style == temporal.Lenient {
		return r.lenient(year, temporal.MonthOfYear, temporal.DayOfMonth)
	}
	month, err := r.remove(temporal.MonthOfYear)
	if err != nil {
		return Date{}, err
	}
	day, err := r.remove(temporal.DayOfMonth)
	if err != nil {
		return Date{}, err
	}
	if r.style == temporal.Smart {
		return r.chrono.resolvePrevious(year, int(month), int(day))
	}
	return r.chrono.Date(year, int(month), int(day))
}

func (r *resolver) resolveYD() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if r.style == temporal.Lenient {
		days, err := r.removeLenient(temporal.DayOfYear)
		if err != nil {
			return Date{}, err
		}
		start, err := r.chrono.DateYearDay(year, 1)
		if err != nil {
			return Date{}, err
		}
		return start.Plus(days, temporal.Days)
	}
	doy, err := r.remove(temporal.DayOfYear)
	if err != nil {
		return Date{}, err
	}
	return r.chrono.DateYearDay(year, int(doy))
}

// lenient returns the first day of year with the remaining fields,
// less one, added in order as months, weeks and days.
func (r *resolver) lenient(year int64, fields ...temporal.Field) (Date, error) {
	date, err := r.chrono.Date(year, 1, 1)
	if err != nil {
		return Date{}, err
	}
	for _, f := range fields {
		n, err := r.removeLenient(f)
		if err != nil {
			return Date{}, err
		}
		unit := temporal.Days
		switch f {
		case temporal.MonthOfYear:
			unit = temporal.Months
		case temporal.AlignedWeekOfMonth, temporal.AlignedWeekOfYear:
			unit = temporal.Weeks
		}
		if date, err = date.Plus(n, unit); err != nil {
			return Date{}, err
		}
	}
	return date, nil
}

// nextOrSame returns the first date on or after d that falls on dow.
func nextOrSame(d Date, dow int) (Date, error) {
	current := d.DayOfWeek()
	if current == dow {
		return d, nil
	}
	diff := current - dow
	if diff >= 0 {
		return d.Plus(int64(7-diff), temporal.Days)
	}
	return d.Plus(int64(-diff), temporal.Days)
}

// alignedLenient adds months and weeks to base and then moves to the
// day of week, where dow may lie outside of 1 to 7.
func alignedLenient(base Date, months, weeks, dow int64) (Date, error) {
	date, err := base.Plus(months, temporal.Months)
	if err != nil {
		return Date{}, err
	}
	if date, err = date.Plus(weeks, temporal.Weeks); err != nil {
		return Date{}, err
	}
	if dow < 1 || dow > 7 {
		if date, err = date.Plus(temporal.FloorDiv(dow-1, 7), temporal.Weeks); err != nil {
			return Date{}, err
		}
		dow = temporal.FloorMod(dow-1, 7) + 1
	}
	return nextOrSame(date, int(dow))
}

func (r *resolver) strictCheck(date Date, field temporal.Field, want int64) (Date, error) {
	if r.style != temporal.Strict {
		return date, nil
	}
	if got, _ := date.GetLong(field); got != want {
		return Date{}, fmt.Errorf("%w: strict mode rejected resolved date %v as it is in a different %v", temporal.ErrConflict, date, field.RangeUnit())
	}
	return date, nil
}

// checkAll removes and range checks the specified fields.
func (r *resolver) checkAll(fields ...temporal.Field) ([]int64, error) {
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := r.remove(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (r *resolver) resolveYMAA() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if _, ok := r.chrono.rules().(monthWeeks); ok {
		return r.resolveMonthWeeks(year, temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.AlignedDayOfWeekInMonth)
	}
	if r.style == temporal.Lenient {
		return r.lenient(year, temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.AlignedDayOfWeekInMonth)
	}
	v, err := r.checkAll(temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.AlignedDayOfWeekInMonth)
	if err != nil {
		return Date{}, err
	}
	first, err := r.chrono.Date(year, int(v[0]), 1)
	if err != nil {
		return Date{}, err
	}
	date, err := first.Plus((v[1]-1)*7+(v[2]-1), temporal.Days)
	if err != nil {
		return Date{}, err
	}
	return r.strictCheck(date, temporal.MonthOfYear, v[0])
}

func (r *resolver) resolveYMAD() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if _, ok := r.chrono.rules().(monthWeeks); ok {
		return r.resolveMonthWeeks(year, temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.DayOfWeek)
	}
	if r.style == temporal.Lenient {
		months, err := r.removeLenient(temporal.MonthOfYear)
		if err != nil {
			return Date{}, err
		}
		weeks, err := r.removeLenient(temporal.AlignedWeekOfMonth)
		if err != nil {
			return Date{}, err
		}
		dow, _ := r.fields.Remove(temporal.DayOfWeek)
		base, err := r.chrono.Date(year, 1, 1)
		if err != nil {
			return Date{}, err
		}
		return alignedLenient(base, months, weeks, dow)
	}
	v, err := r.checkAll(temporal.MonthOfYear, temporal.AlignedWeekOfMonth, temporal.DayOfWeek)
	if err != nil {
		return Date{}, err
	}
	first, err := r.chrono.Date(year, int(v[0]), 1)
	if err != nil {
		return Date{}, err
	}
	date, err := first.Plus((v[1]-1)*7, temporal.Days)
	if err != nil {
		return Date{}, err
	}
	if date, err = nextOrSame(date, int(v[2])); err != nil {
		return Date{}, err
	}
	return r.strictCheck(date, temporal.MonthOfYear, v[0])
}

func (r *resolver) resolveYAA() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if _, ok := r.chrono.rules().(monthWeeks); ok {
		return r.resolveMonthWeeks(year, temporal.AlignedWeekOfYear, temporal.AlignedDayOfWeekInYear)
	}
	if r.style == temporal.Lenient {
		return r.lenient(year, temporal.AlignedWeekOfYear, temporal.AlignedDayOfWeekInYear)
	}
	v, err := r.checkAll(temporal.AlignedWeekOfYear, temporal.AlignedDayOfWeekInYear)
	if err != nil {
		return Date{}, err
	}
	first, err := r.chrono.DateYearDay(year, 1)
	if err != nil {
		return Date{}, err
	}
	date, err := first.Plus((v[0]-1)*7+(v[1]-1), temporal.Days)
	if err != nil {
		return Date{}, err
	}
	return r.strictCheck(date, temporal.Year, year)
}

func (r *resolver) resolveYAD() (Date, error) {
	year, err := r.year()
	if err != nil {
		return Date{}, err
	}
	if _, ok := r.chrono.rules().(monthWeeks); ok {
		return r.resolveMonthWeeks(year, temporal.AlignedWeekOfYear, temporal.DayOfWeek)
	}
	if r.style == temporal.Lenient {
		weeks, err := r.removeLenient(temporal.AlignedWeekOfYear)
		if err != nil {
			return Date{}, err
		}
		dow, _ := r.fields.Remove(temporal.DayOfWeek)
		base, err := r.chrono.DateYearDay(year, 1)
		if err != nil {
			return Date{}, err
		}
		return alignedLenient(base, 0, weeks, dow)
	}
	v, err := r.checkAll(temporal.AlignedWeekOfYear, temporal.DayOfWeek)
	if err != nil {
		return Date{}, err
	}
	first, err := r.chrono.DateYearDay(year, 1)
	if err != nil {
		return Date{}, err
	}
	date, err := first.Plus((v[0]-1)*7, temporal.Days)
	if err != nil {
		return Date{}, err
	}
	if date, err = nextOrSame(date, int(v[1])); err != nil {
		return Date{}, err
	}
	return r.strictCheck(date, temporal.Year, year)
}

// resolveMonthWeeks resolves an optional month, a week and a day of
// week for calendars whose weeks are fixed within their months. Without
// a month the week is the week of the year. Days that are not part of
// any week cannot be resolved from these fields, so Smart and Strict
// reject the 0 values that those days report.
func (r *resolver) resolveMonthWeeks(year int64, fields ...temporal.Field) (Date, error) {
	var v []int64
	if r.style == temporal.Lenient {
		v = make([]int64, len(fields))
		for i, f := range fields {
			n, err := r.removeLenient(f)
			if err != nil {
				return Date{}, err
			}
			v[i] = n
		}
	} else {
		var err error
		if v, err = r.checkAll(fields...); err != nil {
			return Date{}, err
		}
		for i, f := range fields {
			if f != temporal.MonthOfYear && v[i] == 0 {
				return Date{}, temporal.NewFieldError(f, 0, "Invalid value for %v: 0 is not part of any week", f)
			}
			v[i]--
		}
	}
	week, dow := v[len(v)-2], v[len(v)-1]
	if len(v) == 3 {
		weeks, err := temporal.MultiplyExact(v[0], fixedWeeksInMonth)
		if err != nil {
			return Date{}, err
		}
		if week, err = temporal.AddExact(weeks, week); err != nil {
			return Date{}, err
		}
	}
	return r.monthWeekDate(year, week, dow)
}

// monthWeekDate returns the date for a zero based week of year and day
// of week. Values outside of the week or year roll over into the
// following or preceding weeks and years, skipping the days that are
// not part of any week.
func (r *resolver) monthWeekDate(year, week, dow int64) (Date, error) {
	days, err := temporal.MultiplyExact(week, 7)
	if err != nil {
		return Date{}, err
	}
	if days, err = temporal.AddExact(days, dow); err != nil {
		return Date{}, err
	}
	weeksInYear := int64(r.chrono.MonthsInYear() * fixedWeeksInMonth)
	weeks := temporal.FloorDiv(days, 7)
	if year, err = temporal.AddExact(year, temporal.FloorDiv(weeks, weeksInYear)); err != nil {
		return Date{}, err
	}
	w := int(temporal.FloorMod(weeks, weeksInYear))
	month := w/fixedWeeksInMonth + 1
	day := (w%fixedWeeksInMonth)*7 + int(temporal.FloorMod(days, 7)) + 1
	return r.chrono.Date(year, month, day)
}

// crossCheck reports all of the remaining date fields whose values
// differ from those of the resolved date.
func (r *resolver) crossCheck(date Date) error {
	errs := &errors.M{}
	for _, f := range r.fields.Fields() {
		if !f.IsDateBased() {
			continue
		}
		want := r.fields[f]
		got, err := date.GetLong(f)
		if err != nil {
			errs.Append(err)
			continue
		}
		if got != want {
			errs.Append(fmt.Errorf("%w: %v %d differs from %v %d derived from %v", temporal.ErrConflict, f, want, f, got, date))
		}
	}
	return errs.Err()
}
