// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides chronologies for a number of civil calendars,
// the ISO (proleptic Gregorian), Julian, British Cutover, International
// Fixed, Symmetry010, Symmetry454 and tabular Islamic calendars. Each
// converts between its own year, month and day representation and a
// shared epoch day, where day 0 is 1970-01-01 in the ISO calendar, and
// supports field access, validation and date arithmetic over the fields
// and units defined in the temporal package.
//
// All types are immutable values that are safe for concurrent use.
package calendars

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/calendars/temporal"
	"cloudeng.io/logging/ctxlog"
)

// Kind identifies the calendar system implemented by a Chronology.
type Kind int

const (
	kindNone Kind = iota
	KindISO
	KindJulian
	KindBritishCutover
	KindInternationalFixed
	KindSymmetry010
	KindSymmetry454
	KindIslamic
)

func (k Kind) String() string {
	if k <= kindNone || k > KindIslamic {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// calendar is implemented by the rules of each kind of chronology. The
// year and month arguments are assumed to have been validated.
type calendar interface {
	isLeapYear(year int64) bool
	lengthOfYear(year int64) int
	lengthOfMonth(year int64, month int) int
	// maxDayOfMonth is the largest day of month value that is accepted,
	// it only differs from lengthOfMonth for the British cutover month.
	maxDayOfMonth(year int64, month int) int
	toEpochDay(year int64, month, day int) int64
	fromEpochDay(epochDay int64) (year int64, month, day int)
	// invalidDay returns the error for a day that exceeds maxDayOfMonth.
	invalidDay(year int64, month, day int) error
}

// monthWeeks is implemented by calendars whose weeks are aligned with
// their months and that have days which fall outside of any week.
type monthWeeks interface {
	isSpecialDay(year int64, month, day int) bool
	weekInMonth(day int) int
	dayInWeek(day int) int
}

// dayPositions is implemented by calendars with months whose day
// numbers do not run consecutively.
type dayPositions interface {
	positionInMonth(year int64, month, day int) int
}

type kindInfo struct {
	name         string
	separator    byte
	minYear      int64
	maxYear      int64
	monthsInYear int
	eras         eraFamily
	ranges       map[temporal.Field]temporal.ValueRange
}

func dateRanges(dom, doy, awom, awoy temporal.ValueRange) map[temporal.Field]temporal.ValueRange {
	return map[temporal.Field]temporal.ValueRange{
		temporal.DayOfWeek:               temporal.Range(1, 7),
		temporal.AlignedDayOfWeekInMonth: temporal.Range(1, 7),
		temporal.AlignedDayOfWeekInYear:  temporal.Range(1, 7),
		temporal.DayOfMonth:              dom,
		temporal.DayOfYear:               doy,
		temporal.AlignedWeekOfMonth:      awom,
		temporal.AlignedWeekOfYear:       awoy,
	}
}

var kinds = [...]kindInfo{
	kindNone: {},
	KindISO: {
		name: "ISO", separator: '-',
		minYear: -999_999_999, maxYear: 999_999_999, monthsInYear: 12, eras: isoEras,
		ranges: dateRanges(temporal.VariableRange(1, 28, 31), temporal.VariableRange(1, 365, 366),
			temporal.VariableRange(1, 4, 5), temporal.Range(1, 53)),
	},
	KindJulian: {
		name: "Julian", separator: '-',
		minYear: -999_998, maxYear: 999_999, monthsInYear: 12, eras: julianEras,
		ranges: dateRanges(temporal.VariableRange(1, 28, 31), temporal.VariableRange(1, 365, 366),
			temporal.VariableRange(1, 4, 5), temporal.Range(1, 53)),
	},
	KindBritishCutover: {
		name: "BritishCutover", separator: '-',
		minYear: -999_998, maxYear: 999_999, monthsInYear: 12, eras: julianEras,
		ranges: dateRanges(temporal.VariableRange(1, 28, 31), temporal.VariableRange(1, 355, 366),
			temporal.VariableRange(1, 3, 5), temporal.VariableRange(1, 51, 53)),
	},
	KindInternationalFixed: {
		name: "Ifc", separator: '/',
		minYear: 1, maxYear: 1_000_000, monthsInYear: fixedMonthsInYear, eras: fixedEras,
		ranges: map[temporal.Field]temporal.ValueRange{
			temporal.DayOfWeek:               temporal.FullRange(0, 1, 0, 7),
			temporal.AlignedDayOfWeekInMonth: temporal.FullRange(0, 1, 0, 7),
			temporal.AlignedDayOfWeekInYear:  temporal.FullRange(0, 1, 0, 7),
			temporal.DayOfMonth:              temporal.VariableRange(1, 28, 29),
			temporal.DayOfYear:               temporal.VariableRange(1, 365, 366),
			temporal.AlignedWeekOfMonth:      temporal.FullRange(0, 1, 0, 4),
			temporal.AlignedWeekOfYear:       temporal.FullRange(0, 1, 0, 52),
		},
	},
	KindSymmetry010: {
		name: "Sym010", separator: '/',
		minYear: -1_000_000, maxYear: 1_000_000, monthsInYear: 12, eras: isoEras,
		ranges: dateRanges(temporal.VariableRange(1, 30, 37), temporal.VariableRange(1, 364, 371),
			temporal.VariableRange(1, 5, 6), temporal.VariableRange(1, 52, 53)),
	},
	KindSymmetry454: {
		name: "Sym454", separator: '/',
		minYear: -1_000_000, maxYear: 1_000_000, monthsInYear: 12, eras: isoEras,
		ranges: dateRanges(temporal.VariableRange(1, 28, 35), temporal.VariableRange(1, 364, 371),
			temporal.VariableRange(1, 4, 5), temporal.VariableRange(1, 52, 53)),
	},
	KindIslamic: {
		name: "Islamic", separator: '-',
		minYear: 1, maxYear: 1_000_000, monthsInYear: 12, eras: islamicEras,
		ranges: dateRanges(temporal.VariableRange(1, 29, 30), temporal.VariableRange(1, 354, 355),
			temporal.Range(1, 5), temporal.Range(1, 51)),
	},
}

// Chronology is a calendar system. Chronologies are small comparable
// values, the zero value is not a valid chronology and methods that
// return an error will return one wrapping temporal.ErrMissing for it.
type Chronology struct {
	kind    Kind
	pattern LeapYearPattern
}

var (
	// ISO is the proleptic Gregorian calendar.
	ISO = Chronology{kind: KindISO}
	// Julian is the proleptic Julian calendar.
	Julian = Chronology{kind: KindJulian}
	// BritishCutover is the Julian calendar up to and including
	// 2nd September 1752 and the Gregorian calendar from 14th September
	// 1752 onwards.
	BritishCutover = Chronology{kind: KindBritishCutover}
	// InternationalFixed is the 13 month International Fixed calendar.
	InternationalFixed = Chronology{kind: KindInternationalFixed}
	// Symmetry010 is the Symmetry010 calendar with months of 30, 31
	// and 30 days in each quarter.
	Symmetry010 = Chronology{kind: KindSymmetry010}
	// Symmetry454 is the Symmetry454 calendar with months of 4, 5 and 4
	// weeks in each quarter.
	Symmetry454 = Chronology{kind: KindSymmetry454}
	// IslamicCivil is the tabular Islamic calendar using the 16-based
	// leap year pattern.
	IslamicCivil = Chronology{kind: KindIslamic, pattern: Leap16Based}
)

// Islamic returns the tabular Islamic chronology with the specified
// leap year pattern. Chronologies with equal patterns are equal.
func Islamic(pattern LeapYearPattern) Chronology {
	return Chronology{kind: KindIslamic, pattern: pattern & cycleMask}
}

// Chronologies returns the built in chronologies.
func Chronologies() []Chronology {
	return []Chronology{ISO, Julian, BritishCutover, InternationalFixed,
		Symmetry010, Symmetry454, IslamicCivil}
}

func (c Chronology) info() *kindInfo {
	if c.kind <= kindNone || c.kind > KindIslamic {
		return &kinds[kindNone]
	}
	return &kinds[c.kind]
}

func (c Chronology) rules() calendar {
	switch c.kind {
	case KindISO:
		return isoRules{}
	case KindJulian:
		return julianRules{}
	case KindBritishCutover:
		return cutoverRules{}
	case KindInternationalFixed:
		return fixedRules{}
	case KindSymmetry010:
		return symmetry010Rules
	case KindSymmetry454:
		return symmetry454Rules
	case KindIslamic:
		return islamicRules{pattern: c.pattern}
	}
	return nil
}

// IsZero returns true for the zero value.
func (c Chronology) IsZero() bool {
	return c.kind == kindNone
}

func (c Chronology) check() error {
	if c.rules() == nil {
		return fmt.Errorf("%w: chronology", temporal.ErrMissing)
	}
	return nil
}

// Kind returns the calendar system of the chronology.
func (c Chronology) Kind() Kind {
	return c.kind
}

// LeapYearPattern returns the leap year pattern of an Islamic chronology
// and zero for all others.
func (c Chronology) LeapYearPattern() LeapYearPattern {
	return c.pattern
}

// Name returns the name of the calendar, e.g. "Sym454", as used when
// displaying dates.
func (c Chronology) Name() string {
	return c.info().name
}

// ID returns an identifier that is unique for each chronology. It is the
// same as Name except for Islamic chronologies which include the
// name of the leap year pattern, e.g. "Islamic-16-based".
func (c Chronology) ID() string {
	if c.kind == KindIslamic {
		return c.info().name + "-" + c.pattern.Name()
	}
	return c.info().name
}

func (c Chronology) String() string {
	if c.IsZero() {
		return "Chronology(none)"
	}
	return c.ID()
}

// MonthsInYear returns the number of months in every year.
func (c Chronology) MonthsInYear() int {
	return c.info().monthsInYear
}

// IsLeapYear returns true if the proleptic year is a leap year. The
// British Cutover calendar uses the Julian rule before 1752 and the
// Gregorian rule thereafter, 1752 is a leap year under both.
func (c Chronology) IsLeapYear(year int64) bool {
	if r := c.rules(); r != nil {
		return r.isLeapYear(year)
	}
	return false
}

func (c Chronology) yearRange() temporal.ValueRange {
	info := c.info()
	return temporal.Range(info.minYear, info.maxYear)
}

func (c Chronology) checkYear(year int64) error {
	if err := c.check(); err != nil {
		return err
	}
	return c.yearRange().Check(temporal.Year, year)
}

func (c Chronology) checkYearMonth(year int64, month int) error {
	if err := c.checkYear(year); err != nil {
		return err
	}
	return temporal.Range(1, int64(c.MonthsInYear())).Check(temporal.MonthOfYear, int64(month))
}

// LengthOfYear returns the number of days in the year.
func (c Chronology) LengthOfYear(year int64) (int, error) {
	if err := c.checkYear(year); err != nil {
		return 0, err
	}
	return c.rules().lengthOfYear(year), nil
}

// LengthOfMonth returns the number of days in the month. For the British
// Cutover calendar, September 1752 has 19 days.
func (c Chronology) LengthOfMonth(year int64, month int) (int, error) {
	if err := c.checkYearMonth(year, month); err != nil {
		return 0, err
	}
	return c.rules().lengthOfMonth(year, month), nil
}

// epochDayRange returns the epoch days of the first and last days of the
// chronology's year range.
func (c Chronology) epochDayRange() temporal.ValueRange {
	r, info := c.rules(), c.info()
	if r == nil {
		return temporal.ValueRange{}
	}
	last := r.lengthOfMonth(info.maxYear, info.monthsInYear)
	return temporal.Range(r.toEpochDay(info.minYear, 1, 1),
		r.toEpochDay(info.maxYear, info.monthsInYear, last))
}

// Range returns the range of values for a field that holds for all dates
// of the chronology, see Date.Range for date specific ranges.
func (c Chronology) Range(field temporal.Field) (temporal.ValueRange, error) {
	if err := c.check(); err != nil {
		return temporal.ValueRange{}, err
	}
	info := c.info()
	mpy := int64(info.monthsInYear)
	switch field {
	case temporal.EpochDay:
		return c.epochDayRange(), nil
	case temporal.MonthOfYear:
		return temporal.Range(1, mpy), nil
	case temporal.ProlepticMonth:
		return temporal.Range(info.minYear*mpy, info.maxYear*mpy+mpy-1), nil
	case temporal.Year:
		return c.yearRange(), nil
	case temporal.YearOfEra:
		if info.eras.multiEra() {
			return temporal.VariableRange(1, info.maxYear, 1-info.minYear), nil
		}
		return c.yearRange(), nil
	case temporal.Era:
		return info.eras.valueRange(), nil
	}
	if r, ok := info.ranges[field]; ok {
		return r, nil
	}
	return temporal.ValueRange{}, temporal.UnsupportedField(field)
}

// IsSupported returns true if field is supported by the chronology.
func (c Chronology) IsSupported(field temporal.Field) bool {
	return !c.IsZero() && field.IsDateBased()
}

// IsSupportedUnit returns true if unit is supported by the chronology.
func (c Chronology) IsSupportedUnit(unit temporal.Unit) bool {
	return !c.IsZero() && unit.IsDateBased()
}

// Eras returns the eras of the chronology in ascending order.
func (c Chronology) Eras() []Era {
	if c.IsZero() {
		return nil
	}
	return c.info().eras.eras()
}

// EraOf returns the era with the specified numeric value.
func (c Chronology) EraOf(value int) (Era, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	return c.info().eras.of(int64(value))
}

func (c Chronology) checkEra(era Era) error {
	if err := c.check(); err != nil {
		return err
	}
	if era == nil {
		return fmt.Errorf("%w: era", temporal.ErrMissing)
	}
	if !c.info().eras.belongs(era) {
		return fmt.Errorf("%w: %T is not an era of %v", temporal.ErrWrongEra, era, c)
	}
	if _, err := c.info().eras.of(int64(era.Value())); err != nil {
		return err
	}
	return nil
}

// ProlepticYear returns the proleptic year for the year within the
// specified era. The era must be of the chronology's era type.
func (c Chronology) ProlepticYear(era Era, yearOfEra int64) (int64, error) {
	if err := c.checkEra(era); err != nil {
		return 0, err
	}
	yoeRange, _ := c.Range(temporal.YearOfEra)
	if c.info().eras.multiEra() {
		if era.Value() == 0 {
			yoeRange = temporal.Range(1, 1-c.info().minYear)
		} else {
			yoeRange = temporal.Range(1, c.info().maxYear)
		}
	}
	if err := yoeRange.Check(temporal.YearOfEra, yearOfEra); err != nil {
		return 0, err
	}
	return c.info().eras.prolepticYear(era, yearOfEra), nil
}

// Date returns the date for the proleptic year, month and day. The
// British Cutover calendar accepts days 3 to 13 of September 1752 and
// maps them to the 14th to 24th.
func (c Chronology) Date(year int64, month, day int) (Date, error) {
	if err := c.checkYearMonth(year, month); err != nil {
		return Date{}, err
	}
	domRange := c.info().ranges[temporal.DayOfMonth]
	if err := domRange.Check(temporal.DayOfMonth, int64(day)); err != nil {
		return Date{}, err
	}
	r := c.rules()
	if day > r.maxDayOfMonth(year, month) {
		return Date{}, r.invalidDay(year, month, day)
	}
	return c.newDate(r.toEpochDay(year, month, day)), nil
}

// newDate creates a date from an epoch day that is known to be valid.
func (c Chronology) newDate(epochDay int64) Date {
	y, m, d := c.rules().fromEpochDay(epochDay)
	return Date{chrono: c, year: int32(y), month: uint8(m), day: uint8(d), epochDay: epochDay}
}

// DateEra returns the date for the year within era, month and day.
func (c Chronology) DateEra(era Era, yearOfEra int64, month, day int) (Date, error) {
	year, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	return c.Date(year, month, day)
}

// DateYearDay returns the date for the proleptic year and day of year.
func (c Chronology) DateYearDay(year int64, dayOfYear int) (Date, error) {
	if err := c.checkYear(year); err != nil {
		return Date{}, err
	}
	if err := c.info().ranges[temporal.DayOfYear].Check(temporal.DayOfYear, int64(dayOfYear)); err != nil {
		return Date{}, err
	}
	r := c.rules()
	if n := r.lengthOfYear(year); dayOfYear > n {
		if !r.isLeapYear(year) {
			return Date{}, temporal.NewFieldError(temporal.DayOfYear, int64(dayOfYear),
				"Invalid date 'DayOfYear %d' as '%d' is not a leap year", dayOfYear, year)
		}
		return Date{}, temporal.Range(1, int64(n)).Check(temporal.DayOfYear, int64(dayOfYear))
	}
	return c.newDate(r.toEpochDay(year, 1, 1) + int64(dayOfYear) - 1), nil
}

// DateEpochDay returns the date for the epoch day.
func (c Chronology) DateEpochDay(epochDay int64) (Date, error) {
	if err := c.check(); err != nil {
		return Date{}, err
	}
	if err := c.epochDayRange().Check(temporal.EpochDay, epochDay); err != nil {
		return Date{}, err
	}
	return c.newDate(epochDay), nil
}

// DateFrom returns the date in this chronology that represents the same
// day as date.
func (c Chronology) DateFrom(date Date) (Date, error) {
	if date.IsZero() {
		return Date{}, fmt.Errorf("%w: date", temporal.ErrMissing)
	}
	return c.DateEpochDay(date.epochDay)
}

// FromCivil returns the date in this chronology that represents the
// same day as the ISO date d.
func (c Chronology) FromCivil(d civil.Date) (Date, error) {
	if !d.IsValid() {
		return Date{}, &temporal.FieldError{Field: temporal.DayOfMonth, Value: int64(d.Day),
			Message: fmt.Sprintf("Invalid date %q", d.String())}
	}
	return c.DateEpochDay(gregorianToEpochDay(int64(d.Year), int(d.Month), d.Day))
}

// DateNow returns the current date as reported by clock, in the location
// of the time that it returns.
func (c Chronology) DateNow(ctx context.Context, clock temporal.Clock) (Date, error) {
	if clock == nil {
		return Date{}, fmt.Errorf("%w: clock", temporal.ErrMissing)
	}
	if err := c.check(); err != nil {
		return Date{}, err
	}
	now := clock.Now()
	y, m, d := now.Date()
	ed := gregorianToEpochDay(int64(y), int(m), d)
	ctxlog.Logger(ctx).Debug("date now", "chronology", c.ID(), "time", now, "epochDay", ed)
	date, err := c.DateEpochDay(ed)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", temporal.ErrOverflow, err)
	}
	return date, nil
}

// DateNowIn returns the current date in the specified location using
// the system clock.
func (c Chronology) DateNowIn(ctx context.Context, loc *time.Location) (Date, error) {
	if loc == nil {
		return Date{}, fmt.Errorf("%w: location", temporal.ErrMissing)
	}
	return c.DateNow(ctx, temporal.SystemClock(loc))
}

// Period returns a period of this chronology.
func (c Chronology) Period(years, months, days int64) Period {
	return Period{chrono: c, years: years, months: months, days: days}
}
