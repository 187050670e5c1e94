// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/temporal"
)

func TestCutoverGap(t *testing.T) {
	c := calendars.BritishCutover
	before := mustDate(t, c, 1752, 9, 2)
	next, err := before.Plus(1, temporal.Days)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := next, mustDate(t, c, 1752, 9, 14); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := next.EpochDay(), calendars.CutoverEpochDay; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !c.IsLeapYear(1752) {
		t.Errorf("1752 should be a leap year")
	}
	// Days within the gap are accepted and are read as Julian dates.
	for day := 3; day <= 13; day++ {
		d := mustDate(t, c, 1752, 9, day)
		if got, want := d.Day(), day+calendars.CutoverDays; got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
	}
}

func TestFixedLeapDay(t *testing.T) {
	c := calendars.InternationalFixed
	d := mustDate(t, c, 2012, 6, 29)
	if got, want := d.DayOfWeek(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.EpochDay(), int64(15508); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.IsSpecialDay() {
		t.Errorf("%v should be a special day", d)
	}
	_, err := c.Date(2013, 6, 29)
	if !errors.Is(err, temporal.ErrInvalidValue) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	if got, want := err.Error(), "Invalid Leap Day as '2013' is not a leap year"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSymmetryLeapWeek(t *testing.T) {
	c := calendars.Symmetry454
	d := mustDate(t, c, 2015, 12, 35)
	if got, want := d.EpochDay(), int64(16803); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n, err := c.LengthOfMonth(2015, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n, 35; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = c.Date(2016, 12, 35)
	if !errors.Is(err, temporal.ErrInvalidValue) {
		t.Fatalf("missing or wrong error: %v", err)
	}
	if got, want := err.Error(), "Invalid Leap Week as '2016' is not a leap year"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	sym := mustDate(t, calendars.Symmetry010, 1970, 1, 1)
	iso := mustDate(t, calendars.ISO, 1969, 12, 29)
	if got, want := sym.EpochDay(), iso.EpochDay(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sym.EpochDay(), int64(-3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLengths(t *testing.T) {
	for _, tc := range []struct {
		chrono      calendars.Chronology
		year        int64
		month       int
		monthLength int
		yearLength  int
		leap        bool
	}{
		{calendars.ISO, 2024, 2, 29, 366, true},
		{calendars.ISO, 2023, 2, 28, 365, false},
		{calendars.ISO, 1900, 2, 28, 365, false},
		{calendars.Julian, 1900, 2, 29, 366, true},
		{calendars.BritishCutover, 1700, 2, 29, 366, true},
		{calendars.BritishCutover, 1752, 9, 19, 355, true},
		{calendars.BritishCutover, 1900, 2, 28, 365, false},
		{calendars.InternationalFixed, 2012, 6, 29, 366, true},
		{calendars.InternationalFixed, 2013, 6, 28, 365, false},
		{calendars.InternationalFixed, 2013, 13, 29, 365, false},
		{calendars.Symmetry454, 2015, 2, 35, 371, true},
		{calendars.Symmetry454, 2015, 12, 35, 371, true},
		{calendars.Symmetry454, 2016, 12, 28, 364, false},
		{calendars.Symmetry010, 2015, 12, 37, 371, true},
		{calendars.Symmetry010, 2016, 2, 31, 364, false},
		{calendars.Symmetry010, 2016, 12, 30, 364, false},
		{calendars.IslamicCivil, 1433, 1, 30, 354, false},
		{calendars.IslamicCivil, 1433, 12, 29, 354, false},
		{calendars.IslamicCivil, 1434, 2, 29, 355, true},
		{calendars.IslamicCivil, 1434, 12, 30, 355, true},
	} {
		ml, err := tc.chrono.LengthOfMonth(tc.year, tc.month)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		yl, err := tc.chrono.LengthOfYear(tc.year)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		if got, want := ml, tc.monthLength; got != want {
			t.Errorf("%v: %v-%v: got %v, want %v", tc.chrono, tc.year, tc.month, got, want)
		}
		if got, want := yl, tc.yearLength; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.chrono, tc.year, got, want)
		}
		if got, want := tc.chrono.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: %v: got %v, want %v", tc.chrono, tc.year, got, want)
		}
	}
}

func TestLeapConsistency(t *testing.T) {
	long := map[calendars.Kind]int{
		calendars.KindSymmetry010: 371,
		calendars.KindSymmetry454: 371,
		calendars.KindIslamic:     355,
	}
	for _, c := range allChronologies() {
		leapLength := 366
		if n, ok := long[c.Kind()]; ok {
			leapLength = n
		}
		for year := int64(1); year <= 3000; year++ {
			if c == calendars.BritishCutover && year == calendars.CutoverYear {
				continue
			}
			n, err := c.LengthOfYear(year)
			if err != nil {
				t.Fatalf("%v: %v: %v", c, year, err)
			}
			if got, want := n == leapLength, c.IsLeapYear(year); got != want {
				t.Errorf("%v: %v: length %v, leap %v", c, year, n, want)
			}
			total := 0
			for month := 1; month <= c.MonthsInYear(); month++ {
				ml, err := c.LengthOfMonth(year, month)
				if err != nil {
					t.Fatalf("%v: %v-%v: %v", c, year, month, err)
				}
				total += ml
			}
			if got, want := total, n; got != want {
				t.Errorf("%v: %v: got %v, want %v", c, year, got, want)
			}
		}
	}
}

func TestEpochDayRange(t *testing.T) {
	for _, tc := range []struct {
		chrono   calendars.Chronology
		min, max int64
	}{
		{calendars.ISO, -365243219162, 365241780471},
		{calendars.Julian, -365968799, 364530469},
		{calendars.BritishCutover, -365968799, 364522971},
		{calendars.InternationalFixed, -719162, 364523337},
		{calendars.Symmetry010, -365961851, 364523155},
		{calendars.Symmetry454, -365961851, 364523155},
		{calendars.IslamicCivil, -492148, 353874518},
	} {
		r, err := tc.chrono.Range(temporal.EpochDay)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		if got, want := r, temporal.Range(tc.min, tc.max); got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
		if _, err := tc.chrono.DateEpochDay(tc.min - 1); !errors.Is(err, temporal.ErrInvalidValue) {
			t.Errorf("%v: missing or wrong error: %v", tc.chrono, err)
		}
		if _, err := tc.chrono.DateEpochDay(tc.max + 1); !errors.Is(err, temporal.ErrInvalidValue) {
			t.Errorf("%v: missing or wrong error: %v", tc.chrono, err)
		}
	}
}

func TestInvalidDates(t *testing.T) {
	for _, tc := range []struct {
		chrono     calendars.Chronology
		year       int64
		month, day int
		msg        string
	}{
		{calendars.ISO, 2023, 13, 1, "Invalid value for MonthOfYear (valid values 1 - 12): 13"},
		{calendars.ISO, 2023, 0, 1, "Invalid value for MonthOfYear (valid values 1 - 12): 0"},
		{calendars.ISO, 2023, 1, 32, "Invalid value for DayOfMonth (valid values 1 - 28/31): 32"},
		{calendars.ISO, 2023, 9, 31, "Invalid date 'SEPTEMBER 31'"},
		{calendars.ISO, 2023, 2, 29, "Invalid date 'February 29' as '2023' is not a leap year"},
		{calendars.Julian, 1901, 2, 29, "Invalid date 'February 29' as '1901' is not a leap year"},
		{calendars.BritishCutover, 1752, 9, 31, "Invalid date 'SEPTEMBER 31'"},
		{calendars.InternationalFixed, 0, 1, 1, "Invalid value for Year (valid values 1 - 1000000): 0"},
		{calendars.InternationalFixed, 2012, 14, 1, "Invalid value for MonthOfYear (valid values 1 - 13): 14"},
		{calendars.InternationalFixed, 2012, 7, 29, "Invalid date: 2012/7/29"},
		{calendars.Symmetry010, 2016, 1, 31, "Invalid date: 2016/1/31"},
		{calendars.IslamicCivil, 1433, 12, 30, "Invalid date 'Dhu al-Hijjah 30' as '1433' is not a leap year"},
		{calendars.IslamicCivil, 1433, 2, 30, "Invalid date: 1433/2/30"},
	} {
		_, err := tc.chrono.Date(tc.year, tc.month, tc.day)
		if !errors.Is(err, temporal.ErrInvalidValue) {
			t.Errorf("%v: %v-%v-%v: missing or wrong error: %v", tc.chrono, tc.year, tc.month, tc.day, err)
			continue
		}
		if got, want := err.Error(), tc.msg; got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
		var fe *temporal.FieldError
		if !errors.As(err, &fe) {
			t.Errorf("%v: not a FieldError: %T", tc.chrono, err)
		}
	}

	_, err := calendars.ISO.DateYearDay(2023, 366)
	if got, want := err.Error(), "Invalid date 'DayOfYear 366' as '2023' is not a leap year"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = calendars.BritishCutover.DateYearDay(1752, 356)
	if got, want := err.Error(), "Invalid value for DayOfYear (valid values 1 - 355): 356"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var zero calendars.Chronology
	if _, err := zero.Date(2012, 1, 1); !errors.Is(err, temporal.ErrMissing) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.ISO.DateFrom(calendars.Date{}); !errors.Is(err, temporal.ErrMissing) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.ISO.Range(temporal.HourOfDay); !errors.Is(err, temporal.ErrUnsupportedField) {
		t.Errorf("missing or wrong error: %v", err)
	}
}

func TestEras(t *testing.T) {
	for _, tc := range []struct {
		chrono    calendars.Chronology
		era       calendars.Era
		yearOfEra int64
		year      int64
	}{
		{calendars.ISO, calendars.CE, 2012, 2012},
		{calendars.ISO, calendars.BCE, 1, 0},
		{calendars.ISO, calendars.BCE, 10, -9},
		{calendars.Julian, calendars.BC, 1, 0},
		{calendars.BritishCutover, calendars.AD, 1752, 1752},
		{calendars.InternationalFixed, calendars.FixedCE, 2012, 2012},
		{calendars.Symmetry454, calendars.BCE, 5, -4},
		{calendars.IslamicCivil, calendars.AH, 1433, 1433},
	} {
		year, err := tc.chrono.ProlepticYear(tc.era, tc.yearOfEra)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		if got, want := year, tc.year; got != want {
			t.Errorf("%v: %v %v: got %v, want %v", tc.chrono, tc.era, tc.yearOfEra, got, want)
		}
		d, err := tc.chrono.DateEra(tc.era, tc.yearOfEra, 1, 1)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		if got, want := d.Era(), tc.era; got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
		if got, want := d.YearOfEra(), tc.yearOfEra; got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
	}

	for _, tc := range []struct {
		chrono calendars.Chronology
		eras   string
	}{
		{calendars.ISO, "BCE CE"},
		{calendars.Julian, "BC AD"},
		{calendars.BritishCutover, "BC AD"},
		{calendars.InternationalFixed, "CE"},
		{calendars.Symmetry010, "BCE CE"},
		{calendars.IslamicCivil, "AH"},
	} {
		var names []string
		for _, e := range tc.chrono.Eras() {
			names = append(names, e.String())
		}
		if got, want := strings.Join(names, " "), tc.eras; got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
	}

	if _, err := calendars.ISO.ProlepticYear(calendars.AD, 1); !errors.Is(err, temporal.ErrWrongEra) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.InternationalFixed.DateEra(calendars.CE, 2012, 1, 1); !errors.Is(err, temporal.ErrWrongEra) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.ISO.ProlepticYear(nil, 1); !errors.Is(err, temporal.ErrMissing) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.InternationalFixed.EraOf(0); !errors.Is(err, temporal.ErrInvalidValue) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.ISO.ProlepticYear(calendars.CE, 0); !errors.Is(err, temporal.ErrInvalidValue) {
		t.Errorf("missing or wrong error: %v", err)
	}
	era, err := calendars.Julian.EraOf(0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := era, calendars.Era(calendars.BC); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNames(t *testing.T) {
	for _, tc := range []struct {
		chrono   calendars.Chronology
		name, id string
	}{
		{calendars.ISO, "ISO", "ISO"},
		{calendars.Julian, "Julian", "Julian"},
		{calendars.BritishCutover, "BritishCutover", "BritishCutover"},
		{calendars.InternationalFixed, "Ifc", "Ifc"},
		{calendars.Symmetry010, "Sym010", "Sym010"},
		{calendars.Symmetry454, "Sym454", "Sym454"},
		{calendars.IslamicCivil, "Islamic", "Islamic-16-based"},
		{calendars.Islamic(calendars.Leap15Based), "Islamic", "Islamic-15-based"},
		{calendars.Islamic(calendars.LeapIndian), "Islamic", "Islamic-indian"},
		{calendars.Islamic(calendars.LeapHabashAlHasib), "Islamic", "Islamic-habash-al-hasib"},
	} {
		if got, want := tc.chrono.Name(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tc.chrono.ID(), tc.id; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := tc.chrono.String(), tc.id; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := calendars.Islamic(calendars.Leap16Based), calendars.IslamicCivil; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendars.KindSymmetry454.String(), "Sym454"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := (calendars.Chronology{}).String(), "Chronology(none)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSupported(t *testing.T) {
	for _, c := range allChronologies() {
		for _, f := range temporal.DateFields() {
			if !c.IsSupported(f) {
				t.Errorf("%v: %v should be supported", c, f)
			}
			if _, err := c.Range(f); err != nil {
				t.Errorf("%v: %v: %v", c, f, err)
			}
		}
		if c.IsSupported(temporal.HourOfDay) {
			t.Errorf("%v: HourOfDay should not be supported", c)
		}
		if !c.IsSupportedUnit(temporal.Millennia) || c.IsSupportedUnit(temporal.Hours) {
			t.Errorf("%v: wrong units supported", c)
		}
	}
}

func TestDateNow(t *testing.T) {
	ctx := context.Background()
	clock := temporal.FixedClock(time.Date(2012, 6, 23, 23, 30, 0, 0, time.UTC))
	for _, tc := range []struct {
		chrono calendars.Chronology
		clock  temporal.Clock
		date   ymd
	}{
		{calendars.ISO, clock, ymd{2012, 6, 23}},
		{calendars.Julian, clock, ymd{2012, 6, 10}},
		{calendars.InternationalFixed, clock, ymd{2012, 7, 6}},
		{calendars.Symmetry454, clock, ymd{2012, 6, 20}},
		{calendars.Symmetry010, clock, ymd{2012, 6, 22}},
		{calendars.IslamicCivil, clock, ymd{1433, 8, 3}},
		{calendars.ISO, temporal.OffsetClock(clock, time.Hour), ymd{2012, 6, 24}},
	} {
		d, err := tc.chrono.DateNow(ctx, tc.clock)
		if err != nil {
			t.Errorf("%v: %v", tc.chrono, err)
			continue
		}
		if got, want := dateYMD(d), tc.date; got != want {
			t.Errorf("%v: got %v, want %v", tc.chrono, got, want)
		}
	}

	if _, err := calendars.ISO.DateNow(ctx, nil); !errors.Is(err, temporal.ErrMissing) {
		t.Errorf("missing or wrong error: %v", err)
	}
	early := temporal.FixedClock(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC))
	if _, err := calendars.InternationalFixed.DateNow(ctx, early); !errors.Is(err, temporal.ErrOverflow) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if _, err := calendars.ISO.DateNowIn(ctx, nil); !errors.Is(err, temporal.ErrMissing) {
		t.Errorf("missing or wrong error: %v", err)
	}
	now, err := calendars.Symmetry454.DateNowIn(ctx, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := now.Chronology(), calendars.Symmetry454; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
