// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/calendars/temporal"
)

// Period is an amount of time in years, months and days for a specific
// chronology. Periods are only meaningful for the chronology that
// created them since the lengths of months and years differ between
// calendars.
type Period struct {
	chrono Chronology
	years  int64
	months int64
	days   int64
}

// Chronology returns the chronology of the period.
func (p Period) Chronology() Chronology {
	return p.chrono
}

// Years returns the number of years in the period.
func (p Period) Years() int64 {
	return p.years
}

// Months returns the number of months in the period.
func (p Period) Months() int64 {
	return p.months
}

// Days returns the number of days in the period.
func (p Period) Days() int64 {
	return p.days
}

// IsZero returns true if all of the components of the period are zero.
func (p Period) IsZero() bool {
	return p.years == 0 && p.months == 0 && p.days == 0
}

// IsNegative returns true if any of the components are negative.
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0
}

// TotalMonths returns the total number of months represented by the
// years and months of the period.
func (p Period) TotalMonths() (int64, error) {
	months, err := temporal.MultiplyExact(p.years, int64(p.chrono.MonthsInYear()))
	if err != nil {
		return 0, err
	}
	return temporal.AddExact(months, p.months)
}

// Plus returns the sum of two periods of the same chronology.
func (p Period) Plus(other Period) (Period, error) {
	if p.chrono != other.chrono {
		return Period{}, fmt.Errorf("%w: period of %v added to period of %v", temporal.ErrChronologyMismatch, other.chrono, p.chrono)
	}
	var sum [3]int64
	for i, pair := range [3][2]int64{{p.years, other.years}, {p.months, other.months}, {p.days, other.days}} {
		v, err := temporal.AddExact(pair[0], pair[1])
		if err != nil {
			return Period{}, err
		}
		sum[i] = v
	}
	return p.chrono.Period(sum[0], sum[1], sum[2]), nil
}

// Negated returns the period with all components negated.
func (p Period) Negated() (Period, error) {
	var neg [3]int64
	for i, v := range [3]int64{p.years, p.months, p.days} {
		n, err := temporal.NegateExact(v)
		if err != nil {
			return Period{}, err
		}
		neg[i] = n
	}
	return p.chrono.Period(neg[0], neg[1], neg[2]), nil
}

// Normalized returns the period with months in the range
// -(MonthsInYear-1) to MonthsInYear-1 by moving whole years out of the
// months component. The days are left unchanged.
func (p Period) Normalized() (Period, error) {
	total, err := p.TotalMonths()
	if err != nil {
		return Period{}, err
	}
	mpy := int64(p.chrono.MonthsInYear())
	if mpy == 0 {
		return p, nil
	}
	return p.chrono.Period(total/mpy, total%mpy, p.days), nil
}

// String returns the period in ISO-8601 format prefixed by the
// chronology identifier, e.g. "Sym454 P1Y2M3D".
func (p Period) String() string {
	var out strings.Builder
	out.WriteString(p.chrono.String())
	out.WriteString(" P")
	if p.IsZero() {
		out.WriteString("0D")
		return out.String()
	}
	for _, c := range []struct {
		v    int64
		unit byte
	}{{p.years, 'Y'}, {p.months, 'M'}, {p.days, 'D'}} {
		if c.v != 0 {
			out.WriteString(strconv.FormatInt(c.v, 10))
			out.WriteByte(c.unit)
		}
	}
	return out.String()
}
