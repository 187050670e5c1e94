// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package temporal provides the fixed vocabulary of date and time fields
// and units shared by all calendar chronologies, together with value
// ranges, resolver styles, checked arithmetic, the clock collaborator and
// the error taxonomy used when validating and manipulating dates.
//
// The integer identities of Field and Unit values are fixed and follow
// a long established ordering so that they may be stored or exchanged.
package temporal

import "fmt"

// Field identifies a date or time field such as DayOfMonth or Year.
type Field int

// The set of fields, in their fixed order.
const (
	NanoOfSecond Field = iota
	NanoOfDay
	MicroOfSecond
	MicroOfDay
	MilliOfSecond
	MilliOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfAmPm
	ClockHourOfAmPm
	HourOfDay
	ClockHourOfDay
	AmPmOfDay
	DayOfWeek
	AlignedDayOfWeekInMonth
	AlignedDayOfWeekInYear
	DayOfMonth
	DayOfYear
	EpochDay
	AlignedWeekOfMonth
	AlignedWeekOfYear
	MonthOfYear
	ProlepticMonth
	YearOfEra
	Year
	Era
	InstantSeconds
	OffsetSeconds
	numFields
)

var fieldNames = [numFields]string{
	"NanoOfSecond",
	"NanoOfDay",
	"MicroOfSecond",
	"MicroOfDay",
	"MilliOfSecond",
	"MilliOfDay",
	"SecondOfMinute",
	"SecondOfDay",
	"MinuteOfHour",
	"MinuteOfDay",
	"HourOfAmPm",
	"ClockHourOfAmPm",
	"HourOfDay",
	"ClockHourOfDay",
	"AmPmOfDay",
	"DayOfWeek",
	"AlignedDayOfWeekInMonth",
	"AlignedDayOfWeekInYear",
	"DayOfMonth",
	"DayOfYear",
	"EpochDay",
	"AlignedWeekOfMonth",
	"AlignedWeekOfYear",
	"MonthOfYear",
	"ProlepticMonth",
	"YearOfEra",
	"Year",
	"Era",
	"InstantSeconds",
	"OffsetSeconds",
}

type fieldUnits struct {
	base, rng Unit
}

var fieldUnitTable = [numFields]fieldUnits{
	NanoOfSecond:            {Nanos, Seconds},
	NanoOfDay:               {Nanos, Days},
	MicroOfSecond:           {Micros, Seconds},
	MicroOfDay:              {Micros, Days},
	MilliOfSecond:           {Millis, Seconds},
	MilliOfDay:              {Millis, Days},
	SecondOfMinute:          {Seconds, Minutes},
	SecondOfDay:             {Seconds, Days},
	MinuteOfHour:            {Minutes, Hours},
	MinuteOfDay:             {Minutes, Days},
	HourOfAmPm:              {Hours, HalfDays},
	ClockHourOfAmPm:         {Hours, HalfDays},
	HourOfDay:               {Hours, Days},
	ClockHourOfDay:          {Hours, Days},
	AmPmOfDay:               {HalfDays, Days},
	DayOfWeek:               {Days, Weeks},
	AlignedDayOfWeekInMonth: {Days, Weeks},
	AlignedDayOfWeekInYear:  {Days, Weeks},
	DayOfMonth:              {Days, Months},
	DayOfYear:               {Days, Years},
	EpochDay:                {Days, Forever},
	AlignedWeekOfMonth:      {Weeks, Months},
	AlignedWeekOfYear:       {Weeks, Years},
	MonthOfYear:             {Months, Years},
	ProlepticMonth:          {Months, Forever},
	YearOfEra:               {Years, Forever},
	Year:                    {Years, Forever},
	Era:                     {Eras, Forever},
	InstantSeconds:          {Seconds, Forever},
	OffsetSeconds:           {Seconds, Forever},
}

// IsValid returns true if f is one of the defined fields.
func (f Field) IsValid() bool {
	return f >= 0 && f < numFields
}

func (f Field) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// BaseUnit returns the unit that the field is measured in.
func (f Field) BaseUnit() Unit {
	if !f.IsValid() {
		return Forever
	}
	return fieldUnitTable[f].base
}

// RangeUnit returns the unit that the field is bound by.
func (f Field) RangeUnit() Unit {
	if !f.IsValid() {
		return Forever
	}
	return fieldUnitTable[f].rng
}

// IsDateBased returns true for fields from DayOfWeek through Era.
func (f Field) IsDateBased() bool {
	return f >= DayOfWeek && f <= Era
}

// IsTimeBased returns true for the time of day fields.
func (f Field) IsTimeBased() bool {
	return f < DayOfWeek
}

// DateFields returns the date based fields in their fixed order.
func DateFields() []Field {
	fields := make([]Field, 0, Era-DayOfWeek+1)
	for f := DayOfWeek; f <= Era; f++ {
		fields = append(fields, f)
	}
	return fields
}
