// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "fmt"

// Unit identifies a unit of time such as Days or Months.
type Unit int

// The set of units, in their fixed order.
const (
	Nanos Unit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
	numUnits
)

var unitNames = [numUnits]string{
	"Nanos",
	"Micros",
	"Millis",
	"Seconds",
	"Minutes",
	"Hours",
	"HalfDays",
	"Days",
	"Weeks",
	"Months",
	"Years",
	"Decades",
	"Centuries",
	"Millennia",
	"Eras",
	"Forever",
}

// IsValid returns true if u is one of the defined units.
func (u Unit) IsValid() bool {
	return u >= 0 && u < numUnits
}

func (u Unit) String() string {
	if !u.IsValid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// IsDateBased returns true for Days through Eras.
func (u Unit) IsDateBased() bool {
	return u >= Days && u <= Eras
}

// IsTimeBased returns true for units shorter than a day.
func (u Unit) IsTimeBased() bool {
	return u >= Nanos && u < Days
}

// YearMultiple returns the number of years represented by one of the
// year based units Years, Decades, Centuries and Millennia, and
// false for any other unit.
func (u Unit) YearMultiple() (int64, bool) {
	switch u {
	case Years:
		return 1, true
	case Decades:
		return 10, true
	case Centuries:
		return 100, true
	case Millennia:
		return 1000, true
	}
	return 0, false
}
