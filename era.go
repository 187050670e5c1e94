// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"

	"cloudeng.io/calendars/temporal"
)

// Era represents an era of a chronology. The set of implementations is
// closed: IsoEra, JulianEra, FixedEra and IslamicEra, each chronology
// accepts exactly one of these types.
type Era interface {
	// Value returns the numeric value of the era as used by the
	// temporal.Era field.
	Value() int
	String() string
	isEra()
}

// IsoEra is the era type of the ISO and Symmetry chronologies.
type IsoEra int

const (
	BCE IsoEra = iota // Before Current Era.
	CE                // Current Era.
)

// JulianEra is the era type of the Julian and British Cutover chronologies.
type JulianEra int

const (
	BC JulianEra = iota // Before Christ.
	AD                  // Anno Domini.
)

// FixedEra is the single era of the International Fixed chronology.
type FixedEra int

// FixedCE is the only era of the International Fixed calendar.
const FixedCE FixedEra = 1

// IslamicEra is the single era of the Islamic chronologies.
type IslamicEra int

// AH, Anno Hegirae, is the only era of the Islamic calendar.
const AH IslamicEra = 1

func (e IsoEra) Value() int     { return int(e) }
func (e JulianEra) Value() int  { return int(e) }
func (e FixedEra) Value() int   { return int(e) }
func (e IslamicEra) Value() int { return int(e) }

func (IsoEra) isEra()     {}
func (JulianEra) isEra()  {}
func (FixedEra) isEra()   {}
func (IslamicEra) isEra() {}

func (e IsoEra) String() string {
	switch e {
	case BCE:
		return "BCE"
	case CE:
		return "CE"
	}
	return fmt.Sprintf("IsoEra(%d)", int(e))
}

func (e JulianEra) String() string {
	switch e {
	case BC:
		return "BC"
	case AD:
		return "AD"
	}
	return fmt.Sprintf("JulianEra(%d)", int(e))
}

func (e FixedEra) String() string {
	if e == FixedCE {
		return "CE"
	}
	return fmt.Sprintf("FixedEra(%d)", int(e))
}

func (e IslamicEra) String() string {
	if e == AH {
		return "AH"
	}
	return fmt.Sprintf("IslamicEra(%d)", int(e))
}

// eraFamily identifies the era type used by a chronology.
type eraFamily int

const (
	isoEras eraFamily = iota
	julianEras
	fixedEras
	islamicEras
)

func (f eraFamily) eras() []Era {
	switch f {
	case isoEras:
		return []Era{BCE, CE}
	case julianEras:
		return []Era{BC, AD}
	case fixedEras:
		return []Era{FixedCE}
	}
	return []Era{AH}
}

func (f eraFamily) multiEra() bool {
	return f == isoEras || f == julianEras
}

func (f eraFamily) valueRange() temporal.ValueRange {
	if f.multiEra() {
		return temporal.Range(0, 1)
	}
	return temporal.Range(1, 1)
}

func (f eraFamily) of(value int64) (Era, error) {
	if err := f.valueRange().Check(temporal.Era, value); err != nil {
		return nil, err
	}
	switch f {
	case isoEras:
		return IsoEra(value), nil
	case julianEras:
		return JulianEra(value), nil
	case fixedEras:
		return FixedCE, nil
	}
	return AH, nil
}

// belongs returns true if era is of the type used by the family.
func (f eraFamily) belongs(era Era) bool {
	switch era.(type) {
	case IsoEra:
		return f == isoEras
	case JulianEra:
		return f == julianEras
	case FixedEra:
		return f == fixedEras
	case IslamicEra:
		return f == islamicEras
	}
	return false
}

// forYear returns the era that the proleptic year falls in.
func (f eraFamily) forYear(year int64) Era {
	switch f {
	case isoEras:
		if year < 1 {
			return BCE
		}
		return CE
	case julianEras:
		if year < 1 {
			return BC
		}
		return AD
	case fixedEras:
		return FixedCE
	}
	return AH
}

// yearOfEra returns the year within its era of the proleptic year.
func (f eraFamily) yearOfEra(year int64) int64 {
	if f.multiEra() && year < 1 {
		return 1 - year
	}
	return year
}

// prolepticYear returns the proleptic year for the year within the era,
// the era must belong to the family.
func (f eraFamily) prolepticYear(era Era, yearOfEra int64) int64 {
	if f.multiEra() && era.Value() == 0 {
		return 1 - yearOfEra
	}
	return yearOfEra
}
