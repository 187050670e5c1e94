// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"cloudeng.io/algo/container/bitmap"
	"cloudeng.io/calendars/temporal"
	"gopkg.in/yaml.v3"
)

// CycleYears is the number of years in an Islamic leap year cycle.
const CycleYears = 30

// LeapYearPattern records which years of the 30 year Islamic cycle are
// leap years. Bit n is set if years whose remainder modulo 30 is n are
// leap years, so bit 0 represents the 30th year of each cycle. Patterns
// are compared by value.
type LeapYearPattern uint32

// The leap year patterns in common use.
const (
	// Leap15Based has leap years 2, 5, 7, 10, 13, 15, 18, 21, 24, 26 and 29.
	Leap15Based LeapYearPattern = 623158436
	// Leap16Based has leap years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29.
	Leap16Based LeapYearPattern = 623191204
	// LeapIndian has leap years 2, 5, 8, 10, 13, 16, 19, 21, 24, 27 and 29.
	LeapIndian LeapYearPattern = 690562340
	// LeapHabashAlHasib has leap years 2, 5, 8, 11, 13, 16, 19, 21, 24, 27 and 30.
	LeapHabashAlHasib LeapYearPattern = 153692453
)

const cycleMask = 1<<CycleYears - 1

var namedPatterns = []struct {
	name    string
	pattern LeapYearPattern
}{
	{"15-based", Leap15Based},
	{"16-based", Leap16Based},
	{"indian", LeapIndian},
	{"habash-al-hasib", LeapHabashAlHasib},
}

// NewLeapYearPattern returns the pattern with the specified years of the
// cycle, in the range 1 to 30, marked as leap years.
func NewLeapYearPattern(years ...int) (LeapYearPattern, error) {
	bm := bitmap.New(CycleYears)
	for _, y := range years {
		if y < 1 || y > CycleYears {
			return 0, &temporal.FieldError{Field: temporal.YearOfEra, Value: int64(y), Range: temporal.Range(1, CycleYears),
				Message: fmt.Sprintf("invalid leap year in cycle: %d is not in the range 1 to %d", y, CycleYears)}
		}
		bm.Set(y % CycleYears)
	}
	return LeapYearPattern(bm[0]), nil
}

// ParseLeapYearPattern parses one of the names "15-based", "16-based",
// "indian" or "habash-al-hasib", case insensitively.
func ParseLeapYearPattern(name string) (LeapYearPattern, error) {
	for _, np := range namedPatterns {
		if strings.EqualFold(name, np.name) {
			return np.pattern, nil
		}
	}
	return 0, fmt.Errorf("%w: unrecognised leap year pattern: %q", temporal.ErrInvalidValue, name)
}

func (p LeapYearPattern) bitmap() bitmap.T {
	return bitmap.T{uint64(p & cycleMask)}
}

// IsLeapYear returns true if the specified year is a leap year.
func (p LeapYearPattern) IsLeapYear(year int64) bool {
	return p.bitmap().IsSet(int(temporal.FloorMod(year, CycleYears)))
}

// LeapYears returns an iterator over the leap years of the cycle, in
// the range 1 to 30, in ascending order.
func (p LeapYearPattern) LeapYears() iter.Seq[int] {
	return func(yield func(int) bool) {
		bm := p.bitmap()
		for y := range bm.NextSet(1, CycleYears) {
			if !yield(y) {
				return
			}
		}
		if bm.IsSet(0) {
			yield(CycleYears)
		}
	}
}

// LeapYearsInCycle returns the number of leap years in each cycle.
func (p LeapYearPattern) LeapYearsInCycle() int {
	return bits.OnesCount32(uint32(p & cycleMask))
}

// leapYearsBefore returns the number of leap years in the first n years
// of a cycle, where n is in the range 0 to 29.
func (p LeapYearPattern) leapYearsBefore(n int) int {
	mask := uint32(1)<<(n+1) - 2 // bits 1 through n
	return bits.OnesCount32(uint32(p) & mask)
}

// Name returns the name of a predefined pattern or a hex representation
// of a custom one.
func (p LeapYearPattern) Name() string {
	for _, np := range namedPatterns {
		if np.pattern == p&cycleMask {
			return np.name
		}
	}
	return fmt.Sprintf("custom-%08x", uint32(p&cycleMask))
}

func (p LeapYearPattern) String() string {
	years := []string{}
	for y := range p.LeapYears() {
		years = append(years, fmt.Sprint(y))
	}
	return p.Name() + "[" + strings.Join(years, ",") + "]"
}

// MarshalYAML implements yaml.Marshaler. Predefined patterns are written
// by name, custom ones as a list of years.
func (p LeapYearPattern) MarshalYAML() (any, error) {
	name := p.Name()
	if !strings.HasPrefix(name, "custom-") {
		return name, nil
	}
	years := []int{}
	for y := range p.LeapYears() {
		years = append(years, y)
	}
	return years, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It accepts either the name
// of a predefined pattern or a list of years in the range 1 to 30.
func (p *LeapYearPattern) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		np, err := ParseLeapYearPattern(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*p = np
		return nil
	case yaml.SequenceNode:
		var years []int
		if err := value.Decode(&years); err != nil {
			return err
		}
		np, err := NewLeapYearPattern(years...)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*p = np
		return nil
	}
	return fmt.Errorf("line %d: leap years must be a pattern name or a list of years", value.Line)
}
