// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"fmt"
	"math"
	"strconv"
)

// ValueRange represents the legal values of a field. The minimum and
// maximum may vary, for example the maximum day of month is between 28
// and 31 for the ISO calendar; in that case SmallestMax is 28 and Max
// is 31. For a fixed range LargestMin == Min and SmallestMax == Max.
type ValueRange struct {
	Min         int64
	LargestMin  int64
	SmallestMax int64
	Max         int64
}

// Range returns a fixed range from min to max inclusive.
func Range(min, max int64) ValueRange {
	return ValueRange{Min: min, LargestMin: min, SmallestMax: max, Max: max}
}

// VariableRange returns a range with a fixed minimum and a maximum that
// varies between smallestMax and max.
func VariableRange(min, smallestMax, max int64) ValueRange {
	return ValueRange{Min: min, LargestMin: min, SmallestMax: smallestMax, Max: max}
}

// FullRange returns a range where both the minimum and maximum vary.
func FullRange(min, largestMin, smallestMax, max int64) ValueRange {
	return ValueRange{Min: min, LargestMin: largestMin, SmallestMax: smallestMax, Max: max}
}

// IsZero returns true for the zero value.
func (r ValueRange) IsZero() bool {
	return r == ValueRange{}
}

// IsFixed returns true if neither the minimum nor the maximum vary.
func (r ValueRange) IsFixed() bool {
	return r.Min == r.LargestMin && r.SmallestMax == r.Max
}

// IsIntValue returns true if all values in the range fit in an int32.
func (r ValueRange) IsIntValue() bool {
	return r.Min >= math.MinInt32 && r.Max <= math.MaxInt32
}

// IsValid returns true if v lies within [Min, Max].
func (r ValueRange) IsValid(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Check returns a *FieldError if v lies outside of the range.
func (r ValueRange) Check(field Field, v int64) error {
	if !r.IsValid(v) {
		return &FieldError{Field: field, Value: v, Range: r}
	}
	return nil
}

// CheckInt is like Check but also returns v as an int and requires that
// the range is an int range.
func (r ValueRange) CheckInt(field Field, v int64) (int, error) {
	if !r.IsIntValue() {
		return 0, fmt.Errorf("invalid int value for %v: %v is not an int range", field, r)
	}
	if err := r.Check(field, v); err != nil {
		return 0, err
	}
	return int(v), nil
}

// String returns the range in the form "1 - 28/31" or "0/1 - 0/7".
func (r ValueRange) String() string {
	out := strconv.FormatInt(r.Min, 10)
	if r.Min != r.LargestMin {
		out += "/" + strconv.FormatInt(r.LargestMin, 10)
	}
	out += " - " + strconv.FormatInt(r.SmallestMax, 10)
	if r.SmallestMax != r.Max {
		out += "/" + strconv.FormatInt(r.Max, 10)
	}
	return out
}
