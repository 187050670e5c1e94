// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ResolverStyle determines how strictly a set of fields is resolved into
// a date.
type ResolverStyle int

const (
	// Smart accepts out of range days of month by clamping them to the
	// end of the month, rejects anything outside of the chronology range.
	Smart ResolverStyle = iota
	// Strict rejects any value that is not valid for the date being
	// resolved.
	Strict
	// Lenient accepts out of range values and treats them as offsets,
	// for example month 13 is month 1 of the following year.
	Lenient
)

func (s ResolverStyle) String() string {
	switch s {
	case Smart:
		return "Smart"
	case Strict:
		return "Strict"
	case Lenient:
		return "Lenient"
	}
	return fmt.Sprintf("ResolverStyle(%d)", int(s))
}

// FieldMap is a loosely specified set of field values.
type FieldMap map[Field]int64

// Clone returns a copy of m, the copy of a nil map is an empty map.
func (m FieldMap) Clone() FieldMap {
	if m == nil {
		return FieldMap{}
	}
	return maps.Clone(m)
}

// Has returns true if all of the specified fields are present.
func (m FieldMap) Has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := m[f]; !ok {
			return false
		}
	}
	return true
}

// Remove deletes and returns the value of the specified field.
func (m FieldMap) Remove(f Field) (int64, bool) {
	v, ok := m[f]
	if ok {
		delete(m, f)
	}
	return v, ok
}

// Fields returns the fields present in m in their fixed order.
func (m FieldMap) Fields() []Field {
	fields := make([]Field, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

func (m FieldMap) String() string {
	var out strings.Builder
	out.WriteByte('{')
	for i, f := range m.Fields() {
		if i > 0 {
			out.WriteString(", ")
		}
		fmt.Fprintf(&out, "%v=%d", f, m[f])
	}
	out.WriteByte('}')
	return out.String()
}
