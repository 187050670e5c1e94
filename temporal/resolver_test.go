// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal_test

import (
	"testing"

	"cloudeng.io/calendars/temporal"
	"github.com/google/go-cmp/cmp"
)

func TestFieldMap(t *testing.T) {
	m := temporal.FieldMap{
		temporal.Year:        2012,
		temporal.DayOfMonth:  23,
		temporal.MonthOfYear: 6,
	}
	if got, want := m.String(), "{DayOfMonth=23, MonthOfYear=6, Year=2012}"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	c := m.Clone()
	if v, ok := c.Remove(temporal.Year); !ok || v != 2012 {
		t.Errorf("got %v, %v", v, ok)
	}
	if _, ok := c.Remove(temporal.Year); ok {
		t.Errorf("field should have been removed")
	}
	if !m.Has(temporal.Year, temporal.MonthOfYear) {
		t.Errorf("original map should be unchanged")
	}
	if c.Has(temporal.Year) {
		t.Errorf("clone should not have Year")
	}
	if diff := cmp.Diff(m.Fields(), []temporal.Field{temporal.DayOfMonth, temporal.MonthOfYear, temporal.Year}); diff != "" {
		t.Errorf("unexpected fields (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(m.Clone(), m); diff != "" {
		t.Errorf("unexpected clone (-got +want):\n%s", diff)
	}
	var empty temporal.FieldMap
	c = empty.Clone()
	if c == nil || len(c) != 0 {
		t.Errorf("got %v, want an empty map", c)
	}
	c[temporal.Year] = 1
	if got, want := len(c), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		style temporal.ResolverStyle
		str   string
	}{
		{temporal.Smart, "Smart"},
		{temporal.Strict, "Strict"},
		{temporal.Lenient, "Lenient"},
		{temporal.ResolverStyle(7), "ResolverStyle(7)"},
	} {
		if got, want := tc.style.String(), tc.str; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
