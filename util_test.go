// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"

	"cloudeng.io/calendars"
)

func mustDate(t *testing.T, c calendars.Chronology, year int64, month, day int) calendars.Date {
	t.Helper()
	d, err := c.Date(year, month, day)
	if err != nil {
		t.Fatalf("%v: %v-%v-%v: %v", c, year, month, day, err)
	}
	return d
}

func mustEpochDay(t *testing.T, c calendars.Chronology, epochDay int64) calendars.Date {
	t.Helper()
	d, err := c.DateEpochDay(epochDay)
	if err != nil {
		t.Fatalf("%v: %v: %v", c, epochDay, err)
	}
	return d
}

// allChronologies includes Islamic chronologies for all of the
// predefined leap year patterns.
func allChronologies() []calendars.Chronology {
	return append(calendars.Chronologies(),
		calendars.Islamic(calendars.Leap15Based),
		calendars.Islamic(calendars.LeapIndian),
		calendars.Islamic(calendars.LeapHabashAlHasib))
}

type ymd struct {
	year       int64
	month, day int
}

func dateYMD(d calendars.Date) ymd {
	return ymd{d.Year(), d.Month(), d.Day()}
}
