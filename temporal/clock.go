// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package temporal

import "time"

// Clock provides the current instant and the location in which it is
// to be interpreted.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// SystemClock returns a Clock that reports the system time in the
// specified location. A nil location is treated as time.Local.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

type offsetClock struct {
	base Clock
	d    time.Duration
}

func (c offsetClock) Now() time.Time {
	return c.base.Now().Add(c.d)
}

// OffsetClock returns a Clock that reports the time of base plus d.
func OffsetClock(base Clock, d time.Duration) Clock {
	return offsetClock{base: base, d: d}
}
