// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"slices"
	"testing"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/temporal"
	"gopkg.in/yaml.v3"
)

func TestLeapYearPatterns(t *testing.T) {
	for _, tc := range []struct {
		pattern calendars.LeapYearPattern
		name    string
		years   []int
	}{
		{calendars.Leap15Based, "15-based", []int{2, 5, 7, 10, 13, 15, 18, 21, 24, 26, 29}},
		{calendars.Leap16Based, "16-based", []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29}},
		{calendars.LeapIndian, "indian", []int{2, 5, 8, 10, 13, 16, 19, 21, 24, 27, 29}},
		{calendars.LeapHabashAlHasib, "habash-al-hasib", []int{2, 5, 8, 11, 13, 16, 19, 21, 24, 27, 30}},
	} {
		if got, want := slices.Collect(tc.pattern.LeapYears()), tc.years; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		p, err := calendars.NewLeapYearPattern(tc.years...)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
			continue
		}
		if got, want := p, tc.pattern; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := p.Name(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := p.LeapYearsInCycle(), 11; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		parsed, err := calendars.ParseLeapYearPattern(tc.name)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
			continue
		}
		if got, want := parsed, tc.pattern; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		for cycle := int64(-2); cycle < 3; cycle++ {
			for y := int64(1); y <= calendars.CycleYears; y++ {
				year := cycle*calendars.CycleYears + y
				if got, want := p.IsLeapYear(year), slices.Contains(tc.years, int(y)); got != want {
					t.Errorf("%v: %v: got %v, want %v", tc.name, year, got, want)
				}
			}
		}
	}

	if got, want := calendars.Leap16Based.String(), "16-based[2,5,7,10,13,16,18,21,24,26,29]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	custom, err := calendars.NewLeapYearPattern(1, 30)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := custom.String(), "custom-00000003[1,30]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendars.Islamic(custom).ID(), "Islamic-custom-00000003"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, years := range [][]int{{0}, {31}, {2, -1}} {
		if _, err := calendars.NewLeapYearPattern(years...); !errors.Is(err, temporal.ErrInvalidValue) {
			t.Errorf("%v: missing or wrong error: %v", years, err)
		}
	}
	if _, err := calendars.ParseLeapYearPattern("17-based"); !errors.Is(err, temporal.ErrInvalidValue) {
		t.Errorf("missing or wrong error: %v", err)
	}
	if p, err := calendars.ParseLeapYearPattern("Habash-Al-Hasib"); err != nil || p != calendars.LeapHabashAlHasib {
		t.Errorf("got %v, %v", p, err)
	}
}

type patternConfig struct {
	Pattern calendars.LeapYearPattern `yaml:"pattern"`
}

func TestLeapYearPatternYAML(t *testing.T) {
	out, err := yaml.Marshal(patternConfig{Pattern: calendars.LeapIndian})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "pattern: indian\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	custom, err := calendars.NewLeapYearPattern(1, 3, 30)
	if err != nil {
		t.Fatal(err)
	}
	out, err = yaml.Marshal(patternConfig{Pattern: custom})
	if err != nil {
		t.Fatal(err)
	}
	var pc patternConfig
	if err := yaml.Unmarshal(out, &pc); err != nil {
		t.Fatalf("%s: %v", out, err)
	}
	if got, want := pc.Pattern, custom; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		spec    string
		pattern calendars.LeapYearPattern
	}{
		{"pattern: 16-based", calendars.Leap16Based},
		{"pattern: HABASH-AL-HASIB", calendars.LeapHabashAlHasib},
		{"pattern: [2, 5, 7, 10, 13, 15, 18, 21, 24, 26, 29]", calendars.Leap15Based},
	} {
		var pc patternConfig
		if err := yaml.Unmarshal([]byte(tc.spec), &pc); err != nil {
			t.Errorf("%v: %v", tc.spec, err)
			continue
		}
		if got, want := pc.Pattern, tc.pattern; got != want {
			t.Errorf("%v: got %v, want %v", tc.spec, got, want)
		}
	}

	for _, spec := range []string{
		"pattern: nope",
		"pattern: [0, 2]",
		"pattern: {a: 1}",
		"pattern: [a, b]",
	} {
		var pc patternConfig
		if err := yaml.Unmarshal([]byte(spec), &pc); err == nil {
			t.Errorf("%v: expected an error", spec)
		}
	}
}
