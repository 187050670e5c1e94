// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// ErrUnknownChronology is returned when a chronology identifier is not
// known to a Registry.
var ErrUnknownChronology = errors.New("unknown chronology")

// IslamicConfig configures an Islamic chronology with a specific leap
// year pattern.
type IslamicConfig struct {
	ID        string          `yaml:"id"`
	LeapYears LeapYearPattern `yaml:"leap_years"`
}

// Config represents the configuration of a Registry, for example:
//
//	default: Sym454
//	islamic:
//	  - id: Islamic-custom
//	    leap_years: [2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29]
//	aliases:
//	  gregorian: ISO
//
// where leap_years is either the name of a predefined pattern
// ("15-based", "16-based", "indian" or "habash-al-hasib") or a list of
// the leap years within the 30 year cycle.
type Config struct {
	Default string            `yaml:"default"`
	Islamic []IslamicConfig   `yaml:"islamic"`
	Aliases map[string]string `yaml:"aliases"`
}

// ParseConfig parses a yaml configuration, unknown fields are reported
// as errors.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the yaml configuration in filename.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	ctxlog.Logger(ctx).Debug("loaded calendar config", "file", filename,
		"default", cfg.Default, "islamic", len(cfg.Islamic), "aliases", len(cfg.Aliases))
	return cfg, nil
}

// Registry provides lookup of chronologies by case insensitive
// identifier.
type Registry struct {
	byID map[string]Chronology
	def  Chronology
}

func key(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func builtinRegistry() *Registry {
	r := &Registry{byID: map[string]Chronology{}, def: ISO}
	for _, c := range Chronologies() {
		r.byID[key(c.ID())] = c
	}
	for _, np := range namedPatterns {
		c := Islamic(np.pattern)
		r.byID[key(c.ID())] = c
	}
	r.byID[key(IslamicCivil.Name())] = IslamicCivil
	return r
}

var defaultRegistry = builtinRegistry()

// DefaultRegistry returns a registry containing the built in
// chronologies, the Islamic chronology for each predefined leap year
// pattern and "Islamic" for IslamicCivil. Its default is ISO.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry containing the built in chronologies
// and those specified in cfg. All configuration errors are reported.
func NewRegistry(ctx context.Context, cfg Config) (*Registry, error) {
	logger := ctxlog.Logger(ctx)
	r := builtinRegistry()
	errs := &errors.M{}
	for _, ic := range cfg.Islamic {
		k := key(ic.ID)
		if len(k) == 0 {
			errs.Append(fmt.Errorf("islamic chronology with leap years %v has no id", ic.LeapYears))
			continue
		}
		if _, ok := r.byID[k]; ok {
			errs.Append(fmt.Errorf("duplicate chronology id: %q", ic.ID))
			continue
		}
		r.byID[k] = Islamic(ic.LeapYears)
		logger.Debug("registered chronology", "id", ic.ID, "leapYears", ic.LeapYears.String())
	}
	for _, alias := range slices.Sorted(maps.Keys(cfg.Aliases)) {
		target := cfg.Aliases[alias]
		c, ok := r.byID[key(target)]
		if !ok {
			errs.Append(fmt.Errorf("alias %q: %w: %q", alias, ErrUnknownChronology, target))
			continue
		}
		if _, ok := r.byID[key(alias)]; ok {
			errs.Append(fmt.Errorf("duplicate chronology id: %q", alias))
			continue
		}
		r.byID[key(alias)] = c
		logger.Debug("registered alias", "alias", alias, "chronology", c.ID())
	}
	if len(cfg.Default) > 0 {
		c, ok := r.byID[key(cfg.Default)]
		if !ok {
			errs.Append(fmt.Errorf("default: %w: %q", ErrUnknownChronology, cfg.Default))
		}
		r.def = c
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	logger.Debug("created chronology registry", "default", r.def.ID(), "ids", len(r.byID))
	return r, nil
}

// Lookup returns the chronology with the specified identifier.
func (r *Registry) Lookup(id string) (Chronology, error) {
	c, ok := r.byID[key(id)]
	if !ok {
		return Chronology{}, fmt.Errorf("%w: %q", ErrUnknownChronology, id)
	}
	return c, nil
}

// Default returns the default chronology of the registry.
func (r *Registry) Default() Chronology {
	return r.def
}

// IDs returns the lower case identifiers of all chronologies in the
// registry in sorted order.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.byID))
}
