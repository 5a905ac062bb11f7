// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package planet defines planet profiles: the physical constants of a
// planet's time system. A profile is a plain immutable value; the leap
// cycle and calendar derived from it are memoized by the decitime package
// so that repeated use of the same profile never re-derives them.
package planet

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/decitime"
	"cloudeng.io/decitime/units"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Scalar is an exact decimal value that marshals to and from YAML as a
// string or number literal without passing through a float.
type Scalar struct {
	r *big.Rat
}

// NewScalar parses a decimal (or rational) literal, eg. '88775.244'.
func NewScalar(val string) (Scalar, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(val))
	if !ok {
		return Scalar{}, fmt.Errorf("invalid decimal value %q", val)
	}
	return Scalar{r: r}, nil
}

func mustScalar(val string) Scalar {
	s, err := NewScalar(val)
	if err != nil {
		panic(err)
	}
	return s
}

// Rat returns a copy of the scalar as an exact rational.
func (s Scalar) Rat() *big.Rat {
	if s.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(s.r)
}

// IsZero returns true for unset or zero scalars.
func (s Scalar) IsZero() bool {
	return s.r == nil || s.r.Sign() == 0
}

// Sign returns the sign of the scalar as per big.Rat.Sign.
func (s Scalar) Sign() int {
	if s.r == nil {
		return 0
	}
	return s.r.Sign()
}

func (s Scalar) String() string {
	if s.r == nil {
		return "0"
	}
	return units.FormatRat(s.r)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	v, err := NewScalar(value.Value)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Scalar) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// DefaultMaxCycleYears bounds the leap cycle length for profiles that do
// not specify their own bound.
const DefaultMaxCycleYears = 400

// Profile defines a planet's time system: the length of its day in SI
// seconds, its orbital period in local days and the epochs anchoring its
// calendar and clock. Profiles select behavior by value; there is no
// subtyping per celestial body.
type Profile struct {
	// Name is the human readable name, eg. 'Earth'.
	Name string `yaml:"name"`
	// SecondsPerAC is the length of one Astrocycle (mean local day) in
	// SI seconds.
	SecondsPerAC Scalar `yaml:"seconds_per_ac"`
	// OrbitalPeriodDays is the orbital period in Astrocycles.
	OrbitalPeriodDays Scalar `yaml:"orbital_period_days"`
	// MaxCycleYears bounds the derived leap cycle length; zero selects
	// DefaultMaxCycleYears.
	MaxCycleYears int `yaml:"max_cycle_years,omitempty"`
	// EpochDay is the AbsoluteDay of calendar year 0, day 1.
	EpochDay int64 `yaml:"epoch_day,omitempty"`
	// EpochOffsetSeconds is the Unix time, in SI seconds, of the start
	// of AbsoluteDay 0 ('Time Zero' for the planet's clock).
	EpochOffsetSeconds int64 `yaml:"epoch_offset_seconds,omitempty"`
}

// Built in profiles.
var (
	Earth = Profile{
		Name:              "Earth",
		SecondsPerAC:      mustScalar("86400"),
		OrbitalPeriodDays: mustScalar("365.2422"),
		MaxCycleYears:     DefaultMaxCycleYears,
	}
	Mars = Profile{
		Name:              "Mars",
		SecondsPerAC:      mustScalar("88775.244"),
		OrbitalPeriodDays: mustScalar("668.5921"),
		MaxCycleYears:     DefaultMaxCycleYears,
	}
)

// Builtin returns the built in profiles.
func Builtin() Profiles {
	return Profiles{Earth, Mars}
}

func (p Profile) maxCycleYears() int {
	if p.MaxCycleYears == 0 {
		return DefaultMaxCycleYears
	}
	return p.MaxCycleYears
}

// Validate returns all of the faults with the profile, not just the
// first.
func (p Profile) Validate() error {
	errs := errors.M{}
	if len(p.Name) == 0 {
		errs.Append(fmt.Errorf("profile has no name"))
	}
	if p.SecondsPerAC.Sign() <= 0 {
		errs.Append(fmt.Errorf("%v: seconds_per_ac must be positive, have %v", p.Name, p.SecondsPerAC))
	}
	if p.OrbitalPeriodDays.Sign() <= 0 {
		errs.Append(fmt.Errorf("%v: orbital_period_days must be positive, have %v: %w", p.Name, p.OrbitalPeriodDays, decitime.ErrInvalidPeriod))
	}
	if p.MaxCycleYears < 0 {
		errs.Append(fmt.Errorf("%v: max_cycle_years must be positive, have %v: %w", p.Name, p.MaxCycleYears, decitime.ErrInvalidPrecisionBound))
	}
	return errs.Err()
}

// Period returns the orbital period.
func (p Profile) Period() (decitime.OrbitalPeriod, error) {
	period, err := decitime.NewOrbitalPeriod(p.OrbitalPeriodDays.Rat())
	if err != nil {
		return decitime.OrbitalPeriod{}, fmt.Errorf("%v: %w", p.Name, err)
	}
	return period, nil
}

// LeapCycle returns the (memoized) leap cycle for the profile.
func (p Profile) LeapCycle() (decitime.LeapCycle, error) {
	period, err := p.Period()
	if err != nil {
		return decitime.LeapCycle{}, err
	}
	return decitime.DeriveLeapCycle(period, p.maxCycleYears())
}

// Calendar returns the calendar for the profile, anchored at its epoch
// day.
func (p Profile) Calendar() (decitime.Calendar, error) {
	cycle, err := p.LeapCycle()
	if err != nil {
		return decitime.Calendar{}, err
	}
	return decitime.NewCalendar(cycle, decitime.AbsoluteDay(p.EpochDay)), nil
}

// Profiles is a set of profiles, eg. as loaded from a configuration file.
type Profiles []Profile

// Lookup returns the named profile, comparing names case insensitively.
func (ps Profiles) Lookup(name string) (Profile, bool) {
	for _, p := range ps {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// LoadFile reads profiles from a YAML file of the form:
//
//	- name: Duna
//	  seconds_per_ac: "65517.859"
//	  orbital_period_days: "801.67"
//	  max_cycle_years: 100
//
// Every profile is validated and all validation errors are returned.
func LoadFile(filename string) (Profiles, error) {
	var ps Profiles
	if err := cmdyaml.ParseConfigFile(context.Background(), filename, &ps); err != nil {
		return nil, err
	}
	errs := errors.M{}
	for _, p := range ps {
		errs.Append(p.Validate())
	}
	return ps, errs.Err()
}
