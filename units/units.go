// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package units defines the sub-day decimal units of the Astrocycle (AC),
// the mean rotation period of a planet. Each unit is an exact power of ten
// of an AC; all values are represented and converted as exact rationals so
// that no drift accumulates even at the smallest tabulated magnitudes.
package units

import (
	"math/big"
	"strings"
)

// Unit is one entry in the sub-day unit table: 10^-Exp of an Astrocycle.
type Unit struct {
	Symbol string
	Name   string
	Exp    int
}

// Table is the process-wide constant unit table, in decreasing magnitude.
// It is immutable configuration data; treat it as read only.
var Table = []Unit{
	{"MC", "megacycle", 2},
	{"kC", "kilocycle", 3},
	{"C", "cycle", 4},
	{"mC", "millicycle", 7},
	{"µC", "microcycle", 10},
	{"nC", "nanocycle", 13},
}

func init() {
	seen := map[string]bool{}
	last := 0
	for _, u := range Table {
		if u.Exp <= last || seen[u.Symbol] {
			panic("malformed unit table: " + u.Symbol)
		}
		seen[u.Symbol] = true
		last = u.Exp
	}
}

// Lookup returns the unit with the given symbol.
func Lookup(symbol string) (Unit, bool) {
	for _, u := range Table {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// AC returns the value of the unit in Astrocycles, exactly.
func (u Unit) AC() *big.Rat {
	return pow10(-u.Exp)
}

// Seconds returns the exact length of the unit in SI seconds for a day of
// secondsPerAC SI seconds, eg. 864s for an MC on an 86400s day.
func (u Unit) Seconds(secondsPerAC *big.Rat) *big.Rat {
	return new(big.Rat).Mul(secondsPerAC, u.AC())
}

// ACToSeconds converts a quantity of Astrocycles to SI seconds, exactly.
func ACToSeconds(ac, secondsPerAC *big.Rat) *big.Rat {
	return new(big.Rat).Mul(ac, secondsPerAC)
}

// SecondsToAC converts a quantity of SI seconds to Astrocycles, exactly.
func SecondsToAC(sec, secondsPerAC *big.Rat) *big.Rat {
	return new(big.Rat).Quo(sec, secondsPerAC)
}

func pow10(exp int) *big.Rat {
	n := exp
	if n < 0 {
		n = -n
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	if exp >= 0 {
		return new(big.Rat).SetInt(p)
	}
	return new(big.Rat).SetFrac(big.NewInt(1), p)
}

// FormatRat renders r as a decimal string. The rendering is exact when the
// decimal terminates (the reduced denominator has no prime factors other
// than 2 and 5); otherwise it is rounded to 30 places.
func FormatRat(r *big.Rat) string {
	places, exact := decimalPlaces(r)
	if !exact {
		return r.FloatString(30)
	}
	s := r.FloatString(places)
	if places == 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// decimalPlaces returns the number of decimal places needed to render r
// exactly, and false if no finite rendering exists.
func decimalPlaces(r *big.Rat) (int, bool) {
	one := big.NewInt(1)
	d := new(big.Int).Set(r.Denom())
	twos := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		twos++
	}
	five := big.NewInt(5)
	fives := 0
	for {
		q, m := new(big.Int).QuoRem(d, five, new(big.Int))
		if m.Sign() != 0 {
			break
		}
		d.Set(q)
		fives++
	}
	if d.Cmp(one) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}
