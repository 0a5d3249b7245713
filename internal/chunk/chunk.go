// Package chunk provides digit-group and digit-string helpers shared by the
// conversion engines and the decimal orchestrator.
//
// All functions treat their big.Int arguments as read-only and are safe for
// concurrent use.
package chunk

import (
	"fmt"
	"math/big"
)

var (
	big100  = big.NewInt(100)
	big1000 = big.NewInt(1000)
)

// Split breaks a non-negative integer into digit groups, lowest group first.
// Standard grouping takes three digits per group. South Asian grouping takes
// three digits for the units group and two digits for every group above it
// (thousand, lakh, crore, ...).
//
// Every returned group fits in an int64: groups are in [0, 999] (standard)
// or [0, 99] above the units group (South Asian). Zero yields a single
// zero group.
func Split(n *big.Int, southAsian bool) []int64 {
	if n.Sign() == 0 {
		return []int64{0}
	}

	rem := new(big.Int).Set(n)
	group := new(big.Int)
	segs := make([]int64, 0, 8)

	div := big1000
	for rem.Sign() > 0 {
		rem.DivMod(rem, div, group)
		segs = append(segs, group.Int64())
		if southAsian {
			div = big100
		}
	}
	return segs
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromDigits parses a run of ASCII digits into a non-negative integer.
func FromDigits(s string) (*big.Int, error) {
	if !IsDigits(s) {
		return nil, fmt.Errorf("chunk: %q is not a digit string", s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("chunk: parsing digit string %q", s)
	}
	return n, nil
}

// LeadingZeros returns the number of leading '0' characters in s and the
// remaining suffix. A string of all zeros returns (len(s), "").
func LeadingZeros(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return i, s[i:]
}
