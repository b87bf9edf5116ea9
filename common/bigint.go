// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Pow returns base^exp by squaring. Pow(b, 0) == 1 for any b, matching the
// usual integer convention.
func Pow(base, exp *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, nil)
}

// ModPow returns base^exp mod m. If m == 1, the result is always 0: the ring
// Z/1Z has a single element.
func ModPow(base, exp, m *big.Int) *big.Int {
	if m.Cmp(one) == 0 {
		return new(big.Int)
	}
	b := new(big.Int).Mod(base, m)
	return new(big.Int).Exp(b, exp, m)
}

// ModInverse returns a^-1 mod m via the extended Euclidean algorithm,
// normalised into [0, m). The caller must ensure gcd(a, m) == 1; behavior is
// unspecified otherwise (math/big.Int.ModInverse returns nil for a
// non-invertible a, which ModInverse below reports as a nil result).
//
// If m == 1, returns 1 rather than panicking, matching the degenerate case
// the scheme's reference arithmetic defines for a modulus of one.
func ModInverse(a, m *big.Int) *big.Int {
	if m.Cmp(one) == 0 {
		return big.NewInt(1)
	}
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil
	}
	return inv.Mod(inv, m)
}

// modInt is a *big.Int that performs all of its arithmetic with modular
// reduction, used by the CRT recoverer to keep intermediate products bounded.
type modInt big.Int

func ModInt(mod *big.Int) *modInt {
	return (*modInt)(mod)
}

func (mi *modInt) Add(x, y *big.Int) *big.Int {
	i := new(big.Int).Add(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Sub(x, y *big.Int) *big.Int {
	i := new(big.Int).Sub(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int).Mul(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}

// IsInInterval reports whether 0 <= b < bound.
func IsInInterval(b, bound *big.Int) bool {
	return b.Cmp(bound) < 0 && b.Cmp(zero) >= 0
}
