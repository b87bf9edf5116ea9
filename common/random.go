// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 8000
)

// RandSource is the entropy source used by everything in this package and by
// the abshare package built on top of it. A cryptographically strong RNG is
// required: Miller-Rabin witnesses and share masking factors must not be
// steerable by an adversary who can predict the generator's output.
type RandSource interface {
	io.Reader
}

// MustGetRandomInt returns a cryptographically strong random integer in
// [0, 2^bits). It panics if entropy can't be gathered from r or bits is out
// of range, mirroring the fail-fast posture this codebase takes for RNG
// failures elsewhere (they are treated as environment faults, not recoverable
// errors).
func MustGetRandomInt(r RandSource, bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(errors.Errorf("MustGetRandomInt: bits should be positive, non-zero and at most %d", mustGetRandomIntMaxBits))
	}
	max := new(big.Int).Exp(two, big.NewInt(int64(bits)), nil)
	n, err := rand.Int(r, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt"))
	}
	return n
}

// GetRandomPositiveInt returns a uniformly distributed value in [0, lessThan).
func GetRandomPositiveInt(r RandSource, lessThan *big.Int) *big.Int {
	if lessThan == nil || lessThan.Cmp(zero) <= 0 {
		return nil
	}
	try, err := rand.Int(r, lessThan)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in GetRandomPositiveInt"))
	}
	return try
}

// GetRandomIntInRange returns a uniformly distributed value in [lo, hi).
// Callers must ensure lo < hi; the Asmuth-Bloom masking draw (alpha in
// [1, maxAlpha)) and the Miller-Rabin witness draw (a in [2, n-2]) both
// reduce to this by shifting the range down to start at zero.
func GetRandomIntInRange(r RandSource, lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || hi.Cmp(lo) <= 0 {
		return nil, errors.Errorf("GetRandomIntInRange: empty or invalid range [%v, %v)", lo, hi)
	}
	span := new(big.Int).Sub(hi, lo)
	v := GetRandomPositiveInt(r, span)
	if v == nil {
		return nil, errors.New("GetRandomIntInRange: failed to sample span")
	}
	return v.Add(v, lo), nil
}

// GetRandomPositiveRelativelyPrimeInt returns a random element of the
// multiplicative group of units mod n.
func GetRandomPositiveRelativelyPrimeInt(r RandSource, n *big.Int) *big.Int {
	if n == nil || n.Cmp(zero) <= 0 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(r, n.BitLen())
		if IsNumberInMultiplicativeGroup(n, try) {
			break
		}
	}
	return try
}

// IsNumberInMultiplicativeGroup reports whether v is a unit of Z/nZ, i.e.
// 1 <= v < n and gcd(v, n) == 1.
func IsNumberInMultiplicativeGroup(n, v *big.Int) bool {
	if n == nil || v == nil || n.Cmp(zero) <= 0 {
		return false
	}
	gcd := new(big.Int)
	return v.Cmp(n) < 0 && v.Cmp(one) >= 0 &&
		gcd.GCD(nil, nil, v, n).Cmp(one) == 0
}
