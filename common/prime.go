// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"math"
	"math/big"

	"github.com/otiai10/primes"
	"github.com/pkg/errors"
)

// smallPrimeSieveBound is how far the trial-division pre-filter reaches
// before falling back to full Miller-Rabin. Mirrors the reference codebase's
// use of the same sieve (via this identical dependency) to pre-seed a cache
// of small primes in crypto/paillier before running expensive primality
// tests on candidate factors.
const smallPrimeSieveBound = 1000

func init() {
	// Prime the global sieve cache once, the way crypto/paillier's init()
	// does, so the first real candidate doesn't pay for sieve construction.
	primes.Globally.Until(smallPrimeSieveBound)
}

// divisibleBySmallPrime trial-divides n against the cached small-prime sieve.
// It is a cheap rejection of obviously composite candidates before paying
// for a big-integer modular exponentiation in the witness loop.
func divisibleBySmallPrime(n *big.Int) bool {
	for _, p := range primes.Until(smallPrimeSieveBound).List() {
		bp := big.NewInt(p)
		if n.Cmp(bp) == 0 {
			return false
		}
		if new(big.Int).Mod(n, bp).Sign() == 0 {
			return true
		}
	}
	return false
}

// IsProbablePrime runs k rounds of the Miller-Rabin witness test on odd n >= 3,
// preceded by a small-prime trial-division filter. The probability of
// returning true for a composite n is at most 0.25^k.
func IsProbablePrime(r RandSource, n *big.Int, k int) bool {
	if n.Bit(0) == 0 {
		return n.Cmp(two) == 0
	}
	if n.Cmp(big.NewInt(3)) < 0 {
		return false
	}
	if divisibleBySmallPrime(n) {
		return false
	}

	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	rExp := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		rExp++
	}

	for round := 0; round < k; round++ {
		// [2, n-1) is half-open, so the largest value drawn is n-2: the
		// closed interval [2, n-2] the witness test requires.
		a, err := GetRandomIntInRange(r, two, nMinusOne)
		if err != nil {
			// Empty range: n - 1 <= 2, i.e. n == 3 (n < 3 returned above),
			// which is prime.
			return n.Cmp(big.NewInt(3)) == 0
		}
		x := ModPow(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}
		witness := true
		for i := 0; i < rExp-1; i++ {
			x = ModPow(x, two, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// PrimeIterator produces a strictly increasing, infinite sequence of probable
// primes greater than the bound it was constructed with. It is not
// restartable or seekable: the only way to start over is to build a new one.
type PrimeIterator struct {
	lastOdd *big.Int
	rounds  int
	rand    RandSource
}

// NewPrimeIterator builds an iterator over odd numbers greater than
// lowerBound, each tested with enough Miller-Rabin rounds that the false
// positive probability is at most errorLevel.
func NewPrimeIterator(lowerBound *big.Int, errorLevel float64) (*PrimeIterator, error) {
	return newPrimeIterator(rand.Reader, lowerBound, errorLevel)
}

func newPrimeIterator(r RandSource, lowerBound *big.Int, errorLevel float64) (*PrimeIterator, error) {
	if lowerBound == nil || lowerBound.Cmp(zero) <= 0 {
		return nil, errors.New("NewPrimeIterator: lowerBound must be > 0")
	}
	if !(0 < errorLevel && errorLevel < 1) {
		return nil, errors.New("NewPrimeIterator: errorLevel must be in (0, 1)")
	}
	rounds := int(math.Ceil(math.Log(errorLevel) / math.Log(0.25)))
	if rounds < 1 {
		rounds = 1
	}
	last := new(big.Int).Set(lowerBound)
	if last.Bit(0) == 0 {
		last.Sub(last, one)
	}
	return &PrimeIterator{lastOdd: last, rounds: rounds, rand: r}, nil
}

// Next returns the next probable prime strictly greater than the previous
// value returned (or than the construction bound, on the first call).
func (it *PrimeIterator) Next() *big.Int {
	for {
		it.lastOdd = new(big.Int).Add(it.lastOdd, two)
		if IsProbablePrime(it.rand, it.lastOdd, it.rounds) {
			return new(big.Int).Set(it.lastOdd)
		}
	}
}

// Take collects the next n primes from the iterator in increasing order.
func (it *PrimeIterator) Take(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = it.Next()
	}
	return out
}

// Rounds reports the Miller-Rabin round count this iterator was configured
// with, derived from its errorLevel at construction.
func (it *PrimeIterator) Rounds() int {
	return it.rounds
}
