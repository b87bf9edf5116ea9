// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmuth-bloom/abshare/common"
)

const errorLevel = 1e-9

func TestPrimeIteratorFirstTen(t *testing.T) {
	it, err := common.NewPrimeIterator(big.NewInt(100), errorLevel)
	require.NoError(t, err)

	want := []int64{101, 103, 107, 109, 113, 127, 131, 137, 139, 149}
	got := it.Take(10)
	for i, w := range want {
		assert.Equal(t, big.NewInt(w), got[i])
	}
}

func TestPrimeIteratorLargeBound(t *testing.T) {
	it, err := common.NewPrimeIterator(big.NewInt(961748940), errorLevel)
	require.NoError(t, err)

	want := []int64{
		961748941, 961748947, 961748951, 961748969, 961748987, 961748993,
		961749023, 961749037, 961749043, 961749067, 961749079, 961749091,
		961749097, 961749101, 961749121, 961749157,
	}
	got := it.Take(16)
	for i, w := range want {
		assert.Equal(t, big.NewInt(w), got[i])
	}
}

func TestPrimeIteratorStrictlyIncreasingAndPrime(t *testing.T) {
	bound := big.NewInt(12345)
	it, err := common.NewPrimeIterator(bound, errorLevel)
	require.NoError(t, err)

	prev := bound
	for i := 0; i < 25; i++ {
		p := it.Next()
		assert.True(t, p.Cmp(prev) > 0)
		assert.True(t, p.ProbablyPrime(it.Rounds()))
		prev = p
	}
}

func TestPrimeIteratorRejectsBadInputs(t *testing.T) {
	_, err := common.NewPrimeIterator(big.NewInt(0), errorLevel)
	assert.Error(t, err)

	_, err = common.NewPrimeIterator(big.NewInt(10), 1.5)
	assert.Error(t, err)
}

func TestIsProbablePrimeMersenne521(t *testing.T) {
	m521 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 521), big.NewInt(1))
	assert.True(t, common.IsProbablePrime(rand.Reader, m521, 7))
}

func TestModInverseMatchesFermatCheck(t *testing.T) {
	m := big.NewInt(1_000_003) // prime
	for _, a := range []int64{2, 3, 5, 999983} {
		inv := common.ModInverse(big.NewInt(a), m)
		require.NotNil(t, inv)
		check := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(a), inv), m)
		assert.Equal(t, big.NewInt(1), check)
	}
}
