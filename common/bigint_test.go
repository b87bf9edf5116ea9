// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asmuth-bloom/abshare/common"
)

func TestPow(t *testing.T) {
	want := []int64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512}
	for exp, w := range want {
		got := common.Pow(big.NewInt(2), big.NewInt(int64(exp)))
		assert.Equal(t, big.NewInt(w), got)
	}
}

func TestModPow(t *testing.T) {
	assert.Equal(t, big.NewInt(512), common.ModPow(big.NewInt(2), big.NewInt(9), big.NewInt(7907)))
	assert.Equal(t, big.NewInt(1), common.ModPow(big.NewInt(2), big.NewInt(0), big.NewInt(7907)))
	assert.Equal(t, big.NewInt(0), common.ModPow(big.NewInt(5), big.NewInt(3), big.NewInt(1)))
}

func TestModInverse(t *testing.T) {
	a := big.NewInt(17)
	m := big.NewInt(3120)
	inv := common.ModInverse(a, m)
	check := new(big.Int).Mod(new(big.Int).Mul(a, inv), m)
	assert.Equal(t, big.NewInt(1), check)
}

func TestModInverseDegenerateModulus(t *testing.T) {
	assert.Equal(t, big.NewInt(1), common.ModInverse(big.NewInt(5), big.NewInt(1)))
}
