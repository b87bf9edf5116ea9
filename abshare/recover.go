// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package abshare

import (
	"math/big"

	"github.com/asmuth-bloom/abshare/common"
)

// Recover reconstructs the original secret from at least threshold shares of
// s using the Chinese Remainder Theorem, then reduces the result modulo n0.
//
// Because the secret is returned as the minimal big-endian encoding of a
// big.Int, a secret whose first byte was 0x00 cannot be distinguished from
// the same secret without it: the leading zero is lost. Callers that need
// the exact original length must track it out of band.
func Recover(s *ABSharedSecret, threshold int) ([]byte, error) {
	if len(s.Shares) < threshold {
		return nil, ErrNotEnoughShares
	}
	used := s.Shares[:threshold]

	m, err := crt(used)
	if err != nil {
		return nil, err
	}

	secret := new(big.Int).Mod(m, s.N0)
	return secret.Bytes(), nil
}

// crt solves for the unique value in [0, prod(pi)) congruent to yi mod pi
// for every share, assuming the pi are pairwise coprime.
func crt(shares []*Share) (*big.Int, error) {
	product := big.NewInt(1)
	for _, sh := range shares {
		product.Mul(product, sh.P)
	}

	modP := common.ModInt(product)
	result := big.NewInt(0)
	for _, sh := range shares {
		pi := new(big.Int).Div(product, sh.P)
		qi := common.ModInverse(pi, sh.P)
		if qi == nil {
			return nil, ErrInvalidParameters
		}
		term := modP.Mul(sh.Y, modP.Mul(qi, pi))
		result = modP.Add(result, term)
	}
	return result, nil
}
