// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package abshare

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/asmuth-bloom/abshare/common"
)

type (
	// Share is one participant's residue/modulus pair: y = M mod p.
	Share struct {
		Y *big.Int
		P *big.Int
	}

	// ABSharedSecret is the full output of one CreateShare call: the public
	// modulus n0 plus one Share per share modulus, in the same order as the
	// generator's ShareParameters.Primes().
	ABSharedSecret struct {
		N0     *big.Int
		Shares []*Share
	}
)

// CreateShare masks secretBytes into M = s + alpha*n0 for a random alpha,
// then reduces M modulo every share prime. 8*len(secretBytes) must not
// exceed the generator's max_bits.
func (g *ShareGenerator) CreateShare(secretBytes []byte) (*ABSharedSecret, error) {
	p := g.params
	if 8*len(secretBytes) > p.maxBits {
		return nil, ErrSecretTooLong
	}

	s := new(big.Int).SetBytes(secretBytes)

	pt := big.NewInt(1)
	for i := 0; i < p.threshold; i++ {
		pt.Mul(pt, p.primes[i])
	}

	maxAlpha := new(big.Int).Sub(pt, s)
	maxAlpha.Div(maxAlpha, p.n0)
	if maxAlpha.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrDegenerateMasking
	}

	alpha, err := common.GetRandomIntInRange(g.rand, big.NewInt(1), maxAlpha)
	if err != nil {
		return nil, errors.Wrap(err, "drawing masking factor alpha")
	}

	m := new(big.Int).Mul(alpha, p.n0)
	m.Add(m, s)

	shares := make([]*Share, len(p.primes))
	for i, pr := range p.primes {
		shares[i] = &Share{
			Y: new(big.Int).Mod(m, pr),
			P: new(big.Int).Set(pr),
		}
	}

	return &ABSharedSecret{N0: new(big.Int).Set(p.n0), Shares: shares}, nil
}
