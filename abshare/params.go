// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package abshare implements the Asmuth-Bloom (t, n) threshold secret
// sharing scheme: a Chinese Remainder Theorem construction that reveals a
// secret exactly once t of n shares are combined, and nothing beyond a
// residue class modulo a public prime n0 when fewer than t are combined.
package abshare

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"github.com/asmuth-bloom/abshare/common"
	"github.com/asmuth-bloom/abshare/logging"
)

// abParamSearchTries bounds how many times the prime search widens its bit
// length before giving up. The lower bound maxBits+1 almost always satisfies
// the AB inequality on the first or second try; this cap exists only to turn
// a vanishingly rare pathological draw into a reported error instead of an
// infinite loop.
const abParamSearchTries = 3

// ShareParameters is the immutable output of an Asmuth-Bloom parameter
// search: a public modulus n0 and an ordered, pairwise-coprime sequence of
// share moduli satisfying the AB inequality.
type ShareParameters struct {
	threshold  int
	shareCount int
	maxBits    int
	n0         *big.Int
	primes     []*big.Int
}

func (p *ShareParameters) Threshold() int      { return p.threshold }
func (p *ShareParameters) ShareCount() int     { return p.shareCount }
func (p *ShareParameters) MaxBits() int        { return p.maxBits }
func (p *ShareParameters) N0() *big.Int        { return new(big.Int).Set(p.n0) }
func (p *ShareParameters) Primes() []*big.Int {
	out := make([]*big.Int, len(p.primes))
	for i, pr := range p.primes {
		out[i] = new(big.Int).Set(pr)
	}
	return out
}

// ShareGenerator holds the parameters for one family of shares together with
// the entropy source used to mask secrets. It is not safe for concurrent use
// by multiple goroutines sharing the same instance; callers wanting
// parallelism build one ShareGenerator per goroutine, as the reference
// codebase's Parameters/ShareGenerator-style types are documented to require.
type ShareGenerator struct {
	params      *ShareParameters
	rand        common.RandSource
	concurrency int // 0 means use the serial PrimeIterator
}

// Option configures a ShareGenerator at construction time.
type Option func(*buildConfig)

type buildConfig struct {
	rand        common.RandSource
	concurrency int
}

// WithRandSource overrides the default crypto/rand.Reader entropy source.
func WithRandSource(r common.RandSource) Option {
	return func(c *buildConfig) { c.rand = r }
}

// WithConcurrency switches the prime search in NewShareGenerator to the
// fan-out finder in common.FindFirstPrimeConcurrent when n > 1. Its workers
// all scan upward from the same bound, so n0 and the prime list are the same
// primes the serial search finds. Share generation and recovery remain
// single-threaded regardless.
func WithConcurrency(n int) Option {
	return func(c *buildConfig) { c.concurrency = n }
}

// NewShareGenerator searches for AB-valid parameters for the given
// (maxBits, shareCount, threshold) and returns a generator ready to create
// shares. errorLevel bounds the false-positive probability of every
// primality test performed during the search.
func NewShareGenerator(maxBits, shareCount, threshold int, errorLevel float64, opts ...Option) (*ShareGenerator, error) {
	return NewShareGeneratorContext(context.Background(), maxBits, shareCount, threshold, errorLevel, opts...)
}

// NewShareGeneratorContext is NewShareGenerator with a cancellable/timeoutable
// context around the (potentially slow) parameter search. ctx is only
// consulted by the concurrent search selected with WithConcurrency; the
// default serial search runs to completion regardless of ctx.
func NewShareGeneratorContext(ctx context.Context, maxBits, shareCount, threshold int, errorLevel float64, opts ...Option) (*ShareGenerator, error) {
	if maxBits < 8 {
		return nil, errors.Wrap(ErrInvalidParameters, "max_bits must be >= 8")
	}
	if threshold < 2 {
		return nil, errors.Wrap(ErrInvalidParameters, "threshold must be >= 2")
	}
	if shareCount < threshold {
		return nil, errors.Wrap(ErrInvalidParameters, "share_count must be >= threshold")
	}
	if !(0 < errorLevel && errorLevel < 1) {
		return nil, errors.Wrap(ErrInvalidParameters, "error_level must be in (0, 1)")
	}

	cfg := &buildConfig{rand: rand.Reader}
	for _, o := range opts {
		o(cfg)
	}

	logging.Logger.Debugf("searching for n0 above 2^%d (error level %g)", maxBits, errorLevel)
	n0, err := findFirstPrimeAbove(ctx, pow2(maxBits), errorLevel, cfg.concurrency)
	if err != nil {
		return nil, errors.Wrap(err, "searching for n0")
	}
	logging.Logger.Debugf("found n0 with %d bits", n0.BitLen())

	minN1Bits := maxBits + 1
	var primeList []*big.Int
	for tries := abParamSearchTries; tries > 0; tries-- {
		logging.Logger.Debugf("searching for %d share moduli above 2^%d (%d tries left)", shareCount, minN1Bits, tries)
		primeList, err = firstNPrimesAbove(ctx, pow2(minN1Bits), errorLevel, shareCount, cfg.concurrency)
		if err != nil {
			return nil, errors.Wrap(err, "searching for share moduli")
		}
		if abInequalityHolds(n0, primeList, threshold) {
			break
		}
		logging.Logger.Debugf("AB inequality failed at %d bits, widening", minN1Bits)
		minN1Bits++
		primeList = nil
	}
	if primeList == nil {
		logging.Logger.Errorf("parameter search exhausted %d tries for max_bits=%d threshold=%d", abParamSearchTries, maxBits, threshold)
		return nil, ErrCannotSatisfyABCondition
	}
	if n0.Cmp(primeList[0]) >= 0 {
		return nil, errors.Wrap(ErrInvalidParameters, "n0 must be strictly less than the smallest share modulus")
	}
	logging.Logger.Infof("share parameters ready: n0=%d bits, %d share moduli, threshold=%d", n0.BitLen(), len(primeList), threshold)

	return &ShareGenerator{
		params: &ShareParameters{
			threshold:  threshold,
			shareCount: shareCount,
			maxBits:    maxBits,
			n0:         n0,
			primes:     primeList,
		},
		rand:        cfg.rand,
		concurrency: cfg.concurrency,
	}, nil
}

// Params returns the parameters this generator was built with.
func (g *ShareGenerator) Params() *ShareParameters { return g.params }

func pow2(bits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

func findFirstPrimeAbove(ctx context.Context, lowerBound *big.Int, errorLevel float64, concurrency int) (*big.Int, error) {
	if concurrency > 1 {
		return common.FindFirstPrimeConcurrent(ctx, lowerBound, errorLevel, concurrency)
	}
	it, err := common.NewPrimeIterator(lowerBound, errorLevel)
	if err != nil {
		return nil, err
	}
	return it.Next(), nil
}

func firstNPrimesAbove(ctx context.Context, lowerBound *big.Int, errorLevel float64, n int, concurrency int) ([]*big.Int, error) {
	if concurrency > 1 {
		out := make([]*big.Int, n)
		bound := lowerBound
		for i := 0; i < n; i++ {
			p, err := common.FindFirstPrimeConcurrent(ctx, bound, errorLevel, concurrency)
			if err != nil {
				return nil, err
			}
			out[i] = p
			bound = p
		}
		return out, nil
	}
	it, err := common.NewPrimeIterator(lowerBound, errorLevel)
	if err != nil {
		return nil, err
	}
	return it.Take(n), nil
}

// abInequalityHolds checks n0 * (product of the t-1 largest primes) <
// (product of the t smallest primes), the condition that guarantees any t
// shares determine M uniquely below the product of the t smallest moduli.
func abInequalityHolds(n0 *big.Int, ps []*big.Int, threshold int) bool {
	if len(ps) < threshold {
		return false
	}
	smallProduct := big.NewInt(1)
	for i := 0; i < threshold; i++ {
		smallProduct.Mul(smallProduct, ps[i])
	}
	largeProduct := new(big.Int).Set(n0)
	for i := len(ps) - threshold + 1; i < len(ps); i++ {
		largeProduct.Mul(largeProduct, ps[i])
	}
	return largeProduct.Cmp(smallProduct) < 0
}
