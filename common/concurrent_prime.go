// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"context"
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// ErrPrimeSearchCancelled is returned from FindFirstPrimeConcurrent when ctx
// is done before any worker found a probable prime.
var ErrPrimeSearchCancelled = errors.New("prime search cancelled")

// FindFirstPrimeConcurrent fans out concurrency independent PrimeIterators,
// each starting at lowerBound, and returns whichever probable prime is found
// first, in the first-valid-result-wins shape of the reference codebase's
// GetRandomSafePrimesConcurrent. Every worker tests the same candidates in
// the same order, so the result is the first probable prime above
// lowerBound, the same value a serial PrimeIterator returns.
func FindFirstPrimeConcurrent(ctx context.Context, lowerBound *big.Int, errorLevel float64, concurrency int) (*big.Int, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	resultCh := make(chan *big.Int, concurrency)
	errCh := make(chan error, concurrency)

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg := &sync.WaitGroup{}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it, err := newPrimeIterator(rand.Reader, lowerBound, errorLevel)
			if err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
			for {
				select {
				case <-workerCtx.Done():
					return
				default:
				}
				p := it.Next()
				select {
				case resultCh <- p:
				case <-workerCtx.Done():
				}
				return
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
		close(errCh)
	}()

	select {
	case p, ok := <-resultCh:
		if !ok {
			select {
			case err := <-errCh:
				return nil, err
			default:
				return nil, ErrPrimeSearchCancelled
			}
		}
		return p, nil
	case <-ctx.Done():
		return nil, ErrPrimeSearchCancelled
	}
}
