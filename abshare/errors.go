// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package abshare

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Callers should compare with
// errors.Is / errors.Cause rather than string-matching .Error().
var (
	ErrSecretTooLong            = errors.New("secret too long for max_bits")
	ErrDegenerateMasking        = errors.New("AB masking range is degenerate (max_alpha <= 1)")
	ErrNotEnoughShares          = errors.New("not enough shares to meet the threshold")
	ErrCannotSatisfyABCondition = errors.New("cannot satisfy AB condition: parameter search exhausted its tries")
	ErrInvalidParameters        = errors.New("invalid share parameters")
)
