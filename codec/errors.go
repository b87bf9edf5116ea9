// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package codec

import "github.com/pkg/errors"

var (
	ErrZeroRLEMalformed = errors.New("malformed zero run-length encoding")
	ErrStringFormat     = errors.New("share line is not three colon-separated parts")
	ErrN0Mismatch       = errors.New("n0 differs across share lines")
	ErrNoShares         = errors.New("input contains no share lines")
	ErrNumberFormat     = errors.New("value is not valid lowercase base-32")
)
