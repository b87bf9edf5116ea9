// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import "github.com/pkg/errors"

var (
	ErrThresholdTooSmall      = errors.New("threshold must be >= 2")
	ErrSecretRequired         = errors.New("no secret given as an argument or on stdin")
	ErrRecoveredSecretNotUTF8 = errors.New("recovered secret is not valid UTF-8")
)
