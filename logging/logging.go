// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package logging wraps the ipfs/go-log subsystem logger the same way the
// reference codebase's tests call log.SetLogLevel("tss-lib", level):
// one named subsystem, with its level adjustable at runtime.
package logging

import (
	golog "github.com/ipfs/go-log"
)

const Subsystem = "abshare"

// Logger is the package-wide structured logger for this subsystem.
var Logger = golog.Logger(Subsystem)

// SetLevel adjusts the logging verbosity for the abshare subsystem. Valid
// values are "debug", "info", "warn", "error", "dpanic", "panic", "fatal".
func SetLevel(level string) error {
	return golog.SetLogLevel(Subsystem, level)
}
