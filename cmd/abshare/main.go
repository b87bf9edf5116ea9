// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %s\n", err)
		if cause := errors.Cause(err); cause != err {
			fmt.Fprintf(os.Stderr, "Caused by %s\n", cause)
		}
		os.Exit(1)
	}
}
