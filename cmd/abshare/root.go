// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/asmuth-bloom/abshare/logging"
)

// defaultErrorLevel bounds the false-positive probability of every
// primality test the CLI performs; it is not user-configurable, mirroring
// the reference codebase's fixed primeTestN used throughout common/.
const defaultErrorLevel = 1e-9

var rootCmd = &cobra.Command{
	Use:           "abshare",
	Short:         "Asmuth-Bloom threshold secret sharing",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := viper.BindEnv("log-level", "ABSHARE_LOG_LEVEL"); err != nil {
			return err
		}
		level := viper.GetString("log-level")
		if level == "" {
			level = "info"
		}
		return logging.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error), also via ABSHARE_LOG_LEVEL")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(recoverCmd)
}
