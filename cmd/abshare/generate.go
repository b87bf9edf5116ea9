// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/asmuth-bloom/abshare"
	"github.com/asmuth-bloom/abshare/codec"
	"github.com/asmuth-bloom/abshare/logging"
)

const maxBitsCap = 8000

var generateCmd = &cobra.Command{
	Use:   "generate [secret]",
	Short: "Split a secret into Asmuth-Bloom shares",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntP("threshold", "t", 0, "number of shares required to recover the secret (required)")
	generateCmd.Flags().IntP("number", "n", 0, "total number of shares to generate (default: threshold)")
	generateCmd.Flags().IntP("bits", "b", 0, "maximum secret size in bits (default: 8*len(secret), capped at 8000)")
	_ = generateCmd.MarkFlagRequired("threshold")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	threshold, err := cmd.Flags().GetInt("threshold")
	if err != nil {
		return err
	}
	if threshold < 2 {
		return ErrThresholdTooSmall
	}

	number, err := cmd.Flags().GetInt("number")
	if err != nil {
		return err
	}
	if number == 0 {
		number = threshold
	}

	secret, err := readSecret(cmd, args)
	if err != nil {
		return err
	}

	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return err
	}
	if bits == 0 {
		bits = 8 * len(secret)
	}
	if bits > maxBitsCap {
		bits = maxBitsCap
	}

	gen, err := abshare.NewShareGenerator(bits, number, threshold, defaultErrorLevel)
	if err != nil {
		logging.Logger.Errorf("generate: parameter search failed: %s", err)
		return err
	}

	shared, err := gen.CreateShare(secret)
	if err != nil {
		logging.Logger.Errorf("generate: share creation failed: %s", err)
		return err
	}

	logging.Logger.Infof("generate: created %d shares, threshold %d", number, threshold)
	_, err = io.WriteString(cmd.OutOrStdout(), codec.Serialise(shared))
	return err
}

func readSecret(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrSecretRequired
	}
	return data, nil
}
