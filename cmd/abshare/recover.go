// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/asmuth-bloom/abshare"
	"github.com/asmuth-bloom/abshare/codec"
	"github.com/asmuth-bloom/abshare/logging"
)

var recoverCmd = &cobra.Command{
	Use:   "recover [share...]",
	Short: "Recover a secret from Asmuth-Bloom shares",
	RunE:  runRecover,
}

func init() {
	recoverCmd.Flags().IntP("threshold", "t", 0, "number of shares required to recover the secret (required)")
	_ = recoverCmd.MarkFlagRequired("threshold")
}

func runRecover(cmd *cobra.Command, args []string) error {
	threshold, err := cmd.Flags().GetInt("threshold")
	if err != nil {
		return err
	}
	if threshold < 2 {
		return ErrThresholdTooSmall
	}

	text, err := readShares(cmd, args)
	if err != nil {
		return err
	}

	shared, err := codec.Parse(text)
	if err != nil {
		logging.Logger.Errorf("recover: parsing shares failed: %s", err)
		return err
	}

	secret, err := abshare.Recover(shared, threshold)
	if err != nil {
		logging.Logger.Errorf("recover: reconstruction failed: %s", err)
		return err
	}
	if !utf8.Valid(secret) {
		logging.Logger.Errorf("recover: recovered secret is not valid UTF-8")
		return ErrRecoveredSecretNotUTF8
	}

	logging.Logger.Infof("recover: recovered %d-byte secret from %d shares", len(secret), len(shared.Shares))
	_, err = cmd.OutOrStdout().Write(secret)
	return err
}

func readShares(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n") + "\n", nil
	}

	var b strings.Builder
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}
