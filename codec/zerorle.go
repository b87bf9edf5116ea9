// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package codec serialises and parses ABSharedSecret values to and from the
// single-line-per-share text format shares are exchanged in. Prime moduli
// frequently contain long runs of '0' in base-32, so n0 and each share
// modulus are run-length encoded before being written out.
package codec

import "strings"

const base32Digits = "0123456789abcdefghijklmnopqrstuv"

// maxRunLength is the largest run encodable in one escape: two base-32
// digits give 32*32 values, 0..1023.
const maxRunLength = 1023

// Encode run-length encodes every maximal run of '0' in s into the
// three-character escape '0' + 2 base-32 digits giving the run length. Runs
// longer than maxRunLength are split into multiple escapes.
func Encode(s string) string {
	var b strings.Builder
	run := 0

	flush := func() {
		if run == 0 {
			return
		}
		b.WriteByte('0')
		b.WriteByte(base32Digits[run/32])
		b.WriteByte(base32Digits[run%32])
		run = 0
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '0' {
			run++
			if run == maxRunLength {
				flush()
			}
			continue
		}
		flush()
		b.WriteByte(s[i])
	}
	flush()
	return b.String()
}

// Decode reverses Encode. It fails with ErrZeroRLEMalformed if the string
// ends while a run-length escape is only partially read, if either count
// digit is outside the base-32 alphabet, or if a decoded count exceeds
// maxRunLength.
func Decode(s string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '0' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) {
			return "", ErrZeroRLEMalformed
		}
		hi, ok := digitValue(s[i+1])
		if !ok {
			return "", ErrZeroRLEMalformed
		}
		lo, ok := digitValue(s[i+2])
		if !ok {
			return "", ErrZeroRLEMalformed
		}
		count := hi*32 + lo
		if count > maxRunLength {
			return "", ErrZeroRLEMalformed
		}
		for j := 0; j < count; j++ {
			b.WriteByte('0')
		}
		i += 3
	}
	return b.String(), nil
}

func digitValue(c byte) (int, bool) {
	idx := strings.IndexByte(base32Digits, c)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
