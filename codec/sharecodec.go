// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package codec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/asmuth-bloom/abshare"
)

// Serialise renders s as a newline-terminated blob, one line per share:
//
//	<rle(n0 in base32)> ":" <rle(p_i in base32)> ":" <y_i in base32> "\n"
//
// Share order is preserved from s.Shares.
func Serialise(s *abshare.ABSharedSecret) string {
	n0RLE := Encode(s.N0.Text(32))

	var b strings.Builder
	for _, sh := range s.Shares {
		pRLE := Encode(sh.P.Text(32))
		fmt.Fprintf(&b, "%s:%s:%s\n", n0RLE, pRLE, sh.Y.Text(32))
	}
	return b.String()
}

// Parse is the inverse of Serialise. Every malformed line is collected into
// a single aggregated error rather than stopping at the first one, so a
// caller debugging a corrupted share file sees every bad line in one pass.
func Parse(text string) (*abshare.ABSharedSecret, error) {
	var n0 *big.Int
	var shares []*abshare.Share
	var errs *multierror.Error

	for lineNo, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sh, lineN0, err := parseLine(line)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "line %d", lineNo+1))
			continue
		}
		if n0 == nil {
			n0 = lineN0
		} else if n0.Cmp(lineN0) != 0 {
			errs = multierror.Append(errs, errors.Wrapf(ErrN0Mismatch, "line %d", lineNo+1))
			continue
		}
		shares = append(shares, sh)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	return &abshare.ABSharedSecret{N0: n0, Shares: shares}, nil
}

func parseLine(line string) (*abshare.Share, *big.Int, error) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) != 3 {
		return nil, nil, ErrStringFormat
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	n0Digits, err := Decode(parts[0])
	if err != nil {
		return nil, nil, err
	}
	pDigits, err := Decode(parts[1])
	if err != nil {
		return nil, nil, err
	}

	n0, ok := parseLowerBase32(n0Digits)
	if !ok {
		return nil, nil, ErrNumberFormat
	}
	p, ok := parseLowerBase32(pDigits)
	if !ok {
		return nil, nil, ErrNumberFormat
	}
	y, ok := parseLowerBase32(parts[2])
	if !ok {
		return nil, nil, ErrNumberFormat
	}

	return &abshare.Share{Y: y, P: p}, n0, nil
}

// parseLowerBase32 accepts only the lowercase base-32 alphabet (0-9a-v);
// unlike big.Int.SetString, which is case-insensitive for base 32,
// it rejects uppercase input rather than folding it.
func parseLowerBase32(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(base32Digits, s[i]) < 0 {
			return nil, false
		}
	}
	return new(big.Int).SetString(s, 32)
}
