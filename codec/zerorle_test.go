// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package codec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmuth-bloom/abshare/codec"
)

func TestZeroRLERoundTrip(t *testing.T) {
	cases := []string{
		"10000000000043",
		"g00000000000d",
		"1020030004000500006000000",
		"0",
		"00",
		"a",
		"",
	}
	for _, c := range cases {
		encoded := codec.Encode(c)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, c, decoded)
	}
}

func TestZeroRLESplitsLongRuns(t *testing.T) {
	run := strings.Repeat("0", 1025)
	encoded := codec.Encode(run)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, run, decoded)
}

func TestZeroRLEDecodeTruncated(t *testing.T) {
	_, err := codec.Decode("100")
	assert.ErrorIs(t, err, codec.ErrZeroRLEMalformed)
}

func TestZeroRLEDecodeMaxRunIsValid(t *testing.T) {
	// 'v' 'v' = 31*32+31 = 1023, the largest run length 2 base-32 digits can hold.
	decoded, err := codec.Decode("0vv")
	assert.NoError(t, err)
	assert.Equal(t, 1023, len(decoded))
}

func TestZeroRLEDecodeRejectsInvalidCountDigit(t *testing.T) {
	_, err := codec.Decode("0Av")
	assert.ErrorIs(t, err, codec.ErrZeroRLEMalformed)
}
