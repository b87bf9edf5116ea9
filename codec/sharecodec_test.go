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

	"github.com/asmuth-bloom/abshare"
	"github.com/asmuth-bloom/abshare/codec"
)

func TestSerialiseParseRoundTrip(t *testing.T) {
	gen, err := abshare.NewShareGenerator(64, 5, 3, 1e-9)
	require.NoError(t, err)

	shared, err := gen.CreateShare([]byte("password"))
	require.NoError(t, err)

	text := codec.Serialise(shared)
	assert.Equal(t, 5, strings.Count(text, "\n"))
	assert.True(t, len(text) > 100)

	parsed, err := codec.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 0, shared.N0.Cmp(parsed.N0))
	require.Equal(t, len(shared.Shares), len(parsed.Shares))
	for i, sh := range shared.Shares {
		assert.Equal(t, 0, sh.Y.Cmp(parsed.Shares[i].Y))
		assert.Equal(t, 0, sh.P.Cmp(parsed.Shares[i].P))
	}
}

func TestParseDropTwoSharesThenRecover(t *testing.T) {
	gen, err := abshare.NewShareGenerator(64, 5, 3, 1e-9)
	require.NoError(t, err)

	shared, err := gen.CreateShare([]byte("password"))
	require.NoError(t, err)

	text := codec.Serialise(shared)
	parsed, err := codec.Parse(text)
	require.NoError(t, err)

	subset := &abshare.ABSharedSecret{N0: parsed.N0, Shares: parsed.Shares[:3]}
	recovered, err := abshare.Recover(subset, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("password"), recovered)
}

func TestParseRejectsTwoPartLine(t *testing.T) {
	_, err := codec.Parse("abc:def\n")
	assert.ErrorIs(t, err, codec.ErrStringFormat)
}

func TestParseRejectsMismatchedN0(t *testing.T) {
	gen, err := abshare.NewShareGenerator(32, 4, 2, 1e-9)
	require.NoError(t, err)
	shared, err := gen.CreateShare([]byte("hi"))
	require.NoError(t, err)

	text := codec.Serialise(shared)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.True(t, len(lines) >= 2)

	// Corrupt the second line's n0 field so it decodes to a different value.
	parts := strings.SplitN(lines[1], ":", 3)
	parts[0] = codec.Encode("1" + strings.TrimLeft(mustDecode(t, parts[0]), "0"))
	lines[1] = strings.Join(parts, ":")

	_, err = codec.Parse(strings.Join(lines, "\n") + "\n")
	assert.Error(t, err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := codec.Parse("\n\n")
	assert.ErrorIs(t, err, codec.ErrNoShares)
}

func mustDecode(t *testing.T, rle string) string {
	t.Helper()
	s, err := codec.Decode(rle)
	require.NoError(t, err)
	return s
}
