// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaos

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

// seededReader returns a deterministic byte stream for reproducible tests.
func seededReader(seed string) io.Reader {
	h := blake3.New()
	h.Write([]byte(seed))
	return h.Digest()
}

func randomBlock(t *testing.T, r io.Reader) Block {
	t.Helper()
	var buf [16]byte
	_, err := io.ReadFull(r, buf[:])
	require.NoError(t, err)
	return Block{binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])}
}

func TestRoundTrip(t *testing.T) {
	r := seededReader("round-trip")
	for i := 0; i < 256; i++ {
		key, iv, p := randomBlock(t, r), randomBlock(t, r), randomBlock(t, r)
		c := New(key, iv)
		require.Equal(t, p, c.Decrypt(c.Encrypt(p)), "iteration %d", i)
		require.Equal(t, p, c.Encrypt(c.Decrypt(p)), "iteration %d", i)
	}
}

func TestRoundTripEdgeValues(t *testing.T) {
	edges := []Block{
		{0, 0},
		{math.MaxUint64, math.MaxUint64},
		{1, 0},
		{0, 1},
		{math.MaxUint64, 0},
	}
	for _, key := range edges {
		for _, iv := range edges {
			for _, p := range edges {
				c := New(key, iv)
				require.Equal(t, p, c.Decrypt(c.Encrypt(p)))
			}
		}
	}
}

func TestEncryptExample(t *testing.T) {
	key, iv, p := Block{1, 2}, Block{3, 4}, Block{5, 6}

	ct := New(key, iv).Encrypt(p)
	require.NotEqual(t, p, ct)
	require.Equal(t, p, New(key, iv).Decrypt(ct))
}

func TestDeterminism(t *testing.T) {
	key, iv, p := Block{0xdead, 0xbeef}, Block{7, 11}, Block{13, 17}

	first := New(key, iv).Encrypt(p)
	for i := 0; i < 8; i++ {
		require.Equal(t, first, New(key, iv).Encrypt(p))
	}
	require.Equal(t, *New(key, iv), *New(key, iv), "key schedule must be deterministic")
}

func TestKeyAndIVSensitivity(t *testing.T) {
	key, iv, p := Block{1, 2}, Block{3, 4}, Block{5, 6}
	base := New(key, iv).Encrypt(p)

	require.NotEqual(t, base, New(Block{1, 3}, iv).Encrypt(p))
	require.NotEqual(t, base, New(key, Block{3, 5}).Encrypt(p))
	require.NotEqual(t, base, New(key, iv).Encrypt(Block{5, 7}))
}

func TestTent(t *testing.T) {
	p := breakpointFloor + 12345

	require.Equal(t, uint64(0), tent(0, p))
	require.Equal(t, uint64(math.MaxUint64), tent(p, p))
	require.Equal(t, uint64(0), tent(math.MaxUint64, p))

	// Rising branch is monotone.
	require.Less(t, tent(p/4, p), tent(p/2, p))
	// Falling branch is monotone.
	require.Greater(t, tent(p+(math.MaxUint64-p)/4, p), tent(p+(math.MaxUint64-p)/2, p))
}

func TestBreakpointsInRange(t *testing.T) {
	r := seededReader("breakpoints")
	for i := 0; i < 64; i++ {
		c := New(randomBlock(t, r), randomBlock(t, r))
		for _, bp := range c.breakpoints {
			require.GreaterOrEqual(t, bp, breakpointFloor)
			require.Less(t, bp, 3*breakpointFloor)
		}
	}
}
