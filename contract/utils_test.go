// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeductGas(t *testing.T) {
	remaining, err := DeductGas(100, 40)
	require.NoError(t, err)
	require.Equal(t, uint64(60), remaining)

	_, err = DeductGas(39, 40)
	require.ErrorIs(t, err, ErrOutOfGas)
}

func TestCalculateFunctionSelector(t *testing.T) {
	// transfer(address,uint256) is the canonical ERC-20 selector.
	require.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, CalculateFunctionSelector("transfer(address,uint256)"))
	require.Len(t, CalculateFunctionSelector("encryptSim(uint64[2],uint64[2],uint64[2])"), SelectorLength)
	require.Panics(t, func() { CalculateFunctionSelector("not a signature") })
}

func TestSplitSelector(t *testing.T) {
	_, _, ok := SplitSelector([]byte{1, 2, 3})
	require.False(t, ok)

	selector, args, ok := SplitSelector([]byte{1, 2, 3, 4, 5})
	require.True(t, ok)
	require.Equal(t, [SelectorLength]byte{1, 2, 3, 4}, selector)
	require.Equal(t, []byte{5}, args)
}

func TestWordCount(t *testing.T) {
	require.Equal(t, uint64(0), WordCount(0))
	require.Equal(t, uint64(1), WordCount(1))
	require.Equal(t, uint64(1), WordCount(32))
	require.Equal(t, uint64(2), WordCount(33))
}
