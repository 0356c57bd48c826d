// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The scenarios below are the literal end-to-end fixtures every
// conforming implementation is expected to reproduce exactly.

func TestScenarioAllZeroTrie(t *testing.T) {
	trie := NewBuilder(valueWidth16).SetErrorValue(0xFFFF).MustBuild(t)

	require.Equal(t, uint32(0), trie.Get(0))
	require.Equal(t, uint32(0), trie.Get(0x4E2D))
	require.Equal(t, uint32(0), trie.Get(0x1F600))
	require.Equal(t, uint32(0xFFFF), trie.Get(0x110000))

	end, value := trie.GetRange(0, nil)
	require.Equal(t, rune(maxUnicodeCodePoint), end)
	require.Equal(t, uint32(0), value)
}

func TestScenarioASCIISpecialTrie(t *testing.T) {
	trie := NewBuilder(valueWidth16).Set(0x41, 7).MustBuild(t)

	require.Equal(t, uint32(7), trie.Get('A'))

	end, value := trie.GetRange(0, nil)
	require.Equal(t, rune(0x40), end)
	require.Equal(t, uint32(0), value)

	end, value = trie.GetRange(0x41, nil)
	require.Equal(t, rune(0x41), end)
	require.Equal(t, uint32(7), value)

	end, value = trie.GetRange(0x42, nil)
	require.Equal(t, rune(maxUnicodeCodePoint), end)
	require.Equal(t, uint32(0), value)
}

func TestScenarioHighTailTrie(t *testing.T) {
	trie := NewBuilder(valueWidth16).
		SetHighStart(0x20000).
		SetHighValue(99).
		MustBuild(t)

	require.Equal(t, uint32(0), trie.Get(0x1FFFF))
	require.Equal(t, uint32(99), trie.Get(0x20000))
	require.Equal(t, uint32(99), trie.Get(0x10FFFF))

	end, value := trie.GetRange(0x20000, nil)
	require.Equal(t, rune(maxUnicodeCodePoint), end)
	require.Equal(t, uint32(99), value)
}

func TestScenarioTransformCollapse(t *testing.T) {
	trie := NewBuilder(valueWidth16).SetRange(0x30, 0x39, 1).MustBuild(t)
	nonZero := func(raw uint32) uint32 {
		if raw != 0 {
			return 1
		}
		return 0
	}

	end, value := trie.GetRange(0, nonZero)
	require.Equal(t, rune(0x2F), end)
	require.Equal(t, uint32(0), value)

	end, value = trie.GetRange(end+1, nonZero)
	require.Equal(t, rune(0x39), end)
	require.Equal(t, uint32(1), value)

	end, value = trie.GetRange(end+1, nonZero)
	require.Equal(t, rune(maxUnicodeCodePoint), end)
	require.Equal(t, uint32(0), value)
}

func TestScenarioSerializeDeserialize(t *testing.T) {
	trie := NewBuilder(valueWidth16).Set(0x41, 7).MustBuild(t)

	n, err := Serialize(trie, nil)
	require.ErrorIs(t, err, ErrBufferOverflow)

	indexLength := trie.indexLen()
	dataLength := trie.dataLen()
	require.Equal(t, headerSize+indexLength*2+dataLength*2, n)

	buf := make([]byte, n)
	_, err = Serialize(trie, buf)
	require.NoError(t, err)

	reopened, _, err := OpenFromSerialized(valueWidth16, buf)
	require.NoError(t, err)
	require.Equal(t, uint32(7), reopened.Get('A'))
	require.Equal(t, uint32(0), reopened.Get(0x40))
}

func TestScenarioEndianSwapRoundTrip(t *testing.T) {
	trie := NewBuilder(valueWidth16).Set(0x41, 7).MustBuild(t)
	n, _ := Serialize(trie, nil)
	buf := make([]byte, n)
	_, err := Serialize(trie, buf)
	require.NoError(t, err)

	swapped := make([]byte, n)
	_, err = Swap(buf, swapped)
	require.NoError(t, err)

	roundTripped := make([]byte, n)
	_, err = Swap(swapped, roundTripped)
	require.NoError(t, err)
	require.Equal(t, buf, roundTripped)
}
