// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllZero(t *testing.T) {
	trie, err := NewBuilder(valueWidth16).Build()
	require.NoError(t, err)

	for _, cp := range []rune{0, 1, 0x7f, 0x80, 0xffff, 0x10000, 0x10ffff} {
		require.Equal(t, uint32(0), trie.Get(cp), "cp %#x", cp)
	}
}

func TestGetOutOfRange(t *testing.T) {
	trie := NewBuilder(valueWidth16).SetErrorValue(0xdead).MustBuild(t)

	require.Equal(t, uint32(0xdead), trie.Get(-1))
	require.Equal(t, uint32(0xdead), trie.Get(0x110000))
	require.Equal(t, uint32(0xdead), trie.Get(maxUnicodeCodePoint+1))
}

func TestGetASCIISpecial(t *testing.T) {
	trie := NewBuilder(valueWidth16).Set(0x41, 7).MustBuild(t)

	require.Equal(t, uint32(7), trie.Get(0x41))
	require.Equal(t, uint32(0), trie.Get(0x40))
	require.Equal(t, uint32(0), trie.Get(0x42))
}

func TestGetHighTail(t *testing.T) {
	b := NewBuilder(valueWidth32).
		SetHighStart(0x20000).
		SetHighValue(99).
		Set(0x1ffff, 5)
	trie := b.MustBuild(t)

	require.Equal(t, uint32(5), trie.Get(0x1ffff))
	require.Equal(t, uint32(99), trie.Get(0x20000))
	require.Equal(t, uint32(99), trie.Get(0x30000))
	require.Equal(t, uint32(99), trie.Get(maxUnicodeCodePoint))
}

func TestGetSupplementaryExplicitValue(t *testing.T) {
	trie := NewBuilder(valueWidth32).Set(0x1f600, 42).MustBuild(t)

	require.Equal(t, uint32(42), trie.Get(0x1f600))
	require.Equal(t, uint32(0), trie.Get(0x1f601))
	require.Equal(t, uint32(0), trie.Get(0x1f5ff))
}

func TestWidthAccessors(t *testing.T) {
	t16 := NewBuilder(valueWidth16).MustBuild(t)
	require.True(t, t16.Width16())
	require.False(t, t16.Width32())

	t32 := NewBuilder(valueWidth32).MustBuild(t)
	require.True(t, t32.Width32())
	require.False(t, t32.Width16())
}

// MustBuild is a small test helper: Build any valid literal scenario
// and fail the test immediately on error, instead of threading err
// through every test function.
func (b *Builder) MustBuild(t testing.TB) *Trie {
	t.Helper()
	trie, err := b.Build()
	require.NoError(t, err)
	return trie
}
