// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsMisalignedHighStart(t *testing.T) {
	_, err := NewBuilder(valueWidth16).SetHighStart(0x20001).Build()
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestBuilderRejectsOutOfRangeHighStart(t *testing.T) {
	_, err := NewBuilder(valueWidth16).SetHighStart(0x120000).Build()
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestBuilderRejectsValueTooWideFor16Bits(t *testing.T) {
	_, err := NewBuilder(valueWidth16).Set(0x41, 0x10000).Build()
	require.ErrorIs(t, err, ErrIllegalArgument)
}

func TestBuilderSupplementaryNullChunkSharesNullIndexBlock(t *testing.T) {
	// A trie with a small highStart and no supplementary values at all
	// should still produce a structurally valid index-2 null block,
	// exercised entirely through the all-null supplementary chunk path.
	trie := NewBuilder(valueWidth32).SetHighStart(0x30000).MustBuild(t)

	require.NotEqual(t, uint16(noIndex2NullOffset), trie.index2NullOffset)
	for cp := rune(0x10000); cp < 0x30000; cp += 0x400 {
		require.Equal(t, uint32(0), trie.Get(cp))
	}
}
