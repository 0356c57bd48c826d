// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenFromFile(t *testing.T) {
	trie := NewBuilder(valueWidth16).Set(0x41, 7).MustBuild(t)
	n, err := Serialize(trie, nil)
	require.ErrorIs(t, err, ErrBufferOverflow)
	buf := make([]byte, n)
	_, err = Serialize(trie, buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "trie.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	opened, closer, err := OpenFromFile(valueWidth16, path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, closer())
	}()

	require.Equal(t, uint32(7), opened.Get(0x41))
	require.Equal(t, uint32(0), opened.Get(0x40))
}

func TestOpenFromFileMissing(t *testing.T) {
	_, _, err := OpenFromFile(valueWidth16, filepath.Join(t.TempDir(), "does-not-exist.bin"))
	require.Error(t, err)
}
