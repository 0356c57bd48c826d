// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func serializedFixture(t testing.TB) []byte {
	t.Helper()
	trie := NewBuilder(valueWidth16).
		Set(0x41, 7).
		SetRange(0x1f600, 0x1f64f, 9).
		MustBuild(t)
	n, err := Serialize(trie, nil)
	require.ErrorIs(t, err, ErrBufferOverflow)
	buf := make([]byte, n)
	_, err = Serialize(trie, buf)
	require.NoError(t, err)
	return buf
}

func TestSwapRoundTrip(t *testing.T) {
	original := serializedFixture(t)

	n, err := Swap(original, nil)
	require.NoError(t, err)
	require.Equal(t, len(original), n)

	swapped := make([]byte, n)
	_, err = Swap(original, swapped)
	require.NoError(t, err)
	require.NotEqual(t, original, swapped)

	roundTripped := make([]byte, n)
	_, err = Swap(swapped, roundTripped)
	require.NoError(t, err)
	require.Equal(t, original, roundTripped)
}

func TestSwapUnrecognizedSignature(t *testing.T) {
	buf := serializedFixture(t)
	buf[0] ^= 0xff
	buf[1] ^= 0xff

	_, err := Swap(buf, make([]byte, len(buf)))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestGetVersionCurrentFormat(t *testing.T) {
	buf := serializedFixture(t)
	require.Equal(t, 3, GetVersion(buf, false))
	require.Equal(t, 3, GetVersion(buf, true))
}

func TestGetVersionOppositeEndian(t *testing.T) {
	original := serializedFixture(t)
	n, _ := Swap(original, nil)
	swapped := make([]byte, n)
	_, err := Swap(original, swapped)
	require.NoError(t, err)

	require.Equal(t, 0, GetVersion(swapped, false))
	require.Equal(t, 3, GetVersion(swapped, true))
}

func TestGetVersionUnrecognized(t *testing.T) {
	require.Equal(t, 0, GetVersion([]byte("not a trie at all, too short"), true))
	require.Equal(t, 0, GetVersion(make([]byte, 16), true))
}
