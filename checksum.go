// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import "github.com/dgryski/go-farm"

// Fingerprint returns a 64-bit hash of trie's serialized bytes,
// suitable for detecting whether a distributed or memory-mapped trie
// blob has been corrupted or silently swapped for a different one.
//
// Grounded on internal/dataio's per-record farm.Hash64 checksum
// pattern, generalized to the whole trie since spec.md's wire format
// has no per-record structure of its own to checksum individually.
func (t *Trie) Fingerprint() uint64 {
	n, _ := Serialize(t, nil)
	buf := make([]byte, n)
	if _, err := Serialize(t, buf); err != nil {
		// Serialize(t, nil) already told us the exact required size,
		// so a second call with a buffer of that size cannot fail.
		panic("utrie3: invariant broken: Serialize failed with a correctly sized buffer: " + err.Error())
	}
	return farm.Hash64(buf)
}
