// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"fmt"

	"github.com/bpowers/utrie3/internal/mmap"
)

// OpenFromFile memory-maps the serialized trie at path and returns an
// immutable Trie over it, without copying the file into the Go heap:
// OpenFromSerialized aliases the mapped bytes directly (see its doc
// comment), so the Trie's index and data arrays are views over the
// mapping itself. This is the memory-mapping path spec.md section 1
// alludes to ("prebuilt tables can be memory-mapped ... as read-only
// data").
//
// The returned closer must be closed once the trie is no longer
// needed; the Trie itself must not be used after that point, since its
// index and data arrays alias the mapping and become invalid once it
// is unmapped. Call Clone first if the trie needs to outlive the file.
func OpenFromFile(width valueWidth, path string) (trie *Trie, closer func() error, err error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("utrie3: OpenFromFile(%s): %w", path, err)
	}

	t, _, err := OpenFromSerialized(width, m.Data())
	if err != nil {
		_ = m.Close()
		return nil, nil, err
	}
	return t, m.Close, nil
}
