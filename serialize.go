// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"encoding/binary"
	"fmt"
)

// Serialize writes trie's on-disk representation (see spec.md section
// 4.1) into out and returns the number of bytes written. The output is
// always little-endian, whatever the host's byte order; Swap converts
// it to big-endian.
//
// If out is nil or too short to hold the serialized trie, Serialize
// writes nothing and returns (requiredLength, ErrBufferOverflow) so
// the caller can allocate a buffer of the right size and retry; this
// also makes Serialize(trie, nil) a pure size query.
func Serialize(trie *Trie, out []byte) (int, error) {
	if trie == nil {
		return 0, fmt.Errorf("utrie3: nil trie: %w", ErrIllegalArgument)
	}

	widthCode := optionsValueBits16
	if trie.width == valueWidth32 {
		widthCode = optionsValueBits32
	}

	required := headerSize + len(trie.index) + len(trie.data)
	if len(out) < required {
		return required, fmt.Errorf("utrie3: out buffer too small (%d < %d): %w", len(out), required, ErrBufferOverflow)
	}

	h := header{
		signature:         signature,
		options:           uint32(trie.dataNullOffset)<<optionsDataNullOffsetShift | uint32(widthCode),
		indexLength:       uint16(trie.indexLen()),
		shiftedDataLength: uint16(trie.dataLen() >> indexShift),
		index2NullOffset:  trie.index2NullOffset,
		shiftedHighStart:  trie.shiftedHighStart,
		highValue:         trie.highValue,
		errorValue:        trie.errorValue,
	}
	copy(out, h.marshal(binary.LittleEndian))

	// trie.index/trie.data are already little-endian-encoded bytes
	// (either aliased straight from a serialized buffer, or produced
	// that way by Builder/Clone), so writing the wire format is a
	// plain copy -- no per-element re-encoding needed.
	off := headerSize
	off += copy(out[off:], trie.index)
	copy(out[off:], trie.data)

	return required, nil
}
