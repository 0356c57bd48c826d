// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"encoding/binary"
	"fmt"
)

// OpenFromSerialized validates bytes and returns an immutable Trie
// that borrows it: the returned Trie's index and data arrays alias buf
// directly (via uint16View/uint32View, see trie.go) instead of being
// copied into fresh slices. The caller declares the value width it
// expects; a mismatch with the width encoded in the buffer is
// ErrInvalidFormat.
//
// bytes must be at least 4-byte aligned in the sense that its layout
// assumes no further padding is required, and must be at least
// headerSize bytes long. Because OpenFromSerialized does not copy
// buf, the returned Trie is only valid while buf is not modified,
// moved, or collected; call Clone if the trie needs an independent
// lifetime.
//
// actualLength reports the number of bytes of buf consumed by the
// trie, so a caller that has more data following it in the same
// buffer can skip ahead.
func OpenFromSerialized(width valueWidth, buf []byte) (trie *Trie, actualLength int, err error) {
	if width != valueWidth16 && width != valueWidth32 {
		return nil, 0, fmt.Errorf("utrie3: unsupported value width %d: %w", width, ErrIllegalArgument)
	}
	if len(buf) < headerSize {
		return nil, 0, fmt.Errorf("utrie3: buffer too short for header: %d < %d: %w", len(buf), headerSize, ErrInvalidFormat)
	}

	h, err := unmarshalHeader(buf, binary.LittleEndian)
	if err != nil {
		return nil, 0, err
	}
	if h.signature != signature {
		return nil, 0, fmt.Errorf("utrie3: bad signature %#x: %w", h.signature, ErrInvalidFormat)
	}

	wantWidthCode := optionsValueBits16
	if width == valueWidth32 {
		wantWidthCode = optionsValueBits32
	}
	widthCode := int(h.options & optionsValueBitsMask)
	if widthCode != optionsValueBits16 && widthCode != optionsValueBits32 {
		return nil, 0, fmt.Errorf("utrie3: unrecognized value-width code %d: %w", widthCode, ErrInvalidFormat)
	}
	if widthCode != wantWidthCode {
		return nil, 0, fmt.Errorf("utrie3: trie has value width %d, caller expected %d: %w", widthCodeBits(widthCode), width, ErrInvalidFormat)
	}
	if h.options&optionsReservedMask != 0 {
		return nil, 0, fmt.Errorf("utrie3: reserved option bits set (%#x): %w", h.options, ErrInvalidFormat)
	}

	indexLength := int(h.indexLength)
	dataLength := int(h.shiftedDataLength) << indexShift
	dataNullOffsetVal := uint16(h.options >> optionsDataNullOffsetShift)
	highStart := rune(int(h.shiftedHighStart) << shift1)

	if indexLength < index1Offset {
		return nil, 0, fmt.Errorf("utrie3: indexLength %d < minimum %d: %w", indexLength, index1Offset, ErrInvalidFormat)
	}
	if dataLength < dataStartOffset {
		return nil, 0, fmt.Errorf("utrie3: dataLength %d < minimum %d: %w", dataLength, dataStartOffset, ErrInvalidFormat)
	}
	if highStart > maxUnicodeCodePoint+1 || highStart%cpPerIndex1Entry != 0 {
		return nil, 0, fmt.Errorf("utrie3: highStart %#x violates invariants: %w", highStart, ErrInvalidFormat)
	}

	total := headerSize + indexLength*2
	switch width {
	case valueWidth16:
		total += dataLength * 2
	case valueWidth32:
		total += dataLength * 4
	}
	if len(buf) < total {
		return nil, 0, fmt.Errorf("utrie3: buffer too short: %d < %d: %w", len(buf), total, ErrInvalidFormat)
	}

	// Alias buf directly: no copy. These sub-slices share buf's
	// backing array, which is what lets OpenFromFile hand an mmap'd
	// region straight through without ever touching the Go heap for
	// the index/data arrays.
	index := uint16View(buf[headerSize : headerSize+indexLength*2])
	data := buf[headerSize+indexLength*2 : total]

	t := &Trie{
		index:            index,
		data:             data,
		width:            width,
		index2NullOffset: h.index2NullOffset,
		dataNullOffset:   dataNullOffsetVal,
		highStart:        highStart,
		shiftedHighStart: h.shiftedHighStart,
		highValue:        h.highValue,
		errorValue:       h.errorValue,
		owned:            false,
	}
	t.initialValue = deriveInitialValue(width, data, t.dataNullOffset, t.highValue)

	return t, total, nil
}

// widthCodeBits converts a 1-bit options value-width code back to its
// bit width, for error messages.
func widthCodeBits(code int) int {
	if code == optionsValueBits32 {
		return 32
	}
	return 16
}

// Clone returns a Trie holding a verbatim copy of t's index and data
// arrays, useful when the source buffer t borrows (if any) has a
// shorter lifetime than the caller needs. The clone's arrays are a
// private allocation independent of t's, per spec.md section 6.
//
// Clone returns ErrOutOfMemory, rather than letting an allocation
// failure take down the process, if copying t's arrays fails.
func Clone(t *Trie) (clone *Trie, err error) {
	defer func() {
		if r := recover(); r != nil {
			clone = nil
			err = fmt.Errorf("utrie3: Clone: %v: %w", r, ErrOutOfMemory)
		}
	}()

	index := make(uint16View, len(t.index))
	copy(index, t.index)
	data := make([]byte, len(t.data))
	copy(data, t.data)

	return &Trie{
		index:            index,
		data:             data,
		width:            t.width,
		index2NullOffset: t.index2NullOffset,
		dataNullOffset:   t.dataNullOffset,
		highStart:        t.highStart,
		shiftedHighStart: t.shiftedHighStart,
		highValue:        t.highValue,
		errorValue:       t.errorValue,
		initialValue:     t.initialValue,
		owned:            true,
	}, nil
}
