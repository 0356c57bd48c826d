// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import "encoding/binary"

// noIndex2NullOffset is the sentinel value of index2NullOffset meaning
// "this trie has no shared index-2 null block".
const noIndex2NullOffset = 0xFFFF

// uint16View and uint32View are read-only views into a byte slice as
// if it were []uint16/[]uint32, decoding little-endian entries on
// demand rather than up front. Grounded on indexfile/reader.go's
// uint32Slice/uint64Slice: the teacher keeps an mmap'd region as raw
// bytes and decodes lazily at lookup time instead of copying it into a
// typed slice first. A Trie built this way can alias a caller's buffer
// (OpenFromSerialized) with no allocation at all.
type uint16View []byte
type uint32View []byte

func (v uint16View) get(i uint32) uint16 {
	off := i * 2
	return binary.LittleEndian.Uint16(v[off : off+2])
}

func (v uint32View) get(i uint32) uint32 {
	off := i * 4
	return binary.LittleEndian.Uint32(v[off : off+4])
}

// Trie is an immutable, two-stage lookup table from a Unicode code
// point to a fixed-width unsigned value. It is safe for concurrent use
// by any number of goroutines: there are no mutating methods.
//
// A Trie either borrows its index/data arrays from a caller-owned byte
// slice (produced by OpenFromSerialized, which aliases the buffer
// instead of copying it) or owns a private copy (produced by Clone or
// Builder.Build). Borrowed tries must not outlive the buffer they were
// opened from.
type Trie struct {
	index uint16View
	data  []byte // width-appropriate little-endian entries; see rawData
	width valueWidth

	index2NullOffset uint16
	dataNullOffset   uint16

	highStart        rune
	shiftedHighStart uint16
	highValue        uint32
	errorValue       uint32

	// initialValue is derived at construction time: the value stored
	// at dataNullOffset if that offset is in range, otherwise
	// highValue. See spec.md section 3.
	initialValue uint32

	// owned is true when index/data point into a private allocation
	// (Clone, Builder.Build) rather than aliasing a borrowed buffer
	// (OpenFromSerialized).
	owned bool
}

// Width16 reports whether the trie stores 16-bit values. Width32
// reports the opposite. Exactly one is true for any valid Trie.
func (t *Trie) Width16() bool { return t.width == valueWidth16 }
func (t *Trie) Width32() bool { return t.width == valueWidth32 }

// HighStart returns the smallest code point for which the trie stores
// no per-point value; every code point in [HighStart, 0x10FFFF] maps
// to HighValue.
func (t *Trie) HighStart() rune { return t.highStart }

// HighValue returns the value shared by every code point in
// [HighStart, 0x10FFFF].
func (t *Trie) HighValue() uint32 { return t.highValue }

// ErrorValue returns the value Get returns for code points outside
// [0, 0x10FFFF] and the value UTF iterators return for malformed input.
func (t *Trie) ErrorValue() uint32 { return t.errorValue }

// indexLen reports the number of uint16 entries backing the index array.
func (t *Trie) indexLen() int { return len(t.index) / 2 }

// dataLen reports the number of width-appropriate entries backing the
// data array.
func (t *Trie) dataLen() int {
	if t.width == valueWidth32 {
		return len(t.data) / 4
	}
	return len(t.data) / 2
}

// deriveInitialValue computes the initialValue field per spec.md
// section 3: the value at dataNullOffset in the data array if that
// offset is in range, otherwise highValue. Grounded on
// original_source/icu4c/utrie3.cpp's utrie3_openFromSerialized
// (lines 102-116); dataNullOffset's exact bit width is an open
// question there (see DESIGN.md), so this treats it as a plain data
// array offset, bounds-checked before use, per spec.md's own
// invariant 5.
func deriveInitialValue(width valueWidth, data []byte, dataNullOffset uint16, highValue uint32) uint32 {
	switch width {
	case valueWidth16:
		if int(dataNullOffset) < len(data)/2 {
			return uint32(uint16View(data).get(uint32(dataNullOffset)))
		}
		return highValue
	case valueWidth32:
		if int(dataNullOffset) < len(data)/4 {
			return uint32View(data).get(uint32(dataNullOffset))
		}
		return highValue
	default:
		return highValue
	}
}

// Stats is a point-in-time snapshot of a Trie's shape, useful for
// logging or diagnostics. It replaces the original implementation's
// debug-only printf (compiled in behind a macro); callers that want to
// log it can pass it to their own logger.
type Stats struct {
	IndexLength      int
	DataLength       int
	NullValueCount   int64
	SerializedLength int
	Width            int
}

// Stats returns a snapshot of the trie's shape.
func (t *Trie) Stats() Stats {
	dataLength := t.dataLen()
	var nullCount int64
	for i := 0; i < dataLength; i++ {
		if t.rawData(uint32(i)) == t.initialValue {
			nullCount++
		}
	}
	n, _ := Serialize(t, nil)
	return Stats{
		IndexLength:      t.indexLen(),
		DataLength:       dataLength,
		NullValueCount:   nullCount,
		SerializedLength: n,
		Width:            int(t.width),
	}
}
