// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"encoding/binary"
	"fmt"
)

// Builder accumulates a sparse code-point-to-value mapping and builds
// an immutable Trie from it.
//
// Builder is deliberately naive: besides the single mandatory null
// data block and null index-2 block (without which GetRange's
// null-block shortcuts and deriveInitialValue would have nothing to
// point at), it performs no block deduplication. Producing a maximally
// compact trie, the way a real offline compressing builder would, is
// out of scope (spec.md section 1's "Out of scope" list names the
// compressing builder explicitly); this builder exists only so tests
// can construct small, correct tries directly.
//
// Grounded on table.go's Builder/Finalize shape: accumulate into a
// builder value, then a terminal call produces the immutable read
// type. The accumulation and compression algorithm itself (minimal
// perfect hashing of string keys) does not apply to a dense,
// integer-keyed trie and is not reused.
type Builder struct {
	width        valueWidth
	initialValue uint32
	highValue    uint32
	errorValue   uint32
	highStart    rune
	values       map[rune]uint32
}

// NewBuilder returns a Builder for a trie of the given value width.
// Defaults: InitialValue and HighValue are 0, ErrorValue is 0xFFFF,
// and HighStart is 0x110000 (i.e. no high tail -- every code point up
// to 0x10FFFF may carry an explicit value).
func NewBuilder(width valueWidth) *Builder {
	return &Builder{
		width:      width,
		errorValue: 0xFFFF,
		highStart:  maxUnicodeCodePoint + 1,
		values:     make(map[rune]uint32),
	}
}

// SetInitialValue sets the value every code point has unless
// overridden by Set/SetRange, and the value a range-scan normalization
// function typically collapses matching raw values to.
func (b *Builder) SetInitialValue(v uint32) *Builder {
	b.initialValue = v
	return b
}

// SetErrorValue sets the value Get returns for out-of-range code
// points.
func (b *Builder) SetErrorValue(v uint32) *Builder {
	b.errorValue = v
	return b
}

// SetHighValue sets the value shared by every code point in
// [HighStart, 0x10FFFF].
func (b *Builder) SetHighValue(v uint32) *Builder {
	b.highValue = v
	return b
}

// SetHighStart sets the smallest code point for which the trie stores
// no per-point value. cp must be a multiple of 2048 (the number of
// code points covered by one index-1 entry) and at most 0x110000;
// Build returns an error otherwise. Values set via Set/SetRange at or
// above HighStart are ignored in favor of HighValue.
func (b *Builder) SetHighStart(cp rune) *Builder {
	b.highStart = cp
	return b
}

// Set assigns value to a single code point.
func (b *Builder) Set(cp rune, value uint32) *Builder {
	b.values[cp] = value
	return b
}

// SetRange assigns value to every code point in [lo, hi].
func (b *Builder) SetRange(lo, hi rune, value uint32) *Builder {
	for c := lo; c <= hi; c++ {
		b.values[c] = value
	}
	return b
}

func (b *Builder) valueAt(cp rune) uint32 {
	if cp >= b.highStart {
		return b.highValue
	}
	if v, ok := b.values[cp]; ok {
		return v
	}
	return b.initialValue
}

func (b *Builder) blockAllInitial(lo rune, n int) bool {
	for i := 0; i < n; i++ {
		if b.valueAt(lo+rune(i)) != b.initialValue {
			return false
		}
	}
	return true
}

// Build constructs an immutable Trie from the accumulated mapping.
func (b *Builder) Build() (*Trie, error) {
	if b.highStart < 0 || b.highStart > maxUnicodeCodePoint+1 || b.highStart%cpPerIndex1Entry != 0 {
		return nil, fmt.Errorf("utrie3: highStart %#x must be a multiple of %#x and at most %#x: %w", b.highStart, cpPerIndex1Entry, maxUnicodeCodePoint+1, ErrIllegalArgument)
	}

	data := make([]uint32, 0, dataStartOffset+dataBlockLength)

	// The ASCII block is always unshared and always at the head of
	// the data array (spec.md invariant 4).
	for c := rune(0); c < dataStartOffset; c++ {
		data = append(data, b.valueAt(c))
	}

	// The single mandatory null data block.
	nullBlockOffset := uint32(len(data))
	for i := 0; i < dataBlockLength; i++ {
		data = append(data, b.initialValue)
	}

	appendDataBlock := func(lo rune) uint32 {
		off := uint32(len(data))
		for i := 0; i < dataBlockLength; i++ {
			data = append(data, b.valueAt(lo+rune(i)))
		}
		return off
	}

	// BMP index-2 entries: index[0:index2BMPLength), one per
	// 32-code-point block, each a full (unshifted) data offset.
	index := make([]uint16, index2BMPLength)
	bmpBlocks := 0x10000 / dataBlockLength
	for blk := 0; blk < bmpBlocks; blk++ {
		lo := rune(blk * dataBlockLength)
		var off uint32
		switch {
		case lo < dataStartOffset:
			// Already laid down as part of the ASCII block above;
			// dataStartOffset is itself a multiple of dataBlockLength
			// (0x80 / 32 = 4), so block boundaries line up exactly.
			off = uint32(lo)
		case b.blockAllInitial(lo, dataBlockLength):
			off = nullBlockOffset
		default:
			off = appendDataBlock(lo)
		}
		index[blk] = uint16(off)
	}

	index2NullOffset := uint16(noIndex2NullOffset)
	if b.highStart > 0x10000 {
		numChunks := int(b.highStart-0x10000) / cpPerIndex1Entry

		// Supplementary index-1 entries live at
		// index1Offset - omittedBMPIndex1Length + (c >> shift1); since
		// index currently has exactly index1Offset entries (the BMP
		// region, by construction), the first supplementary chunk
		// (c == 0x10000, c>>shift1 == omittedBMPIndex1Length) lands
		// exactly at index1Offset. The index-1 entries are reserved
		// there first; all index-2 blocks follow them.
		if len(index) != index1Offset {
			return nil, fmt.Errorf("utrie3: internal error: index array is %d entries before appending index-1, want %d: %w", len(index), index1Offset, ErrIllegalArgument)
		}
		index = append(index, make([]uint16, numChunks)...)

		// Canonical null index-2 block: index2BlockLength entries,
		// each the right-shifted offset of the shared null data block.
		nullI2Block := uint16(len(index))
		for i := 0; i < index2BlockLength; i++ {
			index = append(index, uint16(nullBlockOffset>>indexShift))
		}
		index2NullOffset = nullI2Block

		for ci := 0; ci < numChunks; ci++ {
			chunkLo := rune(0x10000 + ci*cpPerIndex1Entry)
			if b.blockAllInitial(chunkLo, cpPerIndex1Entry) {
				index[index1Offset+ci] = nullI2Block
				continue
			}

			i2Block := len(index)
			for i := 0; i < index2BlockLength; i++ {
				index = append(index, 0) // filled in below
			}
			for sub := 0; sub < index2BlockLength; sub++ {
				lo := chunkLo + rune(sub*dataBlockLength)
				var off uint32
				if b.blockAllInitial(lo, dataBlockLength) {
					off = nullBlockOffset
				} else {
					off = appendDataBlock(lo)
				}
				if off%(1<<indexShift) != 0 {
					return nil, fmt.Errorf("utrie3: internal error: data block offset %d not aligned to %d: %w", off, 1<<indexShift, ErrIllegalArgument)
				}
				index[i2Block+sub] = uint16(off >> indexShift)
			}
			index[index1Offset+ci] = uint16(i2Block)
		}
	}

	indexBytes := make(uint16View, len(index)*2)
	for i, v := range index {
		binary.LittleEndian.PutUint16(indexBytes[i*2:i*2+2], v)
	}

	t := &Trie{
		index:            indexBytes,
		width:            b.width,
		index2NullOffset: index2NullOffset,
		dataNullOffset:   uint16(nullBlockOffset),
		highStart:        b.highStart,
		shiftedHighStart: uint16(b.highStart >> shift1),
		highValue:        b.highValue,
		errorValue:       b.errorValue,
		owned:            true,
	}

	if b.width == valueWidth16 {
		dataBytes := make([]byte, len(data)*2)
		for i, v := range data {
			if v > 0xFFFF {
				return nil, fmt.Errorf("utrie3: value %d at data offset %d does not fit in 16 bits: %w", v, i, ErrIllegalArgument)
			}
			binary.LittleEndian.PutUint16(dataBytes[i*2:i*2+2], uint16(v))
		}
		t.data = dataBytes
	} else {
		dataBytes := make([]byte, len(data)*4)
		for i, v := range data {
			binary.LittleEndian.PutUint32(dataBytes[i*4:i*4+4], v)
		}
		t.data = dataBytes
	}
	t.initialValue = deriveInitialValue(b.width, t.data, t.dataNullOffset, t.highValue)

	return t, nil
}
