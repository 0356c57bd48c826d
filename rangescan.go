// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

// ValueTransform maps a raw stored value to the value a caller of
// GetRange actually wants to compare runs by. A nil ValueTransform
// behaves as identity, except that raw values equal to the trie's
// internal null value are always normalized to a single "null value"
// first -- see GetRange's doc comment.
type ValueTransform func(rawValue uint32) uint32

// sentinelNoRange is returned as end by GetRange when start is outside
// [0, 0x10FFFF].
const sentinelNoRange = -1

// GetRange returns the largest code point end in [start, 0x10FFFF] such
// that every code point c in [start, end] maps, after normalization,
// to the same value. It returns that value alongside end.
//
// If start is outside [0, 0x10FFFF], GetRange returns
// (sentinelNoRange, 0).
//
// transform, if non-nil, is applied to every raw stored value before
// comparison; this lets a caller collapse the trie's raw values into a
// coarser value space (e.g. a boolean "is this code point assigned")
// while still getting maximal runs in the coarser space. Regardless of
// transform, any raw value equal to the trie's internal null value
// (the value that fills the compressed null block) is first replaced
// by a single nullValue = transform(initialValue) (or initialValue
// itself if transform is nil); this lets GetRange treat the whole
// compressed null block as one semantic run even though transform
// never explicitly sees the raw null value.
//
// Grounded on original_source/icu4c/utrie3.cpp's utrie3_getRange,
// preserving its block-skipping shortcuts (shared index-2 blocks,
// shared data blocks, and the null block).
func (t *Trie) GetRange(start rune, transform ValueTransform) (end rune, value uint32) {
	if start < 0 || start > maxUnicodeCodePoint {
		return sentinelNoRange, 0
	}

	normalize := func(raw uint32) uint32 {
		if raw == t.initialValue {
			if transform != nil {
				return transform(t.initialValue)
			}
			return t.initialValue
		}
		if transform != nil {
			return transform(raw)
		}
		return raw
	}
	nullValue := normalize(t.initialValue)

	if start >= t.highStart {
		return maxUnicodeCodePoint, normalize(t.highValue)
	}

	var (
		prevI2Block int32 = -1
		prevBlock   int32 = -1
		c           int32 = int32(start)
		haveValue   bool
	)

scan:
	for c < int32(t.highStart) {
		var i2Block int32
		if c <= 0xffff {
			i2Block = (c >> shift2) &^ index2Mask
		} else {
			i2Block = int32(t.index.get(uint32((index1Offset - omittedBMPIndex1Length) + (c >> shift1))))
			if i2Block == prevI2Block && (c-int32(start)) >= cpPerIndex1Entry {
				// Only possible for supplementary code points, since
				// the linear-BMP i2Block computation above always
				// produces a value unique to its 2048-code-point
				// chunk.
				c += cpPerIndex1Entry
				continue scan
			}
		}
		prevI2Block = i2Block

		if i2Block == int32(t.index2NullOffset) {
			if haveValue {
				if nullValue != value {
					return rune(c - 1), value
				}
			} else {
				value = nullValue
				haveValue = true
			}
			prevBlock = int32(t.dataNullOffset)
			c = (c + cpPerIndex1Entry) &^ (cpPerIndex1Entry - 1)
			continue scan
		}

		for i2 := (c >> shift2) & index2Mask; i2 < index2BlockLength; i2++ {
			block := int32(t.index.get(uint32(i2Block + i2)))
			if i2Block >= index2BMPLength {
				block <<= indexShift
			}
			if block == prevBlock && (c-int32(start)) >= dataBlockLength {
				c += dataBlockLength
				continue
			}
			prevBlock = block

			if block == int32(t.dataNullOffset) {
				if haveValue {
					if nullValue != value {
						return rune(c - 1), value
					}
				} else {
					value = nullValue
					haveValue = true
				}
				c = (c + dataBlockLength) &^ dataMask
			} else {
				di := uint32(block) + uint32(c&dataMask)
				v := normalize(t.rawData(di))
				if haveValue {
					if v != value {
						return rune(c - 1), value
					}
				} else {
					value = v
					haveValue = true
				}
				for {
					c++
					di++
					if c&dataMask == 0 {
						break
					}
					if normalize(t.rawData(di)) != value {
						return rune(c - 1), value
					}
				}
			}
		}
	}

	if normalize(t.highValue) != value {
		return rune(c - 1), value
	}
	return maxUnicodeCodePoint, value
}
