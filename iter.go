// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"unicode/utf16"
	"unicode/utf8"
)

// sentinelCodePoint mirrors ICU's U_SENTINEL: the code point reported
// by an iterator once it has run off the end (or start) of its text.
const sentinelCodePoint = -1

// ForwardUTF16Iterator decodes a UTF-16 sequence one code point at a
// time and looks each one up in an associated Trie. It is grounded on
// original_source/icu4c/utrie3.cpp's ForwardUTrie3StringIterator.
//
// A ForwardUTF16Iterator borrows both its Trie and its text; both must
// outlive the iterator. It is not safe for concurrent use by multiple
// goroutines (each goroutine should use its own iterator over the same
// Trie, which is itself safe to share).
type ForwardUTF16Iterator struct {
	trie  *Trie
	text  []uint16
	limit int

	codePointStart int
	codePointLimit int
	codePoint      rune
}

// NewForwardUTF16Iterator returns an iterator over text starting at
// its beginning, resolving each code point against trie.
func NewForwardUTF16Iterator(trie *Trie, text []uint16) *ForwardUTF16Iterator {
	return &ForwardUTF16Iterator{trie: trie, text: text, limit: len(text), codePoint: sentinelCodePoint}
}

// CodePoint returns the code point decoded by the most recent call to
// Next, or sentinelCodePoint before the first call or once iteration
// has finished.
func (it *ForwardUTF16Iterator) CodePoint() rune { return it.codePoint }

// Next decodes the next code point and returns the trie's value for
// it. Once the iterator reaches the end of text, Next returns the
// trie's ErrorValue() on every subsequent call.
func (it *ForwardUTF16Iterator) Next() uint32 {
	it.codePointStart = it.codePointLimit
	if it.codePointLimit >= it.limit {
		it.codePoint = sentinelCodePoint
		return it.trie.errorValue
	}

	r, size := decodeUTF16At(it.text, it.codePointLimit, it.limit)
	it.codePointLimit += size
	it.codePoint = r
	return it.trie.Get(r)
}

// BackwardUTF16Iterator is the symmetric, backward-walking counterpart
// of ForwardUTF16Iterator, grounded on
// BackwardUTrie3StringIterator::previous16.
type BackwardUTF16Iterator struct {
	trie  *Trie
	text  []uint16
	start int

	codePointStart int
	codePointLimit int
	codePoint      rune
}

// NewBackwardUTF16Iterator returns an iterator over text starting at
// its end, resolving each code point against trie as Previous is
// called.
func NewBackwardUTF16Iterator(trie *Trie, text []uint16) *BackwardUTF16Iterator {
	return &BackwardUTF16Iterator{trie: trie, text: text, codePointLimit: len(text), codePointStart: len(text), codePoint: sentinelCodePoint}
}

// CodePoint returns the code point decoded by the most recent call to
// Previous, or sentinelCodePoint before the first call or once
// iteration has finished.
func (it *BackwardUTF16Iterator) CodePoint() rune { return it.codePoint }

// Previous decodes the code point immediately before the iterator's
// current position and returns the trie's value for it. Once the
// iterator reaches the start of text, Previous returns the trie's
// ErrorValue() on every subsequent call.
func (it *BackwardUTF16Iterator) Previous() uint32 {
	it.codePointLimit = it.codePointStart
	if it.start >= it.codePointStart {
		it.codePoint = sentinelCodePoint
		return it.trie.errorValue
	}

	r, size := decodeUTF16Before(it.text, it.codePointStart, it.start)
	it.codePointStart -= size
	it.codePoint = r
	return it.trie.Get(r)
}

// decodeUTF16At decodes one code point from text starting at i,
// bounded by limit, returning the code point and the number of
// uint16 units consumed. Decoding is delegated to the standard
// library's unicode/utf16, the idiomatic stand-in for the
// utf16_next collaborator spec.md assumes is available externally.
func decodeUTF16At(text []uint16, i, limit int) (rune, int) {
	r1 := rune(text[i])
	if !utf16.IsSurrogate(r1) {
		return r1, 1
	}
	if i+1 < limit {
		r2 := rune(text[i+1])
		if combined := utf16.DecodeRune(r1, r2); combined != utf8.RuneError {
			return combined, 2
		}
	}
	// Unpaired surrogate: treated as its own code unit value rather
	// than U_SENTINEL, mirroring UTRIE3_U16_NEXT16's handling of
	// malformed surrogate pairs.
	return r1, 1
}

// decodeUTF16Before decodes the code point immediately preceding
// position i in text, bounded below by start, returning the code
// point and the number of uint16 units it occupied.
func decodeUTF16Before(text []uint16, i, start int) (rune, int) {
	r2 := rune(text[i-1])
	if !utf16.IsSurrogate(r2) {
		return r2, 1
	}
	if i-2 >= start {
		r1 := rune(text[i-2])
		if combined := utf16.DecodeRune(r1, r2); combined != utf8.RuneError {
			return combined, 2
		}
	}
	return r2, 1
}

// Packed PrevIndexUTF8 results for the two special cases that don't
// resolve to a plain data index: "use highValue" and "use errorValue".
// Mirrors utrie3_internalU8PrevIndex's -16|i / -8|i encoding.
const (
	prevIndexUseHighValue = -16
	prevIndexUseErrorValue = -8
)

// PrevIndexUTF8 locates the start of the UTF-8 code point immediately
// before src (scanning at most 4 bytes backward, and never before
// start), decodes it, and returns a packed value combining the
// resulting trie data index and the number of bytes consumed:
// index = result >> 3, bytesConsumed = result & 7. Two negative
// sentinel ranges signal that the caller should use the trie's
// ErrorValue ([prevIndexUseErrorValue, 0)) or HighValue
// ([prevIndexUseHighValue, prevIndexUseErrorValue)) instead of
// indexing data directly; the
// exported DecodePrevUTF8 helper below applies that logic for callers
// that don't need the packed form.
//
// Grounded on original_source/icu4c/utrie3.cpp's
// utrie3_internalU8PrevIndex.
func (t *Trie) PrevIndexUTF8(full []byte, start, src int) int {
	if src-start > 4 {
		start = src - 4
	}
	r, size := utf8.DecodeLastRune(full[start:src])
	if r == utf8.RuneError && size <= 1 {
		return prevIndexUseErrorValue | size
	}
	c := r
	i := size

	switch {
	case c <= 0xffff:
		idx := int(t.index.get(uint32(c)>>shift2)) + int(uint32(c)&dataMask)
		return (idx << 3) | i
	case c >= t.highStart:
		return prevIndexUseHighValue | i
	default:
		i2Block := t.index.get((index1Offset - omittedBMPIndex1Length) + (uint32(c) >> shift1))
		dataBlock := int(t.index.get(uint32(i2Block)+((uint32(c)>>shift2)&index2Mask))) << indexShift
		idx := dataBlock + int(uint32(c)&dataMask)
		return (idx << 3) | i
	}
}

// DecodePrevUTF8 decodes the UTF-8 code point immediately before
// src within full (never scanning before start) and returns its
// trie value together with the number of bytes it occupied.
func (t *Trie) DecodePrevUTF8(full []byte, start, src int) (value uint32, size int) {
	packed := t.PrevIndexUTF8(full, start, src)
	switch {
	case packed >= prevIndexUseErrorValue && packed < prevIndexUseErrorValue+8:
		return t.errorValue, packed - prevIndexUseErrorValue
	case packed >= prevIndexUseHighValue && packed < prevIndexUseHighValue+8:
		return t.highValue, packed - prevIndexUseHighValue
	default:
		return t.rawData(uint32(packed >> 3)), packed & 7
	}
}
