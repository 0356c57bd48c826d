// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import (
	"encoding/binary"
	"fmt"
)

// Structural constants fixed by the on-disk format. Implementations
// must use exactly these values -- they are not tunable.
const (
	shift1 = 11 // bits of a code point indexed by the level-1 table
	shift2 = 5  // bits of a code point indexed by the level-2 table
	shift1_2 = shift1 - shift2

	omittedBMPIndex1Length = 0x10000 >> shift1 // index-1 entries covering the BMP, absent on disk
	index2BlockLength      = 1 << shift1_2     // entries per level-2 block
	index2Mask             = index2BlockLength - 1
	dataBlockLength        = 1 << shift2 // entries per data block
	dataMask               = dataBlockLength - 1
	cpPerIndex1Entry       = 1 << shift1 // code points covered by one index-1 entry
	indexShift             = 2           // data-block-start offsets are stored right-shifted by this

	index1Offset     = 0x800 // start of supplementary index-1 entries within the index array
	index2BMPLength  = 0x800 // BMP portion of the index array
	dataStartOffset  = 0x80  // ASCII block size at the head of the data array
	maxUnicodeCodePoint = 0x10FFFF

	signature   = 0x54726933 // "Tri3"
	signatureOE = 0x33697254 // opposite-endian signature

	// Legacy signatures recognized by GetVersion for dispatch only; this
	// package never decodes them.
	signatureV2   = 0x54726932 // "Tri2"
	signatureV2OE = 0x32697254
	signatureV1   = 0x54726965 // "Trie"
	signatureV1OE = 0x65697254
)

// valueWidth is the width, in bits, of each stored value.
type valueWidth int

const (
	valueWidth16 valueWidth = 16
	valueWidth32 valueWidth = 32
)

// valueWidth option codes, packed into the low 4 bits of the header's
// options field.
const (
	optionsValueBits16 = 0
	optionsValueBits32 = 1
	optionsValueBitsMask = 0xf
)

// Bits 12..27 of options hold dataNullOffset; every other bit is
// reserved and must be zero. See DESIGN.md's Open Question decision.
const (
	optionsReservedMask = ^uint32(optionsValueBitsMask | (0xFFFF << 12))
	optionsDataNullOffsetShift = 12
)

// headerSize is the fixed, 8-byte-aligned size of the on-disk header.
const headerSize = 32

// header is the literal on-disk layout described in spec.md section 4.1.
type header struct {
	signature         uint32
	options           uint32
	indexLength       uint16
	shiftedDataLength uint16
	index2NullOffset  uint16
	shiftedHighStart  uint16
	highValue         uint32
	errorValue        uint32
	// 8 reserved bytes follow, padding the header to headerSize for
	// 8-byte alignment; conforming readers accept them as zero.
}

func (h *header) marshal(order binary.ByteOrder) []byte {
	var buf [headerSize]byte
	order.PutUint32(buf[0:4], h.signature)
	order.PutUint32(buf[4:8], h.options)
	order.PutUint16(buf[8:10], h.indexLength)
	order.PutUint16(buf[10:12], h.shiftedDataLength)
	order.PutUint16(buf[12:14], h.index2NullOffset)
	order.PutUint16(buf[14:16], h.shiftedHighStart)
	order.PutUint32(buf[16:20], h.highValue)
	order.PutUint32(buf[20:24], h.errorValue)
	// buf[24:32] left zero (reserved)
	return buf[:]
}

func unmarshalHeader(b []byte, order binary.ByteOrder) (header, error) {
	if len(b) < headerSize {
		return header{}, fmt.Errorf("utrie3: header bytes too short: %d < %d: %w", len(b), headerSize, ErrInvalidFormat)
	}
	var h header
	h.signature = order.Uint32(b[0:4])
	h.options = order.Uint32(b[4:8])
	h.indexLength = order.Uint16(b[8:10])
	h.shiftedDataLength = order.Uint16(b[10:12])
	h.index2NullOffset = order.Uint16(b[12:14])
	h.shiftedHighStart = order.Uint16(b[14:16])
	h.highValue = order.Uint32(b[16:20])
	h.errorValue = order.Uint32(b[20:24])
	return h, nil
}
