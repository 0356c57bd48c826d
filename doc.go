// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package utrie3 implements a compact, immutable, two-stage lookup
// table mapping every Unicode code point (U+0000 through U+10FFFF) to
// a fixed-width unsigned integer value.
//
// The trie trades a small amount of indirection for a very small
// memory footprint: the Basic Multilingual Plane is covered by one
// level of indexing, and the much larger but much sparser
// supplementary planes by two, with shared blocks (including a single
// "null" block of default values) compressed away by the trie's
// builder. The result is something that can be serialized once,
// memory-mapped or embedded as read-only data, and looked up from any
// number of goroutines concurrently without synchronization.
//
// A serialized trie looks like:
//
//	┌────────────────────┐
//	│ 32-byte header     │
//	├────────────────────┤
//	│ index ([]uint16)   │
//	├────────────────────┤
//	│ data ([]uint16 or  │
//	│       []uint32)    │
//	└────────────────────┘
//
// Lookup (Trie.Get) walks at most two levels of the index array before
// landing in the data array; code points below U+0080 are read
// directly out of the data array with no indexing at all. Range
// enumeration (Trie.GetRange) exploits the same block structure to
// skip entire shared blocks at once rather than visiting every code
// point.
//
// Building a trie from a code-point-to-value mapping, and compressing
// it (deduplicating index and data blocks, eliding the null block) is
// outside the scope of this package; see Builder for a minimal,
// non-compressing builder sufficient for tests and small tables.
package utrie3
