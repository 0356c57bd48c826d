// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package utrie3

import "errors"

// Sentinel errors, one per taxonomy kind. Wrap these with fmt.Errorf's
// %w verb when adding detail so callers can still errors.Is against
// them, the same pattern datafile.InvalidOffset and
// index.ErrDuplicateKey establish in the teacher this package is
// derived from.
var (
	// ErrIllegalArgument is returned when a caller-supplied argument is
	// invalid: an unsupported value width passed to OpenFromSerialized,
	// a nil trie passed to Serialize, or Builder settings or values the
	// trie cannot hold. Buffers are not checked for alignment; their
	// entries are decoded from bytes at any alignment.
	ErrIllegalArgument = errors.New("utrie3: illegal argument")

	// ErrInvalidFormat is returned when a serialized buffer fails
	// validation: too short, wrong signature, reserved option bits
	// set, value-width mismatch, or a structural field outside its
	// legal range.
	ErrInvalidFormat = errors.New("utrie3: invalid trie format")

	// ErrBufferOverflow is returned by Serialize when the destination
	// buffer (nil included) is smaller than the required size. The
	// required size is still reported so callers can resize and retry.
	// Swap reports a short output buffer as ErrIndexOutOfBounds.
	ErrBufferOverflow = errors.New("utrie3: buffer too small")

	// ErrOutOfMemory is returned by Clone when the allocation needed to
	// copy a trie's index/data arrays fails.
	ErrOutOfMemory = errors.New("utrie3: out of memory")

	// ErrIndexOutOfBounds is returned by Swap when the input or output
	// buffer is shorter than the declared structural size.
	ErrIndexOutOfBounds = errors.New("utrie3: index out of bounds")
)
