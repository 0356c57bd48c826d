// Copyright 2024 The utrie3 Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmap memory-maps a read-only file so a large prebuilt trie
// can be opened without copying it into the Go heap.
//
// This reimplements, against golang.org/x/sys/unix directly, the thin
// Mmap/Munmap wrapper the teacher repo's higher-level readers
// (datafile.Reader, indexfile.Table) expect from their
// internal/exp/mmap dependency; that package was not present in the
// retrieved example pack, so there was nothing to copy it from
// directly. The madvise/mlock-on-the-mapped-region idiom those readers
// layer on top of it is preserved here instead of there, since this
// package is this module's only caller of unix.Mmap.
package mmap

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// ReaderAt is a read-only view of a memory-mapped file.
type ReaderAt struct {
	data []byte
	f    *os.File
}

// Open memory-maps the file at path for reading and advises the
// kernel that access to it will be random, matching the access
// pattern of trie lookups (pointer-chasing through the index and data
// arrays rather than sequential scans).
func Open(path string) (*ReaderAt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s): %w", path, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("f.Stat: %w", err)
	}
	size := fi.Size()
	if size == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("mmap: %s is empty", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("unix.Mmap(%s): %w", path, err)
	}

	if err := unix.Madvise(data, syscall.MADV_RANDOM); err != nil {
		log.Printf("madvise(MADV_RANDOM) failed for %s, continuing anyway: %s\n", path, err)
	}

	return &ReaderAt{data: data, f: f}, nil
}

// Data returns the mapped bytes. The returned slice must not be
// written to, and is only valid until Close is called.
func (r *ReaderAt) Data() []byte { return r.data }

// Len returns the length of the mapped region in bytes.
func (r *ReaderAt) Len() int { return len(r.data) }

// Lock pins the mapped region into physical memory with mlock(2),
// best-effort: failures are logged but not returned, since mlock is an
// optimization (avoiding page faults on first touch) and not required
// for correctness.
func (r *ReaderAt) Lock() {
	if err := unix.Mlock(r.data); err != nil {
		log.Printf("mlock failed, continuing anyway: %s\n", err)
	}
}

// Close unmaps the file and releases the underlying file descriptor.
func (r *ReaderAt) Close() error {
	var err error
	if r.data != nil {
		err = unix.Munmap(r.data)
		r.data = nil
	}
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}
