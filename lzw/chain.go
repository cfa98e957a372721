// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// chainEntry describes a sequence by its last byte and the index of the
// entry for the sequence without the last byte. The first byte is cached.
type chainEntry struct {
	prev   int32
	length int32
	last   byte
	first  byte
}

// chainTable stores all entries in a single slice. Sequences are
// materialized in the scratch buffer by walking the prev indexes.
type chainTable struct {
	entries []chainEntry
	buf     []byte
}

func newChainTable() *chainTable {
	t := &chainTable{
		entries: make([]chainEntry, FirstCode, 512),
		buf:     make([]byte, 0, 64),
	}
	for i := 0; i < ClearCode; i++ {
		t.entries[i] = chainEntry{
			prev:   -1,
			length: 1,
			last:   byte(i),
			first:  byte(i),
		}
	}
	return t
}

// Reset drops all entries added by Extend. The literal entries are never
// modified and can be kept.
func (t *chainTable) Reset() { t.entries = t.entries[:FirstCode] }

// Len returns the number of entries.
func (t *chainTable) Len() int { return len(t.entries) }

// Resolve writes the sequence for code into the scratch buffer.
func (t *chainTable) Resolve(code int) (seq []byte, ok bool) {
	if !isData(code, len(t.entries)) {
		return nil, false
	}
	n := int(t.entries[code].length)
	if n > cap(t.buf) {
		t.buf = make([]byte, n, 2*n)
	}
	seq = t.buf[:n]
	for k := n - 1; k >= 0; k-- {
		e := &t.entries[code]
		seq[k] = e.last
		code = int(e.prev)
	}
	return seq, true
}

// First returns the cached first byte of the sequence.
func (t *chainTable) First(code int) (c byte, ok bool) {
	if !isData(code, len(t.entries)) {
		return 0, false
	}
	return t.entries[code].first, true
}

// Extend appends a new entry referencing prefix.
func (t *chainTable) Extend(prefix int, c byte) (code int, err error) {
	code = len(t.entries)
	if code >= MaxTableLen {
		return 0, ErrTableOverflow
	}
	if !isData(prefix, code) {
		return 0, ErrCorrupt
	}
	p := &t.entries[prefix]
	t.entries = append(t.entries, chainEntry{
		prev:   int32(prefix),
		length: p.length + 1,
		last:   c,
		first:  p.first,
	})
	return code, nil
}
