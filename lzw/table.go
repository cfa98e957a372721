// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"
	"strings"
)

// Reserved codes and table limits.
const (
	// ClearCode resets the code table and the code width.
	ClearCode = 256
	// EODCode marks the end of data.
	EODCode = 257
	// FirstCode is the first code assigned by the decoder.
	FirstCode = 258
	// MaxTableLen is the maximum number of entries in the code table
	// including the literal and reserved codes.
	MaxTableLen = 4096
)

// Table maps codes to byte sequences. A table contains FirstCode entries
// after Reset and grows by one entry with every call of Extend.
type Table interface {
	// Reset resets the table to the literal and reserved codes.
	Reset()
	// Len returns the number of entries in the table.
	Len() int
	// Resolve returns the byte sequence for the code. The slice is owned
	// by the table and is only valid until the next call of a table
	// method. Reserved codes and codes not in the table are not
	// resolved.
	Resolve(code int) (seq []byte, ok bool)
	// First returns the first byte of the sequence for code.
	First(code int) (c byte, ok bool)
	// Extend adds the sequence for prefix followed by c to the table and
	// returns the new code, which is always the table length before the
	// call.
	Extend(prefix int, c byte) (code int, err error)
}

// TableKind selects the table representation.
type TableKind int

// Supported table representations.
const (
	// ChainTable stores back references in a single slice.
	ChainTable TableKind = iota
	// TrieTable stores all sequences and a prefix tree.
	TrieTable
)

var tableKindNames = []string{"chain", "trie"}

// String returns "chain" or "trie".
func (k TableKind) String() string {
	if !(0 <= k && int(k) < len(tableKindNames)) {
		return fmt.Sprintf("TableKind(%d)", int(k))
	}
	return tableKindNames[k]
}

// ParseTableKind converts the strings returned by TableKind.String back into
// the table kind. Case is ignored.
func ParseTableKind(s string) (k TableKind, err error) {
	for i, name := range tableKindNames {
		if strings.EqualFold(s, name) {
			return TableKind(i), nil
		}
	}
	return 0, fmt.Errorf("lzw: unknown table kind %q", s)
}

// NewTable creates a table of the given kind.
func NewTable(kind TableKind) (t Table, err error) {
	switch kind {
	case ChainTable:
		return newChainTable(), nil
	case TrieTable:
		return newTrieTable(), nil
	}
	return nil, fmt.Errorf("lzw: unsupported table kind %d", int(kind))
}

// isData reports whether code is a data code in a table of length n.
func isData(code, n int) bool {
	if code < ClearCode {
		return code >= 0
	}
	return FirstCode <= code && code < n
}
