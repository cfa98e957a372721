// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"fmt"

	"github.com/ulikunitz/ocf/xlog"
)

// WidthChange selects when the code width grows.
type WidthChange int

const (
	// EarlyChange increases the width one code before the table length
	// reaches a power of two. This is the TIFF convention and is used by
	// the OCF document store.
	EarlyChange WidthChange = iota
	// LateChange increases the width when the table length reaches a
	// power of two as in baseline LZW.
	LateChange
)

// String returns a readable name for the width change variant.
func (wc WidthChange) String() string {
	switch wc {
	case EarlyChange:
		return "early"
	case LateChange:
		return "late"
	}
	return fmt.Sprintf("WidthChange(%d)", int(wc))
}

// CodeWidth returns the width of the next code for a table with n entries.
func CodeWidth(n int, wc WidthChange) int {
	if wc == EarlyChange {
		n++
	}
	switch {
	case n < 512:
		return 9
	case n < 1024:
		return 10
	case n < 2048:
		return 11
	case n < 4096:
		return 12
	}
	return MaxCodeWidth
}

// DecoderConfig defines the parameters for the decoder. The zero value
// selects the chain table, the early width change and the lenient handling
// of a missing EOD code.
type DecoderConfig struct {
	// Table selects the code table representation.
	Table TableKind
	// WidthChange selects the code width schedule of the stream.
	WidthChange WidthChange
	// RequireEOD lets the decoder return ErrUnexpectedEOF if the stream
	// ends without an EOD code. Otherwise the output decoded so far is
	// returned without error.
	RequireEOD bool
	// Logger receives debug output about control codes and code width
	// changes. A nil logger disables the output.
	Logger xlog.Logger
}

// Verify checks the configuration for unsupported values.
func (cfg *DecoderConfig) Verify() error {
	if cfg == nil {
		return fmt.Errorf("lzw: DecoderConfig is nil")
	}
	switch cfg.Table {
	case ChainTable, TrieTable:
	default:
		return fmt.Errorf("lzw: unsupported table kind %d",
			int(cfg.Table))
	}
	switch cfg.WidthChange {
	case EarlyChange, LateChange:
	default:
		return fmt.Errorf("lzw: unsupported width change %d",
			int(cfg.WidthChange))
	}
	return nil
}
