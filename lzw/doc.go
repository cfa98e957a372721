// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzw decodes the TIFF-style LZW variant used for OCF compressed
// document blobs.
//
// The stream is a sequence of codes without any header. Codes are stored
// most-significant bit first and start with a width of 9 bits. The width
// grows with the code table up to 13 bits. Code 256 clears the table and code
// 257 marks the end of the data. Codes 0 to 255 represent the literal bytes.
//
// The code width grows either one code before the table reaches the next
// power of two (EarlyChange, the TIFF convention) or exactly at the power of
// two (LateChange, baseline LZW). The stream doesn't record the variant, so
// it must be selected by the caller. Decoding with the wrong variant usually
// fails with ErrCorrupt after the first width change.
//
// Two code table representations are provided. The ChainTable stores each
// entry as a back reference into a single slice and is the default. The
// TrieTable stores the byte sequence of every code and maintains a prefix
// tree; it is slower and exists for cross-checking.
//
// Decoding a stream requires no shared state. Every call to Decode,
// DecodeBytes or NewReader creates its own bit reader and code table.
package lzw
