// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ocf decodes OCF compressed document blobs.
//
// OCF compression is the LZW variant of the TIFF format. The blobs have no
// header; they consist of 9 to 13 bit codes terminated by an EOD code. The
// decoder itself is provided by the lzw package. This package adds the
// defaults used by the document store and the conversion of text blobs
// using an explicit character encoding.
package ocf
