// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupCharset finds the encoding for an IANA character set name like
// "windows-1252" or "ISO-8859-1".
func lookupCharset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q not supported", name)
	}
	return enc, nil
}

// charsetReader converts the text read from r from the named character set
// into UTF-8.
func charsetReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupCharset(name)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(r), nil
}
