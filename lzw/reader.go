// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "io"

// Reader provides the decoded data of an LZW stream. Codes are only read
// from the underlying reader when data is requested.
type Reader struct {
	d *Decoder
	// pending data of the last code
	buf []byte
	err error
}

// NewReader creates a reader using the default configuration.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, DecoderConfig{})
}

// NewReaderConfig creates a reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg DecoderConfig) (*Reader, error) {
	d, err := NewDecoder(r, cfg)
	if err != nil {
		return nil, err
	}
	return &Reader{d: d}, nil
}

// Read reads decoded data. It returns as soon as some data is available and
// doesn't wait for further codes to fill p. It returns io.EOF at the end of
// the stream.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			if n > 0 {
				return n, nil
			}
			if r.err != nil {
				return 0, r.err
			}
			r.buf, r.err = r.d.Next()
			continue
		}
		k := copy(p[n:], r.buf)
		r.buf = r.buf[k:]
		n += k
	}
	return n, nil
}
