// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Code widths supported by the format.
const (
	MinCodeWidth = 9
	MaxCodeWidth = 13
)

// BitReader reads codes of a variable width from a byte stream. The bits
// are read most-significant bit first. Bits of a partially consumed byte are
// used before the next byte is read.
type BitReader struct {
	br    *bitio.Reader
	width int
	err   error
}

// byteReader provides ReadByte for readers that don't support it. It reads
// exactly one byte per call, so no data beyond the current code is taken from
// the underlying reader.
type byteReader struct {
	io.Reader
	b [1]byte
}

// ReadByte reads a single byte.
func (r *byteReader) ReadByte() (c byte, err error) {
	for {
		n, err := r.Reader.Read(r.b[:])
		if n == 1 {
			return r.b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// NewBitReader creates a bit reader with the code width MinCodeWidth. The
// bit reader doesn't read ahead: bytes after the last code read remain in r.
// If r doesn't support io.ByteReader, every byte is read with a separate Read
// call; callers should buffer such readers if they don't need the remaining
// data.
func NewBitReader(r io.Reader) *BitReader {
	type readerAndByteReader interface {
		io.Reader
		io.ByteReader
	}
	if _, ok := r.(readerAndByteReader); !ok {
		r = &byteReader{Reader: r}
	}
	return &BitReader{br: bitio.NewReader(r), width: MinCodeWidth}
}

// Width returns the number of bits read by the next ReadCode call.
func (r *BitReader) Width() int { return r.width }

// SetWidth sets the code width. It panics if the width is outside of the
// range MinCodeWidth to MaxCodeWidth.
func (r *BitReader) SetWidth(n int) {
	if !(MinCodeWidth <= n && n <= MaxCodeWidth) {
		panic(fmt.Errorf("lzw: code width %d out of range", n))
	}
	r.width = n
}

// ReadCode reads the next code. It returns io.EOF if the underlying reader
// has not enough bits left for a complete code. A partial code at the end of
// the stream is not an error for the bit reader. After an error all
// following calls return the same error.
func (r *BitReader) ReadCode() (code int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	u, err := r.br.ReadBits(uint8(r.width))
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		r.err = err
		return 0, err
	}
	return int(u), nil
}
