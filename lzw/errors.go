// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates a code that is neither a control code, nor in the
// table nor the next code to be defined.
var ErrCorrupt = errors.New("lzw: corrupt stream")

// ErrTableOverflow indicates that the code table would need more than
// MaxTableLen entries. Either the encoder didn't clear the table in time or
// the wrong width change variant has been selected.
var ErrTableOverflow = errors.New("lzw: code table overflow")

// ErrUnexpectedEOF is returned if RequireEOD is set and the stream ends
// before the EOD code has been read.
var ErrUnexpectedEOF = errors.New("lzw: unexpected end of stream")

// CodeError provides the code and the table length at the time an error has
// been detected.
type CodeError struct {
	Code     int
	TableLen int
	Err      error
}

// Error returns the error message.
func (e *CodeError) Error() string {
	return fmt.Sprintf("%s (code %d, table length %d)",
		e.Err, e.Code, e.TableLen)
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.Err }
