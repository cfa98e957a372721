// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/ocf/xlog"
)

// state describes the state of the decoder.
type state int

const (
	stateReady state = iota
	stateRunning
	stateDone
	stateFailed
)

var stateNames = []string{"READY", "RUNNING", "DONE", "FAILED"}

func (s state) String() string {
	if !(0 <= s && int(s) < len(stateNames)) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Decoder decodes a single LZW stream. It owns the bit reader and the code
// table; a decoder must not be used by multiple goroutines.
type Decoder struct {
	cfg   DecoderConfig
	br    *BitReader
	table Table
	// prev is the previous data code; -1 at the start and after a clear
	prev  int
	state state
	err   error
	// codes counts the codes read including control codes
	codes int64
}

// NewDecoder creates a decoder reading codes from r.
func NewDecoder(r io.Reader, cfg DecoderConfig) (d *Decoder, err error) {
	if err = cfg.Verify(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("lzw: reader must not be nil")
	}
	t, err := NewTable(cfg.Table)
	if err != nil {
		return nil, err
	}
	d = &Decoder{
		cfg:   cfg,
		br:    NewBitReader(r),
		table: t,
		prev:  -1,
	}
	return d, nil
}

// fail moves the decoder into the failed state.
func (d *Decoder) fail(err error) error {
	d.state = stateFailed
	d.err = err
	xlog.Printf(d.cfg.Logger, "lzw: decoding failed after %d codes: %s",
		d.codes, err)
	return err
}

// codeError adds the code and the current table length to err.
func (d *Decoder) codeError(code int, err error) error {
	return &CodeError{Code: code, TableLen: d.table.Len(), Err: err}
}

// clear handles the ClearCode.
func (d *Decoder) clear() {
	xlog.Printf(d.cfg.Logger, "lzw: clear code at code %d, table length %d",
		d.codes, d.table.Len())
	d.table.Reset()
	d.br.SetWidth(MinCodeWidth)
	d.prev = -1
}

// setWidth adapts the code width to the table length.
func (d *Decoder) setWidth() {
	w := CodeWidth(d.table.Len(), d.cfg.WidthChange)
	if w == d.br.Width() {
		return
	}
	xlog.Printf(d.cfg.Logger, "lzw: code width %d -> %d at table length %d",
		d.br.Width(), w, d.table.Len())
	d.br.SetWidth(w)
}

// decode resolves a data code and extends the table.
func (d *Decoder) decode(code int) (seq []byte, err error) {
	n := d.table.Len()
	switch {
	case code < n:
		var ok bool
		if seq, ok = d.table.Resolve(code); !ok {
			return nil, d.codeError(code, ErrCorrupt)
		}
		if d.prev >= 0 {
			if _, err = d.table.Extend(d.prev, seq[0]); err != nil {
				return nil, d.codeError(code, err)
			}
		}
	case code == n:
		// The code is defined by this step: the previous sequence
		// followed by its own first byte.
		if d.prev < 0 {
			return nil, d.codeError(code, ErrCorrupt)
		}
		c, ok := d.table.First(d.prev)
		if !ok {
			return nil, d.codeError(code, ErrCorrupt)
		}
		k, err := d.table.Extend(d.prev, c)
		if err != nil {
			return nil, d.codeError(code, err)
		}
		if seq, ok = d.table.Resolve(k); !ok {
			panic("lzw: new code cannot be resolved")
		}
	default:
		return nil, d.codeError(code, ErrCorrupt)
	}
	d.prev = code
	d.setWidth()
	return seq, nil
}

// Next returns the byte sequence of the next data code. The slice is only
// valid until the next call of Next. At the end of the stream io.EOF is
// returned. Any other error is fatal and will be returned by all following
// calls.
func (d *Decoder) Next() (seq []byte, err error) {
	switch d.state {
	case stateDone:
		return nil, io.EOF
	case stateFailed:
		return nil, d.err
	case stateReady:
		d.state = stateRunning
	}
	for {
		code, err := d.br.ReadCode()
		if err != nil {
			if err != io.EOF {
				return nil, d.fail(err)
			}
			if d.cfg.RequireEOD {
				return nil, d.fail(ErrUnexpectedEOF)
			}
			xlog.Printf(d.cfg.Logger,
				"lzw: stream ends without EOD after %d codes",
				d.codes)
			d.state = stateDone
			return nil, io.EOF
		}
		d.codes++
		switch code {
		case EODCode:
			xlog.Printf(d.cfg.Logger, "lzw: EOD after %d codes",
				d.codes)
			d.state = stateDone
			return nil, io.EOF
		case ClearCode:
			d.clear()
			continue
		}
		if seq, err = d.decode(code); err != nil {
			return nil, d.fail(err)
		}
		return seq, nil
	}
}

// WriteTo writes the decoded data to w until the end of the stream is
// reached. It returns the number of bytes written. A lenient end of the
// stream is not reported as error.
func (d *Decoder) WriteTo(w io.Writer) (n int64, err error) {
	for {
		seq, err := d.Next()
		if err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		k, err := w.Write(seq)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
}

// Decode decodes the LZW stream from r and writes the data to w. The output
// is buffered and flushed at the end of the stream or after an error, so w
// receives all data decoded before a fault.
func Decode(w io.Writer, r io.Reader, cfg DecoderConfig) (n int64, err error) {
	d, err := NewDecoder(r, cfg)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	n, err = d.WriteTo(bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return n, err
}

// DecodeBytes decodes the LZW stream in p and returns the decoded data.
func DecodeBytes(p []byte, cfg DecoderConfig) ([]byte, error) {
	d, err := NewDecoder(bytes.NewReader(p), cfg)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	buf.Grow(2 * len(p))
	if _, err = d.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
