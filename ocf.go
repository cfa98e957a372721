// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ocf

import (
	"errors"
	"io"

	"golang.org/x/text/encoding"

	"github.com/ulikunitz/ocf/lzw"
)

// ReaderConfig defines the parameters for decoding OCF blobs. The zero
// value uses the early width change of the TIFF convention and returns the
// data decoded so far for blobs without EOD code.
type ReaderConfig struct {
	LZW lzw.DecoderConfig
}

// Verify checks the reader configuration for errors.
func (cfg *ReaderConfig) Verify() error {
	if cfg == nil {
		return errors.New("ocf: ReaderConfig is nil")
	}
	return cfg.LZW.Verify()
}

// NewReader returns a reader for the decoded data of the OCF blob provided
// by r.
func NewReader(r io.Reader) (*lzw.Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig returns a reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*lzw.Reader, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return lzw.NewReaderConfig(r, cfg.LZW)
}

// Decode decodes the blob using the default configuration.
func Decode(blob []byte) ([]byte, error) {
	return DecodeConfig(blob, ReaderConfig{})
}

// DecodeConfig decodes the blob using the given configuration.
func DecodeConfig(blob []byte, cfg ReaderConfig) ([]byte, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return lzw.DecodeBytes(blob, cfg.LZW)
}

// DecodeString decodes a blob that has been stored as text. The string is
// converted to bytes using enc, decoded and the result is converted back
// into a string using the same encoding. The encoding must be given
// explicitly; there is no process-wide default.
func DecodeString(s string, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return "", errors.New("ocf: encoding must not be nil")
	}
	blob, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return "", err
	}
	p, err := Decode(blob)
	if err != nil {
		return "", err
	}
	if p, err = enc.NewDecoder().Bytes(p); err != nil {
		return "", err
	}
	return string(p), nil
}
