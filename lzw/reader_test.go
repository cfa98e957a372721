// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReader(t *testing.T) {
	blob := goldenBlob(t)
	for _, cfg := range configs() {
		t.Run(cfgName(cfg), func(t *testing.T) {
			r, err := NewReaderConfig(
				iotest.OneByteReader(bytes.NewReader(blob)), cfg)
			if err != nil {
				t.Fatalf("NewReaderConfig error %s", err)
			}
			p, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("io.ReadAll error %s", err)
			}
			if string(p) != goldenText {
				t.Fatalf("read %q; want %q", p, goldenText)
			}
			if n, err := r.Read(make([]byte, 10)); n != 0 || err != io.EOF {
				t.Fatalf("Read after EOF returned %d, %v", n, err)
			}
		})
	}
}

func TestReaderSmallBuffers(t *testing.T) {
	data := randomText(8, 30000)
	blob := encode(t, data, encoderConfig{clearAt: 4094})
	for _, size := range []int{1, 3, 7, 100, 4096} {
		r, err := NewReader(bytes.NewReader(blob))
		if err != nil {
			t.Fatalf("NewReader error %s", err)
		}
		buf := new(bytes.Buffer)
		p := make([]byte, size)
		for {
			n, err := r.Read(p)
			buf.Write(p[:n])
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("size %d: Read error %s", size, err)
			}
		}
		if !bytes.Equal(buf.Bytes(), data) {
			t.Fatalf("size %d: data differs", size)
		}
	}
}

func TestReaderError(t *testing.T) {
	errTest := errors.New("test error")
	blob := goldenBlob(t)
	r, err := NewReader(io.MultiReader(bytes.NewReader(blob[:60]),
		iotest.ErrReader(errTest)))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	p, err := io.ReadAll(r)
	if !errors.Is(err, errTest) {
		t.Fatalf("io.ReadAll returned error %v; want %v", err, errTest)
	}
	if len(p) == 0 || !strings.HasPrefix(goldenText, string(p)) {
		t.Fatalf("io.ReadAll returned %q; want prefix of %q",
			p, goldenText)
	}
	if _, err = r.Read(make([]byte, 1)); !errors.Is(err, errTest) {
		t.Fatalf("Read returned %v; want %v", err, errTest)
	}
}

func TestReaderCorrupt(t *testing.T) {
	blob := packCodes(t, 9, 'A', 'B', FirstCode+3, EODCode)
	r, err := NewReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	p, err := io.ReadAll(r)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("io.ReadAll returned error %v; want %v",
			err, ErrCorrupt)
	}
	if string(p) != "AB" {
		t.Fatalf("io.ReadAll returned %q; want %q", p, "AB")
	}
}

func TestReaderReturnsDecodedData(t *testing.T) {
	// The source fails after the first two codes; the data of the codes
	// must be returned before the error.
	errTest := errors.New("test error")
	blob := packCodes(t, 9, 'A', 'B', FirstCode, EODCode)
	r, err := NewReader(io.MultiReader(bytes.NewReader(blob[:3]),
		iotest.ErrReader(errTest)))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	p := make([]byte, 100)
	for _, want := range []string{"A", "B"} {
		n, err := r.Read(p)
		if err != nil {
			t.Fatalf("Read error %s", err)
		}
		if s := string(p[:n]); s != want {
			t.Fatalf("Read returned %q; want %q", s, want)
		}
	}
	if n, err := r.Read(p); n != 0 || !errors.Is(err, errTest) {
		t.Fatalf("Read() = %d, %v; want 0, %v", n, err, errTest)
	}
}
