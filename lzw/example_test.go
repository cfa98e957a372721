// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/ocf/lzw"
)

// codes 65 66 258 256 67 258 257 using 9 bits each
var example = []byte{0x20, 0x90, 0xa0, 0x50, 0x02, 0x1c, 0x0a, 0x02}

func ExampleDecodeBytes() {
	p, err := lzw.DecodeBytes(example, lzw.DecoderConfig{})
	if err != nil {
		log.Fatalf("lzw.DecodeBytes error %s", err)
	}
	fmt.Printf("%s\n", p)
	// Output:
	// ABABCCC
}

func ExampleReader() {
	r, err := lzw.NewReader(bytes.NewReader(example))
	if err != nil {
		log.Fatalf("lzw.NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	fmt.Println()
	// Output:
	// ABABCCC
}

func ExampleDecoder_Next() {
	d, err := lzw.NewDecoder(bytes.NewReader(example), lzw.DecoderConfig{
		Table: lzw.TrieTable,
	})
	if err != nil {
		log.Fatalf("lzw.NewDecoder error %s", err)
	}
	for {
		seq, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Next error %s", err)
		}
		fmt.Printf("%q\n", seq)
	}
	// Output:
	// "A"
	// "B"
	// "AB"
	// "C"
	// "CC"
}
