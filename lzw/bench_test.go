// Copyright 2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"testing"
)

func BenchmarkDecodeGolden(b *testing.B) {
	blob := goldenBlob(b)
	for _, kind := range tableKinds {
		cfg := DecoderConfig{Table: kind}
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(goldenText)))
			for i := 0; i < b.N; i++ {
				if _, err := DecodeBytes(blob, cfg); err != nil {
					b.Fatalf("DecodeBytes error %s", err)
				}
			}
		})
	}
}

func BenchmarkDecodeRandom(b *testing.B) {
	data := randomText(9, 1<<20)
	blob := encode(b, data, encoderConfig{clearAt: 4094})
	for _, kind := range tableKinds {
		cfg := DecoderConfig{Table: kind}
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := DecodeBytes(blob, cfg); err != nil {
					b.Fatalf("DecodeBytes error %s", err)
				}
			}
		})
	}
}

// TestDecodeAllocs checks that repeated decodes don't accumulate memory.
// Every decode allocates its own table, so the number of allocations per
// run must be constant.
func TestDecodeAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}
	blob := goldenBlob(t)
	limits := map[TableKind]float64{ChainTable: 32, TrieTable: 1024}
	for _, kind := range tableKinds {
		cfg := DecoderConfig{Table: kind}
		decode := func() {
			if _, err := DecodeBytes(blob, cfg); err != nil {
				t.Fatalf("DecodeBytes error %s", err)
			}
		}
		first := testing.AllocsPerRun(100, decode)
		if first > limits[kind] {
			t.Errorf("%v: %.0f allocations per decode; want at most"+
				" %.0f", kind, first, limits[kind])
		}
		if later := testing.AllocsPerRun(10000, decode); later > first {
			t.Errorf("%v: allocations grew from %.0f to %.0f",
				kind, first, later)
		}
	}
}
