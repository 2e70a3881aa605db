// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zpix

package zpix

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("zpix benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func benchDeflate(b *testing.B, data []byte, level int) []byte {
	b.Helper()
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		b.Fatalf("zlib.NewWriterLevel: %v", err)
	}
	if _, err := zw.Write(data); err != nil {
		b.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		b.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func BenchmarkInflate(b *testing.B) {
	levels := []int{zlib.NoCompression, zlib.DefaultCompression, zlib.BestCompression}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			compressed := benchDeflate(b, inputData, level)
			if _, err := Inflate(compressed, nil); err != nil {
				b.Fatalf("setup Inflate failed for %s level %d: %v", inputName, level, err)
			}

			name := fmt.Sprintf("%s/from-level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Inflate(compressed, nil); err != nil {
						b.Fatalf("Inflate failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkUnpack(b *testing.B) {
	payload := make([]byte, 256*1024)
	for i := range payload {
		payload[i] = byte(i * 7)
	}

	cases := []struct {
		name   string
		format Format
	}{
		{"rgba8", Format{Kind: FormatRGBA8}},
		{"rgb16", Format{Kind: FormatRGB16}},
		{"v8", Format{Kind: FormatV8}},
	}
	for _, tc := range cases {
		b.Run(tc.name+"/to-uint8", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				if _, err := Unpack[uint8](payload, tc.format, StandardCommon); err != nil {
					b.Fatalf("Unpack failed: %v", err)
				}
			}
		})
		b.Run(tc.name+"/to-uint16", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				if _, err := Unpack[uint16](payload, tc.format, StandardCommon); err != nil {
					b.Fatalf("Unpack failed: %v", err)
				}
			}
		})
	}
}
