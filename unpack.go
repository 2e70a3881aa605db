// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Sample is any unsigned integer width a pixel can be unpacked to.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RGBA is one unpacked pixel at precision T, in red-green-blue-alpha order.
type RGBA[T Sample] struct {
	R, G, B, A T
}

// Unpack expands a straightened scanline payload into RGBA records at
// precision T. Samples arrive one per byte for depths up to 8 (sub-byte
// straightening, like palette-index extraction, is the caller's job) and as
// big-endian pairs for depth 16. Output length is the payload length divided
// by the pixel group size in bytes.
func Unpack[T Sample](buffer []byte, format Format, standard Standard) ([]RGBA[T], error) {
	if standard != StandardCommon {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedColorStandard, standard)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	switch format.Kind {
	case FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8:
		return unpackIndexed[T](buffer, format.Palette)

	case FormatV1, FormatV2, FormatV4, FormatV8, FormatV16:
		return unpackValue[T](buffer, format.Depth(), format.Key), nil

	case FormatVA8, FormatVA16:
		return unpackValueAlpha[T](buffer, format.Depth()), nil

	case FormatRGB8, FormatRGB16:
		return unpackColor[T](buffer, format.Depth(), format.Key), nil

	default: // FormatRGBA8, FormatRGBA16
		return unpackColorAlpha[T](buffer, format.Depth()), nil
	}
}

// bitWidth returns the width of T in bits.
func bitWidth[T Sample]() int {
	return bits.Len64(uint64(^T(0)))
}

// scale returns the depth-normalizing adapter from a depth-bit source sample
// to T: identity at equal width, quantum multiply when widening, right shift
// when narrowing. The quantum maps a full-scale source to a full-scale
// destination without bias.
func scale[S Sample, T Sample](depth int) func(S) T {
	width := bitWidth[T]()
	switch {
	case width == depth:
		return func(q S) T { return T(q) }

	case width > depth:
		max := ^T(0)
		quantum := max / (max >> uint(width-depth))
		return func(q S) T { return T(q) * quantum }

	default:
		shift := uint(depth - width)
		return func(q S) T { return T(q >> shift) }
	}
}

func loadU8(b []byte) uint8 { return b[0] }

func loadBE16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// The per-arity map kernels below assemble pixels from 1, 2, 3 or 4
// consecutive samples of size bytes each, monomorphized per (source,
// destination) width pair.

func map1[S Sample, T Sample](buffer []byte, size int, load func([]byte) S, kernel func(S) RGBA[T]) []RGBA[T] {
	out := make([]RGBA[T], len(buffer)/size)
	for i := range out {
		out[i] = kernel(load(buffer[i*size:]))
	}
	return out
}

func map2[S Sample, T Sample](buffer []byte, size int, load func([]byte) S, kernel func(S, S) RGBA[T]) []RGBA[T] {
	group := 2 * size
	out := make([]RGBA[T], len(buffer)/group)
	for i := range out {
		base := i * group
		out[i] = kernel(load(buffer[base:]), load(buffer[base+size:]))
	}
	return out
}

func map3[S Sample, T Sample](buffer []byte, size int, load func([]byte) S, kernel func(S, S, S) RGBA[T]) []RGBA[T] {
	group := 3 * size
	out := make([]RGBA[T], len(buffer)/group)
	for i := range out {
		base := i * group
		out[i] = kernel(load(buffer[base:]), load(buffer[base+size:]), load(buffer[base+2*size:]))
	}
	return out
}

func map4[S Sample, T Sample](buffer []byte, size int, load func([]byte) S, kernel func(S, S, S, S) RGBA[T]) []RGBA[T] {
	group := 4 * size
	out := make([]RGBA[T], len(buffer)/group)
	for i := range out {
		base := i * group
		out[i] = kernel(
			load(buffer[base:]), load(buffer[base+size:]),
			load(buffer[base+2*size:]), load(buffer[base+3*size:]))
	}
	return out
}

// unpackIndexed dereferences 8-bit palette entries; the alpha comes from the
// palette itself.
func unpackIndexed[T Sample](buffer []byte, palette [][4]uint8) ([]RGBA[T], error) {
	adapt := scale[uint8, T](8)
	out := make([]RGBA[T], len(buffer))
	for i, index := range buffer {
		if int(index) >= len(palette) {
			return nil, fmt.Errorf("%w: index %d, palette has %d entries",
				ErrPaletteIndexRange, index, len(palette))
		}
		entry := palette[index]
		out[i] = RGBA[T]{adapt(entry[0]), adapt(entry[1]), adapt(entry[2]), adapt(entry[3])}
	}
	return out, nil
}

// unpackValue expands grayscale samples; with a key, alpha drops to zero
// exactly where the raw sample matches it.
func unpackValue[T Sample](buffer []byte, depth int, key []uint16) []RGBA[T] {
	max := ^T(0)

	if depth > 8 {
		adapt := scale[uint16, T](depth)
		if len(key) == 0 {
			return map1(buffer, 2, loadBE16, func(v uint16) RGBA[T] {
				g := adapt(v)
				return RGBA[T]{g, g, g, max}
			})
		}
		k := key[0]
		return map1(buffer, 2, loadBE16, func(v uint16) RGBA[T] {
			g := adapt(v)
			a := max
			if v == k {
				a = 0
			}
			return RGBA[T]{g, g, g, a}
		})
	}

	adapt := scale[uint8, T](depth)
	if len(key) == 0 {
		return map1(buffer, 1, loadU8, func(v uint8) RGBA[T] {
			g := adapt(v)
			return RGBA[T]{g, g, g, max}
		})
	}
	k := key[0]
	return map1(buffer, 1, loadU8, func(v uint8) RGBA[T] {
		g := adapt(v)
		a := max
		if uint16(v) == k {
			a = 0
		}
		return RGBA[T]{g, g, g, a}
	})
}

// unpackValueAlpha expands grayscale-alpha sample pairs.
func unpackValueAlpha[T Sample](buffer []byte, depth int) []RGBA[T] {
	if depth > 8 {
		adapt := scale[uint16, T](depth)
		return map2(buffer, 2, loadBE16, func(v, a uint16) RGBA[T] {
			g := adapt(v)
			return RGBA[T]{g, g, g, adapt(a)}
		})
	}

	adapt := scale[uint8, T](depth)
	return map2(buffer, 1, loadU8, func(v, a uint8) RGBA[T] {
		g := adapt(v)
		return RGBA[T]{g, g, g, adapt(a)}
	})
}

// unpackColor expands rgb triples; with a key triple, alpha drops to zero
// exactly where all three raw samples match it.
func unpackColor[T Sample](buffer []byte, depth int, key []uint16) []RGBA[T] {
	max := ^T(0)

	if depth > 8 {
		adapt := scale[uint16, T](depth)
		if len(key) == 0 {
			return map3(buffer, 2, loadBE16, func(r, g, b uint16) RGBA[T] {
				return RGBA[T]{adapt(r), adapt(g), adapt(b), max}
			})
		}
		kr, kg, kb := key[0], key[1], key[2]
		return map3(buffer, 2, loadBE16, func(r, g, b uint16) RGBA[T] {
			a := max
			if r == kr && g == kg && b == kb {
				a = 0
			}
			return RGBA[T]{adapt(r), adapt(g), adapt(b), a}
		})
	}

	adapt := scale[uint8, T](depth)
	if len(key) == 0 {
		return map3(buffer, 1, loadU8, func(r, g, b uint8) RGBA[T] {
			return RGBA[T]{adapt(r), adapt(g), adapt(b), max}
		})
	}
	kr, kg, kb := key[0], key[1], key[2]
	return map3(buffer, 1, loadU8, func(r, g, b uint8) RGBA[T] {
		a := max
		if uint16(r) == kr && uint16(g) == kg && uint16(b) == kb {
			a = 0
		}
		return RGBA[T]{adapt(r), adapt(g), adapt(b), a}
	})
}

// unpackColorAlpha expands rgba quadruples.
func unpackColorAlpha[T Sample](buffer []byte, depth int) []RGBA[T] {
	if depth > 8 {
		adapt := scale[uint16, T](depth)
		return map4(buffer, 2, loadBE16, func(r, g, b, a uint16) RGBA[T] {
			return RGBA[T]{adapt(r), adapt(g), adapt(b), adapt(a)}
		})
	}

	adapt := scale[uint8, T](depth)
	return map4(buffer, 1, loadU8, func(r, g, b, a uint8) RGBA[T] {
		return RGBA[T]{adapt(r), adapt(g), adapt(b), adapt(a)}
	})
}
