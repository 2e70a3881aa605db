// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

import "fmt"

// FormatKind tags a PNG pixel format: palette-indexed, grayscale (v),
// grayscale-alpha (va), truecolor (rgb) and truecolor-alpha (rgba), at the
// depths the standard permits.
type FormatKind int

const (
	FormatIndexed1 FormatKind = iota
	FormatIndexed2
	FormatIndexed4
	FormatIndexed8
	FormatV1
	FormatV2
	FormatV4
	FormatV8
	FormatV16
	FormatVA8
	FormatVA16
	FormatRGB8
	FormatRGB16
	FormatRGBA8
	FormatRGBA16
)

// Format describes the pixel layout of a decompressed scanline payload.
// Palette is required for indexed kinds (RGBA entries, 8 bits per sample).
// Key, when present, is the transparency key: one component for grayscale
// kinds, three for rgb kinds, raw (unscaled) sample values. Background is
// carried for callers but ignored by this core.
type Format struct {
	Kind       FormatKind
	Palette    [][4]uint8
	Key        []uint16
	Background []uint16
}

// Depth returns the source sample depth in bits.
func (f Format) Depth() int {
	switch f.Kind {
	case FormatIndexed1, FormatV1:
		return 1
	case FormatIndexed2, FormatV2:
		return 2
	case FormatIndexed4, FormatV4:
		return 4
	case FormatV16, FormatVA16, FormatRGB16, FormatRGBA16:
		return 16
	default:
		return 8
	}
}

// Channels returns the number of samples per pixel in the payload.
func (f Format) Channels() int {
	switch f.Kind {
	case FormatVA8, FormatVA16:
		return 2
	case FormatRGB8, FormatRGB16:
		return 3
	case FormatRGBA8, FormatRGBA16:
		return 4
	default:
		return 1
	}
}

// indexed reports whether the format dereferences a palette.
func (f Format) indexed() bool {
	switch f.Kind {
	case FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8:
		return true
	default:
		return false
	}
}

// keyArity returns the component count a transparency key must have for this
// format, or 0 if the format does not support one.
func (f Format) keyArity() int {
	switch f.Kind {
	case FormatV1, FormatV2, FormatV4, FormatV8, FormatV16:
		return 1
	case FormatRGB8, FormatRGB16:
		return 3
	default:
		return 0
	}
}

// Validate checks the descriptor for internal consistency: palette presence
// and size for indexed kinds, transparency key arity for keyed kinds.
func (f Format) Validate() error {
	if f.indexed() {
		if len(f.Palette) == 0 {
			return ErrPaletteRequired
		}
		if limit := 1 << uint(f.Depth()); len(f.Palette) > limit {
			return fmt.Errorf("%w: %d entries, depth %d allows %d",
				ErrPaletteIndexRange, len(f.Palette), f.Depth(), limit)
		}
	}

	if len(f.Key) > 0 {
		arity := f.keyArity()
		if arity == 0 {
			return fmt.Errorf("%w: format does not support a key", ErrTransparencyKeyArity)
		}
		if len(f.Key) != arity {
			return fmt.Errorf("%w: %d components, want %d", ErrTransparencyKeyArity, len(f.Key), arity)
		}
	}

	return nil
}

// Standard selects the destination channel order.
type Standard int

const (
	// StandardCommon is the RGBA byte order.
	StandardCommon Standard = iota
	// StandardIOS is the premultiplied BGRA order; not implemented.
	StandardIOS
)
