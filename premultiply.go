// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

import "math/bits"

// Premultiply scales color by alpha with round-correct division by the
// all-ones value of T: for x = color·alpha and width w, the result is
// (t + (t >> w)) >> w with t = x + 2^(w−1), the generalization of the exact
// divide-by-255 identity. Premultiply(c, a) equals (c·a + 127) / 255 for
// every uint8 pair, so Premultiply(c, 0) is 0 and Premultiply(c, max) is c.
func Premultiply[T Sample](color, alpha T) T {
	width := uint(bitWidth[T]())

	if width < 64 {
		t := uint64(color)*uint64(alpha) + 1<<(width-1)
		return T((t + t>>width) >> width)
	}

	// 64-bit samples need the full 128-bit product; the rounding add is two
	// carry-propagating steps over the low word.
	hi, lo := bits.Mul64(uint64(color), uint64(alpha))
	low, carry := bits.Add64(lo, 1<<63, 0)
	high := hi + carry
	_, carry = bits.Add64(low, high, 0)
	return T(high + carry)
}
