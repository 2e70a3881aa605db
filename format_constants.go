// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

// DEFLATE format constants: symbol alphabets, decade tables for run and
// distance symbols, and the fixed-block huffman code lengths (RFC 1951 §3.2).

// Code-length alphabet symbols 16–18. Symbols 0–15 are literal lengths.
const (
	codelengthExtend = 16 // repeat previous length, 2 extra bits, base 3
	codelengthZeros3 = 17 // run of zeros, 3 extra bits, base 3
	codelengthZeros7 = 18 // run of zeros, 7 extra bits, base 11
)

// endOfBlockSymbol terminates a compressed block in the run-literal alphabet.
const endOfBlockSymbol = 256

// codelengthOrder is the stream order of the 3-bit code-length code lengths
// in a dynamic block header.
var codelengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// decade is the (extra-bit count, base) pair of a run or distance symbol.
type decade struct {
	extra int
	base  uint16
}

// runDecades maps run symbols 257–287 (index = symbol − 257) to copy lengths.
// Symbols 286 and 287 are padding: they exist only in the fixed table and no
// conforming encoder emits them; their decades decode as zero-extra runs.
var runDecades = [31]decade{
	{0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 9}, {0, 10},
	{1, 11}, {1, 13}, {1, 15}, {1, 17},
	{2, 19}, {2, 23}, {2, 27}, {2, 31},
	{3, 35}, {3, 43}, {3, 51}, {3, 59},
	{4, 67}, {4, 83}, {4, 99}, {4, 115},
	{5, 131}, {5, 163}, {5, 195}, {5, 227},
	{0, 258},
	{0, 3}, {0, 3},
}

// invalidDistanceBase exceeds every legal window (32 KiB max), so invoking a
// padding distance symbol always fails the window check.
const invalidDistanceBase = 1<<15 + 1

// distanceDecades maps distance symbols 0–31 to back-reference offsets.
// Symbols 30 and 31 are padding and never resolve to a valid offset.
var distanceDecades = [32]decade{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 5}, {1, 7},
	{2, 9}, {2, 13},
	{3, 17}, {3, 25},
	{4, 33}, {4, 49},
	{5, 65}, {5, 97},
	{6, 129}, {6, 193},
	{7, 257}, {7, 385},
	{8, 513}, {8, 769},
	{9, 1025}, {9, 1537},
	{10, 2049}, {10, 3073},
	{11, 4097}, {11, 6145},
	{12, 8193}, {12, 12289},
	{13, 16385}, {13, 24577},
	{0, invalidDistanceBase}, {0, invalidDistanceBase},
}

// distancePaddingSymbol backs the degenerate distance table synthesized for
// an all-zero distance alphabet; decoding it trips the window check.
const distancePaddingSymbol = 31

// fixedRunLiteralLengths returns the code lengths of the fixed run-literal
// table: 288 symbols including the two padding entries.
func fixedRunLiteralLengths() []uint8 {
	lengths := make([]uint8, 288)
	for i := range lengths {
		switch {
		case i < 144:
			lengths[i] = 8
		case i < 256:
			lengths[i] = 9
		case i < 280:
			lengths[i] = 7
		default:
			lengths[i] = 8
		}
	}
	return lengths
}

// fixedDistanceLengths returns the code lengths of the fixed distance table:
// 32 five-bit codes, the last two being padding.
func fixedDistanceLengths() []uint8 {
	lengths := make([]uint8, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}
