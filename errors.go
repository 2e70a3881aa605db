// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zpix

package zpix

import "errors"

// Sentinel errors for stream decoding and pixel unpacking. Decoding errors
// are fatal to the inflator session once raised; the same error is returned
// by every later Push.
var (
	// ErrTruncatedBitstream is returned when the compressed stream ends before
	// the trailing checksum and the caller declared end of input.
	ErrTruncatedBitstream = errors.New("truncated bitstream")
	// ErrStreamMethod is returned when the zlib header carries a compression
	// method other than 8 (DEFLATE).
	ErrStreamMethod = errors.New("invalid stream compression method")
	// ErrStreamWindowSize is returned when the zlib header declares a window
	// exponent of 8 or more.
	ErrStreamWindowSize = errors.New("invalid stream window size")
	// ErrStreamHeaderCheckBits is returned when the CMF/FLG pair is not a
	// multiple of 31.
	ErrStreamHeaderCheckBits = errors.New("invalid stream header check bits")
	// ErrStreamDictionary is returned when the FDICT flag is set; preset
	// dictionaries are not supported.
	ErrStreamDictionary = errors.New("unexpected stream dictionary")
	// ErrStreamChecksum is returned when the trailing Adler-32 does not match
	// the decompressed output.
	ErrStreamChecksum = errors.New("invalid stream checksum")
	// ErrBlockType is returned for the reserved block type 3.
	ErrBlockType = errors.New("invalid block type")
	// ErrBlockElementCountParity is returned when a stored block's length
	// field is not the complement of its check field.
	ErrBlockElementCountParity = errors.New("invalid block element count parity")
	// ErrHuffmanRunLiteralSymbolCount is returned when HLIT is outside 257…286.
	ErrHuffmanRunLiteralSymbolCount = errors.New("invalid huffman run-literal symbol count")
	// ErrHuffmanCodelengthTable is returned when the code-length huffman table
	// itself is malformed.
	ErrHuffmanCodelengthTable = errors.New("invalid huffman codelength huffman table")
	// ErrHuffmanCodelengthSequence is returned when a repeat code appears
	// before any length, or the decoded lengths overflow HLIT + HDIST.
	ErrHuffmanCodelengthSequence = errors.New("invalid huffman codelength sequence")
	// ErrHuffmanTable is returned when the run-literal or distance table
	// recovered from a dynamic block is malformed.
	ErrHuffmanTable = errors.New("invalid huffman table")
	// ErrStringReference is returned when a back-reference distance exceeds
	// the bytes available in the output window.
	ErrStringReference = errors.New("invalid string reference")

	// ErrInputTooLarge is returned when InflateFromReader reads more than
	// MaxInputSize bytes. Callers can use errors.Is(err, zpix.ErrInputTooLarge).
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrOutputLimit is returned when the decompressed stream grows past
	// MaxOutputSize.
	ErrOutputLimit = errors.New("output exceeds MaxOutputSize")
)

// Sentinel errors for pixel unpacking.
var (
	// ErrUnsupportedColorStandard is returned for byte orders this core does
	// not implement (currently the BGRA/iOS variant).
	ErrUnsupportedColorStandard = errors.New("unsupported color standard")
	// ErrPaletteRequired is returned when an indexed format carries no palette.
	ErrPaletteRequired = errors.New("palette required for indexed format")
	// ErrPaletteIndexRange is returned when a sample indexes past the end of
	// the palette, or the palette itself is oversized for the declared depth.
	ErrPaletteIndexRange = errors.New("palette index out of range")
	// ErrTransparencyKeyArity is returned when the transparency key has the
	// wrong number of components for the pixel format.
	ErrTransparencyKeyArity = errors.New("invalid transparency key arity")
)
