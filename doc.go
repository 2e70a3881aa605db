// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

/*
Package zpix implements a streaming zlib/DEFLATE decompressor (RFC 1950 +
RFC 1951) and the pixel-unpacking kernels used to expand decompressed,
depth-packed PNG scanline payloads into typed RGBA samples.

The inflator is an incremental, resumable state machine: it accepts
compressed bytes in arbitrary chunks, suspends only at whole-token
boundaries, and verifies the trailing Adler-32. Preset dictionaries are
rejected, and the format itself caps windows at 32 KiB.

# Inflate

One-shot, from a byte slice:

	out, err := zpix.Inflate(compressed, nil)

Incremental, chunk by chunk:

	inf := zpix.NewInflator(nil)
	for _, chunk := range chunks {
		done, err := inf.Push(chunk)
		if err != nil {
			return err
		}
		out = append(out, inf.PullAll()...)
		if done {
			break
		}
	}

From an io.Reader (bounded by MaxInputSize if set):

	out, err := zpix.InflateFromReader(r, zpix.DefaultInflateOptions())

# Unpack

Expand a straightened scanline payload into RGBA records at a requested
precision. Source samples arrive one per byte for depths up to 8 and as
big-endian pairs for depth 16:

	format := zpix.Format{Kind: zpix.FormatRGBA8}
	pixels, err := zpix.Unpack[uint16](payload, format, zpix.StandardCommon)

PNG chunk framing, CRC-32 checks, filter reconstruction and interlacing are
the caller's concern; this package only sees the compressed stream and the
straightened scanline payload.
*/
package zpix
