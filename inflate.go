// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

import (
	"io"

	"github.com/pkg/errors"
)

// Inflate decompresses a complete zlib stream from src. Returns
// ErrTruncatedBitstream if the stream ends before the trailing checksum.
// Trailing bytes after the stream are ignored.
func Inflate(src []byte, opts *InflateOptions) ([]byte, error) {
	inf := NewInflator(opts)

	done, err := inf.Push(src)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrTruncatedBitstream
	}

	return inf.PullAll(), nil
}

// inflateReaderChunk is the read granularity of InflateFromReader. Pulling
// after every chunk keeps the resident window bounded for large streams.
const inflateReaderChunk = 1 << 15

// InflateFromReader decompresses a zlib stream read incrementally from r.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func InflateFromReader(r io.Reader, opts *InflateOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultInflateOptions()
	}

	inf := NewInflator(opts)
	chunk := make([]byte, inflateReaderChunk)

	var out []byte
	total := 0
	for {
		n, readErr := r.Read(chunk)
		total += n
		if opts.MaxInputSize > 0 && total > opts.MaxInputSize {
			return nil, ErrInputTooLarge
		}

		if n > 0 {
			done, err := inf.Push(chunk[:n])
			if err != nil {
				return nil, err
			}
			if produced := inf.PullAll(); len(produced) > 0 {
				out = append(out, produced...)
			}
			if done {
				return out, nil
			}
		}

		if readErr == io.EOF {
			return nil, ErrTruncatedBitstream
		}
		if readErr != nil {
			return nil, errors.Wrap(readErr, "read compressed stream")
		}
	}
}
