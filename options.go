// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/zpix

package zpix

import "github.com/rs/zerolog"

// InflateOptions configures decompression. The zero value is usable; all
// fields are optional.
type InflateOptions struct {
	// Logger receives structured debug events at stream and block boundaries
	// (nil = no logging).
	Logger *zerolog.Logger
	// MaxInputSize limits how many bytes InflateFromReader may read (0 = no limit).
	MaxInputSize int
	// MaxOutputSize limits the total decompressed size (0 = no limit). Guards
	// against expansion bombs when the caller does not know the output size.
	MaxOutputSize int
}

// DefaultInflateOptions returns options with no limits and no logging.
func DefaultInflateOptions() *InflateOptions {
	return &InflateOptions{}
}
