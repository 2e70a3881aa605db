// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/zpix

package zpix

import (
	"fmt"

	"github.com/rs/zerolog"
)

// inflatorState tags the resumable decode position. Suspension happens only
// at whole-token boundaries: a handler that cannot complete a token returns
// without consuming bits, and the next Push resumes it.
type inflatorState int

const (
	stateStreamStart inflatorState = iota
	stateBlockStart
	stateBlockTables
	stateBlockUncompressed
	stateBlockCompressed
	stateStreamChecksum
	stateStreamEnd
)

// Inflator is an incremental zlib/DEFLATE decompressor. Push feeds it
// compressed bytes; Pull and PullAll drain decompressed bytes. It is not
// safe for concurrent use. After any error the session is dead and every
// later Push returns the same error.
type Inflator struct {
	input  bitstream
	b      int // bit cursor into input
	output outputWindow

	log       zerolog.Logger
	maxOutput int

	state inflatorState
	final bool

	// dynamic-table recovery scratch
	codelength *huffmanDecoder
	lengths    []uint8
	hlit       int
	hdist      int

	// compressed-block decoders (fixed or recovered)
	runliteral *huffmanDecoder
	distance   *huffmanDecoder

	// stored-block end offset in output space
	storedEnd int

	err error
}

// NewInflator returns an inflator ready for the stream header. opts may be nil.
func NewInflator(opts *InflateOptions) *Inflator {
	if opts == nil {
		opts = DefaultInflateOptions()
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	inf := &Inflator{log: log, maxOutput: opts.MaxOutputSize}
	inf.output.reset()
	return inf
}

// Push ingests compressed bytes and advances the state machine as far as the
// input allows. It returns (true, nil) once the trailing checksum has been
// verified, (false, nil) when more input is needed, or a fatal error.
func (inf *Inflator) Push(data []byte) (bool, error) {
	if inf.err != nil {
		return false, inf.err
	}
	if inf.state == stateStreamEnd {
		return true, nil
	}

	inf.input.rebase(data, &inf.b)
	for {
		ok, err := inf.advance()
		if err != nil {
			inf.err = err
			return false, err
		}

		if inf.maxOutput > 0 && inf.output.end > inf.maxOutput {
			inf.err = fmt.Errorf("%w: %d bytes produced, limit %d", ErrOutputLimit, inf.output.end, inf.maxOutput)
			return false, inf.err
		}

		if inf.state == stateStreamEnd {
			return true, nil
		}
		if !ok {
			return false, nil
		}
	}
}

// Pull returns exactly n decompressed bytes, or nil if fewer are retained.
func (inf *Inflator) Pull(n int) []byte {
	return inf.output.release(n)
}

// PullAll drains every retained decompressed byte.
func (inf *Inflator) PullAll() []byte {
	return inf.output.release(inf.output.retained())
}

// Retained returns the count of bytes produced but not yet released.
func (inf *Inflator) Retained() int {
	return inf.output.retained()
}

// advance runs one state handler. It returns false with a nil error when the
// handler needs more input; in that case the token it could not complete has
// consumed no bits.
func (inf *Inflator) advance() (bool, error) {
	switch inf.state {
	case stateStreamStart:
		return inf.advanceStreamStart()
	case stateBlockStart:
		return inf.advanceBlockStart()
	case stateBlockTables:
		return inf.advanceBlockTables()
	case stateBlockUncompressed:
		return inf.advanceBlockUncompressed()
	case stateBlockCompressed:
		return inf.advanceBlockCompressed()
	case stateStreamChecksum:
		return inf.advanceStreamChecksum()
	default:
		return false, nil
	}
}

// advanceStreamStart parses the 16-bit zlib header (RFC 1950).
func (inf *Inflator) advanceStreamStart() (bool, error) {
	if inf.b+16 > inf.input.limit() {
		return false, nil
	}

	cmf := inf.input.get(inf.b, 8)
	flg := inf.input.get(inf.b+8, 8)

	if method := cmf & 0xf; method != 8 {
		return false, fmt.Errorf("%w: method %d", ErrStreamMethod, method)
	}
	exponent := int(cmf >> 4)
	if exponent >= 8 {
		return false, fmt.Errorf("%w: exponent %d", ErrStreamWindowSize, exponent)
	}
	if (uint32(cmf)<<8|uint32(flg))%31 != 0 {
		return false, ErrStreamHeaderCheckBits
	}
	if flg&0x20 != 0 {
		return false, ErrStreamDictionary
	}

	inf.output.window = 1 << uint(8+exponent)
	inf.b += 16
	inf.state = stateBlockStart
	inf.log.Debug().Int("window", inf.output.window).Msg("stream header")
	return true, nil
}

// advanceBlockStart parses a 3-bit block header and, for dynamic blocks, the
// code-length table. All reads commit atomically.
func (inf *Inflator) advanceBlockStart() (bool, error) {
	limit := inf.input.limit()
	if inf.b+3 > limit {
		return false, nil
	}

	final := inf.input.get(inf.b, 1) == 1
	blockType := inf.input.get(inf.b+1, 2)

	switch blockType {
	case 0:
		// Stored: skip to the byte boundary, then LEN and its complement.
		aligned := (inf.b + 3 + 7) &^ 7
		if aligned+32 > limit {
			return false, nil
		}
		length := inf.input.get(aligned, 16)
		check := inf.input.get(aligned+16, 16)
		if length != ^check {
			return false, ErrBlockElementCountParity
		}

		inf.b = aligned + 32
		inf.final = final
		inf.storedEnd = inf.output.end + int(length)
		inf.state = stateBlockUncompressed
		inf.log.Debug().Bool("final", final).Uint16("length", length).Msg("stored block")

	case 1:
		inf.b += 3
		inf.final = final
		inf.runliteral = fixedRunLiteral
		inf.distance = fixedDistance
		inf.state = stateBlockCompressed
		inf.log.Debug().Bool("final", final).Msg("fixed block")

	case 2:
		pos := inf.b + 3
		if pos+14 > limit {
			return false, nil
		}
		hlit := 257 + int(inf.input.get(pos, 5))
		hdist := 1 + int(inf.input.get(pos+5, 5))
		hclen := 4 + int(inf.input.get(pos+10, 4))
		pos += 14
		if pos+3*hclen > limit {
			return false, nil
		}
		if hlit > 286 {
			return false, fmt.Errorf("%w: %d", ErrHuffmanRunLiteralSymbolCount, hlit)
		}

		var lengths [19]uint8
		for i := 0; i < hclen; i++ {
			lengths[codelengthOrder[i]] = uint8(inf.input.get(pos+3*i, 3))
		}
		decoder, ok := buildHuffmanDecoder(lengths[:])
		if !ok {
			return false, ErrHuffmanCodelengthTable
		}

		inf.b = pos + 3*hclen
		inf.final = final
		inf.codelength = decoder
		inf.hlit, inf.hdist = hlit, hdist
		inf.lengths = inf.lengths[:0]
		inf.state = stateBlockTables
		inf.log.Debug().Bool("final", final).
			Int("hlit", hlit).Int("hdist", hdist).Int("hclen", hclen).
			Msg("dynamic block")

	default:
		return false, ErrBlockType
	}

	return true, nil
}

// advanceBlockTables recovers the run-literal and distance code lengths of a
// dynamic block. Each code-length token commits independently, so the
// recovered prefix survives a suspension.
func (inf *Inflator) advanceBlockTables() (bool, error) {
	limit := inf.input.limit()
	total := inf.hlit + inf.hdist
	if cap(inf.lengths) < total {
		inf.lengths = append(make([]uint8, 0, total), inf.lengths...)
	}

	for len(inf.lengths) < total {
		entry := inf.codelength.lookup(reverse(inf.input.word(inf.b)))
		length := int(entry.length)

		switch symbol := entry.symbol; {
		case symbol < 16:
			if inf.b+length > limit {
				return false, nil
			}
			inf.lengths = append(inf.lengths, uint8(symbol))
			inf.b += length

		case symbol == codelengthExtend:
			if inf.b+length+2 > limit {
				return false, nil
			}
			if len(inf.lengths) == 0 {
				return false, fmt.Errorf("%w: repeat with no previous length", ErrHuffmanCodelengthSequence)
			}
			count := 3 + int(inf.input.get(inf.b+length, 2))
			if len(inf.lengths)+count > total {
				return false, fmt.Errorf("%w: %d lengths, limit %d", ErrHuffmanCodelengthSequence, len(inf.lengths)+count, total)
			}
			last := inf.lengths[len(inf.lengths)-1]
			for i := 0; i < count; i++ {
				inf.lengths = append(inf.lengths, last)
			}
			inf.b += length + 2

		case symbol == codelengthZeros3:
			if inf.b+length+3 > limit {
				return false, nil
			}
			count := 3 + int(inf.input.get(inf.b+length, 3))
			if len(inf.lengths)+count > total {
				return false, fmt.Errorf("%w: %d lengths, limit %d", ErrHuffmanCodelengthSequence, len(inf.lengths)+count, total)
			}
			inf.lengths = append(inf.lengths, make([]uint8, count)...)
			inf.b += length + 3

		default: // codelengthZeros7
			if inf.b+length+7 > limit {
				return false, nil
			}
			count := 11 + int(inf.input.get(inf.b+length, 7))
			if len(inf.lengths)+count > total {
				return false, fmt.Errorf("%w: %d lengths, limit %d", ErrHuffmanCodelengthSequence, len(inf.lengths)+count, total)
			}
			inf.lengths = append(inf.lengths, make([]uint8, count)...)
			inf.b += length + 7
		}
	}

	runliteral, ok := buildHuffmanDecoder(inf.lengths[:inf.hlit])
	if !ok {
		return false, ErrHuffmanTable
	}
	distance, ok := buildDistanceDecoder(inf.lengths[inf.hlit:])
	if !ok {
		return false, ErrHuffmanTable
	}

	inf.runliteral, inf.distance = runliteral, distance
	inf.codelength = nil
	inf.state = stateBlockCompressed
	return true, nil
}

// advanceBlockCompressed runs the token loop. Each token reads up to 48 bits
// ahead through the zero tail; the combined bit advance commits only after
// the whole token is confirmed inside the real input.
func (inf *Inflator) advanceBlockCompressed() (bool, error) {
	limit := inf.input.limit()

	for {
		entry := inf.runliteral.lookup(reverse(inf.input.word(inf.b)))
		length := int(entry.length)
		symbol := entry.symbol

		if symbol < endOfBlockSymbol {
			if inf.b+length > limit {
				return false, nil
			}
			inf.output.append(byte(symbol))
			inf.b += length
			continue
		}

		if symbol == endOfBlockSymbol {
			if inf.b+length > limit {
				return false, nil
			}
			inf.b += length
			inf.finishBlock()
			return true, nil
		}

		run := runDecades[symbol-257]
		pos := inf.b + length
		count := int(run.base) + int(inf.input.get(pos, run.extra))
		pos += run.extra

		distanceEntry := inf.distance.lookup(reverse(inf.input.word(pos)))
		pos += int(distanceEntry.length)
		dist := distanceDecades[distanceEntry.symbol]
		offset := int(dist.base) + int(inf.input.get(pos, dist.extra))
		pos += dist.extra

		if pos > limit {
			return false, nil
		}
		if available := inf.output.end - inf.output.start; offset > available {
			return false, fmt.Errorf("%w: distance %d, %d bytes available", ErrStringReference, offset, available)
		}

		inf.output.expand(offset, count)
		inf.b = pos
	}
}

// advanceBlockUncompressed copies stored-block bytes from the bit-aligned
// input until the block end.
func (inf *Inflator) advanceBlockUncompressed() (bool, error) {
	limit := inf.input.limit()
	for inf.output.end < inf.storedEnd {
		if inf.b+8 > limit {
			return false, nil
		}
		inf.output.append(byte(inf.input.get(inf.b, 8)))
		inf.b += 8
	}

	inf.finishBlock()
	return true, nil
}

func (inf *Inflator) finishBlock() {
	if inf.final {
		inf.state = stateStreamChecksum
	} else {
		inf.state = stateBlockStart
	}
}

// advanceStreamChecksum verifies the big-endian Adler-32 trailer.
func (inf *Inflator) advanceStreamChecksum() (bool, error) {
	aligned := (inf.b + 7) &^ 7
	if aligned+32 > inf.input.limit() {
		return false, nil
	}

	declared := uint32(inf.input.get(aligned, 8))<<24 |
		uint32(inf.input.get(aligned+8, 8))<<16 |
		uint32(inf.input.get(aligned+16, 8))<<8 |
		uint32(inf.input.get(aligned+24, 8))
	computed := inf.output.checksum()
	if declared != computed {
		return false, fmt.Errorf("%w: declared %08x, computed %08x", ErrStreamChecksum, declared, computed)
	}

	inf.b = aligned + 32
	inf.state = stateStreamEnd
	inf.log.Debug().Int("bytes", inf.output.end).Msg("stream checksum verified")
	return true, nil
}
