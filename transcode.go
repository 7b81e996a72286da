package aiff2wav

import (
	"fmt"
	"sync"
)

// Options tunes a conversion. A nil *Options uses the zero value.
type Options struct {
	// StrictBlocks rejects payloads whose length isn't a whole number of
	// permutation blocks (16 bytes, 48 for 24-bit) with ErrUnalignedTail
	// instead of converting the trailing samples one by one.
	StrictBlocks bool
	// OffsetBinary8 flips the sign bit of 8-bit samples so signed AIFF
	// data plays back as unsigned WAV data. By default 8-bit samples are
	// copied unchanged.
	OffsetBinary8 bool
	// Workers splits the whole blocks into that many contiguous ranges
	// converted concurrently. Values below 2 convert serially.
	Workers int
}

// Transcode builds a WAV file from the format parameters and the
// big-endian sample bytes of an AIFF file. samples must hold exactly
// f.TotalSampleBytes() bytes. The returned buffer is newly allocated and
// HeaderSize+len(samples) bytes long.
func Transcode(f Format, samples []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}

	depth, err := newBitDepth(f.BitDepth)
	if err != nil {
		return nil, err
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	total64 := f.sampleBytes()
	if uint64(len(samples)) != total64 {
		return nil, fmt.Errorf("%w: got %d sample bytes, format describes %d",
			ErrMalformedContainer, len(samples), total64)
	}

	total := len(samples)

	blockSize := depth.blockSize()
	whole := total - total%blockSize

	if opts.StrictBlocks && whole != total {
		return nil, fmt.Errorf("%w: %d trailing bytes at sample offset %d don't fill a %d byte block",
			ErrUnalignedTail, total-whole, whole, blockSize)
	}

	header, err := buildHeader(f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+total)
	copy(out, header)

	payload := out[HeaderSize:]
	unsigned8 := opts.OffsetBinary8 && depth == Depth8

	convertBlocks(payload[:whole], samples[:whole], blockSize, opts.Workers, depth.blockConverter(unsigned8))
	reverseSamples(payload[whole:], samples[whole:], depth.BytesPerSample(), unsigned8)

	return out, nil
}

// blockConverter returns the function converting a run of whole blocks for
// the bit depth.
func (b BitDepth) blockConverter(unsigned8 bool) func(dst, src []byte) {
	switch b {
	case Depth8:
		if unsigned8 {
			return lanes(offsetBinary8)
		}

		return lanes(copy8)
	case Depth16:
		return lanes(swap16)
	case Depth24:
		return blocks24
	default:
		return lanes(swap32)
	}
}

func lanes(fn func(dst, src *[laneWidth]byte)) func(dst, src []byte) {
	return func(dst, src []byte) {
		for i := 0; i+laneWidth <= len(src); i += laneWidth {
			fn((*[laneWidth]byte)(dst[i:i+laneWidth]), (*[laneWidth]byte)(src[i:i+laneWidth]))
		}
	}
}

func blocks24(dst, src []byte) {
	for i := 0; i+block24Size <= len(src); i += block24Size {
		swap24((*[block24Size]byte)(dst[i:i+block24Size]), (*[block24Size]byte)(src[i:i+block24Size]))
	}
}

// convertBlocks runs fn over src in up to workers contiguous ranges. Blocks
// never alias, so the output doesn't depend on the number of workers.
func convertBlocks(dst, src []byte, blockSize, workers int, fn func(dst, src []byte)) {
	blocks := len(src) / blockSize
	if workers < 2 || blocks < 2 {
		fn(dst, src)
		return
	}

	workers = min(workers, blocks)
	perWorker := (blocks + workers - 1) / workers

	var wg sync.WaitGroup

	for start := 0; start < blocks; start += perWorker {
		lo := start * blockSize
		hi := min(start+perWorker, blocks) * blockSize

		wg.Add(1)

		go func() {
			defer wg.Done()
			fn(dst[lo:hi], src[lo:hi])
		}()
	}

	wg.Wait()
}
