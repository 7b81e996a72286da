package aiff2wav

import "errors"

var (
	// ErrMalformedContainer is returned when the AIFF buffer is too short for
	// a chunk it declares, lacks the COMM or SSND chunk, or carries
	// impossible format values.
	ErrMalformedContainer = errors.New("malformed AIFF container")
	// ErrUnsupportedSSNDLayout is returned when the SSND sample length
	// doesn't match the COMM frame count, which happens when the SSND offset
	// or blockSize fields are in use.
	ErrUnsupportedSSNDLayout = errors.New("unsupported SSND layout")
	// ErrUnsupportedBitDepth is returned for sample sizes other than 8, 16,
	// 24 and 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrUnalignedTail is returned in strict mode when the sample data
	// doesn't end on a permutation block boundary.
	ErrUnalignedTail = errors.New("sample data not aligned to block size")
)

// Convert turns a complete AIFF file into a complete WAV file with the same
// channels, sample rate, bit depth and samples. aiffData is not modified.
// On error no output is returned.
func Convert(aiffData []byte) ([]byte, error) {
	return ConvertWithOptions(aiffData, nil)
}

// ConvertWithOptions is like Convert with tunable tail handling, 8-bit
// sign conversion and parallelism.
func ConvertWithOptions(aiffData []byte, opts *Options) ([]byte, error) {
	format, region, err := Parse(aiffData)
	if err != nil {
		return nil, err
	}

	return Transcode(format, region.Bytes(aiffData), opts)
}
