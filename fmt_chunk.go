package aiff2wav

const (
	wavFormatPCM = 1
	fmtChunkSize = 16
)

// FmtChunk stores the fields of a canonical 16-byte PCM WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// NewFmtChunk derives the WAV fmt chunk describing f. The sample rate is
// truncated to an integer.
func NewFmtChunk(f Format) *FmtChunk {
	return &FmtChunk{
		FormatTag:      wavFormatPCM,
		NumChannels:    uint16(f.NumChans),
		SampleRate:     uint32(f.SampleRate),
		AvgBytesPerSec: f.ByteRate(),
		BlockAlign:     uint16(f.BlockAlign()),
		BitsPerSample:  uint16(f.BitDepth),
	}
}
