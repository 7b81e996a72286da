package aiff2wav

import (
	"fmt"
	"math"
	"time"

	"github.com/go-audio/audio"
)

// BitDepth is one of the PCM sample widths the transcoder handles.
type BitDepth int

const (
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
	Depth24 BitDepth = 24
	Depth32 BitDepth = 32
)

func newBitDepth(bits int) (BitDepth, error) {
	switch BitDepth(bits) {
	case Depth8, Depth16, Depth24, Depth32:
		return BitDepth(bits), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}
}

// BytesPerSample returns the storage width of a single sample.
func (b BitDepth) BytesPerSample() int {
	return int(b) / 8
}

// blockSize is the number of bytes handled by one permutation step.
func (b BitDepth) blockSize() int {
	if b == Depth24 {
		return block24Size
	}

	return laneWidth
}

// Format holds the parameters read from the AIFF COMM chunk.
type Format struct {
	NumChans     int
	BitDepth     int
	SampleFrames int
	SampleRate   float64
}

// TotalSampleBytes is the size of the interleaved PCM payload.
func (f Format) TotalSampleBytes() int {
	return f.SampleFrames * f.NumChans * f.BitDepth / 8
}

// sampleBytes is TotalSampleBytes computed without int overflow. Only
// meaningful for a validated format.
func (f Format) sampleBytes() uint64 {
	return uint64(f.SampleFrames) * uint64(f.NumChans) * uint64(f.BitDepth) / 8
}

// BlockAlign is the number of bytes per sample frame.
func (f Format) BlockAlign() int {
	return f.NumChans * f.BitDepth / 8
}

// ByteRate is the average number of bytes per second, computed on the
// truncated integer sample rate the way the WAV header stores it.
func (f Format) ByteRate() uint32 {
	return uint32(f.byteRate())
}

func (f Format) byteRate() uint64 {
	return uint64(uint32(f.SampleRate)) * uint64(f.NumChans) * uint64(f.BitDepth) / 8
}

// Duration returns the playback time of the sample frames.
func (f Format) Duration() time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(f.SampleFrames) / f.SampleRate * float64(time.Second))
}

// AudioFormat returns the go-audio description of the format.
func (f Format) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: f.NumChans,
		SampleRate:  int(f.SampleRate),
	}
}

// String implements the Stringer interface.
func (f Format) String() string {
	return fmt.Sprintf("Format: AIFF - %d channels @ %d / %d bits - Duration: %f seconds",
		f.NumChans, int(f.SampleRate), f.BitDepth, f.Duration().Seconds())
}

func (f Format) validate() error {
	if f.NumChans < 1 {
		return fmt.Errorf("%w: channel count %d", ErrMalformedContainer, f.NumChans)
	}

	if f.SampleFrames < 0 {
		return fmt.Errorf("%w: sample frame count %d", ErrMalformedContainer, f.SampleFrames)
	}

	if math.IsNaN(f.SampleRate) || f.SampleRate < 0 || f.SampleRate > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %v", ErrMalformedContainer, f.SampleRate)
	}

	_, err := newBitDepth(f.BitDepth)

	return err
}
