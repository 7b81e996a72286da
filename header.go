package aiff2wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// HeaderSize is the size of the RIFF, fmt and data chunk headers written
// in front of the sample payload.
const HeaderSize = 44

// headerWriter serializes the WAV header fields in little endian order.
type headerWriter struct {
	buf          *bytes.Buffer
	WrittenBytes int
}

func newHeaderWriter() *headerWriter {
	return &headerWriter{buf: bytes.NewBuffer(make([]byte, 0, HeaderSize))}
}

// AddLE serializes and adds the passed value using little endian.
func (w *headerWriter) AddLE(src any) error {
	w.WrittenBytes += binary.Size(src)

	err := binary.Write(w.buf, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// buildHeader returns the 44-byte WAV header for a payload of
// f.TotalSampleBytes() bytes.
func buildHeader(f Format) ([]byte, error) {
	dataSize := f.TotalSampleBytes()
	if uint64(dataSize)+HeaderSize-8 > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d sample bytes don't fit a RIFF container", ErrMalformedContainer, dataSize)
	}

	if f.BlockAlign() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: block align %d doesn't fit the fmt chunk", ErrMalformedContainer, f.BlockAlign())
	}

	if f.byteRate() > math.MaxUint32 {
		return nil, fmt.Errorf("%w: byte rate %d doesn't fit the fmt chunk", ErrMalformedContainer, f.byteRate())
	}

	w := newHeaderWriter()
	chunk := NewFmtChunk(f)

	fields := []struct {
		name  string
		value any
	}{
		{"riff ID", riff.RiffID},
		{"file size", uint32(dataSize + HeaderSize - 8)},
		{"wave ID", riff.WavFormatID},
		{"fmt ID", riff.FmtID},
		{"fmt size", uint32(fmtChunkSize)},
		{"format tag", chunk.FormatTag},
		{"number of channels", chunk.NumChannels},
		{"sample rate", chunk.SampleRate},
		{"avg bytes per sec", chunk.AvgBytesPerSec},
		{"block align", chunk.BlockAlign},
		{"bits per sample", chunk.BitsPerSample},
		{"data ID", riff.DataFormatID},
		{"data size", uint32(dataSize)},
	}

	for _, field := range fields {
		err := w.AddLE(field.value)
		if err != nil {
			return nil, fmt.Errorf("error encoding the %s - %w", field.name, err)
		}
	}

	if w.WrittenBytes != HeaderSize {
		return nil, fmt.Errorf("wrote a %d byte header, expected %d", w.WrittenBytes, HeaderSize)
	}

	return w.buf.Bytes(), nil
}
