package aiff2wav

import (
	"encoding/binary"
	"fmt"
)

const formHeaderSize = 12

var (
	formID = [4]byte{'F', 'O', 'R', 'M'}
	aiffID = [4]byte{'A', 'I', 'F', 'F'}
)

// SampleRegion is the extent of the interleaved big-endian PCM bytes
// inside the AIFF buffer.
type SampleRegion struct {
	Offset int
	Length int
}

// Bytes returns the region as a sub-slice of aiffData. The slice capacity
// is clipped so appends can't reach into the rest of the file.
func (r SampleRegion) Bytes(aiffData []byte) []byte {
	end := r.Offset + r.Length
	return aiffData[r.Offset:end:end]
}

type parseState struct {
	data []byte

	format  Format
	hasComm bool

	ssndSize    uint64
	ssndOffset  int
	sampleStart int
	hasSSND     bool
}

// Parse scans the top-level chunks of an AIFF file and returns the format
// parameters from the COMM chunk together with the location of the sample
// bytes in the SSND chunk. When a chunk type appears more than once the
// last occurrence wins.
//
// The buffer is never modified.
func Parse(aiffData []byte) (Format, SampleRegion, error) {
	st := &parseState{data: aiffData}
	registry := newDefaultChunkRegistry()

	err := walkChunks(aiffData, func(ch Chunk) error {
		_, err := registry.Decode(st, ch)
		return err
	})
	if err != nil {
		return Format{}, SampleRegion{}, err
	}

	if !st.hasComm {
		return Format{}, SampleRegion{}, fmt.Errorf("%w: COMM chunk not found", ErrMalformedContainer)
	}

	if !st.hasSSND {
		return Format{}, SampleRegion{}, fmt.Errorf("%w: SSND chunk not found", ErrMalformedContainer)
	}

	if err := st.format.validate(); err != nil {
		return Format{}, SampleRegion{}, err
	}

	total := st.format.sampleBytes()
	if total != st.ssndSize {
		return Format{}, SampleRegion{}, fmt.Errorf(
			"%w: SSND chunk at offset %d holds %d sample bytes, COMM describes %d",
			ErrUnsupportedSSNDLayout, st.ssndOffset, st.ssndSize, total)
	}

	if uint64(st.sampleStart)+total > uint64(len(aiffData)) {
		return Format{}, SampleRegion{}, fmt.Errorf(
			"%w: sample data [%d, %d) runs past the end of the %d byte file",
			ErrMalformedContainer, st.sampleStart, uint64(st.sampleStart)+total, len(aiffData))
	}

	return st.format, SampleRegion{Offset: st.sampleStart, Length: int(total)}, nil
}

// ScanChunks lists the top-level chunks of an AIFF file in file order.
func ScanChunks(aiffData []byte) ([]Chunk, error) {
	var chunks []Chunk

	err := walkChunks(aiffData, func(ch Chunk) error {
		chunks = append(chunks, ch)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

// walkChunks validates the FORM header and calls fn for every chunk header
// found from offset 12 onwards. Each step advances by exactly 8+size bytes.
func walkChunks(aiffData []byte, fn func(Chunk) error) error {
	if len(aiffData) < formHeaderSize {
		return fmt.Errorf("%w: %d bytes is too short for a FORM header", ErrMalformedContainer, len(aiffData))
	}

	if [4]byte(aiffData[0:4]) != formID {
		return fmt.Errorf("%w: missing FORM tag, got %q", ErrMalformedContainer, aiffData[0:4])
	}

	if [4]byte(aiffData[8:12]) != aiffID {
		return fmt.Errorf("%w: form type %q is not AIFF", ErrMalformedContainer, aiffData[8:12])
	}

	for offset := formHeaderSize; offset < len(aiffData); {
		if offset+chunkHeaderSize > len(aiffData) {
			return fmt.Errorf("%w: truncated chunk header at offset %d", ErrMalformedContainer, offset)
		}

		ch := Chunk{
			ID:     [4]byte(aiffData[offset : offset+4]),
			Offset: offset,
			Size:   binary.BigEndian.Uint32(aiffData[offset+4 : offset+8]),
		}

		if err := fn(ch); err != nil {
			return err
		}

		// a body declared past the end of the buffer is the last chunk
		if uint64(ch.Size) > uint64(len(aiffData)-ch.BodyStart()) {
			break
		}

		offset = ch.End()
	}

	return nil
}
