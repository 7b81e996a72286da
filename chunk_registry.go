package aiff2wav

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/aiff"
)

const (
	commBodySize   = 18
	ssndHeaderSize = 8
)

// chunkHandler decodes one kind of AIFF chunk into the parse state.
type chunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(st *parseState, ch Chunk) error
}

// chunkRegistry resolves chunks to handlers.
type chunkRegistry struct {
	handlers []chunkHandler
}

func newDefaultChunkRegistry() *chunkRegistry {
	return &chunkRegistry{
		handlers: []chunkHandler{
			&commChunkHandler{},
			&ssndChunkHandler{},
		},
	}
}

// Decode dispatches a chunk to the first matching handler.
func (r *chunkRegistry) Decode(st *parseState, ch Chunk) (bool, error) {
	for _, handler := range r.handlers {
		if handler.CanHandle(ch.ID) {
			return true, handler.Decode(st, ch)
		}
	}

	return false, nil
}

type commChunkHandler struct{}

func (h *commChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == aiff.COMMID
}

func (h *commChunkHandler) Decode(st *parseState, ch Chunk) error {
	body := ch.BodyStart()
	if ch.Size < commBodySize || body+commBodySize > len(st.data) {
		return fmt.Errorf("%w: COMM chunk at offset %d is shorter than %d bytes",
			ErrMalformedContainer, ch.Offset, chunkHeaderSize+commBodySize)
	}

	comm := st.data[body : body+commBodySize]

	var rate [10]byte
	copy(rate[:], comm[8:18])

	st.format = Format{
		NumChans:     int(binary.BigEndian.Uint16(comm[0:2])),
		SampleFrames: int(binary.BigEndian.Uint32(comm[2:6])),
		BitDepth:     int(binary.BigEndian.Uint16(comm[6:8])),
		SampleRate:   DecodeExtended(rate),
	}
	st.hasComm = true

	return nil
}

type ssndChunkHandler struct{}

func (h *ssndChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == aiff.SSNDID
}

// Decode records the sample extent. The offset and blockSize fields are
// assumed to be zero; a mismatch shows up in the post-scan size check.
func (h *ssndChunkHandler) Decode(st *parseState, ch Chunk) error {
	if ch.Size < ssndHeaderSize {
		return fmt.Errorf("%w: SSND chunk at offset %d declares %d bytes",
			ErrMalformedContainer, ch.Offset, ch.Size)
	}

	st.ssndSize = uint64(ch.Size) - ssndHeaderSize
	st.sampleStart = ch.BodyStart() + ssndHeaderSize
	st.ssndOffset = ch.Offset
	st.hasSSND = true

	return nil
}
