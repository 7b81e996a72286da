package aiff2wav

import (
	"encoding/binary"

	"github.com/go-audio/audio"
)

type testChunk struct {
	id   string
	data []byte
}

func commBody(numChans, frames, bitDepth, sampleRate int) []byte {
	body := make([]byte, commBodySize)
	binary.BigEndian.PutUint16(body[0:2], uint16(numChans))
	binary.BigEndian.PutUint32(body[2:6], uint32(frames))
	binary.BigEndian.PutUint16(body[6:8], uint16(bitDepth))

	rate := audio.IntToIEEEFloat(sampleRate)
	copy(body[8:18], rate[:])

	return body
}

// ssndBody prefixes samples with zero offset and blockSize fields.
func ssndBody(samples []byte) []byte {
	return append(make([]byte, ssndHeaderSize), samples...)
}

// buildAIFF lays out chunks back to back after a FORM/AIFF header, without
// pad bytes.
func buildAIFF(chunks ...testChunk) []byte {
	body := []byte("AIFF")

	for _, ch := range chunks {
		body = append(body, ch.id...)
		body = binary.BigEndian.AppendUint32(body, uint32(len(ch.data)))
		body = append(body, ch.data...)
	}

	out := []byte("FORM")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

// makeAIFF builds a minimal COMM + SSND file holding samples.
func makeAIFF(numChans, bitDepth, sampleRate int, samples []byte) []byte {
	frames := len(samples) / (numChans * bitDepth / 8)

	return buildAIFF(
		testChunk{id: "COMM", data: commBody(numChans, frames, bitDepth, sampleRate)},
		testChunk{id: "SSND", data: ssndBody(samples)},
	)
}

// markerBytes returns n bytes where neighbouring values always differ.
func markerBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 1)
	}

	return out
}

// naiveReverse reverses every bytesPerSample group of src.
func naiveReverse(src []byte, bytesPerSample int) []byte {
	out := make([]byte, len(src))
	for i := 0; i < len(src); i += bytesPerSample {
		for j := 0; j < bytesPerSample; j++ {
			out[i+j] = src[i+bytesPerSample-1-j]
		}
	}

	return out
}
