package aiff2wav

const chunkHeaderSize = 8

// Chunk locates one top-level chunk of an AIFF FORM container.
type Chunk struct {
	ID [4]byte
	// Offset is the position of the chunk header in the file.
	Offset int
	// Size is the body size declared in the header, excluding the header.
	Size uint32
}

// BodyStart returns the offset of the first body byte.
func (c Chunk) BodyStart() int {
	return c.Offset + chunkHeaderSize
}

// End returns the offset right after the declared body, where the next
// chunk header starts. Only meaningful when the body fits the buffer.
func (c Chunk) End() int {
	return c.BodyStart() + int(c.Size)
}

func (c Chunk) String() string {
	return string(c.ID[:])
}
