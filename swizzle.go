package aiff2wav

const (
	laneWidth   = 16
	block24Size = 3 * laneWidth
)

// Lane permutations reversing big-endian samples into little-endian order.
// Entry i names the source byte written to output lane i.
var (
	be16Pattern = [laneWidth]byte{
		1, 0, 3, 2,
		5, 4, 7, 6,
		9, 8, 11, 10,
		13, 12, 15, 14,
	}

	be32Pattern = [laneWidth]byte{
		3, 2, 1, 0,
		7, 6, 5, 4,
		11, 10, 9, 8,
		15, 14, 13, 12,
	}

	// 24-bit samples straddle the 16-byte lanes, so a 48-byte block is
	// split into three lanes with their own pattern. Bytes that belong to a
	// sample crossing a lane edge are kept in place and fixed by seam swaps.

	// Samples 0-4 reversed, byte 15 (first byte of sample 5) kept.
	be24Pattern1 = [laneWidth]byte{
		2, 1, 0,
		5, 4, 3,
		8, 7, 6,
		11, 10, 9,
		14, 13, 12,
		15,
	}

	// Bytes 16-17 (rest of sample 5) kept, samples 6-9 reversed, bytes
	// 30-31 (start of sample 10) kept.
	be24Pattern2 = [laneWidth]byte{
		0, 1,
		4, 3, 2,
		7, 6, 5,
		10, 9, 8,
		13, 12, 11,
		14, 15,
	}

	// Byte 32 (end of sample 10) kept, samples 11-15 reversed.
	be24Pattern3 = [laneWidth]byte{
		0,
		3, 2, 1,
		6, 5, 4,
		9, 8, 7,
		12, 11, 10,
		15, 14, 13,
	}
)

// Output positions swapped after the three 24-bit lanes are written. Each
// pair is the outer bytes of the sample crossing a lane edge.
var seams24 = [2][2]int{
	{15, 17},
	{30, 32},
}

// shuffle writes src permuted by pattern into dst.
func shuffle(dst, src, pattern *[laneWidth]byte) {
	for i, p := range pattern {
		dst[i] = src[p]
	}
}

func copy8(dst, src *[laneWidth]byte) {
	*dst = *src
}

// offsetBinary8 converts signed 8-bit samples to unsigned ones.
func offsetBinary8(dst, src *[laneWidth]byte) {
	for i, b := range src {
		dst[i] = b ^ 0x80
	}
}

func swap16(dst, src *[laneWidth]byte) {
	shuffle(dst, src, &be16Pattern)
}

func swap32(dst, src *[laneWidth]byte) {
	shuffle(dst, src, &be32Pattern)
}

func swap24(dst, src *[block24Size]byte) {
	shuffle((*[laneWidth]byte)(dst[0:16]), (*[laneWidth]byte)(src[0:16]), &be24Pattern1)
	shuffle((*[laneWidth]byte)(dst[16:32]), (*[laneWidth]byte)(src[16:32]), &be24Pattern2)
	shuffle((*[laneWidth]byte)(dst[32:48]), (*[laneWidth]byte)(src[32:48]), &be24Pattern3)

	for _, s := range seams24 {
		dst[s[0]], dst[s[1]] = dst[s[1]], dst[s[0]]
	}
}

// reverseSamples reverses the byte order of every whole sample in src.
// It handles the bytes that don't fill a complete permutation block.
func reverseSamples(dst, src []byte, bytesPerSample int, unsigned8 bool) {
	if bytesPerSample == 1 {
		if !unsigned8 {
			copy(dst, src)
			return
		}

		for i, b := range src {
			dst[i] = b ^ 0x80
		}

		return
	}

	for i := 0; i+bytesPerSample <= len(src); i += bytesPerSample {
		for j := 0; j < bytesPerSample; j++ {
			dst[i+j] = src[i+bytesPerSample-1-j]
		}
	}
}
