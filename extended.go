package aiff2wav

import (
	"encoding/binary"
	"math"
)

const extendedBias = 16383

// DecodeExtended converts a big-endian 80-bit IEEE 754 extended precision
// value, as stored in the AIFF COMM chunk, into a float64.
//
// The 64-bit mantissa carries an explicit integer bit, so it is read as a
// fixed-point number with 63 fractional bits.
func DecodeExtended(b [10]byte) float64 {
	exponent := int(binary.BigEndian.Uint16(b[0:2])&0x7FFF) - extendedBias
	mantissa := binary.BigEndian.Uint64(b[2:10])

	value := math.Ldexp(float64(mantissa), exponent-63)
	if b[0]&0x80 != 0 {
		return -value
	}

	return value
}
