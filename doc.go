// Package aiff2wav converts AIFF (big-endian PCM) files into WAV
// (little-endian PCM) files entirely in memory.
//
// The conversion keeps channel count, sample rate, bit depth and sample data
// exactly. 8, 16, 24 and 32-bit PCM are supported. Samples are rewritten in
// fixed 16-byte lane permutations; 24-bit data is processed in 48-byte
// blocks made of three permutations plus two seam swaps.
//
// Most callers only need Convert:
//
//	wavData, err := aiff2wav.Convert(aiffData)
//
// Parse and Transcode expose the two stages separately, and Options
// controls tail handling, 8-bit sign conversion and parallelism.
package aiff2wav
