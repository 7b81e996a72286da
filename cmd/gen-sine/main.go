// This tool writes a sine test tone as an aiff file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/aiff2wav"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.aif", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	bitDepth := flagSet.Int("bits", 16, "bit depth (8, 16, 24 or 32)")
	numChans := flagSet.Int("channels", 1, "number of channels")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	switch *bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", *bitDepth)
	}

	if *numChans < 1 || *sampleRate < 1 {
		return fmt.Errorf("invalid format: %d channels @ %d Hz", *numChans, *sampleRate)
	}

	log.Printf("generating a %f sec sine aiff at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}
	defer file.Close()

	enc := aiff.NewEncoder(file, *sampleRate, *bitDepth, *numChans)

	err = enc.Write(sineBuffer(*frequency, *length, *sampleRate, *bitDepth, *numChans))
	if err != nil {
		return err
	}

	return enc.Close()
}

// sineBuffer renders the tone at 90% of full scale, same value on every
// channel of a frame.
func sineBuffer(frequency, length float64, sampleRate, bitDepth, numChans int) *audio.IntBuffer {
	format := aiff2wav.Format{
		NumChans:     numChans,
		BitDepth:     bitDepth,
		SampleFrames: int(float64(sampleRate) * length),
		SampleRate:   float64(sampleRate),
	}
	numFrames := format.SampleFrames
	peak := 0.9 * float64(int64(1)<<(bitDepth-1)-1)

	buf := &audio.IntBuffer{
		Format:         format.AudioFormat(),
		SourceBitDepth: bitDepth,
		Data:           make([]int, numFrames*numChans),
	}

	for i := 0; i < numFrames; i++ {
		v := int(math.Round(peak * math.Sin(float64(i)/float64(sampleRate)*frequency*2*math.Pi)))
		for ch := 0; ch < numChans; ch++ {
			buf.Data[i*numChans+ch] = v
		}
	}

	return buf
}
