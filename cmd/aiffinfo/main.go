// This tool prints the format and chunk layout of the passed aiff file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/aiff2wav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	chunks, err := aiff2wav.ScanChunks(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Chunks: %d\n", len(chunks))

	for i, c := range chunks {
		fmt.Fprintf(out, "\tchunk [%d]:\t%s offset=%d size=%d\n", i, c, c.Offset, c.Size)
	}

	format, region, err := aiff2wav.Parse(data)
	if err != nil {
		// the chunk listing above is still useful for unconvertible files
		fmt.Fprintf(out, "Not convertible: %v\n", err)
		return nil
	}

	fmt.Fprintln(out, format)
	fmt.Fprintf(out, "Sample frames: %d\n", format.SampleFrames)
	fmt.Fprintf(out, "Samples: offset=%d length=%d\n", region.Offset, region.Length)
	fmt.Fprintf(out, "WAV size: %d\n", aiff2wav.HeaderSize+region.Length)

	return nil
}
