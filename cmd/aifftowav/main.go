// This tool converts an aiff file into an identical wav file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/aiff2wav"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("aifftowav", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the aiff file to convert to wav")
	out := flagSet.String("out", "", "The wav file to write, defaults to the source path with a .wav extension")
	strict := flagSet.Bool("strict", false, "fail when the sample data doesn't end on a whole permutation block")
	workers := flagSet.Int("workers", 1, "number of goroutines converting sample blocks")
	unsigned8 := flagSet.Bool("unsigned8", false, "flip the sign bit of 8-bit samples")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}

	wavData, err := aiff2wav.ConvertWithOptions(data, &aiff2wav.Options{
		StrictBlocks:  *strict,
		OffsetBinary8: *unsigned8,
		Workers:       *workers,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", sourcePath, err)
	}

	outPath := *out
	if outPath == "" {
		outPath = sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".wav"
	}

	err = os.WriteFile(outPath, wavData, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	log.Printf("Aiff file converted to %s", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
