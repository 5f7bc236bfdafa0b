// Command eqwav filters WAV audio files through a parametric EQ.
//
// Usage:
//
//	eqwav -band 3:bell:1000:2:6 input.wav output.wav
//	eqwav -band 0:highpass:40:0.707:0 -band 6:lowpass:15000:0.707:0 in.wav out.wav
//	eqwav -v -band 1:lowshelf:100:0.707:4 input.wav output.wav
//
// Each -band flag configures and enables one band as index:type:freq:q:gain.
// Every channel of the input runs through its own instance of the same EQ
// configuration, so stereo and multichannel files keep their imaging.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/internal/bandspec"
)

const (
	// Samples per channel read and processed per chunk.
	bufferSize = 65536

	minRequiredArgs = 2

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	wavAudioFormatPCM = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var bands bandspec.List
	flag.Var(&bands, "band", "band spec index:type:freq:q:gain (repeatable)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -band 3:bell:1000:2:6 input.wav output.wav\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -band 0:highpass:40:0.707:0 -band 6:lowpass:15000:0.707:0 in.wav out.wav\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	if len(bands) == 0 {
		return fmt.Errorf("at least one -band flag is required")
	}

	inputPath := args[0]
	outputPath := args[1]

	start := time.Now()
	stats, err := filterWAV(inputPath, outputPath, bands, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d bands\n",
		stats.rate, stats.channels, stats.bitDepth, len(bands))
	fmt.Printf("  %d samples, %.2fs, %.1fx realtime\n",
		stats.samples,
		elapsed.Seconds(),
		float64(stats.samples)/float64(stats.rate)/elapsed.Seconds())

	return nil
}

type filterStats struct {
	rate     int
	channels int
	bitDepth int
	samples  int64
}

func filterWAV(inputPath, outputPath string, bands bandspec.List, verbose bool) (stats *filterStats, err error) {
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	equalizers := make([]*eq.Parametric, input.channels)
	for ch := range equalizers {
		p := eq.New(core.WithSampleRate(float64(input.rate)))
		bands.Apply(p)
		equalizers[ch] = p
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	encoder := wav.NewEncoder(outputFile, input.rate, input.bitDepth, input.channels, wavAudioFormatPCM)
	defer func() {
		if closeErr := encoder.Close(); err == nil {
			err = closeErr
		}
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	maxVal := maxValueForBitDepth(input.bitDepth)
	invMaxVal := 1.0 / maxVal

	intBuffer := &audio.IntBuffer{
		Data:   make([]int, bufferSize*input.channels),
		Format: input.format,
	}
	channelBufs := make([][]float64, input.channels)
	for ch := range channelBufs {
		channelBufs[ch] = make([]float64, bufferSize)
	}

	stats = &filterStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}

	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		// PCMBuffer reports interleaved sample count, not frames.
		frames := n / input.channels
		data := intBuffer.Data[:frames*input.channels]
		stats.samples += int64(frames)

		deinterleave(data, channelBufs, input.channels, frames, invMaxVal)

		for ch, p := range equalizers {
			buf := channelBufs[ch][:frames]
			p.ProcessBlock(buf, buf)
		}

		interleave(channelBufs, data, input.channels, frames, maxVal)

		chunk := &audio.IntBuffer{
			Data:           data,
			Format:         input.format,
			SourceBitDepth: input.bitDepth,
		}
		if err := encoder.Write(chunk); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}
	}

	return stats, nil
}
