// Command eqinfo prints the band table and magnitude response of a
// parametric EQ configuration.
//
// Usage:
//
//	eqinfo [flags] [band-spec ...]
//
// A band-spec configures and enables one band as index:type:freq:q:gain,
// for example 3:bell:1000:2:6. Without arguments it prints the default
// band layout.
//
// Examples:
//
//	eqinfo
//	eqinfo 3:bell:1000:2:6
//	eqinfo -rate 96000 0:highpass:40:0.707:0 6:lowpass:15000:0.707:0
//	eqinfo -fft 4096 3:bell:1000:2:6
//	eqinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/internal/bandspec"
	"github.com/cwbudde/algo-eq/measure/frequency"
)

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	points := flag.Int("points", 31, "number of log-spaced response points")
	minFreq := flag.Float64("min", 20, "lowest response frequency in Hz")
	maxFreq := flag.Float64("max", 20000, "highest response frequency in Hz")
	fftSize := flag.Int("fft", 0, "measure via FFT of this size instead of the analytic response")
	list := flag.Bool("list", false, "list available filter type names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags] [band-spec ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the band table and magnitude response of a parametric EQ.\n")
		fmt.Fprintf(os.Stderr, "A band-spec is index:type:freq:q:gain, e.g. 3:bell:1000:2:6.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo 3:bell:1000:2:6\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -rate 96000 0:highpass:40:0.707:0\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -fft 4096 3:bell:1000:2:6\n")
	}
	flag.Parse()

	if *list {
		printTypeList()
		return
	}

	p := eq.New()
	p.SetSampleRate(*rate)

	for _, arg := range flag.Args() {
		spec, err := bandspec.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		spec.Apply(p)
	}

	printBandTable(p)
	fmt.Println()

	if err := printResponse(p, *minFreq, *maxFreq, *points, *fftSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printTypeList() {
	for _, n := range bandspec.TypeNames() {
		fmt.Println(n)
	}
}

func printBandTable(p *eq.Parametric) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tType\tFreq [Hz]\tQ\tGain [dB]\tEnabled\n")
	fmt.Fprintf(tw, "----\t----\t---------\t-\t---------\t-------\n")

	for i := 0; i < eq.NumBands; i++ {
		b := p.Band(i)
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.3f\t%+.1f\t%v\n",
			i, b.Type, b.Frequency, b.Q, b.GainDB, b.Enabled)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponse(p *eq.Parametric, minFreq, maxFreq float64, points, fftSize int) error {
	if points < 2 {
		return fmt.Errorf("points must be >= 2: %d", points)
	}
	if minFreq <= 0 || maxFreq <= minFreq {
		return fmt.Errorf("bad frequency range [%g, %g]", minFreq, maxFreq)
	}

	var measured frequency.Response
	if fftSize > 0 {
		var err error
		measured, err = frequency.MeasureResponse(p, fftSize)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tGain [dB]\n")
	fmt.Fprintf(tw, "---------\t---------\n")

	logMin := math.Log10(minFreq)
	step := (math.Log10(maxFreq) - logMin) / float64(points-1)
	for i := 0; i < points; i++ {
		f := math.Pow(10, logMin+float64(i)*step)

		var gain float64
		if fftSize > 0 {
			var err error
			gain, err = measured.At(f)
			if err != nil {
				return err
			}
		} else {
			gain = p.MagnitudeDB(f)
		}

		fmt.Fprintf(tw, "%.1f\t%+.2f\n", f, gain)
	}

	return tw.Flush()
}
