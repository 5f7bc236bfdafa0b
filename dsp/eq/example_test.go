package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/design"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

func ExampleNew() {
	p := eq.New()

	for i := 0; i < eq.NumBands; i++ {
		b := p.Band(i)
		fmt.Printf("%d: %-10s %7.0f Hz\n", i, b.Type, b.Frequency)
	}
	// Output:
	// 0: HighPass        30 Hz
	// 1: LowShelf       100 Hz
	// 2: Bell           250 Hz
	// 3: Bell          1000 Hz
	// 4: Bell          3000 Hz
	// 5: HighShelf     8000 Hz
	// 6: LowPass      18000 Hz
}

func ExampleParametric_ProcessSample() {
	p := eq.New()
	p.SetBand(3, design.TypeBell, 1000, 2, 6)

	// All bands are disabled, so the engine passes samples through unchanged.
	fmt.Printf("%.2f %.2f %.2f\n", p.ProcessSample(1), p.ProcessSample(-0.5), p.ProcessSample(0.25))

	// Bypass is an exact identity too, even with the band enabled.
	p.SetBandEnabled(3, true)
	p.SetBypass(true)
	fmt.Printf("%.2f %.2f %.2f\n", p.ProcessSample(1), p.ProcessSample(-0.5), p.ProcessSample(0.25))
	// Output:
	// 1.00 -0.50 0.25
	// 1.00 -0.50 0.25
}
