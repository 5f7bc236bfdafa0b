package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/biquad"
)

func ExampleSection_ProcessSample() {
	// Create a lowpass-like biquad section.
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	// Process an impulse.
	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleSection_ProcessBlock() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})
	buf := []float64{1, 0, 0, 0}
	s.ProcessBlock(buf)

	fmt.Printf("block: %.3f %.3f %.3f %.3f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// block: 0.250 0.550 0.350 0.048
}

func ExampleNewPassthrough() {
	s := biquad.NewPassthrough()
	for _, x := range []float64{1, -0.5, 0.25} {
		fmt.Printf("%.2f ", s.ProcessSample(x))
	}
	fmt.Println()
	// Output:
	// 1.00 -0.50 0.25
}
