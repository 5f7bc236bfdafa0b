package eq

import (
	"math/cmplx"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Response computes the complex frequency response of the cascade as the
// product of the enabled bands' section responses. A bypassed or fully
// disabled cascade has unity response.
func (p *Parametric) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	if p.bypass {
		return h
	}

	for i := range p.bands {
		if p.bands[i].Enabled {
			h *= p.filters[i].Coefficients.Response(freqHz, p.sampleRate)
		}
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB at freqHz.
func (p *Parametric) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(p.Response(freqHz)))
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The engine state is saved and restored, so processing is unaffected.
func (p *Parametric) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	var saved [NumBands][2]float64
	for i := range p.filters {
		saved[i] = p.filters[i].State()
	}
	p.Reset()

	ir := make([]float64, n)
	ir[0] = p.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = p.ProcessSample(0)
	}

	for i := range p.filters {
		p.filters[i].SetState(saved[i])
	}

	return ir
}
