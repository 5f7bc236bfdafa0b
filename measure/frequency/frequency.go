package frequency

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

// Response holds a measured magnitude response over uniformly spaced bins
// from DC up to Nyquist.
type Response struct {
	FrequenciesHz []float64
	MagnitudeDB   []float64
}

// MagnitudeSpectrum computes |X[k]| for the non-negative frequency bins
// [0..fftSize/2] of the real signal. The signal is zero-padded to fftSize,
// which must be a power of two no smaller than the signal length.
func MagnitudeSpectrum(signal []float64, fftSize int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("magnitude spectrum input must not be empty")
	}
	if fftSize < len(signal) {
		return nil, fmt.Errorf("fft size %d smaller than signal length %d", fftSize, len(signal))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// MeasureResponse captures fftSize samples of the cascade impulse response
// and returns its magnitude response in dB over bins [0..fftSize/2].
// The engine state is preserved across the measurement.
func MeasureResponse(p *eq.Parametric, fftSize int) (Response, error) {
	if p == nil {
		return Response{}, fmt.Errorf("measure response: nil equalizer")
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return Response{}, fmt.Errorf("fft size must be a power of two >= 2: %d", fftSize)
	}

	ir := p.ImpulseResponse(fftSize)

	mag, err := MagnitudeSpectrum(ir, fftSize)
	if err != nil {
		return Response{}, err
	}

	binHz := p.SampleRate() / float64(fftSize)
	freqs := make([]float64, len(mag))
	magDB := make([]float64, len(mag))
	for i := range mag {
		freqs[i] = float64(i) * binHz
		magDB[i] = core.LinearToDB(mag[i])
	}

	return Response{FrequenciesHz: freqs, MagnitudeDB: magDB}, nil
}

// At interpolates the measured magnitude (dB) at freqHz linearly between
// the two surrounding bins.
func (r Response) At(freqHz float64) (float64, error) {
	if len(r.FrequenciesHz) < 2 {
		return 0, fmt.Errorf("response has too few bins: %d", len(r.FrequenciesHz))
	}

	lo := r.FrequenciesHz[0]
	hi := r.FrequenciesHz[len(r.FrequenciesHz)-1]
	if freqHz < lo || freqHz > hi {
		return 0, fmt.Errorf("frequency %g Hz outside measured range [%g, %g]", freqHz, lo, hi)
	}

	binHz := r.FrequenciesHz[1] - r.FrequenciesHz[0]
	pos := (freqHz - lo) / binHz
	i := int(pos)
	if i >= len(r.MagnitudeDB)-1 {
		return r.MagnitudeDB[len(r.MagnitudeDB)-1], nil
	}

	t := pos - float64(i)
	return r.MagnitudeDB[i] + t*(r.MagnitudeDB[i+1]-r.MagnitudeDB[i]), nil
}

// RMS returns the root-mean-square level of the signal, 0 for empty input.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range signal {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(signal)))
}

// GainDB returns the RMS level change from in to out in dB.
func GainDB(out, in []float64) (float64, error) {
	if len(out) == 0 || len(in) == 0 {
		return 0, fmt.Errorf("gain measurement requires non-empty signals")
	}

	rmsIn := RMS(in)
	if rmsIn == 0 {
		return 0, fmt.Errorf("gain measurement input is silent")
	}

	return core.LinearToDB(RMS(out) / rmsIn), nil
}
