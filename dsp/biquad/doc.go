// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. The transposed form is used
// because its coefficient sensitivity and round-off accumulation are lower
// than the naive direct form, which matters when coefficients are retuned
// live and several sections run in series.
//
// This package provides the processing runtime only. Coefficient design
// (bell, shelf, pass, notch, allpass) lives in dsp/design, and the fixed
// multi-band cascade built on top of it lives in dsp/eq.
package biquad
