// Package frequency measures the realized frequency response of an
// equalizer by FFT analysis of its impulse response, and provides level
// helpers for sine-probe gain measurements.
//
// The FFT-based path complements the analytic [eq.Parametric.Response]:
// the analytic response evaluates the designed coefficients, while this
// package measures what the processing path actually does to samples.
package frequency
