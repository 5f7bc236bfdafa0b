// Package design computes biquad coefficients for the parametric EQ
// responses: bell, shelving, pass, notch and allpass filters.
//
// All designers are pure functions from (frequency, Q, gain, sample rate) to
// normalized [biquad.Coefficients] using the standard analog-prototype
// bilinear transform with frequency pre-warping (omega = 2*pi*f/fs,
// alpha = sin(omega)/(2*Q)). Out-of-range parameters are clamped, never
// rejected: Q to [MinQ, MaxQ], frequency to [MinFrequencyHz, 0.49*fs].
// Clamping keeps live retuning stable: every input produces a defined,
// finite coefficient set.
package design
