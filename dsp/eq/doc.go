// Package eq implements a fixed 7-band parametric equalizer: a cascade of
// independently configurable biquad stages applied in series to a mono
// sample stream.
//
// Each band pairs a [Band] configuration (type, frequency, Q, gain, enabled)
// with its own [biquad.Section]. Reconfiguring a band redesigns that band's
// coefficients synchronously, before the next processed sample, while the
// section's delay state is preserved so retuning stays click-free. Disabled
// bands keep their configuration but are skipped during processing, and the
// global bypass turns the whole cascade into an exact identity.
//
// The engine performs no internal synchronization. Processing calls are
// meant for a single real-time thread and configuration setters for a single
// control thread; invoking both concurrently on the same [Parametric] is a
// data race the caller must serialize (for example through a parameter
// message queue ahead of the audio callback). The processing path never
// allocates.
package eq
