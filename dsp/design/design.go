package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/biquad"
	"github.com/cwbudde/algo-eq/dsp/core"
)

// Parameter domains. Values outside are clamped before any computation,
// keeping alpha strictly positive and the warped frequency inside (0, pi).
const (
	MinQ = 0.1
	MaxQ = 18.0

	// MinFrequencyHz is the lower frequency clamp bound.
	MinFrequencyHz = 1.0

	// maxFrequencyRatio bounds frequency below Nyquist with headroom, so
	// the prewarped omega never degenerates at the fold-over point.
	maxFrequencyRatio = 0.49
)

const defaultQ = 1 / math.Sqrt2

// FilterType identifies one of the supported second-order responses.
type FilterType int

const (
	// TypeBell is a symmetric boost/cut centered at the frequency.
	TypeBell FilterType = iota

	// TypeLowShelf applies gain below the frequency, unity above.
	TypeLowShelf

	// TypeHighShelf applies gain above the frequency, unity below.
	TypeHighShelf

	// TypeLowPass passes below the cutoff; resonance set by Q.
	TypeLowPass

	// TypeHighPass passes above the cutoff; resonance set by Q.
	TypeHighPass

	// TypeAllPass has unity magnitude everywhere, phase shift at the frequency.
	TypeAllPass

	// TypeNotch attenuates deeply at the frequency, unity elsewhere.
	TypeNotch
)

// String returns a human-readable name for the filter type.
func (t FilterType) String() string {
	switch t {
	case TypeBell:
		return "Bell"
	case TypeLowShelf:
		return "LowShelf"
	case TypeHighShelf:
		return "HighShelf"
	case TypeLowPass:
		return "LowPass"
	case TypeHighPass:
		return "HighPass"
	case TypeAllPass:
		return "AllPass"
	case TypeNotch:
		return "Notch"
	default:
		return "Unknown"
	}
}

// UsesGain reports whether gainDB is meaningful for this filter type.
func (t FilterType) UsesGain() bool {
	return t == TypeBell || t == TypeLowShelf || t == TypeHighShelf
}

// Design computes coefficients for the given type. It dispatches over the
// closed FilterType enumeration; gainDB is ignored for types that do not
// use it.
func Design(typ FilterType, freq, q, gainDB, sampleRate float64) biquad.Coefficients {
	switch typ {
	case TypeBell:
		return Bell(freq, gainDB, q, sampleRate)
	case TypeLowShelf:
		return LowShelf(freq, gainDB, q, sampleRate)
	case TypeHighShelf:
		return HighShelf(freq, gainDB, q, sampleRate)
	case TypeLowPass:
		return LowPass(freq, q, sampleRate)
	case TypeHighPass:
		return HighPass(freq, q, sampleRate)
	case TypeAllPass:
		return AllPass(freq, q, sampleRate)
	case TypeNotch:
		return Notch(freq, q, sampleRate)
	default:
		return biquad.Identity()
	}
}

// Bell designs a peaking biquad with symmetric boost/cut at freq (Hz).
// The bandwidth narrows as q grows; gainDB sets the peak height.
func Bell(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := math.Pow(10, gainDB/40) // sqrt of the linear power gain

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalize(b0, b1, b2, a0, a1, a2)
}

// LowShelf designs a low-shelf biquad: gainDB below freq, unity above.
// Q controls the slope steepness of the transition.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	a := math.Pow(10, gainDB/40)
	beta := math.Sqrt(a) / q

	b0 := a * ((a + 1) - (a-1)*cw + beta*sw)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta*sw)
	a0 := (a + 1) + (a-1)*cw + beta*sw
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta*sw

	return normalize(b0, b1, b2, a0, a1, a2)
}

// HighShelf designs a high-shelf biquad: gainDB above freq, unity below.
func HighShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	a := math.Pow(10, gainDB/40)
	beta := math.Sqrt(a) / q

	b0 := a * ((a + 1) + (a-1)*cw + beta*sw)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta*sw)
	a0 := (a + 1) - (a-1)*cw + beta*sw
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta*sw

	return normalize(b0, b1, b2, a0, a1, a2)
}

// LowPass designs a lowpass biquad at freq (Hz) with resonance q.
func LowPass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// HighPass designs a highpass biquad at freq (Hz) with resonance q.
func HighPass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// AllPass designs an allpass biquad centered at freq (Hz).
func AllPass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1 - alpha
	b1 := -2 * cw
	b2 := 1 + alpha
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// Notch designs a notch biquad centered at freq (Hz).
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := warpedOmega(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := 1.0
	b1 := -2 * cw
	b2 := 1.0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2)
}

// ClampFrequency returns freq limited to [MinFrequencyHz, 0.49*sampleRate].
// Exposed so callers can report the effective value of a clamped request.
func ClampFrequency(freq, sampleRate float64) float64 {
	if math.IsNaN(freq) {
		return MinFrequencyHz
	}

	return core.Clamp(freq, MinFrequencyHz, maxFrequencyRatio*sampleRate)
}

// ClampQ returns q limited to [MinQ, MaxQ].
func ClampQ(q float64) float64 {
	return clampQ(q)
}

// warpedOmega clamps freq and converts it to the prewarped digital
// frequency. ok is false only for an unusable sample rate.
func warpedOmega(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	freq = ClampFrequency(freq, sampleRate)

	return 2 * math.Pi * freq / sampleRate, true
}

func clampQ(q float64) float64 {
	if math.IsNaN(q) {
		return defaultQ
	}

	return core.Clamp(q, MinQ, MaxQ)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
