package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/biquad"
)

const sr = 48000.0

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func requireFiniteCoeffs(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite coefficient in %+v", c)
		}
	}
}

func TestBell_CenterGain(t *testing.T) {
	for _, gain := range []float64{-12, -6, 6, 12} {
		c := Bell(1000, gain, 2.0, sr)
		got := c.MagnitudeDB(1000, sr)
		if !almostEqual(got, gain, 1e-9) {
			t.Errorf("gain %v dB: magnitude at center %v dB", gain, got)
		}
	}
}

func TestBell_ZeroGainIsUnity(t *testing.T) {
	c := Bell(1000, 0, 2.0, sr)
	for _, f := range []float64{20, 100, 1000, 10000, 20000} {
		if got := c.MagnitudeDB(f, sr); !almostEqual(got, 0, 1e-9) {
			t.Errorf("%v Hz: %v dB, want 0", f, got)
		}
	}
}

func TestBell_Locality(t *testing.T) {
	// A +6 dB bell at 1 kHz, Q=2 should leave frequencies a few octaves
	// away essentially untouched.
	c := Bell(1000, 6, 2.0, sr)
	for _, f := range []float64{100, 5000} {
		if got := c.MagnitudeDB(f, sr); math.Abs(got) > 0.2 {
			t.Errorf("%v Hz: %v dB, want ~0", f, got)
		}
	}
}

func TestLowShelf_Asymptotes(t *testing.T) {
	c := LowShelf(100, 6, 0.707, sr)
	if got := c.MagnitudeDB(5, sr); !almostEqual(got, 6, 0.3) {
		t.Errorf("low asymptote: %v dB, want ~6", got)
	}
	if got := c.MagnitudeDB(10000, sr); !almostEqual(got, 0, 0.3) {
		t.Errorf("high asymptote: %v dB, want ~0", got)
	}
}

func TestHighShelf_Asymptotes(t *testing.T) {
	c := HighShelf(8000, -6, 0.707, sr)
	if got := c.MagnitudeDB(100, sr); !almostEqual(got, 0, 0.3) {
		t.Errorf("low asymptote: %v dB, want ~0", got)
	}
	if got := c.MagnitudeDB(22000, sr); !almostEqual(got, -6, 0.3) {
		t.Errorf("high asymptote: %v dB, want ~-6", got)
	}
}

func TestLowPass_Response(t *testing.T) {
	c := LowPass(1000, 0.707, sr)

	// Butterworth-Q cutoff sits at about -3 dB.
	if got := c.MagnitudeDB(1000, sr); !almostEqual(got, -3.01, 0.1) {
		t.Errorf("cutoff: %v dB, want ~-3", got)
	}
	if got := c.MagnitudeDB(20, sr); !almostEqual(got, 0, 0.05) {
		t.Errorf("passband: %v dB, want ~0", got)
	}
	// Second-order rolloff: a decade above cutoff is at least 35 dB down.
	if got := c.MagnitudeDB(10000, sr); got > -35 {
		t.Errorf("stopband: %v dB, want < -35", got)
	}
}

func TestHighPass_Response(t *testing.T) {
	c := HighPass(1000, 0.707, sr)

	if got := c.MagnitudeDB(1000, sr); !almostEqual(got, -3.01, 0.1) {
		t.Errorf("cutoff: %v dB, want ~-3", got)
	}
	if got := c.MagnitudeDB(20000, sr); !almostEqual(got, 0, 0.05) {
		t.Errorf("passband: %v dB, want ~0", got)
	}
	if got := c.MagnitudeDB(100, sr); got > -35 {
		t.Errorf("stopband: %v dB, want < -35", got)
	}
}

func TestAllPass_UnityMagnitude(t *testing.T) {
	c := AllPass(1000, 2.0, sr)
	for _, f := range []float64{20, 500, 1000, 2000, 20000} {
		if got := c.MagnitudeDB(f, sr); !almostEqual(got, 0, 1e-9) {
			t.Errorf("%v Hz: %v dB, want 0", f, got)
		}
	}

	// Phase actually moves around the center frequency.
	if ph := c.Phase(1000, sr); almostEqual(ph, 0, 1e-3) {
		t.Errorf("allpass phase at center should be non-zero, got %v", ph)
	}
}

func TestNotch_Response(t *testing.T) {
	c := Notch(1000, 4.0, sr)
	if got := c.MagnitudeDB(1000, sr); got > -60 {
		t.Errorf("notch depth: %v dB, want < -60", got)
	}
	for _, f := range []float64{100, 10000} {
		if got := c.MagnitudeDB(f, sr); math.Abs(got) > 0.2 {
			t.Errorf("%v Hz: %v dB, want ~0", f, got)
		}
	}
}

func TestClamping_Idempotent(t *testing.T) {
	// Q above the clamp bound designs identically to MaxQ.
	over := Bell(1000, 6, 100, sr)
	atMax := Bell(1000, 6, MaxQ, sr)
	if over != atMax {
		t.Errorf("Q=100 should clamp to MaxQ: %+v vs %+v", over, atMax)
	}

	under := Bell(1000, 6, 0.01, sr)
	atMin := Bell(1000, 6, MinQ, sr)
	if under != atMin {
		t.Errorf("Q=0.01 should clamp to MinQ: %+v vs %+v", under, atMin)
	}

	// Frequency at or above Nyquist clamps to 0.49*fs.
	nyq := LowPass(sr/2, 0.707, sr)
	atBound := LowPass(0.49*sr, 0.707, sr)
	if nyq != atBound {
		t.Errorf("f=fs/2 should clamp to 0.49*fs: %+v vs %+v", nyq, atBound)
	}

	// Non-positive frequency clamps to the lower bound.
	neg := HighPass(-5, 0.707, sr)
	atLow := HighPass(MinFrequencyHz, 0.707, sr)
	if neg != atLow {
		t.Errorf("negative frequency should clamp to %v Hz: %+v vs %+v", MinFrequencyHz, neg, atLow)
	}
}

func TestBadSampleRate_Identity(t *testing.T) {
	for _, rate := range []float64{0, -48000, math.NaN(), math.Inf(1)} {
		if c := Bell(1000, 6, 1, rate); c != biquad.Identity() {
			t.Errorf("sample rate %v: got %+v, want identity", rate, c)
		}
	}
}

func TestDesign_Dispatch(t *testing.T) {
	tests := []struct {
		typ  FilterType
		want biquad.Coefficients
	}{
		{TypeBell, Bell(1000, 6, 1, sr)},
		{TypeLowShelf, LowShelf(1000, 6, 1, sr)},
		{TypeHighShelf, HighShelf(1000, 6, 1, sr)},
		{TypeLowPass, LowPass(1000, 1, sr)},
		{TypeHighPass, HighPass(1000, 1, sr)},
		{TypeAllPass, AllPass(1000, 1, sr)},
		{TypeNotch, Notch(1000, 1, sr)},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := Design(tt.typ, 1000, 1, 6, sr)
			if got != tt.want {
				t.Errorf("Design(%v) = %+v, want %+v", tt.typ, got, tt.want)
			}
		})
	}

	if got := Design(FilterType(99), 1000, 1, 6, sr); got != biquad.Identity() {
		t.Errorf("unknown type: got %+v, want identity", got)
	}
}

func TestDesign_AlwaysFinite(t *testing.T) {
	types := []FilterType{
		TypeBell, TypeLowShelf, TypeHighShelf,
		TypeLowPass, TypeHighPass, TypeAllPass, TypeNotch,
	}
	freqs := []float64{-100, 0, 1, 20, 1000, 21000, 30000, 1e9}
	qs := []float64{-1, 0, 0.05, 0.1, 0.707, 18, 100}
	gains := []float64{-24, -6, 0, 6, 24}

	for _, typ := range types {
		for _, f := range freqs {
			for _, q := range qs {
				for _, g := range gains {
					requireFiniteCoeffs(t, Design(typ, f, q, g, sr))
				}
			}
		}
	}
}

func TestFilterType_Strings(t *testing.T) {
	want := map[FilterType]string{
		TypeBell:       "Bell",
		TypeLowShelf:   "LowShelf",
		TypeHighShelf:  "HighShelf",
		TypeLowPass:    "LowPass",
		TypeHighPass:   "HighPass",
		TypeAllPass:    "AllPass",
		TypeNotch:      "Notch",
		FilterType(99): "Unknown",
	}
	for typ, name := range want {
		if typ.String() != name {
			t.Errorf("%d.String() = %q, want %q", int(typ), typ.String(), name)
		}
	}
}

func TestFilterType_UsesGain(t *testing.T) {
	gainTypes := []FilterType{TypeBell, TypeLowShelf, TypeHighShelf}
	for _, typ := range gainTypes {
		if !typ.UsesGain() {
			t.Errorf("%v should use gain", typ)
		}
	}
	for _, typ := range []FilterType{TypeLowPass, TypeHighPass, TypeAllPass, TypeNotch} {
		if typ.UsesGain() {
			t.Errorf("%v should not use gain", typ)
		}
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampQ(100); got != MaxQ {
		t.Errorf("ClampQ(100) = %v", got)
	}
	if got := ClampQ(math.NaN()); got != defaultQ {
		t.Errorf("ClampQ(NaN) = %v", got)
	}
	if got := ClampFrequency(0.5*sr, sr); got != 0.49*sr {
		t.Errorf("ClampFrequency(fs/2) = %v", got)
	}
	if got := ClampFrequency(math.NaN(), sr); got != MinFrequencyHz {
		t.Errorf("ClampFrequency(NaN) = %v", got)
	}
}
