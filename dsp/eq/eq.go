package eq

import (
	"github.com/cwbudde/algo-eq/dsp/biquad"
	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/design"
)

// NumBands is the fixed number of bands in the cascade, indexed 0..6.
const NumBands = 7

// Band holds the configuration of a single EQ band. GainDB is meaningful
// only for bell and shelf types.
type Band struct {
	Type      design.FilterType
	Frequency float64
	Q         float64
	GainDB    float64
	Enabled   bool
}

// Parametric is a 7-band parametric EQ engine.
//
// All bands start disabled with the documented default layout, so a fresh
// engine passes audio through unchanged. Out-of-range band indices are
// silently ignored by setters and yield a zero Band from [Parametric.Band];
// there are no error paths on the audio thread.
type Parametric struct {
	bands      [NumBands]Band
	filters    [NumBands]biquad.Section
	sampleRate float64
	bypass     bool
}

// defaultBands is the band layout installed at construction: a sweep from
// rumble filter to air band, all at neutral gain and disabled.
func defaultBands() [NumBands]Band {
	const defaultQ = 0.707

	return [NumBands]Band{
		{Type: design.TypeHighPass, Frequency: 30, Q: defaultQ},
		{Type: design.TypeLowShelf, Frequency: 100, Q: defaultQ},
		{Type: design.TypeBell, Frequency: 250, Q: defaultQ},
		{Type: design.TypeBell, Frequency: 1000, Q: defaultQ},
		{Type: design.TypeBell, Frequency: 3000, Q: defaultQ},
		{Type: design.TypeHighShelf, Frequency: 8000, Q: defaultQ},
		{Type: design.TypeLowPass, Frequency: 18000, Q: defaultQ},
	}
}

// New creates a Parametric with default bands at the configured sample rate
// (44100 Hz unless overridden with [core.WithSampleRate]).
func New(opts ...core.ProcessorOption) *Parametric {
	cfg := core.ApplyProcessorOptions(opts...)

	p := &Parametric{
		bands:      defaultBands(),
		sampleRate: cfg.SampleRate,
	}
	p.redesignAll()

	return p
}

// SampleRate returns the current sample rate in Hz.
func (p *Parametric) SampleRate() float64 {
	return p.sampleRate
}

// SetSampleRate updates the sample rate and redesigns every band, since both
// the frequency clamp bound and the bilinear prewarping depend on it.
// A no-op when rate equals the current sample rate.
func (p *Parametric) SetSampleRate(rate float64) {
	if rate == p.sampleRate {
		return
	}

	p.sampleRate = rate
	p.redesignAll()
}

// SetBand stores type, frequency, Q and gain for the band at index and
// redesigns its coefficients. Out-of-range indices are ignored.
func (p *Parametric) SetBand(index int, typ design.FilterType, frequency, q, gainDB float64) {
	if index < 0 || index >= NumBands {
		return
	}

	b := &p.bands[index]
	b.Type = typ
	b.Frequency = frequency
	b.Q = q
	b.GainDB = gainDB

	p.redesign(index)
}

// SetBandEnabled toggles a band in or out of the cascade. The band keeps its
// configuration and coefficients, so no redesign is needed.
func (p *Parametric) SetBandEnabled(index int, enabled bool) {
	if index < 0 || index >= NumBands {
		return
	}

	p.bands[index].Enabled = enabled
}

// SetBandFrequency updates a band's center/cutoff frequency in Hz.
func (p *Parametric) SetBandFrequency(index int, frequency float64) {
	if index < 0 || index >= NumBands {
		return
	}

	p.bands[index].Frequency = frequency
	p.redesign(index)
}

// SetBandQ updates a band's quality factor.
func (p *Parametric) SetBandQ(index int, q float64) {
	if index < 0 || index >= NumBands {
		return
	}

	p.bands[index].Q = q
	p.redesign(index)
}

// SetBandGain updates a band's gain in dB.
func (p *Parametric) SetBandGain(index int, gainDB float64) {
	if index < 0 || index >= NumBands {
		return
	}

	p.bands[index].GainDB = gainDB
	p.redesign(index)
}

// SetBandType updates a band's filter type.
func (p *Parametric) SetBandType(index int, typ design.FilterType) {
	if index < 0 || index >= NumBands {
		return
	}

	p.bands[index].Type = typ
	p.redesign(index)
}

// Band returns a copy of the band configuration at index, or a zero Band
// for out-of-range indices.
func (p *Parametric) Band(index int) Band {
	if index < 0 || index >= NumBands {
		return Band{}
	}

	return p.bands[index]
}

// SetBypass switches the global passthrough. While bypassed the engine
// returns input unchanged and mutates no state.
func (p *Parametric) SetBypass(bypass bool) {
	p.bypass = bypass
}

// Bypassed reports whether the global bypass is active.
func (p *Parametric) Bypassed() bool {
	return p.bypass
}

// ProcessSample runs one sample through all enabled bands in index order.
func (p *Parametric) ProcessSample(x float64) float64 {
	if p.bypass {
		return x
	}

	for i := range p.bands {
		if p.bands[i].Enabled {
			x = p.filters[i].ProcessSample(x)
		}
	}

	return x
}

// ProcessBlock filters src into dst, band by band. Both slices must have the
// same length; dst and src may be the same slice. When bypassed, src is
// copied to dst verbatim.
func (p *Parametric) ProcessBlock(dst, src []float64) {
	n := copy(dst, src)
	if p.bypass {
		return
	}

	buf := dst[:n]
	for i := range p.bands {
		if p.bands[i].Enabled {
			p.filters[i].ProcessBlock(buf)
		}
	}
}

// Reset clears every band's delay state. Configurations and coefficients
// are untouched.
func (p *Parametric) Reset() {
	for i := range p.filters {
		p.filters[i].Reset()
	}
}

func (p *Parametric) redesign(index int) {
	b := p.bands[index]
	p.filters[index].SetCoefficients(
		design.Design(b.Type, b.Frequency, b.Q, b.GainDB, p.sampleRate))
}

func (p *Parametric) redesignAll() {
	for i := range p.bands {
		p.redesign(i)
	}
}
