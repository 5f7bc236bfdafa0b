// Package bandspec parses the index:type:freq:q:gain band syntax shared by
// the command-line tools.
package bandspec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/design"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

var typesByName = map[string]design.FilterType{
	"bell":      design.TypeBell,
	"lowshelf":  design.TypeLowShelf,
	"highshelf": design.TypeHighShelf,
	"lowpass":   design.TypeLowPass,
	"highpass":  design.TypeHighPass,
	"allpass":   design.TypeAllPass,
	"notch":     design.TypeNotch,
}

// TypeNames returns the accepted filter type names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typesByName))
	for n := range typesByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Spec holds one parsed band specification.
type Spec struct {
	Index     int
	Type      design.FilterType
	Frequency float64
	Q         float64
	GainDB    float64
}

// Parse parses index:type:freq:q:gain, e.g. "3:bell:1000:2:6".
func Parse(spec string) (Spec, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 5 {
		return Spec{}, fmt.Errorf("band spec %q: want index:type:freq:q:gain", spec)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 0 || index >= eq.NumBands {
		return Spec{}, fmt.Errorf("band spec %q: bad index %q (0..%d)", spec, parts[0], eq.NumBands-1)
	}

	typ, ok := typesByName[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return Spec{}, fmt.Errorf("band spec %q: unknown type %q", spec, parts[1])
	}

	freq, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("band spec %q: bad frequency %q", spec, parts[2])
	}

	q, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("band spec %q: bad Q %q", spec, parts[3])
	}

	gain, err := strconv.ParseFloat(parts[4], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("band spec %q: bad gain %q", spec, parts[4])
	}

	return Spec{Index: index, Type: typ, Frequency: freq, Q: q, GainDB: gain}, nil
}

// Apply configures and enables the band on p.
func (s Spec) Apply(p *eq.Parametric) {
	p.SetBand(s.Index, s.Type, s.Frequency, s.Q, s.GainDB)
	p.SetBandEnabled(s.Index, true)
}

// List collects repeated -band flags. It implements [flag.Value].
type List []Spec

func (l *List) String() string {
	specs := make([]string, len(*l))
	for i, s := range *l {
		specs[i] = fmt.Sprintf("%d:%s:%g:%g:%g",
			s.Index, strings.ToLower(s.Type.String()), s.Frequency, s.Q, s.GainDB)
	}
	return strings.Join(specs, ",")
}

// Set parses and appends one band spec.
func (l *List) Set(value string) error {
	spec, err := Parse(value)
	if err != nil {
		return err
	}
	*l = append(*l, spec)
	return nil
}

// Apply configures and enables all listed bands on p.
func (l List) Apply(p *eq.Parametric) {
	for _, s := range l {
		s.Apply(p)
	}
}
