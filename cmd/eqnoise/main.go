// Command eqnoise plays white noise shaped by a parametric EQ through the
// default audio output. Useful for auditioning a band configuration.
//
// Usage:
//
//	eqnoise -band 3:bell:1000:2:6
//	eqnoise -rate 48000 -gain 0.25 -band 1:lowshelf:100:0.707:6
//	eqnoise -duration 10s -band 0:highpass:200:0.707:0
//
// Each -band flag configures and enables one band as index:type:freq:q:gain.
// Without -duration it plays until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/internal/bandspec"
)

const defaultMixBufferSize = 2048

func main() {
	var bands bandspec.List
	flag.Var(&bands, "band", "band spec index:type:freq:q:gain (repeatable)")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	gain := flag.Float64("gain", 0.2, "output noise amplitude (0..1)")
	duration := flag.Duration("duration", 0, "playback duration, 0 plays until interrupted")
	seed := flag.Int64("seed", time.Now().UnixNano(), "noise generator seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqnoise [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays EQ-shaped white noise through the default audio output.\n")
		fmt.Fprintf(os.Stderr, "A band spec is index:type:freq:q:gain, e.g. 3:bell:1000:2:6.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *gain < 0 || *gain > 1 {
		log.Fatalf("gain %v out of range [0, 1]", *gain)
	}

	p := eq.New(core.WithSampleRate(float64(*rate)))
	bands.Apply(p)

	source := newNoiseSource(p, *seed, *gain)

	player, err := newPlayer(*rate, defaultMixBufferSize)
	if err != nil {
		log.Fatalf("failed to create audio player: %v", err)
	}
	defer player.Close()

	player.Start(source.mix)
	log.Printf("playing at %d Hz with %d configured bands (ctrl-c to stop)", *rate, len(bands))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if *duration > 0 {
		select {
		case <-sigChan:
		case <-time.After(*duration):
		}
	} else {
		<-sigChan
	}

	log.Println("stopping")
}

// noiseSource produces EQ-shaped stereo noise frames for the player.
// mix runs on the audio goroutine only.
type noiseSource struct {
	eq   *eq.Parametric
	rng  *rand.Rand
	gain float64
	mono []float64
}

func newNoiseSource(p *eq.Parametric, seed int64, gain float64) *noiseSource {
	return &noiseSource{
		eq:   p,
		rng:  rand.New(rand.NewSource(seed)),
		gain: gain,
	}
}

// mix fills an interleaved stereo buffer with samples frames of shaped noise.
func (s *noiseSource) mix(samples int) []float64 {
	if cap(s.mono) < samples {
		s.mono = make([]float64, samples)
	}
	mono := s.mono[:samples]

	for i := range mono {
		mono[i] = (s.rng.Float64()*2 - 1) * s.gain
	}
	s.eq.ProcessBlock(mono, mono)

	out := make([]float64, 2*samples)
	for i, v := range mono {
		out[2*i] = v
		out[2*i+1] = v
	}
	return out
}
