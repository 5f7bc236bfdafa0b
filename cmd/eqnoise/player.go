package main

import (
	"math"
	"time"

	oto "github.com/ebitengine/oto/v3"
)

// mixFunc fills a playback request with samples interleaved stereo frames.
type mixFunc func(samples int) []float64

// player streams float64 frames from a mix function to the audio device as
// float32 little-endian stereo.
type player struct {
	context    *oto.Context
	player     *oto.Player
	bufferSize int
	stopChan   chan struct{}
}

func newPlayer(sampleRate, bufferSize int) (*player, error) {
	otoContext, readyChan, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   500 * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	<-readyChan

	return &player{
		context:    otoContext,
		bufferSize: bufferSize,
		stopChan:   make(chan struct{}),
	}, nil
}

func (p *player) Start(mix mixFunc) {
	p.player = p.context.NewPlayer(&mixReader{
		mix:        mix,
		bufferSize: p.bufferSize,
		stopChan:   p.stopChan,
	})
	p.player.Play()
}

func (p *player) Close() {
	close(p.stopChan)
	if p.player != nil {
		p.player.Pause()
		p.player.Close()
	}
}

type mixReader struct {
	mix        mixFunc
	bufferSize int
	stopChan   <-chan struct{}
	buffer     []byte
	bufPos     int
}

func (r *mixReader) Read(buf []byte) (int, error) {
	totalRead := 0

	for totalRead < len(buf) {
		if r.bufPos >= len(r.buffer) {
			select {
			case <-r.stopChan:
				return totalRead, nil
			default:
			}

			samples := r.mix(r.bufferSize)
			r.buffer = float64ToBytes(samples)
			r.bufPos = 0
		}

		n := copy(buf[totalRead:], r.buffer[r.bufPos:])
		r.bufPos += n
		totalRead += n
	}

	return totalRead, nil
}

func float64ToBytes(samples []float64) []byte {
	result := make([]byte, len(samples)*4)

	for i, sample := range samples {
		clamped := math.Max(-1, math.Min(1, sample))
		bits := math.Float32bits(float32(clamped))
		result[i*4] = byte(bits)
		result[i*4+1] = byte(bits >> 8)
		result[i*4+2] = byte(bits >> 16)
		result[i*4+3] = byte(bits >> 24)
	}

	return result
}
