package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// BeepPlayer generates sine tones through the system speaker.
type BeepPlayer struct {
	once    sync.Once
	initErr error
}

var _ Player = (*BeepPlayer)(nil)

// NewBeepPlayer creates an uninitialized player. The speaker is only
// acquired on Init.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{}
}

// Init opens the speaker. Repeated calls return the first result.
func (p *BeepPlayer) Init() error {
	p.once.Do(func() {
		p.initErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	return p.initErr
}

// Play queues a single tone on the speaker mixer and returns without
// waiting for it to finish.
func (p *BeepPlayer) Play(t Tone) error {
	if p.initErr != nil {
		return p.initErr
	}

	tone, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return fmt.Errorf("sine tone %.2fHz: %w", t.Freq, err)
	}

	// Gain maps the cue's linear volume onto the full-scale sine.
	shaped := &effects.Gain{
		Streamer: beep.Take(sampleRate.N(t.Duration), tone),
		Gain:     t.Volume - 1,
	}

	speaker.Play(shaped)
	return nil
}
