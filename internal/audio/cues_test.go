package audio

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakePlayer records Init and Play calls.
type fakePlayer struct {
	mu        sync.Mutex
	initCalls int
	initErr   error
	played    []Tone
}

func (p *fakePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initCalls++
	return p.initErr
}

func (p *fakePlayer) Play(t Tone) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, t)
	return nil
}

func (p *fakePlayer) playedFreqs() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	freqs := make([]float64, len(p.played))
	for i, t := range p.played {
		freqs[i] = t.Freq
	}
	return freqs
}

// waitPlayed polls until n tones have been played or the deadline hits.
func waitPlayed(t *testing.T, p *fakePlayer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		got := len(p.played)
		p.mu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d tones", n)
}

func TestInitIdempotent(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, true, nil)
	c.Init()
	c.Init()
	c.Build()
	if p.initCalls != 1 {
		t.Errorf("Init called %d times on the player, want 1", p.initCalls)
	}
}

func TestInitFailureDegradesToSilence(t *testing.T) {
	p := &fakePlayer{initErr: errors.New("no device")}
	c := NewCues(p, true, nil)

	c.Build()
	c.Correct()
	c.Wrong()
	c.Celebration()
	time.Sleep(100 * time.Millisecond)

	if got := len(p.playedFreqs()); got != 0 {
		t.Errorf("played %d tones after failed init, want 0", got)
	}
	// The failed device is not retried.
	c.Init()
	if p.initCalls != 1 {
		t.Errorf("Init retried after failure: %d calls", p.initCalls)
	}
}

func TestDisabledCuesPlayNothing(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, false, nil)
	c.Build()
	c.Correct()
	time.Sleep(50 * time.Millisecond)

	if p.initCalls != 0 {
		t.Errorf("Init called %d times while disabled, want 0", p.initCalls)
	}
	if got := len(p.playedFreqs()); got != 0 {
		t.Errorf("played %d tones while disabled, want 0", got)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	c := NewCues(nil, true, nil)
	c.Build()
	c.Correct()
	c.Celebration()
}

func TestBuildCue(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, true, nil)
	c.Build()
	waitPlayed(t, p, 1)

	freqs := p.playedFreqs()
	if freqs[0] != 440 {
		t.Errorf("build tone = %v Hz, want 440", freqs[0])
	}
}

func TestCorrectCueNotes(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, true, nil)
	c.Init()
	c.Correct()
	waitPlayed(t, p, 2)

	want := map[float64]bool{523.25: true, 659.25: true}
	for _, f := range p.playedFreqs() {
		if !want[f] {
			t.Errorf("unexpected tone %v Hz in success chime", f)
		}
	}
}

func TestCelebrationCueNotes(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, true, nil)
	c.Init()
	c.Celebration()
	waitPlayed(t, p, 4)

	want := map[float64]bool{523.25: true, 659.25: true, 783.99: true, 1046.50: true}
	for _, f := range p.playedFreqs() {
		if !want[f] {
			t.Errorf("unexpected tone %v Hz in celebration arpeggio", f)
		}
	}
}

func TestCueSkippedBeforeInit(t *testing.T) {
	p := &fakePlayer{}
	c := NewCues(p, true, nil)
	// No user gesture yet; cues fire into the void.
	c.Correct()
	time.Sleep(50 * time.Millisecond)
	if got := len(p.playedFreqs()); got != 0 {
		t.Errorf("played %d tones before device init, want 0", got)
	}
}
