package audio

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Tone is one scheduled sine tone within a cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
	// Delay is measured from cue start. Tones fire as independent
	// delayed triggers; nothing waits for an earlier tone to finish.
	Delay time.Duration
}

// Cue sequences. Frequencies are musical notes: the success chime
// rises C5-E5, the error tone falls Eb4-B3, build is a single A4, and
// the celebration arpeggiates C5-E5-G5-C6.
var (
	successCue = []Tone{
		{Freq: 523.25, Duration: 150 * time.Millisecond, Volume: 0.10},
		{Freq: 659.25, Duration: 150 * time.Millisecond, Volume: 0.08, Delay: 80 * time.Millisecond},
	}
	errorCue = []Tone{
		{Freq: 311.13, Duration: 200 * time.Millisecond, Volume: 0.08},
		{Freq: 246.94, Duration: 250 * time.Millisecond, Volume: 0.06, Delay: 100 * time.Millisecond},
	}
	buildCue = []Tone{
		{Freq: 440, Duration: 120 * time.Millisecond, Volume: 0.10},
	}
	celebrationCue = []Tone{
		{Freq: 523.25, Duration: 300 * time.Millisecond, Volume: 0.10},
		{Freq: 659.25, Duration: 300 * time.Millisecond, Volume: 0.10, Delay: 150 * time.Millisecond},
		{Freq: 783.99, Duration: 300 * time.Millisecond, Volume: 0.10, Delay: 300 * time.Millisecond},
		{Freq: 1046.50, Duration: 300 * time.Millisecond, Volume: 0.10, Delay: 450 * time.Millisecond},
	}
)

// Player is the tone-playback device. Play must not block on the tone
// finishing.
type Player interface {
	// Init acquires the device. Called lazily on the first
	// user-gesture-driven cue; must be safe to call repeatedly.
	Init() error

	Play(t Tone) error
}

// Cues plays the app's sound effects. All playback is fire-and-forget
// and every failure degrades to silence: a broken audio device never
// blocks scoring or progression.
type Cues struct {
	player  Player
	log     *zap.Logger
	enabled bool

	mu          sync.Mutex
	initialized bool
	failed      bool
}

// NewCues creates the cue player. A nil player or enabled=false yields
// a silent but fully functional Cues.
func NewCues(player Player, enabled bool, log *zap.Logger) *Cues {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cues{player: player, log: log, enabled: enabled && player != nil}
}

// Init acquires the audio device. Idempotent: once initialized (or
// failed) further calls are no-ops.
func (c *Cues) Init() {
	if !c.enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized || c.failed {
		return
	}
	if err := c.player.Init(); err != nil {
		c.failed = true
		c.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return
	}
	c.initialized = true
}

// Build plays the quiz-build tone. This is the declared first
// user-gesture cue, so it also triggers device acquisition.
func (c *Cues) Build() {
	c.Init()
	c.play(buildCue)
}

// Correct plays the ascending success chime.
func (c *Cues) Correct() { c.play(successCue) }

// Wrong plays the descending error tone.
func (c *Cues) Wrong() { c.play(errorCue) }

// Celebration plays the completion arpeggio.
func (c *Cues) Celebration() { c.play(celebrationCue) }

func (c *Cues) ready() bool {
	if !c.enabled {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized && !c.failed
}

// play schedules each tone of the cue as its own delayed trigger.
func (c *Cues) play(cue []Tone) {
	if !c.ready() {
		return
	}
	for _, t := range cue {
		tone := t
		time.AfterFunc(tone.Delay, func() {
			if err := c.player.Play(tone); err != nil {
				c.log.Debug("tone playback failed", zap.Float64("freq", tone.Freq), zap.Error(err))
			}
		})
	}
}
