package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues. The frame driver only depends on this.
type Player interface {
	Play(c Cue)
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(Cue) {}

// SoundManager plays cues through the system speaker. Before Initialize
// succeeds, or when no audio device exists, Play is a no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
	logger      *log.Logger
}

// NewSoundManager creates a sound manager.
func NewSoundManager(enabled bool, volume float64, logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  max(0, min(volume, 1)),
		logger:  logger,
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.logger.Warn("audio unavailable, sound disabled", "err", err)
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues cue c.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled || sm.volume <= 0 {
		return
	}
	s := CueStreamer(c, sm.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetEnabled mutes or unmutes cues.
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	sm.enabled = on
	sm.mu.Unlock()
}

// Enabled reports whether cues are audible.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// SetVolume sets the cue volume, clamped to [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = max(0, min(v, 1))
	sm.mu.Unlock()
}

// Close stops playing cues and releases the speaker.
func (sm *SoundManager) Close() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	return nil
}
