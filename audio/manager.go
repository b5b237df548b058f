package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and mixes the game's sound cues. Every
// Play method is a safe no-op until Initialize succeeds or while the
// manager is disabled, so the game loop never has to care whether audio
// is available.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: true,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetEnabled toggles all cue playback.
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// Enabled reports whether cues currently play.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Cleanup silences the mixer. The speaker itself stays open; beep has
// no close.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewGain(s, sm.volume))
	speaker.Unlock()
}

// PlayGunshot is a short noise burst with a snappy release.
func (sm *SoundManager) PlayGunshot() {
	s := NewOscillator(0, 120*time.Millisecond, WaveNoise, sampleRate)
	sm.play(NewEnvelope(s, 120*time.Millisecond, time.Millisecond, 100*time.Millisecond, sampleRate))
}

// PlayEmptyClick is a tiny square tick for firing with no ammo.
func (sm *SoundManager) PlayEmptyClick() {
	s := NewOscillator(1200, 30*time.Millisecond, WaveSquare, sampleRate)
	sm.play(NewEnvelope(s, 30*time.Millisecond, time.Millisecond, 20*time.Millisecond, sampleRate))
}

// PlayBulletImpact marks a hit that did not kill.
func (sm *SoundManager) PlayBulletImpact() {
	s := NewSweep(600, 200, 90*time.Millisecond, WaveSquare, sampleRate)
	sm.play(NewEnvelope(s, 90*time.Millisecond, time.Millisecond, 60*time.Millisecond, sampleRate))
}

// PlayEnemyDeath is a falling saw sweep.
func (sm *SoundManager) PlayEnemyDeath() {
	s := NewSweep(400, 60, 300*time.Millisecond, WaveSaw, sampleRate)
	sm.play(NewEnvelope(s, 300*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, sampleRate))
}

// PlayAmmoPickup is a rising two-note chirp.
func (sm *SoundManager) PlayAmmoPickup() {
	s := NewSweep(500, 1000, 150*time.Millisecond, WaveSine, sampleRate)
	sm.play(NewEnvelope(s, 150*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, sampleRate))
}

// PlayWaveStart announces a fresh wave.
func (sm *SoundManager) PlayWaveStart() {
	s := NewSweep(220, 440, 400*time.Millisecond, WaveSine, sampleRate)
	sm.play(NewEnvelope(s, 400*time.Millisecond, 10*time.Millisecond, 250*time.Millisecond, sampleRate))
}

// PlayWaveComplete celebrates clearing a wave.
func (sm *SoundManager) PlayWaveComplete() {
	s := NewSweep(440, 880, 500*time.Millisecond, WaveSine, sampleRate)
	sm.play(NewEnvelope(s, 500*time.Millisecond, 10*time.Millisecond, 300*time.Millisecond, sampleRate))
}
