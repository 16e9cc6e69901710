// internal/audio/audio.go
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/event"
)

// System owns the speaker, a mixer for one-shot effects, and the current
// music track. It subscribes to the game's event stream and turns events
// into sounds; the game core never imports this package.
type System struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicTrack  int // map index, or -1 for the game-over dirge, -2 for none
	sfxOn       bool
	musicOn     bool
	initialized bool
}

// NewSystem creates an audio system with the given settings. Call Init
// before anything audible happens; without it every method is a no-op.
func NewSystem(cfg Config) *System {
	return &System{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		musicTrack: -2,
		sfxOn:      true,
		musicOn:    true,
	}
}

// Init opens the speaker and starts the mixer. Safe to call once.
func (s *System) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything. The speaker itself cannot be closed; clearing
// the mixer is the accepted shutdown.
func (s *System) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

func (s *System) SfxOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sfxOn
}

func (s *System) MusicOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.musicOn
}

// ToggleSfx flips sound effects and returns the new state.
func (s *System) ToggleSfx() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sfxOn = !s.sfxOn
	return s.sfxOn
}

// ToggleMusic flips music and returns the new state. The current track
// pauses in place rather than restarting on re-enable.
func (s *System) ToggleMusic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musicOn = !s.musicOn
	if s.initialized && s.music != nil {
		speaker.Lock()
		s.music.Paused = !s.musicOn
		speaker.Unlock()
	}
	return s.musicOn
}

// SetMusicForMap swaps the looping track. Index -1 selects the game-over
// dirge. Re-selecting the current track is a no-op.
func (s *System) SetMusicForMap(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || s.musicTrack == index {
		return
	}
	s.musicTrack = index

	var gen beep.Streamer
	var key string
	if index < 0 {
		gen = gameOverMelody()
		key = "game_over"
	} else {
		gen = mapMelody(index)
		key = fmt.Sprintf("map_%d", index)
	}
	vol := s.cfg.MusicVolume() * s.cfg.TrackVolume(key)

	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.music = &beep.Ctrl{Streamer: withVolume(gen, vol), Paused: !s.musicOn}
	s.mixer.Add(s.music)
	speaker.Unlock()
}

// Sound effect names, used as keys in the settings file.
const (
	soundShot    = "shot"
	soundBeam    = "beam"
	soundPulse   = "pulse"
	soundSwipe   = "swipe"
	soundCone    = "cone"
	soundSleep   = "sleep"
	soundPlace   = "place"
	soundSell    = "sell"
	soundUpgrade = "upgrade"
	soundUnlock  = "unlock"
	soundKill    = "kill"
	soundLife    = "life_lost"
	soundWave    = "wave_start"
)

// play queues a one-shot effect on the mixer.
func (s *System) play(name string, gen beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || !s.sfxOn {
		return
	}
	vol := s.cfg.SfxVolume() * s.cfg.EventVolume(name)
	speaker.Lock()
	s.mixer.Add(withVolume(gen, vol))
	speaker.Unlock()
}

func withVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol)}
}

// OnEvent maps game events to sounds. Registered on the dispatcher for the
// full event stream.
func (s *System) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		s.playFired(e)
	case event.TowerPlaced:
		s.play(soundPlace, newTone(523.25, 90*time.Millisecond, 0.35, 10))
	case event.TowerSold:
		s.play(soundSell, newTone(392.0, 120*time.Millisecond, 0.3, 9))
	case event.TowerUpgraded:
		s.play(soundUpgrade, newTone(659.25, 160*time.Millisecond, 0.35, 7))
	case event.TowerUnlocked:
		s.play(soundUnlock, newTone(783.99, 200*time.Millisecond, 0.35, 6))
	case event.EnemyDied:
		s.play(soundKill, newTone(880.0, 70*time.Millisecond, 0.3, 16))
	case event.LifeLost:
		s.play(soundLife, newThud(220*time.Millisecond, 70, 0.5))
	case event.WaveStarted:
		s.play(soundWave, newTone(440.0, 180*time.Millisecond, 0.3, 6))
	case event.MapChanged:
		if idx, ok := e.Data.(int); ok {
			s.SetMusicForMap(idx)
		}
	case event.GameOver:
		s.SetMusicForMap(-1)
	}
}

// playFired picks a per-kind firing sound.
func (s *System) playFired(e event.Event) {
	kind, _ := e.Data.(component.Kind)
	switch kind {
	case component.KindThunder:
		s.play(soundBeam, newThud(150*time.Millisecond, 160, 0.4))
	case component.KindFat:
		s.play(soundPulse, newThud(180*time.Millisecond, 55, 0.45))
	case component.KindKitty:
		s.play(soundSwipe, newTone(330.0, 60*time.Millisecond, 0.3, 18))
	case component.KindTiger:
		s.play(soundCone, newThud(160*time.Millisecond, 90, 0.4))
	case component.KindCatatonic:
		s.play(soundSleep, newTone(261.63, 250*time.Millisecond, 0.25, 5))
	default:
		s.play(soundShot, newTone(987.77, 45*time.Millisecond, 0.25, 20))
	}
}
