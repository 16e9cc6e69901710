// internal/system/progression.go
package system

import (
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
)

// ProgressionSystem detects wave completion, pays the completion bonus,
// advances the map on milestone waves, and latches game over.
type ProgressionSystem struct {
	state      *entity.State
	spawn      *SpawnSystem
	dispatcher *event.Dispatcher
}

func NewProgressionSystem(state *entity.State, spawn *SpawnSystem, dispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{state: state, spawn: spawn, dispatcher: dispatcher}
}

// Update runs after cleanup, so "no rats remain" means dead and escaped rats
// are already gone.
func (s *ProgressionSystem) Update() {
	st := s.state
	if !st.WaveActive {
		return
	}
	if st.SpawnRemaining > 0 || len(st.Enemies) > 0 {
		return
	}

	st.WaveActive = false
	st.Kibbles += config.WaveBonusBase + st.Wave*config.WaveBonusPerWave

	if st.Wave%config.MapMilestoneWaves == 0 {
		s.AdvanceMap()
	}

	if st.AutoWaves && !st.GameOver {
		s.spawn.StartWave()
	}
}

// AdvanceMap cycles to the next map and resets per-map state. Kibbles
// persist across the transition; rats, cats, the held cat, lives and
// auto-wave do not.
func (s *ProgressionSystem) AdvanceMap() {
	st := s.state
	st.MapIndex = (st.MapIndex + 1) % defs.MapCount()
	st.WaveActive = false
	st.SpawnRemaining = 0
	st.Enemies = nil
	st.Towers = nil
	st.Projectiles = nil
	st.Shockwaves = nil
	st.Beams = nil
	st.AreaHighlights = nil
	st.HitSplats = nil
	st.Held = nil
	st.Lives = config.StartingLives
	st.AutoWaves = false
	st.RebuildPath()
	s.dispatcher.Dispatch(event.Event{Type: event.MapChanged, Data: st.MapIndex})
}

// Cleanup removes rats whose hp dropped to zero this tick. Bounties were
// paid at damage time; escapes already took their life.
func Cleanup(st *entity.State) {
	alive := st.Enemies[:0]
	for _, e := range st.Enemies {
		if e.HP > 0 {
			alive = append(alive, e)
		}
	}
	st.Enemies = alive
}

// CheckGameOver latches the terminal state when lives hit zero: the
// simulation freezes and auto-wave is cleared.
func (s *ProgressionSystem) CheckGameOver() {
	st := s.state
	if st.GameOver || st.Lives > 0 {
		return
	}
	st.GameOver = true
	st.AutoWaves = false
	s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
}
