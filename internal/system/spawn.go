// internal/system/spawn.go
package system

import (
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/utils"
)

// SpawnSystem governs the wave lifecycle and timed rat creation while a wave
// is active.
type SpawnSystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewSpawnSystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{state: state, rng: rng, dispatcher: dispatcher}
}

// StartWave transitions Idle -> Active and reports whether it did. A no-op
// while a wave is running or after game over.
func (s *SpawnSystem) StartWave() bool {
	st := s.state
	if st.WaveActive || st.GameOver {
		return false
	}
	st.Wave++
	st.SpawnRemaining = config.SpawnBaseCount + st.DifficultyLevel()*config.SpawnPerLevel
	st.SpawnCooldown = 0 // first rat appears on the first eligible tick
	st.WaveActive = true
	s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: st.Wave})
	return true
}

// Update advances the spawn cooldown and creates rats while any remain in
// the batch. dt is already scaled by fast-forward.
func (s *SpawnSystem) Update(dt float64) {
	st := s.state
	if !st.WaveActive || st.SpawnRemaining <= 0 {
		return
	}

	st.SpawnCooldown -= dt
	if st.SpawnCooldown > 0 {
		return
	}

	st.Enemies = append(st.Enemies, s.newEnemy())
	st.SpawnRemaining--
	st.SpawnCooldown = config.SpawnIntervalMs / 1000.0 / config.SpeedFactor
}

func (s *SpawnSystem) newEnemy() component.Enemy {
	st := s.state
	diff := st.DifficultyLevel()
	cat := defs.RollCategory(s.rng, diff, st.MapIndex)
	hp, speed := defs.EnemyStats(cat, diff)

	e := component.Enemy{
		Speed:    speed,
		HP:       hp,
		MaxHP:    hp,
		Category: cat,
	}
	if width := st.CurrentMap().PathWidth; width > 1 {
		e.LaneOffset = s.rng.IntRange(-(width - 1), width-1)
	}
	return e
}
