// internal/entity/state.go
package entity

import (
	"math"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/pkg/grid"
)

// State is the single owned aggregate holding every collection and run-state
// field. Systems mutate it through the tick entry point; actions mutate it
// through the action handler; both run on the same goroutine.
type State struct {
	Path     []grid.Position
	PathMask [][]bool

	Enemies        []component.Enemy
	Towers         []component.Tower
	Projectiles    []component.Projectile
	Shockwaves     []component.Shockwave
	Beams          []component.Beam
	AreaHighlights []component.AreaHighlight
	HitSplats      []component.HitSplat
	Held           *component.HeldTower

	MapIndex       int
	Kibbles        int
	Lives          int
	Wave           int
	WaveActive     bool
	SpawnRemaining int
	SpawnCooldown  float64 // seconds until next spawn

	Unlocked    map[component.Kind]bool
	AutoWaves   bool
	FastForward bool
	GameOver    bool
}

// NewState creates a fresh run on the first map.
func NewState() *State {
	s := &State{
		Kibbles:  config.StartingKibbles,
		Lives:    config.StartingLives,
		Unlocked: make(map[component.Kind]bool),
	}
	for _, kind := range defs.AllKinds() {
		if defs.GetTowerDef(kind).StartsUnlocked {
			s.Unlocked[kind] = true
		}
	}
	s.RebuildPath()
	return s
}

// CurrentMap returns the active map definition.
func (s *State) CurrentMap() defs.MapDef {
	return defs.MapAt(s.MapIndex)
}

// RebuildPath recomputes the path cells and occupancy mask for the current
// map.
func (s *State) RebuildPath() {
	m := s.CurrentMap()
	s.Path = grid.BuildPath(m.Anchors)
	s.PathMask = grid.BuildPathMask(s.Path, m.PathWidth, config.BoardWidth, config.BoardHeight)
}

// IsOnPath reports whether a cell belongs to the dilated path corridor.
// Off-board cells count as blocked.
func (s *State) IsOnPath(p grid.Position) bool {
	if !grid.Contains(config.BoardWidth, config.BoardHeight, p) {
		return true
	}
	return s.PathMask[p.Y][p.X]
}

// TimeScale is the fast-forward multiplier currently in effect.
func (s *State) TimeScale() float64 {
	if s.FastForward {
		return config.FastForwardMultiplier
	}
	return 1.0
}

// Dt is the scaled simulation step for one tick.
func (s *State) Dt() float64 {
	return config.TickSeconds * s.TimeScale()
}

// DifficultyLevel derives the scaling level from wave number and map index.
func (s *State) DifficultyLevel() int {
	local := (s.Wave-1)%config.WavesPerMap + 1
	return local + s.MapIndex*config.MapDifficultyBonus
}

// EnemyCell derives a rat's board cell: the floored path index, displaced
// perpendicular to the local path direction by the lane offset, clamped to
// the board.
func (s *State) EnemyCell(e *component.Enemy) grid.Position {
	last := len(s.Path) - 1
	idx := int(math.Floor(e.PathProgress))
	if idx < 0 {
		idx = 0
	}
	if idx > last {
		idx = last
	}
	base := s.Path[idx]

	dx, dy := 0, 0
	if idx+1 < len(s.Path) {
		dx = s.Path[idx+1].X - base.X
		dy = s.Path[idx+1].Y - base.Y
	} else if idx > 0 {
		dx = base.X - s.Path[idx-1].X
		dy = base.Y - s.Path[idx-1].Y
	}
	dx = signum(dx)
	dy = signum(dy)

	// Rotate the direction 90 degrees for the lateral displacement.
	base.X += -dy * e.LaneOffset
	base.Y += dx * e.LaneOffset
	return grid.Clamp(config.BoardWidth, config.BoardHeight, base)
}

func signum(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
