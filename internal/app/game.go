// internal/app/game.go
package app

import (
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/system"
	"cat-burrow-defense/internal/utils"
	"cat-burrow-defense/pkg/grid"
)

// Game wires the state aggregate to the systems and exposes the two entry
// points everything external goes through: Tick and HandleAction. Both must
// be called from the same goroutine.
type Game struct {
	State      *entity.State
	Rng        *utils.PRNGService
	Dispatcher *event.Dispatcher

	spawn       *system.SpawnSystem
	movement    *system.MovementSystem
	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem
	effects     *system.EffectSystem
	progression *system.ProgressionSystem

	Cursor       grid.Position
	SelectedKind component.Kind
	Overlay      bool // placement cues visible
	ViewShop     bool
	ShowControls bool
}

// NewGame initializes a fresh run. Seed 0 gives a time-based stream.
func NewGame(seed int64) *Game {
	state := entity.NewState()
	rng := utils.NewPRNGService(seed)
	dispatcher := event.NewDispatcher()

	g := &Game{
		State:        state,
		Rng:          rng,
		Dispatcher:   dispatcher,
		Cursor:       grid.Position{X: 3, Y: config.BoardHeight / 2},
		SelectedKind: component.KindScout,
		Overlay:      true,
	}
	g.spawn = system.NewSpawnSystem(state, rng, dispatcher)
	g.movement = system.NewMovementSystem(state, dispatcher)
	g.combat = system.NewCombatSystem(state, rng, dispatcher)
	g.projectiles = system.NewProjectileSystem(state, g.combat)
	g.effects = system.NewEffectSystem(state)
	g.progression = system.NewProgressionSystem(state, g.spawn, dispatcher)
	return g
}

// Tick advances the whole simulation by one fixed step. After game over it
// is a no-op: the terminal state freezes every collection in place.
func (g *Game) Tick() {
	st := g.State
	if st.GameOver {
		return
	}

	dt := st.Dt()
	g.spawn.Update(dt)
	g.movement.Update(dt)
	g.combat.Update(dt)
	g.projectiles.Update(dt)
	g.projectiles.Resolve()
	g.effects.Update(config.TickSeconds)
	system.Cleanup(st)
	g.progression.Update()
	g.progression.CheckGameOver()
}
