// internal/app/actions.go
package app

import (
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/pkg/grid"
)

// ActionKind enumerates everything the player can do. Input decoding lives
// in cmd/game; the handler below is a pure state transform, which keeps it
// testable without a terminal.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMoveCursor
	ActionPlace
	ActionStartWave
	ActionStartAutoWaves
	ActionToggleFastForward
	ActionSelectTower
	ActionToggleShop
	ActionToggleSfx
	ActionToggleMusic
	ActionToggleOverlay
	ActionCancel
	ActionPickUpOrPlace
	ActionSell
	ActionUpgrade
	ActionSkipMap
	ActionToggleControls
)

// Action carries the kind plus its parameters. DX/DY are cursor deltas for
// ActionMoveCursor; Kind selects a cat for ActionSelectTower.
type Action struct {
	Kind ActionKind
	DX   int
	DY   int
	Cat  component.Kind
}

// HandleAction applies one player action and reports whether it changed
// anything. After game over nothing is accepted; the caller restarts by
// building a new Game.
func (g *Game) HandleAction(a Action) bool {
	if g.State.GameOver {
		return false
	}

	switch a.Kind {
	case ActionMoveCursor:
		g.Cursor.X += a.DX
		g.Cursor.Y += a.DY
		g.Cursor = grid.Clamp(config.BoardWidth, config.BoardHeight, g.Cursor)
		return true

	case ActionPlace:
		return g.PlaceSelected()

	case ActionStartWave:
		g.State.AutoWaves = false
		return g.spawn.StartWave()

	case ActionStartAutoWaves:
		g.State.AutoWaves = true
		if !g.State.WaveActive {
			return g.spawn.StartWave()
		}
		return true

	case ActionToggleFastForward:
		g.State.FastForward = !g.State.FastForward
		return true

	case ActionSelectTower:
		if g.TryUnlockOrSelect(a.Cat) {
			g.Overlay = true
			return true
		}
		return false

	case ActionToggleShop:
		g.ViewShop = !g.ViewShop
		return true

	case ActionToggleControls:
		g.ShowControls = !g.ShowControls
		return true

	case ActionToggleOverlay:
		g.Overlay = !g.Overlay
		return true

	case ActionCancel:
		if g.ViewShop || g.ShowControls {
			g.ViewShop = false
			g.ShowControls = false
			return true
		}
		if g.State.Held != nil {
			return g.CancelHold()
		}
		if g.Overlay {
			g.Overlay = false
			return true
		}
		return false

	case ActionPickUpOrPlace:
		if g.State.Held != nil {
			return g.TryPlaceHeld()
		}
		return g.PickUp()

	case ActionSell:
		return g.SellAtCursor()

	case ActionUpgrade:
		return g.UpgradeAtCursor()

	case ActionSkipMap:
		// Developer shortcut; wired behind a dedicated key in cmd/game.
		g.progression.AdvanceMap()
		return true
	}
	return false
}
