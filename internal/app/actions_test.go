// internal/app/actions_test.go
package app

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/pkg/grid"
)

func TestCursorClampsToBoard(t *testing.T) {
	g := newTestGame()
	g.Cursor = grid.Position{X: 0, Y: 0}

	g.HandleAction(Action{Kind: ActionMoveCursor, DX: -1})
	g.HandleAction(Action{Kind: ActionMoveCursor, DY: -1})
	if g.Cursor != (grid.Position{X: 0, Y: 0}) {
		t.Fatalf("cursor must clamp at the origin, got %v", g.Cursor)
	}

	for i := 0; i < 100; i++ {
		g.HandleAction(Action{Kind: ActionMoveCursor, DX: 1, DY: 1})
	}
	want := grid.Position{X: config.BoardWidth - 1, Y: config.BoardHeight - 1}
	if g.Cursor != want {
		t.Fatalf("cursor must clamp at the far corner, got %v", g.Cursor)
	}
}

func TestStartWaveActionClearsAuto(t *testing.T) {
	g := newTestGame()
	g.State.AutoWaves = true

	if !g.HandleAction(Action{Kind: ActionStartWave}) {
		t.Fatalf("wave must start")
	}
	if g.State.AutoWaves {
		t.Fatalf("manual wave start disables auto-wave")
	}
	if g.State.Wave != 1 || !g.State.WaveActive {
		t.Fatalf("wave state: wave=%d active=%v", g.State.Wave, g.State.WaveActive)
	}
}

func TestAutoWaveAction(t *testing.T) {
	g := newTestGame()
	if !g.HandleAction(Action{Kind: ActionStartAutoWaves}) {
		t.Fatalf("auto-wave must engage")
	}
	if !g.State.AutoWaves || !g.State.WaveActive {
		t.Fatalf("auto=%v active=%v", g.State.AutoWaves, g.State.WaveActive)
	}

	// Engaging during an active wave only flips the flag.
	g.State.AutoWaves = false
	if !g.HandleAction(Action{Kind: ActionStartAutoWaves}) {
		t.Fatalf("re-engage must be accepted")
	}
	if g.State.Wave != 1 {
		t.Fatalf("no extra wave mid-wave, got %d", g.State.Wave)
	}
}

func TestFastForwardToggle(t *testing.T) {
	g := newTestGame()
	g.HandleAction(Action{Kind: ActionToggleFastForward})
	if !g.State.FastForward {
		t.Fatalf("fast-forward must engage")
	}
	g.HandleAction(Action{Kind: ActionToggleFastForward})
	if g.State.FastForward {
		t.Fatalf("second toggle must disengage")
	}
}

func TestSelectLockedTowerFails(t *testing.T) {
	g := newTestGame()
	if g.HandleAction(Action{Kind: ActionSelectTower, Cat: component.KindTiger}) {
		t.Fatalf("selecting an unaffordable locked cat must fail")
	}
	if g.SelectedKind != component.KindScout {
		t.Fatalf("selection must not change, got %v", g.SelectedKind)
	}
}

func TestCancelPriorities(t *testing.T) {
	g := newTestGame()
	g.ViewShop = true
	g.ShowControls = true

	// First cancel closes the panels.
	g.HandleAction(Action{Kind: ActionCancel})
	if g.ViewShop || g.ShowControls {
		t.Fatalf("cancel must close open panels")
	}

	// With a held cat, cancel returns it.
	g.Cursor = grid.Position{X: 3, Y: 2}
	g.PlaceSelected()
	g.PickUp()
	g.HandleAction(Action{Kind: ActionCancel})
	if g.State.Held != nil {
		t.Fatalf("cancel must drop the held cat back")
	}

	// Otherwise cancel hides the overlay.
	g.Overlay = true
	g.HandleAction(Action{Kind: ActionCancel})
	if g.Overlay {
		t.Fatalf("cancel must hide the range overlay")
	}
}

func TestGameOverFreezesInput(t *testing.T) {
	g := newTestGame()
	g.State.GameOver = true

	if g.HandleAction(Action{Kind: ActionMoveCursor, DX: 1}) {
		t.Fatalf("no input after game over")
	}
	if g.HandleAction(Action{Kind: ActionStartWave}) {
		t.Fatalf("no waves after game over")
	}
}

func TestGameOverFreezesTick(t *testing.T) {
	g := newTestGame()
	g.HandleAction(Action{Kind: ActionStartWave})
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	rats := len(g.State.Enemies)
	if rats == 0 {
		t.Fatalf("setup: ticking an active wave should spawn rats")
	}

	g.State.GameOver = true
	snapshot := g.State.Enemies[0].PathProgress
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.State.Enemies[0].PathProgress != snapshot {
		t.Fatalf("the simulation must freeze after game over")
	}
}

func TestSkipMapAction(t *testing.T) {
	g := newTestGame()
	if !g.HandleAction(Action{Kind: ActionSkipMap}) {
		t.Fatalf("skip must be handled")
	}
	if g.State.MapIndex != 1 {
		t.Fatalf("skip must advance the map, index=%d", g.State.MapIndex)
	}
}

func TestShopAndControlsToggles(t *testing.T) {
	g := newTestGame()
	g.HandleAction(Action{Kind: ActionToggleShop})
	if !g.ViewShop {
		t.Fatalf("shop must open")
	}
	g.HandleAction(Action{Kind: ActionToggleControls})
	if !g.ShowControls {
		t.Fatalf("controls must open")
	}
	g.HandleAction(Action{Kind: ActionToggleOverlay})
	if g.Overlay {
		t.Fatalf("overlay starts on and must toggle off")
	}
}
