// internal/app/placement.go
package app

import (
	"math"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/system"
	"cat-burrow-defense/pkg/grid"
)

// CanPlace is the placement predicate shared by the action path and the
// renderer's preview: every footprint cell must be on the board, off the
// path corridor, and free of other cats; catatonic cats additionally keep
// their nap fields from overlapping each other.
func (g *Game) CanPlace(pos grid.Position, size int, kind component.Kind, fieldRange float64, upgraded bool) bool {
	if pos.X < 0 || pos.Y < 0 ||
		pos.X+size-1 >= config.BoardWidth || pos.Y+size-1 >= config.BoardHeight {
		return false
	}
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			if g.State.IsOnPath(grid.Position{X: pos.X + dx, Y: pos.Y + dy}) {
				return false
			}
		}
	}
	if g.overlapsTower(pos, size) {
		return false
	}
	if kind == component.KindCatatonic && g.sleepFieldsCollide(pos, size, fieldRange, upgraded) {
		return false
	}
	return true
}

func (g *Game) overlapsTower(pos grid.Position, size int) bool {
	x2 := pos.X + size - 1
	y2 := pos.Y + size - 1
	for i := range g.State.Towers {
		t := &g.State.Towers[i]
		tx2 := t.Pos.X + t.Size - 1
		ty2 := t.Pos.Y + t.Size - 1
		if !(pos.X > tx2 || x2 < t.Pos.X || pos.Y > ty2 || y2 < t.Pos.Y) {
			return true
		}
	}
	return false
}

// sleepFieldsCollide rejects a catatonic placement whose field would touch
// another catatonic's field: center distance within the sum of both radii,
// upgrade bonuses included.
func (g *Game) sleepFieldsCollide(pos grid.Position, size int, fieldRange float64, upgraded bool) bool {
	own := fieldRange
	if upgraded {
		own += config.NapUpgradeBonus
	}
	half := (float64(size) - 1.0) / 2.0
	cx := float64(pos.X) + half
	cy := float64(pos.Y) + half

	for i := range g.State.Towers {
		t := &g.State.Towers[i]
		if t.Kind != component.KindCatatonic {
			continue
		}
		other := system.SleepFieldRadius(t)
		c := t.Center()
		if math.Hypot(c.X-cx, c.Y-cy) <= own+other {
			return true
		}
	}
	return false
}

// PlaceSelected buys the selected kind at the cursor. Silent no-op when the
// kind is locked, unaffordable, or the spot invalid.
func (g *Game) PlaceSelected() bool {
	if g.State.Held != nil {
		return g.TryPlaceHeld()
	}
	kind := g.SelectedKind
	if !g.State.Unlocked[kind] {
		return false
	}
	def := defs.GetTowerDef(kind)
	if g.State.Kibbles < def.Cost {
		return false
	}
	if !g.CanPlace(g.Cursor, def.Size, kind, def.Range, false) {
		return false
	}

	t := defs.NewTower(kind, g.Cursor.X, g.Cursor.Y)
	// Random initial cooldown desynchronizes cats bought on the same tick.
	t.Cooldown = g.Rng.FloatRange(config.PlacementCooldownMin, t.FireRate)
	g.State.Towers = append(g.State.Towers, t)
	g.State.Kibbles -= def.Cost
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: kind})
	return true
}

func (g *Game) towerIndexAt(pos grid.Position) int {
	for i := range g.State.Towers {
		if g.State.Towers[i].Covers(pos) {
			return i
		}
	}
	return -1
}

// PickUp lifts the cat under the cursor into the held slot, remembering its
// original position for a later cancel.
func (g *Game) PickUp() bool {
	if g.State.Held != nil {
		return false
	}
	idx := g.towerIndexAt(g.Cursor)
	if idx < 0 {
		return false
	}
	held := component.HeldTower{
		Tower:    g.State.Towers[idx],
		Original: g.State.Towers[idx].Pos,
	}
	g.State.Held = &held
	g.State.Towers = append(g.State.Towers[:idx], g.State.Towers[idx+1:]...)
	g.Overlay = true // placement cues stay visible while holding
	return true
}

// TryPlaceHeld commits the held cat at the cursor, cost-free. Stats carry
// over; only the cooldown re-rolls.
func (g *Game) TryPlaceHeld() bool {
	held := g.State.Held
	if held == nil {
		return false
	}
	t := held.Tower
	if !g.CanPlace(g.Cursor, t.Size, t.Kind, t.Range, t.Upgraded) {
		return false
	}
	t.Pos = g.Cursor
	t.Cooldown = g.Rng.FloatRange(config.PlacementCooldownMin, t.FireRate)
	g.State.Towers = append(g.State.Towers, t)
	g.State.Held = nil
	g.Overlay = false
	return true
}

// CancelHold returns the held cat to its original spot unconditionally.
func (g *Game) CancelHold() bool {
	held := g.State.Held
	if held == nil {
		return false
	}
	t := held.Tower
	t.Pos = held.Original
	g.State.Towers = append(g.State.Towers, t)
	g.State.Held = nil
	g.Overlay = false
	return true
}

// SellAtCursor refunds 60% of the base cost, rounded to nearest, and frees
// the footprint.
func (g *Game) SellAtCursor() bool {
	if g.State.Held != nil {
		return false
	}
	idx := g.towerIndexAt(g.Cursor)
	if idx < 0 {
		return false
	}
	kind := g.State.Towers[idx].Kind
	refund := int(math.Round(float64(defs.GetTowerDef(kind).Cost) * config.SellRefundFactor))
	g.State.Kibbles += refund
	g.State.Towers = append(g.State.Towers[:idx], g.State.Towers[idx+1:]...)
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: kind})
	return true
}

// UpgradeAtCursor applies the one-shot upgrade to the cat under the cursor.
// Already-upgraded cats and thin wallets decline silently.
func (g *Game) UpgradeAtCursor() bool {
	idx := g.towerIndexAt(g.Cursor)
	if idx < 0 {
		return false
	}
	t := &g.State.Towers[idx]
	if t.Upgraded {
		return false
	}
	cost := defs.UpgradeCost(t.Kind)
	if g.State.Kibbles < cost {
		return false
	}
	g.State.Kibbles -= cost
	defs.ApplyUpgrade(t)
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: t.Kind})
	return true
}

// TryUnlockOrSelect selects an unlocked kind, or buys the permanent unlock
// when affordable and then selects it.
func (g *Game) TryUnlockOrSelect(kind component.Kind) bool {
	if g.State.Unlocked[kind] {
		g.SelectedKind = kind
		return true
	}
	cost := defs.UnlockCost(kind)
	if g.State.Kibbles < cost {
		return false
	}
	g.State.Kibbles -= cost
	g.State.Unlocked[kind] = true
	g.SelectedKind = kind
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerUnlocked, Data: kind})
	return true
}
