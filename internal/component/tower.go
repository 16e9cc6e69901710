// internal/component/tower.go
package component

import "cat-burrow-defense/pkg/grid"

// Kind identifies a cat type. Each kind maps to exactly one firing behavior;
// the set is closed and extended only by adding variants here and to the
// switches that consume it.
type Kind int

const (
	KindScout     Kind = iota // direct projectile
	KindThunder               // beam corridor, unbounded range
	KindFat                   // expanding-ring area pulse
	KindKitty                 // melee swipe; relocating when upgraded
	KindTiger                 // directional cone blast
	KindCatatonic             // sleep field, no damage
)

// KindCount is the number of cat kinds, for shop iteration.
const KindCount = 6

func (k Kind) String() string {
	switch k {
	case KindScout:
		return "Scout Cat"
	case KindThunder:
		return "Thundercat"
	case KindFat:
		return "Fat Cat"
	case KindKitty:
		return "Kitty Cat"
	case KindTiger:
		return "Tiger Cat"
	case KindCatatonic:
		return "Catatonic Cat"
	}
	return "Cat"
}

// Tower is a placed defensive unit.
type Tower struct {
	Pos      grid.Position // top-left of the footprint
	Size     int           // square footprint edge, 1 or larger
	Kind     Kind
	Damage   int
	Range    float64
	FireRate float64 // seconds between shots, before pacing scaling
	Cooldown float64 // time until ready; <= 0 means ready
	Upgraded bool    // one-shot permanent enhancement
}

// Center returns the continuous center of the tower footprint.
func (t *Tower) Center() grid.Vec2 {
	half := (float64(t.Size) - 1.0) / 2.0
	return grid.Vec2{X: float64(t.Pos.X) + half, Y: float64(t.Pos.Y) + half}
}

// Cells returns every board cell of the footprint.
func (t *Tower) Cells() []grid.Position {
	cells := make([]grid.Position, 0, t.Size*t.Size)
	for dy := 0; dy < t.Size; dy++ {
		for dx := 0; dx < t.Size; dx++ {
			cells = append(cells, grid.Position{X: t.Pos.X + dx, Y: t.Pos.Y + dy})
		}
	}
	return cells
}

// Covers reports whether the footprint includes the given cell.
func (t *Tower) Covers(p grid.Position) bool {
	return p.X >= t.Pos.X && p.X <= t.Pos.X+t.Size-1 &&
		p.Y >= t.Pos.Y && p.Y <= t.Pos.Y+t.Size-1
}

// HeldTower is a picked-up cat awaiting re-placement. Original remembers
// where it came from so a cancel can restore it unconditionally.
type HeldTower struct {
	Tower    Tower
	Original grid.Position
}
