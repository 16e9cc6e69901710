// internal/component/effects.go
package component

import "cat-burrow-defense/pkg/grid"

// Transient effects are countdown-timer objects with no gameplay role once
// created, except Projectile, which still carries unresolved damage until
// impact.

// HitSplat marks a cell where a rat took non-lethal damage.
type HitSplat struct {
	Pos      grid.Position
	TimeLeft float64
}

// Projectile travels toward a fixed target cell and resolves against the
// nearest rat to the impact point on arrival.
type Projectile struct {
	X      float64
	Y      float64
	Target grid.Position
	Speed  float64 // cells per second
	Damage int
}

// Shockwave is a ring expanding from radius 0 to MaxRadius. Sleep waves are
// drawn differently and come from the catatonic cat.
type Shockwave struct {
	Center    grid.Vec2
	Radius    float64
	MaxRadius float64
	Speed     float64
	TimeLeft  float64
	Sleep     bool
}

// Beam is the decorative trace of a thunder shot.
type Beam struct {
	Cells    []grid.Position
	TimeLeft float64
}

// AreaHighlight flashes the cells covered by a swipe or cone blast.
// Knockback marks the cone's knockback proc for distinct rendering.
type AreaHighlight struct {
	Cells     []grid.Position
	TimeLeft  float64
	Knockback bool
}
