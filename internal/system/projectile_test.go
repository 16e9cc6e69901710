// internal/system/projectile_test.go
package system

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/pkg/grid"
)

func TestProjectileFliesAndSnaps(t *testing.T) {
	st := straightState()
	st.Projectiles = []component.Projectile{{
		X: 0, Y: 5, Target: grid.Position{X: 10, Y: 5}, Speed: 17, Damage: 3,
	}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())
	ps := NewProjectileSystem(st, cs)

	ps.Update(0.25)
	p := st.Projectiles[0]
	if p.X <= 0 || p.X >= 10 || p.Y != 5 {
		t.Fatalf("projectile should be mid-flight, at (%v, %v)", p.X, p.Y)
	}

	ps.Update(1.0)
	p = st.Projectiles[0]
	if p.X != 10 || p.Y != 5 {
		t.Fatalf("projectile must snap onto the target cell, at (%v, %v)", p.X, p.Y)
	}
}

func TestResolveHitsNearestRat(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{
		{HP: 10, MaxHP: 10, PathProgress: 10}, // at the impact cell
		{HP: 10, MaxHP: 10, PathProgress: 12},
	}
	st.Projectiles = []component.Projectile{{
		X: 10, Y: 5, Target: grid.Position{X: 10, Y: 5}, Speed: 17, Damage: 3,
	}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())
	ps := NewProjectileSystem(st, cs)

	ps.Resolve()
	if st.Enemies[0].HP != 7 {
		t.Fatalf("nearest rat takes the hit, hp=%d", st.Enemies[0].HP)
	}
	if st.Enemies[1].HP != 10 {
		t.Fatalf("other rat untouched, hp=%d", st.Enemies[1].HP)
	}
	if len(st.Projectiles) != 0 {
		t.Fatalf("arrived projectile must be consumed, %d left", len(st.Projectiles))
	}
}

func TestResolveKeepsInFlightShots(t *testing.T) {
	st := straightState()
	st.Projectiles = []component.Projectile{{
		X: 2, Y: 5, Target: grid.Position{X: 10, Y: 5}, Speed: 17, Damage: 3,
	}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())
	ps := NewProjectileSystem(st, cs)

	ps.Resolve()
	if len(st.Projectiles) != 1 {
		t.Fatalf("in-flight projectile must survive resolution")
	}
}

func TestResolveWithNoRatNearby(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{{HP: 10, MaxHP: 10, PathProgress: 18}}
	st.Projectiles = []component.Projectile{{
		X: 2, Y: 5, Target: grid.Position{X: 2, Y: 5}, Speed: 17, Damage: 3,
	}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())
	ps := NewProjectileSystem(st, cs)

	ps.Resolve()
	if st.Enemies[0].HP != 10 {
		t.Fatalf("a whiffed shot damages nothing, hp=%d", st.Enemies[0].HP)
	}
	if len(st.Projectiles) != 0 {
		t.Fatalf("a whiffed shot is still consumed")
	}
}
