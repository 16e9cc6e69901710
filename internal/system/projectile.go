// internal/system/projectile.go
package system

import (
	"math"

	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/entity"
)

// ProjectileSystem moves scout shots toward their target cell and resolves
// impacts. Travel is decoupled from hit resolution: on arrival the shot
// damages whichever rat is nearest the impact point, not necessarily the
// rat it was aimed at.
type ProjectileSystem struct {
	state  *entity.State
	combat *CombatSystem
}

func NewProjectileSystem(state *entity.State, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{state: state, combat: combat}
}

// Update advances projectiles by speed*dt, snapping onto the target cell
// when the remaining distance is within one step.
func (s *ProjectileSystem) Update(dt float64) {
	for i := range s.state.Projectiles {
		p := &s.state.Projectiles[i]
		dx := float64(p.Target.X) - p.X
		dy := float64(p.Target.Y) - p.Y
		dist := math.Hypot(dx, dy)
		step := p.Speed * dt
		if dist <= step || dist < 1e-3 {
			p.X = float64(p.Target.X)
			p.Y = float64(p.Target.Y)
			continue
		}
		norm := step / dist
		p.X += dx * norm
		p.Y += dy * norm
	}
}

// Resolve settles arrived projectiles against the nearest live rat within
// the impact radius and keeps the rest in flight.
func (s *ProjectileSystem) Resolve() {
	st := s.state
	survivors := st.Projectiles[:0]
	for _, p := range st.Projectiles {
		dx := float64(p.Target.X) - p.X
		dy := float64(p.Target.Y) - p.Y
		if dx*dx+dy*dy > config.ProjectileImpactEps {
			survivors = append(survivors, p)
			continue
		}

		hit := -1
		bestD2 := config.ProjectileImpactRadius
		for i := range st.Enemies {
			e := &st.Enemies[i]
			if e.HP <= 0 {
				continue
			}
			pos := st.EnemyCell(e)
			ddx := float64(pos.X) - p.X
			ddy := float64(pos.Y) - p.Y
			d2 := ddx*ddx + ddy*ddy
			if d2 < bestD2 {
				bestD2 = d2
				hit = i
			}
		}
		if hit >= 0 {
			s.combat.ApplyDamage(&st.Enemies[hit], p.Damage, config.SplatTimeProjectile)
		}
	}
	st.Projectiles = survivors
}
