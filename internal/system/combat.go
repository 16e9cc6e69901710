// internal/system/combat.go
package system

import (
	"math"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/utils"
	"cat-burrow-defense/pkg/grid"
)

// CombatSystem executes every ready cat's firing behavior and owns the one
// damage rule everything funnels through.
type CombatSystem struct {
	state      *entity.State
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewCombatSystem(state *entity.State, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{state: state, rng: rng, dispatcher: dispatcher}
}

// Update ticks cooldowns and fires every ready cat. Upgraded kitty
// relocations resolve as a batch before any attack lands, so two jumpers
// can never claim the same cell.
func (s *CombatSystem) Update(dt float64) {
	st := s.state
	for i := range st.Towers {
		st.Towers[i].Cooldown -= dt
	}

	var ready []int
	for i := range st.Towers {
		if st.Towers[i].Cooldown <= 0 {
			ready = append(ready, i)
		}
	}
	if len(ready) == 0 {
		return
	}

	origins := s.resolveJumps(ready)

	for _, i := range ready {
		t := &st.Towers[i]
		if !s.fire(t, origins, i) {
			continue
		}
		t.Cooldown = s.nextCooldown(t.FireRate)
		s.dispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: t.Kind})
	}
}

// fire runs one cat's behavior. It reports false when the cat declined to
// act; the cooldown is then left untouched and re-checked next tick.
func (s *CombatSystem) fire(t *component.Tower, origins map[int]grid.Position, index int) bool {
	switch t.Kind {
	case component.KindScout:
		return s.fireProjectiles(t)
	case component.KindThunder:
		return s.fireBeam(t)
	case component.KindFat:
		return s.firePulse(t)
	case component.KindKitty:
		if fired := s.fireSwipe(t); fired {
			return true
		}
		// A relocated kitty with nothing to hit reverts to where it
		// stood before the batch.
		if origin, jumped := origins[index]; jumped {
			t.Pos = origin
		}
		return false
	case component.KindTiger:
		return s.fireCone(t)
	case component.KindCatatonic:
		return s.fireSleep(t)
	}
	return false
}

// findTarget picks the live rat furthest along the path, limited to rng
// around center unless unbounded. Returns -1 when nothing qualifies. Ties
// go to the first rat found, which is spawn order.
func (s *CombatSystem) findTarget(center grid.Vec2, rng float64, unbounded bool) int {
	st := s.state
	best := -1
	bestProgress := -1.0
	r2 := rng * rng
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if !unbounded && grid.DistanceSquared(center, st.EnemyCell(e)) > r2 {
			continue
		}
		if e.PathProgress > bestProgress {
			bestProgress = e.PathProgress
			best = i
		}
	}
	return best
}

// ApplyDamage is the single damage rule: rats already at zero are skipped so
// a death pays its bounty exactly once per unit, even when several area
// attacks overlap in one tick.
func (s *CombatSystem) ApplyDamage(e *component.Enemy, damage int, splatTime float64) {
	if e.HP <= 0 {
		return
	}
	e.HP -= damage
	if e.HP <= 0 {
		s.state.Kibbles += defs.Bounty(e.Category)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: e.Category})
		return
	}
	s.state.HitSplats = append(s.state.HitSplats, component.HitSplat{
		Pos:      s.state.EnemyCell(e),
		TimeLeft: splatTime,
	})
}

func (s *CombatSystem) nextCooldown(fireRate float64) float64 {
	cd := fireRate/config.SpeedFactor + s.rng.FloatRange(-config.CooldownJitter, config.CooldownJitter)
	if cd < config.MinCooldown {
		cd = config.MinCooldown
	}
	return cd
}

// fireProjectiles launches one shot at the current target, or, for the
// upgraded scout, one each at the front, middle and back of the in-range
// pack.
func (s *CombatSystem) fireProjectiles(t *component.Tower) bool {
	st := s.state
	center := t.Center()

	if !t.Upgraded {
		ti := s.findTarget(center, t.Range, false)
		if ti < 0 {
			return false
		}
		s.launchAt(t, st.EnemyCell(&st.Enemies[ti]))
		return true
	}

	// Front, middle and back of the in-range rats sorted by progress.
	var inRange []int
	r2 := t.Range * t.Range
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if grid.DistanceSquared(center, st.EnemyCell(e)) > r2 {
			continue
		}
		inRange = append(inRange, i)
	}
	if len(inRange) == 0 {
		return false
	}
	for i := 1; i < len(inRange); i++ {
		for j := i; j > 0 && st.Enemies[inRange[j]].PathProgress > st.Enemies[inRange[j-1]].PathProgress; j-- {
			inRange[j], inRange[j-1] = inRange[j-1], inRange[j]
		}
	}
	picks := []int{inRange[0]}
	if len(inRange) > 2 {
		picks = append(picks, inRange[len(inRange)/2])
	}
	if len(inRange) > 1 {
		picks = append(picks, inRange[len(inRange)-1])
	}
	for _, ti := range picks {
		s.launchAt(t, st.EnemyCell(&st.Enemies[ti]))
	}
	return true
}

func (s *CombatSystem) launchAt(t *component.Tower, target grid.Position) {
	c := t.Center()
	s.state.Projectiles = append(s.state.Projectiles, component.Projectile{
		X:      c.X,
		Y:      c.Y,
		Target: target,
		Speed:  config.ProjectileSpeed,
		Damage: t.Damage,
	})
}

// fireBeam damages every rat inside a thin corridor toward the target:
// forward projection at least the behind-slack, perpendicular deviation at
// most the half-width. Range is unbounded.
func (s *CombatSystem) fireBeam(t *component.Tower) bool {
	st := s.state
	center := t.Center()
	ti := s.findTarget(center, t.Range, true)
	if ti < 0 {
		return false
	}

	target := st.EnemyCell(&st.Enemies[ti])
	dx := float64(target.X) - center.X
	dy := float64(target.Y) - center.Y
	length := math.Max(0.001, math.Hypot(dx, dy))
	ndx := dx / length
	ndy := dy / length

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		pos := st.EnemyCell(e)
		vx := float64(pos.X) - center.X
		vy := float64(pos.Y) - center.Y
		if vx*ndx+vy*ndy < config.BeamBehindSlack {
			continue
		}
		if math.Abs(vx*ndy-vy*ndx) <= config.BeamHalfWidth {
			s.ApplyDamage(e, t.Damage, config.SplatTimeBeam)
		}
	}

	// Decorative trace along the firing direction until the board edge.
	beam := component.Beam{TimeLeft: config.BeamTraceTime}
	bx, by := center.X, center.Y
	for i := 0; i < config.BeamTraceSteps; i++ {
		cell := grid.Position{X: int(math.Round(bx)), Y: int(math.Round(by))}
		if !grid.Contains(config.BoardWidth, config.BoardHeight, cell) {
			break
		}
		beam.Cells = append(beam.Cells, cell)
		bx += ndx * config.BeamTraceStep
		by += ndy * config.BeamTraceStep
	}
	st.Beams = append(st.Beams, beam)
	return true
}

// firePulse damages everything within range of the cat's center and spawns
// the expanding ring. The unupgraded profile gets a small slack on the
// damage radius.
func (s *CombatSystem) firePulse(t *component.Tower) bool {
	st := s.state
	center := t.Center()
	ti := s.findTarget(center, t.Range, false)
	if ti < 0 {
		return false
	}

	radius := t.Range
	if !t.Upgraded {
		radius += config.PulseSlack
	}
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if grid.InRange(center, st.EnemyCell(e), radius) {
			s.ApplyDamage(e, t.Damage, config.SplatTimePulse)
		}
	}

	st.Shockwaves = append(st.Shockwaves, component.Shockwave{
		Center:    center,
		MaxRadius: t.Range,
		Speed:     config.ShockwaveSpeed,
		TimeLeft:  config.ShockwaveTime,
	})
	return true
}

// swipeCells computes the rectangular attack footprint extending from the
// cat's center toward the target, oriented along whichever axis dominates
// the direction.
func (s *CombatSystem) swipeCells(center grid.Vec2, target grid.Position) []grid.Position {
	dx := float64(target.X) - center.X
	dy := float64(target.Y) - center.Y
	horizontal := math.Abs(dx) >= math.Abs(dy)

	primaryX, primaryY := 0, 0
	if horizontal {
		primaryX = fsign(dx)
		if primaryX == 0 {
			primaryX = 1
		}
	} else {
		primaryY = fsign(dy)
		if primaryY == 0 {
			primaryY = 1
		}
	}
	perpX, perpY := -primaryY, primaryX

	cx := int(math.Round(center.X))
	cy := int(math.Round(center.Y))
	var cells []grid.Position
	for step := 1; step <= config.SwipeDepth; step++ {
		for off := config.SwipeOffsetMin; off <= config.SwipeOffsetMax; off++ {
			cell := grid.Position{
				X: cx + primaryX*step + perpX*off,
				Y: cy + primaryY*step + perpY*off,
			}
			if grid.Contains(config.BoardWidth, config.BoardHeight, cell) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// fireSwipe hits every rat whose cell falls inside the swipe footprint.
func (s *CombatSystem) fireSwipe(t *component.Tower) bool {
	st := s.state
	center := t.Center()
	ti := s.findTarget(center, t.Range, false)
	if ti < 0 {
		return false
	}

	cells := s.swipeCells(center, st.EnemyCell(&st.Enemies[ti]))
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		pos := st.EnemyCell(e)
		for _, c := range cells {
			if c == pos {
				s.ApplyDamage(e, t.Damage, config.SplatTimeSwipe)
				break
			}
		}
	}
	st.AreaHighlights = append(st.AreaHighlights, component.AreaHighlight{
		Cells:    cells,
		TimeLeft: config.AreaHighlightTime,
	})
	return true
}

// fireCone damages rats within range and inside the fixed angular half-width
// of the vector toward the target. The upgraded tiger has a knockback proc
// that shoves every hit rat back along the path.
func (s *CombatSystem) fireCone(t *component.Tower) bool {
	st := s.state
	center := t.Center()
	ti := s.findTarget(center, t.Range, false)
	if ti < 0 {
		return false
	}

	target := st.EnemyCell(&st.Enemies[ti])
	dx := float64(target.X) - center.X
	dy := float64(target.Y) - center.Y
	length := math.Max(0.001, math.Hypot(dx, dy))
	ndx := dx / length
	ndy := dy / length

	knockback := t.Upgraded && s.rng.Chance(config.KnockbackChance)

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		pos := st.EnemyCell(e)
		if !grid.InRange(center, pos, t.Range) {
			continue
		}
		vx := float64(pos.X) - center.X
		vy := float64(pos.Y) - center.Y
		dist := math.Hypot(vx, vy)
		if dist > 0.001 && (vx*ndx+vy*ndy)/dist < config.ConeCosThreshold {
			continue
		}
		s.ApplyDamage(e, t.Damage, config.SplatTimeSwipe)
		if knockback && e.HP > 0 {
			e.PathProgress -= config.KnockbackDistance
			if e.PathProgress < 0 {
				e.PathProgress = 0
			}
		}
	}

	st.AreaHighlights = append(st.AreaHighlights, component.AreaHighlight{
		Cells:     s.coneCells(center, ndx, ndy, t.Range),
		TimeLeft:  config.AreaHighlightTime,
		Knockback: knockback,
	})
	return true
}

func (s *CombatSystem) coneCells(center grid.Vec2, ndx, ndy, rng float64) []grid.Position {
	var cells []grid.Position
	for y := 0; y < config.BoardHeight; y++ {
		for x := 0; x < config.BoardWidth; x++ {
			cell := grid.Position{X: x, Y: y}
			if !grid.InRange(center, cell, rng) {
				continue
			}
			vx := float64(x) - center.X
			vy := float64(y) - center.Y
			dist := math.Hypot(vx, vy)
			if dist < 0.001 || (vx*ndx+vy*ndy)/dist >= config.ConeCosThreshold {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// fireSleep naps every rat inside the field. Reapplication never shortens an
// active nap. No damage, no bounty.
func (s *CombatSystem) fireSleep(t *component.Tower) bool {
	st := s.state
	center := t.Center()
	field := SleepFieldRadius(t)
	if s.findTarget(center, field, false) < 0 {
		return false
	}

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if grid.InRange(center, st.EnemyCell(e), field) {
			if e.NapTimer < config.NapDuration {
				e.NapTimer = config.NapDuration
			}
		}
	}

	st.Shockwaves = append(st.Shockwaves, component.Shockwave{
		Center:    center,
		MaxRadius: field,
		Speed:     config.ShockwaveSpeed,
		TimeLeft:  config.SleepWaveTime,
		Sleep:     true,
	})
	return true
}

// SleepFieldRadius is the catatonic cat's effective field, including the
// upgrade bonus. The placement spacing rule uses the same number.
func SleepFieldRadius(t *component.Tower) float64 {
	r := t.Range
	if t.Upgraded {
		r += config.NapUpgradeBonus
	}
	return r
}

func fsign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
