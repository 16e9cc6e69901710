// internal/system/jump.go
package system

import (
	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/pkg/grid"
)

// resolveJumps relocates every upgraded kitty that is ready this tick, as a
// batch: destinations are reserved before anyone attacks, so two jumpers
// never land on the same cell. Returns the pre-jump position of each jumper
// (moved or not) so a failed attack can revert.
func (s *CombatSystem) resolveJumps(ready []int) map[int]grid.Position {
	st := s.state

	var jumpers []int
	jumperSet := make(map[int]bool)
	for _, i := range ready {
		t := &st.Towers[i]
		if t.Kind == component.KindKitty && t.Upgraded {
			jumpers = append(jumpers, i)
			jumperSet[i] = true
		}
	}
	origins := make(map[int]grid.Position)
	if len(jumpers) == 0 {
		return origins
	}

	// Static occupancy of every non-jumping footprint.
	occupied := make(map[grid.Position]bool)
	for i := range st.Towers {
		if jumperSet[i] {
			continue
		}
		for _, c := range st.Towers[i].Cells() {
			occupied[c] = true
		}
	}

	// Reserve each jumper's current cell up front: a kitty that finds no
	// better spot stays put, and nobody else may land there.
	reserved := make(map[grid.Position]bool)
	for _, i := range jumpers {
		reserved[st.Towers[i].Pos] = true
	}

	order := append([]int(nil), jumpers...)
	s.rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })

	for _, i := range order {
		t := &st.Towers[i]
		origins[i] = t.Pos
		center := t.Center()
		searchRange := t.Range + config.JumpSearchBonus

		var candidates []grid.Position
		for y := 0; y < config.BoardHeight; y++ {
			for x := 0; x < config.BoardWidth; x++ {
				cell := grid.Position{X: x, Y: y}
				if cell == t.Pos {
					continue
				}
				if !grid.InRange(center, cell, searchRange) {
					continue
				}
				if st.IsOnPath(cell) || occupied[cell] || reserved[cell] {
					continue
				}
				if !s.jumpCellHasVictim(t, cell) {
					continue
				}
				candidates = append(candidates, cell)
			}
		}

		s.rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		for _, cell := range candidates {
			// Re-check at accept time; earlier jumpers in this pass may
			// have claimed it.
			if reserved[cell] {
				continue
			}
			reserved[cell] = true
			t.Pos = cell
			break
		}
	}
	return origins
}

// jumpCellHasVictim reports whether a kitty standing at cell would find a
// target in melee range with at least one live rat inside the resulting
// swipe footprint.
func (s *CombatSystem) jumpCellHasVictim(t *component.Tower, cell grid.Position) bool {
	st := s.state
	probe := *t
	probe.Pos = cell
	center := probe.Center()

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
				return true
			}
		}
	}
	return false
}
