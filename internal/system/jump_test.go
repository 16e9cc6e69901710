// internal/system/jump_test.go
package system

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/pkg/grid"
)

func upgradedKitty(x, y int) component.Tower {
	tw := readyTower(component.KindKitty, x, y)
	defs.ApplyUpgrade(&tw)
	return tw
}

func TestJumpersNeverShareACell(t *testing.T) {
	st := straightState()
	// Both kitties sit far from the rats but inside the jump search radius.
	st.Towers = []component.Tower{upgradedKitty(4, 12), upgradedKitty(5, 12)}
	st.Enemies = []component.Enemy{
		{HP: 20, MaxHP: 20, PathProgress: 4},
		{HP: 20, MaxHP: 20, PathProgress: 6},
	}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())

	origins := cs.resolveJumps([]int{0, 1})
	if len(origins) != 2 {
		t.Fatalf("both jumpers must record an origin, got %d", len(origins))
	}
	a, b := st.Towers[0].Pos, st.Towers[1].Pos
	if a == b {
		t.Fatalf("two jumpers landed on the same cell %v", a)
	}
	for i, pos := range []grid.Position{a, b} {
		if st.IsOnPath(pos) {
			t.Fatalf("jumper %d landed on the path at %v", i, pos)
		}
	}
}

func TestJumpOnlyWithVictimInReach(t *testing.T) {
	st := straightState()
	st.Towers = []component.Tower{upgradedKitty(4, 12)}
	// No rats at all: the kitty must stay put.
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())

	origins := cs.resolveJumps([]int{0})
	if st.Towers[0].Pos != (grid.Position{X: 4, Y: 12}) {
		t.Fatalf("no victims, no jump: moved to %v", st.Towers[0].Pos)
	}
	if origins[0] != (grid.Position{X: 4, Y: 12}) {
		t.Fatalf("origin must still be recorded, got %v", origins[0])
	}
}

func TestUnupgradedKittyNeverJumps(t *testing.T) {
	st := straightState()
	st.Towers = []component.Tower{readyTower(component.KindKitty, 4, 12)}
	st.Enemies = []component.Enemy{{HP: 20, MaxHP: 20, PathProgress: 4}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())

	origins := cs.resolveJumps([]int{0})
	if len(origins) != 0 {
		t.Fatalf("plain kitties are not jumpers")
	}
	if st.Towers[0].Pos != (grid.Position{X: 4, Y: 12}) {
		t.Fatalf("plain kitty moved to %v", st.Towers[0].Pos)
	}
}

func TestJumpLandsWithinSearchRadius(t *testing.T) {
	st := straightState()
	st.Towers = []component.Tower{upgradedKitty(4, 12)}
	st.Enemies = []component.Enemy{{HP: 20, MaxHP: 20, PathProgress: 4}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())

	cs.resolveJumps([]int{0})
	landed := st.Towers[0].Pos
	origin := grid.Vec2{X: 4, Y: 12}
	limit := st.Towers[0].Range + config.JumpSearchBonus
	if !grid.InRange(origin, landed, limit) {
		t.Fatalf("landing %v outside the search radius %v", landed, limit)
	}
	// The destination must put the rat in melee reach.
	if cs.findTarget(st.Towers[0].Center(), st.Towers[0].Range, false) < 0 {
		t.Fatalf("landing %v has no victim in reach", landed)
	}
}

func TestFailedSwipeRevertsJump(t *testing.T) {
	st := straightState()
	st.Towers = []component.Tower{upgradedKitty(4, 12)}
	// The rat dies between jump resolution and the attack.
	st.Enemies = []component.Enemy{{HP: 20, MaxHP: 20, PathProgress: 4}}
	cs := NewCombatSystem(st, newTestRng(), event.NewDispatcher())

	origins := cs.resolveJumps([]int{0})
	if st.Towers[0].Pos == (grid.Position{X: 4, Y: 12}) {
		t.Fatalf("setup: kitty should have jumped")
	}
	st.Enemies[0].HP = 0

	if cs.fire(&st.Towers[0], origins, 0) {
		t.Fatalf("swipe with no live victim must decline")
	}
	if st.Towers[0].Pos != (grid.Position{X: 4, Y: 12}) {
		t.Fatalf("failed swipe must revert the jump, at %v", st.Towers[0].Pos)
	}
}
