// internal/system/movement_test.go
package system

import (
	"testing"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
	"cat-burrow-defense/internal/utils"
	"cat-burrow-defense/pkg/grid"
)

// straightState builds a state with a straight horizontal path at y=5 from
// x=0 to x=20.
func straightState() *entity.State {
	st := &entity.State{
		Kibbles:  config.StartingKibbles,
		Lives:    config.StartingLives,
		Unlocked: map[component.Kind]bool{component.KindScout: true},
	}
	st.Path = grid.BuildPath([]grid.Position{{X: 0, Y: 5}, {X: 20, Y: 5}})
	st.PathMask = grid.BuildPathMask(st.Path, 1, config.BoardWidth, config.BoardHeight)
	return st
}

func TestMovementAdvances(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{{Speed: 2.0, HP: 5, MaxHP: 5}}
	ms := NewMovementSystem(st, event.NewDispatcher())

	ms.Update(0.5)
	if got := st.Enemies[0].PathProgress; got != 1.0 {
		t.Fatalf("want progress 1.0, got %v", got)
	}
	ms.Update(0.5)
	if got := st.Enemies[0].PathProgress; got != 2.0 {
		t.Fatalf("want progress 2.0, got %v", got)
	}
}

func TestNappingRatHoldsPosition(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{{Speed: 2.0, HP: 5, MaxHP: 5, PathProgress: 3, NapTimer: 1.0}}
	ms := NewMovementSystem(st, event.NewDispatcher())

	ms.Update(0.5)
	e := &st.Enemies[0]
	if e.PathProgress != 3 {
		t.Fatalf("napping rat must not advance, got %v", e.PathProgress)
	}
	if e.NapTimer != 0.5 {
		t.Fatalf("nap timer must burn down, got %v", e.NapTimer)
	}

	// The wake-up tick still does not advance; movement resumes after.
	ms.Update(0.75)
	if e.NapTimer != 0 {
		t.Fatalf("nap timer must clamp at zero, got %v", e.NapTimer)
	}
	if e.PathProgress != 3 {
		t.Fatalf("wake-up tick must not advance, got %v", e.PathProgress)
	}
	ms.Update(0.5)
	if e.PathProgress != 4 {
		t.Fatalf("movement must resume after the nap, got %v", e.PathProgress)
	}
}

func TestEscapeCostsOneLife(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{{Speed: 10.0, HP: 5, MaxHP: 5, PathProgress: 19.5}}
	dispatcher := event.NewDispatcher()
	losses := 0
	dispatcher.Subscribe(event.LifeLost, listenerFunc(func(event.Event) { losses++ }))
	ms := NewMovementSystem(st, dispatcher)

	ms.Update(0.1)
	e := &st.Enemies[0]
	if e.HP != 0 {
		t.Fatalf("escaped rat must be zeroed, hp=%d", e.HP)
	}
	if st.Lives != config.StartingLives-1 {
		t.Fatalf("want %d lives, got %d", config.StartingLives-1, st.Lives)
	}

	// A dead rat is skipped entirely on later ticks.
	ms.Update(0.1)
	if st.Lives != config.StartingLives-1 || losses != 1 {
		t.Fatalf("escape must cost exactly one life: lives=%d losses=%d", st.Lives, losses)
	}
}

func TestEscapePaysNoBounty(t *testing.T) {
	st := straightState()
	st.Enemies = []component.Enemy{{Speed: 10.0, HP: 5, MaxHP: 5, PathProgress: 19.5}}
	ms := NewMovementSystem(st, event.NewDispatcher())

	before := st.Kibbles
	ms.Update(0.1)
	if st.Kibbles != before {
		t.Fatalf("escape must not pay a bounty: %d -> %d", before, st.Kibbles)
	}
}

func TestLivesNeverNegative(t *testing.T) {
	st := straightState()
	st.Lives = 0
	st.Enemies = []component.Enemy{{Speed: 10.0, HP: 5, MaxHP: 5, PathProgress: 19.5}}
	ms := NewMovementSystem(st, event.NewDispatcher())

	ms.Update(0.1)
	if st.Lives != 0 {
		t.Fatalf("lives must clamp at zero, got %d", st.Lives)
	}
}

// listenerFunc adapts a function to the event.Listener interface.
type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }

// newTestRng returns a deterministic generator for system tests.
func newTestRng() *utils.PRNGService {
	return utils.NewPRNGService(1234)
}
