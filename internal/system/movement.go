// internal/system/movement.go
package system

import (
	"math"

	"cat-burrow-defense/internal/entity"
	"cat-burrow-defense/internal/event"
)

// MovementSystem advances rats along the path, decays nap timers, and
// handles escapes at the burrow end.
type MovementSystem struct {
	state      *entity.State
	dispatcher *event.Dispatcher
}

func NewMovementSystem(state *entity.State, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{state: state, dispatcher: dispatcher}
}

// Update moves every rat by speed*dt. Napping rats burn their timer instead
// of advancing. A rat whose floored progress reaches the last path index has
// escaped: it is zeroed (no bounty) and costs one life, exactly once, since
// only live rats are checked and the zeroing happens in the same pass.
func (s *MovementSystem) Update(dt float64) {
	st := s.state
	end := len(st.Path) - 1

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if e.NapTimer > 0 {
			e.NapTimer -= dt
			if e.NapTimer < 0 {
				e.NapTimer = 0
			}
			continue
		}
		e.PathProgress += e.Speed * dt
		if int(math.Floor(e.PathProgress)) >= end {
			e.HP = 0
			if st.Lives > 0 {
				st.Lives--
			}
			s.dispatcher.Dispatch(event.Event{Type: event.LifeLost})
		}
	}
}
