// internal/system/effects.go
package system

import (
	"cat-burrow-defense/internal/entity"
)

// EffectSystem counts down transient visuals. It runs on the unscaled tick
// so fast-forward does not strobe the presentation.
type EffectSystem struct {
	state *entity.State
}

func NewEffectSystem(state *entity.State) *EffectSystem {
	return &EffectSystem{state: state}
}

func (s *EffectSystem) Update(dt float64) {
	st := s.state

	waves := st.Shockwaves[:0]
	for _, sw := range st.Shockwaves {
		sw.Radius += sw.Speed * dt
		sw.TimeLeft -= dt
		if sw.TimeLeft > 0 && sw.Radius <= sw.MaxRadius {
			waves = append(waves, sw)
		}
	}
	st.Shockwaves = waves

	beams := st.Beams[:0]
	for _, b := range st.Beams {
		b.TimeLeft -= dt
		if b.TimeLeft > 0 {
			beams = append(beams, b)
		}
	}
	st.Beams = beams

	areas := st.AreaHighlights[:0]
	for _, a := range st.AreaHighlights {
		a.TimeLeft -= dt
		if a.TimeLeft > 0 {
			areas = append(areas, a)
		}
	}
	st.AreaHighlights = areas

	splats := st.HitSplats[:0]
	for _, hs := range st.HitSplats {
		hs.TimeLeft -= dt
		if hs.TimeLeft > 0 {
			splats = append(splats, hs)
		}
	}
	st.HitSplats = splats
}
