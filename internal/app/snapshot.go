// internal/app/snapshot.go
package app

import (
	"cat-burrow-defense/internal/config"
	"cat-burrow-defense/internal/defs"
	"cat-burrow-defense/internal/render"
)

// Snapshot builds the view model for the current tick. SfxOn/MusicOn come
// from the audio layer, which the game core does not know about.
func (g *Game) Snapshot(sfxOn, musicOn bool) *render.Frame {
	st := g.State
	m := st.CurrentMap()

	f := &render.Frame{
		Width:      config.BoardWidth,
		Height:     config.BoardHeight,
		Background: m.Background,
		PathColor:  m.PathColor,
		PathMask:   st.PathMask,
		Cursor:     g.Cursor,
		Overlay:    g.Overlay,
		ViewShop:   g.ViewShop,
		Controls:   g.ShowControls,
	}

	for i := range st.Towers {
		t := &st.Towers[i]
		f.Towers = append(f.Towers, render.TowerView{
			Pos:       t.Pos,
			Size:      t.Size,
			Kind:      t.Kind,
			Upgraded:  t.Upgraded,
			Range:     t.Range,
			ShowRange: defs.GetTowerDef(t.Kind).ShowRange,
		})
	}
	for i := range st.Enemies {
		e := &st.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		f.Enemies = append(f.Enemies, render.EnemyView{
			Pos:         st.EnemyCell(e),
			Category:    e.Category,
			HealthRatio: e.HealthRatio(),
			Napping:     e.NapTimer > 0,
		})
	}
	for _, p := range st.Projectiles {
		f.Projectiles = append(f.Projectiles, render.PointView{X: p.X, Y: p.Y})
	}
	for _, b := range st.Beams {
		f.Beams = append(f.Beams, b.Cells)
	}
	for _, a := range st.AreaHighlights {
		f.Areas = append(f.Areas, render.AreaView{Cells: a.Cells, Knockback: a.Knockback})
	}
	for _, sw := range st.Shockwaves {
		f.Rings = append(f.Rings, render.RingView{
			X:      sw.Center.X,
			Y:      sw.Center.Y,
			Radius: sw.Radius,
			Sleep:  sw.Sleep,
		})
	}
	for _, hs := range st.HitSplats {
		f.Splats = append(f.Splats, hs.Pos)
	}

	f.Preview = g.previewView()
	f.Stats = render.Stats{
		Kibbles:      st.Kibbles,
		Lives:        st.Lives,
		Wave:         st.Wave,
		WaveActive:   st.WaveActive,
		MapIndex:     st.MapIndex,
		MapCount:     defs.MapCount(),
		FastForward:  st.FastForward,
		AutoWaves:    st.AutoWaves,
		GameOver:     st.GameOver,
		Holding:      st.Held != nil,
		SelectedName: defs.GetTowerDef(g.SelectedKind).Name,
		SfxOn:        sfxOn,
		MusicOn:      musicOn,
	}

	for i, kind := range defs.AllKinds() {
		def := defs.GetTowerDef(kind)
		f.Shop = append(f.Shop, render.ShopEntry{
			Index:       i,
			Name:        def.Name,
			Blurb:       def.Blurb,
			Cost:        def.Cost,
			UpgradeCost: defs.UpgradeCost(kind),
			UnlockCost:  defs.UnlockCost(kind),
			Unlocked:    st.Unlocked[kind],
			Selected:    kind == g.SelectedKind,
		})
	}
	return f
}

// previewView mirrors the placement rules exactly, so the cue never promises
// a placement that would fail.
func (g *Game) previewView() render.PreviewView {
	if held := g.State.Held; held != nil {
		t := held.Tower
		return render.PreviewView{
			Active:    true,
			Pos:       g.Cursor,
			Size:      t.Size,
			Valid:     g.CanPlace(g.Cursor, t.Size, t.Kind, t.Range, t.Upgraded),
			Range:     t.Range,
			ShowRange: defs.GetTowerDef(t.Kind).ShowRange,
		}
	}

	kind := g.SelectedKind
	if !g.State.Unlocked[kind] {
		return render.PreviewView{}
	}
	def := defs.GetTowerDef(kind)
	return render.PreviewView{
		Active:    true,
		Pos:       g.Cursor,
		Size:      def.Size,
		Valid:     g.State.Kibbles >= def.Cost && g.CanPlace(g.Cursor, def.Size, kind, def.Range, false),
		Range:     def.Range,
		ShowRange: def.ShowRange,
	}
}
