// internal/render/snapshot.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"cat-burrow-defense/internal/component"
	"cat-burrow-defense/pkg/grid"
)

// Frame is the complete view model for one drawn frame. The simulation side
// builds it; the renderer consumes it without reaching back into game state.
type Frame struct {
	Width  int
	Height int

	Background tcell.Color
	PathColor  tcell.Color
	PathMask   [][]bool

	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []PointView
	Beams       [][]grid.Position
	Areas       []AreaView
	Rings       []RingView
	Splats      []grid.Position

	Cursor  grid.Position
	Overlay bool
	Preview PreviewView

	Stats    Stats
	Shop     []ShopEntry
	ViewShop bool
	Controls bool
}

// TowerView is the drawable subset of a placed cat.
type TowerView struct {
	Pos       grid.Position
	Size      int
	Kind      component.Kind
	Upgraded  bool
	Range     float64
	ShowRange bool
}

// EnemyView is the drawable subset of a rat.
type EnemyView struct {
	Pos         grid.Position
	Category    component.Category
	HealthRatio float64
	Napping     bool
}

// PointView is a continuous board position, used for projectiles.
type PointView struct {
	X float64
	Y float64
}

// AreaView is a flashed attack footprint.
type AreaView struct {
	Cells     []grid.Position
	Knockback bool
}

// RingView is an expanding shockwave ring.
type RingView struct {
	X      float64
	Y      float64
	Radius float64
	Sleep  bool
}

// PreviewView describes the placement cue under the cursor: the footprint of
// the selected or held cat and whether placing there would succeed.
type PreviewView struct {
	Active    bool
	Pos       grid.Position
	Size      int
	Valid     bool
	Range     float64
	ShowRange bool
}

// Stats feeds the sidebar.
type Stats struct {
	Kibbles      int
	Lives        int
	Wave         int
	WaveActive   bool
	MapIndex     int
	MapCount     int
	FastForward  bool
	AutoWaves    bool
	GameOver     bool
	Holding      bool
	SelectedName string
	SfxOn        bool
	MusicOn      bool
}

// ShopEntry is one row of the shop panel.
type ShopEntry struct {
	Index       int
	Name        string
	Blurb       string
	Cost        int
	UpgradeCost int
	UnlockCost  int
	Unlocked    bool
	Selected    bool
}
