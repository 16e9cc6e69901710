// internal/component/enemy.go
package component

// Category classifies a rat and determines its hp/speed/bounty curves.
type Category int

const (
	CategoryPup Category = iota
	CategoryRat
	CategoryPlague
	CategoryKing
)

func (c Category) String() string {
	switch c {
	case CategoryPup:
		return "Pup"
	case CategoryRat:
		return "Rat"
	case CategoryPlague:
		return "Plague Rat"
	case CategoryKing:
		return "Rat King"
	}
	return "Rat"
}

// Enemy is a hostile unit advancing along the path. A rat with HP <= 0 is
// removed at the end of the tick that zeroed it.
type Enemy struct {
	PathProgress float64 // index into the path cells, non-decreasing
	Speed        float64 // cells per second
	HP           int
	MaxHP        int
	LaneOffset   int // lateral offset from the center path, fixed at spawn
	Category     Category
	NapTimer     float64 // while > 0 the rat does not advance
}

// HealthRatio returns remaining hp as a fraction of max, clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	r := float64(e.HP) / float64(e.MaxHP)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
