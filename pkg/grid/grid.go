// pkg/grid/grid.go
package grid

// Position is an integer cell coordinate on the board.
type Position struct {
	X int
	Y int
}

// Vec2 is a continuous point, used for sub-cell entities such as
// projectiles and effect centers.
type Vec2 struct {
	X float64
	Y float64
}

// DistanceSquared returns the squared distance from a continuous point
// to the center of a cell.
func DistanceSquared(a Vec2, b Position) float64 {
	dx := a.X - float64(b.X)
	dy := a.Y - float64(b.Y)
	return dx*dx + dy*dy
}

// InRange reports whether cell lies within range of center. The check is
// Euclidean and inclusive at exactly range.
func InRange(center Vec2, cell Position, rng float64) bool {
	return DistanceSquared(center, cell) <= rng*rng
}

// Contains reports whether p lies on a board of the given dimensions.
func Contains(width, height int, p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// Clamp returns p with both coordinates clamped to the board.
func Clamp(width, height int, p Position) Position {
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= width {
		p.X = width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= height {
		p.Y = height - 1
	}
	return p
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
