// pkg/grid/path.go
package grid

// BuildPath walks the waypoint anchors pairwise and emits every integer cell
// of each axis-aligned segment, from -> to inclusive, in traversal order.
// Duplicate cells at shared anchors are expected; consumers index by progress,
// not identity.
func BuildPath(anchors []Position) []Position {
	var path []Position
	for i := 1; i < len(anchors); i++ {
		from := anchors[i-1]
		to := anchors[i]
		switch {
		case from.X == to.X:
			dir := sign(to.Y - from.Y)
			for y := from.Y; y != to.Y+dir; y += dir {
				path = append(path, Position{X: from.X, Y: y})
			}
		case from.Y == to.Y:
			dir := sign(to.X - from.X)
			for x := from.X; x != to.X+dir; x += dir {
				path = append(path, Position{X: x, Y: from.Y})
			}
		}
	}
	return path
}

// BuildPathMask derives the boolean occupancy mask for a path: every path
// cell dilated by pathWidth-1 cells orthogonally in both axes (a Chebyshev
// dilation, not Euclidean). The mask is indexed [y][x].
func BuildPathMask(path []Position, pathWidth, width, height int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	for _, p := range path {
		for dy := -pathWidth + 1; dy <= pathWidth-1; dy++ {
			for dx := -pathWidth + 1; dx <= pathWidth-1; dx++ {
				cx := p.X + dx
				cy := p.Y + dy
				if cx >= 0 && cx < width && cy >= 0 && cy < height {
					mask[cy][cx] = true
				}
			}
		}
	}
	return mask
}
