package poly

// Grid is an integer coverage field indexed [x][y], sized to match the full
// expanded puzzle grid. Content cells (both coordinates odd) hold a demand
// counter: a region's content cells start at -1 ("one unit of coverage
// demanded"); placing a piece adds its sign to every content cell it
// touches.
type Grid [][]int

// InRegion reports whether (x,y) is a member of region. nil/empty region
// means "no restriction" (any in-grid cell qualifies).
func InRegion(region []Cell, x, y int) bool {
	if len(region) == 0 {
		return true
	}
	for _, c := range region {
		if c.X == x && c.Y == y {
			return true
		}
	}

	return false
}

// TryPlace attempts to place cells (as produced by Expand, non-precise) at
// grid offset (ox,oy), adding sign to every content cell (both coordinates
// odd) it touches. Every touched cell must lie in-bounds and, if region is
// non-empty, inside it. Placement is atomic: on any failure, grid is left
// unchanged and TryPlace returns false.
// Complexity: O(len(cells)).
func TryPlace(cells []Cell, ox, oy int, grid Grid, sign int, region []Cell) bool {
	w := len(grid)
	if w == 0 {
		return false
	}
	h := len(grid[0])

	touched := make([]Cell, 0, len(cells))
	for _, c := range cells {
		x, y := ox+c.X, oy+c.Y
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		if !InRegion(region, x, y) {
			return false
		}
		if x%2 == 1 && y%2 == 1 {
			touched = append(touched, Cell{x, y})
		}
	}

	for _, c := range touched {
		grid[c.X][c.Y] += sign
	}

	return true
}

// PlacePolys recursively places shapes[i:] at the matching positions[i:],
// trying each rotation Rotations yields for shapes[i] in turn (0°, 90°,
// 180°, 270°, fixed order, for a rotatable shape; the shape as-is
// otherwise) and recursing into i+1 on success, undoing on failure before
// trying the next rotation. At i == len(shapes), it accepts iff every
// content cell of region now has non-negative coverage (no uncovered
// demand remains).
//
// This is a greedy-per-piece search: the first rotation (at the piece's
// single designated position) that leads to a complete placement of the
// remaining pieces wins. It does not backtrack over piece ORDER or try
// alternate positions per piece beyond the one supplied in positions[i] —
// matching the reference implementation exactly (see DESIGN.md Open
// Question on polyomino subsolver completeness).
// Complexity: exponential in len(shapes) worst case (up to 4 rotations per
// piece).
func PlacePolys(region []Cell, grid Grid, positions []Cell, shapes []Shape, i int) bool {
	if i >= len(shapes) {
		for _, c := range region {
			if c.X%2 == 1 && c.Y%2 == 1 && grid[c.X][c.Y] < 0 {
				return false
			}
		}

		return true
	}

	base := positions[i]
	for _, rotation := range Rotations(shapes[i]) {
		cells := Expand(rotation, false, false)
		if !TryPlace(cells, base.X, base.Y, grid, 1, region) {
			continue
		}
		if PlacePolys(region, grid, positions, shapes, i+1) {
			return true
		}
		TryPlace(cells, base.X, base.Y, grid, -1, region)
	}

	return false
}
