package poly

// Expand converts s into a list of puzzle-grid coordinate offsets, with the
// shape's top-left occupied cell translated to (0,0). Each occupied local
// cell (x,y) contributes the content-cell offset (2*dx, 2*dy). When precise
// is true, internal edge offsets are also emitted:
//
//   - Normal poly (ylop=false): the half-step toward a neighbor is emitted
//     only if that neighbor is also occupied — normal polys cover only
//     their own interior.
//   - Ylop (ylop=true): the half-step toward the right/bottom neighbor is
//     always emitted, and the half-step toward the left/top neighbor is
//     emitted when that neighbor is NOT occupied — ylops "bleed" outward
//     across their boundary, carving extra exterior cells a normal poly
//     must then also cover.
//
// This asymmetry is the mechanism by which a ylop acts as a negative piece.
// Complexity: O(1) (bounded 4x4 window).
func Expand(s Shape, ylop bool, precise bool) []Cell {
	tlx, tly, found := topLeft(s)
	if !found {
		return nil
	}

	var out []Cell
	for x := 0; x < boxDim; x++ {
		for y := 0; y < boxDim; y++ {
			if !IsSet(s, x, y) {
				continue
			}
			dx, dy := 2*(x-tlx), 2*(y-tly)
			out = append(out, Cell{dx, dy})

			if !precise {
				continue
			}
			if ylop {
				if !IsSet(s, x-1, y) {
					out = append(out, Cell{dx - 1, dy})
				}
				if !IsSet(s, x, y-1) {
					out = append(out, Cell{dx, dy - 1})
				}
				out = append(out, Cell{dx + 1, dy})
				out = append(out, Cell{dx, dy + 1})
			} else {
				if IsSet(s, x+1, y) {
					out = append(out, Cell{dx + 1, dy})
				}
				if IsSet(s, x, y+1) {
					out = append(out, Cell{dx, dy + 1})
				}
			}
		}
	}

	return out
}

// topLeft finds the first occupied cell scanning row-major (y outer, x
// inner), matching the reference implementation's top-left search order.
func topLeft(s Shape) (x, y int, found bool) {
	for yy := 0; yy < boxDim; yy++ {
		for xx := 0; xx < boxDim; xx++ {
			if IsSet(s, xx, yy) {
				return xx, yy, true
			}
		}
	}

	return 0, 0, false
}

// Collapse is the inverse of Expand's non-precise, ylop=false case: given a
// list of puzzle-grid offsets, it keeps only the content-cell entries (both
// coordinates even, the offsets Expand emits for occupied cells; odd
// half-step offsets are skipped) and packs them into a Shape anchored at
// the minimum (x,y). An empty or
// content-cell-free input collapses to the zero Shape.
// Complexity: O(len(cells)).
func Collapse(cells []Cell) Shape {
	minX, minY := 0, 0
	found := false
	for _, c := range cells {
		if c.X%2 != 0 || c.Y%2 != 0 {
			continue
		}
		if !found || c.X < minX {
			minX = c.X
		}
		if !found || c.Y < minY {
			minY = c.Y
		}
		found = true
	}
	if !found {
		return 0
	}

	var s Shape
	for _, c := range cells {
		if c.X%2 != 0 || c.Y%2 != 0 {
			continue
		}
		x := (c.X - minX) / 2
		y := (c.Y - minY) / 2
		s |= Mask(x, y)
	}

	return s
}
