// SPDX-License-Identifier: MIT
package board

// FloodFillOutside clears drawn line starting at (x,y) and spreading
// outward across GapFull edges. Undrawn cells, plain (non-full) edges and
// dotted vertices are left as they are; an undotted drawn vertex is cleared
// but the flood does not spread past it. It supplements spec.md's
// distillation with the reference implementation's _floodFillOutside
// (original_source/puzzle.cpp): a pure grid operation, not interactive
// editing, so it does not reopen the editing Non-goal.
//
// Typical use: a diagnostic dump that shows how the drawn line "leaks" out
// through gap=full edges, matching the original's flood behavior used when
// a drawn path should not stay sealed against a permeable gap.
// Complexity: O(A*B) worst case (explicit queue, not recursion).
func (p *Puzzle) FloodFillOutside(x, y int) {
	type step struct{ x, y int }
	queue := []step{{x, y}}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cell, ok := p.GetCell(cur.x, cur.y)
		if !ok || cell.Line == LineNone {
			continue
		}
		pos := Pos{p.wrapX(cur.x), cur.y}
		if pos.IsEdge() && cell.Gap != GapFull {
			continue
		}
		if pos.IsVertex() && cell.Dot != DotNone {
			continue
		}

		cell.Line = LineNone

		if pos.IsVertex() {
			continue // vertices are terminal: don't keep spreading past them
		}

		queue = append(queue,
			step{cur.x, cur.y + 1}, step{cur.x, cur.y - 1},
			step{cur.x + 1, cur.y}, step{cur.x - 1, cur.y},
		)
	}
}
