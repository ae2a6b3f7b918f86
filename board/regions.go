// SPDX-License-Identifier: MIT
package board

// regionNeighborOffsets lists the four orthogonal directions region
// discovery explores from any cell, mirroring gridgraph's precomputed
// Conn4 neighbor offsets.
var regionNeighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// GetRegions partitions the content cells (odd,odd positions) into maximal
// groups connected through undrawn edges. For each odd,odd cell not yet
// claimed by a region, it starts a new region and explores orthogonal
// neighbors: a neighbor is admitted when it is in-grid (with cylindrical
// wrap in x when Pillar is set), not already claimed, and either a content
// cell or an edge/vertex cell whose Line is LineNone. Each returned Region
// includes every visited cell (content and edge/vertex); only the content
// cells count toward constraint evaluation in Validate.
//
// Implemented with an explicit work queue (not recursion) so arbitrarily
// large boards do not risk stack exhaustion, per spec §9's flood-fill note.
// Complexity: O(A*B).
func (p *Puzzle) GetRegions() []Region {
	visited := make(map[Pos]bool, p.A*p.B)
	var regions []Region

	for x := 1; x < p.A; x += 2 {
		for y := 1; y < p.B; y += 2 {
			start := Pos{x, y}
			if visited[start] {
				continue
			}
			regions = append(regions, p.floodRegion(start, visited))
		}
	}

	return regions
}

// Region is a maximal set of cells connected by undrawn edges, as produced
// by GetRegions: content cells carry constraint symbols; edge/vertex cells
// are included for dot-coverage checks but carry no symbol.
type Region []Pos

// Content returns the subset of r that are content cells.
func (r Region) Content() []Pos {
	out := make([]Pos, 0, len(r))
	for _, pos := range r {
		if pos.IsContent() {
			out = append(out, pos)
		}
	}

	return out
}

// floodRegion runs one BFS from start, marking visited cells and returning
// the resulting Region.
func (p *Puzzle) floodRegion(start Pos, visited map[Pos]bool) Region {
	visited[start] = true
	queue := []Pos{start}
	region := Region{start}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range regionNeighborOffsets {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if ny < 0 || ny >= p.B {
				continue
			}
			wx := p.wrapX(nx)
			if !p.Pillar && (nx < 0 || nx >= p.A) {
				continue
			}
			npos := Pos{wx, ny}
			if visited[npos] {
				continue
			}
			cell, ok := p.GetCell(wx, ny)
			if !ok {
				continue
			}
			if !npos.IsContent() && cell.Line != LineNone {
				continue
			}
			visited[npos] = true
			region = append(region, npos)
			queue = append(queue, npos)
		}
	}

	return region
}
