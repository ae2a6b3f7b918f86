// SPDX-License-Identifier: MIT
package board

import "github.com/katalvlaran/witness-solver/poly"

// placePolyRegion runs the region-local polyomino subsolver: ylops (which
// extend demand onto the cells outside the region) place first, then polys
// (which cancel demand) fill the remainder. It is grounded on polyomino.cpp's
// placePolys arithmetic, extended with the ylop adjacency search spec §4.2
// describes and the trimmed reference does not implement.
//
// content is the region's content cells; ylops and polys are the positions
// of cells within content carrying SymbolYlop/SymbolPoly. Returns false if
// the piece-area arithmetic fails or any piece has no legal placement.
func (p *Puzzle) placePolyRegion(content, ylops, polys []Pos) bool {
	regionSet := make(map[Pos]bool, len(content))
	for _, pos := range content {
		regionSet[pos] = true
	}

	var total, demand int
	ylopShapes := make([]poly.Shape, len(ylops))
	for i, pos := range ylops {
		cell, _ := p.GetCell(pos.X, pos.Y)
		ylopShapes[i] = cell.Polyshape
		demand += poly.Size(cell.Polyshape)
	}
	polyShapes := make([]poly.Shape, len(polys))
	for i, pos := range polys {
		cell, _ := p.GetCell(pos.X, pos.Y)
		polyShapes[i] = cell.Polyshape
		total += poly.Size(cell.Polyshape)
	}
	if total != len(content)+demand {
		return false
	}

	grid := make([][]int, p.A)
	for x := range grid {
		grid[x] = make([]int, p.B)
	}
	for _, pos := range content {
		grid[pos.X][pos.Y] = -1
	}

	adjCandidates := p.adjacentOutsideContent(content, regionSet)
	var extended []Pos
	for i, ypos := range ylops {
		candidates := append(append([]Pos{}, adjCandidates...), ypos)
		touched, ok := p.placeFirstOutside(ylopShapes[i], candidates, grid, regionSet)
		if !ok {
			return false
		}
		extended = append(extended, touched...)
	}

	for _, shape := range polyShapes {
		candidates := p.demandedContent(grid)
		if _, ok := p.placeFirstOnDemand(shape, candidates, grid); !ok {
			return false
		}
	}

	for _, pos := range content {
		if grid[pos.X][pos.Y] < 0 {
			return false
		}
	}
	for _, pos := range extended {
		if grid[pos.X][pos.Y] < 0 {
			return false
		}
	}

	return true
}

// placeFirstOutside tries each candidate anchor and rotation in turn,
// committing the first placement whose touched content cells are all
// in-grid, outside region, and not already claimed by a prior ylop.
func (p *Puzzle) placeFirstOutside(shape poly.Shape, candidates []Pos, grid [][]int, region map[Pos]bool) ([]Pos, bool) {
	for _, anchor := range candidates {
		for _, rotation := range poly.Rotations(shape) {
			cells := poly.Expand(rotation, false, false)
			touched := make([]Pos, 0, len(cells))
			ok := true
			for _, c := range cells {
				x, y := anchor.X+c.X, anchor.Y+c.Y
				wx := p.wrapX(x)
				if !p.InBounds(x, y) {
					ok = false
					break
				}
				if (Pos{wx, y}).IsContent() {
					npos := Pos{wx, y}
					if region[npos] || grid[wx][y] != 0 {
						ok = false
						break
					}
					touched = append(touched, npos)
				}
			}
			if ok {
				for _, pos := range touched {
					grid[pos.X][pos.Y] = -1
				}
				return touched, true
			}
		}
	}

	return nil, false
}

// placeFirstOnDemand tries each candidate anchor and rotation in turn,
// committing the first placement whose touched content cells are all
// currently demanded (grid == -1), cancelling that demand to 0.
func (p *Puzzle) placeFirstOnDemand(shape poly.Shape, candidates []Pos, grid [][]int) ([]Pos, bool) {
	for _, anchor := range candidates {
		for _, rotation := range poly.Rotations(shape) {
			cells := poly.Expand(rotation, false, false)
			touched := make([]Pos, 0, len(cells))
			ok := true
			for _, c := range cells {
				x, y := anchor.X+c.X, anchor.Y+c.Y
				wx := p.wrapX(x)
				if !p.InBounds(x, y) {
					ok = false
					break
				}
				if (Pos{wx, y}).IsContent() {
					if grid[wx][y] != -1 {
						ok = false
						break
					}
					touched = append(touched, Pos{wx, y})
				}
			}
			if ok {
				for _, pos := range touched {
					grid[pos.X][pos.Y] = 0
				}
				return touched, true
			}
		}
	}

	return nil, false
}

// adjacentOutsideContent returns the content cells two grid steps from any
// cell in content, excluding content itself, deduplicated.
func (p *Puzzle) adjacentOutsideContent(content []Pos, region map[Pos]bool) []Pos {
	deltas := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}
	seen := make(map[Pos]bool)
	var out []Pos
	for _, pos := range content {
		for _, d := range deltas {
			nx, ny := pos.X+d[0], pos.Y+d[1]
			if !p.InBounds(nx, ny) {
				continue
			}
			npos := Pos{p.wrapX(nx), ny}
			if region[npos] || seen[npos] {
				continue
			}
			seen[npos] = true
			out = append(out, npos)
		}
	}

	return out
}

// demandedContent returns every content cell still carrying unmet demand.
func (p *Puzzle) demandedContent(grid [][]int) []Pos {
	var out []Pos
	for x := 1; x < p.A; x += 2 {
		for y := 1; y < p.B; y += 2 {
			if grid[x][y] == -1 {
				out = append(out, Pos{x, y})
			}
		}
	}

	return out
}
