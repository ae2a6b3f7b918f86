// SPDX-License-Identifier: MIT
package board

// Validate reports whether the current line state solves the puzzle. It runs
// in two stages, both grounded on the reference implementation's validate()
// (original_source/puzzle.cpp) and extended per spec §4.2 for symbol kinds
// the trimmed reference never implemented (stars, triangles, negation,
// polyominoes).
//
// Stage A rejects any undrawn gap that reads as a "T" or "+" junction: a
// vertex or edge cell with no line of its own but two or more line-bearing
// orthogonal neighbors spanning both axes.
//
// Stage B walks each region from GetRegions and checks its symbols: squares
// must share one color, stars pair up with same-colored squares in groups of
// exactly two, triangles count their adjacent drawn edges, polyominoes run
// the region subsolver, and uncovered dots fail outright. With N negation
// symbols and I invalid symbols in a region, the default rule accepts the
// region iff I == N mod 2; WithPermissiveNegation accepts iff I <= N and
// N-I is even.
// Complexity: O(A*B).
func (p *Puzzle) Validate(opts ...ValidateOption) bool {
	cfg := newValidateConfig(opts...)

	if !p.validateGaps() {
		return false
	}

	for _, region := range p.GetRegions() {
		if !p.validateRegion(region, cfg) {
			return false
		}
	}

	return true
}

// validateGaps is Stage A.
func (p *Puzzle) validateGaps() bool {
	for x := 0; x < p.A; x++ {
		for y := 0; y < p.B; y++ {
			pos := Pos{x, y}
			if pos.IsContent() {
				continue
			}
			cell := &p.cells[x][y]
			if cell.Line != LineNone {
				continue
			}

			lines, hasVertical, hasHorizontal := 0, false, false
			if c, ok := p.GetCell(x, y-1); ok && c.Line != LineNone {
				lines++
				hasVertical = true
			}
			if c, ok := p.GetCell(x, y+1); ok && c.Line != LineNone {
				lines++
				hasVertical = true
			}
			if c, ok := p.GetCell(x-1, y); ok && c.Line != LineNone {
				lines++
				hasHorizontal = true
			}
			if c, ok := p.GetCell(x+1, y); ok && c.Line != LineNone {
				lines++
				hasHorizontal = true
			}

			if lines >= 2 && hasVertical && hasHorizontal {
				return false
			}
		}
	}

	return true
}

// validateRegion is Stage B for a single region.
func (p *Puzzle) validateRegion(region Region, cfg validateConfig) bool {
	for _, pos := range region {
		cell, _ := p.GetCell(pos.X, pos.Y)
		if cell.Dot != DotNone && cell.Line == LineNone {
			return false
		}
	}

	content := region.Content()
	invalid := make(map[Pos]bool)

	type colorGroup struct {
		squareTotal int
		stars       []Pos
	}
	groups := make(map[int]*colorGroup)
	squareColor, haveSquareColor := 0, false
	var triangles, negations, ylops, polys []Pos

	for _, pos := range content {
		cell, _ := p.GetCell(pos.X, pos.Y)
		switch cell.Type {
		case SymbolSquare:
			if !haveSquareColor {
				squareColor, haveSquareColor = cell.Color, true
			} else if cell.Color != squareColor {
				invalid[pos] = true
			}
			g := groups[cell.Color]
			if g == nil {
				g = &colorGroup{}
				groups[cell.Color] = g
			}
			g.squareTotal++
		case SymbolStar:
			g := groups[cell.Color]
			if g == nil {
				g = &colorGroup{}
				groups[cell.Color] = g
			}
			g.stars = append(g.stars, pos)
		case SymbolTriangle:
			triangles = append(triangles, pos)
		case SymbolNega:
			negations = append(negations, pos)
		case SymbolYlop:
			ylops = append(ylops, pos)
		case SymbolPoly:
			polys = append(polys, pos)
		}
	}

	for _, g := range groups {
		if g.squareTotal+len(g.stars) != 2 {
			for _, pos := range g.stars {
				invalid[pos] = true
			}
		}
	}

	for _, pos := range triangles {
		cell, _ := p.GetCell(pos.X, pos.Y)
		if p.adjacentDrawnEdges(pos) != cell.Count {
			invalid[pos] = true
		}
	}

	if len(ylops) > 0 || len(polys) > 0 {
		if !p.placePolyRegion(content, ylops, polys) {
			for _, pos := range ylops {
				invalid[pos] = true
			}
			for _, pos := range polys {
				invalid[pos] = true
			}
		}
	}

	n, i := len(negations), len(invalid)
	if cfg.permissiveNegation {
		return i <= n && (n-i)%2 == 0
	}

	return i == n%2
}

// adjacentDrawnEdges counts the drawn lines on the four orthogonal edge
// cells surrounding a content cell.
func (p *Puzzle) adjacentDrawnEdges(pos Pos) int {
	n := 0
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if c, ok := p.GetCell(pos.X+d[0], pos.Y+d[1]); ok && c.Line != LineNone {
			n++
		}
	}

	return n
}
