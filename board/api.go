// SPDX-License-Identifier: MIT
package board

import "github.com/katalvlaran/witness-solver/poly"

// wrapX reduces x modulo A when Pillar is set, matching the reference
// implementation's cylindrical topology (_mod in puzzle.cpp). Every call
// site that steps through x+-1 anywhere in board or solve must route
// through wrapX or GetCell; see spec §9's audit warning.
func (p *Puzzle) wrapX(x int) int {
	if !p.Pillar {
		return x
	}

	return ((x % p.A) + p.A) % p.A
}

// WrapX applies pillar wrap to x, exported so callers that must record a
// coordinate (e.g. the path solver appending to a Path) agree with GetCell
// on which column a given x actually names.
func (p *Puzzle) WrapX(x int) int {
	return p.wrapX(x)
}

// InBounds reports whether (x,y) lies within the expanded grid after
// applying pillar wrap on x.
// Complexity: O(1).
func (p *Puzzle) InBounds(x, y int) bool {
	x = p.wrapX(x)

	return x >= 0 && x < p.A && y >= 0 && y < p.B
}

// GetCell returns a pointer into the live grid at (x,y) after applying
// column wrap when Pillar is set. The second return is false for
// out-of-range y, or out-of-range x when Pillar is unset — callers treat a
// false return as "no neighbor" during DFS and region flood, never a
// panic.
// Complexity: O(1).
func (p *Puzzle) GetCell(x, y int) (*Cell, bool) {
	x = p.wrapX(x)
	if x < 0 || x >= p.A || y < 0 || y >= p.B {
		return nil, false
	}

	return &p.cells[x][y], true
}

// SetCellField mutates a single named field on the cell at (x,y), matching
// the reference implementation's updateCell switch-on-key setter. Returns
// ErrOutOfRange if the cell does not exist, ErrSymbolOnEdge if a
// content-only field targets an edge/vertex cell, or ErrLineOnContent if an
// edge-only field targets a content cell.
//
// Recognized keys: "line", "gap", "dot", "start", "end", "type", "color",
// "count", "polyshape".
// Complexity: O(1).
func (p *Puzzle) SetCellField(x, y int, key string, value interface{}) error {
	cell, ok := p.GetCell(x, y)
	if !ok {
		return ErrOutOfRange
	}
	pos := Pos{p.wrapX(x), y}

	switch key {
	case "line":
		if pos.IsContent() {
			return ErrLineOnContent
		}
		cell.Line = value.(LineColor)
	case "gap":
		if pos.IsContent() {
			return ErrLineOnContent
		}
		cell.Gap = value.(GapKind)
	case "dot":
		if pos.IsContent() {
			return ErrLineOnContent
		}
		cell.Dot = value.(DotColor)
	case "start":
		if pos.IsContent() {
			return ErrLineOnContent
		}
		cell.Start = value.(bool)
	case "end":
		if pos.IsContent() {
			return ErrLineOnContent
		}
		cell.End = value.(EndDir)
	case "type":
		if !pos.IsContent() {
			return ErrSymbolOnEdge
		}
		cell.Type = value.(SymbolType)
	case "color":
		if !pos.IsContent() {
			return ErrSymbolOnEdge
		}
		cell.Color = value.(int)
	case "count":
		if !pos.IsContent() {
			return ErrSymbolOnEdge
		}
		cell.Count = value.(int)
	case "polyshape":
		if !pos.IsContent() {
			return ErrSymbolOnEdge
		}
		cell.Polyshape = value.(poly.Shape)
	}

	return nil
}

// ClearLines resets Line on every edge/vertex cell to LineNone. Content
// cells are untouched (they never carry a line).
// Complexity: O(A*B).
func (p *Puzzle) ClearLines() {
	for x := 0; x < p.A; x++ {
		for y := 0; y < p.B; y++ {
			if (Pos{x, y}).IsContent() {
				continue
			}
			p.cells[x][y].Line = LineNone
		}
	}
}

// Clone returns a deep copy of the Puzzle, used by the path solver to
// validate a candidate path against a private working copy without
// aliasing the primary state being searched.
// Complexity: O(A*B).
func (p *Puzzle) Clone() *Puzzle {
	cells := make([][]Cell, p.A)
	for x := range cells {
		cells[x] = make([]Cell, p.B)
		copy(cells[x], p.cells[x])
	}

	return &Puzzle{W: p.W, H: p.H, A: p.A, B: p.B, Pillar: p.Pillar, cells: cells}
}

// StartPositions returns every vertex cell with Start set, in row-major
// order (x outer, y inner) over the expanded grid — the deterministic
// traversal order the path solver relies on.
// Complexity: O(A*B).
func (p *Puzzle) StartPositions() []Pos {
	var out []Pos
	for x := 0; x < p.A; x++ {
		for y := 0; y < p.B; y++ {
			if p.cells[x][y].Start {
				out = append(out, Pos{x, y})
			}
		}
	}

	return out
}

// EndpointCount returns the number of vertex cells with a non-empty End
// label.
// Complexity: O(A*B).
func (p *Puzzle) EndpointCount() int {
	n := 0
	for x := 0; x < p.A; x++ {
		for y := 0; y < p.B; y++ {
			if p.cells[x][y].End != EndNone {
				n++
			}
		}
	}

	return n
}
