// SPDX-License-Identifier: MIT
package solve

import "github.com/katalvlaran/witness-solver/board"

// Direction names the half-step taken between two consecutive positions in
// a Path. DirNone marks the path's starting position, which has no incoming
// step.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Path is one candidate walk through the expanded grid: Positions[i] was
// reached by stepping Directions[i] from Positions[i-1]. Positions[0] is a
// start vertex and Directions[0] is always DirNone.
type Path struct {
	Positions  []board.Pos
	Directions []Direction
}

// push appends one step, mirroring the reference Path's push_back pair on
// positions/directions.
func (p *Path) push(pos board.Pos, dir Direction) {
	p.Positions = append(p.Positions, pos)
	p.Directions = append(p.Directions, dir)
}

// pop undoes the most recent push, used when backtracking out of a dead end.
func (p *Path) pop() {
	p.Positions = p.Positions[:len(p.Positions)-1]
	p.Directions = p.Directions[:len(p.Directions)-1]
}

// clone returns an independent copy, taken at the moment a path validates so
// later backtracking does not mutate a recorded solution.
func (p *Path) clone() Path {
	positions := make([]board.Pos, len(p.Positions))
	copy(positions, p.Positions)
	directions := make([]Direction, len(p.Directions))
	copy(directions, p.Directions)

	return Path{Positions: positions, Directions: directions}
}
