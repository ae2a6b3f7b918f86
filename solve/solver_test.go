// SPDX-License-Identifier: MIT
package solve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witness-solver/board"
	"github.com/katalvlaran/witness-solver/solve"
)

// singleBoxPuzzle builds a 1x1 board with a start at the top-left vertex and
// an endpoint at the bottom-right vertex. The only symbol-free constraint is
// Stage A's gap sanity check, so any simple path between the two corners
// validates.
func singleBoxPuzzle(t *testing.T) *board.Puzzle {
	t.Helper()
	p, err := board.NewPuzzle(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.SetCellField(0, 0, "start", true))
	require.NoError(t, p.SetCellField(2, 2, "end", board.EndRight))

	return p
}

func TestSolveFindsPathToEndpoint(t *testing.T) {
	p := singleBoxPuzzle(t)
	s := solve.NewSolver(p, solve.WithMaxSolutions(1))

	paths, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)

	path := paths[0]
	assert.Equal(t, board.Pos{X: 0, Y: 0}, path.Positions[0])
	assert.Equal(t, solve.DirNone, path.Directions[0])

	last := path.Positions[len(path.Positions)-1]
	endCell, ok := p.GetCell(last.X, last.Y)
	require.True(t, ok)
	assert.NotEqual(t, board.EndNone, endCell.End)

	seen := make(map[board.Pos]bool)
	for _, pos := range path.Positions {
		assert.False(t, seen[pos], "path must not revisit a position")
		seen[pos] = true
	}
}

// snapshotLines captures every cell's Line field, keyed by position, so a
// test can assert Solve leaves the grid exactly as it found it.
func snapshotLines(p *board.Puzzle) map[board.Pos]board.LineColor {
	lines := make(map[board.Pos]board.LineColor, p.A*p.B)
	for x := 0; x < p.A; x++ {
		for y := 0; y < p.B; y++ {
			if cell, ok := p.GetCell(x, y); ok {
				lines[board.Pos{X: x, Y: y}] = cell.Line
			}
		}
	}

	return lines
}

func TestSolveRestoresLineStateAfterReturning(t *testing.T) {
	p := singleBoxPuzzle(t)
	before := snapshotLines(p)

	s := solve.NewSolver(p, solve.WithMaxSolutions(1))
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	after := snapshotLines(p)
	assert.Equal(t, before, after, "Solve must restore every cell's line state, including the start cell, once it returns")
}

// TestSolvePathConnectivity checks invariant #2: consecutive positions in a
// solution differ by exactly one in exactly one coordinate (a single
// half-step), never a diagonal or zero-length jump.
func TestSolvePathConnectivity(t *testing.T) {
	p := singleBoxPuzzle(t)
	s := solve.NewSolver(p, solve.WithMaxSolutions(1))

	paths, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 1)

	positions := paths[0].Positions
	require.GreaterOrEqual(t, len(positions), 2)

	for i := 1; i < len(positions); i++ {
		dx := positions[i].X - positions[i-1].X
		dy := positions[i].Y - positions[i-1].Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.Equal(t, 1, dx+dy, "step %d must move exactly one grid unit along exactly one axis", i)
	}
}

func TestSolveNoStartPositionsReturnsEmpty(t *testing.T) {
	p, err := board.NewPuzzle(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.SetCellField(2, 2, "end", board.EndRight))

	s := solve.NewSolver(p)
	paths, err := s.Solve(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSolveNoEndpointsReturnsEmpty(t *testing.T) {
	p, err := board.NewPuzzle(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, p.SetCellField(0, 0, "start", true))

	s := solve.NewSolver(p)
	paths, err := s.Solve(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSolveRespectsMaxSolutionsCap(t *testing.T) {
	p := singleBoxPuzzle(t)
	s := solve.NewSolver(p, solve.WithMaxSolutions(2))

	paths, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, len(paths), 2)
}

func TestSolveContextCancelled(t *testing.T) {
	p := singleBoxPuzzle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := solve.NewSolver(p)
	paths, err := s.Solve(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, paths)
}

func TestSetMaxSolutionsAfterConstruction(t *testing.T) {
	p := singleBoxPuzzle(t)
	s := solve.NewSolver(p)
	s.SetMaxSolutions(1)

	paths, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
