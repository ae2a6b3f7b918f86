// SPDX-License-Identifier: MIT
package solve

import (
	"context"

	"github.com/katalvlaran/witness-solver/board"
)

// Solver enumerates solution paths for one Puzzle. A Solver owns its puzzle
// exclusively while Solve runs: it mutates the puzzle's line state in place
// during the search and restores it via ClearLines before trying each start,
// so concurrent callers must use separate Solvers over separate puzzles (or
// board.Puzzle.Clone copies), never share one live puzzle across goroutines.
type Solver struct {
	puzzle    *board.Puzzle
	opts      Options
	solutions []Path
}

// NewSolver returns a Solver bound to puzzle, configured by opts.
func NewSolver(puzzle *board.Puzzle, opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{puzzle: puzzle, opts: cfg}
}

// SetMaxSolutions updates the solution cap after construction.
func (s *Solver) SetMaxSolutions(n int) {
	s.opts.MaxSolutions = n
}

// Solve enumerates solutions from every start vertex, row-major order. A
// non-nil ctx overrides the Solver's configured context for this call.
// Returns an empty, nil-error result when the puzzle has no start vertices
// or no endpoints — that is a valid "no solutions" outcome, not a failure.
// The only error Solve returns is the search's context being cancelled or
// timing out.
// Complexity: exponential in grid size worst case, bounded in practice by
// MaxSolutions and the grid's gap/line constraints pruning most branches.
func (s *Solver) Solve(ctx context.Context) ([]Path, error) {
	if ctx != nil {
		s.opts.Ctx = ctx
	}
	s.solutions = nil

	starts := s.puzzle.StartPositions()
	if len(starts) == 0 {
		s.opts.Logger.Warn("no start points found in puzzle")
		return s.solutions, nil
	}

	if s.puzzle.EndpointCount() == 0 {
		s.opts.Logger.Warn("no endpoints found in puzzle")
		return s.solutions, nil
	}

	for _, start := range starts {
		if err := s.ctxErr(); err != nil {
			return s.solutions, err
		}

		s.solveFromStart(start)

		if s.opts.MaxSolutions > 0 && len(s.solutions) >= s.opts.MaxSolutions {
			break
		}
	}

	s.opts.Logger.Info("search complete", "solutions", len(s.solutions))

	return s.solutions, nil
}

func (s *Solver) ctxErr() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// solveFromStart resets the puzzle's lines, marks start as the path origin,
// and runs solveLoop from there.
func (s *Solver) solveFromStart(start board.Pos) {
	s.puzzle.ClearLines()

	cell, ok := s.puzzle.GetCell(start.X, start.Y)
	if !ok {
		return
	}
	cell.Line = board.LineBlack

	path := &Path{Positions: []board.Pos{start}, Directions: []Direction{DirNone}}
	s.solveLoop(start.X, start.Y, path)

	cell.Line = board.LineNone
}

// solveLoop is the recursive depth-first step. It admits any endpoint cell
// as a candidate solution (validating via validatePath) and keeps exploring
// past it, matching the reference's "don't return, keep searching" comment:
// a path may pass through an endpoint cell and continue, or validate only
// once the search eventually backtracks and revisits it from elsewhere —
// see DESIGN.md's endpoint-continuation note.
func (s *Solver) solveLoop(x, y int, path *Path) {
	if s.opts.MaxSolutions > 0 && len(s.solutions) >= s.opts.MaxSolutions {
		return
	}
	if s.ctxErr() != nil {
		return
	}

	cell, ok := s.puzzle.GetCell(x, y)
	if !ok {
		return
	}
	if cell.Gap != board.GapNone {
		return
	}

	if cell.End != board.EndNone {
		if s.validatePath(path) {
			s.solutions = append(s.solutions, path.clone())
		}
	}

	// Horizontal half-steps are only legal from even-y rows (vertex or
	// horizontal-edge rows); vertical half-steps only from even-x columns.
	if y%2 == 0 {
		s.tryStep(x-1, y, DirLeft, path)
		s.tryStep(x+1, y, DirRight, path)
	}
	if x%2 == 0 {
		s.tryStep(x, y-1, DirUp, path)
		s.tryStep(x, y+1, DirDown, path)
	}
}

// tryStep attempts one half-step to (nx,ny): admits it only if the cell
// exists, carries no line yet, and has no gap, matching the reference's
// nextCell->line == LINE_NONE && nextCell->gap <= GAP_NONE guard.
func (s *Solver) tryStep(nx, ny int, dir Direction, path *Path) {
	next, ok := s.puzzle.GetCell(nx, ny)
	if !ok || next.Line != board.LineNone || next.Gap != board.GapNone {
		return
	}

	next.Line = board.LineBlack
	pos := board.Pos{X: s.puzzle.WrapX(nx), Y: ny}
	path.push(pos, dir)

	s.solveLoop(pos.X, pos.Y, path)

	path.pop()
	next.Line = board.LineNone
}

// validatePath clones the puzzle, clears its lines, draws path onto the
// clone, and checks it against Validate — never mutating the live puzzle
// the search is still exploring.
func (s *Solver) validatePath(path *Path) bool {
	test := s.puzzle.Clone()
	test.ClearLines()

	for _, pos := range path.Positions {
		if cell, ok := test.GetCell(pos.X, pos.Y); ok {
			cell.Line = board.LineBlack
		}
	}

	var opts []board.ValidateOption
	if s.opts.PermissiveNegation {
		opts = append(opts, board.WithPermissiveNegation())
	}

	return test.Validate(opts...)
}
