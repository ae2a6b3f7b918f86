// SPDX-License-Identifier: MIT
//
// Package board defines the expanded-grid puzzle model: Cell, Puzzle, and
// the region flood-fill and constraint-validation primitives the path
// solver (package solve) drives during search.
//
// What:
//
//   - A puzzle of logical size W x H is stored as an A x B grid of cells,
//     A=2W+1, B=2H+1. Coordinate parity encodes role: (odd,odd) is a
//     content cell (symbol or empty), (even,even) is a vertex (start/end/
//     dot), (odd,even)/(even,odd) is an edge (path segment, gap, dot).
//   - GetRegions partitions content cells into maximal groups connected by
//     undrawn edges; Validate evaluates every region-local constraint
//     (squares, stars, triangles, dots, negation, polyomino tiling) against
//     the current line-marked state.
//
// Why:
//
//   - The path solver needs a cheap, allocation-light way to ask "is the
//     partition this candidate path induces a valid solution?" on every
//     endpoint hit; Puzzle is built so that question is a single Validate()
//     call against a cloned, line-marked copy.
//
// Complexity:
//
//   - GetCell: O(1).
//   - GetRegions: O(A*B) (explicit BFS queue, not recursive, so boards much
//     larger than a typical Witness panel do not blow the call stack).
//   - Validate: O(A*B) for stage A, O(A*B) amortized for stage B, plus the
//     polyomino subsolver's cost per region containing poly/ylop symbols.
//
// Errors:
//
//	ErrInvalidDimensions - width/height non-positive.
//	ErrOutOfRange        - SetCellField coordinates outside the grid (GetCell
//	                       reports this case with a false second return).
//	ErrSymbolOnEdge      - a symbol type was assigned to an edge/vertex cell.
//	ErrLineOnContent     - a line/gap/dot was assigned to a content cell.
package board
