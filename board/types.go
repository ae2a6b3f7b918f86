// SPDX-License-Identifier: MIT
package board

import (
	"errors"

	"github.com/katalvlaran/witness-solver/poly"
)

// Sentinel errors for board operations. Callers MUST use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrInvalidDimensions indicates a non-positive logical width or height.
	ErrInvalidDimensions = errors.New("board: width and height must be positive")

	// ErrOutOfRange indicates an access outside the expanded grid bounds.
	ErrOutOfRange = errors.New("board: coordinate out of range")

	// ErrSymbolOnEdge indicates a content-only field was set on an edge or
	// vertex cell.
	ErrSymbolOnEdge = errors.New("board: symbol field not valid on edge/vertex cell")

	// ErrLineOnContent indicates a line/gap/dot field was set on a content
	// cell.
	ErrLineOnContent = errors.New("board: line/gap/dot not valid on content cell")
)

// LineColor is the current path marking on an edge or vertex cell.
type LineColor int

const (
	LineNone LineColor = iota
	LineBlack
	LineBlue
	LineYellow
)

// GapKind controls traversal/flood permeability of an edge cell.
type GapKind int

const (
	GapNone GapKind = iota
	GapBreak
	GapFull
)

// DotColor marks a vertex/edge cell the path must traverse.
type DotColor int

const (
	DotNone DotColor = iota
	DotBlack
	DotBlue
	DotYellow
)

// EndDir labels a vertex cell as a path terminus, naming the border it
// exits through. EndNone means "not an endpoint".
type EndDir int

const (
	EndNone EndDir = iota
	EndTop
	EndBottom
	EndLeft
	EndRight
)

// SymbolType names the kind of symbol a content cell carries.
type SymbolType int

const (
	SymbolNone SymbolType = iota
	SymbolSquare
	SymbolStar
	SymbolTriangle
	SymbolNega
	SymbolPoly
	SymbolYlop
)

// Cell holds every optional attribute a grid position may carry. Which
// fields are meaningful depends on the coordinate parity of the cell's
// position: content cells (odd,odd) use Type/Color/Count/Polyshape; edge
// cells ((odd,even) or (even,odd)) use Line/Gap/Dot; vertex cells
// (even,even) use Line/Dot/Start/End.
type Cell struct {
	// Edge/vertex attributes.
	Line LineColor
	Gap  GapKind
	Dot  DotColor
	Start bool
	End   EndDir

	// Content attributes.
	Type      SymbolType
	Color     int
	Count     int
	Polyshape poly.Shape
}

// Pos is a grid coordinate. X,Y range over the expanded grid
// [0,A) x [0,B).
type Pos struct {
	X, Y int
}

// IsContent reports whether p names a content cell (odd,odd).
func (p Pos) IsContent() bool { return p.X%2 == 1 && p.Y%2 == 1 }

// IsVertex reports whether p names a vertex cell (even,even).
func (p Pos) IsVertex() bool { return p.X%2 == 0 && p.Y%2 == 0 }

// IsEdge reports whether p names an edge cell (exactly one coordinate odd).
func (p Pos) IsEdge() bool { return p.X%2 != p.Y%2 }

// Puzzle is the expanded-grid puzzle model. W,H are logical dimensions; A,B
// (=2W+1, 2H+1) are the expanded grid dimensions. Pillar enables
// cylindrical wrap on the X axis. Puzzle is constructed once by the
// decoder, then frozen structurally: only Line on edge/vertex cells
// changes during solving (line state),
// and Puzzle itself does not synchronize concurrent access — per spec §5 a
// single puzzle instance is exclusively owned by one solver at a time.
type Puzzle struct {
	W, H   int
	A, B   int
	Pillar bool

	cells [][]Cell // cells[x][y]
}

// NewPuzzle allocates an empty Puzzle of logical size w x h. Every cell
// starts zero-valued (SymbolNone / LineNone / etc.).
// Complexity: O(A*B).
func NewPuzzle(w, h int, pillar bool) (*Puzzle, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	a, b := 2*w+1, 2*h+1
	cells := make([][]Cell, a)
	for x := range cells {
		cells[x] = make([]Cell, b)
	}

	return &Puzzle{W: w, H: h, A: a, B: b, Pillar: pillar, cells: cells}, nil
}
