package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/witness-solver/poly"
)

// singleCell returns the Shape occupying only local cell (x,y).
func singleCell(x, y int) poly.Shape {
	return poly.Mask(x, y)
}

func TestSize(t *testing.T) {
	cases := []struct {
		name string
		s    poly.Shape
		want int
	}{
		{"empty", 0, 0},
		{"single", singleCell(0, 0), 1},
		{"domino", singleCell(0, 0) | singleCell(1, 0), 2},
		{"rotationBitIgnored", singleCell(0, 0) | poly.RotationBit, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, poly.Size(tc.s))
		})
	}
}

// TestRotationsClosure checks invariant 7 from spec.md §8: rotating a
// rotatable shape yields 4 orientations, closed under further 90° rotation.
func TestRotationsClosure(t *testing.T) {
	// L-tromino: (0,0),(1,0),(1,1)
	s := singleCell(0, 0) | singleCell(1, 0) | singleCell(1, 1) | poly.RotationBit
	rotations := poly.Rotations(s)
	assert.Len(t, rotations, 4)

	set := make(map[poly.Shape]bool, 4)
	for _, r := range rotations {
		set[r] = true
	}
	for _, r := range rotations {
		next := poly.Rotate(r|poly.RotationBit, 1)
		assert.True(t, set[next], "rotation of %v (%v) not found in closure set", r, next)
	}
}

func TestRotationsNonRotatable(t *testing.T) {
	s := singleCell(0, 0) | singleCell(1, 0)
	assert.Equal(t, []poly.Shape{s}, poly.Rotations(s))
}

// TestPolyshapeRoundTrip checks invariant 6: polyshape -> cells -> polyshape
// is the identity (content-cell subset, non-precise expansion).
func TestPolyshapeRoundTrip(t *testing.T) {
	// Round trip is identity only for shapes already anchored at the
	// origin corner of their bounding box (minX==0 && minY==0): Expand
	// always re-anchors to (0,0), so an un-anchored input would collapse
	// back to its translation, not itself.
	shapes := []poly.Shape{
		singleCell(0, 0),
		singleCell(0, 0) | singleCell(1, 0),
		singleCell(0, 0) | singleCell(1, 0) | singleCell(0, 1),
		singleCell(0, 0) | singleCell(3, 0),
	}
	for _, s := range shapes {
		cells := poly.Expand(s, false, false)
		got := poly.Collapse(cells)
		assert.Equal(t, s, got, "round trip failed for %v", s)
	}
}

func TestExpandNormalInternalEdges(t *testing.T) {
	// Domino along x: (0,0),(1,0) -> content cells (0,0),(2,0); internal
	// edge between them at (1,0) only because the neighbor is set.
	s := singleCell(0, 0) | singleCell(1, 0)
	cells := poly.Expand(s, false, true)

	assert.Contains(t, cells, poly.Cell{0, 0})
	assert.Contains(t, cells, poly.Cell{2, 0})
	assert.Contains(t, cells, poly.Cell{1, 0})
	// No vertical neighbor set, so no (0,1)/(0,-1) half-steps.
	assert.NotContains(t, cells, poly.Cell{0, 1})
}

func TestExpandYlopBleeds(t *testing.T) {
	// Single-cell ylop at origin: always bleeds right/bottom, and
	// left/top too since no neighbor is set.
	s := singleCell(0, 0)
	cells := poly.Expand(s, true, true)

	assert.Contains(t, cells, poly.Cell{0, 0})
	assert.Contains(t, cells, poly.Cell{1, 0})
	assert.Contains(t, cells, poly.Cell{0, 1})
	assert.Contains(t, cells, poly.Cell{-1, 0})
	assert.Contains(t, cells, poly.Cell{0, -1})
}

func newGrid(w, h int) poly.Grid {
	g := make(poly.Grid, w)
	for i := range g {
		g[i] = make([]int, h)
	}

	return g
}

func TestTryPlaceAtomicOnOutOfBounds(t *testing.T) {
	grid := newGrid(3, 3)
	cells := []poly.Cell{{0, 0}, {2, 2}, {4, 4}} // last one out of bounds
	ok := poly.TryPlace(cells, 0, 0, grid, 1, nil)
	assert.False(t, ok)
	for x := range grid {
		for y := range grid[x] {
			assert.Zero(t, grid[x][y])
		}
	}
}

func TestTryPlaceAppliesSignToContentCells(t *testing.T) {
	grid := newGrid(5, 5)
	cells := []poly.Cell{{0, 0}, {1, 0}, {2, 0}}
	ok := poly.TryPlace(cells, 1, 1, grid, 1, nil)
	assert.True(t, ok)
	assert.Equal(t, 1, grid[1][1])
	assert.Equal(t, 1, grid[3][1])
	// (2,1) is an edge cell (even x), never touched.
	assert.Zero(t, grid[2][1])
}

// TestPlacePolysCancel checks that a piece whose cells match the region's
// demanded content cells cancels all of that demand.
func TestPlacePolysCancel(t *testing.T) {
	// Region of 2 content cells at (1,1) and (3,1); a single domino poly
	// (size 2) placed to cover exactly them. P=2, R=2, Y=0: 2 == 2+0 OK.
	region := []poly.Cell{{1, 1}, {3, 1}}
	grid := newGrid(5, 3)
	for _, c := range region {
		grid[c.X][c.Y] = -1
	}
	domino := singleCell(0, 0) | singleCell(1, 0)
	ok := poly.PlacePolys(region, grid, []poly.Cell{{1, 1}}, []poly.Shape{domino}, 0)
	assert.True(t, ok)
}

func TestPlacePolysMismatchFails(t *testing.T) {
	region := []poly.Cell{{1, 1}}
	grid := newGrid(5, 3)
	grid[1][1] = -1
	domino := singleCell(0, 0) | singleCell(1, 0)
	ok := poly.PlacePolys(region, grid, []poly.Cell{{1, 1}}, []poly.Shape{domino}, 0)
	assert.False(t, ok)
}
