package poly

// Shape is a polyshape: bit (x*4+y) set iff the piece occupies local cell
// (x,y) within a 4x4 window. RotationBit, conventionally bit 20, flags the
// piece as free to rotate during placement. The bit layout is a
// binary-compatibility contract with the puzzle wire format and must be
// preserved bit-exactly.
type Shape uint32

// RotationBit flags a Shape as rotatable. It lies outside the 4x4 window
// (bits 0..15) so it never participates in Size/Expand cell enumeration.
const RotationBit Shape = 1 << 20

// boxDim is the side length of the square window a Shape is defined over.
const boxDim = 4

// Mask returns the bit corresponding to local cell (x,y) within the 4x4
// window. Out-of-window coordinates are not rejected here; callers (IsSet)
// bounds-check before calling Mask.
func Mask(x, y int) Shape {
	return 1 << uint(x*boxDim+y)
}

// IsSet reports whether s occupies local cell (x,y). Coordinates outside
// [0,4) are always unset.
func IsSet(s Shape, x, y int) bool {
	if x < 0 || y < 0 || x >= boxDim || y >= boxDim {
		return false
	}

	return s&Mask(x, y) != 0
}

// Rotatable reports whether s carries RotationBit.
func Rotatable(s Shape) bool {
	return s&RotationBit != 0
}

// Cell is a puzzle-grid coordinate offset as produced by Expand: two units
// per logical polyomino cell, so odd offsets land on edge cells and even
// offsets land on content cells.
type Cell struct {
	X, Y int
}
