package poly

// Size counts the cells s occupies within its 4x4 window.
// Complexity: O(1) (16 fixed checks).
func Size(s Shape) int {
	n := 0
	for x := 0; x < boxDim; x++ {
		for y := 0; y < boxDim; y++ {
			if IsSet(s, x, y) {
				n++
			}
		}
	}

	return n
}

// Rotations returns the set of orientations s may be placed in. If s does
// not carry RotationBit, the result is the single-element slice {s}.
// Otherwise it returns the four 90-degree-clockwise rotations in order:
// 0°, 90°, 180°, 270°. Rotation sends local cell (x,y) to (y, 3-x).
// Complexity: O(1).
func Rotations(s Shape) []Shape {
	if !Rotatable(s) {
		return []Shape{s}
	}

	rot := make([]Shape, 4)
	for x := 0; x < boxDim; x++ {
		for y := 0; y < boxDim; y++ {
			if !IsSet(s, x, y) {
				continue
			}
			rot[0] ^= Mask(x, y)
			rot[1] ^= Mask(y, boxDim-1-x)
			rot[2] ^= Mask(boxDim-1-x, boxDim-1-y)
			rot[3] ^= Mask(boxDim-1-y, x)
		}
	}

	return rot
}

// Rotate returns s rotated clockwise count times (mod 4), forcing the
// rotation flag on for the duration of the computation so a Shape built
// without RotationBit can still be rotated on demand.
// Complexity: O(1).
func Rotate(s Shape, count int) Shape {
	rot := Rotations(s | RotationBit)

	return rot[((count%4)+4)%4]
}
