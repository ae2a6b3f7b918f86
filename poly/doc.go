// Package poly implements the polyomino kernel: pure functions over a
// compact 4x4 bitmask representation (Shape) used by Witness-style puzzle
// symbols "poly" and "ylop".
//
// What:
//
//   - Shape is a 16-bit mask within a 4x4 window plus an out-of-band
//     rotation flag (bit 20), matching the wire format bit-for-bit.
//   - Size counts occupied cells; Rotations enumerates the four 90-degree
//     orientations when the rotation flag is set.
//   - Expand converts a Shape into puzzle-grid cell offsets (2 units per
//     logical cell, so edges land on odd coordinates); Collapse is its
//     inverse.
//   - TryPlace mutates an integer coverage grid (a call with the opposite
//     sign undoes a placement); PlacePolys drives a greedy placement of
//     shapes at fixed positions. Region validation in package board runs
//     its own ylop-then-poly search on top of Size/Rotations/Expand.
//
// Why:
//
//   - Regions containing "poly"/"ylop" symbols must tile exactly: every
//     poly's occupied cells must cover the region's content cells, and
//     every ylop's occupied cells extend the demand the polys must cover.
//
// Complexity:
//
//   - Size, Rotations, Expand: O(1) (bounded 4x4 window).
//   - Collapse: O(len(cells)).
//   - TryPlace: O(len(cells)).
//   - PlacePolys: exponential in the worst case (greedy-per-piece, not
//     full backtracking over piece order; see the reference implementation
//     note in DESIGN.md).
//
// Errors: poly performs no validation beyond bounds checks; malformed
// shapes simply expand to fewer cells or fail TryPlace, by design (callers
// drive retry/placement logic).
package poly
