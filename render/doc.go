// SPDX-License-Identifier: MIT

// Package render prints an ASCII dump of a board.Puzzle, useful for
// debugging fixtures and for the CLI's --render diagnostic flag.
//
// Grounded on the reference implementation's Puzzle::printBoard
// (original_source/puzzle.cpp): column/row rulers followed by one glyph per
// cell, precedence start > endpoint > dot > drawn line > gap > symbol. The
// reference only special-cases the "square" symbol; Board extends the same
// glyph table to stars, triangles, negations, and polyominoes/ylops, which
// spec.md's distillation covers but the trimmed reference never rendered.
package render
