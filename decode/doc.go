// SPDX-License-Identifier: MIT

// Package decode reads a board.Puzzle from its wire format: a tagged,
// column-major grid (grid[x][y]) of sparse per-cell objects, plus width,
// height, and an optional pillar flag. JSON is the default encoding;
// WithYAML selects gopkg.in/yaml.v3 instead, for callers that keep puzzle
// fixtures as YAML.
//
// Grounded on the reference implementation's Puzzle::deserialize
// (original_source/puzzle.cpp): actual grid dimensions are read from the
// grid array itself (actualWidth = len(grid), actualHeight = len(grid[0])),
// logical width/height are derived as (actual-1)/2, and every row must
// agree on length. Unlike the reference, which throws a generic
// std::runtime_error and logs to stderr, Decode reports grid-shape and
// per-cell problems with this package's sentinel errors (per-cell and
// per-column ones wrapped with position context), per the teacher's builder
// package convention (errors.Is-checkable sentinels, %w-wrapped context).
// A payload that does not parse as JSON/YAML is returned as the wrapped
// parser error, not as a sentinel.
package decode
