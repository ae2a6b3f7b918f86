// SPDX-License-Identifier: MIT

// Package solve enumerates witness-style paths through a board.Puzzle:
// depth-first walks from every start vertex, parity-restricted to the
// horizontal/vertical half-steps the expanded grid encodes, validating each
// candidate that reaches an endpoint against board.Puzzle.Validate.
//
// Grounded on the reference implementation's Solver (original_source/solver.{hpp,cpp}):
// solveFromStart/solveLoop/validatePath map directly onto Solver.solveFromStart,
// solveLoop and validatePath, translated from recursive push_back/pop_back
// mutation of a shared std::vector into explicit Path.push/pop against a
// single owned buffer, matching Go slice-aliasing rules.
package solve
