// SPDX-License-Identifier: MIT

// Package witnesssolver documents a module that provides a polyomino kernel (poly), an
// expanded-grid puzzle model with region/constraint validation (board), a
// depth-first path solver (solve), a wire-format decoder (decode), and an
// ASCII renderer (render), wired together by cmd/witness-solve.
package witnesssolver
