// SPDX-License-Identifier: MIT

// Command witness-solve reads a puzzle from a file or stdin, enumerates
// solution paths, and writes them (and optionally an ASCII rendering of the
// first one) to stdout. Flag and error-reporting style is grounded on the
// pack's stdlib-flag-based CLI (lixenwraith-vi-fighter's cmd/ascimage):
// flag.FlagSet with ContinueOnError, errors logged to stderr, os.Exit(1) on
// failure.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/witness-solver/board"
	"github.com/katalvlaran/witness-solver/decode"
	"github.com/katalvlaran/witness-solver/render"
	"github.com/katalvlaran/witness-solver/solve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("witness-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputPath          string
		format             string
		maxSolutions       int
		permissiveNegation bool
		showBoard          bool
	)
	fs.StringVar(&inputPath, "input", "", "puzzle file path (default stdin)")
	fs.StringVar(&format, "format", "json", "input encoding: json or yaml")
	fs.IntVar(&maxSolutions, "max", 0, "maximum solutions to find (0 = unlimited)")
	fs.BoolVar(&permissiveNegation, "permissive-negation", false, "use the permissive negation-matching rule")
	fs.BoolVar(&showBoard, "render", false, "print an ASCII rendering of the first solution")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	in := stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			logger.Error("open input", "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	var decodeOpts []decode.Option
	switch format {
	case "json":
	case "yaml":
		decodeOpts = append(decodeOpts, decode.WithYAML())
	default:
		logger.Error("unknown format", "format", format)
		return 1
	}

	puzzle, err := decode.Decode(in, decodeOpts...)
	if err != nil {
		logger.Error("decode puzzle", "error", err)
		return 1
	}

	var solveOpts []solve.Option
	if maxSolutions > 0 {
		solveOpts = append(solveOpts, solve.WithMaxSolutions(maxSolutions))
	}
	if permissiveNegation {
		solveOpts = append(solveOpts, solve.WithPermissiveNegation())
	}
	solveOpts = append(solveOpts, solve.WithLogger(logger))

	solver := solve.NewSolver(puzzle, solveOpts...)
	paths, err := solver.Solve(context.Background())
	if err != nil {
		logger.Error("solve", "error", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(paths); err != nil {
		logger.Error("write solutions", "error", err)
		return 1
	}

	if showBoard && len(paths) > 0 {
		display := puzzle.Clone()
		display.ClearLines()
		for _, pos := range paths[0].Positions {
			if cell, ok := display.GetCell(pos.X, pos.Y); ok {
				cell.Line = board.LineBlack
			}
		}
		if err := render.Board(stdout, display); err != nil {
			logger.Error("render board", "error", err)
			return 1
		}
	}

	fmt.Fprintf(stderr, "found %d solution(s)\n", len(paths))

	return 0
}
