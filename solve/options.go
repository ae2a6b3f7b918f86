// SPDX-License-Identifier: MIT
package solve

import (
	"context"
	"log/slog"
)

// Option configures a Solver, mirroring the functional-option pattern used
// throughout the teacher's traversal packages (dfs.Option, bfs.Option).
type Option func(*Options)

// Options holds Solver's configurable parameters.
type Options struct {
	// Ctx allows cancellation of a long search; defaults to
	// context.Background(). Checked between start points and on every
	// recursive step.
	Ctx context.Context

	// MaxSolutions stops the search once this many solutions have been
	// found. Zero (the default) means unlimited.
	MaxSolutions int

	// PermissiveNegation selects the permissive negation-matching rule
	// (I <= N and N-I even) instead of the restrictive default (I == N
	// mod 2) when validating a candidate path; see board.ValidateOption.
	PermissiveNegation bool

	// Logger receives diagnostic messages: no start points, no endpoints,
	// solution count. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns a Options struct with a background context, no
// solution cap, the restrictive negation rule, and the default logger.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		MaxSolutions:       0,
		PermissiveNegation: false,
		Logger:             slog.Default(),
	}
}

// WithContext returns an Option that sets the Context for Solve.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions returns an Option that caps the number of solutions
// Solve collects. n <= 0 means unlimited.
func WithMaxSolutions(n int) Option {
	return func(o *Options) { o.MaxSolutions = n }
}

// WithPermissiveNegation returns an Option that switches path validation to
// the permissive negation rule.
func WithPermissiveNegation() Option {
	return func(o *Options) { o.PermissiveNegation = true }
}

// WithLogger returns an Option that installs a non-nil logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
