// SPDX-License-Identifier: MIT
package board

// ValidateOption configures Validate's negation-matching semantics, mirroring
// the functional-option pattern used throughout the teacher's constructors
// (GraphOption, BuilderOption): a closure mutating a private config struct.
type ValidateOption func(*validateConfig)

// validateConfig holds Validate's tunable parameters. The zero value selects
// the restrictive negation rule, per spec §9's default.
type validateConfig struct {
	permissiveNegation bool
}

func newValidateConfig(opts ...ValidateOption) validateConfig {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithPermissiveNegation switches Validate's negation arithmetic from the
// restrictive default (accept iff I == N mod 2) to the permissive variant
// described in spec §9: accept iff I <= N and (N - I) is even, i.e. any
// subset of negations may cancel invalids one-for-one and the remainder
// self-annihilates in pairs.
func WithPermissiveNegation() ValidateOption {
	return func(cfg *validateConfig) { cfg.permissiveNegation = true }
}
