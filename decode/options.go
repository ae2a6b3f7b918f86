// SPDX-License-Identifier: MIT
package decode

// Option configures Decode, mirroring the functional-option pattern used
// throughout the teacher's builders (builder.BuilderOption).
type Option func(*config)

type config struct {
	yaml bool
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithYAML selects gopkg.in/yaml.v3 instead of encoding/json for the input
// payload. The wire schema (width/height/pillar/grid) is identical; only
// the textual encoding differs.
func WithYAML() Option {
	return func(cfg *config) { cfg.yaml = true }
}
