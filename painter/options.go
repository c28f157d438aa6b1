// SPDX-License-Identifier: MIT
// Package: staticmode/painter
//
// options.go — functional options for the painter package.
//
// Contract (strict):
//   • Options are functional (type Option func(*painterConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Drawing operations themselves never panic; they return errors.

package painter

import "log/slog"

// Option customizes a Painter before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*painterConfig)

// WithLength sets the number of body glyphs drawn between the ends.
// Panics if n < MinLength.
func WithLength(n int) Option {
	if n < MinLength {
		panic("painter: WithLength(n<1)")
	}
	return func(c *painterConfig) {
		c.length = n
	}
}

// WithLogger routes debug records (rejected expressions, configured
// drawers) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("painter: WithLogger(nil)")
	}
	return func(c *painterConfig) {
		c.logger = l
	}
}
