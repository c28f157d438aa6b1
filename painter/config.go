// SPDX-License-Identifier: MIT
// Package: staticmode/painter
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • painterConfig is the single source of truth for all painter knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newPainterConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • length = DefaultLength  (10 body glyphs)
//   • logger = discard        (nothing is logged unless WithLogger is given)

package painter

import (
	"io"
	"log/slog"
)

// painterConfig aggregates all knobs used by a Painter.
// It is held by VALUE (immutable once the Painter exists).
type painterConfig struct {
	// Number of body glyphs between the two ends; >= MinLength.
	length int
	// Destination of debug records about rejected expressions.
	logger *slog.Logger
}

// newPainterConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newPainterConfig(opts ...Option) painterConfig {
	cfg := painterConfig{
		length: DefaultLength,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
