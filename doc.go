// Package staticmode lets a function take any combination of independent,
// mutually exclusive option groups through a single parameter, and rejects
// nonsensical combinations before any behavior is chosen.
//
// Under the hood, everything is organized under three packages:
//
//	mode/         — categories, atoms, Set composition, validation predicates,
//	                per-category Resolve with defaults, exhaustive dispatch tables
//	painter/      — worked consumer: ASCII lines styled by LineStyle and EndStyle
//	cmd/linedraw/ — CLI drawing the canonical combinations and the rejected ones
//
// Quick example:
//
//	e := mode.Must(mode.Combine(painter.Dashed, painter.Arrows))
//	painter.New().DrawLine(os.Stdout, e) // <---------->
//
//	_, err := mode.Combine(painter.Dotted, painter.Solid)
//	errors.Is(err, mode.ErrDuplicateCategory) // true
//
//	go get github.com/katalvlaran/staticmode
package staticmode
