// Package painter declares the drawing categories and their atoms.
package painter

import "github.com/katalvlaran/staticmode/mode"

// LineStyle selects the glyph of the line body.
type LineStyle int

const (
	LineDotted LineStyle = iota
	LineDashed
	LineSolid
)

// String implements fmt.Stringer.
func (s LineStyle) String() string {
	switch s {
	case LineDotted:
		return "dotted"
	case LineDashed:
		return "dashed"
	case LineSolid:
		return "solid"
	}

	return "LineStyle(?)"
}

// EndStyle selects the glyphs at both ends of the line.
type EndStyle int

const (
	EndNone EndStyle = iota
	EndArrows
	EndCircles
)

// String implements fmt.Stringer.
func (s EndStyle) String() string {
	switch s {
	case EndNone:
		return "no_ends"
	case EndArrows:
		return "arrows"
	case EndCircles:
		return "circles"
	}

	return "EndStyle(?)"
}

// Categories.
var (
	LineStyles = mode.NewCategory(LineDotted, LineDashed, LineSolid)
	EndStyles  = mode.NewCategory(EndNone, EndArrows, EndCircles)
)

// Atoms.
var (
	Dotted = LineStyles.Mode(LineDotted)
	Dashed = LineStyles.Mode(LineDashed)
	Solid  = LineStyles.Mode(LineSolid)

	NoEnds  = EndStyles.Mode(EndNone)
	Arrows  = EndStyles.Mode(EndArrows)
	Circles = EndStyles.Mode(EndCircles)
)

// Accepted lists the categories every painter operation takes.
var Accepted = mode.Accept(LineStyles, EndStyles)

// Defaults selects Solid and NoEnds for unmentioned categories.
var Defaults = mode.Must(mode.Combine(Solid, NoEnds))

// Dispatch tables; NewTable panics at init if an alternative is unhandled.
var (
	bodies = mode.NewTable(LineStyles, map[LineStyle]string{
		LineDotted: ".",
		LineDashed: "-",
		LineSolid:  "_",
	})
	leftEnds = mode.NewTable(EndStyles, map[EndStyle]string{
		EndNone:    " ",
		EndArrows:  "<",
		EndCircles: "o",
	})
	rightEnds = mode.NewTable(EndStyles, map[EndStyle]string{
		EndNone:    "",
		EndArrows:  ">",
		EndCircles: "o",
	})
)
