package mode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staticmode/mode"
)

// LineStyle is the running example's first category.
type LineStyle int

const (
	LineDotted LineStyle = iota
	LineDashed
	LineSolid
)

func (s LineStyle) String() string {
	switch s {
	case LineDotted:
		return "dotted"
	case LineDashed:
		return "dashed"
	case LineSolid:
		return "solid"
	}

	return "LineStyle?"
}

// EndStyle is the running example's second category.
type EndStyle int

const (
	EndNone EndStyle = iota
	EndArrows
	EndCircles
)

func (s EndStyle) String() string {
	switch s {
	case EndNone:
		return "no_ends"
	case EndArrows:
		return "arrows"
	case EndCircles:
		return "circles"
	}

	return "EndStyle?"
}

// Fruit is declared but accepted by no consumer. Its zero value is not an
// alternative, so Mode[Fruit]{} is not a declared mode.
type Fruit int

const (
	Apple Fruit = iota + 1
	Orange
	Banana
)

// Undeclared is never passed to NewCategory.
type Undeclared int

var (
	LineStyles = mode.NewCategory(LineDotted, LineDashed, LineSolid)
	EndStyles  = mode.NewCategory(EndNone, EndArrows, EndCircles)
	Fruits     = mode.NewCategory(Apple, Orange, Banana)

	dotted = LineStyles.Mode(LineDotted)
	dashed = LineStyles.Mode(LineDashed)
	solid  = LineStyles.Mode(LineSolid)

	noEnds  = EndStyles.Mode(EndNone)
	arrows  = EndStyles.Mode(EndArrows)
	circles = EndStyles.Mode(EndCircles)

	apple  = Fruits.Mode(Apple)
	banana = Fruits.Mode(Banana)

	drawing = mode.Accept(LineStyles, EndStyles)
)

// requirePanicsWith asserts that fn panics with an error wrapping target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
		require.ErrorIs(t, err, mode.ErrSpecification)
	}()
	fn()
}
