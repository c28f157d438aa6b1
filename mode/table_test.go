package mode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staticmode/mode"
)

func TestTable(t *testing.T) {
	t.Parallel()

	bodies := mode.NewTable(LineStyles, map[LineStyle]string{
		LineDotted: "..",
		LineDashed: "--",
		LineSolid:  "__",
	})

	require.Same(t, LineStyles, bodies.Category())
	require.Equal(t, "--", bodies.Get(dashed))
	require.Equal(t, "__", bodies.Resolve(mode.Empty, solid))
	require.Equal(t, "..", bodies.Resolve(mode.Must(mode.Combine(circles, dotted)), solid))
}

func TestTableMustBeExhaustive(t *testing.T) {
	t.Parallel()

	requirePanicsWith(t, mode.ErrIncompleteTable, func() {
		mode.NewTable(EndStyles, map[EndStyle]int{EndNone: 0, EndArrows: 1})
	})
	requirePanicsWith(t, mode.ErrIncompleteTable, func() {
		mode.NewTable(EndStyles, map[EndStyle]int{EndNone: 0, EndArrows: 1, EndCircles: 2, EndStyle(9): 3})
	})
	requirePanicsWith(t, mode.ErrIncompleteTable, func() {
		mode.NewTable[EndStyle, int](nil, nil)
	})
}

func TestTableGetPanicsOutsideCategory(t *testing.T) {
	t.Parallel()

	fruits := mode.NewTable(Fruits, map[Fruit]bool{Apple: true, Orange: true, Banana: false})
	require.Panics(t, func() { fruits.Get(mode.Mode[Fruit]{}) })
}
