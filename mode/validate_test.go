package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/staticmode/mode"
)

func TestIsExpr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"mode", dotted, true},
		{"set", mode.Must(mode.Combine(dotted, arrows)), true},
		{"empty set", mode.Empty, true},
		{"zero set", mode.Set{}, true},
		{"nil", nil, false},
		{"int", 42, false},
		{"enum value", LineDotted, false},
		{"category", LineStyles, false},
		{"kind", LineStyles.Kind(), false},
		{"undeclared category", mode.Mode[Undeclared]{}, false},
		{"value outside category", mode.Mode[Fruit]{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mode.IsExpr(tc.v))
		})
	}
}

func TestIsWellFormedAndValidate(t *testing.T) {
	t.Parallel()

	require.True(t, mode.IsWellFormed(dotted))
	require.True(t, mode.IsWellFormed(mode.Empty))
	require.True(t, mode.IsWellFormed(mode.Must(mode.Join(dotted, circles, apple))))
	require.False(t, mode.IsWellFormed(nil))
	require.False(t, mode.IsWellFormed(mode.Mode[Undeclared]{}))

	require.NoError(t, mode.Validate(mode.Must(mode.Combine(solid, circles))))
	require.ErrorIs(t, mode.Validate(nil), mode.ErrMalformedExpression)
	require.ErrorIs(t, mode.Validate(mode.Mode[Fruit]{}), mode.ErrMalformedExpression)
}

func TestHasNoOtherModes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		e    mode.Expr
		want bool
	}{
		{"line only", dashed, true},
		{"end only", arrows, true},
		{"both", mode.Must(mode.Combine(dashed, arrows)), true},
		{"empty", mode.Empty, true},
		{"fruit atom", apple, false},
		{"line and fruit", mode.Must(mode.Combine(dashed, apple)), false},
		{"all three", mode.Must(mode.Join(dashed, arrows, banana)), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mode.HasNoOtherModes(drawing, tc.e))
		})
	}

	// The zero Accepted accepts only the empty expression.
	require.True(t, mode.HasNoOtherModes(mode.Accepted{}, mode.Empty))
	require.False(t, mode.HasNoOtherModes(mode.Accepted{}, dotted))
}

func TestHasMode(t *testing.T) {
	t.Parallel()

	set := mode.Must(mode.Combine(dashed, apple))

	require.True(t, mode.HasMode[LineStyle](set))
	require.True(t, mode.HasMode[Fruit](set))
	require.False(t, mode.HasMode[EndStyle](set))
	require.True(t, mode.HasMode[LineStyle](dashed))
	require.False(t, mode.HasMode[EndStyle](dashed))
	require.False(t, mode.HasMode[LineStyle](mode.Empty))
	require.False(t, mode.HasMode[LineStyle](nil))

	require.True(t, mode.HasKind(LineStyles, set))
	require.True(t, mode.HasKind(mode.KindOf[Fruit](), set))
	require.False(t, mode.HasKind(EndStyles, set))
	require.False(t, mode.HasKind(nil, set))
	require.False(t, mode.HasKind(LineStyles, nil))
}
