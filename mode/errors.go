// SPDX-License-Identifier: MIT
// Package: staticmode/mode
//
// errors.go — sentinel errors for the mode package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Every sentinel satisfies errors.Is(err, ErrSpecification): a violated
//     mode invariant is a specification error, never a recoverable condition.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Operations attach context with %w (see specErrorf); declaration-time
//     constructors (NewCategory, Category.Mode, Accept, Require, NewContract,
//     NewTable, Must) panic with the same wrapped errors.

package mode

import (
	"errors"
	"fmt"
)

// ErrSpecification is the parent of every error reported by this package.
// Usage: if errors.Is(err, ErrSpecification) { /* reject the combination */ }.
var ErrSpecification = errors.New("mode: specification error")

// ErrMalformedExpression indicates that a value used as a mode expression is
// neither a declared Mode nor a Set of declared Modes (nil operands, atoms of
// an undeclared category, values outside a category's closed set).
var ErrMalformedExpression = fmt.Errorf("%w: malformed expression", ErrSpecification)

// ErrDuplicateCategory indicates that a Set would hold two atoms of the same
// category. Neither atom is kept; the combination is rejected as a whole.
var ErrDuplicateCategory = fmt.Errorf("%w: duplicate category", ErrSpecification)

// ErrUnsupportedCategory indicates that an expression carries a category the
// consumer did not declare in its Accepted list.
var ErrUnsupportedCategory = fmt.Errorf("%w: unsupported category", ErrSpecification)

// ErrMissingMode indicates that a category required by a Contract is absent.
var ErrMissingMode = fmt.Errorf("%w: missing required mode", ErrSpecification)

// ErrInvalidCategory indicates a bad category declaration: no alternatives,
// repeated alternatives, or a second declaration of the same Go type.
var ErrInvalidCategory = fmt.Errorf("%w: invalid category declaration", ErrSpecification)

// ErrUnknownValue indicates an attempt to declare a Mode whose value is not a
// member of its category's closed set.
var ErrUnknownValue = fmt.Errorf("%w: value outside category", ErrSpecification)

// ErrIncompleteTable indicates a dispatch Table that does not cover exactly
// the closed set of its category.
var ErrIncompleteTable = fmt.Errorf("%w: incomplete dispatch table", ErrSpecification)

// specErrorf wraps sentinel with the operation context.
// The result reads "<op>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)).
func specErrorf(op string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", op, inner, sentinel)
}
