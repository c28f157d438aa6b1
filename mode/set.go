// SPDX-License-Identifier: MIT
// Package: staticmode/mode
//
// set.go — the Set type and the composition operators.
//
// Contract (strict):
//   • A Set is immutable; Combine and Join always allocate a fresh backing slice.
//   • Every Set produced here holds only declared atoms, at most one per category.
//   • Internal order is append order; every accessor reports the canonical
//     order (sorted by category), so order is never observable.

package mode

import (
	"slices"
	"strings"
)

// Set is a composite selection: zero or more atoms of pairwise distinct
// categories. The zero value is the empty set.
type Set struct {
	elems []Atom
}

// Empty is the empty Set. It resolves every category to its default.
var Empty = Set{}

func (s Set) atoms() []Atom { return s.elems }

// Len returns the number of atoms in s.
func (s Set) Len() int { return len(s.elems) }

// IsEmpty reports whether s holds no atom.
func (s Set) IsEmpty() bool { return len(s.elems) == 0 }

// Modes returns the atoms of s in canonical (category) order.
// The slice is a copy.
func (s Set) Modes() []Atom { return canonical(s.elems) }

// Kinds returns the categories present in s, in canonical order.
func (s Set) Kinds() []Kind {
	atoms := canonical(s.elems)
	out := make([]Kind, len(atoms))
	for i, a := range atoms {
		out[i] = a.Kind()
	}

	return out
}

// String renders s as "{EndStyle(arrows) | LineStyle(dashed)}".
func (s Set) String() string {
	atoms := canonical(s.elems)
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = a.String()
	}

	return "{" + strings.Join(parts, setSeparator) + "}"
}

// Combine merges two expressions into a new Set holding every atom of left
// followed by every atom of right; a single Mode counts as a one-atom set.
//
// Errors:
//   - ErrMalformedExpression: an operand is nil or holds an undeclared atom.
//   - ErrDuplicateCategory:   left and right together repeat a category.
//
// Combine is associative and commutative with respect to category content.
// Complexity: O(len(left)+len(right)).
func Combine(left, right Expr) (Set, error) {
	if left == nil || right == nil {
		return Set{}, specErrorf(OpCombine, ErrMalformedExpression, "nil operand")
	}

	la, ra := left.atoms(), right.atoms()
	out := make([]Atom, 0, len(la)+len(ra))
	out = append(out, la...)
	out = append(out, ra...)
	if err := checkAtoms(OpCombine, out); err != nil {
		return Set{}, err
	}

	return Set{elems: out}, nil
}

// Join folds Combine over exprs from left to right. Join() is the empty set.
// Errors are those of Combine, prefixed with "Join".
// Complexity: O(total atoms).
func Join(exprs ...Expr) (Set, error) {
	var out []Atom
	for i, e := range exprs {
		if e == nil {
			return Set{}, specErrorf(OpJoin, ErrMalformedExpression, "nil operand at index %d", i)
		}
		out = append(out, e.atoms()...)
	}
	if err := checkAtoms(OpJoin, out); err != nil {
		return Set{}, err
	}

	return Set{elems: out}, nil
}

// Must returns s, or panics with err. It is meant for package-level
// combinations so that an invalid one aborts initialization:
//
//	var fancy = mode.Must(mode.Combine(dashed, arrows))
func Must(s Set, err error) Set {
	if err != nil {
		panic(err)
	}

	return s
}

// Equal reports whether a and b are valid expressions selecting the same
// value for the same categories. Atom order is irrelevant.
func Equal(a, b Expr) bool {
	if Validate(a) != nil || Validate(b) != nil {
		return false
	}

	aa, ba := a.atoms(), b.atoms()
	if len(aa) != len(ba) {
		return false
	}
	byKind := make(map[Kind]Atom, len(aa))
	for _, x := range aa {
		byKind[x.Kind()] = x
	}
	for _, y := range ba {
		if x, ok := byKind[y.Kind()]; !ok || x != y {
			return false
		}
	}

	return true
}

// checkAtoms enforces both Set invariants over atoms: every element is a
// declared atom, and no category repeats.
func checkAtoms(op string, atoms []Atom) error {
	seen := make(map[Kind]Atom, len(atoms))
	for _, a := range atoms {
		if !isDeclaredAtom(a) {
			return specErrorf(op, ErrMalformedExpression, "%s is not a declared mode", describeAtom(a))
		}
		k := a.Kind()
		if prev, dup := seen[k]; dup {
			return specErrorf(op, ErrDuplicateCategory, "category %s given twice (%s, %s)", k, prev, a)
		}
		seen[k] = a
	}

	return nil
}

// canonical returns a copy of atoms sorted by category key.
func canonical(atoms []Atom) []Atom {
	out := slices.Clone(atoms)
	slices.SortStableFunc(out, func(x, y Atom) int {
		return strings.Compare(x.Kind().key(), y.Kind().key())
	})

	return out
}

func describeAtom(a Atom) string {
	if a == nil {
		return "<nil>"
	}

	return a.String()
}
