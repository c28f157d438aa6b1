// SPDX-License-Identifier: MIT
// Package: staticmode/mode
//
// category.go — category declaration and the process-wide declaration table.
//
// Contract (strict):
//   • A category is a comparable Go type T plus its closed set of alternatives.
//   • Each T is declared exactly once, normally in a package-level var.
//   • The declaration table is written only by NewCategory and read by every
//     validation; after package initialization it is effectively read-only.

package mode

import (
	"slices"
	"sync"
)

// declared is the type-erased view of a *Category[T] kept in the table.
type declared interface {
	Kinder
	containsAny(v any) bool
}

// declarations maps reflect.Type -> declared.
var declarations sync.Map

// Category is a closed, named set of mutually exclusive alternatives.
// It is immutable once declared.
type Category[T comparable] struct {
	kind   Kind
	values []T
	index  map[T]struct{}
}

// NewCategory declares the category T with the given closed set of values
// and registers it in the declaration table.
//
// Panics (wrapping ErrInvalidCategory) when values is empty, when a value is
// listed twice, or when T has already been declared.
// Complexity: O(len(values)).
func NewCategory[T comparable](values ...T) *Category[T] {
	kind := KindOf[T]()
	if len(values) == 0 {
		panic(specErrorf(OpNewCategory, ErrInvalidCategory, "category %s declares no alternatives", kind))
	}

	index := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, dup := index[v]; dup {
			panic(specErrorf(OpNewCategory, ErrInvalidCategory, "category %s lists %v twice", kind, v))
		}
		index[v] = struct{}{}
	}

	c := &Category[T]{kind: kind, values: slices.Clone(values), index: index}
	if _, loaded := declarations.LoadOrStore(kind.t, declared(c)); loaded {
		panic(specErrorf(OpNewCategory, ErrInvalidCategory, "category %s declared twice", kind))
	}

	return c
}

// Kind returns the category identifier.
func (c *Category[T]) Kind() Kind { return c.kind }

// Name returns the bare category name, e.g. "LineStyle".
func (c *Category[T]) Name() string { return c.kind.Name() }

// String returns the qualified category name.
func (c *Category[T]) String() string { return c.kind.String() }

// Values returns the alternatives in declaration order. The slice is a copy.
func (c *Category[T]) Values() []T { return slices.Clone(c.values) }

// Len returns the number of alternatives.
func (c *Category[T]) Len() int { return len(c.values) }

// Contains reports whether v is one of the category's alternatives.
func (c *Category[T]) Contains(v T) bool {
	_, ok := c.index[v]

	return ok
}

// Mode declares the atom selecting v.
// Panics (wrapping ErrUnknownValue) when v is not an alternative of c.
func (c *Category[T]) Mode(v T) Mode[T] {
	if !c.Contains(v) {
		panic(specErrorf(OpMode, ErrUnknownValue, "%v is not an alternative of %s", v, c.kind))
	}

	return Mode[T]{v: v}
}

// Modes returns one atom per alternative, in declaration order.
func (c *Category[T]) Modes() []Mode[T] {
	out := make([]Mode[T], len(c.values))
	for i, v := range c.values {
		out[i] = Mode[T]{v: v}
	}

	return out
}

func (c *Category[T]) containsAny(v any) bool {
	tv, ok := v.(T)

	return ok && c.Contains(tv)
}

// IsDeclared reports whether k names a category declared with NewCategory.
func IsDeclared(k Kinder) bool {
	if k == nil {
		return false
	}
	kind := k.Kind()
	if kind.IsZero() {
		return false
	}
	_, ok := declarations.Load(kind.t)

	return ok
}

// isDeclaredAtom reports whether a belongs to a declared category and selects
// one of its alternatives.
func isDeclaredAtom(a Atom) bool {
	if a == nil {
		return false
	}
	d, ok := declarations.Load(a.Kind().t)
	if !ok {
		return false
	}

	return d.(declared).containsAny(a.value())
}
