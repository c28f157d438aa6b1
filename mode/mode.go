package mode

import "fmt"

// Expr is a mode expression: a single Mode[T] or a Set.
// The interface is sealed; no type outside this package can implement it.
type Expr interface {
	atoms() []Atom
}

// Atom is a single Mode of any category. Every Mode[T] is an Atom, and no
// other type is. Two atoms are equal (==) iff they select the same value of
// the same category.
type Atom interface {
	Expr
	Kinder
	fmt.Stringer
	value() any
}

// Mode is an immutable atom: one alternative of the category T.
// Declare modes through (*Category[T]).Mode; a Mode built any other way is
// only valid if its value happens to be a declared alternative.
type Mode[T comparable] struct {
	v T
}

// Value returns the selected alternative.
func (m Mode[T]) Value() T { return m.v }

// Kind returns the category of m.
func (m Mode[T]) Kind() Kind { return KindOf[T]() }

// String renders m as "Category(value)", e.g. "LineStyle(dotted)".
func (m Mode[T]) String() string {
	return fmt.Sprintf("%s(%v)", KindOf[T]().Name(), m.v)
}

func (m Mode[T]) value() any { return m.v }

func (m Mode[T]) atoms() []Atom { return []Atom{m} }
