package mode

import (
	"fmt"
	"maps"
)

// Table maps every alternative of one category to a value of type V, usually
// the behavior selected by that alternative. NewTable refuses incomplete
// tables, so a consumer cannot initialize while leaving an alternative
// unhandled.
type Table[T comparable, V any] struct {
	cat     *Category[T]
	entries map[T]V
}

// NewTable builds the dispatch table of c.
// Panics (wrapping ErrIncompleteTable) when c is nil, when an alternative of
// c has no entry, or when entries holds a value outside c.
// Complexity: O(len(c) + len(entries)).
func NewTable[T comparable, V any](c *Category[T], entries map[T]V) *Table[T, V] {
	if c == nil {
		panic(specErrorf(OpNewTable, ErrIncompleteTable, "nil category"))
	}
	for _, v := range c.values {
		if _, ok := entries[v]; !ok {
			panic(specErrorf(OpNewTable, ErrIncompleteTable, "%s has no entry for %v", c.kind, v))
		}
	}
	for v := range entries {
		if !c.Contains(v) {
			panic(specErrorf(OpNewTable, ErrIncompleteTable, "%v is not an alternative of %s", v, c.kind))
		}
	}

	return &Table[T, V]{cat: c, entries: maps.Clone(entries)}
}

// Category returns the category the table dispatches on.
func (t *Table[T, V]) Category() *Category[T] { return t.cat }

// Get returns the entry selected by m.
// A Mode outside the closed set cannot be produced by Category.Mode; Get
// panics on one rather than return a silent zero value.
func (t *Table[T, V]) Get(m Mode[T]) V {
	v, ok := t.entries[m.v]
	if !ok {
		panic(fmt.Sprintf("mode: %s has no entry for %v", t.cat.kind, m.v))
	}

	return v
}

// Resolve returns the entry for Resolve(e, def).
func (t *Table[T, V]) Resolve(e Expr, def Mode[T]) V {
	return t.Get(Resolve(e, def))
}
