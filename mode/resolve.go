package mode

// Resolve returns the atom of category T selected by e, or def when e does
// not mention T. The type parameter ties def to the looked-up category.
//
// Because a well-formed expression holds at most one atom per category, the
// result does not depend on atom order. Resolve never fails; validate e first
// (Validate or Contract.Check), since an ill-formed e has no defined answer.
//
// Complexity: O(n) in the number of atoms.
func Resolve[T comparable](e Expr, def Mode[T]) Mode[T] {
	if m, ok := Lookup[T](e); ok {
		return m
	}

	return def
}

// Lookup returns the atom of category T selected by e and true, or the zero
// Mode and false when e does not mention T.
func Lookup[T comparable](e Expr) (Mode[T], bool) {
	if e == nil {
		return Mode[T]{}, false
	}
	for _, a := range e.atoms() {
		if m, ok := a.(Mode[T]); ok {
			return m, true
		}
	}

	return Mode[T]{}, false
}

// WithDefaults returns a Set holding every atom of e plus, for each category
// of defaults that e does not mention, the default atom. Explicit selections
// always win; nothing in e is dropped or replaced.
//
// Errors: ErrMalformedExpression / ErrDuplicateCategory when e is not well formed.
// Complexity: O(n+d).
func WithDefaults(e Expr, defaults Set) (Set, error) {
	if e == nil {
		return Set{}, specErrorf(OpWithDefaults, ErrMalformedExpression, "nil expression")
	}
	explicit := e.atoms()
	if err := checkAtoms(OpWithDefaults, explicit); err != nil {
		return Set{}, err
	}

	out := make([]Atom, 0, len(explicit)+defaults.Len())
	out = append(out, explicit...)
	for _, d := range defaults.elems {
		if !HasKind(d, e) {
			out = append(out, d)
		}
	}

	return Set{elems: out}, nil
}
