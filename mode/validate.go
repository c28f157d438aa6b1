// Package mode provides the validation predicates a consumer runs on a
// received expression before resolving it.
//
// Each predicate is pure; Validate and the Check methods return a wrapped
// sentinel via specErrorf when an invariant is violated.
package mode

// IsExpr reports whether v is a mode expression: a declared Mode[T], or a Set
// whose atoms are all declared modes. nil and every other type yield false.
//
// Complexity: O(n) in the number of atoms.
func IsExpr(v any) bool {
	e, ok := v.(Expr)
	if !ok || e == nil {
		return false
	}
	for _, a := range e.atoms() {
		if !isDeclaredAtom(a) {
			return false
		}
	}

	return true
}

// IsWellFormed reports whether e is a valid expression in which no two atoms
// share a category. Sets produced by Combine and Join always are.
//
// Complexity: O(n).
func IsWellFormed(e Expr) bool {
	return Validate(e) == nil
}

// Validate returns nil if e is a well-formed expression. Otherwise it returns
// an error wrapping ErrMalformedExpression or ErrDuplicateCategory, checked in
// that order.
//
// Complexity: O(n).
func Validate(e Expr) error {
	if e == nil {
		return specErrorf(OpValidate, ErrMalformedExpression, "nil expression")
	}

	return checkAtoms(OpValidate, e.atoms())
}

// HasNoOtherModes reports whether every category appearing in e belongs to
// accepted. An expression with no atom trivially satisfies it.
//
// Complexity: O(n·m) for n atoms and m accepted categories.
func HasNoOtherModes(accepted Accepted, e Expr) bool {
	if e == nil {
		return false
	}

	return len(accepted.foreign(e)) == 0
}

// HasMode reports whether e explicitly selects a mode of category T,
// regardless of any default.
//
// Complexity: O(n).
func HasMode[T comparable](e Expr) bool {
	_, ok := Lookup[T](e)

	return ok
}

// HasKind is the non-generic form of HasMode.
//
// Complexity: O(n).
func HasKind(k Kinder, e Expr) bool {
	if k == nil || e == nil {
		return false
	}
	kind := k.Kind()
	for _, a := range e.atoms() {
		if a.Kind() == kind {
			return true
		}
	}

	return false
}
