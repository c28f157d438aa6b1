// SPDX-License-Identifier: MIT
// Package: staticmode/mode
//
// contract.go — the consumer side: accepted categories and call contracts.
//
// Contract (strict):
//   • Accepted is the closed list of categories a consumer is willing to take.
//   • A Contract adds the categories a consumer cannot do without, and runs
//     every check a consumer needs in a single call, before any Resolve.
//   • Constructors (Accept, Require, NewContract) panic on meaningless
//     declarations; Check returns errors.

package mode

import "slices"

// Accepted is a per-consumer closed list of categories.
// The zero value accepts nothing (only the empty expression passes).
type Accepted struct {
	kinds []Kind
}

// Accept declares the categories a consumer supports.
// Panics (wrapping ErrInvalidCategory) on a nil or zero category, or when a
// category is listed twice.
// Complexity: O(k²) for k categories; k is tiny in practice.
func Accept(cats ...Kinder) Accepted {
	kinds := make([]Kind, 0, len(cats))
	for i, c := range cats {
		if c == nil || c.Kind().IsZero() {
			panic(specErrorf(OpAccept, ErrInvalidCategory, "nil category at index %d", i))
		}
		k := c.Kind()
		if slices.Contains(kinds, k) {
			panic(specErrorf(OpAccept, ErrInvalidCategory, "category %s listed twice", k))
		}
		kinds = append(kinds, k)
	}

	return Accepted{kinds: kinds}
}

// Kinds returns the accepted categories in declaration order (a copy).
func (a Accepted) Kinds() []Kind { return slices.Clone(a.kinds) }

// Len returns the number of accepted categories.
func (a Accepted) Len() int { return len(a.kinds) }

// Contains reports whether k is accepted.
func (a Accepted) Contains(k Kinder) bool {
	if k == nil {
		return false
	}

	return slices.Contains(a.kinds, k.Kind())
}

// Check returns nil when every category of e is accepted, and an error
// wrapping ErrUnsupportedCategory naming every foreign category otherwise.
// A nil e yields ErrMalformedExpression.
func (a Accepted) Check(e Expr) error {
	if e == nil {
		return specErrorf(OpCheck, ErrMalformedExpression, "nil expression")
	}

	return a.check(OpCheck, e)
}

func (a Accepted) check(op string, e Expr) error {
	if foreign := a.foreign(e); len(foreign) > 0 {
		return specErrorf(op, ErrUnsupportedCategory, "categories %s not in %s", kindList(foreign), kindList(a.kinds))
	}

	return nil
}

// foreign lists, in canonical order, the categories of e outside a.
func (a Accepted) foreign(e Expr) []Kind {
	var out []Kind
	for _, at := range canonical(e.atoms()) {
		if k := at.Kind(); !slices.Contains(a.kinds, k) && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}

	return out
}

// Contract is what a consuming operation checks on every expression it
// receives: well-formedness, accepted categories and required categories.
type Contract struct {
	op       string
	accepted Accepted
	required []Kind
}

// ContractOption customizes a Contract at declaration time.
type ContractOption func(*Contract)

// Require marks categories as mandatory: Check fails with ErrMissingMode when
// the expression does not select them. Panics on a nil or zero category.
func Require(cats ...Kinder) ContractOption {
	kinds := make([]Kind, 0, len(cats))
	for i, c := range cats {
		if c == nil || c.Kind().IsZero() {
			panic(specErrorf(OpRequire, ErrInvalidCategory, "nil category at index %d", i))
		}
		kinds = append(kinds, c.Kind())
	}

	return func(c *Contract) {
		for _, k := range kinds {
			if !slices.Contains(c.required, k) {
				c.required = append(c.required, k)
			}
		}
	}
}

// NewContract declares the checks of the operation op over accepted.
// Panics (wrapping ErrInvalidCategory) when a required category is not
// accepted, since no expression could ever satisfy such a contract.
func NewContract(op string, accepted Accepted, opts ...ContractOption) Contract {
	c := Contract{op: op, accepted: Accepted{kinds: accepted.Kinds()}}
	for _, opt := range opts {
		opt(&c)
	}
	for _, k := range c.required {
		if !c.accepted.Contains(k) {
			panic(specErrorf(OpNewContract, ErrInvalidCategory, "%s requires %s which it does not accept", op, k))
		}
	}

	return c
}

// Op returns the operation name used to prefix errors.
func (c Contract) Op() string { return c.op }

// Accepted returns the accepted categories.
func (c Contract) Accepted() Accepted { return c.accepted }

// Required returns the mandatory categories (a copy).
func (c Contract) Required() []Kind { return slices.Clone(c.required) }

// Check validates e against the contract. The first failing check wins, in
// this order:
//
//  1. ErrMalformedExpression  – e is nil or holds an undeclared atom.
//  2. ErrDuplicateCategory    – two atoms of one category.
//  3. ErrUnsupportedCategory  – categories outside Accepted (all listed).
//  4. ErrMissingMode          – required categories absent (all listed).
//
// Complexity: O(n·(a+r)) for n atoms, a accepted and r required categories.
func (c Contract) Check(e Expr) error {
	if e == nil {
		return specErrorf(c.op, ErrMalformedExpression, "nil expression")
	}
	if err := checkAtoms(c.op, e.atoms()); err != nil {
		return err
	}
	if err := c.accepted.check(c.op, e); err != nil {
		return err
	}

	var missing []Kind
	for _, k := range c.required {
		if !HasKind(k, e) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return specErrorf(c.op, ErrMissingMode, "categories %s not selected", kindList(missing))
	}

	return nil
}
