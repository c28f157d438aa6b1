// Package mode composes categorized selector flags ("modes") into checked
// combinations, and extracts per category the selection that applies.
//
// A function that takes several independent, mutually exclusive option groups
// (say a line style and an end style) accepts them all through one Expr
// parameter. Nonsensical combinations are rejected before any behavior is
// dispatched: two values of the same group, or a value from a group the
// function does not support.
//
// The package offers the following key components:
//
//   - Declarations:
//     – Category[T]:   a closed set of alternatives; the Go type T is the category.
//     – Mode[T]:       one alternative of T, declared via (*Category[T]).Mode.
//     – Kind:          comparable category identifier (KindOf[T]()).
//   - Expressions:
//     – Expr:          sealed interface over Mode[T] and Set.
//     – Set:           immutable atoms of pairwise distinct categories.
//     – Combine/Join:  composition; Must for package-level combinations.
//   - Validation:
//     – IsExpr, IsWellFormed, Validate.
//     – HasMode, HasKind, HasNoOtherModes.
//     – Accepted, Contract: consumer-side checks in one call.
//   - Extraction:
//     – Resolve, Lookup:  per-category selection with or without a default.
//     – WithDefaults:     explicit default table as a Set.
//     – Table[T,V]:       exhaustive per-category dispatch.
//
// Typical use:
//
//	type LineStyle int
//
//	const (
//		LineDotted LineStyle = iota
//		LineDashed
//		LineSolid
//	)
//
//	var (
//		LineStyles = mode.NewCategory(LineDotted, LineDashed, LineSolid)
//		Dotted     = LineStyles.Mode(LineDotted)
//		Solid      = LineStyles.Mode(LineSolid)
//	)
//
//	func Draw(e mode.Expr) error {
//		if err := contract.Check(e); err != nil {
//			return err
//		}
//		style := mode.Resolve(e, Solid) // Solid when e has no LineStyle
//		...
//	}
//
// Guarantees:
//
//   - Combine never keeps "the first" or "the last" of two atoms of one
//     category: it fails with ErrDuplicateCategory.
//   - Atom order inside a Set is never observable; accessors report atoms
//     sorted by category.
//   - Every operation is pure and safe for concurrent use. The declaration
//     table is written by NewCategory during package initialization only.
//   - Fast-fail on meaningless declarations via panics in declaration-time
//     constructors; operations on values return wrapped sentinel errors.
package mode
