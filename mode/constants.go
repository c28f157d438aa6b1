// Package mode defines shared constants used to prefix errors with the name
// of the operation that detected them.
package mode

//-----------------------------------------------------------------------------
// Operation Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// OpNewCategory is the canonical name for the NewCategory constructor.
	OpNewCategory = "NewCategory"
	// OpMode is the canonical name for the Category.Mode declaration.
	OpMode = "Mode"
	// OpCombine is the canonical name for the Combine operation.
	OpCombine = "Combine"
	// OpJoin is the canonical name for the Join operation.
	OpJoin = "Join"
	// OpValidate is the canonical name for the Validate predicate.
	OpValidate = "Validate"
	// OpCheck is the canonical name for the Accepted.Check predicate.
	OpCheck = "Check"
	// OpAccept is the canonical name for the Accept constructor.
	OpAccept = "Accept"
	// OpRequire is the canonical name for the Require contract option.
	OpRequire = "Require"
	// OpNewContract is the canonical name for the NewContract constructor.
	OpNewContract = "NewContract"
	// OpWithDefaults is the canonical name for the WithDefaults operation.
	OpWithDefaults = "WithDefaults"
	// OpNewTable is the canonical name for the NewTable constructor.
	OpNewTable = "NewTable"
)

// setSeparator joins atoms in Set.String, echoing the composition operator.
const setSeparator = " | "
