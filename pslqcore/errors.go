// Package pslqcore: sentinel error set shared by the low-level PSLQ state.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is; wrap with fmt.Errorf("%s: %w", ...) at call sites for context,
// never re-declare a new sentinel for the same condition.
package pslqcore

import "errors"

var (
	// ErrInternalInvariantViolated marks a failed post-condition in HBuilder
	// (‖H‖_F² mismatch, y·H != 0, y underflow, near-duplicate y_i), a failed
	// A·B = I check, or a zero max|H_ii| when forming the norm bound. It
	// signals a bug, not bad input. A norm bound that decreases across rounds
	// is not reported with this error; it only sets the Terminator's
	// NormBoundDecreased warning.
	ErrInternalInvariantViolated = errors.New("pslqcore: internal invariant violated")

	// ErrIntegerOverflow is returned by Ledger.ReduceRow when a configured
	// bit-width cap is exceeded. With the default (unbounded) cap this is
	// unreachable; it exists so callers that do cap ledger growth (e.g. to
	// bound memory on adversarial inputs) get a named, testable error.
	ErrIntegerOverflow = errors.New("pslqcore: integer ledger entry exceeded configured bit width")

	// ErrDimensionMismatch indicates a Matrix/Vector/Ledger operation was
	// called with incompatible shapes.
	ErrDimensionMismatch = errors.New("pslqcore: dimension mismatch")

	// ErrIndexOutOfRange indicates a row/column index outside [0, n).
	ErrIndexOutOfRange = errors.New("pslqcore: index out of range")

	// ErrTooFewColumns signals a vector of length < 2 was handed to BuildH,
	// which needs at least one H column (n-1 >= 1).
	ErrTooFewColumns = errors.New("pslqcore: need at least 2 values to build H")

	// ErrNearDuplicateInputs signals two consecutive (sorted) x_i are within
	// 2 ULPs of each other at the working precision — indistinguishable
	// inputs at the precision in use.
	ErrNearDuplicateInputs = errors.New("pslqcore: two input values are within 2 ULPs of each other")
)
