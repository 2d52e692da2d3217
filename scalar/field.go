package scalar

import "math/big"

// Field is the arithmetic surface PSLQ needs from its working real type T.
//
// Implementations MUST be side-effect free: every method returns a new T and
// never mutates an argument in place, even when T is itself a pointer type.
// This lets pslqcore share a single T value across y, H and Relation terms
// without defensive copying at every call site — callers that do need a
// private copy use Clone explicitly (e.g. before handing a value to a
// long-lived slice).
type Field[T any] interface {
	// Add returns x + y.
	Add(x, y T) T
	// Sub returns x - y.
	Sub(x, y T) T
	// Mul returns x * y.
	Mul(x, y T) T
	// Quo returns x / y. Behavior on y == 0 is implementation-defined; the
	// core's reduction and rotation steps divide without checking for zero.
	Quo(x, y T) T
	// Sqrt returns sqrt(x). x is assumed non-negative.
	Sqrt(x T) T
	// Abs returns |x|.
	Abs(x T) T
	// Neg returns -x.
	Neg(x T) T
	// Sign returns -1, 0, or +1.
	Sign(x T) int
	// Cmp returns -1, 0, +1 as x <, ==, > y.
	Cmp(x, y T) int
	// IsZero reports whether x is exactly zero.
	IsZero(x T) bool
	// FromInt64 constructs T from a small integer (used for 0, 1, and ledger
	// coefficients promoted back into the real domain).
	FromInt64(v int64) T
	// FromBigInt constructs T from an arbitrary-width integer.
	FromBigInt(v *big.Int) T
	// RoundToBigInt rounds x to the nearest integer (ties handled per the
	// field's own rounding convention, see DecimalField's doc comment) and
	// returns it exactly as a *big.Int.
	RoundToBigInt(x T) (*big.Int, error)
	// Epsilon returns the relative machine precision of T.
	Epsilon() T
	// Clone returns a private, independently-mutable copy of x.
	Clone(x T) T
	// String renders x for diagnostics; never used for control flow.
	String(x T) string
}
