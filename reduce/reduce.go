package reduce

import (
	"fmt"

	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/scalar"
)

// Full applies Hermite size reduction across the whole matrix: for i from 1
// to n-1, for j from i-1 down to 0. This is the initial reduction pass the
// Orchestrator runs once, before the first Iterator round.
//
// Complexity: O(n²) reduction steps, each O(n) — O(n³) total.
func Full[T any](field scalar.Field[T], H *pslqcore.Matrix[T], y pslqcore.Vector[T], ledger *pslqcore.Ledger) error {
	n := len(y)
	for i := 1; i < n; i++ {
		for j := i - 1; j >= 0; j-- {
			if err := reduceStep(field, H, y, ledger, i, j); err != nil {
				return fmt.Errorf("reduce.Full: %w", err)
			}
		}
	}
	return nil
}

// Partial applies the narrower re-reduction pass Iterator needs after
// swapping rows m, m+1 and removing the corner: for i from m+1 to n-1, for j
// from min(i-1, m+1) down to 0.
func Partial[T any](field scalar.Field[T], H *pslqcore.Matrix[T], y pslqcore.Vector[T], ledger *pslqcore.Ledger, m int) error {
	n := len(y)
	for i := m + 1; i < n; i++ {
		top := i - 1
		if m+1 < top {
			top = m + 1
		}
		for j := top; j >= 0; j-- {
			if err := reduceStep(field, H, y, ledger, i, j); err != nil {
				return fmt.Errorf("reduce.Partial: %w", err)
			}
		}
	}
	return nil
}

// reduceStep is the single site that derives a reduction coefficient t and
// applies it to H, y and the ledger identically: t is computed
// once as a *big.Int via field.RoundToBigInt, then promoted back to T for
// the H/y update and handed to ledger.ReduceRow unchanged. Implementations
// must never recompute t independently on either side.
func reduceStep[T any](field scalar.Field[T], H *pslqcore.Matrix[T], y pslqcore.Vector[T], ledger *pslqcore.Ledger, i, j int) error {
	quotient := field.Quo(H.At(i, j), H.At(j, j))
	tBig, err := field.RoundToBigInt(quotient)
	if err != nil {
		return fmt.Errorf("reduceStep(%d,%d): round H[%d][%d]/H[%d][%d]: %w", i, j, i, j, j, j, err)
	}
	if tBig.Sign() == 0 {
		return nil // t = 0 is a no-op.
	}
	t := field.FromBigInt(tBig)

	// H[i,k] -= t * H[j,k] for k = 0..j.
	for k := 0; k <= j; k++ {
		H.Set(i, k, field.Sub(H.At(i, k), field.Mul(t, H.At(j, k))))
	}

	if err := ledger.ReduceRow(i, j, tBig); err != nil {
		return fmt.Errorf("reduceStep(%d,%d): %w", i, j, err)
	}

	// y_j += t * y_i.
	y[j] = field.Add(y[j], field.Mul(t, y[i]))

	return nil
}
