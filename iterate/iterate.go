package iterate

import (
	"fmt"

	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/reduce"
	"github.com/katalvlaran/pslq/scalar"
)

// Round performs one PSLQ iteration in place on H, y and
// ledger, and returns the pivot index m that was acted on.
//
// Stage 1 (Select pivot): m in {0,...,n-2} maximising gamma^(m+1)*|H_{m,m}|,
// ties broken by lowest index.
// Stage 2 (Swap): exchange rows/entries m, m+1 across y, H and the ledger.
// Stage 3 (Corner removal): when m <= n-3, apply a 2x2 rotation to columns
// m, m+1 of H (rows m..n-1) that zeroes the corner H_{m,m+1} introduced by
// the swap without disturbing y.H = 0 or ||H||_F.
// Stage 4 (Partial re-reduction): restore the Hermite bound via reduce.Partial.
func Round[T any](field scalar.Field[T], H *pslqcore.Matrix[T], y pslqcore.Vector[T], ledger *pslqcore.Ledger, gamma T) (int, error) {
	n := len(y)
	if n < 2 {
		return 0, fmt.Errorf("iterate.Round: need at least 2 values, got %d", n)
	}

	m := selectPivot(field, H, gamma)

	// Stage 2: swap.
	y[m], y[m+1] = y[m+1], y[m]
	H.SwapRows(m, m+1)
	if err := ledger.SwapRows(m); err != nil {
		return m, fmt.Errorf("iterate.Round: %w", err)
	}

	// Stage 3: corner removal, only when H has a corner at (m, m+1) to erase.
	if m <= H.Cols()-2 {
		removeCorner(field, H, m)
	}

	// Stage 4: partial re-reduction.
	if err := reduce.Partial(field, H, y, ledger, m); err != nil {
		return m, fmt.Errorf("iterate.Round: %w", err)
	}

	return m, nil
}

// selectPivot finds m in {0,...,cols-1} maximising gamma^(m+1)*|H_{m,m}|.
// cols == n-1, so m never reaches n-1: the last row of H has no diagonal
// entry of its own to pivot on.
func selectPivot[T any](field scalar.Field[T], H *pslqcore.Matrix[T], gamma T) int {
	best := 0
	gammaPow := gamma // gamma^1 for m=0
	bestVal := field.Mul(gammaPow, field.Abs(H.At(0, 0)))

	for m := 1; m < H.Cols(); m++ {
		gammaPow = field.Mul(gammaPow, gamma) // gamma^(m+1)
		val := field.Mul(gammaPow, field.Abs(H.At(m, m)))
		if field.Cmp(val, bestVal) > 0 {
			bestVal = val
			best = m
		}
	}

	return best
}

// removeCorner applies a 2x2 Givens-style rotation
// to columns m, m+1 of H, from row m down to n-1, zeroing the corner entry
// H_{m,m+1} the preceding swap introduced without disturbing y.H = 0.
func removeCorner[T any](field scalar.Field[T], H *pslqcore.Matrix[T], m int) {
	hmm := H.At(m, m)
	hmm1 := H.At(m, m+1)
	t0 := field.Sqrt(field.Add(field.Mul(hmm, hmm), field.Mul(hmm1, hmm1)))
	t1 := field.Quo(hmm, t0)
	t2 := field.Quo(hmm1, t0)

	for i := m; i < H.Rows(); i++ {
		him := H.At(i, m)
		him1 := H.At(i, m+1)
		newM := field.Add(field.Mul(t1, him), field.Mul(t2, him1))
		newM1 := field.Add(field.Neg(field.Mul(t2, him)), field.Mul(t1, him1))
		H.Set(i, m, newM)
		H.Set(i, m+1, newM1)
	}
}
