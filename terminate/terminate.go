package terminate

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/scalar"
)

// residualToleranceMultiplier bounds how far a certified relation's residual
// rho = sum(r_j * x_j) may sit from zero relative to its scale S = sum|r_j*x_j|:
// a returned relation is expected to satisfy |rho| <= 16*eps*S.
const residualToleranceMultiplier = 16

// Result is what Check found after one round.
type Result[T any] struct {
	// Relation is non-nil exactly when a candidate relation was certified
	// this round (some |y_i| < the zero threshold).
	Relation *pslqcore.Relation[T]
	// NormBound is the current certified lower bound NB = 1/max_i|H_{i,i}|
	// on the Euclidean norm of any undetected relation. On a round that finds
	// a relation, NB is not recomputed and this holds prevNormBound.
	NormBound T
	// Halt is true when NormBound has reached the caller's max_norm, or a
	// relation was found — either way the Orchestrator's loop should stop.
	Halt bool
	// NormBoundDecreased flags the non-fatal numerical warning that NB is
	// expected to be monotonic non-decreasing across rounds; a decrease
	// signals accumulated rounding error outrunning the working precision.
	NormBoundDecreased bool
}

// ZeroThresholdFromEpsilon computes the default zero-threshold eps^(15/16)
// using only field.Sqrt, since the working field exposes no transcendental
// operations: eps^(15/16) = eps / eps^(1/16), and eps^(1/16) is four nested
// square roots of eps.
func ZeroThresholdFromEpsilon[T any](field scalar.Field[T], eps T) T {
	sixteenthRoot := eps
	for k := 0; k < 4; k++ {
		sixteenthRoot = field.Sqrt(sixteenthRoot)
	}
	return field.Quo(eps, sixteenthRoot)
}

// Check runs the post-round termination logic.
//
// Stage 1 (Relation test): scan y for the first |y_i| below zeroThreshold;
// if found, extract ledger column i as the candidate relation and compute
// its residual.
// Stage 2 (Norm bound update): NB = 1/max_i|H_{i,i}|; compare against the
// previous round's bound for the monotonicity warning.
// Stage 3 (Termination on bound): halt once NB >= maxNorm.
func Check[T any](
	field scalar.Field[T],
	H *pslqcore.Matrix[T],
	y pslqcore.Vector[T],
	ledger *pslqcore.Ledger,
	x pslqcore.Vector[T],
	maxNorm T,
	zeroThreshold T,
	prevNormBound T,
	havePrevNormBound bool,
) (*Result[T], error) {
	// Stage 1: relation test.
	for i, yi := range y {
		if field.Cmp(field.Abs(yi), zeroThreshold) < 0 {
			rel, err := extractRelation(field, ledger, x, i)
			if err != nil {
				return nil, fmt.Errorf("terminate.Check: %w", err)
			}
			return &Result[T]{Relation: rel, NormBound: prevNormBound, Halt: true}, nil
		}
	}

	// Stage 2: norm bound update.
	maxDiag := field.Abs(H.At(0, 0))
	for i := 1; i < H.Cols(); i++ {
		v := field.Abs(H.At(i, i))
		if field.Cmp(v, maxDiag) > 0 {
			maxDiag = v
		}
	}
	if field.IsZero(maxDiag) {
		return nil, fmt.Errorf("terminate.Check: max|H_ii| is zero, cannot form a norm bound: %w",
			pslqcore.ErrInternalInvariantViolated)
	}
	nb := field.Quo(field.FromInt64(1), maxDiag)

	decreased := havePrevNormBound && field.Cmp(nb, prevNormBound) < 0

	// Stage 3: termination on bound.
	halt := field.Cmp(nb, maxNorm) >= 0

	return &Result[T]{NormBound: nb, Halt: halt, NormBoundDecreased: decreased}, nil
}

// extractRelation builds a Relation from ledger column i against the
// original input x, and computes its residual.
func extractRelation[T any](field scalar.Field[T], ledger *pslqcore.Ledger, x pslqcore.Vector[T], col int) (*pslqcore.Relation[T], error) {
	coeffs := ledger.Column(col)
	if len(coeffs) != len(x) {
		return nil, fmt.Errorf("extractRelation: ledger column length %d != |x| %d: %w",
			len(coeffs), len(x), pslqcore.ErrDimensionMismatch)
	}

	var terms []pslqcore.Term[T]
	rho := field.FromInt64(0)
	scale := field.FromInt64(0)
	for j, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}
		terms = append(terms, pslqcore.Term[T]{Coeff: new(big.Int).Set(c), Value: field.Clone(x[j])})
		contribution := field.Mul(field.FromBigInt(c), x[j])
		rho = field.Add(rho, contribution)
		scale = field.Add(scale, field.Abs(contribution))
	}

	tol := field.Mul(field.FromInt64(residualToleranceMultiplier), field.Mul(field.Epsilon(), scale))
	large := field.Cmp(field.Abs(rho), tol) > 0

	return &pslqcore.Relation[T]{
		Terms: terms,
		Residual: pslqcore.RelationResidual[T]{
			Rho:           rho,
			Scale:         scale,
			LargeResidual: large,
		},
	}, nil
}
