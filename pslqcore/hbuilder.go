package pslqcore

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pslq/scalar"
)

// BuildH constructs the normalised vector y and the lower-trapezoidal matrix
// H from a validated input vector x.
//
// Stage 1 (Prepare): compute suffix sums s²_i = Σ_{k>=i} x_k².
// Stage 2 (Execute): fill y and H from the closed-form entries.
// Stage 3 (Verify): check the post-construction invariants; any failure is a
// bug signal (ErrInternalInvariantViolated), never a normal user-facing
// error — callers upstream (PrecisionGuard) are responsible for rejecting
// malformed x before BuildH ever runs.
//
// Complexity: O(n²) time (H has n(n-1)/2 non-zero entries), O(n²) space.
func BuildH[T any](field scalar.Field[T], x Vector[T]) (Vector[T], *Matrix[T], error) {
	n := len(x)
	if n < 2 {
		return nil, nil, fmt.Errorf("BuildH: %w", ErrTooFewColumns)
	}

	// Stage 1: suffix sums s2[i] = sum_{k=i}^{n-1} x_k^2, s2[n] = 0.
	s2 := make([]T, n+1)
	s2[n] = field.FromInt64(0)
	for i := n - 1; i >= 0; i-- {
		s2[i] = field.Add(s2[i+1], field.Mul(x[i], x[i]))
	}

	// Stage 2a: y_i = x_i / sqrt(s2_0).
	normX := field.Sqrt(s2[0])
	y := make(Vector[T], n)
	for i := 0; i < n; i++ {
		y[i] = field.Quo(x[i], normX)
	}

	// Stage 2b: H is n x (n-1), lower trapezoidal.
	H := NewMatrix[T](n, n-1, field.FromInt64(0))
	for i := 0; i < n; i++ {
		for j := 0; j < n-1 && j <= i; j++ {
			if j == i {
				// Diagonal: only rows 0..n-2 have one (row n-1 has no column
				// n-1 to sit on, since H has only n-1 columns).
				H.Set(i, j, field.Sqrt(field.Quo(s2[i+1], s2[i])))
				continue
			}
			// j < i: off-diagonal entry, including the entire last row.
			num := field.Neg(field.Mul(x[i], x[j]))
			den := field.Sqrt(field.Mul(s2[j], s2[j+1]))
			H.Set(i, j, field.Quo(num, den))
		}
	}

	if err := verifyInvariants(field, x, y, H); err != nil {
		return nil, nil, err
	}

	return y, H, nil
}

// verifyInvariants checks the four post-construction conditions BuildH
// guarantees. Each failure is reported as ErrInternalInvariantViolated.
func verifyInvariants[T any](field scalar.Field[T], x, y Vector[T], H *Matrix[T]) error {
	n := len(x)
	nMinus1 := field.FromInt64(int64(n - 1))
	sqrtEps := field.Sqrt(field.Epsilon())

	// Check 1: ‖H‖_F² ≈ n-1.
	frob := field.FromInt64(0)
	for i := 0; i < H.Rows(); i++ {
		for j := 0; j < H.Cols(); j++ {
			v := H.At(i, j)
			frob = field.Add(frob, field.Mul(v, v))
		}
	}
	tol1 := field.Mul(sqrtEps, nMinus1)
	if field.Cmp(field.Abs(field.Sub(frob, nMinus1)), tol1) > 0 {
		return fmt.Errorf("BuildH: ||H||_F^2 = %s, want ~%s: %w",
			field.String(frob), field.String(nMinus1), ErrInternalInvariantViolated)
	}

	// Check 2: y.H ≈ 0 column-wise (each column's |sum|/(n-1) <= sqrt(eps)).
	for j := 0; j < H.Cols(); j++ {
		dot := field.FromInt64(0)
		for i := 0; i < n; i++ {
			dot = field.Add(dot, field.Mul(y[i], H.At(i, j)))
		}
		scaled := field.Quo(field.Abs(dot), nMinus1)
		if field.Cmp(scaled, sqrtEps) > 0 {
			return fmt.Errorf("BuildH: column %d of y.H = %s, want ~0: %w",
				j, field.String(dot), ErrInternalInvariantViolated)
		}
	}

	// Check 3: no y_i underflows to zero.
	for i, yi := range y {
		if field.IsZero(yi) {
			return fmt.Errorf("BuildH: y[%d] underflowed to zero: %w", i, ErrInternalInvariantViolated)
		}
	}

	// Check 4: no two consecutive y_i are within 2 ULPs. A generic proxy for
	// "2 ULPs" across arbitrary fields: |y_i - y_{i+1}| <= 2*eps*max(|y_i|,|y_{i+1}|).
	eps := field.Epsilon()
	two := field.FromInt64(2)
	for i := 0; i+1 < n; i++ {
		a, b := field.Abs(y[i]), field.Abs(y[i+1])
		maxAB := a
		if field.Cmp(b, a) > 0 {
			maxAB = b
		}
		diff := field.Abs(field.Sub(y[i], y[i+1]))
		threshold := field.Mul(two, field.Mul(eps, maxAB))
		if field.Cmp(diff, threshold) <= 0 {
			// Both sentinels apply: this is a HBuilder post-condition
			// failure (ErrInternalInvariantViolated), but it also has a
			// precision-flavoured cause callers may want to match on
			// specifically. errors.Join lets callers use errors.Is against
			// either.
			return fmt.Errorf("BuildH: y[%d] and y[%d] are within 2 ULPs: %w", i, i+1,
				errors.Join(ErrNearDuplicateInputs, ErrInternalInvariantViolated))
		}
	}

	return nil
}
