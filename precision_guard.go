package pslq

import (
	"fmt"

	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/scalar"
)

// validateInputs is PrecisionGuard (C1). It checks the input
// vector and the (gamma, maxNorm) parameter pair, and returns the derived
// tau on success.
//
// Stage 1 (Shape): n >= 2, strictly increasing, every entry positive.
// Stage 2 (Parameters): gamma > 2/sqrt(3); tau derived from gamma lies
// strictly in (1, 2).
// Stage 3 (Precision budget): maxNorm^2 * ||x||_2^2 < 1/eps, else report the
// maximum permissible maxNorm at the current working precision.
func validateInputs[T any](field scalar.Field[T], x []T, maxNorm, gamma T) (T, error) {
	var zero T

	// Stage 1: shape.
	if len(x) < 2 {
		return zero, fmt.Errorf("pslq: %w", ErrInputTooShort)
	}
	for i := 1; i < len(x); i++ {
		if field.Cmp(x[i], x[i-1]) <= 0 {
			return zero, fmt.Errorf("pslq: x[%d] <= x[%d]: %w", i, i-1, ErrInputNotSorted)
		}
	}
	for i, xi := range x {
		if field.Sign(xi) <= 0 {
			return zero, fmt.Errorf("pslq: x[%d] is not strictly positive: %w", i, ErrInputNonPositive)
		}
	}

	// Stage 2: gamma, tau.
	threshold := field.Quo(field.FromInt64(2), field.Sqrt(field.FromInt64(3)))
	if field.Cmp(gamma, threshold) <= 0 {
		return zero, fmt.Errorf("pslq: gamma = %s, need > 2/sqrt(3) = %s: %w",
			field.String(gamma), field.String(threshold), ErrGammaOutOfRange)
	}

	quarter := field.Quo(field.FromInt64(1), field.FromInt64(4))
	invGammaSq := field.Quo(field.FromInt64(1), field.Mul(gamma, gamma))
	tau := field.Quo(field.FromInt64(1), field.Sqrt(field.Add(quarter, invGammaSq)))
	one := field.FromInt64(1)
	two := field.FromInt64(2)
	if field.Cmp(tau, one) <= 0 || field.Cmp(tau, two) >= 0 {
		return zero, fmt.Errorf("pslq: derived tau = %s does not lie in (1, 2): %w", field.String(tau), ErrTauOutOfRange)
	}

	// Stage 3: precision budget. max_norm^2 * ||x||_2^2 < 1/eps.
	normX2 := field.FromInt64(0)
	for _, xi := range x {
		normX2 = field.Add(normX2, field.Mul(xi, xi))
	}
	lhs := field.Mul(field.Mul(maxNorm, maxNorm), normX2)
	invEps := field.Quo(one, field.Epsilon())
	if field.Cmp(lhs, invEps) >= 0 {
		recommended := field.Quo(one, field.Sqrt(field.Mul(normX2, field.Epsilon())))
		return zero, fmt.Errorf("pslq: %w",
			pslqcore.NewPrecisionError[T](recommended, ErrPrecisionInsufficient))
	}

	return tau, nil
}
