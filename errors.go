// Package pslq: sentinel error set. All algorithms MUST return
// these sentinels and callers MUST match them via errors.Is; wrap with
// fmt.Errorf("%s: %w", ...) for context, never re-declare a new sentinel for
// an existing condition.
package pslq

import (
	"errors"

	"github.com/katalvlaran/pslq/pslqcore"
)

var (
	// ErrInputTooShort: |x| < 2.
	ErrInputTooShort = errors.New("pslq: input vector must have length >= 2")

	// ErrInputNotSorted: x is not strictly increasing.
	ErrInputNotSorted = errors.New("pslq: input vector must be strictly increasing")

	// ErrInputNonPositive: some x_i <= 0.
	ErrInputNonPositive = errors.New("pslq: input vector must be strictly positive")

	// ErrGammaOutOfRange: gamma <= 2/sqrt(3).
	ErrGammaOutOfRange = errors.New("pslq: gamma must be > 2/sqrt(3)")

	// ErrTauOutOfRange: the derived tau does not lie in (1, 2).
	ErrTauOutOfRange = errors.New("pslq: derived tau must lie strictly in (1, 2)")

	// ErrPrecisionInsufficient: max_norm exceeds what the current working
	// precision can certify. Returned wrapped in a
	// *pslqcore.PrecisionError carrying the maximum permissible bound.
	ErrPrecisionInsufficient = errors.New("pslq: max_norm exceeds what current precision can certify")

	// ErrCancelled: the caller's context was found cancelled at the start of
	// a round, before that round's pivot selection.
	ErrCancelled = errors.New("pslq: cancelled")

	// ErrIterationBudgetExceeded: the emergency-termination multiplier on
	// the advertised iteration-count budget was exceeded
	// without reaching a relation or the norm bound — a numerical-health
	// guard, not part of the published termination contract.
	ErrIterationBudgetExceeded = errors.New("pslq: iteration budget exceeded without termination")

	// ErrIntegerOverflow aliases pslqcore.ErrIntegerOverflow so callers of
	// the root package never need to import pslqcore directly just to
	// match on this sentinel.
	ErrIntegerOverflow = pslqcore.ErrIntegerOverflow

	// ErrInternalInvariantViolated aliases pslqcore.ErrInternalInvariantViolated.
	ErrInternalInvariantViolated = pslqcore.ErrInternalInvariantViolated
)
