package pslq

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/katalvlaran/pslq/iterate"
	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/reduce"
	"github.com/katalvlaran/pslq/scalar"
	"github.com/katalvlaran/pslq/terminate"
)

// Relation is the integer relation returned by Run: a set of non-zero
// integer coefficients paired with the original real values they multiply,
// plus the numeric evidence (residual) behind the certification.
type Relation[T any] = pslqcore.Relation[T]

// DefaultGamma returns the recommended default gamma (2/sqrt(3) + 0.01) for
// the working field T.
func DefaultGamma[T any](field scalar.Field[T]) T {
	two := field.FromInt64(2)
	three := field.FromInt64(3)
	hundredth := field.Quo(field.FromInt64(1), field.FromInt64(100))
	return field.Add(field.Quo(two, field.Sqrt(three)), hundredth)
}

// Run is the Orchestrator (C7): the single public entry point.
// It wires PrecisionGuard -> HBuilder -> IntegerLedger init -> Reducer
// (initial full pass) -> loop{ Iterator -> Terminator }, and returns either
// a certified Relation or (nil, nil) when the search exhausted maxNorm
// without finding one.
//
// gamma should normally be DefaultGamma(field); callers may supply a larger
// value via WithGamma-equivalent by passing it directly as the gamma
// parameter (there is no separate option: gamma is data the guard validates,
// not a programmer-literal knob — it varies with the working field and the
// caller's desired convergence rate, so it travels with x and maxNorm rather
// than living behind a fixed constant).
func Run[T any](field scalar.Field[T], x []T, maxNorm T, gamma T, opts ...Option) (*Relation[T], error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	tau, err := validateInputs(field, x, maxNorm, gamma)
	if err != nil {
		return nil, err
	}

	n := len(x)
	y, H, err := pslqcore.BuildH(field, pslqcore.Vector[T](x))
	if err != nil {
		return nil, fmt.Errorf("pslq.Run: %w", err)
	}

	ledger := pslqcore.NewLedger(n)
	ledger.MaxBits = cfg.maxLedgerBits

	if err := reduce.Full(field, H, y, ledger); err != nil {
		return nil, fmt.Errorf("pslq.Run: initial reduction: %w", err)
	}

	budget := iterationBudget(field, n, gamma, maxNorm, tau)
	emergencyBudget := budget * cfg.budgetMultiplier

	zeroThreshold := terminate.ZeroThresholdFromEpsilon(field, field.Epsilon())
	if cfg.zeroThresholdOver != nil {
		zeroThreshold = fromFloat64(field, *cfg.zeroThresholdOver)
	}

	cfg.logger.Debug().
		Int("n", n).
		Int("budget", budget).
		Int("emergency_budget", emergencyBudget).
		Msg("pslq: starting iteration")

	var (
		prevNormBound     T
		havePrevNormBound bool
	)

	for round := 0; ; round++ {
		if round >= emergencyBudget {
			return nil, fmt.Errorf("pslq.Run: exceeded %d rounds (budget %d x%d): %w",
				round, budget, cfg.budgetMultiplier, ErrIterationBudgetExceeded)
		}

		if err := pollCancel(cfg.ctx); err != nil {
			return nil, err
		}

		pivot, err := iterate.Round(field, H, y, ledger, gamma)
		if err != nil {
			return nil, fmt.Errorf("pslq.Run: round %d: %w", round, err)
		}

		result, err := terminate.Check(field, H, y, ledger, pslqcore.Vector[T](x), maxNorm, zeroThreshold, prevNormBound, havePrevNormBound)
		if err != nil {
			return nil, fmt.Errorf("pslq.Run: round %d: %w", round, err)
		}

		cfg.logger.Debug().
			Int("round", round).
			Int("pivot", pivot).
			Str("norm_bound", field.String(result.NormBound)).
			Bool("halt", result.Halt).
			Msg("pslq: round complete")

		if result.NormBoundDecreased {
			cfg.logger.Warn().Int("round", round).Msg("pslq: norm bound decreased")
		}

		prevNormBound, havePrevNormBound = result.NormBound, true

		if result.Relation != nil {
			// A relation whose Euclidean norm exceeds maxNorm lies outside the
			// search bound: report "no relation" rather than return it.
			normSq := new(big.Int)
			for _, term := range result.Relation.Terms {
				normSq.Add(normSq, new(big.Int).Mul(term.Coeff, term.Coeff))
			}
			if field.Cmp(field.FromBigInt(normSq), field.Mul(maxNorm, maxNorm)) > 0 {
				return nil, nil
			}
			if result.Relation.Residual.LargeResidual {
				cfg.logger.Warn().Int("round", round).Msg("pslq: relation has a large residual")
			}
			return result.Relation, nil
		}

		if result.Halt {
			return nil, nil
		}
	}
}

// pollCancel reports ErrCancelled, wrapping context.Cause, when ctx has been
// cancelled. Run polls once per round, before calling iterate.Round; pivot
// selection changes no state, so a cancelled round leaves y, H and the ledger
// exactly as the previous round left them.
func pollCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		cause := context.Cause(ctx)
		if cause == nil {
			cause = ctx.Err()
		}
		return fmt.Errorf("pslq: %w: %w", ErrCancelled, cause)
	default:
		return nil
	}
}

// iterationBudget computes the advertised upper bound on round count,
// ceil(C(n,2) * log(gamma^(n-1) * maxNorm) / log(tau)).
// This is a diagnostic/budget figure, not a correctness invariant, so it is
// computed in float64 regardless of the working field T via approxFloat64.
func iterationBudget[T any](field scalar.Field[T], n int, gamma, maxNorm, tau T) int {
	g := approxFloat64(field, gamma)
	mn := approxFloat64(field, maxNorm)
	tv := approxFloat64(field, tau)

	comb := float64(n*(n-1)) / 2
	inner := math.Pow(g, float64(n-1)) * mn
	raw := comb * math.Log(inner) / math.Log(tv)
	if raw < 1 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	return int(math.Ceil(raw))
}

// approxFloat64 converts a field value to a float64 approximation for
// diagnostic purposes only (iteration-budget sizing, progress fields); never
// used on a path that affects the certified result.
func approxFloat64[T any](field scalar.Field[T], v T) float64 {
	f, err := strconv.ParseFloat(field.String(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// fromFloat64 builds a T from a finite float64 via its exact rational value
// num/den (den a power of two), used only to materialise
// WithZeroThresholdExponent's override into the working field. A non-finite
// v yields zero.
func fromFloat64[T any](field scalar.Field[T], v float64) T {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return field.FromInt64(0)
	}
	return field.Quo(field.FromBigInt(r.Num()), field.FromBigInt(r.Denom()))
}
