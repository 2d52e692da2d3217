package pslq

import (
	"context"

	"github.com/rs/zerolog"
)

// settings holds every caller-overridable knob of Run, defaulted by
// defaultSettings and mutated by Option values, mirroring dijkstra.Options /
// matrix's functional-option pattern.
type settings struct {
	ctx               context.Context
	logger            zerolog.Logger
	budgetMultiplier  int
	maxLedgerBits     int
	zeroThresholdOver *float64 // nil => derive from field.Epsilon(), see terminate.ZeroThresholdFromEpsilon
}

// Option configures a Run invocation.
type Option func(*settings)

// defaultSettings returns the zero-value-safe defaults every Run call starts
// from before applying opts.
func defaultSettings() settings {
	return settings{
		ctx:              context.Background(),
		logger:           zerolog.Nop(),
		budgetMultiplier: 10,
		maxLedgerBits:    0, // unbounded
	}
}

// WithContext supplies a context.Context polled once per round, before the
// round's pivot selection (which changes no state). A cancelled ctx surfaces as
// ErrCancelled wrapping context.Cause(ctx).
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx == nil {
			panic("pslq: WithContext called with a nil context")
		}
		s.ctx = ctx
	}
}

// WithLogger attaches a zerolog.Logger that receives a debug-level start
// event, one debug-level event per round (round, pivot index, norm bound,
// halt flag), and warn-level events for a decreased norm bound or a relation
// with a large residual. The default is
// zerolog.Nop(): the core is silent unless a caller opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithBudgetMultiplier overrides the emergency-termination multiplier
// applied to the advertised iteration-count budget. Default
// is 10. Must be positive.
func WithBudgetMultiplier(multiplier int) Option {
	if multiplier <= 0 {
		panic("pslq: WithBudgetMultiplier requires a positive multiplier")
	}
	return func(s *settings) {
		s.budgetMultiplier = multiplier
	}
}

// WithMaxLedgerBits caps the bit-length of any single ledger entry, turning
// the otherwise-unreachable IntegerOverflow sentinel into a reachable,
// testable failure mode for callers who want to bound memory on adversarial
// inputs. Default 0 means unbounded.
func WithMaxLedgerBits(bits int) Option {
	if bits < 0 {
		panic("pslq: WithMaxLedgerBits requires a non-negative bit count")
	}
	return func(s *settings) {
		s.maxLedgerBits = bits
	}
}

// WithZeroThresholdExponent overrides the default ε^(15/16) zero threshold
// used by the Terminator's relation test, expressed directly as the
// threshold value rather than the exponent (the field already knows its own
// ε; passing the finished threshold avoids re-deriving eps^p per field).
// Intended for tests that want to force early/late relation detection.
func WithZeroThresholdExponent(threshold float64) Option {
	return func(s *settings) {
		s.zeroThresholdOver = &threshold
	}
}
