package scalar

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// DecimalField implements Field[*apd.Decimal] on top of an apd.Context.
//
// Precision is fixed at construction time (NewDecimalField) and every
// arithmetic method allocates and returns a fresh *apd.Decimal rounded under
// that context — callers never see a partially-rounded intermediate and
// never need to re-derive the context.
//
// Rounding mode: NewDecimalField sets the context's Rounding to
// apd.RoundHalfEven (banker's rounding). The only
// requirement on the tie-break rule is that it be applied consistently
// between the H-side and integer-side uses of a reduction coefficient t;
// RoundToBigInt and every arithmetic method here share the same
// *apd.Context, so they agree by construction.
type DecimalField struct {
	ctx *apd.Context
	eps *apd.Decimal
}

// NewDecimalField returns a DecimalField working at the given decimal
// precision (significant digits). precision must be >= 1.
func NewDecimalField(precision uint32) DecimalField {
	if precision == 0 {
		precision = 1
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven
	// eps = 10^-(precision-1): the gap between 1 and the next representable
	// value at this precision, i.e. this field's relative machine precision.
	eps := apd.New(1, -int32(precision-1))

	return DecimalField{ctx: ctx, eps: eps}
}

// Precision returns the number of significant decimal digits this field
// carries operations to.
func (f DecimalField) Precision() uint32 { return f.ctx.Precision }

func (f DecimalField) binary(x, y *apd.Decimal, op func(z, a, b *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := op(z, x, y); err != nil {
		// Arithmetic on finite Decimals under a valid Context does not fail;
		// a failure here means the caller fed in a non-finite operand, which
		// is a programmer error in the core (inputs are validated upstream).
		panic(fmt.Sprintf("scalar: decimal arithmetic error: %v", err))
	}
	return z
}

func (f DecimalField) Add(x, y *apd.Decimal) *apd.Decimal { return f.binary(x, y, f.ctx.Add) }
func (f DecimalField) Sub(x, y *apd.Decimal) *apd.Decimal { return f.binary(x, y, f.ctx.Sub) }
func (f DecimalField) Mul(x, y *apd.Decimal) *apd.Decimal { return f.binary(x, y, f.ctx.Mul) }
func (f DecimalField) Quo(x, y *apd.Decimal) *apd.Decimal { return f.binary(x, y, f.ctx.Quo) }

func (f DecimalField) Sqrt(x *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := f.ctx.Sqrt(z, x); err != nil {
		panic(fmt.Sprintf("scalar: decimal sqrt error: %v", err))
	}
	return z
}

func (f DecimalField) Abs(x *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := f.ctx.Abs(z, x); err != nil {
		panic(fmt.Sprintf("scalar: decimal abs error: %v", err))
	}
	return z
}

func (f DecimalField) Neg(x *apd.Decimal) *apd.Decimal {
	z := new(apd.Decimal)
	if _, err := f.ctx.Neg(z, x); err != nil {
		panic(fmt.Sprintf("scalar: decimal neg error: %v", err))
	}
	return z
}

func (f DecimalField) Sign(x *apd.Decimal) int { return x.Sign() }

func (f DecimalField) Cmp(x, y *apd.Decimal) int { return x.Cmp(y) }

func (f DecimalField) IsZero(x *apd.Decimal) bool { return x.IsZero() }

func (f DecimalField) FromInt64(v int64) *apd.Decimal { return apd.New(v, 0) }

func (f DecimalField) FromBigInt(v *big.Int) *apd.Decimal {
	return new(apd.Decimal).SetBigInt(v)
}

// RoundToBigInt rounds x to the nearest integer under the field's context
// rounding mode (Quantize to exponent 0) and returns the result exactly.
func (f DecimalField) RoundToBigInt(x *apd.Decimal) (*big.Int, error) {
	z := new(apd.Decimal)
	if _, err := f.ctx.Quantize(z, x, 0); err != nil {
		return nil, fmt.Errorf("scalar: round to integer: %w", err)
	}
	bi, ok := new(big.Int).SetString(z.Coeff.String(), 10)
	if !ok {
		return nil, fmt.Errorf("scalar: round to integer: could not parse coefficient %q", z.Coeff.String())
	}
	if z.Negative {
		bi.Neg(bi)
	}
	if z.Exponent != 0 {
		// Quantize to exponent 0 should always land here; guard against a
		// future apd behavior change rather than silently truncating.
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(z.Exponent)), nil)
		bi.Mul(bi, scale)
	}
	return bi, nil
}

func (f DecimalField) Epsilon() *apd.Decimal { return new(apd.Decimal).Set(f.eps) }

func (f DecimalField) Clone(x *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(x)
}

func (f DecimalField) String(x *apd.Decimal) string { return x.String() }
