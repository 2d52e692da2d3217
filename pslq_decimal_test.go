package pslq_test

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/pslq"
	"github.com/katalvlaran/pslq/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arctanSeriesDecimal computes arctan(x) via its Maclaurin series,
// x - x^3/3 + x^5/5 - ..., carried to `terms` terms. Intended for |x| << 1,
// where the series converges fast enough for the term count below to reach
// the field's working precision.
func arctanSeriesDecimal(field scalar.DecimalField, x *apd.Decimal, terms int) *apd.Decimal {
	xSquared := field.Mul(x, x)
	sum := field.Clone(x)
	power := field.Clone(x)
	for k := 1; k < terms; k++ {
		power = field.Mul(power, xSquared)
		denom := field.FromInt64(int64(2*k + 1))
		contrib := field.Quo(power, denom)
		if k%2 == 1 {
			sum = field.Sub(sum, contrib)
		} else {
			sum = field.Add(sum, contrib)
		}
	}
	return sum
}

// coeffForValue returns the relation coefficient for the term matching v, or
// nil if v's dimension dropped out of the certified relation entirely (a
// legitimate outcome when its true coefficient is zero).
func coeffForValue(field scalar.DecimalField, rel *pslq.Relation[*apd.Decimal], v *apd.Decimal) *big.Int {
	for _, term := range rel.Terms {
		if field.Cmp(term.Value, v) == 0 {
			return term.Coeff
		}
	}
	return nil
}

// TestRun_DecimalMachinFormulaRelation drives pslq.Run at 80 decimal digits
// of precision over pi, arctan(1/5), arctan(1/239) and the constant 1,
// exercising Machin's formula pi = 16*arctan(1/5) - 4*arctan(1/239).
func TestRun_DecimalMachinFormulaRelation(t *testing.T) {
	field := scalar.NewDecimalField(80)
	gamma := pslq.DefaultGamma(field)

	fifth := field.Quo(field.FromInt64(1), field.FromInt64(5))
	twoThirtyNinth := field.Quo(field.FromInt64(1), field.FromInt64(239))
	a5 := arctanSeriesDecimal(field, fifth, 60)
	a239 := arctanSeriesDecimal(field, twoThirtyNinth, 20)
	one := field.FromInt64(1)
	pi := field.Sub(field.Mul(field.FromInt64(16), a5), field.Mul(field.FromInt64(4), a239))

	// Ascending: arctan(1/239) < arctan(1/5) < 1 < pi.
	x := []*apd.Decimal{a239, a5, one, pi}
	maxNorm := field.FromInt64(1000)

	rel, err := pslq.Run(field, x, maxNorm, gamma)
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.False(t, rel.Residual.LargeResidual)

	piCoeff := coeffForValue(field, rel, pi)
	require.NotNil(t, piCoeff)
	assert.Equal(t, int64(1), new(big.Int).Abs(piCoeff).Int64())

	a5Coeff := coeffForValue(field, rel, a5)
	require.NotNil(t, a5Coeff)
	assert.Equal(t, int64(16), new(big.Int).Abs(a5Coeff).Int64())

	a239Coeff := coeffForValue(field, rel, a239)
	require.NotNil(t, a239Coeff)
	assert.Equal(t, int64(4), new(big.Int).Abs(a239Coeff).Int64())
}

// TestRun_DecimalGoldenRatioPowersRelation drives pslq.Run at 70 decimal
// digits of precision over 1, phi, phi^3, exercising the identity
// phi^3 = 2*phi + 1. phi^2 is left out of the input: with it, phi^3 = phi^2 +
// phi is a shorter relation and is the one found first.
func TestRun_DecimalGoldenRatioPowersRelation(t *testing.T) {
	field := scalar.NewDecimalField(70)
	gamma := pslq.DefaultGamma(field)

	one := field.FromInt64(1)
	two := field.FromInt64(2)
	five := field.FromInt64(5)
	phi := field.Quo(field.Add(one, field.Sqrt(five)), two)
	phi2 := field.Mul(phi, phi)
	phi3 := field.Mul(phi2, phi)

	x := []*apd.Decimal{one, phi, phi3}
	maxNorm := field.FromInt64(100)

	rel, err := pslq.Run(field, x, maxNorm, gamma)
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.False(t, rel.Residual.LargeResidual)

	phi3Coeff := coeffForValue(field, rel, phi3)
	require.NotNil(t, phi3Coeff)
	assert.Equal(t, int64(1), new(big.Int).Abs(phi3Coeff).Int64())

	phiCoeff := coeffForValue(field, rel, phi)
	require.NotNil(t, phiCoeff)
	assert.Equal(t, int64(2), new(big.Int).Abs(phiCoeff).Int64())
}

// TestRun_DecimalRationalRatioBoundary covers the n=2 boundary case: two
// values in an exact rational ratio (7/3), at decimal precision.
func TestRun_DecimalRationalRatioBoundary(t *testing.T) {
	field := scalar.NewDecimalField(50)
	gamma := pslq.DefaultGamma(field)

	a := field.FromInt64(3)
	b := field.FromInt64(7)
	x := []*apd.Decimal{a, b}

	rel, err := pslq.Run(field, x, field.FromInt64(100), gamma)
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.False(t, rel.Residual.LargeResidual)
	require.Len(t, rel.Terms, 2)

	aCoeff := coeffForValue(field, rel, a)
	bCoeff := coeffForValue(field, rel, b)
	require.NotNil(t, aCoeff)
	require.NotNil(t, bCoeff)
	assert.Equal(t, int64(7), new(big.Int).Abs(aCoeff).Int64())
	assert.Equal(t, int64(3), new(big.Int).Abs(bCoeff).Int64())
}
