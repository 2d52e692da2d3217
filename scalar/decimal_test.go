package scalar_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/katalvlaran/pslq/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestDecimalField_Arithmetic(t *testing.T) {
	f := scalar.NewDecimalField(40)

	sum := f.Add(dec(t, "2"), dec(t, "3"))
	assert.Equal(t, "5", sum.String())

	diff := f.Sub(dec(t, "2"), dec(t, "3"))
	assert.Equal(t, "-1", diff.String())

	prod := f.Mul(dec(t, "2"), dec(t, "3"))
	assert.Equal(t, "6", prod.String())

	quo := f.Quo(dec(t, "1"), dec(t, "4"))
	assert.Equal(t, "0.25", quo.String())

	sq := f.Sqrt(dec(t, "4"))
	assert.Equal(t, "2", sq.String())

	assert.Equal(t, "3", f.Abs(dec(t, "-3")).String())
	assert.Equal(t, "-3", f.Neg(dec(t, "3")).String())
}

func TestDecimalField_CmpSignZero(t *testing.T) {
	f := scalar.NewDecimalField(30)
	assert.Equal(t, -1, f.Cmp(dec(t, "1"), dec(t, "2")))
	assert.Equal(t, 0, f.Cmp(dec(t, "2"), dec(t, "2")))
	assert.Equal(t, 1, f.Sign(dec(t, "5")))
	assert.True(t, f.IsZero(dec(t, "0")))
}

func TestDecimalField_RoundToBigInt(t *testing.T) {
	f := scalar.NewDecimalField(30)

	for _, tc := range []struct {
		in   string
		want string
	}{
		{"2.4", "2"},
		{"2.5", "2"}, // ties-to-even
		{"3.5", "4"}, // ties-to-even
		{"-2.5", "-2"},
		{"16", "16"},
	} {
		got, err := f.RoundToBigInt(dec(t, tc.in))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "round(%s)", tc.in)
	}
}

func TestDecimalField_EpsilonScalesWithPrecision(t *testing.T) {
	f40 := scalar.NewDecimalField(40)
	f10 := scalar.NewDecimalField(10)
	// Higher precision ⇒ smaller epsilon.
	assert.Equal(t, -1, f40.Cmp(f40.Epsilon(), f10.Epsilon()))
}

func TestDecimalField_FromBigIntRoundTrip(t *testing.T) {
	f := scalar.NewDecimalField(20)
	bi, err := f.RoundToBigInt(dec(t, "123456789"))
	require.NoError(t, err)
	back := f.FromBigInt(bi)
	assert.Equal(t, "123456789", back.String())
}
