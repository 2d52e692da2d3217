package reduce_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pslq/pslqcore"
	"github.com/katalvlaran/pslq/reduce"
	"github.com/katalvlaran/pslq/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull_EnforcesHermiteBound(t *testing.T) {
	f := scalar.NewFloat64Field()
	x := pslqcore.Vector[float64]{1, 2, 3, 5, 8, 13}
	y, H, err := pslqcore.BuildH[float64](f, x)
	require.NoError(t, err)

	ledger := pslqcore.NewLedger(len(x))
	require.NoError(t, reduce.Full[float64](f, H, y, ledger))

	for i := 0; i < H.Rows(); i++ {
		for j := 0; j < i && j < H.Cols(); j++ {
			assert.LessOrEqual(t, math.Abs(H.At(i, j)), 0.5*math.Abs(H.At(j, j))+1e-9,
				"H[%d][%d] must satisfy the Hermite bound", i, j)
		}
	}
}

func TestFull_PreservesLedgerIdentity(t *testing.T) {
	f := scalar.NewFloat64Field()
	x := pslqcore.Vector[float64]{1, 2, 3, 5, 8}
	y, H, err := pslqcore.BuildH[float64](f, x)
	require.NoError(t, err)

	ledger := pslqcore.NewLedger(len(x))
	require.NoError(t, reduce.Full[float64](f, H, y, ledger))
	assert.NoError(t, ledger.VerifyIdentity())
}

func TestFull_PreservesYDotHZero(t *testing.T) {
	f := scalar.NewFloat64Field()
	x := pslqcore.Vector[float64]{1, 2, 3, 5, 8}
	y, H, err := pslqcore.BuildH[float64](f, x)
	require.NoError(t, err)

	ledger := pslqcore.NewLedger(len(x))
	require.NoError(t, reduce.Full[float64](f, H, y, ledger))

	for j := 0; j < H.Cols(); j++ {
		dot := 0.0
		for i := range y {
			dot += y[i] * H.At(i, j)
		}
		assert.InDelta(t, 0.0, dot, 1e-7, "column %d", j)
	}
}

func TestFull_PreservesLowerTrapezoidal(t *testing.T) {
	f := scalar.NewFloat64Field()
	x := pslqcore.Vector[float64]{1, 2, 3, 5, 8}
	y, H, err := pslqcore.BuildH[float64](f, x)
	require.NoError(t, err)

	ledger := pslqcore.NewLedger(len(x))
	require.NoError(t, reduce.Full[float64](f, H, y, ledger))

	for i := 0; i < H.Rows(); i++ {
		for j := i + 1; j < H.Cols(); j++ {
			assert.Equal(t, 0.0, H.At(i, j))
		}
	}
}
