package identify_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pslq/dictionary"
	"github.com/katalvlaran/pslq/identify"
	"github.com/katalvlaran/pslq/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAugment_PowersAndLog(t *testing.T) {
	field := scalar.NewFloat64Field()
	d := dictionary.New[float64](field).Add("x", 2.0)

	out := identify.Augment(d, identify.Deriver[float64]{
		Field:  field,
		Powers: []int{2, 3},
		Log:    math.Log,
	})

	require.Equal(t, 4, out.Len())
	bySymbol := map[string]float64{}
	for _, e := range out.Entries() {
		bySymbol[e.Symbol] = e.Value
	}
	assert.InDelta(t, 4.0, bySymbol["x^2"], 1e-12)
	assert.InDelta(t, 8.0, bySymbol["x^3"], 1e-12)
	assert.InDelta(t, math.Log(2), bySymbol["ln(x)"], 1e-12)
}

func TestAugment_LeavesOriginalUnmodified(t *testing.T) {
	field := scalar.NewFloat64Field()
	d := dictionary.New[float64](field).Add("x", 2.0)

	_ = identify.Augment(d, identify.Deriver[float64]{Field: field, Powers: []int{2}})

	assert.Equal(t, 1, d.Len())
}
