package scalar

import (
	"math"
	"math/big"
	"strconv"
)

// Epsilon64 is the relative machine precision of float64 (2⁻⁵²), the IEEE-754
// double-precision ULP at 1.0.
const Epsilon64 = 2.220446049250313e-16

// Float64Field implements Field[float64]. It has no internal state: every
// method is a thin wrapper over math/float64 arithmetic.
type Float64Field struct{}

// NewFloat64Field returns the float64 backend. There is nothing to configure.
func NewFloat64Field() Float64Field { return Float64Field{} }

func (Float64Field) Add(x, y float64) float64 { return x + y }
func (Float64Field) Sub(x, y float64) float64 { return x - y }
func (Float64Field) Mul(x, y float64) float64 { return x * y }
func (Float64Field) Quo(x, y float64) float64 { return x / y }
func (Float64Field) Sqrt(x float64) float64   { return math.Sqrt(x) }
func (Float64Field) Abs(x float64) float64    { return math.Abs(x) }
func (Float64Field) Neg(x float64) float64    { return -x }

func (Float64Field) Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func (Float64Field) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (Float64Field) IsZero(x float64) bool { return x == 0 }

func (Float64Field) FromInt64(v int64) float64 { return float64(v) }

func (Float64Field) FromBigInt(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// RoundToBigInt rounds to nearest, ties away from zero (math.Round's
// convention), then converts exactly via big.Float — correct even for
// magnitudes beyond int64 range.
func (Float64Field) RoundToBigInt(x float64) (*big.Int, error) {
	r := math.Round(x)
	bi, _ := new(big.Float).SetFloat64(r).Int(nil)
	return bi, nil
}

func (Float64Field) Epsilon() float64 { return Epsilon64 }

func (Float64Field) Clone(x float64) float64 { return x }

func (Float64Field) String(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
