package identify

import (
	"fmt"

	"github.com/katalvlaran/pslq/dictionary"
	"github.com/katalvlaran/pslq/scalar"
)

// Deriver configures which derived entries Augment adds. Powers derives
// sym^p for each p via repeated field.Mul (no transcendental support
// needed); Log and Exp are optional caller-supplied transforms (e.g.
// math.Log/math.Exp for scalar.Float64Field) since scalar.Field carries no
// Log/Exp primitive of its own — the PSLQ core never needs one, so adding
// one to the interface would burden every implementation with a method
// only this optional helper uses.
type Deriver[T any] struct {
	Field  scalar.Field[T]
	Powers []int
	Log    func(T) T
	Exp    func(T) T
}

// Augment returns a new Dictionary containing every entry of d plus the
// derived entries Deriver specifies. d is left unmodified.
func Augment[T any](d *dictionary.Dictionary[T], dv Deriver[T]) *dictionary.Dictionary[T] {
	out := d
	for _, e := range d.Entries() {
		for _, p := range dv.Powers {
			if p < 2 {
				continue // power 1 is just the original entry, power 0 is a constant
			}
			out = out.Add(powerSymbol(e.Symbol, p), power(dv.Field, e.Value, p))
		}
		if dv.Log != nil {
			out = out.Add(fmt.Sprintf("ln(%s)", e.Symbol), dv.Log(e.Value))
		}
		if dv.Exp != nil {
			out = out.Add(fmt.Sprintf("exp(%s)", e.Symbol), dv.Exp(e.Value))
		}
	}
	return out
}

// power computes v^p for integer p >= 2 via repeated field.Mul.
func power[T any](field scalar.Field[T], v T, p int) T {
	result := v
	for i := 1; i < p; i++ {
		result = field.Mul(result, v)
	}
	return result
}

func powerSymbol(symbol string, p int) string {
	return fmt.Sprintf("%s^%d", symbol, p)
}
