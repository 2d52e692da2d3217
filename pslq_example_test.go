package pslq_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pslq"
	"github.com/katalvlaran/pslq/scalar"
)

// ExampleRun finds the simplest possible integer relation: 3*1 - 1*3 = 0.
func ExampleRun() {
	field := scalar.NewFloat64Field()
	gamma := pslq.DefaultGamma(field)

	x := []float64{1, 3}
	rel, err := pslq.Run(field, x, 10, gamma)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	parts := make([]string, len(rel.Terms))
	for i, term := range rel.Terms {
		parts[i] = fmt.Sprintf("%s*%v", term.Coeff.String(), term.Value)
	}
	fmt.Println(strings.Join(parts, " + "))
	// Output: -3*1 + 1*3
}
