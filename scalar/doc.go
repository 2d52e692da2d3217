// Package scalar abstracts the working real-number type the PSLQ core is
// generic over.
//
// PSLQ needs very little from its scalar type: the four arithmetic
// operations, sqrt, abs, sign/compare, a relative-precision constant (ε), and
// an exact conversion of a rounded value to an arbitrary-width integer. No
// transcendentals are required.
//
// Two backends are provided:
//
//   - Float64Field — plain float64/math, ε = 2⁻⁵². Fast, double precision
//     only; good for property tests and callers who don't need more.
//   - DecimalField — github.com/cockroachdb/apd/v3, arbitrary decimal
//     precision. This is the backend that lets relations with large
//     coefficients, or inputs needing many more than 15-16 significant
//     digits, still be certified rather than lost to rounding.
//
// A Field[T] value never mutates the T values it is handed; every operation
// returns a fresh T. This keeps pslqcore's row/column bookkeeping free of
// aliasing bugs when T is a pointer type (*apd.Decimal).
package scalar
