// Package pslq implements the PSLQ integer-relation algorithm (Ferguson,
// Bailey & Arno): given a vector of high-precision reals x, it finds a
// non-zero integer vector r with r.x ~ 0 to within working precision, or
// certifies that no such relation exists below a caller-chosen Euclidean
// norm bound.
//
// Run is the single public entry point. It is generic over the working real
// type through scalar.Field[T]; use scalar.NewFloat64Field() for double
// precision or scalar.NewDecimalField(precision) (github.com/cockroachdb/apd/v3)
// for the arbitrary decimal precision PSLQ genuinely needs once a relation's
// coefficients grow large.
//
// Under the hood, Run wires together:
//
//	pslqcore  — the data PSLQ mutates (y, H, the integer ledger) and the
//	            construction step that derives y, H from x.
//	reduce    — Hermite size reduction.
//	iterate   — one PSLQ round: pivot selection, swap, corner removal.
//	terminate — relation extraction, norm-bound tracking, halt decision.
//
// The core never writes to stdout/stderr; all diagnostics are returned or,
// for opt-in round-by-round tracing, written to a caller-supplied
// zerolog.Logger (see WithLogger). Its default is zerolog.Nop(), so a
// library caller gets silence by default and does not depend on
// remembering to disable anything.
//
//	go get github.com/katalvlaran/pslq
package pslq
