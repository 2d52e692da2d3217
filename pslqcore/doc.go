// Package pslqcore holds the data PSLQ mutates in lockstep — the normalised
// vector y, the lower-trapezoidal matrix H, and the integer ledger (A, B) —
// plus the construction step (HBuilder) that derives y and H from the
// caller's input vector.
//
// pslqcore is deliberately low-level: it knows nothing about pivoting,
// Hermite reduction, or termination (those live in reduce/, iterate/ and
// terminate/ respectively). It exists so those three packages, and the
// pslq root package, share one definition of Vector, Matrix, Ledger and
// Relation instead of each rolling their own.
package pslqcore
