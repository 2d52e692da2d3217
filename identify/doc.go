// Package identify augments a dictionary.Dictionary with derived entries —
// integer powers (via repeated multiplication, needing no transcendental
// support from the field) and, when the caller supplies one, a natural-log
// or exponential transform — and returns the enlarged dictionary; it does not
// call pslq.Run itself (Dictionary.Find does). Like dictionary, it is a thin
// external collaborator: it adds no
// numeric invariants of its own.
package identify
