// Package iterate implements one PSLQ round (component C5):
// pivot selection, the row swap it drives, 2x2 corner removal, and the
// partial re-reduction that restores the Hermite invariant afterward.
//
// Round is called once per outer loop iteration by the pslq root package,
// sandwiched between the previous round's terminate.Check and the next one.
package iterate
