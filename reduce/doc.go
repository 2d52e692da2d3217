// Package reduce implements Hermite size reduction (PSLQ component C4):
// driving |H_{i,j}| <= 1/2 * |H_{j,j}| for every j < i, the invariant that
// bounds H's condition number and lets gamma control convergence.
//
// Full runs the initial reduction pass over the whole matrix; Partial runs
// the narrower re-reduction iterate.Round needs after a pivot swap and
// corner removal. Both share reduceStep, which is the single call site that
// computes a reduction coefficient t — the same t is then applied to H, y
// and the integer ledger in lockstep, so the two never drift apart.
package reduce
