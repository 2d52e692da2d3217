package pslqcore

import (
	"fmt"
	"math/big"
)

// Ledger maintains the two n x n integer matrices A and B with the running
// invariant A·B = I. Columns of B are candidate integer
// relations: column j satisfies B[:,j]·x = 0 once y_j becomes (near-)zero.
//
// Entries use math/big.Int (arbitrary width); MaxBits optionally caps the
// bit-length of any single entry so pathological inputs fail fast with
// ErrIntegerOverflow instead of growing the ledger without bound. The
// default, MaxBits == 0, is unbounded.
type Ledger struct {
	n       int
	A, B    [][]*big.Int
	MaxBits int
}

// NewLedger allocates an n x n Ledger initialised to A = B = I.
func NewLedger(n int) *Ledger {
	l := &Ledger{n: n, A: newIdentity(n), B: newIdentity(n)}
	return l
}

func newIdentity(n int) [][]*big.Int {
	m := make([][]*big.Int, n)
	for i := range m {
		m[i] = make([]*big.Int, n)
		for j := range m[i] {
			if i == j {
				m[i][j] = big.NewInt(1)
			} else {
				m[i][j] = big.NewInt(0)
			}
		}
	}
	return m
}

// N returns the ledger dimension.
func (l *Ledger) N() int { return l.n }

// ReduceRow applies the Hermite reduction update to the ledger:
//
//	A[i,:] -= t * A[j,:]
//	B[:,j] += t * B[:,i]
//
// t must be the exact same *big.Int value used to update H and y in the
// same reduction step — ReduceRow never recomputes t itself.
func (l *Ledger) ReduceRow(i, j int, t *big.Int) error {
	if t.Sign() == 0 {
		return nil // t = 0 is a no-op, skip.
	}
	if err := l.checkIndex(i); err != nil {
		return fmt.Errorf("Ledger.ReduceRow: %w", err)
	}
	if err := l.checkIndex(j); err != nil {
		return fmt.Errorf("Ledger.ReduceRow: %w", err)
	}

	scratch := new(big.Int)
	for k := 0; k < l.n; k++ {
		// A[i,k] -= t * A[j,k]
		l.A[i][k].Sub(l.A[i][k], scratch.Mul(t, l.A[j][k]))
		if err := l.checkBits(l.A[i][k]); err != nil {
			return fmt.Errorf("Ledger.ReduceRow: A[%d][%d]: %w", i, k, err)
		}
		// B[k,j] += t * B[k,i]
		l.B[k][j].Add(l.B[k][j], scratch.Mul(t, l.B[k][i]))
		if err := l.checkBits(l.B[k][j]); err != nil {
			return fmt.Errorf("Ledger.ReduceRow: B[%d][%d]: %w", k, j, err)
		}
	}

	return nil
}

// SwapRows exchanges rows m and m+1 of A, and the corresponding columns m
// and m+1 of B, preserving A·B = I.
func (l *Ledger) SwapRows(m int) error {
	if err := l.checkIndex(m); err != nil {
		return fmt.Errorf("Ledger.SwapRows: %w", err)
	}
	if err := l.checkIndex(m + 1); err != nil {
		return fmt.Errorf("Ledger.SwapRows: %w", err)
	}

	l.A[m], l.A[m+1] = l.A[m+1], l.A[m]
	for k := 0; k < l.n; k++ {
		l.B[k][m], l.B[k][m+1] = l.B[k][m+1], l.B[k][m]
	}

	return nil
}

// Column returns a copy of column j of B — the candidate relation once y_j
// is (near-)zero.
func (l *Ledger) Column(j int) []*big.Int {
	col := make([]*big.Int, l.n)
	for i := 0; i < l.n; i++ {
		col[i] = new(big.Int).Set(l.B[i][j])
	}
	return col
}

// VerifyIdentity checks A·B == I exactly, for tests exercising this
// core structural invariant directly.
func (l *Ledger) VerifyIdentity() error {
	prod := make([][]*big.Int, l.n)
	acc := new(big.Int)
	term := new(big.Int)
	for i := 0; i < l.n; i++ {
		prod[i] = make([]*big.Int, l.n)
		for j := 0; j < l.n; j++ {
			acc.SetInt64(0)
			for k := 0; k < l.n; k++ {
				acc.Add(acc, term.Mul(l.A[i][k], l.B[k][j]))
			}
			prod[i][j] = new(big.Int).Set(acc)
		}
	}
	for i := 0; i < l.n; i++ {
		for j := 0; j < l.n; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			if prod[i][j].Cmp(big.NewInt(want)) != 0 {
				return fmt.Errorf("Ledger.VerifyIdentity: (A.B)[%d][%d] = %s, want %d: %w",
					i, j, prod[i][j].String(), want, ErrInternalInvariantViolated)
			}
		}
	}
	return nil
}

func (l *Ledger) checkIndex(i int) error {
	if i < 0 || i >= l.n {
		return fmt.Errorf("index %d out of [0,%d): %w", i, l.n, ErrIndexOutOfRange)
	}
	return nil
}

func (l *Ledger) checkBits(v *big.Int) error {
	if l.MaxBits <= 0 {
		return nil
	}
	if v.BitLen() > l.MaxBits {
		return fmt.Errorf("entry reached %d bits (cap %d): %w", v.BitLen(), l.MaxBits, ErrIntegerOverflow)
	}
	return nil
}
