package dictionary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pslq"
	"github.com/katalvlaran/pslq/scalar"
)

// Entry is one labelled constant: a symbol (rendered in equations) paired
// with its numeric value in the working field T.
type Entry[T any] struct {
	Symbol string
	Value  T
}

// Dictionary is an ordered, append-only set of labelled constants over a
// working field T. It never mutates an Entry's Value; Add appends a copy of
// the Dictionary with one more entry, mirroring the rest of the module's
// side-effect-free style.
type Dictionary[T any] struct {
	field   scalar.Field[T]
	entries []Entry[T]
}

// New returns an empty Dictionary over the given field.
func New[T any](field scalar.Field[T]) *Dictionary[T] {
	return &Dictionary[T]{field: field}
}

// Add returns a Dictionary with symbol/value appended. The receiver is left
// unmodified; the returned Dictionary is independent (its entries slice is
// never aliased with the receiver's backing array).
func (d *Dictionary[T]) Add(symbol string, value T) *Dictionary[T] {
	next := make([]Entry[T], len(d.entries), len(d.entries)+1)
	copy(next, d.entries)
	next = append(next, Entry[T]{Symbol: symbol, Value: d.field.Clone(value)})
	return &Dictionary[T]{field: d.field, entries: next}
}

// Len returns the number of entries.
func (d *Dictionary[T]) Len() int { return len(d.entries) }

// Entries returns a copy of the underlying entry slice, in insertion order
// (not necessarily sorted — Find sorts its own working copy).
func (d *Dictionary[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(d.entries))
	copy(out, d.entries)
	return out
}

// Equation is a certified relation rendered against this dictionary's
// symbols: Terms[i].Coeff * Terms[i].Symbol, summed, approximately zero.
type Equation[T any] struct {
	Terms    []EquationTerm[T]
	Relation pslq.Relation[T]
}

// EquationTerm pairs one non-zero relation coefficient with the symbol it
// multiplies.
type EquationTerm[T any] struct {
	Coeff  int64 // truncated for display; the exact *big.Int lives in Equation.Relation.Terms
	Symbol string
	Value  T
}

// String renders the equation as "c1*s1 + c2*s2 - c3*s3 ... = 0", using the
// coefficient's true sign for each term.
func (eq *Equation[T]) String() string {
	var b strings.Builder
	for i, t := range eq.Terms {
		switch {
		case i == 0:
			if t.Coeff < 0 {
				b.WriteString("-")
			}
		case t.Coeff < 0:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		abs := t.Coeff
		if abs < 0 {
			abs = -abs
		}
		fmt.Fprintf(&b, "%d*%s", abs, t.Symbol)
	}
	b.WriteString(" = 0")
	return b.String()
}

// Find sorts the dictionary's entries ascending by value (pslq.Run requires
// strictly increasing, strictly positive input) and calls
// pslq.Run. On a certified relation it renders an Equation; on "no relation
// within maxNorm" it returns a nil Equation and a nil error. The second result
// is always the symbols in the sorted order handed to pslq.Run.
//
// gamma should normally be pslq.DefaultGamma(field); Find forwards it to
// pslq.Run unchanged, along with any caller-supplied pslq.Option values.
func (d *Dictionary[T]) Find(maxNorm, gamma T, opts ...pslq.Option) (*Equation[T], []string, error) {
	sorted := d.Entries()
	sort.Slice(sorted, func(i, j int) bool {
		return d.field.Cmp(sorted[i].Value, sorted[j].Value) < 0
	})

	symbols := make([]string, len(sorted))
	values := make([]T, len(sorted))
	for i, e := range sorted {
		symbols[i] = e.Symbol
		values[i] = e.Value
	}

	rel, err := pslq.Run(d.field, values, maxNorm, gamma, opts...)
	if err != nil {
		return nil, symbols, fmt.Errorf("dictionary.Find: %w", err)
	}
	if rel == nil {
		return nil, symbols, nil
	}

	// rel.Terms follow the order of `values` but skip zero coefficients, so
	// each term's symbol is looked up by its value.
	eq := &Equation[T]{Relation: *rel}
	for _, term := range rel.Terms {
		sym := symbolForValue(d.field, symbols, values, term.Value)
		eq.Terms = append(eq.Terms, EquationTerm[T]{
			Coeff:  term.Coeff.Int64(),
			Symbol: sym,
			Value:  term.Value,
		})
	}

	return eq, symbols, nil
}

// symbolForValue finds the symbol matching a relation term's value by
// identity scan against the sorted working vectors Find built. Values are
// compared with Cmp (not pointer identity) since T may be a value type.
func symbolForValue[T any](field scalar.Field[T], symbols []string, values []T, v T) string {
	for i, val := range values {
		if field.Cmp(val, v) == 0 {
			return symbols[i]
		}
	}
	return "?"
}
