// Package dictionary maps labelled real-valued constants to a symbol table,
// calls pslq.Run on the sorted values, and renders a certified relation as a
// symbolic equation string. It is an external collaborator, not part of the
// PSLQ core: it carries no numeric invariants of its own, sorts, delegates
// to pslq.Run exactly once, and formats.
package dictionary
