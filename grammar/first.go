package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// firstEntry accumulates FIRST(A) for a single non-terminal A: a set of terminals, plus a
// separate nullable bit standing in for "ε ∈ FIRST(A)". ε is deliberately kept out of the
// terminal set itself: it is a sentinel of FIRST sets, never a Symbol a caller could confuse
// with a real terminal.
type firstEntry struct {
	terms    *TerminalSet
	nullable bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{terms: newTerminalSet()}
}

func (e *firstEntry) addEpsilon() bool {
	if e.nullable {
		return false
	}
	e.nullable = true
	return true
}

// firstSets is the least fixed point of FIRST over every non-terminal of a grammar, computed
// once and then reused by Follow and the LR(1) closure, both of which need FIRST of arbitrary
// symbol sequences rather than just single non-terminals.
type firstSets struct {
	g   *Grammar
	set map[symbol.Symbol]*firstEntry
}

func computeFirstSets(g *Grammar) *firstSets {
	fs := &firstSets{g: g, set: map[symbol.Symbol]*firstEntry{}}
	for _, p := range g.Productions() {
		if _, ok := fs.set[p.LHS()]; !ok {
			fs.set[p.LHS()] = newFirstEntry()
		}
	}

	for {
		changed := false
		for _, p := range g.Productions() {
			if fs.applyProduction(fs.set[p.LHS()], p) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return fs
}

// applyProduction folds FIRST(p.RHS()) into acc, the entry for p.LHS(), and reports whether
// acc changed.
func (fs *firstSets) applyProduction(acc *firstEntry, p *Production) bool {
	if p.IsEmpty() {
		return acc.addEpsilon()
	}

	changed := false
	for _, sym := range p.RHS() {
		if sym.IsTerminal() {
			if acc.terms.Add(sym) {
				changed = true
			}
			return changed
		}

		e, ok := fs.set[sym]
		if !ok {
			fs.g.reportUndefined(sym)
			return changed
		}
		if acc.terms.union(e.terms) {
			changed = true
		}
		if !e.nullable {
			return changed
		}
	}
	if acc.addEpsilon() {
		changed = true
	}
	return changed
}

// sequence computes FIRST(seq), the sequence being treated as a single right-hand side. It
// is the workhorse behind both the single-symbol First wrapper and the LR(1) closure, which
// needs FIRST of a production's remaining symbols followed by a lookahead terminal.
func (fs *firstSets) sequence(seq []symbol.Symbol) *firstEntry {
	acc := newFirstEntry()
	if len(seq) == 0 {
		acc.addEpsilon()
		return acc
	}

	for _, sym := range seq {
		if sym.IsTerminal() {
			acc.terms.Add(sym)
			return acc
		}

		e, ok := fs.set[sym]
		if !ok {
			fs.g.reportUndefined(sym)
			return acc
		}
		acc.terms.union(e.terms)
		if !e.nullable {
			return acc
		}
	}
	acc.addEpsilon()
	return acc
}

// First returns FIRST(seq): the terminals that can begin some derivation of seq, and whether
// seq can derive the empty string. Passing a single symbol computes FIRST of that symbol
// alone; passing no symbols returns ({}, true), the FIRST set of the empty sequence.
func First(g *Grammar, seq ...symbol.Symbol) (terms []symbol.Symbol, nullable bool) {
	fs := computeFirstSets(g)
	e := fs.sequence(seq)
	return e.terms.Slice(), e.nullable
}

// Nullable reports whether the non-terminal nt can derive the empty string. It is equivalent
// to checking the second return value of First(g, nt).
func Nullable(g *Grammar, nt symbol.Symbol) bool {
	fs := computeFirstSets(g)
	e, ok := fs.set[nt]
	return ok && e.nullable
}
