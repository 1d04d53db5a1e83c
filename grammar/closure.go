package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// closure computes the LR(1) closure of items under g's productions: repeatedly, for every
// item [A -> α · Bβ, a] in the set with B a non-terminal, and every production B -> γ, add
// [B -> · γ, b] for every b in FIRST(βa). fs must already hold g's FIRST sets; callers share
// one firstSets across an entire canonical-collection construction rather than recomputing it
// per state.
func closure(g *Grammar, fs *firstSets, kernel *ItemSet) *ItemSet {
	result := newItemSet()
	var queue []Item
	for _, it := range kernel.Items() {
		result.add(it)
		queue = append(queue, it)
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		dotSym, ok := it.DotSymbol()
		if !ok || dotSym.IsTerminal() {
			continue
		}

		rhs := it.prod.rhs
		beta := rhs[it.dot+1:]
		seq := make([]symbol.Symbol, 0, len(beta)+1)
		seq = append(seq, beta...)
		seq = append(seq, it.lookahead)
		entry := fs.sequence(seq)

		for _, b := range entry.terms.Slice() {
			for _, p := range g.ProductionsFor(dotSym) {
				newIt := newItem(p, 0, b)
				if result.add(newIt) {
					queue = append(queue, newIt)
				}
			}
		}
	}
	return result
}

// gotoSet advances every item of items whose dot symbol is x, then closes the result. It
// returns an empty set if no item of items has x immediately after its dot.
func gotoSet(g *Grammar, fs *firstSets, items *ItemSet, x symbol.Symbol) *ItemSet {
	moved := newItemSet()
	for _, it := range items.Items() {
		dotSym, ok := it.DotSymbol()
		if !ok || dotSym != x {
			continue
		}
		moved.add(it.advance())
	}
	if moved.Len() == 0 {
		return moved
	}
	return closure(g, fs, moved)
}

// orderedSymbols returns every terminal used anywhere in g's productions, followed by every
// non-terminal, each in first-occurrence order scanning productions in insertion order, left
// to right within each production. Canonical-collection construction drives GOTO transitions
// in this order so that the resulting state and transition numbering is deterministic.
func orderedSymbols(g *Grammar) []symbol.Symbol {
	var terms, nonTerms []symbol.Symbol
	seen := map[symbol.Symbol]bool{}
	visit := func(s symbol.Symbol) {
		if seen[s] {
			return
		}
		seen[s] = true
		if s.IsTerminal() {
			terms = append(terms, s)
		} else {
			nonTerms = append(nonTerms, s)
		}
	}
	for _, p := range g.Productions() {
		visit(p.LHS())
		for _, s := range p.RHS() {
			visit(s)
		}
	}
	return append(terms, nonTerms...)
}
