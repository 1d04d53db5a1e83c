package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// ll1Key identifies a cell of an LL(1) parsing table.
type ll1Key struct {
	nonTerminal symbol.Symbol
	terminal    symbol.Symbol
}

// LL1Table maps (non-terminal, terminal) pairs to the productions applicable at that cell. A
// grammar is LL(1) iff every cell holds at most one production; Conflicts reports the cells
// that don't.
type LL1Table struct {
	cells map[ll1Key][]*Production
}

// Productions returns the productions in the cell for (nt, term), in the order they were
// added while scanning the grammar's productions.
func (t *LL1Table) Productions(nt, term symbol.Symbol) []*Production {
	return t.cells[ll1Key{nt, term}]
}

// Conflicts returns every cell holding more than one production, sorted by non-terminal then
// terminal name.
func (t *LL1Table) Conflicts() []*LL1Conflict {
	var cs []*LL1Conflict
	for k, prods := range t.cells {
		if len(prods) > 1 {
			cs = append(cs, &LL1Conflict{NonTerminal: k.nonTerminal, Terminal: k.terminal, Productions: prods})
		}
	}
	sortLL1Conflicts(cs)
	return cs
}

func (t *LL1Table) add(nt, term symbol.Symbol, p *Production) {
	key := ll1Key{nt, term}
	for _, existing := range t.cells[key] {
		if existing == p {
			return
		}
	}
	t.cells[key] = append(t.cells[key], p)
}

// ConstructLL1Table builds the LL(1) parsing table for g: for every production A -> α, A is
// recorded at (A, a) for every a in FIRST(α), and additionally at (A, b) for every b in
// FOLLOW(A) when α is nullable.
func ConstructLL1Table(g *Grammar) (*LL1Table, error) {
	if len(g.Productions()) == 0 || len(g.ProductionsFor(g.Start())) == 0 {
		return nil, ErrEmptyGrammar
	}

	t := &LL1Table{cells: map[ll1Key][]*Production{}}
	for _, p := range g.Productions() {
		terms, nullable := First(g, p.RHS()...)
		for _, a := range terms {
			t.add(p.LHS(), a, p)
		}
		if nullable {
			for _, b := range Follow(g, p.LHS()) {
				t.add(p.LHS(), b, p)
			}
		}
	}
	return t, nil
}
