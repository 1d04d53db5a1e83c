package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// followSets is the least fixed point of FOLLOW over every non-terminal of a grammar. Unlike
// FIRST, FOLLOW needs no separate nullable bit: $ is an ordinary Terminal (symbol.EOF), not a
// sentinel, so it lives directly in the terminal set like any other member.
type followSets struct {
	g   *Grammar
	fs  *firstSets
	set map[symbol.Symbol]*TerminalSet
}

func computeFollowSets(g *Grammar) *followSets {
	fs := computeFirstSets(g)
	flw := &followSets{g: g, fs: fs, set: map[symbol.Symbol]*TerminalSet{}}

	for _, p := range g.Productions() {
		if _, ok := flw.set[p.LHS()]; !ok {
			flw.set[p.LHS()] = newTerminalSet()
		}
	}
	if _, ok := flw.set[g.Start()]; !ok {
		flw.set[g.Start()] = newTerminalSet()
	}
	flw.set[g.Start()].Add(symbol.EOF)

	for {
		changed := false
		for _, p := range g.Productions() {
			rhs := p.RHS()
			for i, sym := range rhs {
				if !sym.IsNonTerminal() {
					continue
				}
				e, ok := flw.set[sym]
				if !ok {
					flw.g.reportUndefined(sym)
					continue
				}

				tail := rhs[i+1:]
				tailFirst := flw.fs.sequence(tail)
				if e.union(tailFirst.terms) {
					changed = true
				}
				if tailFirst.nullable {
					if e.union(flw.set[p.LHS()]) {
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return flw
}

// Follow returns FOLLOW(nt): the terminals (including $, when nt can appear at the end of a
// derivation from the start symbol) that can immediately follow nt in some derivation. It
// returns nil for a terminal or for a non-terminal, other than the start symbol, that never
// occurs as a left-hand side; the start symbol's FOLLOW set always contains $.
func Follow(g *Grammar, nt symbol.Symbol) []symbol.Symbol {
	flw := computeFollowSets(g)
	e, ok := flw.set[nt]
	if !ok {
		return nil
	}
	return e.Slice()
}
