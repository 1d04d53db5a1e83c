package grammar

import (
	"fmt"

	"github.com/Kienyew/syntax-analysis/symbol"
)

// Grammar is an ordered collection of productions over a vocabulary of terminals and
// non-terminals, together with a designated start symbol. It is built incrementally via
// AddProduction and is otherwise immutable; analyses (First, Follow, the LL(1)/LR(1)/LALR(1)
// builders) are free functions over *Grammar rather than methods, mirroring how the table
// builders below treat a Grammar as a read-only value once construction is done.
type Grammar struct {
	start    symbol.Symbol
	prods    *productionSet
	warnings []error
	reported map[string]bool
}

// New returns an empty grammar with the given start symbol. start need not already be the
// left-hand side of any production; AddProduction can be called in any order.
func New(start symbol.Symbol) *Grammar {
	return &Grammar{
		start:    start,
		prods:    newProductionSet(),
		reported: map[string]bool{},
	}
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() symbol.Symbol { return g.start }

// AddProduction appends lhs -> rhs. It is idempotent: adding a structurally identical
// production twice returns the original production both times. No validation is performed on
// rhs other than requiring lhs to be a non-terminal; symbols that never appear as the
// left-hand side of any production are permitted and handled lazily by the analyses that
// encounter them (see Warnings).
func (g *Grammar) AddProduction(lhs symbol.Symbol, rhs ...symbol.Symbol) (*Production, error) {
	if !lhs.IsNonTerminal() {
		return nil, fmt.Errorf("grammar: production left-hand side must be a non-terminal, got %#v", lhs)
	}
	p, _ := g.prods.append(lhs, rhs)
	return p, nil
}

// Productions returns every production in insertion order.
func (g *Grammar) Productions() []*Production {
	return g.prods.all()
}

// ProductionsFor returns the productions whose left-hand side is nt, in insertion order. It
// returns nil if nt is never a left-hand side.
func (g *Grammar) ProductionsFor(nt symbol.Symbol) []*Production {
	return g.prods.findByLHS(nt)
}

// Warnings returns the non-fatal diagnostics accumulated by analyses run over g so far
// (UndefinedNonTerminalError). Each distinct diagnostic is reported at most once even if the
// condition is encountered on every fixed-point sweep. A grammar returned by Augmented starts
// with a copy of g's warnings and additionally carries any StartSymbolCollisionError; the LR(1)
// and LALR(1) builders run over that augmented grammar (CanonicalCollection.Grammar), so the
// diagnostics they produce are recorded there rather than on g.
func (g *Grammar) Warnings() []error {
	return append([]error{}, g.warnings...)
}

func (g *Grammar) reportUndefined(sym symbol.Symbol) {
	key := "undef:" + sym.String()
	if g.reported[key] {
		return
	}
	g.reported[key] = true
	g.warnings = append(g.warnings, &UndefinedNonTerminalError{Symbol: sym})
}

// hasNonTerminalNamed reports whether name is used as a non-terminal anywhere in g, as either
// a left-hand or right-hand side symbol.
func (g *Grammar) hasNonTerminalNamed(name string) bool {
	for _, p := range g.prods.ordered {
		if p.lhs.IsNonTerminal() && p.lhs.Name() == name {
			return true
		}
		for _, s := range p.rhs {
			if s.IsNonTerminal() && s.Name() == name {
				return true
			}
		}
	}
	return false
}

// Augmented returns a new grammar with a fresh start symbol S' and the single extra
// production S' -> S prepended (at production number 0), where S is g's start symbol. It is
// the grammar LR analyses actually build their tables over.
//
// If the conventional name S' already occurs in g, a fresh name is generated by appending
// primes until no collision remains, and a StartSymbolCollisionError is recorded on the
// returned grammar's Warnings.
func (g *Grammar) Augmented() (*Grammar, *Production, error) {
	if len(g.Productions()) == 0 || len(g.ProductionsFor(g.start)) == 0 {
		return nil, nil, ErrEmptyGrammar
	}

	name := "S'"
	collided := false
	for g.hasNonTerminalNamed(name) {
		name += "'"
		collided = true
	}
	augStart := symbol.NonTerminal(name)

	ag := New(augStart)
	ag.warnings = append(ag.warnings, g.warnings...)
	for key := range g.reported {
		ag.reported[key] = true
	}
	if collided {
		ag.warnings = append(ag.warnings, &StartSymbolCollisionError{Chosen: augStart})
	}

	startProd, err := ag.AddProduction(augStart, g.start)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range g.Productions() {
		if _, err := ag.AddProduction(p.LHS(), p.RHS()...); err != nil {
			return nil, nil, err
		}
	}
	return ag, startProd, nil
}
