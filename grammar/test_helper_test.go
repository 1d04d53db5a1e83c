package grammar

import "github.com/Kienyew/syntax-analysis/symbol"

// exprGrammar builds the classic left-recursive expression grammar used throughout these
// tests:
//
//	Expr -> Expr + Term | Expr - Term | Term
//	Term -> Term * Factor | Expr / Term | Factor
//	Factor -> num | ( Expr )
func exprGrammar() *Grammar {
	expr, term, factor := symbol.NonTerminal("Expr"), symbol.NonTerminal("Term"), symbol.NonTerminal("Factor")
	plus, minus, times, div, num, lp, rp := symbol.Terminal("+"), symbol.Terminal("-"), symbol.Terminal("*"), symbol.Terminal("/"), symbol.Terminal("num"), symbol.Terminal("("), symbol.Terminal(")")

	g := New(expr)
	g.AddProduction(expr, expr, plus, term)
	g.AddProduction(expr, expr, minus, term)
	g.AddProduction(expr, term)
	g.AddProduction(term, term, times, factor)
	g.AddProduction(term, expr, div, term)
	g.AddProduction(term, factor)
	g.AddProduction(factor, num)
	g.AddProduction(factor, lp, expr, rp)
	return g
}

// parenthesesGrammar builds the small grammar of balanced parenthesized lists used in §8's
// LR(1)/LALR(1) scenarios:
//
//	S -> List
//	List -> List Pair | Pair
//	Pair -> ( Pair ) | ( )
func parenthesesGrammar() *Grammar {
	start, list, pair := symbol.NonTerminal("S"), symbol.NonTerminal("List"), symbol.NonTerminal("Pair")
	lp, rp := symbol.Terminal("("), symbol.Terminal(")")

	g := New(start)
	g.AddProduction(start, list)
	g.AddProduction(list, list, pair)
	g.AddProduction(list, pair)
	g.AddProduction(pair, lp, pair, rp)
	g.AddProduction(pair, lp, rp)
	return g
}

// ll1ExampleGrammar builds S -> +SS | *SS | a, the textbook LL(1) example grammar.
func ll1ExampleGrammar() *Grammar {
	s := symbol.NonTerminal("S")
	plus, times, a := symbol.Terminal("+"), symbol.Terminal("*"), symbol.Terminal("a")

	g := New(s)
	g.AddProduction(s, plus, s, s)
	g.AddProduction(s, times, s, s)
	g.AddProduction(s, a)
	return g
}

// lalr1ConflictGrammar builds the classic grammar that is LR(1) but not LALR(1):
//
//	S -> a A d | b B d | a B e | b A e
//	A -> c
//	B -> c
//
// Merging the LR(1) states for A -> c · and B -> c · unions their lookaheads {d} and {e},
// producing a reduce/reduce conflict on both d and e that the unmerged LR(1) table does not
// have.
func lalr1ConflictGrammar() *Grammar {
	s, a, b := symbol.NonTerminal("S"), symbol.NonTerminal("A"), symbol.NonTerminal("B")
	ta, tb, tc, td, te := symbol.Terminal("a"), symbol.Terminal("b"), symbol.Terminal("c"), symbol.Terminal("d"), symbol.Terminal("e")

	g := New(s)
	g.AddProduction(s, ta, a, td)
	g.AddProduction(s, tb, b, td)
	g.AddProduction(s, ta, b, te)
	g.AddProduction(s, tb, a, te)
	g.AddProduction(a, tc)
	g.AddProduction(b, tc)
	return g
}

func containsSymbol(haystack []symbol.Symbol, needle symbol.Symbol) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
