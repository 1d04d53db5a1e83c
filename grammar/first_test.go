package grammar

import (
	"testing"

	"github.com/Kienyew/syntax-analysis/symbol"
)

func TestFirstOfExprGrammar(t *testing.T) {
	g := exprGrammar()
	expr := symbol.NonTerminal("Expr")
	num, lp := symbol.Terminal("num"), symbol.Terminal("(")

	terms, nullable := First(g, expr)
	if nullable {
		t.Fatalf("Expr should not be nullable")
	}
	if len(terms) != 2 || !containsSymbol(terms, num) || !containsSymbol(terms, lp) {
		t.Fatalf("FIRST(Expr) = %v, want {num, (}", terms)
	}
}

func TestFirstOfEmptySequenceIsNullable(t *testing.T) {
	g := exprGrammar()
	terms, nullable := First(g)
	if !nullable {
		t.Fatalf("FIRST of the empty sequence must be nullable")
	}
	if len(terms) != 0 {
		t.Fatalf("FIRST of the empty sequence must have no terminals, got %v", terms)
	}
}

func TestNullableGrammar(t *testing.T) {
	a, b := symbol.NonTerminal("A"), symbol.NonTerminal("B")
	x := symbol.Terminal("x")

	g := New(a)
	g.AddProduction(a, b, x)
	g.AddProduction(b) // B -> ε

	if !Nullable(g, b) {
		t.Fatalf("B should be nullable")
	}
	if Nullable(g, a) {
		t.Fatalf("A should not be nullable (its only production starts with x after B is exhausted)")
	}

	terms, nullable := First(g, a)
	if nullable {
		t.Fatalf("FIRST(A) should not include ε")
	}
	if len(terms) != 1 || terms[0] != x {
		t.Fatalf("FIRST(A) = %v, want {x}", terms)
	}
}

func TestFirstReportsUndefinedNonTerminal(t *testing.T) {
	a := symbol.NonTerminal("A")
	undefined := symbol.NonTerminal("Undefined")
	g := New(a)
	g.AddProduction(a, undefined)

	terms, nullable := First(g, a)
	if len(terms) != 0 || nullable {
		t.Fatalf("FIRST(A) referencing an undefined non-terminal should degrade to empty, got terms=%v nullable=%v", terms, nullable)
	}

	found := false
	for _, w := range g.Warnings() {
		if e, ok := w.(*UndefinedNonTerminalError); ok && e.Symbol == undefined {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UndefinedNonTerminalError naming %s", undefined)
	}
}
