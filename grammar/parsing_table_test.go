package grammar

import (
	"testing"

	"github.com/Kienyew/syntax-analysis/symbol"
)

func TestLR1ParsingTableAcceptsBalancedParentheses(t *testing.T) {
	g := parenthesesGrammar()
	table, err := ConstructLR1ParsingTable(g)
	if err != nil {
		t.Fatalf("ConstructLR1ParsingTable: %v", err)
	}
	if len(table.Conflicts) != 0 {
		t.Fatalf("expected no conflicts for an LR(1) grammar, got %v", table.Conflicts)
	}

	accepted, err := run(table, []symbol.Symbol{
		symbol.Terminal("("), symbol.Terminal("("), symbol.Terminal(")"), symbol.Terminal(")"),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !accepted {
		t.Fatalf("(()) should be accepted")
	}

	accepted, err = run(table, []symbol.Symbol{symbol.Terminal("("), symbol.Terminal(")"), symbol.Terminal(")")})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if accepted {
		t.Fatalf("()) should be rejected")
	}
}

func TestLALR1HasStrictlyMoreConflictsThanLR1(t *testing.T) {
	g := lalr1ConflictGrammar()

	lr1, err := ConstructLR1ParsingTable(g)
	if err != nil {
		t.Fatalf("ConstructLR1ParsingTable: %v", err)
	}
	if len(lr1.Conflicts) != 0 {
		t.Fatalf("the witness grammar is LR(1); its canonical table should have no conflicts, got %v", lr1.Conflicts)
	}

	lalr1, err := ConstructLALR1ParsingTable(g)
	if err != nil {
		t.Fatalf("ConstructLALR1ParsingTable: %v", err)
	}
	if len(lalr1.Conflicts) == 0 {
		t.Fatalf("merging by core should introduce a reduce/reduce conflict for this grammar")
	}
	for _, c := range lalr1.Conflicts {
		if _, ok := c.(*ReduceReduceConflict); !ok {
			t.Fatalf("expected only reduce/reduce conflicts, got %T: %v", c, c)
		}
	}
}

func TestLALR1HasFewerStatesThanLR1(t *testing.T) {
	g := lalr1ConflictGrammar()

	lr1cc, err := ConstructLR1CanonicalSet(g)
	if err != nil {
		t.Fatalf("ConstructLR1CanonicalSet: %v", err)
	}
	lalr1cc, err := ConstructLALR1CanonicalSet(g)
	if err != nil {
		t.Fatalf("ConstructLALR1CanonicalSet: %v", err)
	}
	if len(lalr1cc.States) >= len(lr1cc.States) {
		t.Fatalf("LALR(1) merging should strictly reduce state count: LR(1) had %d, LALR(1) had %d", len(lr1cc.States), len(lalr1cc.States))
	}
}

// run is a minimal shift-reduce driver used only to exercise ParsingTable in tests; it is not
// part of the package's public surface (driving a parse from a table is out of scope).
func run(t *ParsingTable, input []symbol.Symbol) (accepted bool, err error) {
	tokens := append(append([]symbol.Symbol{}, input...), symbol.EOF)
	stateStack := []int{0}
	pos := 0

	for {
		state := stateStack[len(stateStack)-1]
		la := tokens[pos]
		action, ok := t.Action[ActionKey{State: state, Terminal: la}]
		if !ok {
			return false, nil
		}
		switch action.Kind {
		case ActionShift:
			stateStack = append(stateStack, action.State)
			pos++
		case ActionAccept:
			return true, nil
		case ActionReduce:
			n := len(action.Prod.RHS())
			stateStack = stateStack[:len(stateStack)-n]
			top := stateStack[len(stateStack)-1]
			next, ok := t.Goto[GotoKey{State: top, NonTerminal: action.Prod.LHS()}]
			if !ok {
				return false, nil
			}
			stateStack = append(stateStack, next)
		}
	}
}
