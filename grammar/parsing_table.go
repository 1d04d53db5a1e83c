package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// ActionKind distinguishes the three forms an ACTION-table entry can take.
type ActionKind int

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
)

// Action is a single ACTION-table entry.
type Action struct {
	Kind ActionKind
	// State is the target state, valid when Kind == ActionShift.
	State int
	// Prod is the production to reduce by, valid when Kind == ActionReduce.
	Prod *Production
}

// ActionKey identifies a cell of the ACTION table.
type ActionKey struct {
	State    int
	Terminal symbol.Symbol
}

// GotoKey identifies a cell of the GOTO table.
type GotoKey struct {
	State       int
	NonTerminal symbol.Symbol
}

// ParsingTable is an LR ACTION/GOTO table together with the canonical collection it was
// derived from and any conflicts encountered while building it. Builders never refuse to
// return a table over a grammar that isn't LR(1)/LALR(1): conflicting entries are resolved by
// keeping whichever was written first and recording every later, incompatible write in
// Conflicts, with no operator-precedence or associativity tiebreaking.
type ParsingTable struct {
	States      []*ItemSet
	Action      map[ActionKey]Action
	Goto        map[GotoKey]int
	Productions []*Production
	Conflicts   []Conflict
}

// ConstructLR1ParsingTable builds the canonical-LR(1) ACTION/GOTO table for g.
func ConstructLR1ParsingTable(g *Grammar) (*ParsingTable, error) {
	cc, err := ConstructLR1CanonicalSet(g)
	if err != nil {
		return nil, err
	}
	return buildParsingTable(cc)
}

// buildParsingTable derives ACTION/GOTO entries from a canonical collection. It is shared by
// the LR(1) and LALR(1) builders: once LALR(1) has merged states by core, deriving its table
// is exactly the same procedure over the merged collection.
func buildParsingTable(cc *CanonicalCollection) (*ParsingTable, error) {
	t := &ParsingTable{
		States:      cc.States,
		Action:      map[ActionKey]Action{},
		Goto:        map[GotoKey]int{},
		Productions: cc.Grammar.Productions(),
	}

	startSym := cc.Grammar.Start()

	for i, state := range cc.States {
		for _, item := range state.Items() {
			dotSym, hasDot := item.DotSymbol()
			switch {
			case hasDot && dotSym.IsTerminal():
				next, ok := cc.Transitions[TransitionKey{State: i, Symbol: dotSym}]
				if !ok {
					continue
				}
				t.writeShift(i, dotSym, next)

			case !hasDot && item.prod.lhs == startSym && item.lookahead == symbol.EOF:
				t.writeAccept(i)

			case !hasDot:
				t.writeReduce(i, item.lookahead, item.prod)

			case hasDot && dotSym.IsNonTerminal():
				if next, ok := cc.Transitions[TransitionKey{State: i, Symbol: dotSym}]; ok {
					t.Goto[GotoKey{State: i, NonTerminal: dotSym}] = next
				}
			}
		}
	}

	sortConflicts(t.Conflicts)
	return t, nil
}

func (t *ParsingTable) writeShift(state int, term symbol.Symbol, next int) {
	key := ActionKey{State: state, Terminal: term}
	if existing, ok := t.Action[key]; ok {
		if existing.Kind == ActionShift && existing.State == next {
			return
		}
		t.Conflicts = append(t.Conflicts, conflictFor(state, term, existing, Action{Kind: ActionShift, State: next}))
		return
	}
	t.Action[key] = Action{Kind: ActionShift, State: next}
}

func (t *ParsingTable) writeReduce(state int, term symbol.Symbol, prod *Production) {
	key := ActionKey{State: state, Terminal: term}
	if existing, ok := t.Action[key]; ok {
		if existing.Kind == ActionReduce && existing.Prod == prod {
			return
		}
		t.Conflicts = append(t.Conflicts, conflictFor(state, term, existing, Action{Kind: ActionReduce, Prod: prod}))
		return
	}
	t.Action[key] = Action{Kind: ActionReduce, Prod: prod}
}

func (t *ParsingTable) writeAccept(state int) {
	key := ActionKey{State: state, Terminal: symbol.EOF}
	if _, ok := t.Action[key]; ok {
		return
	}
	t.Action[key] = Action{Kind: ActionAccept}
}

func conflictFor(state int, term symbol.Symbol, first, second Action) Conflict {
	shift, reduce := first, second
	if shift.Kind != ActionShift {
		shift, reduce = second, first
	}
	if shift.Kind == ActionShift {
		return &ShiftReduceConflict{StateNum: state, TerminalSym: term, ShiftTo: shift.State, ReduceProd: reduce.Prod}
	}
	return &ReduceReduceConflict{StateNum: state, TerminalSym: term, Prod1: first.Prod, Prod2: second.Prod}
}
