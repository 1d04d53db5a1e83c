package grammar

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Kienyew/syntax-analysis/symbol"
)

// ErrEmptyGrammar is returned by a table builder when the grammar has no productions at all,
// or when its start symbol is never the left-hand side of any production.
var ErrEmptyGrammar = errors.New("grammar: no productions reachable from the start symbol")

// UndefinedNonTerminalError reports that a non-terminal appearing in some production's
// right-hand side is never the left-hand side of any production. It is non-fatal: the
// analysis that encountered it treats the missing non-terminal's FIRST/FOLLOW set as empty
// and continues. Use Grammar.Warnings to collect these after a computation.
type UndefinedNonTerminalError struct {
	Symbol symbol.Symbol
}

func (e *UndefinedNonTerminalError) Error() string {
	return fmt.Sprintf("grammar: %s is never the left-hand side of a production", e.Symbol)
}

// StartSymbolCollisionError reports that the conventional augmented start symbol name (S')
// already occurs somewhere in the grammar, so Grammar.Augmented chose Chosen instead.
type StartSymbolCollisionError struct {
	Chosen symbol.Symbol
}

func (e *StartSymbolCollisionError) Error() string {
	return fmt.Sprintf("grammar: augmented start symbol name collided, using %s instead", e.Chosen)
}

// LL1Conflict reports that an LL(1) table cell holds more than one applicable production,
// meaning the grammar is not LL(1).
type LL1Conflict struct {
	NonTerminal symbol.Symbol
	Terminal    symbol.Symbol
	Productions []*Production
}

func (c *LL1Conflict) Error() string {
	return fmt.Sprintf("grammar: LL(1) conflict at (%s, %s) among %d productions", c.NonTerminal, c.Terminal, len(c.Productions))
}

// Conflict is a competing pair of ACTION-table entries recorded by an LR(1) or LALR(1)
// builder. The builder never resolves a conflict itself: it keeps the first entry written and
// records every later, incompatible write as a Conflict instead of silently dropping it.
type Conflict interface {
	error
	State() int
	Terminal() symbol.Symbol
}

// ShiftReduceConflict reports that a state's ACTION entry for a terminal could be either a
// shift or a reduce.
type ShiftReduceConflict struct {
	StateNum    int
	TerminalSym symbol.Symbol
	ShiftTo     int
	ReduceProd  *Production
}

func (c *ShiftReduceConflict) State() int                { return c.StateNum }
func (c *ShiftReduceConflict) Terminal() symbol.Symbol    { return c.TerminalSym }
func (c *ShiftReduceConflict) Error() string {
	return fmt.Sprintf("grammar: shift/reduce conflict in state %d on %s: shift to %d vs reduce by %s",
		c.StateNum, c.TerminalSym, c.ShiftTo, productionLabel(c.ReduceProd))
}

// ReduceReduceConflict reports that a state's ACTION entry for a terminal could reduce by
// either of two different productions.
type ReduceReduceConflict struct {
	StateNum    int
	TerminalSym symbol.Symbol
	Prod1       *Production
	Prod2       *Production
}

func (c *ReduceReduceConflict) State() int             { return c.StateNum }
func (c *ReduceReduceConflict) Terminal() symbol.Symbol { return c.TerminalSym }
func (c *ReduceReduceConflict) Error() string {
	return fmt.Sprintf("grammar: reduce/reduce conflict in state %d on %s: %s vs %s",
		c.StateNum, c.TerminalSym, productionLabel(c.Prod1), productionLabel(c.Prod2))
}

func sortConflicts(cs []Conflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].State() != cs[j].State() {
			return cs[i].State() < cs[j].State()
		}
		return cs[i].Terminal().Name() < cs[j].Terminal().Name()
	})
}

func sortLL1Conflicts(cs []*LL1Conflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].NonTerminal.Name() != cs[j].NonTerminal.Name() {
			return cs[i].NonTerminal.Name() < cs[j].NonTerminal.Name()
		}
		return cs[i].Terminal.Name() < cs[j].Terminal.Name()
	})
}
