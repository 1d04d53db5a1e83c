package grammar

import (
	"github.com/Kienyew/syntax-analysis/symbol"
)

// TransitionKey identifies a GOTO transition out of a canonical-collection state on a single
// symbol, terminal or non-terminal.
type TransitionKey struct {
	State  int
	Symbol symbol.Symbol
}

// CanonicalCollection is the canonical collection of LR(1) item sets together with the GOTO
// transition function between them. States are numbered by BFS discovery order starting from
// the initial state, which is always state 0.
type CanonicalCollection struct {
	States      []*ItemSet
	Transitions map[TransitionKey]int
	Grammar     *Grammar // the augmented grammar the states were built over
}

// ConstructLR1CanonicalSet builds the canonical collection of LR(1) item sets for g. The
// grammar is augmented internally (see Grammar.Augmented); the returned collection's Grammar
// field is that augmented grammar, whose productions are what ACTION/GOTO table entries and
// reductions refer to.
func ConstructLR1CanonicalSet(g *Grammar) (*CanonicalCollection, error) {
	if len(g.Productions()) == 0 {
		return nil, ErrEmptyGrammar
	}
	ag, startProd, err := g.Augmented()
	if err != nil {
		return nil, err
	}

	fs := computeFirstSets(ag)

	start := newItemSet()
	start.add(newItem(startProd, 0, symbol.EOF))
	start = closure(ag, fs, start)

	cc := &CanonicalCollection{
		Transitions: map[TransitionKey]int{},
		Grammar:     ag,
	}
	index := map[string]int{}
	cc.States = append(cc.States, start)
	index[start.key()] = 0

	symbols := orderedSymbols(ag)

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		state := cc.States[i]

		for _, x := range symbols {
			j := gotoSet(ag, fs, state, x)
			if j.Len() == 0 {
				continue
			}
			key := j.key()
			idx, known := index[key]
			if !known {
				idx = len(cc.States)
				cc.States = append(cc.States, j)
				index[key] = idx
				queue = append(queue, idx)
			}
			cc.Transitions[TransitionKey{State: i, Symbol: x}] = idx
		}
	}
	return cc, nil
}
