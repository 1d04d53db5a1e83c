package grammar

// ConstructLALR1CanonicalSet builds the LALR(1) collection for g: the full LR(1) canonical
// collection, with states that share a core (the same set of (production, dot) pairs,
// lookaheads discarded) merged into one, the merged state's items carrying the union of the
// lookaheads their pre-merge counterparts carried. This is the classic construct-then-merge
// LALR(1) algorithm, not the lookahead-propagation-over-an-LR(0)-automaton algorithm; the two
// produce the same tables but this one is the one described for this package.
func ConstructLALR1CanonicalSet(g *Grammar) (*CanonicalCollection, error) {
	lr1, err := ConstructLR1CanonicalSet(g)
	if err != nil {
		return nil, err
	}
	return mergeByCore(lr1), nil
}

// ConstructLALR1ParsingTable builds the LALR(1) ACTION/GOTO table for g by merging the full
// LR(1) canonical collection and deriving a table from the result exactly as the LR(1)
// builder would. LALR(1) tables can carry reduce/reduce conflicts that the unmerged LR(1)
// table does not: merging unions lookaheads across states that canonical LR(1) kept apart.
func ConstructLALR1ParsingTable(g *Grammar) (*ParsingTable, error) {
	cc, err := ConstructLALR1CanonicalSet(g)
	if err != nil {
		return nil, err
	}
	return buildParsingTable(cc)
}

// mergeByCore groups lr1's states by core and rebuilds the collection over the merged states.
// Because the start state (index 0) is the first state mergeByCore's outer loop ever visits,
// it is always assigned merged index 0 too, preserving the "initial state is state 0"
// invariant without any extra bookkeeping.
func mergeByCore(lr1 *CanonicalCollection) *CanonicalCollection {
	type group struct {
		items map[itemCore]*TerminalSet
		order []itemCore
	}

	coreToNew := map[string]int{}
	oldToNew := make([]int, len(lr1.States))
	var groups []*group

	for oldIdx, state := range lr1.States {
		key := state.coreKey()
		newIdx, known := coreToNew[key]
		if !known {
			newIdx = len(groups)
			coreToNew[key] = newIdx
			groups = append(groups, &group{items: map[itemCore]*TerminalSet{}})
		}
		oldToNew[oldIdx] = newIdx

		grp := groups[newIdx]
		for _, it := range state.Items() {
			c := it.core()
			ts, seen := grp.items[c]
			if !seen {
				ts = newTerminalSet()
				grp.items[c] = ts
				grp.order = append(grp.order, c)
			}
			ts.Add(it.lookahead)
		}
	}

	newStates := make([]*ItemSet, len(groups))
	for idx, grp := range groups {
		is := newItemSet()
		for _, c := range grp.order {
			p := lr1.Grammar.prods.findByNum(c.prodNum)
			for _, la := range grp.items[c].Slice() {
				is.add(newItem(p, c.dot, la))
			}
		}
		newStates[idx] = is
	}

	newTransitions := make(map[TransitionKey]int, len(lr1.Transitions))
	for key, oldTarget := range lr1.Transitions {
		newKey := TransitionKey{State: oldToNew[key.State], Symbol: key.Symbol}
		newTransitions[newKey] = oldToNew[oldTarget]
	}

	return &CanonicalCollection{States: newStates, Transitions: newTransitions, Grammar: lr1.Grammar}
}
