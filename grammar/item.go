package grammar

import (
	"fmt"
	"strings"

	"github.com/Kienyew/syntax-analysis/symbol"

	"github.com/emirpasic/gods/sets/treeset"
)

// Item is a dotted LR(1) item [A -> α · β, a]: a production, the dot's position within its
// right-hand side, and a single lookahead terminal. Two items are equal iff all three
// components match; unlike the teacher's LR0-core-plus-propagated-lookahead scheme, the
// lookahead is part of an Item's identity from the start, since the canonical-collection
// construction below builds the full LR(1) automaton rather than an LR(0) one.
type Item struct {
	prod      *Production
	dot       int
	lookahead symbol.Symbol
}

func newItem(p *Production, dot int, la symbol.Symbol) Item {
	return Item{prod: p, dot: dot, lookahead: la}
}

// Production returns the item's production.
func (i Item) Production() *Production { return i.prod }

// Dot returns the item's dot position, a number in [0, len(rhs)].
func (i Item) Dot() int { return i.dot }

// Lookahead returns the item's lookahead terminal.
func (i Item) Lookahead() symbol.Symbol { return i.lookahead }

// DotSymbol returns the symbol immediately after the dot, and false if the dot is at the end
// of the production (the item is reducible).
func (i Item) DotSymbol() (symbol.Symbol, bool) {
	rhs := i.prod.rhs
	if i.dot >= len(rhs) {
		return symbol.Symbol{}, false
	}
	return rhs[i.dot], true
}

// IsReducible reports whether the dot has reached the end of the production.
func (i Item) IsReducible() bool { return i.dot == len(i.prod.rhs) }

func (i Item) advance() Item {
	return Item{prod: i.prod, dot: i.dot + 1, lookahead: i.lookahead}
}

// itemCore is an Item stripped of its lookahead: the (production, dot) pair that the
// LALR(1) builder groups LR(1) states by.
type itemCore struct {
	prodNum int
	dot     int
}

func (i Item) core() itemCore {
	return itemCore{prodNum: i.prod.Num(), dot: i.dot}
}

func (i Item) String() string {
	rhs := i.prod.rhs
	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", i.prod.lhs)
	for idx, s := range rhs {
		if idx == i.dot {
			b.WriteString(" ·")
		}
		fmt.Fprintf(&b, " %s", s)
	}
	if i.dot == len(rhs) {
		b.WriteString(" ·")
	}
	fmt.Fprintf(&b, ", %s", i.lookahead)
	return b.String()
}

// itemComparator orders items by (production number, dot, lookahead name), matching the
// deterministic ordering the design notes require for stable state identity.
func itemComparator(a, b interface{}) int {
	x, y := a.(Item), b.(Item)
	if x.prod.Num() != y.prod.Num() {
		return x.prod.Num() - y.prod.Num()
	}
	if x.dot != y.dot {
		return x.dot - y.dot
	}
	if x.lookahead.Name() != y.lookahead.Name() {
		if x.lookahead.Name() < y.lookahead.Name() {
			return -1
		}
		return 1
	}
	return 0
}

// ItemSet is a deterministically ordered set of LR(1) items, the state of an LR automaton.
type ItemSet struct {
	set *treeset.Set
}

func newItemSet() *ItemSet {
	return &ItemSet{set: treeset.NewWith(itemComparator)}
}

func (s *ItemSet) add(i Item) bool {
	if s.set.Contains(i) {
		return false
	}
	s.set.Add(i)
	return true
}

// Items returns the set's items in comparator order (production number, dot, lookahead).
func (s *ItemSet) Items() []Item {
	vals := s.set.Values()
	out := make([]Item, len(vals))
	for idx, v := range vals {
		out[idx] = v.(Item)
	}
	return out
}

// Len returns the number of items in the set.
func (s *ItemSet) Len() int { return s.set.Size() }

// key returns a canonical string identity for the whole item set, used to detect when two
// states of the canonical collection are actually the same state.
func (s *ItemSet) key() string {
	var b strings.Builder
	for _, i := range s.Items() {
		fmt.Fprintf(&b, "%d.%d.%s|", i.prod.Num(), i.dot, i.lookahead.Name())
	}
	return b.String()
}

// coreKey returns the canonical identity of the set's (production, dot) cores only, ignoring
// lookaheads. Two LR(1) states with the same coreKey share a core and are merge candidates
// for LALR(1).
func (s *ItemSet) coreKey() string {
	var b strings.Builder
	var last itemCore
	first := true
	for _, i := range s.Items() {
		c := i.core()
		if !first && c == last {
			continue
		}
		fmt.Fprintf(&b, "%d.%d|", c.prodNum, c.dot)
		last = c
		first = false
	}
	return b.String()
}
