package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/Kienyew/syntax-analysis/symbol"
)

func symbolComparator(a, b interface{}) int {
	x, y := a.(symbol.Symbol), b.(symbol.Symbol)
	if x.Kind() != y.Kind() {
		return int(x.Kind()) - int(y.Kind())
	}
	return utils.StringComparator(x.Name(), y.Name())
}

// TerminalSet is a deterministically ordered (by name) set of terminal symbols. FIRST and
// FOLLOW sets are built on top of it so that two runs over the same grammar always produce
// the same slice order, which in turn keeps canonical-collection state identity stable.
type TerminalSet struct {
	set *treeset.Set
}

func newTerminalSet() *TerminalSet {
	return &TerminalSet{set: treeset.NewWith(symbolComparator)}
}

// Add inserts t, reporting whether it was not already present.
func (s *TerminalSet) Add(t symbol.Symbol) bool {
	if s.set.Contains(t) {
		return false
	}
	s.set.Add(t)
	return true
}

// Contains reports whether t is a member of s.
func (s *TerminalSet) Contains(t symbol.Symbol) bool {
	return s.set.Contains(t)
}

// Len reports the number of terminals in s.
func (s *TerminalSet) Len() int {
	return s.set.Size()
}

// Slice returns the terminals of s sorted by name.
func (s *TerminalSet) Slice() []symbol.Symbol {
	vals := s.set.Values()
	out := make([]symbol.Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(symbol.Symbol)
	}
	return out
}

// union merges o into s in place, reporting whether s changed.
func (s *TerminalSet) union(o *TerminalSet) bool {
	changed := false
	for _, v := range o.set.Values() {
		if s.Add(v.(symbol.Symbol)) {
			changed = true
		}
	}
	return changed
}
