package grammar

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kienyew/syntax-analysis/symbol"
)

type productionID [32]byte

func newProductionID(lhs symbol.Symbol, rhs []symbol.Symbol) productionID {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%s", lhs.Kind(), lhs.Name())
	for _, s := range rhs {
		fmt.Fprintf(&b, "|%d:%s", s.Kind(), s.Name())
	}
	return sha256.Sum256([]byte(b.String()))
}

// productionNum is a production's position in its grammar's insertion order, starting at 0.
// The augmented grammar's S' -> S production is always num 0.
type productionNum int

// Production pairs a non-terminal left-hand side with an ordered right-hand side. An empty
// rhs represents lhs -> ε.
type Production struct {
	id  productionID
	num productionNum
	lhs symbol.Symbol
	rhs []symbol.Symbol
}

func newProduction(lhs symbol.Symbol, rhs []symbol.Symbol, num productionNum) *Production {
	return &Production{
		id:  newProductionID(lhs, rhs),
		num: num,
		lhs: lhs,
		rhs: append([]symbol.Symbol{}, rhs...),
	}
}

// Num returns the production's index within its grammar's production list.
func (p *Production) Num() int { return int(p.num) }

// LHS returns the production's left-hand side non-terminal.
func (p *Production) LHS() symbol.Symbol { return p.lhs }

// RHS returns a copy of the production's right-hand side.
func (p *Production) RHS() []symbol.Symbol {
	return append([]symbol.Symbol{}, p.rhs...)
}

// IsEmpty reports whether the production is an ε-production.
func (p *Production) IsEmpty() bool { return len(p.rhs) == 0 }

func (p *Production) String() string {
	if len(p.rhs) == 0 {
		return fmt.Sprintf("%s -> ε", p.lhs)
	}
	parts := make([]string, len(p.rhs))
	for i, s := range p.rhs {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%s -> %s", p.lhs, strings.Join(parts, " "))
}

// productionSet holds a grammar's productions, deduplicated by structural identity and
// indexed both by insertion order and by left-hand side.
type productionSet struct {
	byID    map[productionID]*Production
	byLHS   map[symbol.Symbol][]*Production
	byNum   map[productionNum]*Production
	ordered []*Production
	next    productionNum
}

func newProductionSet() *productionSet {
	return &productionSet{
		byID:  map[productionID]*Production{},
		byLHS: map[symbol.Symbol][]*Production{},
		byNum: map[productionNum]*Production{},
	}
}

// append adds lhs -> rhs if an identical production is not already present, returning the
// (possibly pre-existing) production and whether it was newly added.
func (ps *productionSet) append(lhs symbol.Symbol, rhs []symbol.Symbol) (*Production, bool) {
	id := newProductionID(lhs, rhs)
	if p, ok := ps.byID[id]; ok {
		return p, false
	}
	p := newProduction(lhs, rhs, ps.next)
	ps.next++
	ps.byID[id] = p
	ps.byLHS[lhs] = append(ps.byLHS[lhs], p)
	ps.byNum[p.num] = p
	ps.ordered = append(ps.ordered, p)
	return p, true
}

func (ps *productionSet) findByLHS(lhs symbol.Symbol) []*Production {
	return ps.byLHS[lhs]
}

func (ps *productionSet) findByNum(n int) *Production {
	return ps.byNum[productionNum(n)]
}

func (ps *productionSet) all() []*Production {
	return ps.ordered
}

// productionLabel formats a production for diagnostics that need a number attached, e.g.
// "#3: A -> a".
func productionLabel(p *Production) string {
	return "#" + strconv.Itoa(p.Num()) + ": " + p.String()
}
