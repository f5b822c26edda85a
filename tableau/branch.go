package tableau

import (
	"maps"
	"slices"

	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/sign"
)

// Status is the branch state machine: open-unexpanded until the engine
// runs out of applicable rules or finds a contradiction.
type Status uint8

const (
	OpenUnexpanded Status = iota
	OpenExhausted
	Closed
)

func (s Status) String() string {
	switch s {
	case OpenUnexpanded:
		return "open-unexpanded"
	case OpenExhausted:
		return "open-exhausted"
	case Closed:
		return "closed"
	}
	return "invalid"
}

// Closure records the contradiction pair that closed a branch.
type Closure struct {
	A, B sign.Signed
}

type entry struct {
	sf       sign.Signed
	expanded bool
}

// universal is the residual obligation of an expanded quantifier: apply
// Per to the instance for every individual satisfying the bounding
// predicate, including ones that appear later.
type universal struct {
	origin  sign.Signed // the quantified signed formula, for traces
	domain  string
	bound   string
	body    *formula.Node
	per     sign.Sign
	applied map[string]bool
}

func (u *universal) clone() *universal {
	cp := *u
	cp.applied = maps.Clone(u.applied)
	return &cp
}

// Branch is an ordered sequence of signed formulas plus the bookkeeping
// that keeps rules from re-applying: an expansion marker per entry, the
// set of signed formulas already present, an index of signs per atomic
// formula for closure checks, the individuals mentioned, and pending
// universal obligations.
type Branch struct {
	ID     int
	Parent int // branch this was cloned from, -1 for the root

	entries []entry
	present map[sign.Signed]bool

	// atomSigns indexes signs by atomic formula for the pairwise
	// contradiction scan.
	atomSigns map[*formula.Node][]sign.Sign

	// individuals in first-mention order; eligible[d] holds the
	// individuals i with T:d(i) on the branch.
	individuals []string
	indSeen     map[string]bool
	eligible    map[string][]string

	universals []*universal

	status  Status
	closure *Closure
}

func newBranch(id int) *Branch {
	return &Branch{
		ID:        id,
		Parent:    -1,
		present:   map[sign.Signed]bool{},
		atomSigns: map[*formula.Node][]sign.Sign{},
		indSeen:   map[string]bool{},
		eligible:  map[string][]string{},
	}
}

func (b *Branch) Status() Status    { return b.status }
func (b *Branch) Closure() *Closure { return b.closure }

// Formulas returns the signed formulas on the branch in insertion order.
func (b *Branch) Formulas() []sign.Signed {
	sfs := make([]sign.Signed, len(b.entries))
	for i, e := range b.entries {
		sfs[i] = e.sf
	}
	return sfs
}

// Individuals returns the individuals mentioned on the branch in
// first-mention order.
func (b *Branch) Individuals() []string {
	return slices.Clone(b.individuals)
}

func (b *Branch) clone(id int) *Branch {
	cp := &Branch{
		ID:          id,
		Parent:      b.ID,
		entries:     slices.Clone(b.entries),
		present:     maps.Clone(b.present),
		atomSigns:   make(map[*formula.Node][]sign.Sign, len(b.atomSigns)),
		individuals: slices.Clone(b.individuals),
		indSeen:     maps.Clone(b.indSeen),
		eligible:    make(map[string][]string, len(b.eligible)),
		universals:  make([]*universal, len(b.universals)),
		status:      b.status,
	}
	for f, ss := range b.atomSigns {
		cp.atomSigns[f] = slices.Clone(ss)
	}
	for d, is := range b.eligible {
		cp.eligible[d] = slices.Clone(is)
	}
	for i, u := range b.universals {
		cp.universals[i] = u.clone()
	}
	return cp
}

// add appends sf to the branch if new, updates the closure index and the
// individual bookkeeping, and closes the branch on a contradiction pair.
// It reports whether the branch changed.
func (b *Branch) add(sf sign.Signed) bool {
	if b.status == Closed {
		panic("tableau: add to closed branch")
	}
	if b.present[sf] {
		return false
	}
	b.present[sf] = true
	b.entries = append(b.entries, entry{sf: sf})
	f := sf.Formula
	if !f.IsAtomic() {
		return true
	}
	// Closure scan: any existing sign on the same atom with a disjoint
	// denotation set closes the branch. Meta-signs participate, so T:P
	// against T*:P closes without rewriting first.
	for _, s := range b.atomSigns[f] {
		if s.Contradicts(sf.Sign) {
			b.status = Closed
			b.closure = &Closure{A: sign.Signed{Sign: s, Formula: f}, B: sf}
			break
		}
	}
	b.atomSigns[f] = append(b.atomSigns[f], sf.Sign)
	if f.Kind == formula.PredKind {
		if !b.indSeen[f.Ind] {
			b.indSeen[f.Ind] = true
			b.individuals = append(b.individuals, f.Ind)
		}
		if sf.Sign == sign.T {
			b.eligible[f.Name] = append(b.eligible[f.Name], f.Ind)
		}
	}
	return true
}

// nextUnexpanded returns the index of the first entry still carrying
// expansion work, or -1. Atomic formulas under concrete signs are
// terminal; meta-signed atoms still rewrite (model extraction needs
// concrete values).
func (b *Branch) nextUnexpanded() int {
	for i := range b.entries {
		e := &b.entries[i]
		if e.expanded {
			continue
		}
		if e.sf.Formula.IsAtomic() && !e.sf.Sign.IsMeta() {
			e.expanded = true
			continue
		}
		return i
	}
	return -1
}

// pendingUniversal returns a universal obligation with an eligible
// individual it has not instantiated yet, with that individual, or nil.
func (b *Branch) pendingUniversal() (*universal, string) {
	for _, u := range b.universals {
		for _, i := range b.eligible[u.domain] {
			if !u.applied[i] {
				return u, i
			}
		}
	}
	return nil, ""
}
