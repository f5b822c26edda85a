package classical

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/trivalent/go-trivalent/debug"
	"github.com/trivalent/go-trivalent/formula"
)

// ErrQuantified marks input outside the oracle's fragment: the classical
// shadow is only exact for quantifier-free formulas.
var ErrQuantified = errors.New("classical: formula contains quantifiers")

// Oracle encodes quantifier-free formulas into a gini circuit and decides
// classical satisfiability. An Oracle is single-use per call and cheap to
// construct.
type Oracle struct{}

func New() *Oracle { return &Oracle{} }

// circuit builds a logic.C over the conjunction of fs, one literal per
// atom key.
type circuit struct {
	c    *logic.C
	vars map[string]z.Lit
}

func (b *circuit) getVar(key string) z.Lit {
	if lit, ok := b.vars[key]; ok {
		return lit
	}
	lit := b.c.Lit()
	b.vars[key] = lit
	return lit
}

func (b *circuit) build(f *formula.Node) (z.Lit, error) {
	switch f.Kind {
	case formula.AtomKind:
		return b.getVar(f.Key()), nil
	case formula.PredKind:
		if f.ArgVar != "" {
			return b.c.F, fmt.Errorf("classical: open predicate %s", f)
		}
		return b.getVar(f.Key()), nil
	case formula.NotKind:
		l, err := b.build(f.L)
		if err != nil {
			return b.c.F, err
		}
		return l.Not(), nil
	case formula.AndKind:
		return b.binary(f, func(l, r z.Lit) z.Lit { return b.c.Ands(l, r) })
	case formula.OrKind:
		return b.binary(f, func(l, r z.Lit) z.Lit { return b.c.Ors(l, r) })
	case formula.ImpliesKind:
		return b.binary(f, b.c.Implies)
	case formula.IffKind:
		return b.binary(f, func(l, r z.Lit) z.Lit { return b.c.Xor(l, r).Not() })
	case formula.ForallKind, formula.ExistsKind:
		return b.c.F, fmt.Errorf("%w: %s", ErrQuantified, f)
	}
	return b.c.F, fmt.Errorf("classical: unknown formula kind %s", f.Kind)
}

func (b *circuit) binary(f *formula.Node, gate func(l, r z.Lit) z.Lit) (z.Lit, error) {
	l, err := b.build(f.L)
	if err != nil {
		return b.c.F, err
	}
	r, err := b.build(f.R)
	if err != nil {
		return b.c.F, err
	}
	return gate(l, r), nil
}

// Satisfiable decides classical satisfiability of the conjunction of fs.
// On a satisfiable result it also returns the witnessing assignment,
// keyed like formula valuations.
func (o *Oracle) Satisfiable(fs ...*formula.Node) (bool, map[string]bool, error) {
	b := &circuit{c: logic.NewC(), vars: map[string]z.Lit{}}
	roots := make([]z.Lit, 0, len(fs))
	for _, f := range fs {
		lit, err := b.build(f)
		if err != nil {
			return false, nil, err
		}
		roots = append(roots, lit)
	}

	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(roots...)
	res := g.Solve()
	if debug.Oracle() {
		debug.Logf("oracle solve=%d vars=%d\n", res, len(b.vars))
	}
	if res != 1 {
		return false, nil, nil
	}
	assign := make(map[string]bool, len(b.vars))
	for key, lit := range b.vars {
		assign[key] = g.Value(lit)
	}
	return true, assign, nil
}

// Falsifiable decides whether f takes the classical value false under
// some assignment, with the witnessing assignment.
func (o *Oracle) Falsifiable(f *formula.Node) (bool, map[string]bool, error) {
	return o.Satisfiable(formula.Not(f))
}

// QuantifierFree reports whether f is inside the oracle's fragment.
func QuantifierFree(f *formula.Node) bool {
	switch f.Kind {
	case formula.ForallKind, formula.ExistsKind:
		return false
	case formula.NotKind:
		return QuantifierFree(f.L)
	case formula.AndKind, formula.OrKind, formula.ImpliesKind, formula.IffKind:
		return QuantifierFree(f.L) && QuantifierFree(f.R)
	}
	return true
}
