package classical

import (
	"errors"
	"testing"

	"github.com/trivalent/go-trivalent/formula"
)

// evalBool computes the classical value of a quantifier-free formula under
// a boolean assignment, to check oracle witnesses.
func evalBool(f *formula.Node, assign map[string]bool) bool {
	switch f.Kind {
	case formula.AtomKind, formula.PredKind:
		return assign[f.Key()]
	case formula.NotKind:
		return !evalBool(f.L, assign)
	case formula.AndKind:
		return evalBool(f.L, assign) && evalBool(f.R, assign)
	case formula.OrKind:
		return evalBool(f.L, assign) || evalBool(f.R, assign)
	case formula.ImpliesKind:
		return !evalBool(f.L, assign) || evalBool(f.R, assign)
	case formula.IffKind:
		return evalBool(f.L, assign) == evalBool(f.R, assign)
	}
	panic("evalBool: unexpected kind " + f.Kind.String())
}

func TestSatisfiable(t *testing.T) {
	p, q := formula.Atom("P"), formula.Atom("Q")
	tests := []struct {
		name string
		fs   []*formula.Node
		want bool
	}{
		{"contradiction", []*formula.Node{formula.And(p, formula.Not(p))}, false},
		{"literal pair", []*formula.Node{formula.And(p, formula.Not(q))}, true},
		{"conjoined inconsistency", []*formula.Node{p, formula.Not(p)}, false},
		{"modus ponens refutation", []*formula.Node{p, formula.Implies(p, q), formula.Not(q)}, false},
		{"de morgan", []*formula.Node{
			formula.Not(formula.Iff(
				formula.Not(formula.And(p, q)),
				formula.Or(formula.Not(p), formula.Not(q)))),
		}, false},
		{"predicates", []*formula.Node{formula.Implies(formula.Pred("R", "a"), formula.Pred("R", "b"))}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sat, assign, err := New().Satisfiable(tc.fs...)
			if err != nil {
				t.Fatalf("Satisfiable: %v", err)
			}
			if sat != tc.want {
				t.Fatalf("got sat=%v, want %v", sat, tc.want)
			}
			if !sat {
				return
			}
			for _, f := range tc.fs {
				if !evalBool(f, assign) {
					t.Errorf("assignment %v does not satisfy %s", assign, f)
				}
			}
		})
	}
}

func TestFalsifiable(t *testing.T) {
	p := formula.Atom("P")
	taut := formula.Or(p, formula.Not(p))
	fals, _, err := New().Falsifiable(taut)
	if err != nil {
		t.Fatalf("Falsifiable: %v", err)
	}
	if fals {
		t.Error("classical tautology reported falsifiable")
	}
	fals, assign, err := New().Falsifiable(p)
	if err != nil {
		t.Fatalf("Falsifiable: %v", err)
	}
	if !fals || assign["P"] {
		t.Errorf("got fals=%v assign=%v, want a falsifying assignment", fals, assign)
	}
}

func TestQuantifiedRejected(t *testing.T) {
	all := formula.Forall("x", "D", formula.PredVar("P", "x"))
	if _, _, err := New().Satisfiable(all); !errors.Is(err, ErrQuantified) {
		t.Errorf("got %v, want ErrQuantified", err)
	}
	if QuantifierFree(all) {
		t.Error("QuantifierFree accepted a universal")
	}
	if !QuantifierFree(formula.And(formula.Atom("P"), formula.Pred("R", "a"))) {
		t.Error("QuantifierFree rejected a propositional formula")
	}
}
