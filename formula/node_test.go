package formula

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInterning(t *testing.T) {
	p, q := Atom("P"), Atom("Q")
	if p != Atom("P") {
		t.Error("expected Atom(P) to intern to one node")
	}
	if p == q {
		t.Error("distinct atoms interned to the same node")
	}
	if And(p, q) != And(p, q) {
		t.Error("expected structurally equal conjunctions to share a node")
	}
	if And(p, q) == And(q, p) {
		t.Error("conjunction interning ignored operand order")
	}
	if Pred("R", "a") != Pred("R", "a") {
		t.Error("expected predicate instances to intern")
	}
	if Pred("R", "a") == PredVar("R", "a") {
		t.Error("ground and variable predicate arguments interned together")
	}
	if Forall("x", "D", PredVar("P", "x")) != Forall("x", "D", PredVar("P", "x")) {
		t.Error("expected quantifiers to intern")
	}
}

func TestKey(t *testing.T) {
	if got := Atom("P").Key(); got != "P" {
		t.Errorf("Atom key: got %q", got)
	}
	if got := Pred("R", "a").Key(); got != "R(a)" {
		t.Errorf("Pred key: got %q", got)
	}
}

func TestIsAtomic(t *testing.T) {
	for _, n := range []*Node{Atom("P"), Pred("R", "a")} {
		if !n.IsAtomic() {
			t.Errorf("%s: expected atomic", n)
		}
	}
	for _, n := range []*Node{
		PredVar("R", "x"),
		Not(Atom("P")),
		And(Atom("P"), Atom("Q")),
		Forall("x", "D", PredVar("P", "x")),
	} {
		if n.IsAtomic() {
			t.Errorf("%s: expected non-atomic", n)
		}
	}
}

func TestFreeVars(t *testing.T) {
	body := And(PredVar("P", "x"), PredVar("Q", "y"))
	got := Forall("x", "D", body).FreeVars()
	if diff := cmp.Diff([]string{"y"}, got); diff != "" {
		t.Errorf("FreeVars (-want +got):\n%s", diff)
	}
	if vs := Forall("y", "E", Forall("x", "D", body)).FreeVars(); vs != nil {
		t.Errorf("FreeVars on closed formula: got %v", vs)
	}
}

func TestSubst(t *testing.T) {
	body := Implies(PredVar("P", "x"), Atom("Q"))
	got := Subst(body, "x", "a")
	want := Implies(Pred("P", "a"), Atom("Q"))
	if got != want {
		t.Errorf("Subst: got %s, want %s", got, want)
	}
	// A quantifier rebinding x shields its body.
	inner := Exists("x", "D", PredVar("P", "x"))
	if Subst(inner, "x", "a") != inner {
		t.Error("Subst descended through a rebinding quantifier")
	}
}

func TestCheck(t *testing.T) {
	if err := Check(Forall("x", "D", PredVar("P", "x"))); err != nil {
		t.Errorf("Check on closed formula: %v", err)
	}
	if err := Check(PredVar("P", "x")); !errors.Is(err, ErrMalformed) {
		t.Errorf("Check on free variable: got %v, want ErrMalformed", err)
	}
	shadow := Forall("x", "D", Forall("x", "E", PredVar("P", "x")))
	if err := Check(shadow); !errors.Is(err, ErrMalformed) {
		t.Errorf("Check on shadowing quantifier: got %v, want ErrMalformed", err)
	}
}

func TestString(t *testing.T) {
	p, q, r := Atom("P"), Atom("Q"), Atom("R")
	tests := []struct {
		f    *Node
		want string
	}{
		{And(p, q), "P ∧ Q"},
		{And(Or(p, q), r), "(P ∨ Q) ∧ R"},
		{Or(And(p, q), r), "P ∧ Q ∨ R"},
		{Not(And(p, q)), "¬(P ∧ Q)"},
		{Not(Not(p)), "¬¬P"},
		{Implies(p, Implies(q, r)), "P → Q → R"},
		{Implies(Implies(p, q), r), "(P → Q) → R"},
		{Iff(p, Or(q, r)), "P ↔ Q ∨ R"},
		{Forall("x", "D", PredVar("P", "x")), "∀x∈D: P(x)"},
		{And(Exists("x", "D", PredVar("P", "x")), q), "∃x∈D: P(x) ∧ Q"},
		{Forall("x", "D", And(PredVar("P", "x"), q)), "∀x∈D: (P(x) ∧ Q)"},
	}
	for _, tc := range tests {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("String: got %q, want %q", got, tc.want)
		}
	}
}

func TestAtomKeys(t *testing.T) {
	f := And(Atom("Q"), Forall("x", "D", And(PredVar("P", "x"), Pred("R", "a"))))
	if diff := cmp.Diff([]string{"Q", "R(a)"}, AtomKeys(f)); diff != "" {
		t.Errorf("AtomKeys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, Individuals(f)); diff != "" {
		t.Errorf("Individuals (-want +got):\n%s", diff)
	}
}
