package formula

import "testing"

// tv is a literal valuation for tests.
type tv struct {
	atoms map[string]Value
	inds  []string
}

func (v *tv) Value(atom string) Value { return v.atoms[atom] }
func (v *tv) Individuals() []string   { return v.inds }

func TestEvalConnectives(t *testing.T) {
	p, q := Atom("P"), Atom("Q")
	tests := []struct {
		f    *Node
		p, q Value
		want Value
	}{
		{Not(p), True, Undefined, False},
		{Not(p), False, Undefined, True},
		{Not(p), Undefined, Undefined, Undefined},

		{And(p, q), True, True, True},
		{And(p, q), True, False, False},
		{And(p, q), False, False, False},
		{And(p, q), True, Undefined, Undefined},
		{And(p, q), False, Undefined, Undefined},

		{Or(p, q), False, False, False},
		{Or(p, q), True, False, True},
		{Or(p, q), True, Undefined, Undefined},
		{Or(p, q), False, Undefined, Undefined},

		{Implies(p, q), True, True, True},
		{Implies(p, q), True, False, False},
		{Implies(p, q), False, False, True},
		{Implies(p, q), Undefined, True, Undefined},
		{Implies(p, q), False, Undefined, Undefined},

		{Iff(p, q), True, True, True},
		{Iff(p, q), False, False, True},
		{Iff(p, q), True, False, False},
		{Iff(p, q), Undefined, False, Undefined},
	}
	for _, tc := range tests {
		v := &tv{atoms: map[string]Value{"P": tc.p, "Q": tc.q}}
		if got := Eval(tc.f, v); got != tc.want {
			t.Errorf("%s with P=%s Q=%s: got %s, want %s", tc.f, tc.p, tc.q, got, tc.want)
		}
	}
}

// Any undefined operand infects the whole compound, however deep.
func TestEvalInfectious(t *testing.T) {
	p, q, r := Atom("P"), Atom("Q"), Atom("R")
	f := Or(And(p, q), Implies(r, p))
	v := &tv{atoms: map[string]Value{"P": True, "Q": True, "R": Undefined}}
	if got := Eval(f, v); got != Undefined {
		t.Errorf("got %s, want undefined", got)
	}
}

func TestEvalQuantifiers(t *testing.T) {
	all := Forall("x", "D", PredVar("P", "x"))
	some := Exists("x", "D", PredVar("P", "x"))
	tests := []struct {
		name  string
		f     *Node
		atoms map[string]Value
		inds  []string
		want  Value
	}{
		{"forall all true", all,
			map[string]Value{"D(a)": True, "D(b)": True, "P(a)": True, "P(b)": True},
			[]string{"a", "b"}, True},
		{"forall one false", all,
			map[string]Value{"D(a)": True, "D(b)": True, "P(a)": True, "P(b)": False},
			[]string{"a", "b"}, False},
		{"forall one undefined", all,
			map[string]Value{"D(a)": True, "D(b)": True, "P(a)": True, "P(b)": Undefined},
			[]string{"a", "b"}, Undefined},
		{"forall skips non-members", all,
			map[string]Value{"D(a)": True, "D(b)": False, "P(a)": True, "P(b)": False},
			[]string{"a", "b"}, True},
		{"forall skips undefined guard", all,
			map[string]Value{"D(a)": True, "D(b)": Undefined, "P(a)": True, "P(b)": Undefined},
			[]string{"a", "b"}, True},
		{"forall empty range", all,
			map[string]Value{}, []string{"a"}, True},
		{"exists witness", some,
			map[string]Value{"D(a)": True, "D(b)": True, "P(a)": False, "P(b)": True},
			[]string{"a", "b"}, True},
		{"exists all false", some,
			map[string]Value{"D(a)": True, "P(a)": False},
			[]string{"a"}, False},
		{"exists member undefined", some,
			map[string]Value{"D(a)": True, "D(b)": True, "P(a)": True, "P(b)": Undefined},
			[]string{"a", "b"}, Undefined},
		{"exists empty range", some,
			map[string]Value{}, []string{}, False},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := &tv{atoms: tc.atoms, inds: tc.inds}
			if got := Eval(tc.f, v); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
