package trivalent

import (
	"errors"
	"testing"

	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/parse"
	"github.com/trivalent/go-trivalent/sign"
)

type mapVal struct {
	atoms map[string]formula.Value
	inds  []string
}

func (v *mapVal) Value(atom string) formula.Value { return v.atoms[atom] }
func (v *mapVal) Individuals() []string           { return v.inds }

// bruteSat enumerates every three-valued assignment to f's atoms and
// reports whether some assignment gives f a value s denotes.
func bruteSat(f *formula.Node, s sign.Sign) bool {
	keys := formula.AtomKeys(f)
	v := &mapVal{atoms: map[string]formula.Value{}}
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == len(keys) {
			return s.Denotes(formula.Eval(f, v))
		}
		for _, val := range formula.Values {
			v.atoms[keys[i]] = val
			if rec(i + 1) {
				return true
			}
		}
		return false
	}
	return rec(0)
}

var allSigns = []sign.Sign{sign.T, sign.F, sign.U, sign.NotTrue, sign.NotFalse, sign.Defined}

// The tableau must agree with brute-force enumeration on every sign, and
// the classical fast path must agree with the tableau where it applies.
func TestSolveAgreesWithEnumeration(t *testing.T) {
	srcs := []string{
		"P",
		"P & ~P",
		"P | ~P",
		"P -> Q",
		"P <-> Q",
		"~(P & Q) <-> (~P | ~Q)",
		"(P & Q) | ~P",
		"P & (Q | ~Q)",
		"(P -> Q) -> (~Q -> ~P)",
	}
	for _, src := range srcs {
		f, err := parse.Formula(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		for _, s := range allSigns {
			want := bruteSat(f, s)
			res, err := Solve(f, s, &Options{NoOracle: true, FindAll: true})
			if err != nil {
				t.Fatalf("Solve(%s:%s): %v", s, f, err)
			}
			if res.Unknown {
				t.Fatalf("Solve(%s:%s): unexpected unknown", s, f)
			}
			if res.Satisfiable != want {
				t.Errorf("Solve(%s:%s): got %v, enumeration says %v", s, f, res.Satisfiable, want)
			}
			for _, m := range res.Models {
				if got := formula.Eval(f, m); !s.Denotes(got) {
					t.Errorf("Solve(%s:%s): model %s gives %s", s, f, m, got)
				}
			}
			if s != sign.T && s != sign.F {
				continue
			}
			ores, err := Solve(f, s, nil)
			if err != nil {
				t.Fatalf("Solve(%s:%s) with oracle: %v", s, f, err)
			}
			if ores.Satisfiable != want {
				t.Errorf("oracle Solve(%s:%s): got %v, want %v", s, f, ores.Satisfiable, want)
			}
		}
	}
}

func TestSolveModelWitness(t *testing.T) {
	f, err := parse.Formula("P & ~Q")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Solve(f, sign.T, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Satisfiable || len(res.Models) == 0 {
		t.Fatalf("got %+v, want a satisfiable result with a model", res)
	}
	if got := formula.Eval(f, res.Models[0]); got != formula.True {
		t.Errorf("witness model gives %s, want true", got)
	}
}

// No purely propositional formula is valid in weak Kleene: the
// all-undefined valuation undefines everything.
func TestValidRejectsClassicalTautologies(t *testing.T) {
	for _, src := range []string{"P | ~P", "P -> P", "~(P & ~P)"} {
		f, err := parse.Formula(src)
		if err != nil {
			t.Fatal(err)
		}
		v, err := Valid(f)
		if err != nil {
			t.Fatalf("Valid(%s): %v", f, err)
		}
		if v {
			t.Errorf("Valid(%s): got true; the all-undefined valuation refutes it", f)
		}
	}
}

func TestEntails(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"P |- P", true},
		{"P, P -> Q |- Q", true},
		{"P & Q |- P", true},
		{"P |- P | Q", false}, // Q undefined infects the disjunction
		{"P, Q |- P & Q", true},
	}
	for _, tc := range tests {
		inf, err := parse.ParseInference(tc.src)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.src, err)
		}
		ok, err := Entails(inf.Premises, inf.Conclusion)
		if err != nil {
			t.Fatalf("Entails(%q): %v", tc.src, err)
		}
		if ok != tc.want {
			t.Errorf("Entails(%q): got %v, want %v", tc.src, ok, tc.want)
		}
	}
}

// Classically valid, weak Kleene invalid: nothing entails excluded middle
// from no premises.
func TestEntailsExcludedMiddleFails(t *testing.T) {
	f, err := parse.Formula("P | ~P")
	if err != nil {
		t.Fatal(err)
	}
	res, err := CheckInference(nil, f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid || res.Unknown {
		t.Fatalf("got %+v, want invalid", res)
	}
	if len(res.Countermodels) == 0 {
		t.Fatal("expected a countermodel")
	}
	if got := formula.Eval(f, res.Countermodels[0]); got == formula.True {
		t.Errorf("countermodel makes the conclusion true")
	}
}

func TestCheckInferenceCountermodel(t *testing.T) {
	inf, err := parse.ParseInference("P | Q |- P")
	if err != nil {
		t.Fatal(err)
	}
	res, err := CheckInference(inf.Premises, inf.Conclusion, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Fatal("P | Q does not entail P")
	}
	if len(res.Countermodels) == 0 {
		t.Fatal("expected a countermodel")
	}
	m := res.Countermodels[0]
	for _, p := range inf.Premises {
		if got := formula.Eval(p, m); got != formula.True {
			t.Errorf("countermodel gives premise %s the value %s", p, got)
		}
	}
	if got := formula.Eval(inf.Conclusion, m); got == formula.True {
		t.Error("countermodel makes the conclusion true")
	}
}

func TestCheckInferenceQuantified(t *testing.T) {
	inf, err := parse.ParseInference("D(a), forall x in D: P(x) |- P(a)")
	if err != nil {
		t.Fatal(err)
	}
	res, err := CheckInference(inf.Premises, inf.Conclusion, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Error("universal instantiation rejected")
	}

	// Without the membership premise the conclusion does not follow.
	inf, err = parse.ParseInference("forall x in D: P(x) |- P(a)")
	if err != nil {
		t.Fatal(err)
	}
	res, err = CheckInference(inf.Premises, inf.Conclusion, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("instantiation at a non-member accepted")
	}
}

func TestSolveUnknownOnStepLimit(t *testing.T) {
	f, err := parse.Formula("(P | Q) & (R | S)")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Solve(f, sign.T, &Options{MaxSteps: 1, NoOracle: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unknown {
		t.Errorf("got %+v, want unknown", res)
	}
	if res.Satisfiable {
		t.Error("a cut-off search may not report satisfiable")
	}
}

func TestSolveRejectsMalformed(t *testing.T) {
	_, err := Solve(formula.PredVar("P", "x"), sign.T, nil)
	if !errors.Is(err, formula.ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestFindModels(t *testing.T) {
	f, err := parse.Formula("P | Q")
	if err != nil {
		t.Fatal(err)
	}
	models, err := FindModels(f, sign.T, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 4 {
		t.Errorf("got %d models, want 4", len(models))
	}
	for _, m := range models {
		if got := formula.Eval(f, m); got != formula.True {
			t.Errorf("model %s gives %s, want true", m, got)
		}
	}

	models, err = FindModels(f, sign.T, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 2 {
		t.Errorf("limited: got %d models, want 2", len(models))
	}

	if _, err := FindModels(f, sign.T, 0, &Options{MaxSteps: 1}); !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

func TestSolveTrace(t *testing.T) {
	f, err := parse.Formula("P & Q")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Solve(f, sign.T, &Options{Trace: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Trace == nil || len(res.Trace.Steps) == 0 {
		t.Error("expected a recorded trace")
	}
	if res.Steps == 0 {
		t.Error("expected a step count")
	}
}
