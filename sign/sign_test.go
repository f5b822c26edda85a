package sign

import (
	"errors"
	"testing"

	"github.com/trivalent/go-trivalent/formula"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Sign
	}{
		{"T", T}, {"t", T}, {"true", T},
		{"F", F}, {"false", F},
		{"U", U}, {"undefined", U}, {"error", U},
		{"T*", NotTrue}, {"not-true", NotTrue}, {"nt", NotTrue},
		{"F*", NotFalse}, {"not-false", NotFalse},
		{"D", Defined}, {"def", Defined},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q): got %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := Parse("bogus"); !errors.Is(err, ErrUnknownSign) {
		t.Errorf("Parse(bogus): got %v, want ErrUnknownSign", err)
	}
}

func TestContradicts(t *testing.T) {
	tests := []struct {
		a, b Sign
		want bool
	}{
		{T, F, true},
		{T, U, true},
		{T, NotTrue, true},
		{T, NotFalse, false},
		{T, Defined, false},
		{F, NotFalse, true},
		{U, Defined, true},
		{NotTrue, NotFalse, false}, // both denote U
		{NotTrue, Defined, false}, // both denote F
		{T, T, false},
	}
	for _, tc := range tests {
		if got := tc.a.Contradicts(tc.b); got != tc.want {
			t.Errorf("%s.Contradicts(%s): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Contradicts(tc.a); got != tc.want {
			t.Errorf("%s.Contradicts(%s): got %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestRefines(t *testing.T) {
	tests := []struct {
		a, b Sign
		want bool
	}{
		{T, Defined, true},
		{F, Defined, true},
		{U, Defined, false},
		{F, NotTrue, true},
		{U, NotTrue, true},
		{T, NotTrue, false},
		{NotTrue, NotTrue, true},
		{NotTrue, F, false},
		{Defined, T, false},
	}
	for _, tc := range tests {
		if got := tc.a.Refines(tc.b); got != tc.want {
			t.Errorf("%s.Refines(%s): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDenotesAndConcrete(t *testing.T) {
	for _, s := range []Sign{T, F, U, NotTrue, NotFalse, Defined} {
		for _, v := range formula.Values {
			inConcrete := false
			for _, c := range s.Concrete() {
				if c == ForValue(v) {
					inConcrete = true
				}
			}
			if s.Denotes(v) != inConcrete {
				t.Errorf("%s: Denotes(%s)=%v disagrees with Concrete()", s, v, s.Denotes(v))
			}
		}
		if s.IsMeta() != (len(s.Set()) > 1) {
			t.Errorf("%s: IsMeta disagrees with Set", s)
		}
	}
}

func TestSignedContradicts(t *testing.T) {
	p, q := formula.Atom("P"), formula.Atom("Q")
	a := Signed{Sign: T, Formula: p}
	if !a.Contradicts(Signed{Sign: NotTrue, Formula: p}) {
		t.Error("T:P vs T*:P should contradict")
	}
	if a.Contradicts(Signed{Sign: F, Formula: q}) {
		t.Error("signs on distinct formulas never contradict")
	}
	if a.Contradicts(Signed{Sign: Defined, Formula: p}) {
		t.Error("T:P vs D:P should not contradict")
	}
}
