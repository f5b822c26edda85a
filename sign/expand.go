package sign

import (
	"github.com/trivalent/go-trivalent/formula"
)

// OutcomeKind discriminates the result of Expand.
type OutcomeKind uint8

const (
	// Terminal marks an atomic signed formula: it stays on the branch as
	// a constraint for closure checks and model extraction.
	Terminal OutcomeKind = iota
	// Linear adds every produced signed formula to the same branch.
	Linear
	// Branching spawns one branch clone per alternative.
	Branching
	// Quantifier defers to the instantiation policy.
	Quantifier
)

func (k OutcomeKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Linear:
		return "linear"
	case Branching:
		return "branching"
	case Quantifier:
		return "quantifier"
	}
	return "unknown"
}

// QuantRequest asks the tableau's policy to instantiate a quantifier under
// a concrete sign. Witness carries the immediate witness obligation
// (instance sign for one chosen individual, asserting domain membership);
// PerMember carries the sign every domain member's instance must take,
// applied once per eligible individual on the branch. Either may be unset.
//
// Derivation from the weak Kleene reading of ∀ as iterated ∧ and ∃ as
// iterated ∨ over the guarded members:
//
//	T:∀  — every member instance true:        PerMember=T
//	F:∀  — one member false, none undefined:  Witness=F, PerMember=D
//	U:∀  — some member undefined:             Witness=U
//	T:∃  — one member true, none undefined:   Witness=T, PerMember=D
//	F:∃  — every member instance false:       PerMember=F
//	U:∃  — some member undefined:             Witness=U
type QuantRequest struct {
	Signed     Signed // the quantified formula under a concrete sign
	Witness    Sign
	HasWitness bool
	PerMember  Sign
	HasPer     bool
}

// Outcome is the result of applying the expansion rule for a sign on a
// formula.
type Outcome struct {
	Kind   OutcomeKind
	Linear []Signed
	Alts   [][]Signed
	Quant  *QuantRequest
}

func linear(sfs ...Signed) Outcome {
	return Outcome{Kind: Linear, Linear: sfs}
}

func branching(alts ...[]Signed) Outcome {
	return Outcome{Kind: Branching, Alts: alts}
}

// Expand applies the weak Kleene expansion rule for sf. Meta-signs rewrite
// to a Branching over their concrete members before table dispatch, on
// compound and atomic formulas alike (closure checks run before expansion,
// so a meta-signed atom that contradicts the branch never gets this far).
func Expand(sf Signed) Outcome {
	s, f := sf.Sign, sf.Formula
	if s.IsMeta() {
		alts := make([][]Signed, 0, 2)
		for _, c := range s.Concrete() {
			alts = append(alts, []Signed{{Sign: c, Formula: f}})
		}
		return branching(alts...)
	}

	if f.IsAtomic() {
		return Outcome{Kind: Terminal}
	}

	switch f.Kind {
	case formula.NotKind:
		return expandNot(s, f)
	case formula.AndKind:
		return expandAnd(s, f)
	case formula.OrKind:
		return expandOr(s, f)
	case formula.ImpliesKind:
		return expandImplies(s, f)
	case formula.IffKind:
		return expandIff(s, f)
	case formula.ForallKind:
		return expandForall(s, sf)
	case formula.ExistsKind:
		return expandExists(s, sf)
	}
	panic("sign: Expand on unknown formula kind " + f.Kind.String())
}

// ¬A is the value-flip of A; Undefined is a fixed point.
func expandNot(s Sign, f *formula.Node) Outcome {
	a := f.L
	switch s {
	case T:
		return linear(Signed{F, a})
	case F:
		return linear(Signed{T, a})
	case U:
		return linear(Signed{U, a})
	}
	panic("sign: expandNot " + s.String())
}

// A∧B: true iff both true; false iff both defined and one false;
// undefined iff either undefined.
func expandAnd(s Sign, f *formula.Node) Outcome {
	a, b := f.L, f.R
	switch s {
	case T:
		return linear(Signed{T, a}, Signed{T, b})
	case F:
		return branching(
			[]Signed{{F, a}, {Defined, b}},
			[]Signed{{Defined, a}, {F, b}},
		)
	case U:
		return branching(
			[]Signed{{U, a}},
			[]Signed{{U, b}},
		)
	}
	panic("sign: expandAnd " + s.String())
}

// A∨B: false iff both false; true iff both defined and one true;
// undefined iff either undefined.
func expandOr(s Sign, f *formula.Node) Outcome {
	a, b := f.L, f.R
	switch s {
	case T:
		return branching(
			[]Signed{{T, a}, {Defined, b}},
			[]Signed{{Defined, a}, {T, b}},
		)
	case F:
		return linear(Signed{F, a}, Signed{F, b})
	case U:
		return branching(
			[]Signed{{U, a}},
			[]Signed{{U, b}},
		)
	}
	panic("sign: expandOr " + s.String())
}

// A→B is ¬A∨B under weak Kleene.
func expandImplies(s Sign, f *formula.Node) Outcome {
	a, b := f.L, f.R
	switch s {
	case T:
		return branching(
			[]Signed{{F, a}, {Defined, b}},
			[]Signed{{Defined, a}, {T, b}},
		)
	case F:
		return linear(Signed{T, a}, Signed{F, b})
	case U:
		return branching(
			[]Signed{{U, a}},
			[]Signed{{U, b}},
		)
	}
	panic("sign: expandImplies " + s.String())
}

// A↔B: defined iff both defined; then true iff they agree.
func expandIff(s Sign, f *formula.Node) Outcome {
	a, b := f.L, f.R
	switch s {
	case T:
		return branching(
			[]Signed{{T, a}, {T, b}},
			[]Signed{{F, a}, {F, b}},
		)
	case F:
		return branching(
			[]Signed{{T, a}, {F, b}},
			[]Signed{{F, a}, {T, b}},
		)
	case U:
		return branching(
			[]Signed{{U, a}},
			[]Signed{{U, b}},
		)
	}
	panic("sign: expandIff " + s.String())
}

func expandForall(s Sign, sf Signed) Outcome {
	req := &QuantRequest{Signed: sf}
	switch s {
	case T:
		req.PerMember, req.HasPer = T, true
	case F:
		req.Witness, req.HasWitness = F, true
		req.PerMember, req.HasPer = Defined, true
	case U:
		req.Witness, req.HasWitness = U, true
	default:
		panic("sign: expandForall " + s.String())
	}
	return Outcome{Kind: Quantifier, Quant: req}
}

func expandExists(s Sign, sf Signed) Outcome {
	req := &QuantRequest{Signed: sf}
	switch s {
	case T:
		req.Witness, req.HasWitness = T, true
		req.PerMember, req.HasPer = Defined, true
	case F:
		req.PerMember, req.HasPer = F, true
	case U:
		req.Witness, req.HasWitness = U, true
	default:
		panic("sign: expandExists " + s.String())
	}
	return Outcome{Kind: Quantifier, Quant: req}
}
