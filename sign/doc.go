// Package sign implements the sign algebra of the signed tableau: the six
// signs, their denotation sets over the three truth values, the
// contradiction lattice, and the expansion rules that reduce a sign on a
// compound formula to signs on its sub-formulas.
//
// # Signs
//
// Three concrete signs assert a definite value: T ("is true"), F ("is
// false"), U ("is undefined"). Three meta-signs assert membership in a
// value set without committing to one member: NotTrue {F,U}, NotFalse
// {T,U}, Defined {T,F}. Meta-signs exist for proof search: an entailment
// check signs the conclusion NotTrue, and several weak Kleene rules need
// Defined to pin operands away from the infectious Undefined value.
//
// # Expansion
//
// Expand returns one of four outcomes: Terminal (atomic, nothing to do),
// Linear (all produced signed formulas extend the same branch), Branching
// (one branch clone per alternative), or Quantifier (deferred to the
// tableau's instantiation policy, which alone knows the branch's
// individuals). A meta-sign on any formula first rewrites to a Branching
// over the concrete members of its denotation set.
package sign
