// Package parse reads the textual formula and inference syntax and hands
// the core validated formula values. It is the boundary collaborator of
// the engine: nothing inside formula, sign or tableau depends on it.
//
// # Syntax
//
//	P & Q                conjunction        (also ∧)
//	P | Q                disjunction        (also ∨)
//	~P                   negation           (also ¬, !)
//	P -> Q               implication        (also →)
//	P <-> Q              biconditional      (also ↔)
//	forall x in D: R(x)  restricted ∀       (also ∀x∈D: R(x))
//	exists x in D: R(x)  restricted ∃       (also ∃x∈D: R(x))
//	P, Q |- R            inference          (also ⊢)
//
// Binding, loosest first: <->, ->, |, &, then ~ and quantifiers.
// Quantifiers bind tightly: forall x in D: R(x) & P conjoins the
// quantified formula with P; parenthesize the body to extend it.
// Implication associates to the right.
package parse
