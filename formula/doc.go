// Package formula defines the immutable, hash-consed abstract syntax of
// weak Kleene formulas with restricted quantification.
//
// # Structure
//
// A formula is one of:
//
//   - an atom P (a named, arity-0 proposition)
//   - a ground predicate instance R(a) over an individual constant
//   - a variable occurrence x (only inside quantifier bodies)
//   - a connective: ¬, ∧, ∨, →, ↔
//   - a restricted quantifier: ∀x∈D.φ or ∃x∈D.φ, where D is a unary
//     domain predicate bounding the variable
//
// Formulas are interned: two structurally equal constructions return the
// same *Node, so equality is pointer equality and branches of a tableau
// share sub-formulas without copying.
//
// # Truth values
//
// The logic is three-valued with values True, False and Undefined under
// weak Kleene semantics: any Undefined operand makes the whole compound
// Undefined. Eval implements these tables and is used by model
// re-checking and by the exhaustive-enumeration tests.
package formula
