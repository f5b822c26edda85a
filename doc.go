// Package trivalent is a decision procedure for weak Kleene three-valued
// logic with restricted quantification, built on a signed semantic
// tableau.
//
// The façade answers four kinds of question:
//
//   - Solve: can this formula take a value denoted by this sign, and
//     under which models?
//   - Valid: is the formula true under every valuation?
//   - Entails / CheckInference: do these premises force this conclusion,
//     and if not, which countermodels witness the failure?
//   - FindModels: enumerate models for a signed formula.
//
// The sub-packages do the work: formula (hash-consed AST and weak Kleene
// evaluation), sign (the sign algebra and expansion rules), tableau (the
// branch engine, quantifier policy and model extraction), classical (a
// gini-backed two-valued fast path), and parse (the textual boundary).
package trivalent
