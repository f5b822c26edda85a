// Package tableau implements the signed-tableau decision procedure: an
// iterative work-list engine over an arena of branches, branch closure
// detection, the quantifier instantiation policy, and countermodel
// extraction from open, fully-expanded branches.
//
// # Algorithm
//
// A tableau starts with one branch holding the initial signed formulas
// (for entailment: premises signed T, conclusion signed T*). The engine
// repeatedly picks the first open branch with unexpanded work and applies
// the sign algebra's expansion rule: Linear results extend the branch,
// Branching results replace it with one clone per alternative, quantifier
// requests go through the witness-reuse policy. A branch closes as soon as
// two signed formulas on it assert disjoint value sets for one atomic
// formula. The search ends when every branch is closed (unsatisfiable),
// when an open branch is exhausted (satisfiable, the branch is a model
// witness), or when a step or branch ceiling is hit (unknown).
//
// Branch selection is deterministic (creation order, then insertion
// order) so traces are reproducible. Clones never share mutable state.
package tableau
