// Package classical is a two-valued shadow of the three-valued solver,
// backed by the gini SAT solver.
//
// Under weak Kleene semantics a formula evaluates to a defined value only
// when every atom occurring in it is defined, so a quantifier-free
// formula is T-satisfiable (resp. F-satisfiable) in the three-valued
// sense exactly when it is classically satisfiable (resp. falsifiable).
// The façade uses this as a fast path for T/F queries and as a sound
// early exit for validity and entailment: any classical countermodel is
// already a three-valued countermodel.
package classical
