package formula

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed formula")

// ConstructError reports a formula that violates a construction invariant:
// free variables, or a quantifier shadowing an enclosing variable. It is
// raised at the API boundary, before any tableau work.
type ConstructError struct {
	Formula *Node
	Reason  string
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("%v: %s in %s", ErrMalformed, e.Reason, e.Formula)
}

func (e *ConstructError) Unwrap() error { return ErrMalformed }

// Check verifies the engine-entry invariants: no free variables anywhere
// and no quantifier shadowing. The engine assumes Check has passed.
func Check(n *Node) error {
	if vs := n.FreeVars(); len(vs) != 0 {
		return &ConstructError{Formula: n, Reason: fmt.Sprintf("free variables %v", vs)}
	}
	if v := findShadow(n, map[string]bool{}); v != "" {
		return &ConstructError{Formula: n, Reason: fmt.Sprintf("quantifier shadows variable %q", v)}
	}
	return nil
}

func findShadow(n *Node, bound map[string]bool) string {
	switch n.Kind {
	case NotKind:
		return findShadow(n.L, bound)
	case AndKind, OrKind, ImpliesKind, IffKind:
		if v := findShadow(n.L, bound); v != "" {
			return v
		}
		return findShadow(n.R, bound)
	case ForallKind, ExistsKind:
		if bound[n.Bound] {
			return n.Bound
		}
		bound[n.Bound] = true
		v := findShadow(n.Body, bound)
		bound[n.Bound] = false
		return v
	}
	return ""
}
