package formula

import (
	"sort"
)

type Kind uint8

const (
	AtomKind Kind = iota
	PredKind
	NotKind
	AndKind
	OrKind
	ImpliesKind
	IffKind
	ForallKind
	ExistsKind
)

func (k Kind) String() string {
	switch k {
	case AtomKind:
		return "atom"
	case PredKind:
		return "pred"
	case NotKind:
		return "not"
	case AndKind:
		return "and"
	case OrKind:
		return "or"
	case ImpliesKind:
		return "implies"
	case IffKind:
		return "iff"
	case ForallKind:
		return "forall"
	case ExistsKind:
		return "exists"
	}
	return "unknown"
}

// Node is an interned formula. Nodes are immutable after construction and
// shared: structurally equal constructions yield the same pointer, so
// comparing two formulas is pointer comparison.
type Node struct {
	Kind Kind

	// Name is the atom name for AtomKind and the predicate name for
	// PredKind.
	Name string

	// Ind is the individual constant argument of a ground predicate
	// instance; ArgVar is the variable argument of a predicate occurring
	// under a quantifier. Exactly one of the two is set for PredKind.
	Ind    string
	ArgVar string

	// L, R are connective children. NotKind uses L only.
	L, R *Node

	// Bound, Domain, Body describe quantifiers.
	Bound  string
	Domain string
	Body   *Node

	hash uint64
}

// Atom constructs (and interns) an arity-0 proposition.
func Atom(name string) *Node {
	return intern(&Node{Kind: AtomKind, Name: name})
}

// Pred constructs a ground predicate instance name(ind).
func Pred(name, ind string) *Node {
	return intern(&Node{Kind: PredKind, Name: name, Ind: ind})
}

// PredVar constructs a predicate applied to a quantifier variable. It only
// makes sense inside a quantifier body binding v.
func PredVar(name, v string) *Node {
	return intern(&Node{Kind: PredKind, Name: name, ArgVar: v})
}

func Not(a *Node) *Node {
	return intern(&Node{Kind: NotKind, L: a})
}

func And(l, r *Node) *Node {
	return intern(&Node{Kind: AndKind, L: l, R: r})
}

func Or(l, r *Node) *Node {
	return intern(&Node{Kind: OrKind, L: l, R: r})
}

func Implies(l, r *Node) *Node {
	return intern(&Node{Kind: ImpliesKind, L: l, R: r})
}

func Iff(l, r *Node) *Node {
	return intern(&Node{Kind: IffKind, L: l, R: r})
}

// Forall constructs the restricted universal ∀v∈domain.body.
func Forall(v, domain string, body *Node) *Node {
	return intern(&Node{Kind: ForallKind, Bound: v, Domain: domain, Body: body})
}

// Exists constructs the restricted existential ∃v∈domain.body.
func Exists(v, domain string, body *Node) *Node {
	return intern(&Node{Kind: ExistsKind, Bound: v, Domain: domain, Body: body})
}

// IsAtomic reports whether n carries no further expansion work: atoms and
// ground predicate instances.
func (n *Node) IsAtomic() bool {
	return n.Kind == AtomKind || (n.Kind == PredKind && n.ArgVar == "")
}

// Key returns the valuation key of an atomic formula: "P" for atoms,
// "R(a)" for ground predicate instances. It panics on non-atomic nodes.
func (n *Node) Key() string {
	switch {
	case n.Kind == AtomKind:
		return n.Name
	case n.Kind == PredKind && n.ArgVar == "":
		return n.Name + "(" + n.Ind + ")"
	}
	panic("formula: Key on non-atomic node " + n.String())
}

// FreeVars returns the variable names occurring free in n, sorted.
func (n *Node) FreeVars() []string {
	set := map[string]bool{}
	n.freeVars(map[string]bool{}, set)
	if len(set) == 0 {
		return nil
	}
	vs := make([]string, 0, len(set))
	for v := range set {
		vs = append(vs, v)
	}
	sort.Strings(vs)
	return vs
}

func (n *Node) freeVars(bound, free map[string]bool) {
	switch n.Kind {
	case AtomKind:
	case PredKind:
		if n.ArgVar != "" && !bound[n.ArgVar] {
			free[n.ArgVar] = true
		}
	case NotKind:
		n.L.freeVars(bound, free)
	case AndKind, OrKind, ImpliesKind, IffKind:
		n.L.freeVars(bound, free)
		n.R.freeVars(bound, free)
	case ForallKind, ExistsKind:
		was := bound[n.Bound]
		bound[n.Bound] = true
		n.Body.freeVars(bound, free)
		bound[n.Bound] = was
	}
}

// Subst substitutes the individual constant ind for the variable v
// throughout n, re-interning along the way. Check rejects variable
// shadowing, so no capture analysis is needed.
func Subst(n *Node, v, ind string) *Node {
	switch n.Kind {
	case AtomKind:
		return n
	case PredKind:
		if n.ArgVar == v {
			return Pred(n.Name, ind)
		}
		return n
	case NotKind:
		return Not(Subst(n.L, v, ind))
	case AndKind:
		return And(Subst(n.L, v, ind), Subst(n.R, v, ind))
	case OrKind:
		return Or(Subst(n.L, v, ind), Subst(n.R, v, ind))
	case ImpliesKind:
		return Implies(Subst(n.L, v, ind), Subst(n.R, v, ind))
	case IffKind:
		return Iff(Subst(n.L, v, ind), Subst(n.R, v, ind))
	case ForallKind:
		if n.Bound == v {
			return n
		}
		return Forall(n.Bound, n.Domain, Subst(n.Body, v, ind))
	case ExistsKind:
		if n.Bound == v {
			return n
		}
		return Exists(n.Bound, n.Domain, Subst(n.Body, v, ind))
	}
	panic("formula: Subst on unknown kind")
}
