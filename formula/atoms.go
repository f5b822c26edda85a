package formula

import "sort"

// AtomKeys returns the valuation keys of the atoms and ground predicate
// instances occurring in n, sorted and de-duplicated. Open predicate
// occurrences under quantifiers are skipped (their instances only exist
// after substitution).
func AtomKeys(n *Node) []string {
	set := map[string]bool{}
	walkAtoms(n, func(a *Node) {
		set[a.Key()] = true
	})
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Individuals returns the individual constants mentioned in n, sorted.
func Individuals(n *Node) []string {
	set := map[string]bool{}
	walkAtoms(n, func(a *Node) {
		if a.Kind == PredKind {
			set[a.Ind] = true
		}
	})
	inds := make([]string, 0, len(set))
	for i := range set {
		inds = append(inds, i)
	}
	sort.Strings(inds)
	return inds
}

func walkAtoms(n *Node, fn func(*Node)) {
	switch n.Kind {
	case AtomKind:
		fn(n)
	case PredKind:
		if n.ArgVar == "" {
			fn(n)
		}
	case NotKind:
		walkAtoms(n.L, fn)
	case AndKind, OrKind, ImpliesKind, IffKind:
		walkAtoms(n.L, fn)
		walkAtoms(n.R, fn)
	case ForallKind, ExistsKind:
		walkAtoms(n.Body, fn)
	}
}
