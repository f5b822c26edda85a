package formula

import (
	"fmt"
	"strings"
)

// String renders n with Unicode connectives: ¬ ∧ ∨ → ↔ ∀ ∃. The parser
// accepts this rendering back, alongside the ASCII forms.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

// Binding strength, loosest first: ↔ → ∨ ∧ ¬/quantifiers.
func (n *Node) prec() int {
	switch n.Kind {
	case IffKind:
		return 1
	case ImpliesKind:
		return 2
	case OrKind:
		return 3
	case AndKind:
		return 4
	case NotKind, ForallKind, ExistsKind:
		return 5
	}
	return 6
}

func (n *Node) write(b *strings.Builder, outer int) {
	p := n.prec()
	paren := p < outer
	if paren {
		b.WriteByte('(')
	}
	switch n.Kind {
	case AtomKind:
		b.WriteString(n.Name)
	case PredKind:
		arg := n.Ind
		if n.ArgVar != "" {
			arg = n.ArgVar
		}
		fmt.Fprintf(b, "%s(%s)", n.Name, arg)
	case NotKind:
		b.WriteString("¬")
		n.L.write(b, p)
	case AndKind:
		n.L.write(b, p)
		b.WriteString(" ∧ ")
		n.R.write(b, p+1)
	case OrKind:
		n.L.write(b, p)
		b.WriteString(" ∨ ")
		n.R.write(b, p+1)
	case ImpliesKind:
		n.L.write(b, p+1)
		b.WriteString(" → ")
		n.R.write(b, p)
	case IffKind:
		n.L.write(b, p+1)
		b.WriteString(" ↔ ")
		n.R.write(b, p)
	case ForallKind:
		fmt.Fprintf(b, "∀%s∈%s: ", n.Bound, n.Domain)
		n.Body.write(b, p)
	case ExistsKind:
		fmt.Fprintf(b, "∃%s∈%s: ", n.Bound, n.Domain)
		n.Body.write(b, p)
	}
	if paren {
		b.WriteByte(')')
	}
}
