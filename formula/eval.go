package formula

// Value is one of the three truth values of weak Kleene logic.
type Value uint8

const (
	Undefined Value = iota
	False
	True
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	case Undefined:
		return "undefined"
	}
	return "invalid"
}

// Defined reports whether v is a classical truth value.
func (v Value) Defined() bool { return v != Undefined }

// Values lists the truth values in a fixed order, for enumeration.
var Values = []Value{True, False, Undefined}

// A Valuation assigns truth values to atomic formulas (keyed per Node.Key)
// over a finite universe of individuals. Atoms it does not mention take
// Undefined.
type Valuation interface {
	Value(atom string) Value
	Individuals() []string
}

// Eval computes the weak Kleene value of a closed formula under v. Any
// Undefined operand makes a compound Undefined; restricted quantifiers
// range over the individuals i whose domain atom D(i) is True under v
// (the guard must designate for an individual to count as a member).
// An empty range makes a universal True and an existential False.
func Eval(n *Node, v Valuation) Value {
	switch n.Kind {
	case AtomKind:
		return v.Value(n.Key())
	case PredKind:
		if n.ArgVar != "" {
			panic("formula: Eval on open formula " + n.String())
		}
		return v.Value(n.Key())
	case NotKind:
		return not3(Eval(n.L, v))
	case AndKind:
		return and3(Eval(n.L, v), Eval(n.R, v))
	case OrKind:
		return or3(Eval(n.L, v), Eval(n.R, v))
	case ImpliesKind:
		return or3(not3(Eval(n.L, v)), Eval(n.R, v))
	case IffKind:
		return iff3(Eval(n.L, v), Eval(n.R, v))
	case ForallKind:
		res := True
		for _, i := range v.Individuals() {
			if v.Value(n.Domain+"("+i+")") != True {
				continue
			}
			res = and3(res, Eval(Subst(n.Body, n.Bound, i), v))
		}
		return res
	case ExistsKind:
		res := False
		for _, i := range v.Individuals() {
			if v.Value(n.Domain+"("+i+")") != True {
				continue
			}
			res = or3(res, Eval(Subst(n.Body, n.Bound, i), v))
		}
		return res
	}
	panic("formula: Eval on unknown kind")
}

func not3(a Value) Value {
	switch a {
	case True:
		return False
	case False:
		return True
	}
	return Undefined
}

func and3(a, b Value) Value {
	if a == Undefined || b == Undefined {
		return Undefined
	}
	if a == True && b == True {
		return True
	}
	return False
}

func or3(a, b Value) Value {
	if a == Undefined || b == Undefined {
		return Undefined
	}
	if a == True || b == True {
		return True
	}
	return False
}

func iff3(a, b Value) Value {
	if a == Undefined || b == Undefined {
		return Undefined
	}
	if a == b {
		return True
	}
	return False
}
