package sign

import (
	"errors"
	"fmt"

	"github.com/trivalent/go-trivalent/formula"
)

var ErrUnknownSign = errors.New("unknown sign")

// Sign tags a formula with an assertion about its truth value.
type Sign uint8

const (
	T Sign = iota // is true
	F             // is false
	U             // is undefined
	NotTrue       // is some value other than true: {F, U}
	NotFalse      // is some value other than false: {T, U}
	Defined       // is a classical value: {T, F}
)

var names = [...]string{"T", "F", "U", "T*", "F*", "D"}

func (s Sign) String() string {
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Sign(%d)", uint8(s))
}

// Parse maps the textual sign names (and a few aliases) to Signs.
func Parse(name string) (Sign, error) {
	switch name {
	case "T", "t", "true":
		return T, nil
	case "F", "f", "false":
		return F, nil
	case "U", "u", "undefined", "error":
		return U, nil
	case "T*", "not-true", "nt":
		return NotTrue, nil
	case "F*", "not-false", "nf":
		return NotFalse, nil
	case "D", "defined", "def":
		return Defined, nil
	}
	return T, fmt.Errorf("%w: %q", ErrUnknownSign, name)
}

var denotations = [...][]formula.Value{
	T:        {formula.True},
	F:        {formula.False},
	U:        {formula.Undefined},
	NotTrue:  {formula.False, formula.Undefined},
	NotFalse: {formula.True, formula.Undefined},
	Defined:  {formula.True, formula.False},
}

// Set returns the truth values s denotes.
func (s Sign) Set() []formula.Value {
	return denotations[s]
}

// Denotes reports whether v is among the values s asserts.
func (s Sign) Denotes(v formula.Value) bool {
	for _, w := range denotations[s] {
		if w == v {
			return true
		}
	}
	return false
}

// IsMeta reports whether s denotes more than one value.
func (s Sign) IsMeta() bool { return len(denotations[s]) > 1 }

// Concrete returns the concrete signs covering s's denotation set; for a
// concrete sign that is s itself. This is the complement-set rewrite used
// before truth-table dispatch.
func (s Sign) Concrete() []Sign {
	switch s {
	case T, F, U:
		return []Sign{s}
	case NotTrue:
		return []Sign{F, U}
	case NotFalse:
		return []Sign{T, U}
	case Defined:
		return []Sign{T, F}
	}
	panic("sign: Concrete on invalid sign")
}

// Contradicts reports whether s and o cannot both hold of one formula:
// their denotation sets are disjoint.
func (s Sign) Contradicts(o Sign) bool {
	for _, v := range denotations[s] {
		if o.Denotes(v) {
			return false
		}
	}
	return true
}

// Refines reports whether s's denotation set is a subset of o's, i.e.
// asserting s is at least as strong as asserting o.
func (s Sign) Refines(o Sign) bool {
	for _, v := range denotations[s] {
		if !o.Denotes(v) {
			return false
		}
	}
	return true
}

// ForValue returns the concrete sign asserting exactly v.
func ForValue(v formula.Value) Sign {
	switch v {
	case formula.True:
		return T
	case formula.False:
		return F
	}
	return U
}

// Signed pairs a sign with a formula; it is the unit of work on a tableau
// branch.
type Signed struct {
	Sign    Sign
	Formula *formula.Node
}

func (sf Signed) String() string {
	return sf.Sign.String() + ":" + sf.Formula.String()
}

// Contradicts reports whether two signed formulas form a contradiction
// pair: the same formula under signs with disjoint denotations.
func (sf Signed) Contradicts(other Signed) bool {
	return sf.Formula == other.Formula && sf.Sign.Contradicts(other.Sign)
}
