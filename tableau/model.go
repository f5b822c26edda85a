package tableau

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trivalent/go-trivalent/debug"
	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/sign"
)

// Model is a finite three-valued structure read off an open-exhausted
// branch: a truth value per mentioned atom plus the branch's individuals.
// Atoms it does not mention default to Undefined, the least committal
// value. Model implements formula.Valuation.
type Model struct {
	Atoms map[string]formula.Value
	Inds  []string
}

func (m *Model) Value(atom string) formula.Value {
	return m.Atoms[atom] // zero value is Undefined
}

func (m *Model) Individuals() []string { return m.Inds }

func (m *Model) String() string {
	keys := make([]string, 0, len(m.Atoms))
	for k := range m.Atoms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%s", k, m.Atoms[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Extract reads a model from an open-exhausted branch. Every atomic
// formula on the branch carries exactly one concrete sign (meta-signs
// have been rewritten, contradictions would have closed the branch), and
// that sign dictates the atom's value. It panics on branches in any other
// state: extracting from an unfinished branch is a programming error that
// would silently corrupt results.
func Extract(b *Branch) *Model {
	if b.status != OpenExhausted {
		panic("tableau: Extract on " + b.status.String() + " branch")
	}
	m := &Model{Atoms: map[string]formula.Value{}, Inds: b.Individuals()}
	for _, ent := range b.entries {
		f := ent.sf.Formula
		if !f.IsAtomic() || ent.sf.Sign.IsMeta() {
			continue
		}
		switch ent.sf.Sign {
		case sign.T:
			m.Atoms[f.Key()] = formula.True
		case sign.F:
			m.Atoms[f.Key()] = formula.False
		case sign.U:
			m.Atoms[f.Key()] = formula.Undefined
		}
	}
	if debug.Model() {
		debug.Logf("extract branch=%d model=%s\n", b.ID, m)
	}
	return m
}

// Verify re-evaluates every signed formula on the branch against m and
// reports the first one whose weak Kleene value falls outside its sign's
// denotation set. A nil return is the extraction guarantee: the model
// satisfies the whole branch.
func Verify(m *Model, b *Branch) error {
	for _, ent := range b.entries {
		v := formula.Eval(ent.sf.Formula, m)
		if !ent.sf.Sign.Denotes(v) {
			return fmt.Errorf("model %s gives %s the value %s, outside sign %s",
				m, ent.sf.Formula, v, ent.sf.Sign)
		}
	}
	return nil
}
