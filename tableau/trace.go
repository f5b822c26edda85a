package tableau

import (
	"fmt"
	"strings"

	"github.com/trivalent/go-trivalent/sign"
)

// Rule names appearing in traces.
const (
	RuleExpand      = "expand"
	RuleBranch      = "branch"
	RuleWitness     = "witness"
	RuleInstantiate = "instantiate"
	RuleClose       = "close"
	RuleExhaust     = "exhaust"
)

// Step is one recorded rule application.
type Step struct {
	Branch      int
	Rule        string
	Input       *sign.Signed
	Added       []sign.Signed
	NewBranches []int
	Closure     *Closure
}

// Trace is the ordered record of a search, reproducible across runs with
// identical inputs and options.
type Trace struct {
	Steps []Step
}

func (t *Trace) String() string {
	var b strings.Builder
	for i, s := range t.Steps {
		fmt.Fprintf(&b, "%3d b%d %-11s", i, s.Branch, s.Rule)
		if s.Input != nil {
			fmt.Fprintf(&b, " %s", *s.Input)
		}
		if len(s.Added) > 0 {
			parts := make([]string, len(s.Added))
			for j, sf := range s.Added {
				parts[j] = sf.String()
			}
			fmt.Fprintf(&b, " => %s", strings.Join(parts, ", "))
		}
		if len(s.NewBranches) > 0 {
			fmt.Fprintf(&b, " -> branches %v", s.NewBranches)
		}
		if s.Closure != nil {
			fmt.Fprintf(&b, " ✕ %s / %s", s.Closure.A, s.Closure.B)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
