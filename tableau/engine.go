package tableau

import (
	"log/slog"

	"github.com/trivalent/go-trivalent/debug"
	"github.com/trivalent/go-trivalent/sign"
)

const (
	DefaultMaxSteps    = 10000
	DefaultMaxBranches = 2000
)

// Options bound and instrument a single tableau search.
type Options struct {
	// MaxSteps caps rule applications; MaxBranches caps branches ever
	// created. Zero means the package default. Hitting either ceiling
	// surfaces as ErrStepLimit/ErrBranchLimit, never as a wrong answer.
	MaxSteps    int
	MaxBranches int

	// Trace records every rule application for later rendering.
	Trace bool

	// Log, when set, receives step-level events.
	Log *slog.Logger
}

// Engine expands one tableau. It is not safe for concurrent use; separate
// searches use separate engines and share nothing mutable (formula nodes
// are immutable and may be shared freely).
type Engine struct {
	opts Options

	// branches is the arena; queue holds the ids of live open branches
	// in creation order.
	branches []*Branch
	queue    []int

	steps    int
	fresh    int
	created  int
	limitErr error
	trace    *Trace
}

// New builds an engine over the initial signed formulas. The root branch
// may already be closed (e.g. T:P with T*:P among the initial set).
func New(initial []sign.Signed, opts Options) *Engine {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = DefaultMaxSteps
	}
	if opts.MaxBranches <= 0 {
		opts.MaxBranches = DefaultMaxBranches
	}
	e := &Engine{opts: opts, created: 1}
	if opts.Trace {
		e.trace = &Trace{}
	}
	root := newBranch(0)
	e.branches = []*Branch{root}
	for _, sf := range initial {
		root.add(sf)
		if root.status == Closed {
			e.record(Step{Branch: 0, Rule: RuleClose, Closure: root.closure})
			break
		}
	}
	if root.status != Closed {
		e.queue = []int{0}
	}
	return e
}

// Branches exposes the full arena, including closed and replaced
// branches, for trace rendering and countermodel collection.
func (e *Engine) Branches() []*Branch { return e.branches }

// Trace returns the recorded trace, or nil when tracing was off.
func (e *Engine) Trace() *Trace { return e.trace }

// Steps returns the number of rule applications so far.
func (e *Engine) Steps() int { return e.steps }

// Next runs the work-list until the next open-exhausted branch is found
// and returns it. It returns (nil, nil) once every remaining branch is
// closed, and (nil, ErrStepLimit) or (nil, ErrBranchLimit) when a ceiling
// cuts the search off. Callers wanting a single yes/no answer stop after
// the first branch; callers wanting all countermodels drain it.
func (e *Engine) Next() (*Branch, error) {
	for len(e.queue) > 0 {
		if e.limitErr != nil {
			return nil, e.limitErr
		}
		b := e.branches[e.queue[0]]
		switch b.status {
		case Closed:
			panic("tableau: closed branch on work queue")
		case OpenExhausted:
			panic("tableau: exhausted branch on work queue")
		}

		idx := b.nextUnexpanded()
		if idx < 0 {
			if u, ind := b.pendingUniversal(); u != nil {
				if err := e.countStep(); err != nil {
					return nil, err
				}
				e.instantiate(b, u, ind)
				if b.status == Closed {
					e.pop()
				}
				continue
			}
			// No connective work, no pending quantifier obligation:
			// the branch stands as a model witness.
			b.status = OpenExhausted
			e.pop()
			e.record(Step{Branch: b.ID, Rule: RuleExhaust})
			return b, nil
		}

		if err := e.countStep(); err != nil {
			return nil, err
		}
		e.expandEntry(b, idx)
		if b.status == Closed {
			e.pop()
		}
	}
	// The queue can drain right as a ceiling is hit (branchOut stops
	// creating clones); that is still a cut-off search, not a refutation.
	if e.limitErr != nil {
		return nil, e.limitErr
	}
	return nil, nil
}

// Exhausted reports whether the search space is used up: nothing left on
// the queue. Combined with whether Next ever yielded a branch this
// distinguishes satisfiable from unsatisfiable.
func (e *Engine) Exhausted() bool { return len(e.queue) == 0 }

func (e *Engine) pop() {
	e.queue = e.queue[1:]
}

func (e *Engine) countStep() error {
	e.steps++
	if e.steps > e.opts.MaxSteps {
		e.limitErr = ErrStepLimit
		return ErrStepLimit
	}
	return nil
}

func (e *Engine) expandEntry(b *Branch, idx int) {
	ent := &b.entries[idx]
	ent.expanded = true
	sf := ent.sf
	out := sign.Expand(sf)
	if debug.Expand() {
		debug.Logf("expand branch=%d %s -> %s\n", b.ID, sf, out.Kind)
	}
	if e.opts.Log != nil {
		e.opts.Log.Debug("expand", "branch", b.ID, "input", sf.String(), "outcome", out.Kind.String())
	}

	switch out.Kind {
	case sign.Terminal:
		// nextUnexpanded already skips terminals; nothing to do.

	case sign.Linear:
		added := e.addAll(b, out.Linear)
		e.record(Step{Branch: b.ID, Rule: RuleExpand, Input: &sf, Added: added, Closure: b.closure})

	case sign.Branching:
		e.branchOut(b, sf, out.Alts)

	case sign.Quantifier:
		e.applyQuantifier(b, out.Quant)
	}
}

// addAll appends signed formulas to b, stopping at closure. It returns
// the formulas actually added.
func (e *Engine) addAll(b *Branch, sfs []sign.Signed) []sign.Signed {
	var added []sign.Signed
	for _, sf := range sfs {
		if b.add(sf) {
			added = append(added, sf)
		}
		if b.status == Closed {
			if debug.Close() {
				debug.Logf("close branch=%d on %s / %s\n", b.ID, b.closure.A, b.closure.B)
			}
			break
		}
	}
	return added
}

// branchOut replaces b with one clone per alternative. Clones are
// disjoint deep copies; the original leaves the queue and is kept in the
// arena only for trace parentage.
func (e *Engine) branchOut(b *Branch, input sign.Signed, alts [][]sign.Signed) {
	e.pop()
	step := Step{Branch: b.ID, Rule: RuleBranch, Input: &input}
	for _, alt := range alts {
		e.created++
		if e.created > e.opts.MaxBranches {
			e.limitErr = ErrBranchLimit
			return
		}
		cl := b.clone(len(e.branches))
		e.branches = append(e.branches, cl)
		step.NewBranches = append(step.NewBranches, cl.ID)
		e.addAll(cl, alt)
		if cl.status != Closed {
			e.queue = append(e.queue, cl.ID)
		} else {
			e.record(Step{Branch: cl.ID, Rule: RuleClose, Closure: cl.closure})
		}
	}
	e.record(step)
}

func (e *Engine) record(s Step) {
	if e.trace == nil {
		return
	}
	e.trace.Steps = append(e.trace.Steps, s)
}
