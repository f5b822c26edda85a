package tableau

import (
	"strconv"

	"github.com/trivalent/go-trivalent/debug"
	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/sign"
)

// Quantifier instantiation policy.
//
// An individual is eligible for a quantifier over domain D when the
// branch asserts T:D(i); instantiating through the guard is what keeps
// quantification restricted.
//
// Universal obligations (the PerMember part of a request) never mint
// individuals: they are re-applied once per eligible individual, present
// or future, and a branch does not exhaust while one is pending. Witness
// obligations assert existence: they reuse an eligible individual when
// one exists (the branch may already satisfy the instance, making the
// obligation free), and mint a fresh individual only when no eligible
// individual exists. Fresh witnesses carry their own T:D(w) membership
// assertion. This reuse-before-fresh policy is the termination heuristic:
// branch growth is bounded by the individuals introduced by witness
// obligations plus those mentioned in the input.

func (e *Engine) applyQuantifier(b *Branch, req *sign.QuantRequest) {
	q := req.Signed.Formula
	step := Step{Branch: b.ID, Rule: RuleWitness, Input: &req.Signed}

	if req.HasWitness {
		w, minted := e.chooseWitness(b, req)
		inst := sign.Signed{Sign: req.Witness, Formula: formula.Subst(q.Body, q.Bound, w)}
		var sfs []sign.Signed
		if minted {
			sfs = append(sfs, sign.Signed{Sign: sign.T, Formula: formula.Pred(q.Domain, w)})
		}
		sfs = append(sfs, inst)
		if debug.Inst() {
			debug.Logf("witness branch=%d %s with %s (fresh=%v)\n", b.ID, req.Signed, w, minted)
		}
		step.Added = e.addAll(b, sfs)
		step.Closure = b.closure
	}

	if req.HasPer && b.status != Closed {
		b.universals = append(b.universals, &universal{
			origin:  req.Signed,
			domain:  q.Domain,
			bound:   q.Bound,
			body:    q.Body,
			per:     req.PerMember,
			applied: map[string]bool{},
		})
	}

	e.record(step)
}

// chooseWitness picks the individual a witness obligation instantiates,
// minting a fresh one only when no branch individual satisfies the bound.
func (e *Engine) chooseWitness(b *Branch, req *sign.QuantRequest) (ind string, minted bool) {
	q := req.Signed.Formula
	eligible := b.eligible[q.Domain]
	// Prefer an eligible individual whose instance is already on the
	// branch under the required sign: the obligation is then free.
	for _, i := range eligible {
		inst := sign.Signed{Sign: req.Witness, Formula: formula.Subst(q.Body, q.Bound, i)}
		if b.present[inst] {
			return i, false
		}
	}
	if len(eligible) > 0 {
		return eligible[0], false
	}
	e.fresh++
	return "#" + strconv.Itoa(e.fresh), true
}

// instantiate applies one pending universal obligation to one eligible
// individual.
func (e *Engine) instantiate(b *Branch, u *universal, ind string) {
	u.applied[ind] = true
	inst := sign.Signed{Sign: u.per, Formula: formula.Subst(u.body, u.bound, ind)}
	if debug.Inst() {
		debug.Logf("instantiate branch=%d %s at %s -> %s\n", b.ID, u.origin, ind, inst)
	}
	var added []sign.Signed
	if b.add(inst) {
		added = append(added, inst)
	}
	e.record(Step{Branch: b.ID, Rule: RuleInstantiate, Input: &u.origin, Added: added, Closure: b.closure})
}
