package trivalent

import (
	"errors"
	"log/slog"

	"github.com/trivalent/go-trivalent/classical"
	"github.com/trivalent/go-trivalent/formula"
	"github.com/trivalent/go-trivalent/sign"
	"github.com/trivalent/go-trivalent/tableau"
)

// ErrUnknown marks a search cut off by a resource ceiling: neither a
// proof nor a countermodel was found. It is distinct from construction
// errors, which reject malformed input before any search.
var ErrUnknown = errors.New("trivalent: undetermined, search bound exceeded")

// Options tune a single query. The zero value (or nil) asks for a plain
// yes/no answer with default ceilings.
type Options struct {
	MaxSteps    int
	MaxBranches int

	// FindAll exhausts the whole tableau and collects every
	// countermodel instead of stopping at the first witness.
	FindAll bool

	// Trace records the proof tree expansion.
	Trace bool

	// NoOracle disables the classical SAT fast path, forcing every
	// query through the tableau.
	NoOracle bool

	Log *slog.Logger
}

func (o *Options) engineOptions() tableau.Options {
	return tableau.Options{
		MaxSteps:    o.MaxSteps,
		MaxBranches: o.MaxBranches,
		Trace:       o.Trace,
		Log:         o.Log,
	}
}

// Result is the outcome of a satisfiability query.
type Result struct {
	// Satisfiable holds when some weak Kleene valuation gives the
	// formula a value the sign denotes. When Unknown is set neither
	// Satisfiable nor its negation was established.
	Satisfiable bool
	Unknown     bool
	Models      []*tableau.Model
	Trace       *tableau.Trace
	Steps       int
}

// InferenceResult is the outcome of an entailment check.
type InferenceResult struct {
	Valid         bool
	Unknown       bool
	Countermodels []*tableau.Model
	Trace         *tableau.Trace
	Steps         int
}

// Solve decides whether f can take a value denoted by s, returning a
// witnessing model per open branch found. Construction errors surface
// before any search.
func Solve(f *formula.Node, s sign.Sign, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := formula.Check(f); err != nil {
		return nil, err
	}

	// Classical fast path: for quantifier-free formulas, T- and
	// F-satisfiability coincide with classical satisfiability and
	// falsifiability (weak Kleene formulas are defined only when all
	// their atoms are).
	if !opts.NoOracle && !opts.FindAll && !opts.Trace && classical.QuantifierFree(f) {
		switch s {
		case sign.T, sign.F:
			return solveOracle(f, s)
		}
	}

	return solveTableau([]sign.Signed{{Sign: s, Formula: f}}, opts)
}

func solveOracle(f *formula.Node, s sign.Sign) (*Result, error) {
	o := classical.New()
	var (
		sat    bool
		assign map[string]bool
		err    error
	)
	if s == sign.T {
		sat, assign, err = o.Satisfiable(f)
	} else {
		sat, assign, err = o.Falsifiable(f)
	}
	if err != nil {
		return nil, err
	}
	res := &Result{Satisfiable: sat}
	if sat {
		res.Models = []*tableau.Model{assignmentModel(f, assign)}
	}
	return res, nil
}

func assignmentModel(f *formula.Node, assign map[string]bool) *tableau.Model {
	m := &tableau.Model{Atoms: map[string]formula.Value{}, Inds: formula.Individuals(f)}
	for key, v := range assign {
		if v {
			m.Atoms[key] = formula.True
		} else {
			m.Atoms[key] = formula.False
		}
	}
	return m
}

func solveTableau(initial []sign.Signed, opts *Options) (*Result, error) {
	eng := tableau.New(initial, opts.engineOptions())
	res := &Result{}
	for {
		b, err := eng.Next()
		if err != nil {
			res.Unknown = true
			break
		}
		if b == nil {
			break
		}
		res.Satisfiable = true
		res.Models = append(res.Models, tableau.Extract(b))
		if !opts.FindAll {
			break
		}
	}
	res.Trace = eng.Trace()
	res.Steps = eng.Steps()
	return res, nil
}

// Valid reports whether f is true under every weak Kleene valuation:
// no valuation may give it any value other than true.
func Valid(f *formula.Node) (bool, error) {
	if err := formula.Check(f); err != nil {
		return false, err
	}
	// Sound early exit: a classical countermodel is a weak Kleene
	// countermodel.
	if classical.QuantifierFree(f) {
		falsifiable, _, err := classical.New().Falsifiable(f)
		if err == nil && falsifiable {
			return false, nil
		}
	}
	res, err := Solve(f, sign.NotTrue, nil)
	if err != nil {
		return false, err
	}
	if res.Unknown {
		return false, ErrUnknown
	}
	return !res.Satisfiable, nil
}

// Entails reports whether the premises entail the conclusion: every
// valuation making all premises true makes the conclusion true.
func Entails(premises []*formula.Node, conclusion *formula.Node) (bool, error) {
	res, err := CheckInference(premises, conclusion, nil)
	if err != nil {
		return false, err
	}
	if res.Unknown {
		return false, ErrUnknown
	}
	return res.Valid, nil
}

// CheckInference runs the Definition 11 style tableau: premises signed T,
// conclusion signed T*; the inference is valid iff every branch closes.
// Open branches are returned as countermodels.
func CheckInference(premises []*formula.Node, conclusion *formula.Node, opts *Options) (*InferenceResult, error) {
	if opts == nil {
		opts = &Options{}
	}
	for _, p := range premises {
		if err := formula.Check(p); err != nil {
			return nil, err
		}
	}
	if err := formula.Check(conclusion); err != nil {
		return nil, err
	}

	// Sound early exit: a classical assignment making the premises true
	// and the conclusion false already refutes the entailment.
	if !opts.NoOracle && !opts.FindAll && !opts.Trace && quantifierFreeAll(premises, conclusion) {
		fs := append(append([]*formula.Node{}, premises...), formula.Not(conclusion))
		if sat, assign, err := classical.New().Satisfiable(fs...); err == nil && sat {
			all := conclusion
			for _, p := range premises {
				all = formula.And(all, p)
			}
			m := assignmentModel(all, assign)
			return &InferenceResult{Valid: false, Countermodels: []*tableau.Model{m}}, nil
		}
	}

	initial := make([]sign.Signed, 0, len(premises)+1)
	for _, p := range premises {
		initial = append(initial, sign.Signed{Sign: sign.T, Formula: p})
	}
	initial = append(initial, sign.Signed{Sign: sign.NotTrue, Formula: conclusion})

	res, err := solveTableau(initial, opts)
	if err != nil {
		return nil, err
	}
	return &InferenceResult{
		Valid:         !res.Satisfiable && !res.Unknown,
		Unknown:       res.Unknown,
		Countermodels: res.Models,
		Trace:         res.Trace,
		Steps:         res.Steps,
	}, nil
}

// FindModels collects up to limit models giving f a value denoted by s;
// limit <= 0 collects them all.
func FindModels(f *formula.Node, s sign.Sign, limit int, opts *Options) ([]*tableau.Model, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := formula.Check(f); err != nil {
		return nil, err
	}
	eng := tableau.New([]sign.Signed{{Sign: s, Formula: f}}, opts.engineOptions())
	var models []*tableau.Model
	for limit <= 0 || len(models) < limit {
		b, err := eng.Next()
		if err != nil {
			return models, ErrUnknown
		}
		if b == nil {
			break
		}
		models = append(models, tableau.Extract(b))
	}
	return models, nil
}

func quantifierFreeAll(premises []*formula.Node, conclusion *formula.Node) bool {
	for _, p := range premises {
		if !classical.QuantifierFree(p) {
			return false
		}
	}
	return classical.QuantifierFree(conclusion)
}
