package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	trivalent "github.com/trivalent/go-trivalent"
	"github.com/trivalent/go-trivalent/parse"
	"github.com/trivalent/go-trivalent/sign"
)

type SolveConfig struct {
	*MainConfig
	Sign  string `cli:"name=sign desc='sign to check: T, F, U, not-true, not-false, defined' default=T"`
	Trace bool   `cli:"name=trace desc='print the tableau trace'"`

	Solve *cli.Command
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg, Sign: "T"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Solve, "solve").
		WithAliases("s").
		WithSynopsis("solve [-sign S] [-trace] <formula>").
		WithDescription("Decide satisfiability of a signed formula and show a model.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return triSolve(cfg, cc, args)
		})
}

func triSolve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: solve requires a formula argument", cli.ErrUsage)
	}
	f, err := parse.Formula(strings.Join(args, " "))
	if err != nil {
		return err
	}
	sg, err := sign.Parse(cfg.Sign)
	if err != nil {
		return err
	}
	res, err := trivalent.Solve(f, sg, &trivalent.Options{
		MaxSteps:    cfg.Steps,
		MaxBranches: cfg.Branches,
		Trace:       cfg.Trace,
		NoOracle:    cfg.NoOracle,
		Log:         theLog,
	})
	if err != nil {
		return err
	}
	if cfg.Trace {
		renderTrace(cc.Out, res.Trace)
	}
	switch {
	case res.Unknown:
		fmt.Fprintf(cc.Out, "unknown: bound exceeded after %d steps\n", res.Steps)
	case res.Satisfiable:
		fmt.Fprintf(cc.Out, "satisfiable: %s:%s\n", sg, f)
		renderModels(cc.Out, res.Models, cfg.useColor(cc.Out))
	default:
		fmt.Fprintf(cc.Out, "unsatisfiable: %s:%s\n", sg, f)
	}
	return nil
}

type ValidConfig struct {
	*MainConfig
	Valid *cli.Command
}

func ValidCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Valid, "valid").
		WithAliases("v").
		WithSynopsis("valid <formula>").
		WithDescription("Decide whether a formula is true under every valuation.").
		WithRun(func(cc *cli.Context, args []string) error {
			return triValid(cfg, cc, args)
		})
}

func triValid(cfg *ValidConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Valid.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: valid requires a formula argument", cli.ErrUsage)
	}
	f, err := parse.Formula(strings.Join(args, " "))
	if err != nil {
		return err
	}
	v, err := trivalent.Valid(f)
	if err != nil {
		return err
	}
	if v {
		fmt.Fprintf(cc.Out, "valid: %s\n", f)
	} else {
		fmt.Fprintf(cc.Out, "not valid: %s\n", f)
	}
	return nil
}
