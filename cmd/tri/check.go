package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	trivalent "github.com/trivalent/go-trivalent"
	"github.com/trivalent/go-trivalent/parse"
)

type CheckConfig struct {
	*MainConfig
	Trace bool `cli:"name=trace desc='print the tableau trace'"`
	All   bool `cli:"name=all desc='collect every countermodel, not just the first'"`

	Check *cli.Command
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-trace] [-all] <premises |- conclusion>").
		WithDescription("Check an inference; countermodels witness failure.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return triCheck(cfg, cc, args)
		})
}

func triCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires an inference argument", cli.ErrUsage)
	}
	inf, err := parse.ParseInference(strings.Join(args, " "))
	if err != nil {
		return err
	}
	res, err := trivalent.CheckInference(inf.Premises, inf.Conclusion, &trivalent.Options{
		MaxSteps:    cfg.Steps,
		MaxBranches: cfg.Branches,
		Trace:       cfg.Trace,
		FindAll:     cfg.All,
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
	case res.Valid:
		fmt.Fprintln(cc.Out, "valid: every branch closes")
	default:
		fmt.Fprintln(cc.Out, "invalid: countermodels found")
		renderModels(cc.Out, res.Countermodels, cfg.useColor(cc.Out))
	}
	return nil
}
