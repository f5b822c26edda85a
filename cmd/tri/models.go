package main

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	trivalent "github.com/trivalent/go-trivalent"
	"github.com/trivalent/go-trivalent/parse"
	"github.com/trivalent/go-trivalent/sign"
	"github.com/trivalent/go-trivalent/tableau"
)

type ModelsConfig struct {
	*MainConfig
	Sign  string `cli:"name=sign desc='sign the models must satisfy' default=T"`
	Limit int    `cli:"name=limit desc='stop after this many models (0 = all)'"`
	Where string `cli:"name=where desc='filter expression over the model, e.g. m[\"P\"] == \"true\"'"`

	Models *cli.Command
}

func ModelsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ModelsConfig{MainConfig: mainCfg, Sign: "T"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Models, "models").
		WithAliases("m").
		WithSynopsis("models [-sign S] [-limit n] [-where expr] <formula>").
		WithDescription("Enumerate models of a signed formula.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return triModels(cfg, cc, args)
		})
}

func triModels(cfg *ModelsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Models.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: models requires a formula argument", cli.ErrUsage)
	}
	f, err := parse.Formula(strings.Join(args, " "))
	if err != nil {
		return err
	}
	sg, err := sign.Parse(cfg.Sign)
	if err != nil {
		return err
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("bad -where expression: %w", err)
		}
	}
	models, err := trivalent.FindModels(f, sg, cfg.Limit, &trivalent.Options{
		MaxSteps:    cfg.Steps,
		MaxBranches: cfg.Branches,
		Log:         theLog,
	})
	if err != nil {
		return err
	}
	if prg != nil {
		models, err = filterModels(models, prg)
		if err != nil {
			return err
		}
	}
	if len(models) == 0 {
		fmt.Fprintln(cc.Out, "no models")
		return nil
	}
	renderModels(cc.Out, models, cfg.useColor(cc.Out))
	return nil
}

// filterModels keeps the models the -where program accepts. The model is
// exposed as m, a map from atom key to "true"/"false"/"undefined"; atoms
// the model does not mention are absent from m.
func filterModels(models []*tableau.Model, prg *vm.Program) ([]*tableau.Model, error) {
	var out []*tableau.Model
	for _, m := range models {
		env := map[string]any{"m": modelEnv(m)}
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("running -where expression: %w", err)
		}
		if keep, ok := res.(bool); ok && keep {
			out = append(out, m)
		}
	}
	return out, nil
}

func modelEnv(m *tableau.Model) map[string]string {
	env := make(map[string]string, len(m.Atoms))
	for k, v := range m.Atoms {
		env[k] = v.String()
	}
	return env
}
