package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tri").
		WithSynopsis("tri [opts] command [opts]").
		WithDescription("tri is a prover for weak Kleene three-valued logic.").
		WithOpts(opts...).
		WithSubs(
			SolveCommand(cfg),
			ValidCommand(cfg),
			CheckCommand(cfg),
			ModelsCommand(cfg),
			ParseCommand(cfg),
			ProvdCommand(cfg))
}
