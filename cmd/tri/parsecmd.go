package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/trivalent/go-trivalent/parse"
)

type ParseConfig struct {
	*MainConfig
	Parse *cli.Command
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse <formula or inference>").
		WithDescription("Parse input and echo the normalized rendering.").
		WithRun(func(cc *cli.Context, args []string) error {
			return triParse(cfg, cc, args)
		})
}

func triParse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: parse requires a formula or inference argument", cli.ErrUsage)
	}
	src := strings.Join(args, " ")
	if strings.Contains(src, "|-") || strings.Contains(src, "⊢") {
		inf, err := parse.ParseInference(src)
		if err != nil {
			return err
		}
		ps := make([]string, len(inf.Premises))
		for i, p := range inf.Premises {
			ps[i] = p.String()
		}
		fmt.Fprintf(cc.Out, "%s ⊢ %s\n", strings.Join(ps, ", "), inf.Conclusion)
		return nil
	}
	f, err := parse.Formula(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, f)
	return nil
}
