package main

import (
	"fmt"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/trivalent/go-trivalent/system/provd/server"
)

type ProvdConfig struct {
	*MainConfig
	Provd *cli.Command
}

func ProvdCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProvdConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Provd, "provd").
		WithSynopsis("provd <subcommand>").
		WithDescription("provd prover server commands").
		WithSubs(
			ProvdServeCommand(cfg))
}

type ProvdServeConfig struct {
	*ProvdConfig
	Serve      *cli.Command
	ConfigFile string `cli:"name=config desc='configuration file (yaml)'"`
	Addr       string `cli:"name=addr desc='TCP listen address' default=localhost:9131"`
}

func ProvdServeCommand(provdCfg *ProvdConfig) *cli.Command {
	cfg := &ProvdServeConfig{ProvdConfig: provdCfg, Addr: "localhost:9131"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-config <file>]").
		WithDescription("run the provd prover server").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return provdServe(cfg, cc, args)
		})
}

func provdServe(cfg *ProvdServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	// Start gops agent for debugging
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	var serverConfig *server.Config
	if cfg.ConfigFile != "" {
		serverConfig, err = server.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	srv := server.New(&server.Spec{
		Config: serverConfig,
	})

	if err := srv.StartTCP(cfg.Addr); err != nil {
		return fmt.Errorf("failed to start TCP listener: %w", err)
	}
	fmt.Fprintf(cc.Out, "provd listening on %s\n", srv.TCPAddr())
	defer srv.StopTCP()

	// Block forever
	select {}
}
