package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sequitur").
		WithSynopsis("sequitur [opts] command [opts]").
		WithDescription("sequitur works with proofs in schematic logical calculi.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Main.Parse(cc, args)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return cli.ErrNoCommandProvided
			}
			return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, args[0])
		}).
		WithSubs(
			SolveCommand(cfg),
			ReduceCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg))
}

func SolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Solve, "solve").
		WithAliases("s").
		WithSynopsis("solve [opts] <inference>...").
		WithDescription("build tableaux for inferences and report validity").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
}

func ReduceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReduceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "p",
		Description: "premise sequent, repeatable",
		Type: cli.NamedFuncOpt(cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
			cfg.Premise = append(cfg.Premise, v)
			return v, nil
		}), "(sequent)"),
	})
	return cli.NewCommandAt(&cfg.Reduce, "reduce").
		WithAliases("r").
		WithSynopsis("reduce [opts] <sequent>...").
		WithDescription("derive sequents bottom-up in the active calculus").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reduce(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] [prooffiles]").
		WithDescription("verify hand-written proofs and report correction errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [opts] [files]").
		WithDescription("rewrite formulas, inferences and sequents canonically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}
