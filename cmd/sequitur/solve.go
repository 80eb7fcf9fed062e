package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sequitur-logic/sequitur"
)

func solve(cfg *SolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Solve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: solve requires at least 1 inference", cli.ErrUsage)
	}
	sys, err := cfg.system()
	if err != nil {
		return err
	}
	if sys.Tableaux == nil {
		return fmt.Errorf("%w: system %q has no tableaux rules", cli.ErrUsage, cfg.Sys)
	}
	pal := cfg.palette(cc.Out)
	invalid := 0
	for _, arg := range args {
		inf, err := sys.Parser.ParseInference(arg)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		tree, err := sequitur.Prove(sys.Tableaux, inf, sequitur.MaxDepth(cfg.Depth))
		if err != nil {
			return fmt.Errorf("error solving %q: %w", arg, err)
		}
		verdict := pal.paint(invalidColor, "invalid")
		if sys.Tableaux.Closed(tree) {
			verdict = pal.paint(validColor, "valid")
		} else {
			invalid++
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", sys.Parser.UnparseInference(inf), verdict)
		if !cfg.Quiet {
			renderTableau(cc.Out, pal, sys.Parser, sys.Tableaux, tree)
		}
	}
	if invalid > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
