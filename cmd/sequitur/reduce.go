package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sequitur-logic/sequitur"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
)

func reduce(cfg *ReduceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reduce.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: reduce requires at least 1 sequent", cli.ErrUsage)
	}
	sys, err := cfg.system()
	if err != nil {
		return err
	}
	if sys.Calculus == nil {
		return fmt.Errorf("%w: system %q has no sequent calculus", cli.ErrUsage, cfg.Sys)
	}
	var premises []syntax.Sequent
	for _, ps := range cfg.Premise {
		seq, err := sys.Parser.ParseSequent(ps)
		if err != nil {
			return fmt.Errorf("error parsing premise %q: %w", ps, err)
		}
		premises = append(premises, seq)
	}
	pal := cfg.palette(cc.Out)
	unproved := 0
	for _, arg := range args {
		seq, err := sys.Parser.ParseSequent(arg)
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", arg, err)
		}
		d, err := sequitur.Reduce(sys.Calculus, sys.Red, seq, premises...)
		if err != nil {
			if !errors.Is(err, seqcalc.ErrNoProof) {
				return fmt.Errorf("error reducing %q: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", sys.Parser.UnparseSequent(seq),
				pal.paint(invalidColor, "no proof"))
			unproved++
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", sys.Parser.UnparseSequent(seq),
			pal.paint(validColor, "derivable"))
		renderDeriv(cc.Out, pal, sys.Parser, d)
	}
	if unproved > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
