package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/sequitur-logic/sequitur/errcode"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	sys, err := cfg.system()
	if err != nil {
		return err
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("error compiling -where: %w", err)
		}
	}
	pal := cfg.palette(cc.Out)
	found := 0
	if len(args) == 0 {
		n, err := checkReader(cfg, cc, sys, pal, where, "-", cc.In)
		if err != nil {
			return err
		}
		found += n
	}
	for _, file := range args {
		n, err := checkFile(cfg, cc, sys, pal, where, file)
		if err != nil {
			return err
		}
		found += n
	}
	if found > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, sys *system, pal *palette, where *vm.Program, file string) (int, error) {
	if file == "-" {
		return checkReader(cfg, cc, sys, pal, where, file, cc.In)
	}
	f, err := os.Open(file)
	if err != nil {
		return 0, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return checkReader(cfg, cc, sys, pal, where, file, f)
}

func checkReader(cfg *CheckConfig, cc *cli.Context, sys *system, pal *palette, where *vm.Program, name string, r io.Reader) (int, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", name, err)
	}
	found := 0
	docs := bytes.Split(in, []byte("\n---\n"))
	for i, doc := range docs {
		pf, err := sys.ParseProof(doc)
		if err != nil {
			return 0, fmt.Errorf("error decoding proof %d of %s: %w", i, name, err)
		}
		errs := sys.Verify(pf)
		if where != nil {
			errs, err = filterErrs(where, errs)
			if err != nil {
				return 0, fmt.Errorf("error filtering proof %d of %s: %w", i, name, err)
			}
		}
		for _, e := range errs {
			fmt.Fprintf(cc.Out, "%s: proof %d: %s: %s\n", name, i,
				pal.paint(invalidColor, pathString(e.Path)), e)
		}
		found += len(errs)
	}
	return found, nil
}

func filterErrs(where *vm.Program, errs []errcode.CorrectionError) ([]errcode.CorrectionError, error) {
	var res []errcode.CorrectionError
	for _, e := range errs {
		env := map[string]any{
			"code":        int(e.Code),
			"category":    e.Code.Category(),
			"path":        e.Path,
			"description": e.Description,
		}
		keep, err := expr.Run(where, env)
		if err != nil {
			return nil, err
		}
		if keep.(bool) {
			res = append(res, e)
		}
	}
	return res, nil
}

func pathString(path []int) string {
	if len(path) == 0 {
		return "$"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return "$." + strings.Join(parts, ".")
}
