package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	sys, err := cfg.system()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc, sys, "-", cc.In)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc, sys, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, sys *system, file string) error {
	if file == "-" {
		return fmtReader(cfg, cc, sys, file, cc.In)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return fmtReader(cfg, cc, sys, file, f)
}

// fmtReader canonicalizes one statement per line. Blank lines and
// #-comment lines pass through untouched.
func fmtReader(cfg *FmtConfig, cc *cli.Context, sys *system, name string, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	src := string(in)
	lines := strings.Split(src, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") {
			b.WriteString(line)
			continue
		}
		v, err := sys.Parser.Parse(t)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, i+1, err)
		}
		b.WriteString(sys.Parser.Unparse(v))
	}
	out := b.String()
	switch {
	case cfg.List:
		if out != src {
			fmt.Fprintln(cc.Out, name)
		}
	case cfg.Diff:
		if out == src {
			return nil
		}
		fmt.Fprintf(cc.Out, "--- %s\n", name)
		writeDiff(cc.Out, cfg.palette(cc.Out), src, out)
	default:
		if _, err := io.WriteString(cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}

func writeDiff(w io.Writer, pal *palette, from, to string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	if pal.enabled {
		io.WriteString(w, dmp.DiffPrettyText(diffs))
		if !strings.HasSuffix(to, "\n") {
			io.WriteString(w, "\n")
		}
		return
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(w, "[-%s-]", d.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(w, "[+%s+]", d.Text)
		default:
			io.WriteString(w, d.Text)
		}
	}
	if !strings.HasSuffix(to, "\n") {
		io.WriteString(w, "\n")
	}
}
