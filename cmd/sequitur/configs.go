package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sequitur-logic/sequitur/config"
	"github.com/sequitur-logic/sequitur/parse"
	"github.com/sequitur-logic/sequitur/presets"
	"github.com/sequitur-logic/sequitur/seqcalc"
)

type MainConfig struct {
	Sys   string `cli:"name=sys desc='preset system: classical, indexed, lk, lkmin, lkminea'"`
	File  string `cli:"name=c desc='load the system from a yaml description file'"`
	Color bool   `cli:"name=color desc='force colored output'"`
	Depth int    `cli:"name=depth desc='solver and reducer depth bound'"`

	Main *cli.Command
}

// system bundles the active system with the reducer that suits it.
type system struct {
	*config.System
	Red *seqcalc.Reducer
}

func (cfg *MainConfig) system() (*system, error) {
	if cfg.File != "" {
		if cfg.Sys != "" {
			return nil, fmt.Errorf("%w: only one of -sys, -c may be specified", cli.ErrUsage)
		}
		s, err := config.Load(cfg.File)
		if err != nil {
			return nil, err
		}
		return &system{System: s, Red: &seqcalc.Reducer{MaxDepth: cfg.Depth}}, nil
	}
	name := cfg.Sys
	if name == "" {
		name = "classical"
	}
	s := &system{System: &config.System{}}
	switch name {
	case "classical":
		s.Tableaux = presets.ClassicalTableaux()
	case "indexed":
		s.Tableaux = presets.IndexedClassicalTableaux()
	case "lk":
		s.Calculus = presets.LK()
		s.Red = &seqcalc.Reducer{MaxDepth: cfg.Depth}
	case "lkmin":
		s.Calculus = presets.LKmin()
		s.Red = presets.LKminReducer()
	case "lkminea":
		s.Calculus = presets.LKminEA()
		s.Red = presets.LKminEAReducer()
	default:
		return nil, fmt.Errorf("%w: unknown system %q", cli.ErrUsage, name)
	}
	if s.Tableaux != nil {
		s.Lang = s.Tableaux.Lang
	} else {
		s.Lang = s.Calculus.Lang
	}
	s.Parser = parse.New(s.Lang, parse.WithReplacements(presets.ClassicalAliases()...))
	if s.Red != nil && cfg.Depth > 0 {
		s.Red.MaxDepth = cfg.Depth
	}
	return s, nil
}

// palette gates colored rendering: forced by -color, otherwise on when
// the output is a terminal.
type palette struct {
	enabled bool
}

func (cfg *MainConfig) palette(w io.Writer) *palette {
	if cfg.Color {
		// fatih/color disables itself on non-terminals; -color overrides.
		color.NoColor = false
		return &palette{enabled: true}
	}
	f, ok := w.(*os.File)
	if !ok {
		return &palette{}
	}
	return &palette{enabled: isatty.IsTerminal(f.Fd())}
}

func (p *palette) paint(c *color.Color, s string) string {
	if !p.enabled {
		return s
	}
	return c.Sprint(s)
}

type SolveConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='print only the verdict'"`

	Solve *cli.Command
}

type ReduceConfig struct {
	*MainConfig

	Premise []string

	Reduce *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='expr filter over {code, category, path, description}'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff bool `cli:"name=d desc='print a diff against the canonical form'"`
	List bool `cli:"name=l desc='list files whose text is not canonical'"`

	Fmt *cli.Command
}
