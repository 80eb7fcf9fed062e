// Package match implements schematic matching: deciding whether concrete
// formulae, inferences, sequents and standards are instances of schematic
// ones, and collecting the substitutions that witness it.
package match

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/debug"
	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

// Formula reports whether f is an instance of schema. Metavariables bind
// on first use and must agree on every later occurrence. Bindings are
// recorded in s, which must be non-nil; on failure s may carry bindings
// from the partial walk, so callers trying alternatives clone first.
func Formula(l *lang.Language, f, schema *syntax.Formula, s *syntax.Substitution) bool {
	if schema.IsLeaf() && l.IsMetavariable(schema.Sym) {
		if prev, ok := s.Get(schema.Sym); ok {
			return prev.Kind == syntax.BindFormula && prev.F.Equal(f)
		}
		s.Bind(schema.Sym, syntax.BindF(f))
		return true
	}
	if f.Sym != schema.Sym || len(f.Args) != len(schema.Args) {
		return false
	}
	for i, a := range f.Args {
		if !Formula(l, a, schema.Args[i], s) {
			return false
		}
	}
	return true
}

// Instantiate replaces every metavariable in schema by its binding.
// Unbound metavariables are an error.
func Instantiate(l *lang.Language, schema *syntax.Formula, s *syntax.Substitution) (*syntax.Formula, error) {
	if schema.IsLeaf() {
		if !l.IsMetavariable(schema.Sym) {
			return schema.Clone(), nil
		}
		b, ok := s.Get(schema.Sym)
		if !ok {
			return nil, fmt.Errorf("%w: %s", syntax.ErrUnbound, schema.Sym)
		}
		if b.Kind != syntax.BindFormula {
			return nil, fmt.Errorf("%w: %s is bound to a %s", syntax.ErrRebind, schema.Sym, b.Key())
		}
		return b.F.Clone(), nil
	}
	res := &syntax.Formula{Sym: schema.Sym, Args: make([]*syntax.Formula, len(schema.Args))}
	for i, a := range schema.Args {
		inst, err := Instantiate(l, a, s)
		if err != nil {
			return nil, err
		}
		res.Args[i] = inst
	}
	return res, nil
}

// Standard reports whether std is an instance of schema. A standard
// variable binds the whole standard on first use; bar flags must agree
// before anything else is looked at.
func Standard(l *lang.Language, std, schema *syntax.Standard, s *syntax.Substitution) bool {
	if std.Bar != schema.Bar {
		return false
	}
	if schema.Kind == syntax.StdVar && l.IsStandardVariable(schema.Var) {
		unbarred := std.Clone()
		unbarred.Bar = false
		if prev, ok := s.Get(schema.Var); ok {
			return prev.Kind == syntax.BindStandard && prev.Std.Equal(unbarred)
		}
		s.Bind(schema.Var, syntax.BindStd(unbarred))
		return true
	}
	if std.Kind != schema.Kind {
		return false
	}
	switch schema.Kind {
	case syntax.StdSet:
		return std.Equal(schema)
	case syntax.StdPair:
		return Standard(l, std.Left, schema.Left, s) && Standard(l, std.Right, schema.Right, s)
	case syntax.StdVar:
		return std.Var == schema.Var
	}
	return false
}

// InstantiateStandard resolves standard variables in schema against s.
func InstantiateStandard(l *lang.Language, schema *syntax.Standard, s *syntax.Substitution) (*syntax.Standard, error) {
	switch schema.Kind {
	case syntax.StdVar:
		if !l.IsStandardVariable(schema.Var) {
			return schema.Clone(), nil
		}
		b, ok := s.Get(schema.Var)
		if !ok {
			return nil, fmt.Errorf("%w: %s", syntax.ErrUnbound, schema.Var)
		}
		if b.Kind != syntax.BindStandard {
			return nil, fmt.Errorf("%w: %s is bound to a %s", syntax.ErrRebind, schema.Var, b.Key())
		}
		res := b.Std.Clone()
		if schema.Bar {
			res.Bar = !res.Bar
		}
		return res, nil
	case syntax.StdPair:
		left, err := InstantiateStandard(l, schema.Left, s)
		if err != nil {
			return nil, err
		}
		right, err := InstantiateStandard(l, schema.Right, s)
		if err != nil {
			return nil, err
		}
		res := syntax.StandardPair(left, right)
		res.Bar = schema.Bar
		return res, nil
	default:
		return schema.Clone(), nil
	}
}

func logMatch(format string, args ...any) {
	if debug.Match() {
		debug.Logf(format, args...)
	}
}
