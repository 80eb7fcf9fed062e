package tableaux

import (
	"strconv"

	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

// NewConstructiveSystem builds the decomposition-tree system of a
// language: one rule per connective, decomposing C(A1, ..., An) into its
// immediate subformulae, closing branches at well-formed atoms. Its
// tableaux for a formula close exactly when the formula is well formed.
//
// The language's metavariables must include the A family.
func NewConstructiveSystem(l *lang.Language) *System {
	sys := &System{
		Lang:          l,
		ClosurePolicy: AtomicClosure{},
	}
	for _, c := range l.Connectives {
		args := make([]*syntax.Formula, c.Arity)
		for k := range args {
			args[k] = syntax.Atom("A" + strconv.Itoa(k+1))
		}
		name := "R" + c.Sym
		rt := NewTree(Node{Content: syntax.Apply(c.Sym, args...)})
		for _, a := range args {
			rt.Add(0, Node{Content: a.Clone(), Just: name})
		}
		sys.Rules = append(sys.Rules, Rule{Name: name, Tree: rt})
	}
	return sys
}

// WellFormedByTree decides well-formedness of f by building its
// decomposition tree and checking that every branch closes.
func (sys *System) WellFormedByTree(f *syntax.Formula, maxDepth int) (bool, error) {
	sv := &Solver{System: sys, MaxDepth: maxDepth}
	t, err := sv.SolveFormula(f)
	if err != nil {
		return false, err
	}
	return sys.Closed(t), nil
}
