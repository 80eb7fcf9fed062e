package tableaux

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/debug"
	"github.com/sequitur-logic/sequitur/syntax"
)

// DefaultMaxDepth bounds how deep a solver-built branch can grow before
// the attempt is abandoned.
const DefaultMaxDepth = 100

// Solver builds tableaux for inferences with a system's rules. It does
// not hardcode any rule; give it a different system and it derives with
// that system's rules.
type Solver struct {
	System   *System
	MaxDepth int
}

func (sv *Solver) maxDepth() int {
	if sv.MaxDepth > 0 {
		return sv.MaxDepth
	}
	return DefaultMaxDepth
}

// Solve builds a tableau for inf. It seeds the tree per the system's
// premise policy, then walks it breadth first so no single branch
// starves the others, applying each rule whose last premise the current
// node instantiates. Identical rule applications are performed once.
// Children of an applied rule are grafted onto every open leaf below
// the triggering node.
//
// The returned tree is closed when the inference is valid, and open
// (saturated) when it is not. ErrNoProof is wrapped in the error when
// the depth bound is hit first.
func (sv *Solver) Solve(inf *syntax.Inference) (*Tree, error) {
	t := &Tree{}
	t.AddChain(-1, sv.System.premisePolicy().Seed(inf)...)
	if t.Len() == 0 {
		return nil, fmt.Errorf("solve: inference has no premises or conclusions")
	}
	return sv.grow(t, inf.Key())
}

// SolveFormula builds a decomposition tree for a single formula. It is
// how constructive tree systems are driven.
func (sv *Solver) SolveFormula(f *syntax.Formula) (*Tree, error) {
	return sv.grow(NewTree(Node{Content: f.Clone()}), f.Key())
}

func (sv *Solver) grow(t *Tree, desc string) (*Tree, error) {
	sys := sv.System

	// Instantiated applications per rule, so a rule fires once per
	// distinct instantiation rather than once per node.
	applied := make(map[string]map[string]bool)
	for _, r := range sys.Rules {
		applied[r.Name] = make(map[string]bool)
	}

	closed := false
	var depthErr error
	t.LevelOrder(func(i int) {
		if closed || depthErr != nil {
			return
		}
		for _, rule := range sys.Rules {
			applicable, s := sys.RuleApplicable(t, i, rule)
			if !applicable {
				continue
			}
			app, err := sys.InstantiateRule(rule, s)
			if err != nil {
				continue
			}
			key := app.Key(0)
			if applied[rule.Name][key] {
				continue
			}
			applied[rule.Name][key] = true
			if debug.Solve() {
				debug.Logf("solve: applying %s at node %d: %s", rule.Name, i, s)
			}

			prems := rulePremiseIdxs(app)
			lastPrem := prems[len(prems)-1]
			for _, leaf := range t.LeavesUnder(i) {
				if t.Depth(leaf) >= sv.maxDepth() {
					depthErr = fmt.Errorf("solve %s: depth %d reached: %w", desc, sv.maxDepth(), ErrNoProof)
					return
				}
				if sys.BranchClosed(t, leaf) {
					continue
				}
				for _, c := range app.Nodes[lastPrem].Children {
					t.graftFrom(app, c, leaf)
				}
			}
			if sys.Closed(t) {
				closed = true
				return
			}
		}
	})
	if depthErr != nil {
		return nil, depthErr
	}
	return t, nil
}

// IsValid reports whether the solver can close a tableau for inf.
func (sv *Solver) IsValid(inf *syntax.Inference) (bool, error) {
	t, err := sv.Solve(inf)
	if err != nil {
		return false, err
	}
	return sv.System.Closed(t), nil
}

// rulePremiseIdxs is PremiseIdxs for an instantiated application tree.
func rulePremiseIdxs(t *Tree) []int {
	var res []int
	t.PreOrder(0, func(i int) {
		if t.Nodes[i].Just == "" {
			res = append(res, i)
		}
	})
	return res
}
