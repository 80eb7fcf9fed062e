package tableaux

import (
	"sort"

	"github.com/sequitur-logic/sequitur/debug"
	"github.com/sequitur-logic/sequitur/errcode"
	"github.com/sequitur-logic/sequitur/syntax"
)

// Verify checks a tableau against the system's rules. With a non-nil
// inference it additionally checks that every unjustified node
// introduces a premise or conclusion of it, per the premise policy, and
// that all of them are present.
//
// The returned errors are sorted by node address, shallowest first. A
// nil slice means the tableau is correct.
func (sys *System) Verify(t *Tree, inf *syntax.Inference) []errcode.CorrectionError {
	var errs []errcode.CorrectionError
	derived := make(map[int]bool)
	presentPrems := make(map[int]bool)
	presentConcls := make(map[int]bool)
	pol := sys.premisePolicy()

	traversingPremises := true
	t.LevelOrder(func(i int) {
		n := t.Node(i)
		if n.Just != "" {
			traversingPremises = false
		} else {
			// Premise nodes must form an unbranched prefix of the tree,
			// so every branch contains all of them.
			if !traversingPremises {
				errs = append(errs, errcode.New(errcode.TblPremiseNotBeginning, addr(t, i),
					"Premise nodes must be at the beginning of the tableau, before applying any rule and before opening any new branch"))
			}
			if inf != nil {
				prems, concls := pol.PremiseWitness(inf, n)
				if len(prems) > 0 || len(concls) > 0 {
					for _, p := range prems {
						presentPrems[p] = true
					}
					for _, c := range concls {
						presentConcls[c] = true
					}
					derived[i] = true
				} else {
					errs = append(errs, errcode.New(errcode.TblIncorrectPremise, addr(t, i),
						"Node %s is an incorrect premise node", n.Label()))
				}
			} else {
				derived[i] = true
			}
		}
		if len(n.Children) > 1 {
			traversingPremises = false
		}

		for _, rule := range sys.Rules {
			applicable, s := sys.RuleApplicable(t, i, rule)
			if !applicable {
				continue
			}
			if debug.Solve() {
				debug.Logf("verify: rule %s applicable at node %d with %s", rule.Name, i, s)
			}
			prems := rule.PremiseIdxs()
			lastPrem := prems[len(prems)-1]
			ok, newlyDerived := sys.correctlyApplied(t, i, rule.Tree, lastPrem, derived, s)
			if !ok {
				errs = append(errs, errcode.New(errcode.TblRuleNotApplied, addr(t, i),
					"Rule %s was not applied to node %s", rule.Name, n.Label()))
			} else {
				for j := range newlyDerived {
					derived[j] = true
				}
			}
		}
	})

	if inf != nil {
		for p := range inf.Premises {
			if !presentPrems[p] {
				errs = append(errs, errcode.New(errcode.TblPremiseNotPresent, nil,
					"Premise %s is not present in the tree", inf.Premises[p].Key()))
			}
		}
		for c := range inf.Conclusions {
			if !presentConcls[c] {
				errs = append(errs, errcode.New(errcode.TblConclusionNotPresent, nil,
					"Conclusion %s is not present in the tree", inf.Conclusions[c].Key()))
			}
		}
	}

	// Every justified node must have been derived by some applicable
	// rule, otherwise it is unaccounted for.
	t.PreOrder(0, func(i int) {
		if t.Nodes[i].Just != "" && !derived[i] {
			errs = append(errs, errcode.New(errcode.TblRuleIncorrectlyApplied, addr(t, i),
				"Rule incorrectly applied to node %s", t.Nodes[i].Label()))
		}
	})

	sort.SliceStable(errs, func(a, b int) bool {
		return errcode.PathLess(errs[a].Path, errs[b].Path)
	})
	return errs
}

// Correct reports whether the tableau verifies with no errors.
func (sys *System) Correct(t *Tree, inf *syntax.Inference) bool {
	return len(sys.Verify(t, inf)) == 0
}

// FirstError returns the shallowest verification error, or nil.
func (sys *System) FirstError(t *Tree, inf *syntax.Inference) *errcode.CorrectionError {
	errs := sys.Verify(t, inf)
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

// addr is a node's address as a walk of child positions, with a leading
// 0 for the root so the root itself has a non-nil address.
func addr(t *Tree, i int) []int {
	return append([]int{0}, t.ChildPath(i)...)
}

// correctlyApplied checks that the result nodes of a rule, below its
// last premise at ruleIdx, appear under node i on every branch that does
// not close first. It returns the instance nodes that the application
// accounts for.
func (sys *System) correctlyApplied(t *Tree, i int, ruleTree *Tree, ruleIdx int, derived map[int]bool, s *syntax.Substitution) (bool, map[int]bool) {
	// Node i instantiates the rule node already; a rule leaf demands
	// nothing further.
	if ruleTree.IsLeaf(ruleIdx) {
		return true, nil
	}
	if t.IsLeaf(i) {
		// A closed branch need not be extended.
		if sys.BranchClosed(t, i) {
			return true, nil
		}
		return false, nil
	}

	n := t.Node(i)
	ruleChildren := ruleTree.Nodes[ruleIdx].Children
	childrenInstance := len(n.Children) == len(ruleChildren)
	s2 := s.Clone()
	if childrenInstance {
		for k, c := range n.Children {
			// A child already derived belongs to a previous rule
			// application, not this one.
			if derived[c] {
				childrenInstance = false
				break
			}
			if !sys.NodeInstance(t, c, ruleTree.Node(ruleChildren[k]), s2) {
				childrenInstance = false
				break
			}
		}
	}

	if !childrenInstance {
		// The rule must then be applied further down every branch.
		acc := make(map[int]bool)
		for _, c := range n.Children {
			ok, more := sys.correctlyApplied(t, c, ruleTree, ruleIdx, derived, s)
			if !ok {
				return false, nil
			}
			for j := range more {
				acc[j] = true
			}
		}
		return true, acc
	}

	acc := make(map[int]bool)
	for k, c := range n.Children {
		ok, more := sys.correctlyApplied(t, c, ruleTree, ruleChildren[k], derived, s2)
		if !ok {
			return false, nil
		}
		for j := range more {
			acc[j] = true
		}
	}
	for _, c := range n.Children {
		acc[c] = true
	}
	return true, acc
}
