package seqcalc

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/errcode"
	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/match"
	"github.com/sequitur-logic/sequitur/syntax"
)

// Axiom is a named schematic sequent.
type Axiom struct {
	Name string
	Seq  syntax.Sequent
}

// Rule is a named schematic rule application, read bottom-up: the
// conclusion is derived from the premises.
type Rule struct {
	Name       string
	Premises   []syntax.Sequent
	Conclusion syntax.Sequent
}

// Config holds the construction-time switches of a calculus.
type Config struct {
	// FastAxioms replaces axiom matching with the direct identity
	// check: one formula on the first side, the same single formula on
	// every other side. Only sound when identity is the sole axiom.
	FastAxioms bool
}

// Calculus is a sequent calculus: a language, axioms, an ordered rule
// list, and the rule order the reducer tries.
type Calculus struct {
	Lang   *lang.Language
	Axioms []Axiom
	Rules  []Rule

	// SolverOrder names the rules the reducer applies, in order. Rules
	// not named here are still checked by the verifier.
	SolverOrder []string

	Config Config
}

func (c *Calculus) RuleNamed(name string) (Rule, bool) {
	for _, r := range c.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

func (c *Calculus) axiomNamed(name string) (Axiom, bool) {
	for _, a := range c.Axioms {
		if a.Name == name {
			return a, true
		}
	}
	return Axiom{}, false
}

// IsAxiom reports whether seq instantiates an axiom. With a non-empty
// name only that axiom is tried; with Config.FastAxioms the name is
// ignored and the identity shape is checked directly.
func (c *Calculus) IsAxiom(seq syntax.Sequent, name string) bool {
	if c.Config.FastAxioms {
		return isIdentity(c.Lang, seq)
	}
	if name != "" {
		a, ok := c.axiomNamed(name)
		if !ok {
			return false
		}
		ok, _ = match.Sequent(c.Lang, seq, a.Seq, nil)
		return ok
	}
	for _, a := range c.Axioms {
		if ok, _ := match.Sequent(c.Lang, seq, a.Seq, nil); ok {
			return true
		}
	}
	return false
}

// isIdentity: a single formula on the first side, and every other side
// exactly that formula.
func isIdentity(l *lang.Language, seq syntax.Sequent) bool {
	if len(seq) == 0 || len(seq[0]) != 1 || seq[0][0].IsContext() {
		return false
	}
	f := seq[0][0]
	for _, side := range seq[1:] {
		if len(side) != 1 || !side[0].Equal(f) {
			return false
		}
	}
	return true
}

// Closed reports whether every leaf of the derivation is an axiom.
func (c *Calculus) Closed(d *Deriv) bool {
	for _, leaf := range d.Leaves() {
		if !c.IsAxiom(d.Nodes[leaf].Seq, "") {
			return false
		}
	}
	return true
}

// CheckApplication checks that node i and its children instantiate the
// rule named by the node's justification: same premise count, the node
// an instance of the rule's conclusion, and each child an instance of
// the corresponding rule premise under a shared substitution set. A nil
// error means the application is correct.
func (c *Calculus) CheckApplication(d *Deriv, i int, ruleName string) error {
	n := d.Node(i)
	if n.Just != ruleName {
		return fmt.Errorf("node %s: justification is not %s", n.Seq.Key(), ruleName)
	}
	rule, ok := c.RuleNamed(ruleName)
	if !ok {
		return fmt.Errorf("node %s: no rule named %s", n.Seq.Key(), ruleName)
	}
	if len(n.Children) != len(rule.Premises) {
		return fmt.Errorf("incorrect number of premises for node %s", n.Seq.Key())
	}
	ok, substs := match.Sequent(c.Lang, n.Seq, rule.Conclusion, nil)
	if !ok {
		return fmt.Errorf("node %s is incorrectly derived, it is not an instance of %s's conclusion",
			n.Seq.Key(), ruleName)
	}
	for k, ci := range n.Children {
		prem := d.Node(ci)
		ok, substs = match.Sequent(c.Lang, prem.Seq, rule.Premises[k], substs)
		if !ok {
			return fmt.Errorf("node %s is incorrectly derived, premise %s is not an instance of rule premise %s",
				n.Seq.Key(), prem.Seq.Key(), rule.Premises[k].Key())
		}
	}
	return nil
}

// Verify checks a derivation: every leaf must be a given premise or an
// axiom, every internal node a correct application of the rule its
// justification names. Errors come out in post-order, premises before
// the sequents derived from them. A nil slice means the derivation is
// correct.
func (c *Calculus) Verify(d *Deriv, premises []syntax.Sequent) []errcode.CorrectionError {
	var errs []errcode.CorrectionError
	d.PostOrder(0, func(i int) {
		n := d.Node(i)
		if d.IsLeaf(i) {
			for _, p := range premises {
				if n.Seq.Equal(p) {
					if n.Just != "" && n.Just != "premise" {
						errs = append(errs, errcode.New(errcode.SeqIncorrectPremise, nil,
							"Node %s: premise nodes must have an empty or 'premise' justification", n.Seq.Key()))
					}
					return
				}
			}
			if c.Config.FastAxioms && n.Just != "identity" {
				errs = append(errs, errcode.New(errcode.SeqIncorrectAxiom, nil,
					"Node %s: %q is not a valid axiom name", n.Seq.Key(), n.Just))
			}
			if !c.IsAxiom(n.Seq, n.Just) {
				errs = append(errs, errcode.New(errcode.SeqIncorrectAxiom, nil,
					"Node %s is not a valid axiom", n.Seq.Key()))
			}
			return
		}
		if err := c.CheckApplication(d, i, n.Just); err != nil {
			errs = append(errs, errcode.New(errcode.SeqRuleIncorrectlyApplied, nil, "%s", err))
		}
	})
	return errs
}

// Correct reports whether the derivation verifies with no errors.
func (c *Calculus) Correct(d *Deriv, premises []syntax.Sequent) bool {
	return len(c.Verify(d, premises)) == 0
}
