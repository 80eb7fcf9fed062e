package presets

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/parse"
	"github.com/sequitur-logic/sequitur/seqcalc"
	"github.com/sequitur-logic/sequitur/syntax"
)

func mustSeq(p *parse.Parser, s string) syntax.Sequent {
	q, err := p.ParseSequent(s)
	if err != nil {
		panic(fmt.Sprintf("preset sequent %q: %v", s, err))
	}
	return q
}

func rule(p *parse.Parser, name, conclusion string, premises ...string) seqcalc.Rule {
	r := seqcalc.Rule{Name: name, Conclusion: mustSeq(p, conclusion)}
	for _, prem := range premises {
		r.Premises = append(r.Premises, mustSeq(p, prem))
	}
	return r
}

// LK is Gentzen's sequent calculus for classical logic without the
// biconditional: the identity axiom, the structural rules including Cut,
// and the operational rules.
func LK() *seqcalc.Calculus {
	p := ClassicalParser()
	return &seqcalc.Calculus{
		Lang:   LKLanguage(),
		Axioms: []seqcalc.Axiom{{Name: "identity", Seq: mustSeq(p, "A ==> A")}},
		Rules: []seqcalc.Rule{
			rule(p, "EL", "Gamma, Lambda, Sigma, Delta ==> Pi", "Gamma, Sigma, Lambda, Delta ==> Pi"),
			rule(p, "ER", "Gamma ==> Delta, Lambda, Sigma, Pi", "Gamma ==> Delta, Sigma, Lambda, Pi"),
			rule(p, "WL", "Pi, Gamma ==> Delta", "Gamma ==> Delta"),
			rule(p, "WR", "Gamma ==> Delta, Pi", "Gamma ==> Delta"),
			rule(p, "CL", "Pi, Gamma ==> Delta", "Pi, Pi, Gamma ==> Delta"),
			rule(p, "CR", "Gamma ==> Delta, Pi", "Gamma ==> Delta, Pi, Pi"),
			rule(p, "Cut", "Gamma, Pi ==> Delta, Sigma", "Gamma ==> Delta, A", "A, Pi ==> Sigma"),
			rule(p, "~L", "~A, Gamma ==> Delta", "Gamma ==> Delta, A"),
			rule(p, "~R", "Gamma ==> Delta, ~A", "A, Gamma ==> Delta"),
			rule(p, "∧L1", "A & B, Gamma ==> Delta", "A, Gamma ==> Delta"),
			rule(p, "∧L2", "A & B, Gamma ==> Delta", "B, Gamma ==> Delta"),
			rule(p, "∧R", "Gamma ==> Delta, A & B", "Gamma ==> Delta, A", "Gamma ==> Delta, B"),
			rule(p, "∨L", "A or B, Gamma ==> Delta", "A, Gamma ==> Delta", "B, Gamma ==> Delta"),
			rule(p, "∨R1", "Gamma ==> Delta, A or B", "Gamma ==> Delta, A"),
			rule(p, "∨R2", "Gamma ==> Delta, A or B", "Gamma ==> Delta, B"),
			rule(p, "→L", "A then B, Gamma, Pi ==> Delta, Sigma", "Gamma ==> Delta, A", "B, Pi ==> Sigma"),
			rule(p, "→R", "Gamma ==> Delta, A then B", "A, Gamma ==> Delta, B"),
		},
		Config: seqcalc.Config{FastAxioms: true},
	}
}

// LKmin is LK without Cut, with the rule order its reducer tries.
func LKmin() *seqcalc.Calculus {
	c := LK()
	rules := c.Rules[:0:0]
	for _, r := range c.Rules {
		if r.Name != "Cut" {
			rules = append(rules, r)
		}
	}
	c.Rules = rules
	c.SolverOrder = []string{
		"~L", "~R", "∧L1", "∧L2", "∧R", "∨L", "∨R1", "∨R2",
		"WL", "WR", "CL", "CR", "EL", "ER",
	}
	return c
}

// LKminReducer backtracks over the full LKmin rule order. Without smart
// weakening the search relies on the structural rules, so members are
// capped at three apparitions per side to keep it finite.
func LKminReducer() *seqcalc.Reducer {
	return &seqcalc.Reducer{MaxPerSide: 3}
}

// LKminEA is a Cut-free calculus with exchange admissible: weakening and
// contraction act on context variables anywhere in a side, and the
// operational rules are multiplicative, so no exchange rules are needed.
func LKminEA() *seqcalc.Calculus {
	p := ClassicalParser()
	return &seqcalc.Calculus{
		Lang:   LKminEALanguage(),
		Axioms: []seqcalc.Axiom{{Name: "identity", Seq: mustSeq(p, "A ==> A")}},
		Rules: []seqcalc.Rule{
			rule(p, "WL", "Gamma, Lambda, Delta ==> Sigma", "Gamma, Delta ==> Sigma"),
			rule(p, "WR", "Gamma ==> Pi, Lambda, Sigma", "Gamma ==> Pi, Sigma"),
			rule(p, "CL1", "Gamma, Lambda, Delta, Pi ==> Sigma", "Gamma, Lambda, Delta, Lambda, Pi ==> Sigma"),
			rule(p, "CL2", "Gamma, Delta, Lambda, Pi ==> Sigma", "Gamma, Lambda, Delta, Lambda, Pi ==> Sigma"),
			rule(p, "CR1", "Gamma ==> Delta, Lambda, Pi, Sigma", "Gamma ==> Delta, Lambda, Pi, Lambda, Sigma"),
			rule(p, "CR2", "Gamma ==> Delta, Pi, Lambda, Sigma", "Gamma ==> Delta, Lambda, Pi, Lambda, Sigma"),
			rule(p, "~L", "Gamma, ~A, Delta ==> Pi, Sigma", "Gamma, Delta ==> Pi, A, Sigma"),
			rule(p, "~R", "Gamma, Delta ==> Pi, ~A, Sigma", "Gamma, A, Delta ==> Pi, Sigma"),
			rule(p, "∧L1", "Gamma, A & B, Delta, Pi ==> Sigma", "Gamma, A, Delta, B, Pi ==> Sigma"),
			rule(p, "∧L2", "Gamma, Delta, A & B, Pi ==> Sigma", "Gamma, A, Delta, B, Pi ==> Sigma"),
			rule(p, "∧R", "Gamma ==> Delta, A & B, Pi", "Gamma ==> Delta, A, Pi", "Gamma ==> Delta, B, Pi"),
			rule(p, "∨L", "Gamma, A or B, Delta ==> Pi", "Gamma, A, Delta ==> Pi", "Gamma, B, Delta ==> Pi"),
			rule(p, "∨R1", "Gamma ==> Delta, A or B, Pi, Sigma", "Gamma ==> Delta, A, Pi, B, Sigma"),
			rule(p, "∨R2", "Gamma ==> Delta, Pi, A or B, Sigma", "Gamma ==> Delta, A, Pi, B, Sigma"),
		},
		SolverOrder: []string{"~L", "~R", "∧L1", "∧L2", "∧R", "∨L", "∨R1", "∨R2"},
		Config:      seqcalc.Config{FastAxioms: true},
	}
}

// LKminEAReducer weakens directly from premises and identity axioms
// instead of searching through the structural rules.
func LKminEAReducer() *seqcalc.Reducer {
	return &seqcalc.Reducer{
		SmartWeakening: true,
		WeakeningRules: map[int]string{0: "WL", 1: "WR"},
	}
}
