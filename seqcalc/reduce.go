package seqcalc

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/debug"
	"github.com/sequitur-logic/sequitur/match"
	"github.com/sequitur-logic/sequitur/syntax"
)

// DefaultMaxDepth bounds how deep the reducer recurses before giving up
// on a branch.
const DefaultMaxDepth = 100

// Reducer searches for a derivation of a sequent bottom-up: it applies
// the calculus rules backwards, reducing the sequent to axioms or given
// premises. It is not tied to one calculus; the same reducer works for
// any calculus handed to Reduce.
type Reducer struct {
	// SmartWeakening looks at each step for a given premise, or a
	// formula present on all sides, and weakens from there into the
	// current sequent instead of searching.
	SmartWeakening bool
	// WeakeningRules names the weakening rule per side, e.g.
	// {0: "WL", 1: "WR"}. Required when SmartWeakening is set.
	WeakeningRules map[int]string
	// MaxPerSide rejects reduction premises where a member repeats on
	// one side more than this many times. Zero means no limit. Useful
	// with contraction among the solver rules.
	MaxPerSide int
	// MaxDepth bounds the derivation height; DefaultMaxDepth when 0.
	MaxDepth int
}

func (r *Reducer) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return DefaultMaxDepth
}

// Reduce finds a derivation of seq in calc, using premises as
// additional leaves. It returns the first derivation it finds; the
// error wraps ErrNoProof when none exists within the depth bound.
func (r *Reducer) Reduce(calc *Calculus, seq syntax.Sequent, premises []syntax.Sequent) (*Deriv, error) {
	st := &reduction{
		calc:     calc,
		premises: premises,
		present:  make(map[string]bool),
		failed:   make(map[string]bool),
	}
	d := r.reduce(st, seq, r.maxDepth())
	if d == nil {
		return nil, fmt.Errorf("reduce %s: %w", seq.Key(), ErrNoProof)
	}
	return d, nil
}

// reduction is the shared search state: sequents on the current path,
// and sequents that already failed to reduce, so they are not retried.
type reduction struct {
	calc     *Calculus
	premises []syntax.Sequent
	present  map[string]bool
	failed   map[string]bool
}

func (r *Reducer) reduce(st *reduction, seq syntax.Sequent, depth int) *Deriv {
	if depth == 0 {
		return nil
	}
	calc := st.calc

	for _, p := range st.premises {
		if seq.Equal(p) {
			return NewDeriv(DNode{Seq: seq.Clone(), Just: "premise"})
		}
	}
	if calc.Config.FastAxioms {
		if calc.IsAxiom(seq, "") {
			return NewDeriv(DNode{Seq: seq.Clone(), Just: "identity"})
		}
	} else {
		for _, a := range calc.Axioms {
			if calc.IsAxiom(seq, a.Name) {
				return NewDeriv(DNode{Seq: seq.Clone(), Just: a.Name})
			}
		}
	}

	if r.SmartWeakening {
		if d := r.smartWeakening(st, seq); d != nil {
			return d
		}
	}

	key := seq.Key()
	st.present[key] = true
	defer delete(st.present, key)

	for _, name := range calc.SolverOrder {
		rule, ok := calc.RuleNamed(name)
		if !ok {
			continue
		}
		instance, substs := match.Sequent(calc.Lang, seq, rule.Conclusion, nil)
		if !instance {
			continue
		}
		if debug.Reduce() {
			debug.Logf("reduce: %s applicable to %s (%d substitutions)", name, key, len(substs))
		}

		// Instantiate the premises per substitution up front: distinct
		// substitutions can yield the same premise list, and each list
		// should be attempted once.
		var premiseSets [][]syntax.Sequent
		var setKeys []string
		for _, s := range substs {
			set, setKey, ok := r.premiseSet(st, seq, rule, s)
			if !ok {
				continue
			}
			seen := false
			for _, k := range setKeys {
				if k == setKey {
					seen = true
					break
				}
			}
			if !seen {
				premiseSets = append(premiseSets, set)
				setKeys = append(setKeys, setKey)
			}
		}

		for _, set := range premiseSets {
			d := NewDeriv(DNode{Seq: seq.Clone(), Just: name})
			complete := true
			for _, prem := range set {
				if st.failed[prem.Key()] {
					complete = false
					break
				}
				sub := r.reduce(st, prem, depth-1)
				if sub == nil {
					st.failed[prem.Key()] = true
					complete = false
					break
				}
				d.graftFrom(sub, 0, 0)
			}
			if complete {
				return d
			}
		}
	}

	return nil
}

// premiseSet instantiates a rule's premises under s, rejecting sets that
// revisit the current path, repeat a failed sequent, or exceed the
// per-side member limit.
func (r *Reducer) premiseSet(st *reduction, seq syntax.Sequent, rule Rule, s *syntax.Substitution) ([]syntax.Sequent, string, bool) {
	var set []syntax.Sequent
	var setKey string
	for _, schema := range rule.Premises {
		prem, err := match.InstantiateSequent(st.calc.Lang, schema, s)
		if err != nil {
			return nil, "", false
		}
		k := prem.Key()
		if prem.Equal(seq) || st.present[k] || st.failed[k] {
			return nil, "", false
		}
		if !r.withinMemberLimit(prem) {
			return nil, "", false
		}
		set = append(set, prem)
		setKey += k + "\x00"
	}
	return set, setKey, true
}

func (r *Reducer) withinMemberLimit(seq syntax.Sequent) bool {
	if r.MaxPerSide == 0 {
		return true
	}
	for _, side := range seq {
		for _, m := range side {
			count := 0
			for _, o := range side {
				if m.Equal(o) {
					count++
				}
			}
			if count > r.MaxPerSide {
				return false
			}
		}
	}
	return true
}

// smartWeakening looks for a starting point already contained in seq, a
// given premise or an identity axiom on a shared formula, and derives
// seq from it by weakening alone.
func (r *Reducer) smartWeakening(st *reduction, seq syntax.Sequent) *Deriv {
	for _, p := range st.premises {
		contained := true
		for si := range p {
			for _, m := range p[si] {
				if seq[si].Index(m) == -1 {
					contained = false
					break
				}
			}
			if !contained {
				break
			}
		}
		if contained {
			steps := []DNode{{Seq: p.Clone(), Just: "premise"}}
			cur := p.Clone()
			for si := range p {
				steps, cur = r.weakenFromPremise(steps, cur, p[si], seq[si], si)
			}
			return chainDeriv(steps)
		}
	}

	if f, ok := seq.ContainsFormulaEverywhere(); ok {
		ident := make(syntax.Sequent, len(seq))
		for si := range seq {
			ident[si] = syntax.Side{syntax.FormulaMember(f)}
		}
		steps := []DNode{{Seq: ident, Just: "identity"}}
		cur := ident.Clone()
		for si := range seq {
			steps, cur = r.weakenFromIdentity(steps, cur, f, seq[si], si)
		}
		return chainDeriv(steps)
	}
	return nil
}

// weakenFromIdentity grows one side of cur from the single shared
// formula out to the target side, first leftwards from the formula's
// position, then rightwards, one weakening step per member.
func (r *Reducer) weakenFromIdentity(steps []DNode, cur syntax.Sequent, f *syntax.Formula, target syntax.Side, si int) ([]DNode, syntax.Sequent) {
	at := target.Index(syntax.FormulaMember(f))
	for k := at - 1; k >= 0; k-- {
		next := cur.Clone()
		next[si] = append(syntax.Side{target[k].Clone()}, next[si]...)
		steps = append(steps, DNode{Seq: next, Just: r.WeakeningRules[si]})
		cur = next
	}
	for k := at + 1; k < len(target); k++ {
		next := cur.Clone()
		next[si] = append(next[si], target[k].Clone())
		steps = append(steps, DNode{Seq: next, Just: r.WeakeningRules[si]})
		cur = next
	}
	return steps, cur
}

// weakenFromPremise grows one side of cur from a premise's side to the
// target side left to right, inserting the members the premise lacks.
func (r *Reducer) weakenFromPremise(steps []DNode, cur syntax.Sequent, premSide, target syntax.Side, si int) ([]DNode, syntax.Sequent) {
	pk := 0
	pos := 0
	for _, tm := range target {
		if pk < len(premSide) && tm.Equal(premSide[pk]) {
			pk++
		} else {
			next := cur.Clone()
			side := next[si]
			side = append(side[:pos:pos], append(syntax.Side{tm.Clone()}, side[pos:]...)...)
			next[si] = side
			steps = append(steps, DNode{Seq: next, Just: r.WeakeningRules[si]})
			cur = next
		}
		pos++
	}
	return steps, cur
}

// chainDeriv turns a bottom-up step list (axiom or premise first) into a
// derivation rooted at the last step.
func chainDeriv(steps []DNode) *Deriv {
	d := NewDeriv(steps[len(steps)-1])
	parent := 0
	for k := len(steps) - 2; k >= 0; k-- {
		parent = d.Add(parent, steps[k])
	}
	return d
}
