package match

import (
	"fmt"

	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

// Sequent reports whether seq is an instance of schema, which may
// contain context variables. A sequent can be an instance of a schema in
// several ways, so the check threads a whole set of candidate
// substitutions: in is the set of substitutions allowed so far (nil
// means unconstrained), and the returned set holds every way to extend
// them that makes seq an instance. Uniform substitution across sides,
// and across the several sequents of a rule, falls out of threading the
// same set through consecutive calls.
func Sequent(l *lang.Language, seq, schema syntax.Sequent, in []*syntax.Substitution) (bool, []*syntax.Substitution) {
	if in == nil {
		in = []*syntax.Substitution{syntax.NewSubstitution()}
	}
	if len(seq) != len(schema) {
		return false, in
	}
	for i := range seq {
		ok, out := Side(l, seq[i], schema[i], in)
		if !ok {
			return false, in
		}
		in = out
	}
	return true, in
}

// Side reports whether side is an instance of the schematic rule side,
// refining the candidate substitution set like Sequent does.
func Side(l *lang.Language, side, rule syntax.Side, in []*syntax.Substitution) (bool, []*syntax.Substitution) {
	if in == nil {
		in = []*syntax.Substitution{syntax.NewSubstitution()}
	}
	if len(rule) == 0 {
		return len(side) == 0, in
	}

	pat := rulePattern(l, rule)
	combos := possibleCombos(l, side, pat, in)
	if len(combos) == 0 {
		logMatch("side %q is not an instance of %q: no viable formula positions\n", side.Key(), rule.Key())
		return false, in
	}
	out := contextDicts(side, rule, combos, l)
	if len(out) == 0 {
		logMatch("side %q is not an instance of %q: no consistent context split\n", side.Key(), rule.Key())
		return false, in
	}
	return true, out
}

// sidePattern is the shape of a schematic rule side: its main formulae
// in order, whether context variables sit at either edge, and which
// consecutive formula pairs are adjacent (no context between them).
type sidePattern struct {
	formulas []*syntax.Formula
	leftCtx  bool
	rightCtx bool
	together [][2]int
}

func rulePattern(l *lang.Language, rule syntax.Side) sidePattern {
	var pat sidePattern
	prevCtx := false
	for i, m := range rule {
		if m.IsContext() {
			prevCtx = true
			if i == 0 {
				pat.leftCtx = true
			}
			if i == len(rule)-1 {
				pat.rightCtx = true
			}
			continue
		}
		pat.formulas = append(pat.formulas, m.F)
		if !prevCtx && len(pat.formulas) > 1 {
			n := len(pat.formulas)
			pat.together = append(pat.together, [2]int{n - 2, n - 1})
		}
		prevCtx = false
	}
	return pat
}

// combo pairs one choice of instance positions for the pattern formulae
// with the substitutions under which those positions match.
type combo struct {
	idxs   []int
	substs []*syntax.Substitution
}

// possibleCombos enumerates strictly increasing index tuples over the
// side's formula positions and keeps those satisfying the edge and
// adjacency constraints whose formulae match under at least one of the
// candidate substitutions.
func possibleCombos(l *lang.Language, side syntax.Side, pat sidePattern, in []*syntax.Substitution) []combo {
	var formulaIdxs []int
	for i, m := range side {
		if !m.IsContext() {
			formulaIdxs = append(formulaIdxs, i)
		}
	}

	var res []combo
	forEachCombination(formulaIdxs, len(pat.formulas), func(idxs []int) {
		if len(idxs) > 0 {
			if !pat.leftCtx && idxs[0] != 0 {
				return
			}
			if !pat.rightCtx && idxs[len(idxs)-1] != len(side)-1 {
				return
			}
		}
		for _, pair := range pat.together {
			if idxs[pair[1]] != idxs[pair[0]]+1 {
				return
			}
		}
		var ok []*syntax.Substitution
		for _, s := range in {
			trial := s.Clone()
			all := true
			for pos, idx := range idxs {
				if !Formula(l, side[idx].F, pat.formulas[pos], trial) {
					all = false
					break
				}
			}
			if all {
				ok = append(ok, trial)
			}
		}
		if len(ok) > 0 {
			res = append(res, combo{idxs: append([]int(nil), idxs...), substs: ok})
		}
	})
	return res
}

// contextDicts resolves the context variables of the rule side for every
// viable combo, distributing the uncovered stretches of the instance
// side over the runs of context variables in all possible ways, and
// keeping only distributions compatible with the substitutions already
// on the table.
func contextDicts(side, rule syntax.Side, combos []combo, l *lang.Language) []*syntax.Substitution {
	var out []*syntax.Substitution
	for _, c := range combos {
		dicts := c.substs
		var runVars []string
		formulaNum := -1
		prevIdx := -1 // instance index of the last formula seen
		viable := true

		for k, m := range rule {
			last := k == len(rule)-1
			if m.IsContext() {
				runVars = append(runVars, m.Ctx)
			} else {
				formulaNum++
			}
			if len(runVars) > 0 && (!m.IsContext() || last) {
				var span syntax.Side
				if m.IsContext() {
					// trailing context run
					span = side[prevIdx+1:]
				} else {
					span = side[prevIdx+1 : c.idxs[formulaNum]]
				}
				dicts = refineWithDistributions(dicts, runVars, span)
				if len(dicts) == 0 {
					viable = false
					break
				}
				runVars = nil
			}
			if !m.IsContext() {
				prevIdx = c.idxs[formulaNum]
			}
		}

		if viable {
			out = append(out, dicts...)
		}
	}
	return out
}

// refineWithDistributions crosses the candidate substitutions with every
// way of splitting span into contiguous stretches assigned to the run's
// context variables in order.
func refineWithDistributions(dicts []*syntax.Substitution, runVars []string, span syntax.Side) []*syntax.Substitution {
	var out []*syntax.Substitution
	for _, d := range dicts {
		forEachDistribution(len(runVars), len(span), func(counts []int) {
			trial := d.Clone()
			pos := 0
			for vi, sym := range runVars {
				part := span[pos : pos+counts[vi]]
				pos += counts[vi]
				if prev, ok := trial.Get(sym); ok {
					if prev.Kind != syntax.BindSide || !prev.Side.Equal(part) {
						return
					}
					continue
				}
				trial.Bind(sym, syntax.BindS(part.Clone()))
			}
			out = append(out, trial)
		})
	}
	return out
}

// forEachCombination yields every strictly increasing k-tuple drawn from
// items, in lexicographic order.
func forEachCombination(items []int, k int, fn func([]int)) {
	if k > len(items) {
		return
	}
	sel := make([]int, k)
	var rec func(start, pos int)
	rec = func(start, pos int) {
		if pos == k {
			fn(sel)
			return
		}
		for i := start; i <= len(items)-(k-pos); i++ {
			sel[pos] = items[i]
			rec(i+1, pos+1)
		}
	}
	rec(0, 0)
}

// forEachDistribution yields every way of giving total items to nvars
// ordered slots as contiguous counts, first slot greediest first.
func forEachDistribution(nvars, total int, fn func(counts []int)) {
	if nvars == 0 {
		if total == 0 {
			fn(nil)
		}
		return
	}
	counts := make([]int, nvars)
	var rec func(slot, left int)
	rec = func(slot, left int) {
		if slot == nvars-1 {
			counts[slot] = left
			fn(counts)
			return
		}
		for c := left; c >= 0; c-- {
			counts[slot] = c
			rec(slot+1, left-c)
		}
	}
	rec(0, total)
}

// InstantiateSide resolves the metavariables and context variables of a
// schematic side. Context variables splice their bound stretch in.
func InstantiateSide(l *lang.Language, schema syntax.Side, s *syntax.Substitution) (syntax.Side, error) {
	res := make(syntax.Side, 0, len(schema))
	for _, m := range schema {
		if m.IsContext() {
			b, ok := s.Get(m.Ctx)
			if !ok {
				return nil, fmt.Errorf("%w: context variable %s", syntax.ErrUnbound, m.Ctx)
			}
			if b.Kind != syntax.BindSide {
				return nil, fmt.Errorf("%w: %s is bound to a %s", syntax.ErrRebind, m.Ctx, b.Key())
			}
			res = append(res, b.Side.Clone()...)
			continue
		}
		inst, err := Instantiate(l, m.F, s)
		if err != nil {
			return nil, err
		}
		res = append(res, syntax.FormulaMember(inst))
	}
	return res, nil
}

// InstantiateSequent resolves a whole schematic sequent.
func InstantiateSequent(l *lang.Language, schema syntax.Sequent, s *syntax.Substitution) (syntax.Sequent, error) {
	res := make(syntax.Sequent, len(schema))
	for i, side := range schema {
		inst, err := InstantiateSide(l, side, s)
		if err != nil {
			return nil, err
		}
		res[i] = inst
	}
	return res, nil
}
