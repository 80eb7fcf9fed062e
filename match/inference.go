package match

import (
	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/syntax"
)

type Config struct {
	// Ordered matches premises and conclusions positionally. Unordered
	// (the default) tries permutations and accepts the first consistent
	// one.
	Ordered bool
}

type Opt func(*Config)

func Ordered(v bool) Opt {
	return func(c *Config) { c.Ordered = v }
}

// Inference reports whether inf is an instance of schema. Counts and
// levels must agree. Premises and conclusions are matched independently;
// bindings made while matching premises constrain the conclusions.
// Bindings from failed permutations are discarded, only the witnessing
// permutation's bindings end up in s.
func Inference(l *lang.Language, inf, schema *syntax.Inference, s *syntax.Substitution, opts ...Opt) bool {
	cfg := &Config{}
	for _, o := range opts {
		o(cfg)
	}
	if len(inf.Premises) != len(schema.Premises) ||
		len(inf.Conclusions) != len(schema.Conclusions) {
		return false
	}
	if inf.Level() != schema.Level() {
		return false
	}

	if cfg.Ordered {
		trial := s.Clone()
		if !judgementsOrdered(l, inf.Premises, schema.Premises, trial, cfg) ||
			!judgementsOrdered(l, inf.Conclusions, schema.Conclusions, trial, cfg) {
			return false
		}
		copyInto(trial, s)
		return true
	}

	found := false
	forEachPermutation(len(schema.Premises), func(perm []int) bool {
		trial := s.Clone()
		if !judgementsPermuted(l, inf.Premises, schema.Premises, perm, trial, cfg) {
			return true // keep trying
		}
		ok := false
		forEachPermutation(len(schema.Conclusions), func(cperm []int) bool {
			ctrial := trial.Clone()
			if !judgementsPermuted(l, inf.Conclusions, schema.Conclusions, cperm, ctrial, cfg) {
				return true
			}
			copyInto(ctrial, s)
			ok = true
			return false
		})
		if ok {
			found = true
			return false
		}
		return true
	})
	return found
}

func judgementsOrdered(l *lang.Language, js, schemas []syntax.Judgement, s *syntax.Substitution, cfg *Config) bool {
	for i, j := range js {
		if !Judgement(l, j, schemas[i], s, cfg) {
			return false
		}
	}
	return true
}

func judgementsPermuted(l *lang.Language, js, schemas []syntax.Judgement, perm []int, s *syntax.Substitution, cfg *Config) bool {
	for i, j := range js {
		if !Judgement(l, j, schemas[perm[i]], s, cfg) {
			return false
		}
	}
	return true
}

// Judgement matches a single premise or conclusion, recursing through
// metainference members.
func Judgement(l *lang.Language, j, schema syntax.Judgement, s *syntax.Substitution, cfg *Config) bool {
	if (j.Inf != nil) != (schema.Inf != nil) {
		return false
	}
	if j.Inf != nil {
		var opts []Opt
		if cfg != nil {
			opts = append(opts, Ordered(cfg.Ordered))
		}
		return Inference(l, j.Inf, schema.Inf, s, opts...)
	}
	return Formula(l, j.F, schema.F, s)
}

// InstantiateInference resolves every metavariable in schema against s.
func InstantiateInference(l *lang.Language, schema *syntax.Inference, s *syntax.Substitution) (*syntax.Inference, error) {
	res := &syntax.Inference{DeclaredLevel: schema.DeclaredLevel}
	for _, p := range schema.Premises {
		j, err := instantiateJudgement(l, p, s)
		if err != nil {
			return nil, err
		}
		res.Premises = append(res.Premises, j)
	}
	for _, c := range schema.Conclusions {
		j, err := instantiateJudgement(l, c, s)
		if err != nil {
			return nil, err
		}
		res.Conclusions = append(res.Conclusions, j)
	}
	return res, nil
}

func instantiateJudgement(l *lang.Language, j syntax.Judgement, s *syntax.Substitution) (syntax.Judgement, error) {
	if j.Inf != nil {
		inst, err := InstantiateInference(l, j.Inf, s)
		if err != nil {
			return syntax.Judgement{}, err
		}
		return syntax.InferenceJudgement(inst), nil
	}
	inst, err := Instantiate(l, j.F, s)
	if err != nil {
		return syntax.Judgement{}, err
	}
	return syntax.FormulaJudgement(inst), nil
}

// forEachPermutation calls fn with every permutation of 0..n-1 in
// lexicographic order until fn returns false. n == 0 yields the single
// empty permutation.
func forEachPermutation(n int, fn func([]int) bool) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for {
		if !fn(perm) {
			return
		}
		// next lexicographic permutation
		i := n - 2
		for i >= 0 && perm[i] >= perm[i+1] {
			i--
		}
		if i < 0 {
			return
		}
		j := n - 1
		for perm[j] <= perm[i] {
			j--
		}
		perm[i], perm[j] = perm[j], perm[i]
		for a, b := i+1, n-1; a < b; a, b = a+1, b-1 {
			perm[a], perm[b] = perm[b], perm[a]
		}
	}
}

// copyInto copies every binding of src into dst, keeping dst's existing
// insertion order for symbols it already has.
func copyInto(src, dst *syntax.Substitution) {
	for _, sym := range src.Syms() {
		b, _ := src.Get(sym)
		dst.Bind(sym, b)
	}
}
