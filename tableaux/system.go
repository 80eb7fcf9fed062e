package tableaux

import (
	"github.com/sequitur-logic/sequitur/lang"
	"github.com/sequitur-logic/sequitur/match"
	"github.com/sequitur-logic/sequitur/syntax"
)

// Rule is a named schematic node tree. Premise nodes carry an empty
// justification; result nodes carry the rule's name.
type Rule struct {
	Name string
	Tree *Tree
}

// PremiseIdxs returns the rule's premise node indexes in preorder.
func (r Rule) PremiseIdxs() []int {
	return rulePremiseIdxs(r.Tree)
}

// ClosureRule is a schematic node pair: a branch with instances of both,
// in either order, under one substitution, is closed.
type ClosureRule [2]Node

// Config holds the construction-time switches of a system.
type Config struct {
	// FastClosure enables the linear branch scan that looks for X and
	// ~X (same index) instead of trying every node pair against every
	// closure rule. Only sound when the closure rules are the classical
	// contradiction pair.
	FastClosure bool
}

// System is a tableaux system: a language, an ordered rule list, closure
// rules, and the two policies that distinguish system families.
type System struct {
	Lang    *lang.Language
	Rules   []Rule
	Closure []ClosureRule

	// ClosurePolicy decides when a branch is closed; nil means the
	// closure rules apply, honoring Config.FastClosure.
	ClosurePolicy ClosurePolicy
	// Premises decides what counts as a correct initial node and how a
	// solver seeds the tree; nil means NegatedConclusionPremises.
	Premises PremisePolicy

	Config Config
}

func (sys *System) RuleNamed(name string) (Rule, bool) {
	for _, r := range sys.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

func (sys *System) premisePolicy() PremisePolicy {
	if sys.Premises != nil {
		return sys.Premises
	}
	return NegatedConclusionPremises{}
}

// NodeInstance reports whether node i of t is an instance of the
// schematic node. Index, standard and justification are checked first,
// then the content. A nil Index, nil Std or empty Just in the schema
// constrains nothing.
func (sys *System) NodeInstance(t *Tree, i int, schema *Node, s *syntax.Substitution) bool {
	n := &t.Nodes[i]
	if schema.Index != nil && (n.Index == nil || *n.Index != *schema.Index) {
		return false
	}
	if schema.Just != "" && n.Just != schema.Just {
		return false
	}
	if schema.Std != nil {
		if n.Std == nil || !match.Standard(sys.Lang, n.Std, schema.Std, s) {
			return false
		}
	}
	if (schema.Inf != nil) != (n.Inf != nil) {
		return false
	}
	if schema.Inf != nil {
		return match.Inference(sys.Lang, n.Inf, schema.Inf, s)
	}
	return match.Formula(sys.Lang, n.Content, schema.Content, s)
}

// RuleApplicable reports whether rule can be applied at node i: i must
// be an instance of the rule's last premise, and instances of the
// remaining premises must occur on the path above it, matched bottom-up
// under one substitution. The witnessing substitution is returned.
func (sys *System) RuleApplicable(t *Tree, i int, rule Rule) (bool, *syntax.Substitution) {
	prems := rule.PremiseIdxs()
	s := syntax.NewSubstitution()
	last := rule.Tree.Node(prems[len(prems)-1])
	if !sys.NodeInstance(t, i, last, s) {
		return false, nil
	}
	remaining := prems[:len(prems)-1]
	for j := t.Nodes[i].Parent; j != -1 && len(remaining) > 0; j = t.Nodes[j].Parent {
		want := rule.Tree.Node(remaining[len(remaining)-1])
		if sys.NodeInstance(t, j, want, s) {
			remaining = remaining[:len(remaining)-1]
		}
	}
	if len(remaining) > 0 {
		return false, nil
	}
	return true, s
}

// InstantiateRule resolves a rule's schematic tree against a
// substitution, returning a fresh concrete tree.
func (sys *System) InstantiateRule(rule Rule, s *syntax.Substitution) (*Tree, error) {
	res := &Tree{}
	var build func(srcIdx, parent int) error
	build = func(srcIdx, parent int) error {
		src := rule.Tree.Node(srcIdx)
		n := Node{Just: src.Just}
		if src.Index != nil {
			v := *src.Index
			n.Index = &v
		}
		if src.Std != nil {
			std, err := match.InstantiateStandard(sys.Lang, src.Std, s)
			if err != nil {
				return err
			}
			n.Std = std
		}
		if src.Inf != nil {
			inf, err := match.InstantiateInference(sys.Lang, src.Inf, s)
			if err != nil {
				return err
			}
			n.Inf = inf
		} else {
			f, err := match.Instantiate(sys.Lang, src.Content, s)
			if err != nil {
				return err
			}
			n.Content = f
		}
		var ni int
		if parent == -1 {
			res.Nodes = append(res.Nodes, Node{})
			ni = 0
			n.Parent = -1
			res.Nodes[0] = n
		} else {
			ni = res.Add(parent, n)
		}
		for _, c := range src.Children {
			if err := build(c, ni); err != nil {
				return err
			}
		}
		return nil
	}
	if err := build(0, -1); err != nil {
		return nil, err
	}
	return res, nil
}

// PremisePolicy tells a system how initial (unjustified) nodes relate to
// the inference being proved, and how a solver seeds a tableau from one.
type PremisePolicy interface {
	// PremiseWitness returns the premise and conclusion positions of
	// inf that node n correctly introduces. Both empty means n is not a
	// correct initial node.
	PremiseWitness(inf *syntax.Inference, n *Node) (premises, conclusions []int)
	// Seed builds the initial node chain for inf, root first.
	Seed(inf *syntax.Inference) []Node
}

// NegatedConclusionPremises is the classical policy: premises appear as
// themselves, conclusions appear negated, no indexes.
type NegatedConclusionPremises struct {
	// Negation is the negation connective symbol; "~" when empty.
	Negation string
}

func (p NegatedConclusionPremises) neg() string {
	if p.Negation == "" {
		return "~"
	}
	return p.Negation
}

func (p NegatedConclusionPremises) PremiseWitness(inf *syntax.Inference, n *Node) (premises, conclusions []int) {
	if n.Content == nil {
		return nil, nil
	}
	for i, prem := range inf.Premises {
		if prem.F != nil && prem.F.Equal(n.Content) {
			premises = append(premises, i)
		}
	}
	if n.Content.Sym == p.neg() && len(n.Content.Args) == 1 {
		for i, concl := range inf.Conclusions {
			if concl.F != nil && concl.F.Equal(n.Content.Args[0]) {
				conclusions = append(conclusions, i)
			}
		}
	}
	return premises, conclusions
}

func (p NegatedConclusionPremises) Seed(inf *syntax.Inference) []Node {
	var res []Node
	for _, prem := range inf.Premises {
		res = append(res, Node{Content: prem.F.Clone()})
	}
	for _, concl := range inf.Conclusions {
		res = append(res, Node{Content: syntax.Apply(p.neg(), concl.F.Clone())})
	}
	return res
}

// IndexedPremises is the signed policy: premises enter with index 1,
// conclusions with index 0, neither negated.
type IndexedPremises struct{}

func (IndexedPremises) PremiseWitness(inf *syntax.Inference, n *Node) (premises, conclusions []int) {
	if n.Content == nil || n.Index == nil {
		return nil, nil
	}
	if *n.Index == 1 {
		for i, prem := range inf.Premises {
			if prem.F != nil && prem.F.Equal(n.Content) {
				premises = append(premises, i)
			}
		}
	}
	if *n.Index == 0 {
		for i, concl := range inf.Conclusions {
			if concl.F != nil && concl.F.Equal(n.Content) {
				conclusions = append(conclusions, i)
			}
		}
	}
	return premises, conclusions
}

func (IndexedPremises) Seed(inf *syntax.Inference) []Node {
	var res []Node
	for _, prem := range inf.Premises {
		res = append(res, Node{Content: prem.F.Clone(), Index: Idx(1)})
	}
	for _, concl := range inf.Conclusions {
		res = append(res, Node{Content: concl.F.Clone(), Index: Idx(0)})
	}
	return res
}
