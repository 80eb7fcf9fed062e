package presets

import (
	"github.com/sequitur-logic/sequitur/syntax"
	"github.com/sequitur-logic/sequitur/tableaux"
)

func mv(sym string) *syntax.Formula {
	return syntax.Atom(sym)
}

func neg(f *syntax.Formula) *syntax.Formula {
	return syntax.Apply("~", f)
}

func bin(sym string, a, b *syntax.Formula) *syntax.Formula {
	return syntax.Apply(sym, a, b)
}

// chainRule is a rule whose results stack on one branch.
func chainRule(name string, root *syntax.Formula, results ...*syntax.Formula) tableaux.Rule {
	t := tableaux.NewTree(tableaux.Node{Content: root})
	parent := 0
	for _, f := range results {
		parent = t.Add(parent, tableaux.Node{Content: f, Just: name})
	}
	return tableaux.Rule{Name: name, Tree: t}
}

// branchRule is a rule whose results open one branch each.
func branchRule(name string, root *syntax.Formula, results ...*syntax.Formula) tableaux.Rule {
	t := tableaux.NewTree(tableaux.Node{Content: root})
	for _, f := range results {
		t.Add(0, tableaux.Node{Content: f, Just: name})
	}
	return tableaux.Rule{Name: name, Tree: t}
}

// splitChainRule is a rule with two branches of two stacked results.
func splitChainRule(name string, root *syntax.Formula, branches [2][2]*syntax.Formula) tableaux.Rule {
	t := tableaux.NewTree(tableaux.Node{Content: root})
	for _, br := range branches {
		c := t.Add(0, tableaux.Node{Content: br[0], Just: name})
		t.Add(c, tableaux.Node{Content: br[1], Just: name})
	}
	return tableaux.Rule{Name: name, Tree: t}
}

// ClassicalTableaux is the standard tableaux system for classical logic:
// one rule per signed-free connective shape and closure on a branch
// containing A and ~A.
func ClassicalTableaux() *tableaux.System {
	a, b := mv("A"), mv("B")
	return &tableaux.System{
		Lang: ClassicalLanguage(),
		Rules: []tableaux.Rule{
			chainRule("R~~", neg(neg(a)), a),
			chainRule("R∧", bin("∧", a, b), a, b),
			branchRule("R~∧", neg(bin("∧", a, b)), neg(a), neg(b)),
			branchRule("R∨", bin("∨", a, b), a, b),
			chainRule("R~∨", neg(bin("∨", a, b)), neg(a), neg(b)),
			branchRule("R→", bin("→", a, b), neg(a), b),
			chainRule("R~→", neg(bin("→", a, b)), a, neg(b)),
			splitChainRule("R↔", bin("↔", a, b), [2][2]*syntax.Formula{
				{a, b},
				{neg(a), neg(b)},
			}),
			splitChainRule("R~↔", neg(bin("↔", a, b)), [2][2]*syntax.Formula{
				{neg(a), b},
				{a, neg(b)},
			}),
		},
		Closure: []tableaux.ClosureRule{
			{tableaux.Node{Content: neg(a)}, tableaux.Node{Content: a}},
		},
		Config: tableaux.Config{FastClosure: true},
	}
}

func idxChainRule(name string, root tableaux.Node, results ...tableaux.Node) tableaux.Rule {
	t := tableaux.NewTree(root)
	parent := 0
	for _, n := range results {
		n.Just = name
		parent = t.Add(parent, n)
	}
	return tableaux.Rule{Name: name, Tree: t}
}

func idxBranchRule(name string, root tableaux.Node, results ...tableaux.Node) tableaux.Rule {
	t := tableaux.NewTree(root)
	for _, n := range results {
		n.Just = name
		t.Add(0, n)
	}
	return tableaux.Rule{Name: name, Tree: t}
}

func idxSplitChainRule(name string, root tableaux.Node, branches [2][2]tableaux.Node) tableaux.Rule {
	t := tableaux.NewTree(root)
	for _, br := range branches {
		br[0].Just = name
		br[1].Just = name
		c := t.Add(0, br[0])
		t.Add(c, br[1])
	}
	return tableaux.Rule{Name: name, Tree: t}
}

func idxNode(f *syntax.Formula, i int) tableaux.Node {
	return tableaux.Node{Content: f, Index: tableaux.Idx(i)}
}

// IndexedClassicalTableaux is the signed presentation of classical
// tableaux: every node carries index 1 or 0, the inference's premises
// enter with index 1 and its conclusions with index 0, and a branch
// closes on the same formula with both indexes.
func IndexedClassicalTableaux() *tableaux.System {
	a, b := mv("A"), mv("B")
	return &tableaux.System{
		Lang: ClassicalLanguage(),
		Rules: []tableaux.Rule{
			idxChainRule("R~1", idxNode(neg(a), 1), idxNode(a, 0)),
			idxChainRule("R~0", idxNode(neg(a), 0), idxNode(a, 1)),
			idxChainRule("R∧1", idxNode(bin("∧", a, b), 1), idxNode(a, 1), idxNode(b, 1)),
			idxBranchRule("R∧0", idxNode(bin("∧", a, b), 0), idxNode(a, 0), idxNode(b, 0)),
			idxBranchRule("R∨1", idxNode(bin("∨", a, b), 1), idxNode(a, 1), idxNode(b, 1)),
			idxChainRule("R∨0", idxNode(bin("∨", a, b), 0), idxNode(a, 0), idxNode(b, 0)),
			idxBranchRule("R→1", idxNode(bin("→", a, b), 1), idxNode(a, 0), idxNode(b, 1)),
			idxChainRule("R→0", idxNode(bin("→", a, b), 0), idxNode(a, 1), idxNode(b, 0)),
			idxSplitChainRule("R↔1", idxNode(bin("↔", a, b), 1), [2][2]tableaux.Node{
				{idxNode(a, 1), idxNode(b, 1)},
				{idxNode(a, 0), idxNode(b, 0)},
			}),
			idxSplitChainRule("R↔0", idxNode(bin("↔", a, b), 0), [2][2]tableaux.Node{
				{idxNode(a, 1), idxNode(b, 0)},
				{idxNode(a, 0), idxNode(b, 1)},
			}),
		},
		Closure: []tableaux.ClosureRule{
			{idxNode(a, 1), idxNode(a, 0)},
		},
		ClosurePolicy: tableaux.IndexedClosure{},
		Premises:      tableaux.IndexedPremises{},
	}
}
